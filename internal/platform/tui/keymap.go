package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/axesporen/internal/core"
)

// KeyMapper translates Bubble Tea key messages to scene key names.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]string
}

// NewKeyMapper creates a new key mapper with default bindings.
// Both QWERTY (wasd) and AZERTY (zqsd) layouts move the player.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]string{
		"w":     core.KeyUp,
		"z":     core.KeyUp,
		"up":    core.KeyUp,
		"s":     core.KeyDown,
		"down":  core.KeyDown,
		"a":     core.KeyLeft,
		"q":     core.KeyLeft,
		"left":  core.KeyLeft,
		"d":     core.KeyRight,
		"right": core.KeyRight,
		" ":     core.KeyConfirm,
		"esc":   core.KeyDismiss,
		"x":     core.KeyFire,
		"X":     core.KeyFire,
	}}
}

// MapKey translates a key message to a scene key name.
// Returns "" for unbound keys and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (name string, isQuit bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return "", true
	}
	return km.bindings[key], false
}

// MenuAction represents a launcher action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a launcher action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
