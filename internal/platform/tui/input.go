package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/axesporen/internal/core"
)

// TermInput answers the scenes' input queries from terminal events.
// Keys stay held for a short window after each press or repeat; mouse
// buttons stay held until the terminal reports their release.
type TermInput struct {
	keys    *core.KeyState
	buttons *core.KeyState
	mouse   core.Vec2
	cellW   int
	cellH   int
}

// NewTermInput creates an input tracker. cellW and cellH convert mouse cell
// coordinates to pixels.
func NewTermInput(hold time.Duration, cellW, cellH int) *TermInput {
	return &TermInput{
		keys:    core.NewKeyState(hold),
		buttons: core.NewKeyState(0),
		cellW:   max(cellW, 1),
		cellH:   max(cellH, 1),
	}
}

// PressKey records a press or auto-repeat of a named key.
func (in *TermInput) PressKey(name string, at time.Time) {
	if name == "" {
		return
	}
	in.keys.Press(name, at)
}

// HandleMouse records pointer movement and button changes.
// The position is the centre of the cell under the pointer.
func (in *TermInput) HandleMouse(msg tea.MouseMsg, at time.Time) {
	in.mouse = core.V(
		float64(msg.X*in.cellW+in.cellW/2),
		float64(msg.Y*in.cellH+in.cellH/2),
	)

	name := mouseButtonName(msg.Button)
	switch msg.Action {
	case tea.MouseActionPress:
		if name != "" {
			in.buttons.Press(name, at)
		}
	case tea.MouseActionRelease:
		// Some terminals do not say which button was released
		if name == "" {
			in.buttons.Clear()
			return
		}
		in.buttons.Release(name)
	}
}

// Expire releases keys whose hold window has passed.
func (in *TermInput) Expire(now time.Time) {
	in.keys.Expire(now)
}

// Reset releases every key and button.
func (in *TermInput) Reset() {
	in.keys.Clear()
	in.buttons.Clear()
}

// IsKeyPressed implements scene.Input.
func (in *TermInput) IsKeyPressed(name string) bool {
	return in.keys.Held(name)
}

// MousePosition implements scene.Input.
func (in *TermInput) MousePosition() core.Vec2 {
	return in.mouse
}

// PressedKeys implements scene.Input.
func (in *TermInput) PressedKeys() []string {
	return in.keys.Pressed()
}

// PressedMouseButtons implements scene.Input.
func (in *TermInput) PressedMouseButtons() []string {
	return in.buttons.Pressed()
}

func mouseButtonName(b tea.MouseButton) string {
	switch b {
	case tea.MouseButtonLeft:
		return core.MouseLeft
	case tea.MouseButtonMiddle:
		return core.MouseMiddle
	case tea.MouseButtonRight:
		return core.MouseRight
	default:
		return ""
	}
}
