package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/axesporen/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{runeKey('w'), core.KeyUp},
		{runeKey('z'), core.KeyUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{runeKey('s'), core.KeyDown},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{runeKey('a'), core.KeyLeft},
		{runeKey('q'), core.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{runeKey('d'), core.KeyRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.KeyConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyDismiss},
		{runeKey('x'), core.KeyFire},
		{runeKey('p'), ""},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want {
			t.Errorf("MapKey(%q) = %q, expected %q", tt.msg.String(), got, tt.want)
		}
		if quit {
			t.Errorf("MapKey(%q) reported quit", tt.msg.String())
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	name, quit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit {
		t.Error("ctrl+c should quit")
	}
	if name != "" {
		t.Errorf("ctrl+c mapped to %q", name)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
		}
	}
}
