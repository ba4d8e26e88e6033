package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/axesporen/internal/core"
)

func TestTermInputKeysExpire(t *testing.T) {
	in := NewTermInput(100*time.Millisecond, 8, 16)
	start := time.Now()

	in.PressKey(core.KeyUp, start)
	in.PressKey("", start)

	if !in.IsKeyPressed(core.KeyUp) {
		t.Fatal("Up should be held after press")
	}
	if got := in.PressedKeys(); len(got) != 1 {
		t.Errorf("PressedKeys() = %v, expected only Up", got)
	}

	in.Expire(start.Add(50 * time.Millisecond))
	if !in.IsKeyPressed(core.KeyUp) {
		t.Error("Up released inside its hold window")
	}

	in.Expire(start.Add(150 * time.Millisecond))
	if in.IsKeyPressed(core.KeyUp) {
		t.Error("Up still held after its hold window")
	}
}

func TestTermInputMouse(t *testing.T) {
	in := NewTermInput(core.DefaultHoldWindow, 8, 16)
	now := time.Now()

	in.HandleMouse(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, now)

	want := core.V(20.0, 56.0)
	if got := in.MousePosition(); got != want {
		t.Errorf("MousePosition() = %v, expected %v", got, want)
	}
	if got := in.PressedMouseButtons(); len(got) != 1 || got[0] != core.MouseLeft {
		t.Errorf("PressedMouseButtons() = %v, expected [Left]", got)
	}

	// Buttons are not subject to the key hold window
	in.Expire(now.Add(time.Second))
	if len(in.PressedMouseButtons()) != 1 {
		t.Error("mouse button expired without a release")
	}

	in.HandleMouse(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, now)
	if got := in.PressedMouseButtons(); len(got) != 0 {
		t.Errorf("PressedMouseButtons() after release = %v, expected none", got)
	}
}

func TestTermInputReset(t *testing.T) {
	in := NewTermInput(core.DefaultHoldWindow, 8, 16)
	now := time.Now()

	in.PressKey(core.KeyFire, now)
	in.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, now)
	in.Reset()

	if in.IsKeyPressed(core.KeyFire) || len(in.PressedMouseButtons()) != 0 {
		t.Error("Reset() left input held")
	}
}
