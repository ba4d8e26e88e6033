package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/axesporen/internal/registry"
	"github.com/vovakirdan/axesporen/internal/storage"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return mm, cmd
}

func TestMenuStartsOnCurrentGenerator(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), registry.Noise)

	m, cmd := sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil {
		t.Fatal("enter selected nothing")
	}
	if got := m.Selected().Generator; got != registry.Noise {
		t.Errorf("Selected().Generator = %q, expected %q", got, registry.Noise)
	}
	if cmd == nil {
		t.Error("selection did not quit the launcher")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), "")

	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, expected 0", m.cursor)
	}

	for range m.items {
		m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuShowsBestRun(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(storage.Run{Generator: registry.Biome, WorldsExplored: 4})

	m := NewMenuModel(store, testRuntime(), "")
	if !strings.Contains(m.View(), "(best: 4)") {
		t.Error("launcher does not show the best run")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), "")
	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab did not request the run history")
	}

	m = NewMenuModel(nil, testRuntime(), "")
	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Error("q did not quit the launcher")
	}
}

func TestScoreboardCyclesGenerators(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(storage.Run{Generator: registry.Biome, WorldsExplored: 2})
	store.SaveRun(storage.Run{Generator: registry.Noise, WorldsExplored: 5})

	m := NewScoreboardModel(store, 100, 30)
	if m.Selected() != "" {
		t.Errorf("Selected() = %q, expected all worlds first", m.Selected())
	}
	if len(m.Runs()) != 2 {
		t.Fatalf("Runs() = %d, expected 2", len(m.Runs()))
	}
	if m.Runs()[0].WorldsExplored != 5 {
		t.Errorf("best run first = %d, expected 5", m.Runs()[0].WorldsExplored)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Selected() != registry.Biome {
		t.Errorf("Selected() = %q, expected %q", m.Selected(), registry.Biome)
	}
	if len(m.Runs()) != 1 {
		t.Errorf("Runs() = %d, expected 1", len(m.Runs()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty generator does not show the empty message")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Selected() != registry.Biome {
		t.Errorf("Selected() after shift+tab = %q, expected %q", m.Selected(), registry.Biome)
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}
