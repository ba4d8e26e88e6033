package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/scene"
	"github.com/vovakirdan/axesporen/internal/storage"
)

// Options configure a game model.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Audio   scene.Audio    // Nil plays nothing
	Store   *storage.Store // Nil keeps no run history
	Player  string         // Recorded with each run
	Log     *log.Logger    // Nil discards
}

// Model is the Bubble Tea model running one game: it feeds terminal input to
// the scene manager and shows what the scenes drew.
type Model struct {
	manager    *scene.Manager
	screen     *core.Screen
	canvas     *Canvas
	input      *TermInput
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	log        *log.Logger
	now        func() time.Time
	standalone bool // Owns its program; leaving for the launcher quits it
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model starting on the title scene.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	canvas := NewCanvas(screen, cfg.CellW, cfg.CellH)
	input := NewTermInput(core.DefaultHoldWindow, cfg.CellW, cfg.CellH)

	env := scene.NewEnv(scene.Services{
		Input:   input,
		Sprites: canvas,
		Text:    canvas,
		Audio:   opts.Audio,
		Window:  canvas,
		Log:     logger,
	}, opts.Game, rand.New(rand.NewSource(cfg.Seed)))

	manager := scene.NewManager(env)
	if opts.Store != nil {
		manager.OnTransition(RecordRuns(opts.Store, opts.Player, cfg.Seed, logger))
	}

	return Model{
		manager:   manager,
		screen:    screen,
		canvas:    canvas,
		input:     input,
		keyMapper: NewKeyMapper(),
		config:    cfg,
		log:       logger,
		now:       time.Now,
	}
}

// RecordRuns returns a transition listener that saves a run to store each
// time a game ends.
func RecordRuns(store *storage.Store, player string, seed int64, logger *log.Logger) scene.TransitionFunc {
	return func(from, to scene.Scene) {
		over, ok := to.(*scene.GameOver)
		if !ok {
			return
		}
		run := storage.Run{
			Player:         player,
			WorldsExplored: over.WorldsExplored(),
			Seed:           seed,
		}
		if w, ok := from.(*scene.World); ok {
			run.Generator = w.Level().Generator
		}
		if _, err := store.SaveRun(run); err != nil {
			logger.Error("cannot save run", "err", err)
		}
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.HandleMouse(msg, m.now())
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	name, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.PressKey(name, m.now())
	return m, nil
}

// handleTick advances the active scene by one fixed step.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	m.input.Expire(at)
	m.canvas.Clear()
	m.manager.Advance(m.config.DeltaTime())
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the last frame to a file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".axesporen", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.manager.Current().Kind(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the last frame the scenes drew.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	return RenderScreen(m.screen)
}

// Scene returns the active scene.
func (m Model) Scene() scene.Scene {
	return m.manager.Current()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the launcher.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the player quits or returns
// to the launcher. It reports whether the launcher should be shown again.
func Run(opts Options) (backToMenu bool, err error) {
	model := NewModel(opts)
	model.standalone = true
	if opts.Audio != nil {
		defer func() {
			if stopErr := opts.Audio.Stop(); stopErr != nil {
				model.log.Debug("cannot stop audio", "err", stopErr)
			}
		}()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cursor follows the mouse
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
