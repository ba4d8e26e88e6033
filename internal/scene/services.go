// Package scene implements the game's scene state machine. A Manager owns
// exactly one active scene (Menu, World or GameOver) and advances it once per
// tick; a scene reports its successor from Advance. Scenes reach the outside
// world only through the capability interfaces collected in Services.
package scene

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/core"
)

// Input answers level-triggered queries about keys and the mouse.
type Input interface {
	IsKeyPressed(name string) bool
	MousePosition() core.Vec2 // Screen space, pixels
	PressedKeys() []string
	PressedMouseButtons() []string
}

// SpriteDrawer draws named sprites. src and dest are optional source and
// destination rectangle sizes in pixels.
type SpriteDrawer interface {
	DrawSprite(id string, pos core.Vector2D[int], src, dest *core.Vector2D[int]) error
}

// TextDrawer draws text at a pixel position.
type TextDrawer interface {
	DrawText(text string, x, y, fontSize int, color core.Color) error
}

// Audio plays background tracks and one-shot effects.
type Audio interface {
	Play(track string, volume int) error
	PlaySound(effect string, volume int) error
	Stop() error
}

// Window reports the drawable area in pixels.
type Window interface {
	Size() core.Vec2
}

// Services are the capabilities scenes share. They are used from the game
// loop goroutine only.
type Services struct {
	Input   Input
	Sprites SpriteDrawer
	Text    TextDrawer
	Audio   Audio
	Window  Window // Optional; the configured camera size is used without it
	Log     *log.Logger
}

// Env is everything a scene needs besides its own state.
type Env struct {
	Services
	Config config.GameConfig
	Rand   *rand.Rand // Nil draws from the global source
}

// NewEnv fills missing services with inert implementations.
func NewEnv(s Services, cfg config.GameConfig, rng *rand.Rand) *Env {
	if s.Input == nil {
		s.Input = nopInput{}
	}
	if s.Sprites == nil {
		s.Sprites = nopDrawer{}
	}
	if s.Text == nil {
		s.Text = nopDrawer{}
	}
	if s.Audio == nil {
		s.Audio = nopAudio{}
	}
	if s.Log == nil {
		s.Log = log.New(io.Discard)
	}
	return &Env{Services: s, Config: cfg, Rand: rng}
}

// WindowSize returns the window size, falling back to the configured camera
// size when no window is attached or it reports nothing.
func (e *Env) WindowSize() core.Vec2 {
	if e.Window != nil {
		if s := e.Window.Size(); s.X > 0 && s.Y > 0 {
			return s
		}
	}
	return core.V(e.Config.Camera.WindowWidth, e.Config.Camera.WindowHeight)
}

// Kind names a scene variant.
type Kind int

const (
	KindMenu Kind = iota
	KindWorld
	KindGameOver
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindWorld:
		return "world"
	case KindGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Scene is one mode of the game.
type Scene interface {
	Kind() Kind

	// Advance runs one tick: update, transition checks, then drawing.
	// It returns the scene to switch to, or nil to stay.
	Advance(dt float64) Scene
}

// reporter logs capability failures for one scene: the first failure of each
// operation at Warn, repeats at Debug, so a broken sprite does not flood the
// log every frame.
type reporter struct {
	log    *log.Logger
	warned mapset.Set[string]
}

func newReporter(l *log.Logger, kind Kind) *reporter {
	return &reporter{
		log:    l.With("scene", kind.String()),
		warned: mapset.New[string](),
	}
}

func (r *reporter) check(op string, err error) {
	if err == nil {
		return
	}
	if r.warned.Has(op) {
		r.log.Debug("capability failed", "op", op, "err", err)
		return
	}
	r.warned.Put(op)
	r.log.Warn("capability failed", "op", op, "err", err)
}

type nopInput struct{}

func (nopInput) IsKeyPressed(string) bool { return false }
func (nopInput) MousePosition() core.Vec2 { return core.Vec2{} }
func (nopInput) PressedKeys() []string { return nil }
func (nopInput) PressedMouseButtons() []string { return nil }

type nopDrawer struct{}

func (nopDrawer) DrawSprite(string, core.Vector2D[int], *core.Vector2D[int], *core.Vector2D[int]) error {
	return nil
}
func (nopDrawer) DrawText(string, int, int, int, core.Color) error { return nil }

type nopAudio struct{}

func (nopAudio) Play(string, int) error { return nil }
func (nopAudio) PlaySound(string, int) error { return nil }
func (nopAudio) Stop() error { return nil }
