package scene

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/core"
)

var errBroken = errors.New("broken")

type fakeInput struct {
	keys  mapset.Set[string]
	mouse core.Vec2
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: mapset.New[string]()}
}

func (f *fakeInput) press(keys ...string) {
	for _, k := range keys {
		f.keys.Put(k)
	}
}

func (f *fakeInput) releaseAll() {
	f.keys = mapset.New[string]()
}

func (f *fakeInput) IsKeyPressed(name string) bool { return f.keys.Has(name) }
func (f *fakeInput) MousePosition() core.Vec2 { return f.mouse }
func (f *fakeInput) PressedKeys() []string {
	var out []string
	f.keys.Each(func(k string) { out = append(out, k) })
	return out
}
func (f *fakeInput) PressedMouseButtons() []string { return nil }

type spriteCall struct {
	id   string
	pos  core.Vector2D[int]
	dest *core.Vector2D[int]
}

type textCall struct {
	text     string
	x, y     int
	fontSize int
	color    core.Color
}

// canvas records draw calls and optionally fails them.
type canvas struct {
	sprites []spriteCall
	texts   []textCall
	fail    bool
}

func (c *canvas) DrawSprite(id string, pos core.Vector2D[int], _, dest *core.Vector2D[int]) error {
	c.sprites = append(c.sprites, spriteCall{id: id, pos: pos, dest: dest})
	if c.fail {
		return errBroken
	}
	return nil
}

func (c *canvas) DrawText(text string, x, y, fontSize int, color core.Color) error {
	c.texts = append(c.texts, textCall{text: text, x: x, y: y, fontSize: fontSize, color: color})
	if c.fail {
		return errBroken
	}
	return nil
}

func (c *canvas) reset() {
	c.sprites = nil
	c.texts = nil
}

func (c *canvas) hasText(text string) bool {
	for _, t := range c.texts {
		if t.text == text {
			return true
		}
	}
	return false
}

func (c *canvas) countSprite(id string) int {
	n := 0
	for _, s := range c.sprites {
		if s.id == id {
			n++
		}
	}
	return n
}

// recorder records audio calls as "play:<track>", "sound:<effect>" and "stop".
type recorder struct {
	calls []string
	fail  bool
}

func (r *recorder) Play(track string, _ int) error {
	r.calls = append(r.calls, "play:"+track)
	return r.err()
}

func (r *recorder) PlaySound(effect string, _ int) error {
	r.calls = append(r.calls, "sound:"+effect)
	return r.err()
}

func (r *recorder) Stop() error {
	r.calls = append(r.calls, "stop")
	return r.err()
}

func (r *recorder) err() error {
	if r.fail {
		return errBroken
	}
	return nil
}

type fixedWindow core.Vec2

func (w fixedWindow) Size() core.Vec2 { return core.Vec2(w) }

type harness struct {
	env    *Env
	input  *fakeInput
	canvas *canvas
	audio  *recorder
	logs   *bytes.Buffer
}

// testConfig is a small chunked world: 2x2 chunks of 10x10 tiles of 32px,
// walled chunk borders, no enemies.
func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.World.Generator = "bordered"
	cfg.World.Columns = 2
	cfg.World.Rows = 2
	cfg.World.ChunkWidth = 10
	cfg.World.ChunkHeight = 10
	cfg.World.SpawnMargin = 2
	cfg.Enemy.PerLevel = 0
	cfg.Player.Speed = 100
	return cfg
}

func newHarness(t *testing.T, cfg config.GameConfig) *harness {
	t.Helper()
	h := &harness{
		input:  newFakeInput(),
		canvas: &canvas{},
		audio:  &recorder{},
		logs:   &bytes.Buffer{},
	}
	logger := log.New(h.logs)
	logger.SetLevel(log.DebugLevel)
	h.env = NewEnv(Services{
		Input:   h.input,
		Sprites: h.canvas,
		Text:    h.canvas,
		Audio:   h.audio,
		Window:  fixedWindow(core.V(800.0, 600.0)),
		Log:     logger,
	}, cfg, rand.New(rand.NewSource(1)))
	return h
}
