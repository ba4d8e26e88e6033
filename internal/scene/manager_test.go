package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/core"
)

func TestManagerTransitions(t *testing.T) {
	h := newHarness(t, testConfig())
	m := NewManager(h.env)
	require.Equal(t, KindMenu, m.Current().Kind())

	var changes []string
	m.OnTransition(func(from, to Scene) {
		changes = append(changes, from.Kind().String()+">"+to.Kind().String())
	})

	h.input.press(core.KeyDismiss)
	assert.Nil(t, m.Advance(0.01))
	h.input.releaseAll()

	h.input.press(core.KeyConfirm)
	next := m.Advance(0.01)
	require.NotNil(t, next)
	assert.Same(t, next, m.Current())
	assert.Equal(t, KindWorld, m.Current().Kind())

	// Walk into the goal
	h.input.releaseAll()
	w := m.Current().(*World)
	w.Level().Player.Body.Position = w.Level().Goal.Position.Add(core.V(0.0, 10.0))
	next = m.Advance(0.01)
	require.NotNil(t, next)
	assert.Equal(t, 2, m.Current().(*World).Level().Number)

	assert.Equal(t, []string{"menu>world", "world>world"}, changes)
	assert.Contains(t, h.logs.String(), "scene changed")
	assert.Contains(t, h.logs.String(), "world=2")
}

func TestManagerReachesGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.PerLevel = 1
	h := newHarness(t, cfg)

	m := NewManager(h.env)
	w, err := NewWorld(m.Env(), 1)
	require.NoError(t, err)
	m.current = w

	w.Level().Goal.Position = core.V(-1000.0, -1000.0)
	w.Level().Enemies[0].Body.Position = w.Level().Player.Position()

	var over *GameOver
	m.OnTransition(func(_, to Scene) {
		over, _ = to.(*GameOver)
	})
	m.Advance(0.01)

	require.NotNil(t, over)
	assert.Equal(t, 1, over.WorldsExplored())
	assert.Equal(t, KindGameOver, m.Current().Kind())

	h.input.press(core.KeyConfirm)
	m.Advance(0.01)
	assert.Equal(t, KindMenu, m.Current().Kind())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "menu", KindMenu.String())
	assert.Equal(t, "world", KindWorld.String())
	assert.Equal(t, "game_over", KindGameOver.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestEnvDefaults(t *testing.T) {
	env := NewEnv(Services{}, config.DefaultGameConfig(), nil)
	assert.Equal(t, core.V(800.0, 600.0), env.WindowSize())

	// Inert services let every scene run without a platform
	m := NewManager(env)
	assert.NotPanics(t, func() {
		for i := 0; i < 3; i++ {
			m.Advance(1.0 / 60)
		}
	})

	env.Window = fixedWindow(core.V(0.0, 0.0))
	assert.Equal(t, core.V(800.0, 600.0), env.WindowSize(), "empty window falls back to the camera config")
}

func TestTileSprite(t *testing.T) {
	assert.Equal(t, SpriteWall, TileSprite(1))
	assert.Equal(t, SpriteGrass, TileSprite(0))
}
