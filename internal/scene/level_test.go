package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/world"
)

func TestBuildLevelChunked(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(5))

	level, err := BuildLevel(cfg, 2, rng)
	require.NoError(t, err)

	assert.Equal(t, 2, level.Number)
	assert.Equal(t, "biome", level.Generator)
	grid, ok := level.Terrain.(*world.ChunkGrid)
	require.True(t, ok, "chunked layout builds a ChunkGrid")
	assert.Equal(t, 10, grid.Columns())
	assert.Equal(t, core.V(6400.0, 6400.0), grid.Size())

	assert.Equal(t, core.V(64.0, 64.0), level.Player.Position())
	assert.Equal(t, 600.0, level.Player.Speed)

	require.Len(t, level.Enemies, 20)
	for _, e := range level.Enemies {
		pos := e.Position()
		assert.GreaterOrEqual(t, pos.X, 10*32.0)
		assert.GreaterOrEqual(t, pos.Y, 10*32.0)
		assert.Less(t, pos.X, 199*32.0)
		assert.Less(t, pos.Y, 199*32.0)
		assert.Equal(t, 300.0, e.AttackRange)
		assert.Equal(t, 20.0, e.Speed)
	}

	corners := []core.Vec2{
		core.V(199*32.0, 199*32.0),
		core.V(10*32.0, 199*32.0),
		core.V(199*32.0, 10*32.0),
	}
	assert.Contains(t, corners, level.Goal.Position)
}

func TestBuildLevelGoalCorners(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(9))
	seen := make(map[core.Vec2]int)
	for i := 0; i < 90; i++ {
		level, err := BuildLevel(cfg, 1, rng)
		require.NoError(t, err)
		seen[level.Goal.Position]++
	}
	assert.Len(t, seen, 3, "goal uses all three far corners")
}

func TestBuildLevelFlat(t *testing.T) {
	cfg := testConfig()
	cfg.World.Layout = config.LayoutFlat
	cfg.Enemy.PerLevel = 5

	level, err := BuildLevel(cfg, 1, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	chunk, ok := level.Terrain.(*world.Chunk)
	require.True(t, ok, "flat layout builds a single Chunk")
	assert.Equal(t, 20, chunk.Width())
	assert.Equal(t, 20, chunk.Height())
	assert.Equal(t, "bordered", level.Generator)

	// Goal stays off the wall ring
	tile, ok := chunk.TileAtPosition(level.Goal.Position)
	require.True(t, ok)
	assert.Equal(t, world.Grass, tile.Type)

	assert.Len(t, level.Enemies, 5)
}

func TestBuildLevelErrors(t *testing.T) {
	cfg := testConfig()
	cfg.World.Generator = "volcano"
	_, err := BuildLevel(cfg, 1, nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.World.SpawnMargin = 19
	_, err = BuildLevel(cfg, 1, nil)
	assert.ErrorIs(t, err, world.ErrInvalidDimensions)
}

func TestBuildLevelDifficulty(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.PerLevel = 1
	config.ApplyPreset(&cfg, config.DifficultyHard)

	first, err := BuildLevel(cfg, 1, nil)
	require.NoError(t, err)
	tenth, err := BuildLevel(cfg, 10, nil)
	require.NoError(t, err)

	require.Len(t, tenth.Enemies, 10)
	assert.Greater(t, first.Enemies[0].Speed, cfg.Enemy.Speed)
	assert.Greater(t, tenth.Enemies[0].Speed, first.Enemies[0].Speed)
	assert.Greater(t, tenth.Enemies[0].AttackRange, cfg.Enemy.AttackRange)
}
