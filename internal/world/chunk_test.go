package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/axesporen/internal/core"
)

func TestNewChunkInvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		w, h, size int
	}{
		{"zero width", 0, 5, 32},
		{"negative height", 5, -1, 32},
		{"zero tile size", 5, 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewChunk(tc.w, tc.h, tc.size, core.V(0, 0), nil)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestChunkTilePositionsIncludeOrigin(t *testing.T) {
	origin := core.V(40, 20)
	c, err := NewChunk(6, 4, 32, origin, Bordered{})
	require.NoError(t, err)

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			tile, ok := c.TileAt(x, y)
			require.True(t, ok)
			assert.Equal(t, core.V(float64(origin.X+x), float64(origin.Y+y)), tile.Position)
		}
	}
	assert.Equal(t, core.V(40.0*32, 20.0*32), c.OriginPosition())
}

func TestBorderedChunk(t *testing.T) {
	c, err := NewChunk(5, 4, 32, core.V(0, 0), nil)
	require.NoError(t, err)

	_, hasBiome := c.Biome()
	assert.False(t, hasBiome)

	c.ForEach(func(tile Tile) {
		x, y := int(tile.Position.X), int(tile.Position.Y)
		ring := x == 0 || x == 4 || y == 0 || y == 3
		if ring {
			assert.Equal(t, Wall, tile.Type, "tile (%d, %d)", x, y)
		} else {
			assert.Equal(t, Grass, tile.Type, "tile (%d, %d)", x, y)
		}
	})
}

func TestBiomeChunk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		c, err := NewChunk(9, 9, 16, core.V(9*i, 0), Biome{Rand: rng})
		require.NoError(t, err)

		biome, ok := c.Biome()
		require.True(t, ok)
		assert.Contains(t, []TileType{Grass, Sand, Snow, Goo}, biome)

		c.ForEach(func(tile Tile) {
			x := int(tile.Position.X) - c.Origin().X
			y := int(tile.Position.Y) - c.Origin().Y
			if x == 0 && y%3 == 0 {
				assert.Equal(t, Wall, tile.Type)
			} else {
				assert.Equal(t, biome, tile.Type)
			}
		})
	}
}

func TestBiomeDistribution(t *testing.T) {
	b := Biome{Rand: rand.New(rand.NewSource(1))}
	counts := make(map[TileType]int)
	const draws = 6000
	for i := 0; i < draws; i++ {
		counts[b.pick()]++
	}

	assert.InDelta(t, 2.0/3.0, float64(counts[Grass])/draws, 0.03)
	assert.Zero(t, counts[Wall])
	assert.Zero(t, counts[Wood])
	assert.Positive(t, counts[Sand])
	assert.Positive(t, counts[Snow])
	assert.Positive(t, counts[Goo])
}

func TestNoiseChunkKeepsWalls(t *testing.T) {
	gen := NewNoise(rand.New(rand.NewSource(3)))
	gen.Threshold = -1 // every non-wall cell becomes wood

	c, err := NewChunk(7, 7, 32, core.V(0, 0), gen)
	require.NoError(t, err)

	c.ForEach(func(tile Tile) {
		x, y := int(tile.Position.X), int(tile.Position.Y)
		if x == 0 && y%3 == 0 {
			assert.Equal(t, Wall, tile.Type)
		} else {
			assert.Equal(t, Wood, tile.Type)
		}
	})
}

func TestNoiseLevelRange(t *testing.T) {
	gen := NewNoise(rand.New(rand.NewSource(11)))
	for x := -20; x < 20; x++ {
		for y := -20; y < 20; y++ {
			v := gen.Level(x, y)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestChunkTileAtPosition(t *testing.T) {
	c, err := NewChunk(4, 3, 32, core.V(0, 0), nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		pos      core.Vec2
		expected core.Vec2
		ok       bool
	}{
		{"origin", core.V(0.0, 0.0), core.V(0.0, 0.0), true},
		{"inside first tile", core.V(31.9, 31.9), core.V(0.0, 0.0), true},
		{"second column", core.V(32.0, 5.0), core.V(1.0, 0.0), true},
		{"last tile", core.V(127.0, 95.0), core.V(3.0, 2.0), true},
		{"right edge", core.V(128.0, 0.0), core.Vec2{}, false},
		{"bottom edge", core.V(0.0, 96.0), core.Vec2{}, false},
		{"just left", core.V(-0.1, 10.0), core.Vec2{}, false},
		{"just above", core.V(10.0, -0.1), core.Vec2{}, false},
		{"nan", core.V(math.NaN(), 0.0), core.Vec2{}, false},
		{"inf", core.V(math.Inf(1), 0.0), core.Vec2{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tile, ok := c.TileAtPosition(tc.pos)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.expected, tile.Position)
			}
		})
	}
}

func TestTileTypeString(t *testing.T) {
	names := map[TileType]string{
		Grass: "grass", Wall: "wall", Sand: "sand", Snow: "snow", Goo: "goo", Wood: "wood",
	}
	for typ, name := range names {
		assert.Equal(t, name, typ.String())
		assert.Equal(t, typ == Wall, typ.Blocking())
	}
	assert.Equal(t, "unknown", TileType(99).String())
}
