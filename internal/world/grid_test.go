package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/axesporen/internal/core"
)

// newTestGrid builds a 3x2 grid of 4x5-tile chunks with 10px tiles, so the
// chunk width and height differ.
func newTestGrid(t *testing.T) *ChunkGrid {
	t.Helper()
	g, err := NewChunkGrid(3, 2, 10, 4, 5, Biome{Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	return g
}

func TestNewChunkGridInvalid(t *testing.T) {
	_, err := NewChunkGrid(0, 2, 10, 4, 4, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewChunkGrid(2, 2, 10, 0, 4, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestChunkGridOrigins(t *testing.T) {
	g := newTestGrid(t)
	g.ForEachChunk(func(index core.Vector2D[int], c *Chunk) {
		assert.Equal(t, core.V(index.X*4, index.Y*5), c.Origin())
	})
	assert.Equal(t, core.V(120.0, 100.0), g.Size())
	assert.Equal(t, core.V(12, 10), g.TileCount())
}

func TestChunkIndexOfPerAxis(t *testing.T) {
	g := newTestGrid(t)

	tests := []struct {
		name     string
		pos      core.Vec2
		expected core.Vector2D[int]
	}{
		{"origin", core.V(0.0, 0.0), core.V(0, 0)},
		// Tile (0, 4) is still in the first row: rows are 5 tiles tall
		{"tall first row", core.V(0.0, 45.0), core.V(0, 0)},
		{"second row", core.V(0.0, 50.0), core.V(0, 1)},
		{"second column", core.V(40.0, 0.0), core.V(1, 0)},
		{"last chunk", core.V(119.0, 99.0), core.V(2, 1)},
		{"negative floors down", core.V(-1.0, -1.0), core.V(-1, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			index, ok := g.ChunkIndexOf(tc.pos)
			require.True(t, ok)
			assert.Equal(t, tc.expected, index)
		})
	}

	_, ok := g.ChunkIndexOf(core.V(math.NaN(), 0.0))
	assert.False(t, ok)
}

func TestChunkAt(t *testing.T) {
	g := newTestGrid(t)

	c, err := g.ChunkAt(core.V(2, 1))
	require.NoError(t, err)
	assert.Equal(t, core.V(8, 5), c.Origin())

	for _, index := range []core.Vector2D[int]{core.V(3, 0), core.V(0, 2), core.V(-1, 0)} {
		_, err := g.ChunkAt(index)
		assert.ErrorIs(t, err, ErrInvalidChunkIndex, "index %v", index)
	}
}

func TestChunkGridOutsideHasNoTile(t *testing.T) {
	g := newTestGrid(t)
	outside := []core.Vec2{
		core.V(-0.5, 10.0),
		core.V(10.0, -0.5),
		core.V(120.0, 10.0),
		core.V(10.0, 100.0),
		core.V(1e9, 1e9),
		core.V(-1e12, 3.0),
		core.V(math.Inf(-1), 0.0),
	}
	for _, pos := range outside {
		_, ok := g.TileAtPosition(pos)
		assert.False(t, ok, "position %v", pos)
		_, ok = g.ChunkAtPosition(pos)
		assert.False(t, ok, "position %v", pos)
	}
}

func TestChunkGridTileMatchesChunkLookup(t *testing.T) {
	g := newTestGrid(t)

	for py := 0.0; py < 100; py += 3.5 {
		for px := 0.0; px < 120; px += 3.5 {
			pos := core.V(px, py)

			tile, ok := g.TileAtPosition(pos)
			require.True(t, ok, "position %v", pos)

			chunk, ok := g.ChunkAtPosition(pos)
			require.True(t, ok)

			local, ok := chunk.TileAtPosition(pos.Sub(chunk.OriginPosition()))
			require.True(t, ok)
			assert.Equal(t, local, tile, "position %v", pos)

			assert.Equal(t, math.Floor(px/10), tile.Position.X)
			assert.Equal(t, math.Floor(py/10), tile.Position.Y)
		}
	}
}

func TestChunksAround(t *testing.T) {
	g, err := NewChunkGrid(4, 4, 10, 2, 2, nil)
	require.NoError(t, err)

	// Interior chunk (1, 1) sees all nine neighbours
	around := g.ChunksAround(core.V(25.0, 25.0))
	assert.Len(t, around, 9)
	assert.Equal(t, core.V(0, 0), around[0].Origin())
	assert.Equal(t, core.V(4, 4), around[8].Origin())

	// Corner chunk only sees four
	assert.Len(t, g.ChunksAround(core.V(1.0, 1.0)), 4)

	// Just outside the grid still sees the adjacent edge chunks
	assert.Len(t, g.ChunksAround(core.V(-5.0, 5.0)), 2)

	assert.Empty(t, g.ChunksAround(core.V(math.NaN(), 0.0)))
}
