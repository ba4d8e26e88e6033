package world

import (
	"fmt"

	"github.com/vovakirdan/axesporen/internal/core"
)

// ChunkGrid is a cols x rows grid of equally sized chunks forming a whole
// level. The chunk at grid index (cx, cy) has tile-index origin
// (cx*chunkWidth, cy*chunkHeight).
type ChunkGrid struct {
	chunks      [][]*Chunk // [row][col]
	cols        int
	rows        int
	tileSize    int
	chunkWidth  int
	chunkHeight int
}

// NewChunkGrid builds every chunk of the grid with gen.
func NewChunkGrid(cols, rows, tileSize, chunkWidth, chunkHeight int, gen Generator) (*ChunkGrid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("world: grid %dx%d: %w", cols, rows, ErrInvalidDimensions)
	}

	chunks := make([][]*Chunk, rows)
	for r := range chunks {
		chunks[r] = make([]*Chunk, cols)
		for c := range chunks[r] {
			origin := core.V(c*chunkWidth, r*chunkHeight)
			chunk, err := NewChunk(chunkWidth, chunkHeight, tileSize, origin, gen)
			if err != nil {
				return nil, err
			}
			chunks[r][c] = chunk
		}
	}

	return &ChunkGrid{
		chunks:      chunks,
		cols:        cols,
		rows:        rows,
		tileSize:    tileSize,
		chunkWidth:  chunkWidth,
		chunkHeight: chunkHeight,
	}, nil
}

// Columns returns the number of chunk columns.
func (g *ChunkGrid) Columns() int { return g.cols }

// Rows returns the number of chunk rows.
func (g *ChunkGrid) Rows() int { return g.rows }

// TileSize returns the pixel edge length of one tile.
func (g *ChunkGrid) TileSize() int { return g.tileSize }

// ChunkWidth returns the width of every chunk in tiles.
func (g *ChunkGrid) ChunkWidth() int { return g.chunkWidth }

// ChunkHeight returns the height of every chunk in tiles.
func (g *ChunkGrid) ChunkHeight() int { return g.chunkHeight }

// Size returns the grid extent in pixels.
func (g *ChunkGrid) Size() core.Vec2 {
	return core.V(
		float64(g.cols*g.chunkWidth*g.tileSize),
		float64(g.rows*g.chunkHeight*g.tileSize),
	)
}

// TileCount returns the grid extent in tiles.
func (g *ChunkGrid) TileCount() core.Vector2D[int] {
	return core.V(g.cols*g.chunkWidth, g.rows*g.chunkHeight)
}

// ChunkIndexOf returns the grid index of the chunk containing pos. Each axis
// divides by its own chunk dimension. The index may lie outside the grid;
// false is returned only when pos has no index at all (NaN or infinite).
func (g *ChunkGrid) ChunkIndexOf(pos core.Vec2) (core.Vector2D[int], bool) {
	tx, okX := tileIndex(pos.X, g.tileSize)
	ty, okY := tileIndex(pos.Y, g.tileSize)
	if !okX || !okY {
		return core.Vector2D[int]{}, false
	}
	return g.chunkIndexOfTile(tx, ty), true
}

func (g *ChunkGrid) chunkIndexOfTile(tx, ty int) core.Vector2D[int] {
	return core.V(core.FloorDiv(tx, g.chunkWidth), core.FloorDiv(ty, g.chunkHeight))
}

// ValidIndex reports whether index addresses a chunk of the grid.
func (g *ChunkGrid) ValidIndex(index core.Vector2D[int]) bool {
	return index.X >= 0 && index.Y >= 0 && index.X < g.cols && index.Y < g.rows
}

// ChunkAt returns the chunk at a grid index.
func (g *ChunkGrid) ChunkAt(index core.Vector2D[int]) (*Chunk, error) {
	if !g.ValidIndex(index) {
		return nil, fmt.Errorf("world: chunk (%d, %d) of %dx%d grid: %w",
			index.X, index.Y, g.cols, g.rows, ErrInvalidChunkIndex)
	}
	return g.chunks[index.Y][index.X], nil
}

// ChunkAtPosition returns the chunk containing a pixel position.
func (g *ChunkGrid) ChunkAtPosition(pos core.Vec2) (*Chunk, bool) {
	index, ok := g.ChunkIndexOf(pos)
	if !ok || !g.ValidIndex(index) {
		return nil, false
	}
	return g.chunks[index.Y][index.X], true
}

// TileAtPosition resolves an absolute pixel position to a tile.
func (g *ChunkGrid) TileAtPosition(pos core.Vec2) (Tile, bool) {
	tx, okX := tileIndex(pos.X, g.tileSize)
	ty, okY := tileIndex(pos.Y, g.tileSize)
	if !okX || !okY {
		return Tile{}, false
	}

	index := g.chunkIndexOfTile(tx, ty)
	if !g.ValidIndex(index) {
		return Tile{}, false
	}

	chunk := g.chunks[index.Y][index.X]
	origin := chunk.Origin()
	return chunk.TileAt(tx-origin.X, ty-origin.Y)
}

// ChunksAround returns the in-bounds chunks of the 3x3 neighbourhood around
// the chunk containing pos, in row-major order.
func (g *ChunkGrid) ChunksAround(pos core.Vec2) []*Chunk {
	center, ok := g.ChunkIndexOf(pos)
	if !ok {
		return nil
	}

	around := make([]*Chunk, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			index := core.V(center.X+dx, center.Y+dy)
			if g.ValidIndex(index) {
				around = append(around, g.chunks[index.Y][index.X])
			}
		}
	}
	return around
}

// ForEachChunk calls fn for every chunk in row-major order.
func (g *ChunkGrid) ForEachChunk(fn func(index core.Vector2D[int], c *Chunk)) {
	for r, row := range g.chunks {
		for c, chunk := range row {
			fn(core.V(c, r), chunk)
		}
	}
}

var (
	_ Map = (*Chunk)(nil)
	_ Map = (*ChunkGrid)(nil)
)
