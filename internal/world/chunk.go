package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/axesporen/internal/core"
)

// maxTileIndex bounds tile indices computed from positions so that float to
// int conversion never overflows.
const maxTileIndex = 1 << 40

// Chunk is a fixed-size rectangular grid of tiles with its own tile-index
// origin. Every tile's Position equals origin + (x, y).
type Chunk struct {
	tiles    [][]Tile // [y][x]
	width    int
	height   int
	tileSize int
	origin   core.Vector2D[int]
	biome    TileType
	hasBiome bool
}

// NewChunk builds a width x height chunk whose tile types come from gen.
// A nil generator produces a bordered chunk.
func NewChunk(width, height, tileSize int, origin core.Vector2D[int], gen Generator) (*Chunk, error) {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("world: chunk %dx%d tile %d: %w", width, height, tileSize, ErrInvalidDimensions)
	}
	if gen == nil {
		gen = Bordered{}
	}

	layout := gen.Generate(ChunkSpec{Width: width, Height: height, Origin: origin})

	tiles := make([][]Tile, height)
	for y := range tiles {
		row := make([]Tile, width)
		for x := range row {
			row[x] = Tile{
				Position: core.V(float64(origin.X+x), float64(origin.Y+y)),
				Type:     layout.Cell(x, y),
			}
		}
		tiles[y] = row
	}

	return &Chunk{
		tiles:    tiles,
		width:    width,
		height:   height,
		tileSize: tileSize,
		origin:   origin,
		biome:    layout.Biome,
		hasBiome: layout.HasBiome,
	}, nil
}

// Width returns the chunk width in tiles.
func (c *Chunk) Width() int { return c.width }

// Height returns the chunk height in tiles.
func (c *Chunk) Height() int { return c.height }

// TileSize returns the pixel edge length of one tile.
func (c *Chunk) TileSize() int { return c.tileSize }

// Origin returns the tile-index origin of the chunk.
func (c *Chunk) Origin() core.Vector2D[int] { return c.origin }

// OriginPosition returns the origin in pixels.
func (c *Chunk) OriginPosition() core.Vec2 {
	return core.Convert[float64](c.origin.Scale(c.tileSize))
}

// Biome returns the terrain class chosen for the chunk, if any.
func (c *Chunk) Biome() (TileType, bool) {
	return c.biome, c.hasBiome
}

// Size returns the chunk extent in pixels.
func (c *Chunk) Size() core.Vec2 {
	return core.V(float64(c.width*c.tileSize), float64(c.height*c.tileSize))
}

// TileAt returns the tile at a local index.
func (c *Chunk) TileAt(x, y int) (Tile, bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Tile{}, false
	}
	return c.tiles[y][x], true
}

// TileAtPosition returns the tile under a pixel position relative to the
// chunk's own top-left corner.
func (c *Chunk) TileAtPosition(pos core.Vec2) (Tile, bool) {
	x, okX := tileIndex(pos.X, c.tileSize)
	y, okY := tileIndex(pos.Y, c.tileSize)
	if !okX || !okY {
		return Tile{}, false
	}
	return c.TileAt(x, y)
}

// ChunksAround returns the chunk itself; a lone chunk is its own neighbourhood.
func (c *Chunk) ChunksAround(core.Vec2) []*Chunk {
	return []*Chunk{c}
}

// ForEach calls fn for every tile in row-major order.
func (c *Chunk) ForEach(fn func(t Tile)) {
	for _, row := range c.tiles {
		for _, t := range row {
			fn(t)
		}
	}
}

// tileIndex floors v / tileSize. It reports false for values that have no
// meaningful index (NaN, infinities, or beyond maxTileIndex).
func tileIndex(v float64, tileSize int) (int, bool) {
	f := math.Floor(v / float64(tileSize))
	if math.IsNaN(f) || f > maxTileIndex || f < -maxTileIndex {
		return 0, false
	}
	return int(f), true
}
