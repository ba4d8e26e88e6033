package world

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/axesporen/internal/core"
)

// ChunkSpec describes the chunk a Generator is asked to fill.
type ChunkSpec struct {
	Width  int
	Height int
	Origin core.Vector2D[int] // Tile-index origin of the chunk
}

// Layout is the outcome of generating one chunk.
type Layout struct {
	Biome    TileType
	HasBiome bool
	Cell     func(x, y int) TileType // Local coordinates
}

// Generator decides the tile types of a chunk.
type Generator interface {
	Generate(spec ChunkSpec) Layout
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(spec ChunkSpec) Layout

// Generate calls f(spec).
func (f GeneratorFunc) Generate(spec ChunkSpec) Layout {
	return f(spec)
}

// Bordered walls the outer ring of the chunk and fills the interior with grass.
type Bordered struct{}

// Generate implements Generator.
func (Bordered) Generate(spec ChunkSpec) Layout {
	w, h := spec.Width, spec.Height
	return Layout{
		Cell: func(x, y int) TileType {
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				return Wall
			}
			return Grass
		},
	}
}

// Biome picks one terrain class per chunk and paints every cell with it,
// except a periodic column of walls along the chunk's left edge.
// A nil Rand draws from the global source.
type Biome struct {
	Rand *rand.Rand
}

// Generate implements Generator.
func (b Biome) Generate(ChunkSpec) Layout {
	biome := b.pick()
	return Layout{
		Biome:    biome,
		HasBiome: true,
		Cell: func(x, y int) TileType {
			return biomeCell(biome, x, y)
		},
	}
}

// pick draws Grass with probability 2/3, otherwise one of Sand, Snow or Goo.
func (b Biome) pick() TileType {
	if intn(b.Rand, 3) != 0 {
		return Grass
	}
	switch intn(b.Rand, 10) % 3 {
	case 0:
		return Sand
	case 1:
		return Snow
	default:
		return Goo
	}
}

func biomeCell(biome TileType, x, y int) TileType {
	if x == 0 && y%3 == 0 && x%3 == 0 {
		return Wall
	}
	return biome
}

// Noise is the biome generator with groves of wood scattered by 2D Perlin
// noise. Groves are sampled in absolute tile coordinates so they continue
// across chunk edges. Wood never replaces a wall.
type Noise struct {
	Biome
	Scale     float64 // Noise frequency per tile
	Threshold float64 // Noise level in [0,1] above which a cell becomes wood

	field *perlin.Perlin
}

// NewNoise creates a noise generator seeded from rng (or the global source).
func NewNoise(rng *rand.Rand) *Noise {
	var seed int64
	if rng != nil {
		seed = rng.Int63()
	} else {
		seed = rand.Int63()
	}
	return &Noise{
		Biome:     Biome{Rand: rng},
		Scale:     0.15,
		Threshold: 0.68,
		field:     perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Generate implements Generator.
func (n *Noise) Generate(spec ChunkSpec) Layout {
	layout := n.Biome.Generate(spec)
	base := layout.Cell
	layout.Cell = func(x, y int) TileType {
		t := base(x, y)
		if t == Wall {
			return t
		}
		if n.Level(spec.Origin.X+x, spec.Origin.Y+y) > n.Threshold {
			return Wood
		}
		return t
	}
	return layout
}

// Level returns the noise value in [0,1] at an absolute tile index.
func (n *Noise) Level(tx, ty int) float64 {
	v := n.field.Noise2D(float64(tx)*n.Scale, float64(ty)*n.Scale)
	return core.ClampF((v+1)/2, 0, 1)
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
