package scene

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/entity"
	"github.com/vovakirdan/axesporen/internal/physics"
	"github.com/vovakirdan/axesporen/internal/registry"
	"github.com/vovakirdan/axesporen/internal/world"
)

// goalProbeRadius is the probe radius of the goal body.
const goalProbeRadius = 16

// Level is the generated content of one world: its terrain and everything
// placed on it. Structure is fixed once built; only positions change.
type Level struct {
	Number    int
	Generator string // Registry id, or "bordered" for flat worlds
	Terrain   world.Map
	Player    *entity.Player
	Enemies   []*entity.Enemy
	Goal      physics.CollideBody
}

// BuildLevel generates world number n. Enemies (per_level * n of them) spawn
// on random tiles between the spawn margin and the far edge; the goal sits on
// one of the three corners away from the start, chosen uniformly.
// A nil rng draws from the global source.
func BuildLevel(cfg config.GameConfig, n int, rng *rand.Rand) (*Level, error) {
	wc := cfg.World
	tilesW := wc.Columns * wc.ChunkWidth
	tilesH := wc.Rows * wc.ChunkHeight

	var (
		terrain world.Map
		genID   string
		last    core.Vector2D[int] // Last tile index a spawn may use
	)

	switch wc.Layout {
	case config.LayoutFlat:
		chunk, err := world.NewChunk(tilesW, tilesH, wc.TileSize, core.V(0, 0), world.Bordered{})
		if err != nil {
			return nil, fmt.Errorf("scene: build world %d: %w", n, err)
		}
		terrain, genID = chunk, registry.Bordered
		// Stay inside the wall ring
		last = core.V(tilesW-2, tilesH-2)
	default:
		gen, err := registry.Create(wc.Generator, rng)
		if err != nil {
			return nil, fmt.Errorf("scene: build world %d: %w", n, err)
		}
		grid, err := world.NewChunkGrid(wc.Columns, wc.Rows, wc.TileSize, wc.ChunkWidth, wc.ChunkHeight, gen)
		if err != nil {
			return nil, fmt.Errorf("scene: build world %d: %w", n, err)
		}
		terrain, genID = grid, wc.Generator
		last = grid.TileCount().Sub(core.V(1, 1))
	}

	first := core.V(wc.SpawnMargin, wc.SpawnMargin)
	if first.X >= last.X || first.Y >= last.Y {
		return nil, fmt.Errorf("scene: build world %d: spawn margin %d leaves no room: %w",
			n, wc.SpawnMargin, world.ErrInvalidDimensions)
	}

	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	speed := difficulty.EnemySpeed(cfg.Enemy.Speed, n)
	attackRange := difficulty.AttackRange(cfg.Enemy.AttackRange, n)

	count := cfg.Enemy.PerLevel * n
	enemies := make([]*entity.Enemy, 0, count)
	for i := 0; i < count; i++ {
		tile := core.V(
			first.X+intn(rng, last.X-first.X),
			first.Y+intn(rng, last.Y-first.Y),
		)
		enemies = append(enemies, entity.NewEnemy(tilePixels(tile, wc.TileSize), cfg.Enemy.ProbeRadius, attackRange, speed))
	}

	var goal core.Vector2D[int]
	switch intn(rng, 3) {
	case 0:
		goal = last
	case 1:
		goal = core.V(first.X, last.Y)
	default:
		goal = core.V(last.X, first.Y)
	}

	return &Level{
		Number:    n,
		Generator: genID,
		Terrain:   terrain,
		Player:    entity.NewPlayer(core.V(cfg.Player.StartX, cfg.Player.StartY), cfg.Player.ProbeRadius, cfg.Player.Speed),
		Enemies:   enemies,
		Goal:      physics.Cardinal(tilePixels(goal, wc.TileSize), goalProbeRadius),
	}, nil
}

func tilePixels(tile core.Vector2D[int], tileSize int) core.Vec2 {
	return core.Convert[float64](tile.Scale(tileSize))
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
