package registry

import (
	"math/rand"

	"github.com/vovakirdan/axesporen/internal/world"
)

// Built-in generator ids.
const (
	Bordered = "bordered"
	Biome    = "biome"
	Noise    = "noise"
)

func init() {
	Register(Bordered, "Walled meadow", func(*rand.Rand) world.Generator {
		return world.Bordered{}
	})
	Register(Biome, "Random biomes", func(rng *rand.Rand) world.Generator {
		return world.Biome{Rand: rng}
	})
	Register(Noise, "Biomes with woods", func(rng *rand.Rand) world.Generator {
		return world.NewNoise(rng)
	})
}
