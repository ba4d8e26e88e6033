package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Layout:      LayoutChunked,
			Generator:   "biome",
			Columns:     10,
			Rows:        10,
			ChunkWidth:  20,
			ChunkHeight: 20,
			TileSize:    32,
			SpawnMargin: 10,
		},
		Player: PlayerConfig{
			StartX:      64,
			StartY:      64,
			Speed:       600,
			ProbeRadius: 16,
		},
		Enemy: EnemyConfig{
			PerLevel:    10,
			AttackRange: 300,
			Speed:       20,
			ProbeRadius: 16,
		},
		Rules: RulesConfig{
			GoalDistance:  16,
			EnemyDistance: 32,
			CursorMin:     32,
			CursorMax:     64,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MenuTrack:   "digital-love",
			WorldTrack:  "hold-the-line",
			FireEffect:  "arme",
			MenuVolume:  1,
			WorldVolume: 20,
		},
		Camera: CameraConfig{
			WindowWidth:  800,
			WindowHeight: 600,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			MaxAtWorld:   10,
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				RangeMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
