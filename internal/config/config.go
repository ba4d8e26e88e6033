// Package config provides YAML-based game configuration loading and
// difficulty management for the explorer.
package config

import (
	"errors"
	"fmt"
)

// World layouts.
const (
	LayoutChunked = "chunked" // ChunkGrid of generated chunks
	LayoutFlat    = "flat"    // One bordered chunk covering the whole world
)

// GameConfig contains all configuration for a game session.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Rules      RulesConfig      `yaml:"rules"`
	Audio      AudioConfig      `yaml:"audio"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines how levels are laid out and generated.
type WorldConfig struct {
	Layout      string `yaml:"layout"`       // "chunked" or "flat"
	Generator   string `yaml:"generator"`    // Registry id of the chunk generator
	Columns     int    `yaml:"columns"`      // Chunks per row
	Rows        int    `yaml:"rows"`         // Chunk rows
	ChunkWidth  int    `yaml:"chunk_width"`  // Tiles
	ChunkHeight int    `yaml:"chunk_height"` // Tiles
	TileSize    int    `yaml:"tile_size"`    // Pixels
	SpawnMargin int    `yaml:"spawn_margin"` // Tiles kept free of enemies along the top and left edges
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Speed       float64 `yaml:"speed"`        // Pixels per second
	ProbeRadius float64 `yaml:"probe_radius"` // Pixels
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	PerLevel    int     `yaml:"per_level"`    // Enemies added per level number
	AttackRange float64 `yaml:"attack_range"` // Pixels
	Speed       float64 `yaml:"speed"`        // Pixels per second
	ProbeRadius float64 `yaml:"probe_radius"` // Pixels
}

// RulesConfig defines the distances transitions and aiming use.
type RulesConfig struct {
	GoalDistance  float64 `yaml:"goal_distance"`
	EnemyDistance float64 `yaml:"enemy_distance"`
	CursorMin     float64 `yaml:"cursor_min"`
	CursorMax     float64 `yaml:"cursor_max"`
}

// AudioConfig defines the music played by scenes.
type AudioConfig struct {
	Enabled     bool   `yaml:"enabled"`
	MenuTrack   string `yaml:"menu_track"`
	WorldTrack  string `yaml:"world_track"`
	FireEffect  string `yaml:"fire_effect"`
	MenuVolume  int    `yaml:"menu_volume"`
	WorldVolume int    `yaml:"world_volume"`
}

// CameraConfig defines the window size used when the platform reports none.
type CameraConfig struct {
	WindowWidth  float64 `yaml:"window_width"`
	WindowHeight float64 `yaml:"window_height"`
}

// Validate reports every invalid setting.
func (c GameConfig) Validate() error {
	var errs []error

	switch c.World.Layout {
	case LayoutChunked, LayoutFlat:
	default:
		errs = append(errs, fmt.Errorf("world.layout %q must be %q or %q", c.World.Layout, LayoutChunked, LayoutFlat))
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"world.columns", float64(c.World.Columns)},
		{"world.rows", float64(c.World.Rows)},
		{"world.chunk_width", float64(c.World.ChunkWidth)},
		{"world.chunk_height", float64(c.World.ChunkHeight)},
		{"world.tile_size", float64(c.World.TileSize)},
		{"player.speed", c.Player.Speed},
		{"player.probe_radius", c.Player.ProbeRadius},
		{"enemy.speed", c.Enemy.Speed},
		{"enemy.probe_radius", c.Enemy.ProbeRadius},
		{"rules.goal_distance", c.Rules.GoalDistance},
		{"rules.enemy_distance", c.Rules.EnemyDistance},
		{"camera.window_width", c.Camera.WindowWidth},
		{"camera.window_height", c.Camera.WindowHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.value))
		}
	}

	if c.World.SpawnMargin < 0 {
		errs = append(errs, fmt.Errorf("world.spawn_margin must not be negative, got %d", c.World.SpawnMargin))
	}
	if c.Enemy.PerLevel < 0 {
		errs = append(errs, fmt.Errorf("enemy.per_level must not be negative, got %d", c.Enemy.PerLevel))
	}
	if c.Rules.CursorMin > c.Rules.CursorMax {
		errs = append(errs, fmt.Errorf("rules.cursor_min %v exceeds rules.cursor_max %v", c.Rules.CursorMin, c.Rules.CursorMax))
	}

	// Enemies spawn in [spawn_margin, last) tiles per axis. Flat worlds keep
	// the wall ring out of reach, so last is total-2 there.
	if c.World.Columns > 0 && c.World.ChunkWidth > 0 && c.World.Rows > 0 && c.World.ChunkHeight > 0 {
		w := c.World.Columns * c.World.ChunkWidth
		h := c.World.Rows * c.World.ChunkHeight
		last := min(w, h) - 1
		if c.World.Layout == LayoutFlat {
			last--
		}
		if c.World.SpawnMargin >= last {
			errs = append(errs, fmt.Errorf("world.spawn_margin %d leaves no room in a %dx%d tile world", c.World.SpawnMargin, w, h))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
