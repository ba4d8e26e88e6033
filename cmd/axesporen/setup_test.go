package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/registry"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldCfg, oldDiff })
}

func TestLoadGameConfigGenerator(t *testing.T) {
	withFlags(t, "", "")

	cfg, err := loadGameConfig(registry.Noise)
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.World.Generator != registry.Noise {
		t.Errorf("Generator = %q, expected %q", cfg.World.Generator, registry.Noise)
	}

	if _, err := loadGameConfig("volcano"); err == nil {
		t.Error("loadGameConfig(volcano) should fail")
	}
}

func TestLoadGameConfigDifficulty(t *testing.T) {
	withFlags(t, "", string(config.DifficultyHard))

	cfg, err := loadGameConfig("")
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset did not enable difficulty scaling")
	}
	if cfg.Difficulty.InitialLevel != config.InitialLevelForPreset(config.DifficultyHard) {
		t.Errorf("InitialLevel = %v, expected hard preset level", cfg.Difficulty.InitialLevel)
	}

	withFlags(t, "", "nightmare")
	if _, err := loadGameConfig(""); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	withFlags(t, "/nonexistent/game.yaml", "")

	if _, err := loadGameConfig(""); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestLoadGameConfigUnknownGeneratorInFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("world:\n  generator: volcano\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	withFlags(t, path, "")

	if _, err := loadGameConfig(""); err == nil {
		t.Error("unknown generator in config file should fail")
	}

	// An explicit generator replaces the bad one
	cfg, err := loadGameConfig(registry.Biome)
	if err != nil {
		t.Fatalf("loadGameConfig(biome) failed: %v", err)
	}
	if cfg.World.Generator != registry.Biome {
		t.Errorf("Generator = %q, expected %q", cfg.World.Generator, registry.Biome)
	}
}

func TestLoadGameConfigFlatIgnoresGenerator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("world:\n  layout: flat\n  generator: volcano\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	withFlags(t, path, "")

	if _, err := loadGameConfig(""); err != nil {
		t.Errorf("loadGameConfig() = %v, expected flat layout to load", err)
	}
}
