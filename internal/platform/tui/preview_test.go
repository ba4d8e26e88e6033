package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/scene"
)

func TestPreviewScreen(t *testing.T) {
	cfg := testGameConfig()
	cfg.Enemy.PerLevel = 2
	lvl, err := scene.BuildLevel(cfg, 1, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("BuildLevel() failed: %v", err)
	}

	s := PreviewScreen(lvl)

	if s.Width() != 20 || s.Height() != 20 {
		t.Fatalf("preview size = %dx%d, expected 20x20", s.Width(), s.Height())
	}
	if got := s.Get(0, 0); got != '#' {
		t.Errorf("corner = %q, expected wall", got)
	}
	// Player starts at (64, 64) on 32 pixel tiles
	if got := s.Get(2, 2); got != GlyphPlayer {
		t.Errorf("Get(2,2) = %q, expected player", got)
	}

	out := s.String()
	if strings.Count(out, string(GlyphGoal)) != 1 {
		t.Errorf("expected one goal in preview:\n%s", out)
	}
}

func TestPreviewFlatLayout(t *testing.T) {
	cfg := testGameConfig()
	cfg.World.Layout = config.LayoutFlat
	lvl, err := scene.BuildLevel(cfg, 1, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("BuildLevel() failed: %v", err)
	}

	s := PreviewScreen(lvl)

	if got := s.Get(19, 19); got != '#' {
		t.Errorf("flat corner = %q, expected wall", got)
	}
	if got := s.Get(10, 0); got != '#' {
		t.Errorf("flat top edge = %q, expected wall", got)
	}
}

func TestPreviewCoversEveryChunk(t *testing.T) {
	cfg := testGameConfig()
	cfg.World.Generator = "biome"
	lvl, err := scene.BuildLevel(cfg, 1, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("BuildLevel() failed: %v", err)
	}

	s := PreviewScreen(lvl)

	known := map[rune]bool{GlyphPlayer: true, GlyphEnemy: true, GlyphGoal: true}
	for _, r := range tileGlyphs {
		known[r] = true
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if r := s.Get(x, y); !known[r] {
				t.Errorf("Get(%d,%d) = %q, expected a tile glyph", x, y, r)
			}
		}
	}
}
