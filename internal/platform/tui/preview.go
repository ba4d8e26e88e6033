package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/scene"
	"github.com/vovakirdan/axesporen/internal/world"
)

// Preview glyphs, one character per tile.
const (
	GlyphPlayer = '@'
	GlyphEnemy  = 'E'
	GlyphGoal   = 'G'
)

var tileGlyphs = map[world.TileType]rune{
	world.Grass: '.',
	world.Wall:  '#',
	world.Sand:  ':',
	world.Snow:  '*',
	world.Goo:   '~',
	world.Wood:  'T',
}

// PreviewScreen draws a whole level into a screen buffer at one cell per
// tile, with enemies, the goal and the player on top.
func PreviewScreen(lvl *scene.Level) *core.Screen {
	ts := lvl.Terrain.TileSize()
	size := lvl.Terrain.Size()
	w := int(size.X) / ts
	h := int(size.Y) / ts

	s := core.NewScreen(w, h)
	put := func(t world.Tile) {
		sp := sprites[scene.TileSprite(t.Type)]
		s.SetCell(int(t.Position.X), int(t.Position.Y), core.Cell{Rune: tileGlyphs[t.Type], Fg: sp.fg, Bg: sp.bg})
	}
	switch terrain := lvl.Terrain.(type) {
	case *world.ChunkGrid:
		terrain.ForEachChunk(func(_ core.Vector2D[int], c *world.Chunk) {
			c.ForEach(put)
		})
	case *world.Chunk:
		terrain.ForEach(put)
	}

	mark := func(pos core.Vec2, r rune, fg core.Color) {
		x := int(math.Floor(pos.X / float64(ts)))
		y := int(math.Floor(pos.Y / float64(ts)))
		s.Overlay(x, y, r, fg, true)
	}
	for _, e := range lvl.Enemies {
		mark(e.Position(), GlyphEnemy, core.ColorRed)
	}
	mark(lvl.Goal.Position, GlyphGoal, core.ColorAmber)
	mark(lvl.Player.Position(), GlyphPlayer, core.RGB(255, 255, 255))

	return s
}

// PreviewLegend describes the preview glyphs.
func PreviewLegend() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return dim.Render("@ player  E enemy  G goal  . grass  # wall  : sand  * snow  ~ goo  T wood")
}
