package tui

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/scene"
)

// ErrUnknownSprite is returned when drawing a sprite id the canvas has no
// glyph for.
var ErrUnknownSprite = errors.New("tui: unknown sprite")

// boldFontSize is the smallest font size drawn in bold.
const boldFontSize = 30

type spriteKind int

const (
	spriteFill  spriteKind = iota // Fill the area's background
	spriteGlyph                   // One glyph in the middle of the area
	spriteBox                     // Filled box with a border
	spriteDisc                    // Filled ellipse
)

type sprite struct {
	kind  spriteKind
	glyph rune
	fg    core.Color
	bg    core.Color
}

var sprites = map[string]sprite{
	scene.SpriteGrass:   {kind: spriteFill, glyph: ' ', bg: core.RGB(46, 120, 52)},
	scene.SpriteWall:    {kind: spriteFill, glyph: '▓', fg: core.RGB(150, 150, 150), bg: core.RGB(70, 70, 70)},
	scene.SpriteSand:    {kind: spriteFill, glyph: '.', fg: core.ColorSand, bg: core.RGB(222, 196, 140)},
	scene.SpriteSnow:    {kind: spriteFill, glyph: '*', fg: core.RGB(200, 210, 230), bg: core.RGB(240, 244, 250)},
	scene.SpriteGoo:     {kind: spriteFill, glyph: '~', fg: core.RGB(160, 60, 200), bg: core.ColorPurple},
	scene.SpriteWood:    {kind: spriteFill, glyph: '♣', fg: core.RGB(20, 70, 20), bg: core.RGB(30, 90, 36)},
	scene.SpritePlayer:  {kind: spriteGlyph, glyph: '@', fg: core.RGB(255, 255, 255)},
	scene.SpriteEnemy:   {kind: spriteGlyph, glyph: 'C', fg: core.ColorRed},
	scene.SpriteGoal:    {kind: spriteGlyph, glyph: '▣', fg: core.ColorAmber},
	scene.SpriteCursor:  {kind: spriteGlyph, glyph: '+', fg: core.ColorMagenta},
	scene.SpritePanel:   {kind: spriteBox, glyph: ' ', fg: core.ColorMagenta, bg: core.RGB(20, 0, 40)},
	scene.SpritePlanet0: {kind: spriteDisc, glyph: ' ', bg: core.ColorMaroon},
	scene.SpritePlanet1: {kind: spriteDisc, glyph: ' ', bg: core.ColorPurple},
	scene.SpritePlanet2: {kind: spriteDisc, glyph: ' ', bg: core.ColorAmber},
	scene.SpritePlanet3: {kind: spriteDisc, glyph: ' ', bg: core.ColorSand},
}

// Canvas draws scene sprites and text into a screen buffer. Scenes work in
// pixels; each character cell covers cellW by cellH of them.
type Canvas struct {
	screen *core.Screen
	cellW  int
	cellH  int
}

// NewCanvas creates a canvas over screen.
func NewCanvas(screen *core.Screen, cellW, cellH int) *Canvas {
	return &Canvas{screen: screen, cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// Screen returns the buffer the canvas draws into.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Clear blanks the buffer before a frame.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Size implements scene.Window.
func (c *Canvas) Size() core.Vec2 {
	return core.V(float64(c.screen.Width()*c.cellW), float64(c.screen.Height()*c.cellH))
}

// DrawSprite implements scene.SpriteDrawer. The drawn area is dest, or src
// when dest is nil, or a single cell when both are nil.
func (c *Canvas) DrawSprite(id string, pos core.Vector2D[int], src, dest *core.Vector2D[int]) error {
	sp, ok := sprites[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSprite, id)
	}

	size := core.V(c.cellW, c.cellH)
	switch {
	case dest != nil:
		size = *dest
	case src != nil:
		size = *src
	}
	area := c.cells(pos, size)

	switch sp.kind {
	case spriteFill:
		c.screen.FillRect(area, core.Cell{Rune: sp.glyph, Fg: sp.fg, Bg: sp.bg})
	case spriteGlyph:
		x, y := area.Center()
		c.screen.Overlay(x, y, sp.glyph, sp.fg, true)
	case spriteBox:
		c.screen.FillRect(area, core.Cell{Rune: sp.glyph, Bg: sp.bg})
		c.screen.DrawBox(area, sp.fg)
	case spriteDisc:
		c.fillDisc(area, sp)
	}
	return nil
}

// DrawText implements scene.TextDrawer. Large font sizes are drawn bold.
func (c *Canvas) DrawText(text string, x, y, fontSize int, color core.Color) error {
	if fontSize <= 0 {
		return fmt.Errorf("tui: invalid font size %d", fontSize)
	}
	c.screen.DrawText(core.FloorDiv(x, c.cellW), core.FloorDiv(y, c.cellH), text, color, fontSize >= boldFontSize)
	return nil
}

// cells converts a pixel rectangle to the cells it touches.
func (c *Canvas) cells(pos, size core.Vector2D[int]) core.Rect {
	x0 := core.FloorDiv(pos.X, c.cellW)
	y0 := core.FloorDiv(pos.Y, c.cellH)
	x1 := core.FloorDiv(pos.X+size.X+c.cellW-1, c.cellW)
	y1 := core.FloorDiv(pos.Y+size.Y+c.cellH-1, c.cellH)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (c *Canvas) fillDisc(area core.Rect, sp sprite) {
	rx := float64(area.W) / 2
	ry := float64(area.H) / 2
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			dx := (float64(x-area.X) + 0.5 - rx) / rx
			dy := (float64(y-area.Y) + 0.5 - ry) / ry
			if dx*dx+dy*dy <= 1 {
				c.screen.SetCell(x, y, core.Cell{Rune: sp.glyph, Fg: sp.fg, Bg: sp.bg})
			}
		}
	}
}

var (
	_ scene.SpriteDrawer = (*Canvas)(nil)
	_ scene.TextDrawer   = (*Canvas)(nil)
	_ scene.Window       = (*Canvas)(nil)
)
