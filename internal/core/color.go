package core

import "fmt"

// Color is a 24-bit RGB color used for text and sprite glyphs.
// The zero Color means "terminal default".
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c == Color{}
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by scenes and sprites.
var (
	ColorMagenta = RGB(255, 0, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorPurple  = RGB(100, 0, 200)
	ColorMaroon  = RGB(100, 0, 0)
	ColorAmber   = RGB(200, 150, 0)
	ColorSand    = RGB(200, 150, 100)
)
