package core

// RuntimeConfig contains the platform parameters a game session starts with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means time based
	CellW    int   // Virtual pixels per character column
	CellH    int   // Virtual pixels per character row
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
		CellW:    8,
		CellH:    16,
	}
}

// DeltaTime returns the fixed simulation step in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// PixelSize returns the screen size in virtual pixels.
func (c RuntimeConfig) PixelSize() Vec2 {
	return Vec2{X: float64(c.ScreenW * c.CellW), Y: float64(c.ScreenH * c.CellH)}
}
