// Package world holds the spatial model of a level: tiles, chunks of tiles and
// the chunk grid that resolves absolute pixel positions to tiles across chunk
// boundaries. Every lookup is total: positions outside the model report
// "no tile" instead of failing.
package world

import (
	"errors"

	"github.com/vovakirdan/axesporen/internal/core"
)

// Sentinel errors returned by constructors and index lookups.
var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrInvalidChunkIndex = errors.New("invalid chunk index")
)

// TileType is the terrain class of a tile.
type TileType uint8

// Terrain classes. Wall is the only one gameplay treats as blocking.
const (
	Grass TileType = iota
	Wall
	Sand
	Snow
	Goo
	Wood
)

// TileTypes lists every terrain class in declaration order.
var TileTypes = []TileType{Grass, Wall, Sand, Snow, Goo, Wood}

var tileNames = [...]string{
	Grass: "grass",
	Wall:  "wall",
	Sand:  "sand",
	Snow:  "snow",
	Goo:   "goo",
	Wood:  "wood",
}

// String returns the lower-case name of the tile type.
func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "unknown"
}

// Blocking reports whether the type stops movement under default rules.
func (t TileType) Blocking() bool {
	return t == Wall
}

// Tile is one cell of terrain. Position is in world tile-index coordinates,
// not pixels.
type Tile struct {
	Position core.Vec2
	Type     TileType
}

// Terrain resolves absolute pixel positions to tiles.
// Both a single Chunk and a ChunkGrid are terrains.
type Terrain interface {
	TileAtPosition(pos core.Vec2) (Tile, bool)
}

// Map is a terrain a scene can walk, draw and place things on.
type Map interface {
	Terrain

	// ChunksAround returns the chunks in the 3x3 neighbourhood of the chunk
	// containing pos, skipping those outside the map.
	ChunksAround(pos core.Vec2) []*Chunk

	// Size returns the map extent in pixels.
	Size() core.Vec2

	// TileSize returns the pixel edge length of one tile.
	TileSize() int
}
