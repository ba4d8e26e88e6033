package scene

import "github.com/vovakirdan/axesporen/internal/world"

// Sprite ids the scenes draw.
const (
	SpriteGrass   = "tile_grass"
	SpriteWall    = "tile_wall"
	SpriteSand    = "tile_sand"
	SpriteSnow    = "tile_snow"
	SpriteGoo     = "tile_goo"
	SpriteWood    = "tile_wood"
	SpritePlayer  = "chicken"
	SpriteEnemy   = "crocodile"
	SpriteGoal    = "door"
	SpriteCursor  = "crosshair"
	SpritePanel   = "panel"
	SpritePlanet0 = "planet_0"
	SpritePlanet1 = "planet_1"
	SpritePlanet2 = "planet_2"
	SpritePlanet3 = "planet_3"
)

// TileSprite returns the sprite id drawn for a tile type.
func TileSprite(t world.TileType) string {
	switch t {
	case world.Wall:
		return SpriteWall
	case world.Sand:
		return SpriteSand
	case world.Snow:
		return SpriteSnow
	case world.Goo:
		return SpriteGoo
	case world.Wood:
		return SpriteWood
	default:
		return SpriteGrass
	}
}
