// Package entity holds the moving actors of a world: the player and the
// enemies chasing it.
package entity

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/physics"
	"github.com/vovakirdan/axesporen/internal/world"
)

// Player is the body steered by the user. It holds kinematic state only;
// whether a move is legal is decided by the caller.
type Player struct {
	Body  physics.CollideBody
	Speed float64 // Pixels per second
}

// NewPlayer creates a player at pos with cardinal probes of the given radius.
func NewPlayer(pos core.Vec2, probeRadius, speed float64) *Player {
	return &Player{
		Body:  physics.Cardinal(pos, probeRadius),
		Speed: speed,
	}
}

// Position returns the centre of the player.
func (p *Player) Position() core.Vec2 {
	return p.Body.Position
}

// TryMove tests d on a clone of the body and commits it only when the moved
// clone does not collide with terrain. It reports whether the move happened.
func (p *Player) TryMove(d core.Vec2, terrain world.Terrain, discriminants mapset.Set[world.TileType]) bool {
	if p.Body.Translated(d).TerrainCollides(terrain, discriminants) {
		return false
	}
	p.Body.Position = p.Body.Position.Add(d)
	return true
}
