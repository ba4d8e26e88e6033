// Package physics implements probe-based collision: a body is a center point
// plus a set of probe offsets, tested against terrain for blocking and against
// target points for proximity.
package physics

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/world"
)

// CollideBody is a position with probe offsets relative to it.
type CollideBody struct {
	Position core.Vec2
	Probes   []core.Vec2
}

// NewCollideBody creates a body at pos with the given probe offsets.
func NewCollideBody(pos core.Vec2, probes ...core.Vec2) CollideBody {
	return CollideBody{Position: pos, Probes: append([]core.Vec2(nil), probes...)}
}

// Cardinal creates a body with four probes at distance r along +Y, +X, -Y
// and -X, approximating a circle of radius r.
func Cardinal(pos core.Vec2, r float64) CollideBody {
	return NewCollideBody(pos,
		core.V(0, r),
		core.V(r, 0),
		core.V(0, -r),
		core.V(-r, 0),
	)
}

// Clone returns a copy that shares nothing with b.
func (b CollideBody) Clone() CollideBody {
	return NewCollideBody(b.Position, b.Probes...)
}

// Translated returns a clone moved by d.
func (b CollideBody) Translated(d core.Vec2) CollideBody {
	c := b.Clone()
	c.Position = c.Position.Add(d)
	return c
}

// ProbePositions returns the absolute position of every probe.
func (b CollideBody) ProbePositions() []core.Vec2 {
	out := make([]core.Vec2, len(b.Probes))
	for i, p := range b.Probes {
		out[i] = b.Position.Add(p)
	}
	return out
}

// TerrainCollides reports whether any probe lands outside the terrain or on
// a tile whose type is in discriminants.
func (b CollideBody) TerrainCollides(terrain world.Terrain, discriminants mapset.Set[world.TileType]) bool {
	for _, pos := range b.ProbePositions() {
		tile, ok := terrain.TileAtPosition(pos)
		if !ok || discriminants.Has(tile.Type) {
			return true
		}
	}
	return false
}

// ProximityCollides reports whether any probe lies strictly closer than
// threshold to target.
func (b CollideBody) ProximityCollides(target core.Vec2, threshold float64) bool {
	for _, pos := range b.ProbePositions() {
		if core.FromPoints(pos, target).Magnitude() < threshold {
			return true
		}
	}
	return false
}

// Discriminants builds a discriminant set from tile types.
func Discriminants(types ...world.TileType) mapset.Set[world.TileType] {
	set := mapset.New[world.TileType]()
	for _, t := range types {
		set.Put(t)
	}
	return set
}

// Blocking returns the default discriminant set: every blocking tile type.
func Blocking() mapset.Set[world.TileType] {
	set := mapset.New[world.TileType]()
	for _, t := range world.TileTypes {
		if t.Blocking() {
			set.Put(t)
		}
	}
	return set
}
