package entity

import (
	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/physics"
)

// Enemy chases the player once it comes within AttackRange.
// Enemies ignore terrain and may walk through walls.
type Enemy struct {
	Body        physics.CollideBody
	AttackRange float64 // Pixels
	Speed       float64 // Pixels per second
}

// NewEnemy creates an enemy at pos with cardinal probes of the given radius.
func NewEnemy(pos core.Vec2, probeRadius, attackRange, speed float64) *Enemy {
	return &Enemy{
		Body:        physics.Cardinal(pos, probeRadius),
		AttackRange: attackRange,
		Speed:       speed,
	}
}

// Position returns the centre of the enemy.
func (e *Enemy) Position() core.Vec2 {
	return e.Body.Position
}

// Chasing reports whether target is within attack range.
func (e *Enemy) Chasing(target core.Vec2) bool {
	return e.Body.Position.Distance(target) < e.AttackRange
}

// Update moves the enemy toward target by Speed*dt when it is chasing.
// The decision is made from scratch every call. An enemy standing exactly on
// the target has no direction and stays put.
func (e *Enemy) Update(dt float64, target core.Vec2) {
	if !e.Chasing(target) {
		return
	}
	dir, ok := core.FromPoints(e.Body.Position, target).Normalized()
	if !ok {
		return
	}
	e.Body.Position = e.Body.Position.Add(dir.Scale(e.Speed * dt))
}
