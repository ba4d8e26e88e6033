package core

import "math"

// Number is the set of numeric types a Vector2D can carry.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector2D is a 2D vector of any numeric type.
// All methods are pure: they return new values and never mutate the receiver.
type Vector2D[T Number] struct {
	X, Y T
}

// Vec2 is the floating point vector used for world and pixel positions.
type Vec2 = Vector2D[float64]

// V creates a vector from its components.
func V[T Number](x, y T) Vector2D[T] {
	return Vector2D[T]{X: x, Y: y}
}

// FromPoints returns the vector going from a to b (b - a).
func FromPoints[T Number](a, b Vector2D[T]) Vector2D[T] {
	return b.Sub(a)
}

// Convert changes the component type of a vector.
// Float to integer conversion truncates toward zero.
func Convert[U, T Number](v Vector2D[T]) Vector2D[U] {
	return Vector2D[U]{X: U(v.X), Y: U(v.Y)}
}

// Add returns v + o.
func (v Vector2D[T]) Add(o Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
// Unsigned vectors wrap around like their component type does.
func (v Vector2D[T]) Sub(o Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vector2D[T]) Scale(f T) Vector2D[T] {
	return Vector2D[T]{X: v.X * f, Y: v.Y * f}
}

// Magnitude returns the Euclidean norm of the vector.
func (v Vector2D[T]) Magnitude() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Distance returns the Euclidean distance between v and o.
func (v Vector2D[T]) Distance(o Vector2D[T]) float64 {
	return math.Hypot(float64(o.X)-float64(v.X), float64(o.Y)-float64(v.Y))
}

// Normalized returns the unit vector pointing in the same direction.
// The second result is false when the vector has no direction (zero length).
func (v Vector2D[T]) Normalized() (Vec2, bool) {
	m := v.Magnitude()
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Vec2{}, false
	}
	return Vec2{X: float64(v.X) / m, Y: float64(v.Y) / m}, true
}
