package math

import "fmt"

// Vector2 is a 2D vector.
type Vector2[T Float] struct {
	X, Y T
}

// Vec2 is a single precision 2D vector.
type Vec2 = Vector2[float32]

// DVec2 is a double precision 2D vector.
type DVec2 = Vector2[float64]

// Add returns v + other.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return T(v.X*other.X) + T(v.Y*other.Y)
}

// Length returns the magnitude.
func (v Vector2[T]) Length() T {
	return sqrt(v.Dot(v))
}

// Normalize returns a unit vector, or the zero vector when v has no length.
func (v Vector2[T]) Normalize() Vector2[T] {
	l := v.Length()
	if l == 0 {
		return Vector2[T]{}
	}
	return Vector2[T]{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vector2[T]) Distance(other Vector2[T]) T {
	return v.Sub(other).Length()
}

// ToArray returns the components as [x, y].
func (v Vector2[T]) ToArray() [2]T {
	return [2]T{v.X, v.Y}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", v.X, v.Y)
}
