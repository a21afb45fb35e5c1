package math

import (
	"fmt"
	"math"
)

// Vector3 is a 3D vector.
type Vector3[T Float] struct {
	X, Y, Z T
}

// Vec3 is a single precision 3D vector.
type Vec3 = Vector3[float32]

// DVec3 is a double precision 3D vector.
type DVec3 = Vector3[float64]

// Unit axes and the zero vector.
var (
	Vec3Zero = Vec3{}
	Vec3X    = Vec3{1, 0, 0}
	Vec3Y    = Vec3{0, 1, 0}
	Vec3Z    = Vec3{0, 0, 1}

	DVec3Zero = DVec3{}
	DVec3X    = DVec3{1, 0, 0}
	DVec3Y    = DVec3{0, 1, 0}
	DVec3Z    = DVec3{0, 0, 1}
)

// NewVec3 creates a vector from its components.
func NewVec3[T Float](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Add returns v + other.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns v * scalar.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Dot returns the dot product.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	// Explicit conversions keep the products from being fused.
	return T(v.X*other.X) + T(v.Y*other.Y) + T(v.Z*other.Z)
}

// Cross returns the right-handed cross product.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		T(v.Y*other.Z) - T(v.Z*other.Y),
		T(v.Z*other.X) - T(v.X*other.Z),
		T(v.X*other.Y) - T(v.Y*other.X),
	}
}

// Length returns the magnitude.
func (v Vector3[T]) Length() T {
	return sqrt(v.Dot(v))
}

// LengthSquared returns the squared magnitude.
func (v Vector3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Distance returns the distance to another point.
func (v Vector3[T]) Distance(other Vector3[T]) T {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance to another point.
func (v Vector3[T]) DistanceSquared(other Vector3[T]) T {
	return v.Sub(other).LengthSquared()
}

// Normalize returns a unit vector in the direction of v.
// The zero vector has no direction and yields NaN components; use
// TryNormalize when v may be zero.
func (v Vector3[T]) Normalize() Vector3[T] {
	return v.Scale(1 / v.Length())
}

// TryNormalize returns the unit vector in the direction of v and true, or
// the zero vector and false when v is too short (or too long) to normalize.
func (v Vector3[T]) TryNormalize() (Vector3[T], bool) {
	rcp := 1 / v.Length()
	if !isFinite(rcp) || rcp <= 0 {
		return Vector3[T]{}, false
	}
	return v.Scale(rcp), true
}

// IsNormalized reports whether v has unit length.
func (v Vector3[T]) IsNormalized() bool {
	return abs(v.LengthSquared()-1) <= normalizedTolerance
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3[T]) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// AnyOrthogonalVector returns a vector orthogonal to v.
// It crosses v with Y when v leans towards X and with X otherwise, so the
// cardinal axes map to Z, -Z and Y. The result is not normalized.
func (v Vector3[T]) AnyOrthogonalVector() Vector3[T] {
	if abs(v.X) > abs(v.Y) {
		return Vector3[T]{-v.Z, 0, v.X}
	}
	return Vector3[T]{0, v.Z, -v.Y}
}

// Lerp returns v + (other-v)*t. t is not clamped.
func (v Vector3[T]) Lerp(other Vector3[T], t T) Vector3[T] {
	return v.Add(other.Sub(v).Scale(t))
}

// AngleBetween returns the unsigned angle to other in radians, in [0, π].
func (v Vector3[T]) AngleBetween(other Vector3[T]) T {
	return acos(v.Normalize().Dot(other.Normalize()))
}

// Abs returns the component-wise absolute value.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{abs(v.X), abs(v.Y), abs(v.Z)}
}

// Round rounds each component to the nearest integer, half away from zero.
func (v Vector3[T]) Round() Vector3[T] {
	return Vector3[T]{
		T(math.Round(float64(v.X))),
		T(math.Round(float64(v.Y))),
		T(math.Round(float64(v.Z))),
	}
}

// Truncate drops the Z component.
func (v Vector3[T]) Truncate() Vector2[T] {
	return Vector2[T]{v.X, v.Y}
}

// ToArray returns the components as [x, y, z].
func (v Vector3[T]) ToArray() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// ApproxEqual reports whether every component of v is within tol of other.
func (v Vector3[T]) ApproxEqual(other Vector3[T], tol T) bool {
	return ApproxEqual(v.X, other.X, tol) &&
		ApproxEqual(v.Y, other.Y, tol) &&
		ApproxEqual(v.Z, other.Z, tol)
}

// Float32 converts v to single precision.
func (v Vector3[T]) Float32() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Float64 converts v to double precision.
func (v Vector3[T]) Float64() DVec3 {
	return DVec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// String formats v as [x, y, z].
func (v Vector3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}
