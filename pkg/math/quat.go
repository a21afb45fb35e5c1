package math

import (
	"fmt"
	"math"
)

// Quaternion represents a rotation in 3D space.
// Components are stored as X, Y, Z, W where W is the scalar part.
// Quaternions built by the constructors in this package have unit length;
// q and -q describe the same rotation.
type Quaternion[T Float] struct {
	X, Y, Z, W T
}

// Quat is a single precision quaternion.
type Quat = Quaternion[float32]

// DQuat is a double precision quaternion.
type DQuat = Quaternion[float64]

// QuatIdentity returns the single precision identity quaternion (no rotation).
func QuatIdentity() Quat {
	return identity[float32]()
}

// DQuatIdentity returns the double precision identity quaternion.
func DQuatIdentity() DQuat {
	return identity[float64]()
}

func identity[T Float]() Quaternion[T] {
	return Quaternion[T]{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromXYZW creates a quaternion from raw components. The result is not
// normalized.
func QuatFromXYZW[T Float](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{X: x, Y: y, Z: z, W: w}
}

// QuatFromArray creates a quaternion from [x, y, z, w].
func QuatFromArray[T Float](a [4]T) Quaternion[T] {
	return Quaternion[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// QuatFromRotationX creates a rotation of angle radians about the X axis.
func QuatFromRotationX[T Float](angle T) Quaternion[T] {
	s, c := sin(angle/2), cos(angle/2)
	return Quaternion[T]{X: s, Y: 0, Z: 0, W: c}
}

// QuatFromRotationY creates a rotation of angle radians about the Y axis.
func QuatFromRotationY[T Float](angle T) Quaternion[T] {
	s, c := sin(angle/2), cos(angle/2)
	return Quaternion[T]{X: 0, Y: s, Z: 0, W: c}
}

// QuatFromRotationZ creates a rotation of angle radians about the Z axis.
func QuatFromRotationZ[T Float](angle T) Quaternion[T] {
	s, c := sin(angle/2), cos(angle/2)
	return Quaternion[T]{X: 0, Y: 0, Z: s, W: c}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// The axis is normalized here and must not be zero, angle is in radians.
func QuatFromAxisAngle[T Float](axis Vector3[T], angle T) Quaternion[T] {
	axis = axis.Normalize()
	halfAngle := angle / 2
	s := sin(halfAngle)
	return Quaternion[T]{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: cos(halfAngle),
	}
}

// QuatFromScaledAxis creates a quaternion from a rotation vector whose
// direction is the axis and whose length is the angle in radians.
// The zero vector yields identity.
func QuatFromScaledAxis[T Float](v Vector3[T]) Quaternion[T] {
	length := v.Length()
	if length == 0 {
		return identity[T]()
	}
	return QuatFromAxisAngle(Vector3[T]{v.X / length, v.Y / length, v.Z / length}, length)
}

// QuatFromRotationArc returns the shortest rotation taking unit vector from
// onto unit vector to.
//
// Antiparallel inputs have no unique shortest arc; the result is then a half
// turn about from.AnyOrthogonalVector().
func QuatFromRotationArc[T Float](from, to Vector3[T]) Quaternion[T] {
	oneMinusEps := 1 - 2*epsilon[T]()
	dot := from.Dot(to)
	if dot > oneMinusEps {
		return identity[T]()
	}
	if dot < -oneMinusEps {
		return QuatFromAxisAngle(from.AnyOrthogonalVector(), math.Pi)
	}
	c := from.Cross(to)
	return Quaternion[T]{X: c.X, Y: c.Y, Z: c.Z, W: 1 + dot}.Normalize()
}

// XYZ returns the vector part.
func (q Quaternion[T]) XYZ() Vector3[T] {
	return Vector3[T]{q.X, q.Y, q.Z}
}

// Neg returns -q, which encodes the same rotation as q.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Conjugate returns q with the vector part negated.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the inverse rotation. q must be normalized, in which case
// the inverse is the conjugate.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return q.Conjugate()
}

// Dot returns the dot product of two quaternions.
func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return T(q.X*other.X) + T(q.Y*other.Y) + T(q.Z*other.Z) + T(q.W*other.W)
}

// Length returns the norm of q.
func (q Quaternion[T]) Length() T {
	return sqrt(q.Dot(q))
}

// LengthSquared returns the squared norm of q.
func (q Quaternion[T]) LengthSquared() T {
	return q.Dot(q)
}

// Normalize returns a normalized quaternion.
// Quaternions too short to carry a direction normalize to identity.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	length := q.Length()
	if length < 0.0001 {
		return identity[T]()
	}
	invLen := 1 / length
	return Quaternion[T]{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// TryNormalize returns q scaled to unit length and true, or the zero
// quaternion and false when q is too short (or too long) to normalize.
// Unlike Normalize it has no identity fallback for short inputs.
func (q Quaternion[T]) TryNormalize() (Quaternion[T], bool) {
	rcp := 1 / q.Length()
	if !isFinite(rcp) || rcp <= 0 {
		return Quaternion[T]{}, false
	}
	return Quaternion[T]{X: q.X * rcp, Y: q.Y * rcp, Z: q.Z * rcp, W: q.W * rcp}, true
}

// IsNormalized reports whether q has unit length.
func (q Quaternion[T]) IsNormalized() bool {
	return abs(q.LengthSquared()-1) <= normalizedTolerance
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quaternion[T]) IsFinite() bool {
	return isFinite(q.X) && isFinite(q.Y) && isFinite(q.Z) && isFinite(q.W)
}

// IsNearIdentity reports whether q rotates by less than about 0.16 degrees.
// Both q and -q are tested.
func (q Quaternion[T]) IsNearIdentity() bool {
	return 2*acos(abs(q.W)) < nearIdentityAngle
}

// Canonical returns whichever of q and -q has a non-negative W.
func (q Quaternion[T]) Canonical() Quaternion[T] {
	if q.W < 0 {
		return q.Neg()
	}
	return q
}

// Mul multiplies two quaternions (combines rotations).
// The product applies other first, then q.
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: T(q.W*other.X) + T(q.X*other.W) + T(q.Y*other.Z) - T(q.Z*other.Y),
		Y: T(q.W*other.Y) - T(q.X*other.Z) + T(q.Y*other.W) + T(q.Z*other.X),
		Z: T(q.W*other.Z) + T(q.X*other.Y) - T(q.Y*other.X) + T(q.Z*other.W),
		W: T(q.W*other.W) - T(q.X*other.X) - T(q.Y*other.Y) - T(q.Z*other.Z),
	}
}

// MulVec3 rotates v by q. q must be normalized.
func (q Quaternion[T]) MulVec3(v Vector3[T]) Vector3[T] {
	w := q.W
	b := q.XYZ()
	b2 := b.Dot(b)
	return v.Scale(T(w*w) - b2).
		Add(b.Scale(v.Dot(b) * 2)).
		Add(b.Cross(v).Scale(w * 2))
}

// AngleBetween returns the angle in radians, in [0, π], of the rotation
// taking q to other. Both must be normalized.
func (q Quaternion[T]) AngleBetween(other Quaternion[T]) T {
	return 2 * acos(abs(q.Dot(other)))
}

// Lerp performs normalized linear interpolation between two quaternions.
// It blends towards whichever of other and -other is closer, so the path
// never takes the long way round. t is not clamped.
func (q Quaternion[T]) Lerp(other Quaternion[T], t T) Quaternion[T] {
	if q.Dot(other) < 0 {
		other = other.Neg()
	}
	return Quaternion[T]{
		X: q.X + T(t*(other.X-q.X)),
		Y: q.Y + T(t*(other.Y-q.Y)),
		Z: q.Z + T(t*(other.Z-q.Z)),
		W: q.W + T(t*(other.W-q.W)),
	}.Normalize()
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1].
func (q Quaternion[T]) Slerp(other Quaternion[T], t T) Quaternion[T] {
	dot := q.Dot(other)

	// Take the shorter path.
	if dot < 0 {
		other = other.Neg()
		dot = -dot
	}

	// Nearly parallel: the sine below would vanish.
	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := acos(dot)
	theta := theta0 * t
	sinTheta := sin(theta)
	sinTheta0 := sin(theta0)

	s0 := cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quaternion[T]{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}

// ToAxisAngle returns the rotation axis and angle of q.
// The angle is in [0, π]. Identity has no axis; it reports the X axis and 0.
func (q Quaternion[T]) ToAxisAngle() (Vector3[T], T) {
	q = q.Canonical()
	v := q.XYZ()
	length := v.Length()
	if length < axisEpsilon {
		return Vector3[T]{1, 0, 0}, 0
	}
	angle := 2 * T(math.Atan2(float64(length), float64(q.W)))
	return Vector3[T]{v.X / length, v.Y / length, v.Z / length}, angle
}

// ToScaledAxis returns the rotation vector of q: its axis scaled by its
// angle. Identity yields the zero vector.
func (q Quaternion[T]) ToScaledAxis() Vector3[T] {
	axis, angle := q.ToAxisAngle()
	return axis.Scale(angle)
}

// ApproxEqual reports whether every component of q is within tol of other.
// It does not identify q with -q; see SameRotation.
func (q Quaternion[T]) ApproxEqual(other Quaternion[T], tol T) bool {
	return ApproxEqual(q.X, other.X, tol) &&
		ApproxEqual(q.Y, other.Y, tol) &&
		ApproxEqual(q.Z, other.Z, tol) &&
		ApproxEqual(q.W, other.W, tol)
}

// SameRotation reports whether q and other encode the same rotation within
// tol, treating q and -q as equal.
func (q Quaternion[T]) SameRotation(other Quaternion[T], tol T) bool {
	return q.ApproxEqual(other, tol) || q.ApproxEqual(other.Neg(), tol)
}

// ToArray returns the components as [x, y, z, w].
func (q Quaternion[T]) ToArray() [4]T {
	return [4]T{q.X, q.Y, q.Z, q.W}
}

// Float32 converts q to single precision.
func (q Quaternion[T]) Float32() Quat {
	return Quat{X: float32(q.X), Y: float32(q.Y), Z: float32(q.Z), W: float32(q.W)}
}

// Float64 converts q to double precision.
func (q Quaternion[T]) Float64() DQuat {
	return DQuat{X: float64(q.X), Y: float64(q.Y), Z: float64(q.Z), W: float64(q.W)}
}

// String formats q as [x, y, z, w].
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", q.X, q.Y, q.Z, q.W)
}
