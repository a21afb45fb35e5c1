package math

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownEulerRot is returned when parsing an unrecognised axis order.
var ErrUnknownEulerRot = errors.New("unknown euler rotation order")

// EulerRot selects the axis order of an Euler angle triple.
//
// All orders are intrinsic Tait-Bryan rotations: for EulerXYZ with angles
// (a, b, c) the rotation is RotX(a) * RotY(b) * RotZ(c), i.e. rotate about
// X, then about the rotated Y, then about the twice rotated Z.
type EulerRot uint8

const (
	EulerYXZ EulerRot = iota // Yaw, pitch, roll; the default
	EulerXYZ
	EulerXZY
	EulerYZX
	EulerZXY
	EulerZYX
)

// DefaultEulerRot is the order used when none is given.
const DefaultEulerRot = EulerYXZ

// gimbalLockThreshold is the |sin| of the middle angle beyond which the
// outer angles are treated as coupled.
const gimbalLockThreshold = 1 - 1e-6

var eulerRotNames = [...]string{
	EulerYXZ: "YXZ",
	EulerXYZ: "XYZ",
	EulerXZY: "XZY",
	EulerYZX: "YZX",
	EulerZXY: "ZXY",
	EulerZYX: "ZYX",
}

// EulerRots lists every supported order.
func EulerRots() []EulerRot {
	return []EulerRot{EulerYXZ, EulerXYZ, EulerXZY, EulerYZX, EulerZXY, EulerZYX}
}

// String returns the order as its three axis letters.
func (r EulerRot) String() string {
	if int(r) < len(eulerRotNames) {
		return eulerRotNames[r]
	}
	return fmt.Sprintf("EulerRot(%d)", r)
}

// ParseEulerRot parses an order such as "XYZ" or "zyx".
func ParseEulerRot(s string) (EulerRot, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range eulerRotNames {
		if n == name {
			return EulerRot(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEulerRot, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r EulerRot) MarshalText() ([]byte, error) {
	if int(r) >= len(eulerRotNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEulerRot, r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *EulerRot) UnmarshalText(text []byte) error {
	parsed, err := ParseEulerRot(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// axes returns the indices of the first, second and third rotation axis.
func (r EulerRot) axes() (i, j, k int) {
	switch r {
	case EulerXYZ:
		return 0, 1, 2
	case EulerXZY:
		return 0, 2, 1
	case EulerYZX:
		return 1, 2, 0
	case EulerZXY:
		return 2, 0, 1
	case EulerZYX:
		return 2, 1, 0
	default:
		return 1, 0, 2
	}
}

// parity is +1 for cyclic orders and -1 for the others.
func (r EulerRot) parity() float64 {
	switch r {
	case EulerXYZ, EulerYZX, EulerZXY:
		return 1
	default:
		return -1
	}
}

func quatFromAxisIndex[T Float](axis int, angle T) Quaternion[T] {
	switch axis {
	case 0:
		return QuatFromRotationX(angle)
	case 1:
		return QuatFromRotationY(angle)
	default:
		return QuatFromRotationZ(angle)
	}
}

// QuatFromEuler creates a quaternion from three angles in radians applied
// in the given order.
func QuatFromEuler[T Float](order EulerRot, a, b, c T) Quaternion[T] {
	i, j, k := order.axes()
	return quatFromAxisIndex(i, a).
		Mul(quatFromAxisIndex(j, b)).
		Mul(quatFromAxisIndex(k, c))
}

// ToEuler decomposes q into three angles for the given order, such that
// QuatFromEuler(order, a, b, c) reproduces q up to sign.
//
// The middle angle b lies in [-π/2, π/2] and the outer angles in [-π, π].
// Close to b = ±π/2 the outer angles become coupled (gimbal lock); c is then
// reported as 0 and a absorbs the combined rotation, and precision degrades
// as the singularity is approached.
func (q Quaternion[T]) ToEuler(order EulerRot) (a, b, c T) {
	a, b, c, _ = q.toEuler(order)
	return a, b, c
}

// toEuler is ToEuler that also reports whether the gimbal lock branch was
// taken.
func (q Quaternion[T]) toEuler(order EulerRot) (a, b, c T, locked bool) {
	i, j, k := order.axes()
	s := order.parity()
	m := rotationMatrix(q.Float64().Normalize())

	sinB := clamp(s*m[i][k], -1, 1)
	if math.Abs(sinB) >= gimbalLockThreshold {
		a64 := math.Atan2(s*m[k][j], m[j][j])
		return T(a64), T(math.Copysign(math.Pi/2, sinB)), 0, true
	}

	a64 := math.Atan2(-s*m[j][k], m[k][k])
	c64 := math.Atan2(-s*m[i][j], m[i][i])
	return T(a64), T(math.Asin(sinB)), T(c64), false
}

// rotationMatrix returns the rotation matrix of a unit quaternion, indexed
// [row][column] and acting on column vectors.
func rotationMatrix(q DQuat) [3][3]float64 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return [3][3]float64{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}
}
