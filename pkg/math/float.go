// Package math provides vector and quaternion types for 3D rotations.
//
// Every type exists in single and double precision. Vec3 and Quat use float32,
// DVec3 and DQuat use float64; both are instantiations of the same generic
// types, and values of different precision are never mixed implicitly.
package math

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Float is the set of component types the library is instantiated with.
type Float interface {
	~float32 | ~float64
}

// Tolerances used by the approximate predicates.
const (
	// normalizedTolerance bounds |len²-1| for IsNormalized.
	normalizedTolerance = 2e-4

	// nearIdentityAngle is the largest rotation angle, in radians, that
	// IsNearIdentity still reports as identity.
	nearIdentityAngle = 0.0028471446

	// axisEpsilon is the shortest vector part ToAxisAngle derives an axis from.
	axisEpsilon = 1e-8
)

func sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

func sin[T Float](x T) T { return T(math.Sin(float64(x))) }

func cos[T Float](x T) T { return T(math.Cos(float64(x))) }

func abs[T Float](x T) T { return T(math.Abs(float64(x))) }

func isFinite[T Float](x T) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// clamp limits x to [lo, hi].
func clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// acos evaluates math.Acos with its argument clamped to [-1, 1] so rounding
// past the boundary yields 0 or π instead of NaN.
func acos[T Float](x T) T {
	return T(math.Acos(float64(clamp(x, -1, 1))))
}

// epsilon is the machine epsilon of T.
func epsilon[T Float]() T {
	var z T
	if _, ok := any(z).(float32); ok {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

// ApproxEqual reports whether a and b are equal within tol, either
// absolutely or relative to the larger magnitude.
func ApproxEqual[T Float](a, b, tol T) bool {
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), float64(tol), float64(tol))
}
