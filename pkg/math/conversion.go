package math

// AxisAngle is a rotation of Angle radians about the unit vector Axis.
type AxisAngle[T Float] struct {
	Axis  Vector3[T]
	Angle T
}

// AxisAngleFromQuat extracts the axis and angle of q. See ToAxisAngle.
func AxisAngleFromQuat[T Float](q Quaternion[T]) AxisAngle[T] {
	axis, angle := q.ToAxisAngle()
	return AxisAngle[T]{Axis: axis, Angle: angle}
}

// AxisAngleFromScaledAxis splits a rotation vector into its direction and
// length. The zero vector maps to the X axis and angle 0.
func AxisAngleFromScaledAxis[T Float](v Vector3[T]) AxisAngle[T] {
	axis, ok := v.TryNormalize()
	if !ok {
		return AxisAngle[T]{Axis: Vector3[T]{1, 0, 0}}
	}
	return AxisAngle[T]{Axis: axis, Angle: v.Length()}
}

// Quat returns the quaternion for aa.
func (aa AxisAngle[T]) Quat() Quaternion[T] {
	return QuatFromAxisAngle(aa.Axis, aa.Angle)
}

// ScaledAxis returns Axis * Angle.
func (aa AxisAngle[T]) ScaledAxis() Vector3[T] {
	return aa.Axis.Scale(aa.Angle)
}

// EulerAngles is an angle triple in radians together with its axis order.
type EulerAngles[T Float] struct {
	Order   EulerRot
	A, B, C T

	// GimbalLocked is set by EulerAnglesFromQuat when B is at ±π/2 and C
	// was forced to 0.
	GimbalLocked bool
}

// EulerAnglesFromQuat decomposes q in the given order.
func EulerAnglesFromQuat[T Float](q Quaternion[T], order EulerRot) EulerAngles[T] {
	a, b, c, locked := q.toEuler(order)
	return EulerAngles[T]{Order: order, A: a, B: b, C: c, GimbalLocked: locked}
}

// Quat returns the quaternion for e.
func (e EulerAngles[T]) Quat() Quaternion[T] {
	return QuatFromEuler(e.Order, e.A, e.B, e.C)
}

// ToArray returns [a, b, c].
func (e EulerAngles[T]) ToArray() [3]T {
	return [3]T{e.A, e.B, e.C}
}
