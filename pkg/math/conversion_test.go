package math

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestAxisAngleRoundTrip(t *testing.T) {
	axes := []DVec3{
		DVec3X, DVec3Y, DVec3Z, DVec3X.Neg(),
		DVec3{1, 1, 1}.Normalize(),
		DVec3{-0.3, 0.8, 0.2}.Normalize(),
	}
	angles := []float64{1e-3, 0.25, 1, math.Pi / 2, 2.5, math.Pi - 1e-3}

	for _, axis := range axes {
		for _, angle := range angles {
			gotAxis, gotAngle := QuatFromAxisAngle(axis, angle).ToAxisAngle()
			if !gotAxis.ApproxEqual(axis, 1e-6) || !ApproxEqual(gotAngle, angle, 1e-6) {
				t.Errorf("round trip (%v, %v) = (%v, %v)", axis, angle, gotAxis, gotAngle)
			}
		}
	}
}

func TestAxisAngleType(t *testing.T) {
	aa := AxisAngle[float64]{Axis: DVec3Y, Angle: 0.75}
	if got := aa.ScaledAxis(); got != (DVec3{0, 0.75, 0}) {
		t.Errorf("ScaledAxis() = %v, want [0, 0.75, 0]", got)
	}
	back := AxisAngleFromScaledAxis(aa.ScaledAxis())
	if !back.Axis.ApproxEqual(DVec3Y, 1e-12) || !ApproxEqual(back.Angle, 0.75, 1e-12) {
		t.Errorf("AxisAngleFromScaledAxis() = %+v, want %+v", back, aa)
	}
	if got := AxisAngleFromScaledAxis(DVec3Zero); got.Axis != DVec3X || got.Angle != 0 {
		t.Errorf("AxisAngleFromScaledAxis(zero) = %+v, want X axis and 0", got)
	}
	if got := AxisAngleFromQuat(aa.Quat()); !got.Axis.ApproxEqual(aa.Axis, 1e-12) || !ApproxEqual(got.Angle, aa.Angle, 1e-12) {
		t.Errorf("AxisAngleFromQuat() = %+v, want %+v", got, aa)
	}
}

func TestScaledAxisRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		// Stay clear of the half turn, where q and -q swap axes.
		q := QuatFromAxisAngle(randomDVec3(rng), rng.Float64()*(math.Pi-0.01))
		got := QuatFromScaledAxis(q.ToScaledAxis())
		if !got.SameRotation(q, 1e-9) {
			t.Fatalf("from_scaled_axis(to_scaled_axis(%v)) = %v", q, got)
		}
	}

	// Negated inputs recover the canonical representative.
	q := QuatFromRotationY(0.4).Neg()
	if got := QuatFromScaledAxis(q.ToScaledAxis()); !got.ApproxEqual(q.Canonical(), 1e-12) {
		t.Errorf("round trip of -q = %v, want %v", got, q.Canonical())
	}
}

func TestSameAxisAnglesAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		axis := randomDVec3(rng)
		a := rng.Float64()*4*math.Pi - 2*math.Pi
		b := rng.Float64()*4*math.Pi - 2*math.Pi

		got := QuatFromAxisAngle(axis, a).Mul(QuatFromAxisAngle(axis, b))
		want := QuatFromAxisAngle(axis, a+b)
		if !got.SameRotation(want, 1e-9) {
			t.Fatalf("axis %v: %v + %v gives %v, want %v", axis, a, b, got, want)
		}
	}

	// y90 * y90 is a half turn about Y.
	axis, angle := QuatFromRotationY(math.Pi / 2).Mul(QuatFromRotationY(math.Pi / 2)).ToAxisAngle()
	if !axis.ApproxEqual(DVec3Y, 1e-9) || !ApproxEqual(angle, math.Pi, 1e-9) {
		t.Errorf("y90 * y90 = (%v, %v), want (Y, π)", axis, angle)
	}
}

func TestEulerRotParse(t *testing.T) {
	for _, r := range EulerRots() {
		got, err := ParseEulerRot(r.String())
		if err != nil || got != r {
			t.Errorf("ParseEulerRot(%q) = %v, %v", r.String(), got, err)
		}
	}

	if got, err := ParseEulerRot(" zyx "); err != nil || got != EulerZYX {
		t.Errorf("ParseEulerRot(zyx) = %v, %v, want ZYX", got, err)
	}
	if _, err := ParseEulerRot("XYX"); !errors.Is(err, ErrUnknownEulerRot) {
		t.Errorf("ParseEulerRot(XYX) error = %v, want ErrUnknownEulerRot", err)
	}

	var r EulerRot
	if r != DefaultEulerRot || r.String() != "YXZ" {
		t.Errorf("zero EulerRot = %v, want default YXZ", r)
	}
	if err := r.UnmarshalText([]byte("xzy")); err != nil || r != EulerXZY {
		t.Errorf("UnmarshalText(xzy) = %v, %v", r, err)
	}
	if text, err := EulerZXY.MarshalText(); err != nil || string(text) != "ZXY" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if _, err := EulerRot(42).MarshalText(); err == nil {
		t.Error("MarshalText of invalid order should fail")
	}
}

func TestToEulerIdentity(t *testing.T) {
	for _, order := range EulerRots() {
		a, b, c := QuatIdentity().ToEuler(order)
		if a != 0 || b != 0 || c != 0 {
			t.Errorf("%v: identity ToEuler() = (%v, %v, %v), want zeros", order, a, b, c)
		}
	}
}

func TestToEulerSingleAxis(t *testing.T) {
	tests := []struct {
		name    string
		q       DQuat
		order   EulerRot
		a, b, c float64
	}{
		{"yaw in YXZ", QuatFromRotationY(0.5), EulerYXZ, 0.5, 0, 0},
		{"pitch in YXZ", QuatFromRotationX(0.5), EulerYXZ, 0, 0.5, 0},
		{"roll in YXZ", QuatFromRotationZ(-0.5), EulerYXZ, 0, 0, -0.5},
		{"Y in XYZ", QuatFromRotationY(0.5), EulerXYZ, 0, 0.5, 0},
		{"Z in ZYX", QuatFromRotationZ(2.0), EulerZYX, 2, 0, 0},
		{"X in ZYX", QuatFromRotationX(-1.0), EulerZYX, 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c := tt.q.ToEuler(tt.order)
			if !ApproxEqual(a, tt.a, 1e-12) || !ApproxEqual(b, tt.b, 1e-12) || !ApproxEqual(c, tt.c, 1e-12) {
				t.Errorf("ToEuler() = (%v, %v, %v), want (%v, %v, %v)", a, b, c, tt.a, tt.b, tt.c)
			}
		})
	}
}

func TestEulerRoundTrip(t *testing.T) {
	triples := [][3]float64{
		{0.1, 0.2, 0.3},
		{-2.5, 1.2, 0.7},
		{3, -1.4, -3},
		{-0.01, 0.9, 2.2},
	}

	for _, order := range EulerRots() {
		for _, tr := range triples {
			q := QuatFromEuler(order, tr[0], tr[1], tr[2])
			if !q.IsNormalized() {
				t.Fatalf("%v: QuatFromEuler(%v) is not normalized", order, tr)
			}

			e := EulerAnglesFromQuat(q, order)
			if e.GimbalLocked {
				t.Errorf("%v: EulerAnglesFromQuat(%v) reports gimbal lock", order, tr)
			}
			if got := e.ToArray(); !ApproxEqual(got[0], tr[0], 1e-9) ||
				!ApproxEqual(got[1], tr[1], 1e-9) || !ApproxEqual(got[2], tr[2], 1e-9) {
				t.Errorf("%v: ToEuler(QuatFromEuler(%v)) = %v", order, tr, got)
			}
			if !e.Quat().SameRotation(q, 1e-9) {
				t.Errorf("%v: EulerAngles.Quat() = %v, want %v", order, e.Quat(), q)
			}
		}
	}
}

func TestEulerGimbalLock(t *testing.T) {
	for _, order := range EulerRots() {
		for _, b := range []float64{math.Pi / 2, -math.Pi / 2} {
			q := QuatFromEuler(order, 0.4, b, 0.3)
			ea, eb, ec := q.ToEuler(order)
			if ec != 0 {
				t.Errorf("%v: locked ToEuler() c = %v, want 0", order, ec)
			}
			if !ApproxEqual(eb, b, 1e-6) {
				t.Errorf("%v: locked ToEuler() b = %v, want %v", order, eb, b)
			}
			if got := QuatFromEuler(order, ea, eb, ec); !got.SameRotation(q, 1e-6) {
				t.Errorf("%v: locked angles (%v, %v, %v) give %v, want %v", order, ea, eb, ec, got, q)
			}
			if !EulerAnglesFromQuat(q, order).GimbalLocked {
				t.Errorf("%v: EulerAnglesFromQuat(b = %v) not marked gimbal locked", order, b)
			}
		}
	}

	// Just short of the threshold the outer angles are still separable.
	if e := EulerAnglesFromQuat(QuatFromEuler(EulerXYZ, 0.4, 1.56, 0.3), EulerXYZ); e.GimbalLocked {
		t.Errorf("b = 1.56 reported as gimbal locked: %+v", e)
	}

	// A quarter pitch about X in the default order is pure pitch.
	a, b, c := QuatFromRotationX(pi32 / 2).ToEuler(DefaultEulerRot)
	if !ApproxEqual(a, 0, tol32) || !ApproxEqual(b, pi32/2, tol32) || c != 0 {
		t.Errorf("x90 ToEuler(YXZ) = (%v, %v, %v), want (0, π/2, 0)", a, b, c)
	}
}

func TestEulerSinglePrecision(t *testing.T) {
	q := QuatFromEuler[float32](EulerZYX, 0.3, -0.6, 1.1)
	a, b, c := q.ToEuler(EulerZYX)
	if !ApproxEqual(a, 0.3, 1e-5) || !ApproxEqual(b, -0.6, 1e-5) || !ApproxEqual(c, 1.1, 1e-5) {
		t.Errorf("ToEuler() = (%v, %v, %v), want (0.3, -0.6, 1.1)", a, b, c)
	}
}
