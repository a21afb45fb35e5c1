package formats

import (
	"errors"
	"fmt"
	gomath "math"
	"strings"

	"github.com/Faultbox/rotkit/pkg/math"
)

// Rotation format errors.
var (
	ErrNoEncoding        = errors.New("rotation has no encoding")
	ErrMultipleEncodings = errors.New("rotation has more than one encoding")
	ErrComponentCount    = errors.New("wrong number of components")
	ErrNonFinite         = errors.New("component is NaN or infinite")
	ErrZeroAxis          = errors.New("zero-length axis")
	ErrZeroQuat          = errors.New("zero quaternion")
	ErrUnknownEncoding   = errors.New("unknown rotation encoding")
	ErrInputOnlyEncoding = errors.New("encoding can only be read")
	ErrUnknownAngleUnit  = errors.New("unknown angle unit")
)

// Encoding identifies how a rotation is written down.
type Encoding int

const (
	EncodingUnknown    Encoding = iota
	EncodingQuat                // [x, y, z, w]
	EncodingAxisAngle           // unit axis and angle
	EncodingScaledAxis          // axis scaled by angle
	EncodingEuler               // three angles and an axis order
	EncodingArc                 // shortest arc between two directions; input only
)

var encodingNames = map[Encoding]string{
	EncodingQuat:       "quat",
	EncodingAxisAngle:  "axis_angle",
	EncodingScaledAxis: "scaled_axis",
	EncodingEuler:      "euler",
	EncodingArc:        "arc",
}

// String returns the YAML key of the encoding.
func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", e)
}

// ParseEncoding parses an encoding name such as "axis_angle".
// Dashes are accepted in place of underscores.
func ParseEncoding(s string) (Encoding, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for e, n := range encodingNames {
		if n == name {
			return e, nil
		}
	}
	return EncodingUnknown, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// AngleUnit is the unit angles are written in. The zero value is radians.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

// String returns "radians" or "degrees".
func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

// ParseAngleUnit parses "rad", "radians", "deg" or "degrees". The empty
// string means radians.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rad", "radians":
		return Radians, nil
	case "deg", "degrees":
		return Degrees, nil
	default:
		return Radians, fmt.Errorf("%w: %q", ErrUnknownAngleUnit, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u AngleUnit) MarshalText() ([]byte, error) {
	if u != Radians && u != Degrees {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAngleUnit, int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *AngleUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseAngleUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ToRadians converts an angle written in u to radians.
func (u AngleUnit) ToRadians(angle float64) float64 {
	if u == Degrees {
		return angle * gomath.Pi / 180
	}
	return angle
}

// FromRadians converts an angle in radians to u.
func (u AngleUnit) FromRadians(angle float64) float64 {
	if u == Degrees {
		return angle * 180 / gomath.Pi
	}
	return angle
}

// AxisAngleSpec is the axis_angle encoding.
type AxisAngleSpec struct {
	Axis  []float64 `yaml:"axis,flow"`
	Angle float64   `yaml:"angle"`
}

// EulerSpec is the euler encoding. An omitted order means math.DefaultEulerRot.
type EulerSpec struct {
	Order  math.EulerRot `yaml:"order"`
	Angles []float64     `yaml:"angles,flow"`

	// GimbalLocked marks angles written at a singularity, where the third
	// angle was set to 0. It is not serialized.
	GimbalLocked bool `yaml:"-"`
}

// ArcSpec is the arc encoding: the shortest rotation taking From onto To.
type ArcSpec struct {
	From []float64 `yaml:"from,flow"`
	To   []float64 `yaml:"to,flow"`
}

// Rotation is one named rotation in a document. Exactly one encoding field
// must be set.
type Rotation struct {
	Name       string         `yaml:"name,omitempty"`
	Quat       []float64      `yaml:"quat,omitempty,flow"`
	AxisAngle  *AxisAngleSpec `yaml:"axis_angle,omitempty"`
	ScaledAxis []float64      `yaml:"scaled_axis,omitempty,flow"`
	Euler      *EulerSpec     `yaml:"euler,omitempty"`
	Arc        *ArcSpec       `yaml:"arc,omitempty"`
}

// Encoding returns the encoding that is set on r.
func (r Rotation) Encoding() (Encoding, error) {
	var found []Encoding
	if r.Quat != nil {
		found = append(found, EncodingQuat)
	}
	if r.AxisAngle != nil {
		found = append(found, EncodingAxisAngle)
	}
	if r.ScaledAxis != nil {
		found = append(found, EncodingScaledAxis)
	}
	if r.Euler != nil {
		found = append(found, EncodingEuler)
	}
	if r.Arc != nil {
		found = append(found, EncodingArc)
	}

	switch len(found) {
	case 0:
		return EncodingUnknown, ErrNoEncoding
	case 1:
		return found[0], nil
	default:
		return EncodingUnknown, fmt.Errorf("%w: %v", ErrMultipleEncodings, found)
	}
}

// Resolve returns the unit quaternion r describes, reading angles in unit.
func (r Rotation) Resolve(unit AngleUnit) (math.DQuat, error) {
	enc, err := r.Encoding()
	if err != nil {
		return math.DQuat{}, err
	}

	switch enc {
	case EncodingQuat:
		c, err := components(r.Quat, 4, "quat")
		if err != nil {
			return math.DQuat{}, err
		}
		q, ok := math.QuatFromArray([4]float64{c[0], c[1], c[2], c[3]}).TryNormalize()
		if !ok {
			return math.DQuat{}, ErrZeroQuat
		}
		return q, nil

	case EncodingAxisAngle:
		axis, err := direction(r.AxisAngle.Axis, "axis")
		if err != nil {
			return math.DQuat{}, err
		}
		if err := finite("angle", r.AxisAngle.Angle); err != nil {
			return math.DQuat{}, err
		}
		return math.QuatFromAxisAngle(axis, unit.ToRadians(r.AxisAngle.Angle)), nil

	case EncodingScaledAxis:
		v, err := vector(r.ScaledAxis, "scaled_axis")
		if err != nil {
			return math.DQuat{}, err
		}
		return math.QuatFromScaledAxis(v.Scale(unit.ToRadians(1))), nil

	case EncodingEuler:
		a, err := components(r.Euler.Angles, 3, "angles")
		if err != nil {
			return math.DQuat{}, err
		}
		return math.QuatFromEuler(r.Euler.Order,
			unit.ToRadians(a[0]), unit.ToRadians(a[1]), unit.ToRadians(a[2])), nil

	default: // EncodingArc
		from, err := direction(r.Arc.From, "from")
		if err != nil {
			return math.DQuat{}, err
		}
		to, err := direction(r.Arc.To, "to")
		if err != nil {
			return math.DQuat{}, err
		}
		return math.QuatFromRotationArc(from, to), nil
	}
}

// EncodeOptions controls how Encode writes a rotation.
type EncodeOptions struct {
	Order     math.EulerRot // axis order for EncodingEuler
	Unit      AngleUnit     // unit for every written angle
	Canonical bool          // write quaternions with w >= 0
}

// Encode writes q in the target encoding.
func Encode(name string, q math.DQuat, target Encoding, opts EncodeOptions) (Rotation, error) {
	r := Rotation{Name: name}

	switch target {
	case EncodingQuat:
		if opts.Canonical {
			q = q.Canonical()
		}
		a := q.ToArray()
		r.Quat = a[:]

	case EncodingAxisAngle:
		axis, angle := q.ToAxisAngle()
		a := axis.ToArray()
		r.AxisAngle = &AxisAngleSpec{Axis: a[:], Angle: opts.Unit.FromRadians(angle)}

	case EncodingScaledAxis:
		a := q.ToScaledAxis().Scale(opts.Unit.FromRadians(1)).ToArray()
		r.ScaledAxis = a[:]

	case EncodingEuler:
		e := math.EulerAnglesFromQuat(q, opts.Order)
		r.Euler = &EulerSpec{
			Order: opts.Order,
			Angles: []float64{
				opts.Unit.FromRadians(e.A),
				opts.Unit.FromRadians(e.B),
				opts.Unit.FromRadians(e.C),
			},
			GimbalLocked: e.GimbalLocked,
		}

	case EncodingArc:
		return Rotation{}, fmt.Errorf("%w: %v", ErrInputOnlyEncoding, target)

	default:
		return Rotation{}, fmt.Errorf("%w: %v", ErrUnknownEncoding, target)
	}

	return r, nil
}

func components(c []float64, n int, field string) ([]float64, error) {
	if len(c) != n {
		return nil, fmt.Errorf("%w: %s has %d, want %d", ErrComponentCount, field, len(c), n)
	}
	if err := finite(field, c...); err != nil {
		return nil, err
	}
	return c, nil
}

func finite(field string, values ...float64) error {
	for _, v := range values {
		if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
			return fmt.Errorf("%w: %s", ErrNonFinite, field)
		}
	}
	return nil
}

func vector(c []float64, field string) (math.DVec3, error) {
	c, err := components(c, 3, field)
	if err != nil {
		return math.DVec3{}, err
	}
	return math.DVec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// direction reads a vector and normalizes it.
func direction(c []float64, field string) (math.DVec3, error) {
	v, err := vector(c, field)
	if err != nil {
		return math.DVec3{}, err
	}
	n, ok := v.TryNormalize()
	if !ok {
		return math.DVec3{}, fmt.Errorf("%w: %s", ErrZeroAxis, field)
	}
	return n, nil
}
