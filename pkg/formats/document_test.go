package formats

import (
	"errors"
	gomath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/rotkit/pkg/math"
)

const sampleDocument = `angle_unit: degrees
rotations:
  - name: tilt
    axis_angle: {axis: [1, 0, 0], angle: 90}
  - name: spin
    scaled_axis: [0, 90, 0]
  - name: heading
    euler: {order: YXZ, angles: [90, 0, 0]}
  - quat: [0, 0, 0, 1]
  - name: turn
    arc: {from: [1, 0, 0], to: [0, 1, 0]}
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}
	if doc.AngleUnit != Degrees {
		t.Errorf("AngleUnit = %v, want degrees", doc.AngleUnit)
	}
	if len(doc.Rotations) != 5 {
		t.Fatalf("got %d rotations, want 5", len(doc.Rotations))
	}
	if got := doc.Label(3); got != "#3" {
		t.Errorf("Label(3) = %q, want #3", got)
	}
	if got := doc.Label(0); got != "tilt" {
		t.Errorf("Label(0) = %q, want tilt", got)
	}

	quats, err := doc.Quats()
	if err != nil {
		t.Fatalf("Quats() error: %v", err)
	}
	want := []math.DQuat{
		math.QuatFromRotationX(gomath.Pi / 2),
		math.QuatFromRotationY(gomath.Pi / 2),
		math.QuatFromRotationY(gomath.Pi / 2),
		math.DQuatIdentity(),
		math.QuatFromRotationZ(gomath.Pi / 2),
	}
	for i, q := range quats {
		if !q.SameRotation(want[i], 1e-12) {
			t.Errorf("rotation %s = %v, want %v", doc.Label(i), q, want[i])
		}
	}
}

func TestParseDocumentRadiansDefault(t *testing.T) {
	doc, err := ParseDocument([]byte("rotations:\n  - scaled_axis: [0, 0, 1.5]\n"))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}
	if doc.AngleUnit != Radians {
		t.Errorf("AngleUnit = %v, want radians", doc.AngleUnit)
	}
	quats, _ := doc.Quats()
	if _, angle := quats[0].ToAxisAngle(); gomath.Abs(angle-1.5) > 1e-12 {
		t.Errorf("angle = %v, want 1.5", angle)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		label   string
	}{
		{"empty", "rotations: []\n", ErrEmptyDocument, ""},
		{"blank", "", ErrEmptyDocument, ""},
		{"no encoding", "rotations:\n  - name: bare\n", ErrNoEncoding, "bare"},
		{"two encodings", "rotations:\n  - quat: [0, 0, 0, 1]\n    scaled_axis: [0, 0, 0]\n", ErrMultipleEncodings, "#0"},
		{"component count", "rotations:\n  - quat: [0, 0, 1]\n", ErrComponentCount, "#0"},
		{"zero quat", "rotations:\n  - name: z\n    quat: [0, 0, 0, 0]\n", ErrZeroQuat, "z"},
		{"zero axis", "rotations:\n  - quat: [0, 0, 0, 1]\n  - axis_angle: {axis: [0, 0, 0], angle: 1}\n", ErrZeroAxis, "#1"},
		{"nan", "rotations:\n  - scaled_axis: [.nan, 0, 0]\n", ErrNonFinite, "#0"},
		{"unit", "angle_unit: turns\nrotations:\n  - quat: [0, 0, 0, 1]\n", ErrUnknownAngleUnit, ""},
		{"order", "rotations:\n  - euler: {order: XYX, angles: [0, 0, 0]}\n", math.ErrUnknownEulerRot, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseDocument() error = %v, want %v", err, tt.wantErr)
			}
			if tt.label != "" && !strings.Contains(err.Error(), "rotation "+tt.label) {
				t.Errorf("error %q does not name rotation %s", err, tt.label)
			}
		})
	}

	if _, err := ParseDocument([]byte("rotations: {")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestParseDocumentTinyQuat(t *testing.T) {
	doc, err := ParseDocument([]byte("rotations:\n  - quat: [0, 0, 0.00001, 0]\n"))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}
	quats, err := doc.Quats()
	if err != nil {
		t.Fatalf("Quats() error: %v", err)
	}
	if want := math.QuatFromRotationZ(gomath.Pi); !quats[0].SameRotation(want, 1e-12) {
		t.Errorf("quat = %v, want half turn about Z %v", quats[0], want)
	}
}

func TestConvert(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}
	want, _ := doc.Quats()

	targets := []Encoding{EncodingQuat, EncodingAxisAngle, EncodingScaledAxis, EncodingEuler}
	for _, target := range targets {
		t.Run(target.String(), func(t *testing.T) {
			opts := EncodeOptions{Order: math.EulerZYX, Unit: Radians, Canonical: true}
			out, err := Convert(doc, target, opts)
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}
			if out.AngleUnit != Radians {
				t.Errorf("AngleUnit = %v, want radians", out.AngleUnit)
			}
			for i, r := range out.Rotations {
				if r.Name != doc.Rotations[i].Name {
					t.Errorf("rotation %d name = %q, want %q", i, r.Name, doc.Rotations[i].Name)
				}
				if enc, err := r.Encoding(); err != nil || enc != target {
					t.Errorf("rotation %d encoding = %v, %v, want %v", i, enc, err, target)
				}
			}

			got, err := out.Quats()
			if err != nil {
				t.Fatalf("Quats() error: %v", err)
			}
			for i := range got {
				if !got[i].SameRotation(want[i], 1e-9) {
					t.Errorf("rotation %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}

	if _, err := Convert(doc, EncodingArc, EncodeOptions{}); !errors.Is(err, ErrInputOnlyEncoding) {
		t.Errorf("Convert(arc) error = %v, want ErrInputOnlyEncoding", err)
	}
}

func TestDocumentMarshalRoundTrip(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}
	out, err := Convert(doc, EncodingEuler, EncodeOptions{Order: math.EulerXYZ, Unit: Degrees})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	data, err := out.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	text := string(data)
	for _, s := range []string{"angle_unit: degrees", "order: XYZ", "name: heading"} {
		if !strings.Contains(text, s) {
			t.Errorf("Marshal() output missing %q:\n%s", s, text)
		}
	}
	if strings.Contains(text, "quat:") {
		t.Errorf("Marshal() wrote unused encodings:\n%s", text)
	}

	back, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument(Marshal()) error: %v", err)
	}
	want, _ := doc.Quats()
	got, _ := back.Quats()
	for i := range want {
		if !got[i].SameRotation(want[i], 1e-9) {
			t.Errorf("rotation %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseDocumentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotations.yaml")
	if err := os.WriteFile(path, []byte(sampleDocument), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := ParseDocumentFile(path)
	if err != nil {
		t.Fatalf("ParseDocumentFile() error: %v", err)
	}
	if len(doc.Rotations) != 5 {
		t.Errorf("got %d rotations, want 5", len(doc.Rotations))
	}

	if _, err := ParseDocumentFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}
