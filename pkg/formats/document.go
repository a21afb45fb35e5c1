package formats

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/rotkit/pkg/math"
)

// ErrEmptyDocument is returned for a document without rotations.
var ErrEmptyDocument = errors.New("document has no rotations")

// Document is a list of rotations sharing one angle unit.
type Document struct {
	AngleUnit AngleUnit  `yaml:"angle_unit,omitempty"`
	Rotations []Rotation `yaml:"rotations"`
}

// ParseDocument parses and validates a YAML rotation document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if len(doc.Rotations) == 0 {
		return nil, ErrEmptyDocument
	}
	if _, err := doc.Quats(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseDocumentFile reads and parses a rotation document from disk.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rotation document: %w", err)
	}
	return ParseDocument(data)
}

// Label names rotation i for messages: its name if it has one, else #i.
func (d *Document) Label(i int) string {
	if name := d.Rotations[i].Name; name != "" {
		return name
	}
	return fmt.Sprintf("#%d", i)
}

// Quats resolves every rotation in document order.
func (d *Document) Quats() ([]math.DQuat, error) {
	quats := make([]math.DQuat, len(d.Rotations))
	for i, r := range d.Rotations {
		q, err := r.Resolve(d.AngleUnit)
		if err != nil {
			return nil, fmt.Errorf("rotation %s: %w", d.Label(i), err)
		}
		quats[i] = q
	}
	return quats, nil
}

// Convert rewrites every rotation of d in the target encoding. Names are
// kept and the result uses opts.Unit.
func Convert(d *Document, target Encoding, opts EncodeOptions) (*Document, error) {
	quats, err := d.Quats()
	if err != nil {
		return nil, err
	}

	out := &Document{
		AngleUnit: opts.Unit,
		Rotations: make([]Rotation, len(quats)),
	}
	for i, q := range quats {
		r, err := Encode(d.Rotations[i].Name, q, target, opts)
		if err != nil {
			return nil, fmt.Errorf("rotation %s: %w", d.Label(i), err)
		}
		out.Rotations[i] = r
	}
	return out, nil
}

// Marshal encodes d as YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}
