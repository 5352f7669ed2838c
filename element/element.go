// Package element defines metadata records of design elements: their
// defaults, normalization and the copy-on-write update path.
package element

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"plancanvas/common"
	"plancanvas/scene"
)

// Metadata is a typed record describing one design element. Records handed
// to builders are treated as immutable, updates go through Apply or Patch.
type Metadata interface {
	scene.Element
	Dimensions() scene.Size
	Clone() Metadata
	// Normalize resolves missing values against defaults and clamps numeric
	// fields into their valid ranges.
	Normalize()
}

// New returns normalized default metadata of kind. Date dependent kinds are
// anchored at today.
func New(kind common.ElementKind, today time.Time) (Metadata, error) {
	var m Metadata
	switch kind {
	case common.ElementKindCalendarGrid:
		m = DefaultCalendarGrid(today)
	case common.ElementKindWeekStrip:
		m = DefaultWeekStrip(today)
	case common.ElementKindDateCell:
		m = DefaultDateCell(today)
	case common.ElementKindCollage:
		m = DefaultCollage()
	case common.ElementKindTable:
		m = DefaultTable()
	case common.ElementKindSchedule:
		m = DefaultSchedule()
	case common.ElementKindChecklist:
		m = DefaultChecklist()
	case common.ElementKindPlannerNote:
		m = DefaultPlannerNote()
	default:
		return nil, fmt.Errorf("unknown element kind %q", kind)
	}
	m.Normalize()
	return m, nil
}

// Apply produces updated record: m is copied, fn mutates the copy and the
// result is normalized. Original record is never touched.
func Apply[M Metadata](m M, fn func(M)) M {
	c, ok := m.Clone().(M)
	if !ok {
		// Clone always returns the same concrete type
		panic(fmt.Sprintf("clone of %T returned %T", m, m.Clone()))
	}
	if fn != nil {
		fn(c)
	}
	c.Normalize()
	return c
}

// Patch decodes partial YAML fragment on top of a copy of m. Unknown fields
// are rejected.
func Patch(m Metadata, fragment []byte) (Metadata, error) {
	if m == nil {
		return nil, errors.New("nil metadata")
	}
	c := m.Clone()
	if len(bytes.TrimSpace(fragment)) == 0 {
		c.Normalize()
		return c, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(fragment))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to apply %s patch: %w", m.Kind(), err)
	}
	c.Normalize()
	return c, nil
}

// Decode builds metadata of kind from YAML node laid over defaults. Nil
// node yields defaults.
func Decode(kind common.ElementKind, node *yaml.Node, today time.Time) (Metadata, error) {
	return DecodeLocalized(kind, node, today, nil)
}

// DecodeLocalized is Decode with locale applied to defaults before node
// values.
func DecodeLocalized(kind common.ElementKind, node *yaml.Node, today time.Time, loc *Locale) (Metadata, error) {
	m, err := New(kind, today)
	if err != nil {
		return nil, err
	}
	m = Localize(m, loc)
	if node == nil || node.Kind == 0 {
		return m, nil
	}
	// Node.Decode does not support KnownFields, go through bytes
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("unable to re-encode %s metadata: %w", kind, err)
	}
	return Patch(m, data)
}

// Encode returns YAML representation of metadata.
func Encode(m Metadata) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("unable to encode %s metadata: %w", m.Kind(), err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
