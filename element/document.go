package element

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"plancanvas/common"
	"plancanvas/scene"
)

// KindArrow is document item kind for arrow shapes, it is not an element
// kind.
const KindArrow = "arrow"

// Item is single document entry placed on canvas.
type Item struct {
	Kind     string              `yaml:"kind"`
	Name     string              `yaml:"name,omitempty"`
	Left     float64             `yaml:"left"`
	Top      float64             `yaml:"top"`
	Angle    float64             `yaml:"angle,omitempty"`
	Metadata yaml.Node           `yaml:"metadata,omitempty"`
	Arrow    *scene.ArrowOptions `yaml:"arrow,omitempty"`
}

// IsArrow reports whether item describes arrow.
func (it *Item) IsArrow() bool {
	return strings.EqualFold(it.Kind, KindArrow)
}

// ElementKind parses item kind.
func (it *Item) ElementKind() (common.ElementKind, error) {
	return common.ParseElementKind(it.Kind)
}

// Decode returns normalized element metadata of the item.
func (it *Item) Decode(today time.Time) (Metadata, error) {
	return it.DecodeLocalized(today, nil)
}

// DecodeLocalized returns normalized element metadata of the item with
// locale defaults.
func (it *Item) DecodeLocalized(today time.Time, loc *Locale) (Metadata, error) {
	kind, err := it.ElementKind()
	if err != nil {
		return nil, err
	}
	var node *yaml.Node
	if it.Metadata.Kind != 0 {
		node = &it.Metadata
	}
	return DecodeLocalized(kind, node, today, loc)
}

// Document is a list of canvas items. Groups list item indexes grouped
// together once all items are placed.
type Document struct {
	Items  []Item  `yaml:"items"`
	Groups [][]int `yaml:"groups,omitempty"`
}

func (d *Document) checkGroups() error {
	used := make(map[int]int)
	for g, members := range d.Groups {
		if len(members) < 2 {
			return fmt.Errorf("group %d: at least two items are required", g)
		}
		for _, i := range members {
			if i < 0 || i >= len(d.Items) {
				return fmt.Errorf("group %d: no item %d", g, i)
			}
			if prev, ok := used[i]; ok {
				return fmt.Errorf("group %d: item %d is already in group %d", g, i, prev)
			}
			used[i] = g
		}
	}
	return nil
}

// ParseDocument decodes YAML document, validating item kinds and metadata.
func ParseDocument(data []byte, today time.Time) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("unable to decode document: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, errors.New("document has no items")
	}
	for i := range doc.Items {
		it := &doc.Items[i]
		if it.IsArrow() {
			if it.Metadata.Kind != 0 {
				return nil, fmt.Errorf("item %d: arrow does not take metadata", i)
			}
			continue
		}
		if it.Arrow != nil {
			return nil, fmt.Errorf("item %d: arrow options on %q item", i, it.Kind)
		}
		if _, err := it.Decode(today); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	if err := doc.checkGroups(); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadDocument reads document from file.
func LoadDocument(path string, today time.Time) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}
	return ParseDocument(data, today)
}
