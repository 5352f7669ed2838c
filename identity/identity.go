// Package identity assigns stable ids and friendly names to scene objects
// and keeps arrow groups geometrically consistent.
package identity

import (
	"bytes"
	"fmt"
	"slices"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/google/uuid"

	"plancanvas/common"
	"plancanvas/scene"
)

// DefaultNameTemplate names element groups by kind and label.
const DefaultNameTemplate = `{{ .Kind }}{{ with .Label }}: {{ . | trunc 48 }}{{ end }}`

const arrowName = "Arrow"

var primitiveNames = map[scene.Type]string{
	scene.TypeRect:    "Rectangle",
	scene.TypeText:    "Text",
	scene.TypeLine:    "Line",
	scene.TypePolygon: "Polygon",
	scene.TypeImage:   "Image",
	scene.TypeGroup:   "Group",
}

// nameValues are available to name template.
type nameValues struct {
	Kind  string
	Label string
	Type  string
}

// Namer computes friendly names of objects.
type Namer struct {
	tmpl *template.Template
}

// NewNamer parses element name template (slim-sprig functions available).
// Empty text selects DefaultNameTemplate.
func NewNamer(text string) (*Namer, error) {
	if len(text) == 0 {
		text = DefaultNameTemplate
	}
	tmpl, err := template.New("name").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse name template: %w", err)
	}
	return &Namer{tmpl: tmpl}, nil
}

var defaultNamer = func() *Namer {
	n, err := NewNamer(DefaultNameTemplate)
	if err != nil {
		panic(err)
	}
	return n
}()

// Default returns namer using DefaultNameTemplate.
func Default() *Namer {
	return defaultNamer
}

// FriendlyName returns display name derived from attached element
// metadata, arrow tag or primitive type, in that order.
func (n *Namer) FriendlyName(obj *scene.Object) string {
	if obj == nil {
		return ""
	}
	if obj.Element != nil {
		values := nameValues{
			Kind:  obj.Element.Kind().DisplayName(),
			Label: obj.Element.Label(),
			Type:  obj.Type.String(),
		}
		var buf bytes.Buffer
		if err := n.tmpl.Execute(&buf, values); err == nil && buf.Len() > 0 {
			return buf.String()
		}
		return values.Kind
	}
	if IsArrow(obj) {
		return arrowName
	}
	if name, ok := primitiveNames[obj.Type]; ok {
		return name
	}
	return "Object"
}

// isGenericName reports whether name is one of the generic defaults and
// may be replaced.
func isGenericName(name string) bool {
	if name == arrowName || name == "Object" {
		return true
	}
	for _, n := range primitiveNames {
		if n == name {
			return true
		}
	}
	return slices.ContainsFunc(common.ElementKindNames(), func(k string) bool {
		return common.ElementKind(k).DisplayName() == name
	})
}

// NewID returns new object id, time ordered when possible.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// EnsureObjectIdentity assigns id when missing and refreshes friendly name
// of object and all its descendants. A name set by user (different from
// the last generated one and not generic) is never replaced.
func (n *Namer) EnsureObjectIdentity(obj *scene.Object) {
	if obj == nil {
		return
	}
	obj.Walk(func(o *scene.Object) bool {
		if len(o.ID) == 0 {
			o.ID = NewID()
		}
		name := n.FriendlyName(o)
		if len(o.Name) == 0 || o.Name == o.AutoName || isGenericName(o.Name) {
			o.Name = name
		}
		o.AutoName = name
		return true
	})
}

// AssignFreshIdentity replaces ids of object tree, used for clones.
func (n *Namer) AssignFreshIdentity(obj *scene.Object) {
	if obj == nil {
		return
	}
	obj.Walk(func(o *scene.Object) bool {
		o.ID = ""
		return true
	})
	n.EnsureObjectIdentity(obj)
}

// EnsureObjectIdentity uses default namer.
func EnsureObjectIdentity(obj *scene.Object) {
	defaultNamer.EnsureObjectIdentity(obj)
}
