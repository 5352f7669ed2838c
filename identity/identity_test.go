package identity

import (
	"math"
	"testing"

	"plancanvas/common"
	"plancanvas/scene"
)

type testElement struct {
	kind  common.ElementKind
	label string
}

func (e testElement) Kind() common.ElementKind { return e.kind }
func (e testElement) Label() string            { return e.label }

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFriendlyName(t *testing.T) {
	n := Default()

	el := scene.NewFrame(10, 10)
	el.Element = testElement{kind: common.ElementKindWeekStrip, label: "Week of 2025-03-10"}

	noLabel := scene.NewFrame(10, 10)
	noLabel.Element = testElement{kind: common.ElementKindCalendarGrid}

	tests := []struct {
		name string
		obj  *scene.Object
		want string
	}{
		{"element", el, "Week Strip: Week of 2025-03-10"},
		{"element without label", noLabel, "Calendar Grid"},
		{"arrow", NewArrow(nil), "Arrow"},
		{"rect", scene.NewRect(0, 0, 1, 1), "Rectangle"},
		{"text", scene.NewText("a", 0, 0, 10, 10), "Text"},
		{"line", scene.NewLine(0, 0, 1, 1), "Line"},
		{"group", scene.NewGroup(scene.NewRect(0, 0, 1, 1)), "Group"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.FriendlyName(tt.obj); got != tt.want {
				t.Errorf("FriendlyName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewNamer(t *testing.T) {
	n, err := NewNamer(`{{ .Kind | upper }}`)
	if err != nil {
		t.Fatalf("NewNamer() error = %v", err)
	}
	o := scene.NewFrame(1, 1)
	o.Element = testElement{kind: common.ElementKindTable, label: "4×3"}
	if got := n.FriendlyName(o); got != "TABLE" {
		t.Errorf("FriendlyName() = %q, want TABLE", got)
	}

	if _, err := NewNamer(`{{ .Kind `); err == nil {
		t.Error("NewNamer() expected error for broken template")
	}
}

func TestEnsureObjectIdentity(t *testing.T) {
	t.Run("assigns id and name", func(t *testing.T) {
		r := scene.NewRect(0, 0, 10, 10)
		g := scene.NewGroup(r)
		EnsureObjectIdentity(g)
		if g.ID == "" || r.ID == "" {
			t.Fatal("ids were not assigned")
		}
		if g.ID == r.ID {
			t.Error("ids must be unique")
		}
		if g.Name != "Group" || r.Name != "Rectangle" {
			t.Errorf("names = %q, %q", g.Name, r.Name)
		}
	})

	t.Run("keeps existing id", func(t *testing.T) {
		r := scene.NewRect(0, 0, 10, 10)
		r.ID = "fixed"
		EnsureObjectIdentity(r)
		if r.ID != "fixed" {
			t.Errorf("ID = %q, want fixed", r.ID)
		}
	})

	t.Run("keeps user name", func(t *testing.T) {
		o := scene.NewFrame(10, 10)
		o.Element = testElement{kind: common.ElementKindDateCell, label: "2025-03-17"}
		o.Name = "Birthday"
		EnsureObjectIdentity(o)
		if o.Name != "Birthday" {
			t.Errorf("Name = %q, want Birthday", o.Name)
		}
	})

	t.Run("refreshes generated name", func(t *testing.T) {
		o := scene.NewFrame(10, 10)
		o.Element = testElement{kind: common.ElementKindCollage, label: "3 photos"}
		EnsureObjectIdentity(o)
		if o.Name != "Collage: 3 photos" {
			t.Fatalf("Name = %q", o.Name)
		}
		o.Element = testElement{kind: common.ElementKindCollage, label: "4 photos"}
		EnsureObjectIdentity(o)
		if o.Name != "Collage: 4 photos" {
			t.Errorf("Name = %q, want refreshed name", o.Name)
		}
	})

	t.Run("replaces generic name", func(t *testing.T) {
		o := scene.NewFrame(10, 10)
		o.Name = "Group"
		o.Element = testElement{kind: common.ElementKindChecklist, label: "To do"}
		EnsureObjectIdentity(o)
		if o.Name != "Checklist: To do" {
			t.Errorf("Name = %q", o.Name)
		}
	})

	t.Run("nil", func(t *testing.T) {
		EnsureObjectIdentity(nil)
	})
}

func TestAssignFreshIdentity(t *testing.T) {
	g := scene.NewGroup(scene.NewRect(0, 0, 1, 1), scene.NewRect(2, 2, 1, 1))
	EnsureObjectIdentity(g)
	c := g.Clone()
	Default().AssignFreshIdentity(c)
	if c.ID == g.ID || c.Children[0].ID == g.Children[0].ID {
		t.Error("clone kept ids of the original")
	}
	if c.Name != g.Name {
		t.Errorf("Name = %q, want %q", c.Name, g.Name)
	}
}

func TestNewArrow(t *testing.T) {
	a := NewArrow(nil)
	if !IsArrow(a) {
		t.Fatal("IsArrow() = false")
	}
	if !near(a.Width, 140) || !near(a.Height, 14) {
		t.Errorf("size = %vx%v, want 140x14", a.Width, a.Height)
	}
	if c := a.Center(); !near(c.X, 0) || !near(c.Y, 0) {
		t.Errorf("center = %v", c)
	}
	if len(a.Children) != 2 {
		t.Fatalf("children = %d, want line and end head", len(a.Children))
	}

	ln := a.FindPart(scene.PartLine)
	if ln == nil {
		t.Fatal("no line part")
	}
	pts := ln.ParentPoints()
	if !near(pts[0].X, -70) || !near(pts[0].Y, 0) || !near(pts[1].X, 70) || !near(pts[1].Y, 0) {
		t.Errorf("line points = %v", pts)
	}
	if ln.Stroke != DefaultArrowStroke || ln.StrokeWidth != DefaultArrowStrokeWidth {
		t.Errorf("line stroke = %q/%v", ln.Stroke, ln.StrokeWidth)
	}

	head := a.FindPart(scene.PartEndHead)
	if head == nil {
		t.Fatal("no end head")
	}
	hp := head.ParentPoints()
	if !near(hp[0].X, 70) || !near(hp[0].Y, 0) {
		t.Errorf("tip = %v, want (70,0)", hp[0])
	}
	if !near(hp[1].X, 52) || !near(hp[1].Y, -7) || !near(hp[2].X, 52) || !near(hp[2].Y, 7) {
		t.Errorf("head base = %v %v", hp[1], hp[2])
	}
	if head.Fill != DefaultArrowStroke {
		t.Errorf("filled head fill = %q", head.Fill)
	}
	if a.FindPart(scene.PartStartHead) != nil {
		t.Error("start head present by default")
	}
}

func TestRefreshArrowGroupGeometry(t *testing.T) {
	yes, no := true, false
	a := NewArrow(nil)
	a.SetCenter(scene.Point{X: 300, Y: 200})

	a.Arrow = &scene.ArrowOptions{
		BaseWidth:  200,
		HeadLength: 20,
		HeadWidth:  16,
		HeadStyle:  common.ArrowHeadStyleOpen,
		StartHead:  &yes,
		EndHead:    &no,
	}
	if !RefreshArrowGroupGeometry(a) {
		t.Fatal("RefreshArrowGroupGeometry() = false")
	}
	if c := a.Center(); !near(c.X, 300) || !near(c.Y, 200) {
		t.Errorf("center moved to %v", c)
	}
	if a.FindPart(scene.PartEndHead) != nil {
		t.Error("end head was not removed")
	}
	start := a.FindPart(scene.PartStartHead)
	if start == nil {
		t.Fatal("start head missing")
	}
	sp := start.ParentPoints()
	if !near(sp[0].X, -100) || !near(sp[1].X, -80) {
		t.Errorf("start head points = %v", sp)
	}
	if start.Fill != "" || start.Stroke != DefaultArrowStroke {
		t.Errorf("open head fill/stroke = %q/%q", start.Fill, start.Stroke)
	}

	if RefreshArrowGroupGeometry(scene.NewRect(0, 0, 1, 1)) {
		t.Error("refresh of a rectangle reported success")
	}
}

func TestRetagArrow(t *testing.T) {
	a := NewArrow(nil)
	c := a.Clone()
	c.ShapeKind = ""
	c.Arrow = nil
	for _, ch := range c.Children {
		ch.Part = ""
	}
	if IsArrow(c) {
		t.Fatal("untagged group detected as arrow")
	}

	RetagArrow(c)
	if !IsArrow(c) {
		t.Fatal("IsArrow() = false after retag")
	}
	if c.FindPart(scene.PartLine) == nil || c.FindPart(scene.PartEndHead) == nil {
		t.Error("parts were not restored")
	}
	if c.Arrow == nil || !near(c.Arrow.BaseWidth, 140) || c.Arrow.HasStartHead() || !c.Arrow.HasEndHead() {
		t.Errorf("options = %+v", c.Arrow)
	}
	if !near(c.Arrow.HeadLength, 18) || !near(c.Arrow.HeadWidth, 14) {
		t.Errorf("head = %vx%v", c.Arrow.HeadLength, c.Arrow.HeadWidth)
	}
}
