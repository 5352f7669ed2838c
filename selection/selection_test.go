package selection

import (
	"errors"
	"math"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"plancanvas/identity"
	"plancanvas/scene"
)

type recorder struct {
	reasons []string
}

func (r *recorder) Snapshot(reason string) {
	r.reasons = append(r.reasons, reason)
}

// noNative refuses native grouping so actions fall back to manual mode.
type noNative struct {
	*scene.Canvas
	failGroupInsert bool
}

func (s *noNative) GroupObjects([]*scene.Object) (*scene.Object, error) {
	return nil, errors.New("not supported")
}

func (s *noNative) Insert(index int, o *scene.Object) error {
	if s.failGroupInsert && o.Type == scene.TypeGroup {
		return errors.New("insert failed")
	}
	return s.Canvas.Insert(index, o)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func setup(t *testing.T, s Surface, objs ...*scene.Object) (*Actions, *recorder) {
	t.Helper()
	for _, o := range objs {
		identity.EnsureObjectIdentity(o)
		if err := s.Add(o); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	h := &recorder{}
	return &Actions{Surface: s, History: h, Log: zaptest.NewLogger(t)}, h
}

func rects() []*scene.Object {
	return []*scene.Object{
		scene.NewRect(10, 20, 30, 40),
		scene.NewRect(100, 50, 20, 20),
		scene.NewRect(-40, 5, 10, 60),
		scene.NewRect(0, 0, 5, 5),
	}
}

func TestGroupUngroupRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name    string
		surface func(c *scene.Canvas) Surface
	}{
		{"native", func(c *scene.Canvas) Surface { return c }},
		{"manual", func(c *scene.Canvas) Surface { return &noNative{Canvas: c} }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := scene.NewCanvas()
			objs := rects()
			objs[1].Angle = 30
			a, h := setup(t, tt.surface(c), objs...)

			type pos struct{ left, top, angle float64 }
			before := make([]pos, len(objs))
			for i, o := range objs {
				before[i] = pos{o.Left, o.Top, o.Angle}
			}

			if !a.GroupSelected(objs[0].ID, objs[2].ID) {
				t.Fatal("GroupSelected() = false")
			}
			if c.Len() != 3 {
				t.Fatalf("canvas holds %d objects, want 3", c.Len())
			}
			g := c.Objects()[1]
			if g.Type != scene.TypeGroup || len(g.Children) != 2 {
				t.Fatalf("object at index 1 is not the group")
			}
			if g.ID == "" || g.Name != "Group" {
				t.Errorf("group identity = %q/%q", g.ID, g.Name)
			}
			if active := c.ActiveObjects(); len(active) != 1 || active[0] != g {
				t.Error("group is not the active object")
			}

			if !a.UngroupSelected() {
				t.Fatal("UngroupSelected() = false")
			}
			got := c.Objects()
			want := []*scene.Object{objs[1], objs[0], objs[2], objs[3]}
			if !slices.Equal(got, want) {
				t.Errorf("z-order after ungroup is wrong")
			}
			for i, o := range objs {
				if !near(o.Left, before[i].left) || !near(o.Top, before[i].top) || !near(o.Angle, before[i].angle) {
					t.Errorf("object %d at (%v,%v,%v), want %+v", i, o.Left, o.Top, o.Angle, before[i])
				}
			}
			if active := c.ActiveObjects(); len(active) != 2 {
				t.Errorf("active = %d objects, want 2", len(active))
			}
			if !slices.Equal(h.reasons, []string{"group", "ungroup"}) {
				t.Errorf("snapshots = %v", h.reasons)
			}
			if c.Renders() != 2 {
				t.Errorf("renders = %d, want 2", c.Renders())
			}
		})
	}
}

func TestGroupSelected_ActiveSelection(t *testing.T) {
	c := scene.NewCanvas()
	objs := rects()
	a, _ := setup(t, c, objs...)

	c.SetActive(objs[3], objs[1])
	if !a.GroupSelected() {
		t.Fatal("GroupSelected() = false")
	}
	g := c.Objects()[2]
	if g.Children[0] != objs[1] || g.Children[1] != objs[3] {
		t.Error("children are not in z-order")
	}
}

func TestGroupSelected_NotEnough(t *testing.T) {
	c := scene.NewCanvas()
	objs := rects()
	a, h := setup(t, c, objs...)

	if a.GroupSelected(objs[0].ID, "missing") {
		t.Error("grouped single resolvable object")
	}
	c.SetActive(objs[0])
	if a.GroupSelected() {
		t.Error("grouped single active object")
	}
	if len(h.reasons) != 0 || c.Len() != 4 {
		t.Error("failed grouping changed the scene")
	}
}

func TestGroupSelected_Rollback(t *testing.T) {
	c := scene.NewCanvas()
	objs := rects()
	a, h := setup(t, &noNative{Canvas: c, failGroupInsert: true}, objs...)
	lefts := []float64{objs[0].Left, objs[1].Left, objs[2].Left, objs[3].Left}

	if a.GroupSelected(objs[0].ID, objs[2].ID) {
		t.Fatal("GroupSelected() = true")
	}
	if !slices.Equal(c.Objects(), objs) {
		t.Error("objects were not restored in original order")
	}
	for i, o := range objs {
		if !near(o.Left, lefts[i]) {
			t.Errorf("object %d moved to %v", i, o.Left)
		}
	}
	if len(h.reasons) != 0 {
		t.Errorf("snapshots = %v", h.reasons)
	}
}

func TestUngroupSelected_Refused(t *testing.T) {
	c := scene.NewCanvas()
	arrow := identity.NewArrow(nil)
	a, h := setup(t, c, arrow, scene.NewRect(0, 0, 1, 1))

	c.SetActive(arrow)
	if a.UngroupSelected() {
		t.Error("arrow was ungrouped")
	}
	if c.Len() != 2 || len(arrow.Children) != 2 {
		t.Error("arrow refusal changed the scene")
	}

	c.SetActive(c.Objects()[1])
	if a.UngroupSelected() {
		t.Error("rectangle was ungrouped")
	}
	if len(h.reasons) != 0 {
		t.Errorf("snapshots = %v", h.reasons)
	}
}

func TestDuplicate(t *testing.T) {
	c := scene.NewCanvas()
	arrow := identity.NewArrow(nil)
	arrow.SetCenter(scene.Point{X: 200, Y: 100})
	rect := scene.NewRect(10, 10, 50, 50)
	rect.SetData("note", "keep")
	a, h := setup(t, c, rect, arrow)

	c.SetActive(rect, arrow)
	if !a.Duplicate() {
		t.Fatal("Duplicate() = false")
	}
	objs := c.Objects()
	if len(objs) != 4 {
		t.Fatalf("canvas holds %d objects, want 4", len(objs))
	}
	rc, ac := objs[2], objs[3]
	if rc.ID == rect.ID || ac.ID == arrow.ID || rc.ID == "" {
		t.Error("clones share identity with originals")
	}
	if !near(rc.Left, 30) || !near(rc.Top, 30) || rc.Data["note"] != "keep" {
		t.Errorf("rect clone = (%v,%v) data %v", rc.Left, rc.Top, rc.Data)
	}
	if !identity.IsArrow(ac) || ac.Arrow == nil {
		t.Fatal("arrow clone lost its tags")
	}
	if cc := ac.Center(); !near(cc.X, 220) || !near(cc.Y, 120) {
		t.Errorf("arrow clone center = %v", cc)
	}
	tip := ac.FindPart(scene.PartEndHead).ParentPoints()[0]
	if !near(tip.X, 70) || !near(tip.Y, 0) {
		t.Errorf("arrow clone tip = %v", tip)
	}
	if ac.Children[0] == arrow.Children[0] {
		t.Error("clone shares children with original")
	}
	if active := c.ActiveObjects(); len(active) != 2 || active[0] != rc {
		t.Error("clones are not selected")
	}
	if !slices.Equal(h.reasons, []string{"duplicate"}) {
		t.Errorf("snapshots = %v", h.reasons)
	}
}

func TestCopyPaste(t *testing.T) {
	c := scene.NewCanvas()
	rect := scene.NewRect(10, 10, 50, 50)
	a, h := setup(t, c, rect)

	if a.Paste() {
		t.Error("paste with empty clipboard succeeded")
	}
	c.SetActive(rect)
	if !a.Copy() || a.Clipboard() != 1 {
		t.Fatal("Copy() failed")
	}
	rect.Left = 500

	for i, want := range []float64{30, 50} {
		if !a.Paste() {
			t.Fatalf("Paste() #%d = false", i+1)
		}
		p := c.Objects()[i+1]
		if !near(p.Left, want) || !near(p.Top, want) {
			t.Errorf("paste #%d at (%v,%v), want %v", i+1, p.Left, p.Top, want)
		}
	}
	if c.Objects()[1].ID == c.Objects()[2].ID {
		t.Error("pasted objects share identity")
	}
	if !slices.Equal(h.reasons, []string{"paste", "paste"}) {
		t.Errorf("snapshots = %v", h.reasons)
	}
}

func TestCut(t *testing.T) {
	c := scene.NewCanvas()
	rect := scene.NewRect(10, 10, 50, 50)
	other := scene.NewRect(0, 0, 5, 5)
	a, h := setup(t, c, rect, other)

	c.SetActive(rect)
	if !a.Cut() {
		t.Fatal("Cut() = false")
	}
	if c.Len() != 1 || c.IndexOf(rect) >= 0 || len(c.ActiveObjects()) != 0 {
		t.Error("cut object is still on canvas")
	}
	if !a.Paste() {
		t.Fatal("Paste() = false")
	}
	p := c.Objects()[1]
	if !near(p.Left, 30) || p.ID == rect.ID {
		t.Errorf("pasted at %v with id %q", p.Left, p.ID)
	}
	if !slices.Equal(h.reasons, []string{"cut", "paste"}) {
		t.Errorf("snapshots = %v", h.reasons)
	}
	if a.Cut() {
		t.Error("cut of empty selection succeeded")
	}
}
