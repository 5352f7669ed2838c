// Package selection implements group, ungroup and clipboard actions over
// the active selection of a scene.
package selection

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"plancanvas/identity"
	"plancanvas/scene"
)

// DefaultOffset is distance clones are moved by on both axes.
const DefaultOffset = 20

// Surface is the mutable scene actions operate on. *scene.Canvas
// implements it.
type Surface interface {
	IndexOf(o *scene.Object) int
	Insert(index int, o *scene.Object) error
	Add(objs ...*scene.Object) error
	Remove(objs ...*scene.Object) bool
	FindByID(id string) *scene.Object
	ActiveObjects() []*scene.Object
	SetActive(objs ...*scene.Object)
	DiscardActive()
	RequestRender()
}

// NativeGrouper is implemented by surfaces able to group objects in place.
type NativeGrouper interface {
	GroupObjects(objs []*scene.Object) (*scene.Object, error)
}

// History records undo snapshots.
type History interface {
	Snapshot(reason string)
}

// HistoryFunc adapts function to History.
type HistoryFunc func(reason string)

func (f HistoryFunc) Snapshot(reason string) {
	f(reason)
}

// Actions carries out selection transitions. Every successful action ends
// with render request and history snapshot, failed ones leave the scene as
// it was and return false.
type Actions struct {
	Surface Surface
	History History
	Log     *zap.Logger
	Namer   *identity.Namer
	Offset  float64

	clipboard []*scene.Object
	pastes    int
}

func (a *Actions) log() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

func (a *Actions) namer() *identity.Namer {
	if a.Namer == nil {
		return identity.Default()
	}
	return a.Namer
}

func (a *Actions) offset() float64 {
	if a.Offset <= 0 {
		return DefaultOffset
	}
	return a.Offset
}

func (a *Actions) commit(reason string) {
	a.Surface.RequestRender()
	if a.History != nil {
		a.History.Snapshot(reason)
	}
}

// resolve returns objects by ids, or active selection when no ids are
// given, in z-order without duplicates.
func (a *Actions) resolve(ids []string) []*scene.Object {
	var objs []*scene.Object
	if len(ids) == 0 {
		objs = a.Surface.ActiveObjects()
	} else {
		for _, id := range ids {
			if o := a.Surface.FindByID(id); o != nil {
				objs = append(objs, o)
			}
		}
	}
	out := make([]*scene.Object, 0, len(objs))
	for _, o := range objs {
		if a.Surface.IndexOf(o) >= 0 && !slices.Contains(out, o) {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(x, y *scene.Object) int {
		return a.Surface.IndexOf(x) - a.Surface.IndexOf(y)
	})
	return out
}

// GroupSelected wraps at least two objects (by ids or active selection)
// into a group placed at the highest z-index among them.
func (a *Actions) GroupSelected(ids ...string) bool {
	objs := a.resolve(ids)
	if len(objs) < 2 {
		a.log().Debug("Nothing to group", zap.Int("objects", len(objs)))
		return false
	}

	var (
		g   *scene.Object
		err error
	)
	if ng, ok := a.Surface.(NativeGrouper); ok {
		if g, err = ng.GroupObjects(objs); err != nil {
			a.log().Debug("Native grouping failed, grouping manually", zap.Error(err))
			g = nil
		}
	}
	if g == nil {
		if g, err = a.groupManually(objs); err != nil {
			a.log().Warn("Unable to group objects", zap.Error(err))
			return false
		}
	}

	a.namer().EnsureObjectIdentity(g)
	a.Surface.SetActive(g)
	a.commit("group")
	return true
}

func (a *Actions) groupManually(objs []*scene.Object) (*scene.Object, error) {
	indexes := make([]int, len(objs))
	for i, o := range objs {
		indexes[i] = a.Surface.IndexOf(o)
	}
	// members are removed first, so index shifts by the ones below it
	at := slices.Max(indexes) - (len(objs) - 1)

	a.Surface.Remove(objs...)
	g := scene.NewGroup(objs...)
	if err := a.Surface.Insert(at, g); err != nil {
		return nil, multierr.Append(fmt.Errorf("unable to insert group: %w", err), a.rollback(g, objs, indexes))
	}
	return g, nil
}

// rollback puts grouped objects back where they were.
func (a *Actions) rollback(g *scene.Object, objs []*scene.Object, indexes []int) (err error) {
	g.Disband()
	a.Surface.Remove(g)
	for i, o := range objs {
		if e := a.Surface.Insert(indexes[i], o); e != nil && !errors.Is(e, scene.ErrAlreadyOnCanvas) {
			err = multierr.Append(err, fmt.Errorf("unable to restore object %q: %w", o.ID, e))
		}
	}
	return err
}

// UngroupSelected dissolves single selected group putting its children at
// the group z-index with their on-screen placement intact. Arrows and
// element groups are atomic and are never ungrouped.
func (a *Actions) UngroupSelected() bool {
	active := a.Surface.ActiveObjects()
	if len(active) != 1 || active[0].Type != scene.TypeGroup {
		return false
	}
	g := active[0]
	if identity.IsArrow(g) {
		a.log().Debug("Arrow cannot be ungrouped", zap.String("id", g.ID))
		return false
	}
	if g.Element != nil {
		a.log().Debug("Element cannot be ungrouped", zap.String("id", g.ID), zap.Stringer("kind", g.Element.Kind()))
		return false
	}

	at := a.Surface.IndexOf(g)
	if at < 0 {
		return false
	}
	a.Surface.Remove(g)
	children := g.Disband()
	for i, c := range children {
		c.Selectable, c.Evented = true, true
		if err := a.Surface.Insert(at+i, c); err != nil {
			a.log().Warn("Unable to place ungrouped object", zap.String("id", c.ID), zap.Error(err))
		}
	}
	a.Surface.SetActive(children...)
	a.commit("ungroup")
	return true
}

// clone copies object tree moved by (d, d) with fresh identity and arrow
// geometry rebuilt.
func (a *Actions) clone(o *scene.Object, d float64) *scene.Object {
	c := o.Clone()
	c.Left += d
	c.Top += d
	c.Walk(func(n *scene.Object) bool {
		if identity.IsArrow(n) {
			identity.RetagArrow(n)
			identity.RefreshArrowGroupGeometry(n)
			return false
		}
		return true
	})
	a.namer().AssignFreshIdentity(c)
	return c
}

func (a *Actions) place(objs []*scene.Object) error {
	var err error
	for _, o := range objs {
		err = multierr.Append(err, a.Surface.Add(o))
	}
	return err
}

// Duplicate places offset clones of selected objects on top and selects
// them.
func (a *Actions) Duplicate() bool {
	src := a.resolve(nil)
	if len(src) == 0 {
		return false
	}
	clones := make([]*scene.Object, len(src))
	for i, o := range src {
		clones[i] = a.clone(o, a.offset())
	}
	if err := a.place(clones); err != nil {
		a.Surface.Remove(clones...)
		a.log().Warn("Unable to duplicate", zap.Error(err))
		return false
	}
	a.Surface.SetActive(clones...)
	a.commit("duplicate")
	return true
}

// Copy puts snapshot of selected objects on clipboard.
func (a *Actions) Copy() bool {
	src := a.resolve(nil)
	if len(src) == 0 {
		return false
	}
	a.clipboard = make([]*scene.Object, len(src))
	for i, o := range src {
		a.clipboard[i] = o.Clone()
	}
	a.pastes = 0
	return true
}

// Paste adds clipboard clones, every subsequent paste moves further by the
// offset.
func (a *Actions) Paste() bool {
	if len(a.clipboard) == 0 {
		return false
	}
	d := a.offset() * float64(a.pastes+1)
	clones := make([]*scene.Object, len(a.clipboard))
	for i, o := range a.clipboard {
		clones[i] = a.clone(o, d)
	}
	if err := a.place(clones); err != nil {
		a.Surface.Remove(clones...)
		a.log().Warn("Unable to paste", zap.Error(err))
		return false
	}
	a.pastes++
	a.Surface.SetActive(clones...)
	a.commit("paste")
	return true
}

// Cut copies selected objects and removes them from the scene. First paste
// after cut lands in place of originals moved by the offset.
func (a *Actions) Cut() bool {
	src := a.resolve(nil)
	if !a.Copy() {
		return false
	}
	a.Surface.Remove(src...)
	a.Surface.DiscardActive()
	a.commit("cut")
	return true
}

// Clipboard returns number of objects waiting to be pasted.
func (a *Actions) Clipboard() int {
	return len(a.clipboard)
}
