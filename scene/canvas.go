package scene

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotOnCanvas     = errors.New("object is not on canvas")
	ErrAlreadyOnCanvas = errors.New("object is already on canvas")
)

// Canvas keeps ordered top level objects (first is bottom-most) and the
// active selection. It is not safe for concurrent use, owner serializes
// access.
type Canvas struct {
	objects  []*Object
	active   []*Object
	renders  int
	onRender func()
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

// OnRender registers function called on every render request.
func (c *Canvas) OnRender(fn func()) {
	c.onRender = fn
}

// Objects returns copy of top level objects in z-order.
func (c *Canvas) Objects() []*Object {
	return slices.Clone(c.objects)
}

func (c *Canvas) Len() int {
	return len(c.objects)
}

// IndexOf returns z-index of a top level object or -1.
func (c *Canvas) IndexOf(o *Object) int {
	return slices.Index(c.objects, o)
}

// Add appends objects on top.
func (c *Canvas) Add(objs ...*Object) error {
	for _, o := range objs {
		if err := c.Insert(len(c.objects), o); err != nil {
			return err
		}
	}
	return nil
}

// Insert puts object at z-index, index is clamped to valid range.
func (c *Canvas) Insert(index int, o *Object) error {
	if o == nil {
		return errors.New("nil object")
	}
	if c.IndexOf(o) >= 0 {
		return fmt.Errorf("insert %q: %w", o.ID, ErrAlreadyOnCanvas)
	}
	index = max(0, min(index, len(c.objects)))
	c.objects = slices.Insert(c.objects, index, o)
	return nil
}

// Remove takes objects off canvas and out of active selection. Returns
// false if any of them was not found.
func (c *Canvas) Remove(objs ...*Object) bool {
	ok := true
	for _, o := range objs {
		i := c.IndexOf(o)
		if i < 0 {
			ok = false
			continue
		}
		c.objects = slices.Delete(c.objects, i, i+1)
		c.active = slices.DeleteFunc(c.active, func(a *Object) bool { return a == o })
	}
	return ok
}

// Replace swaps old object with new one keeping z-index.
func (c *Canvas) Replace(old, o *Object) error {
	i := c.IndexOf(old)
	if i < 0 {
		return fmt.Errorf("replace %q: %w", old.ID, ErrNotOnCanvas)
	}
	c.objects[i] = o
	for j, a := range c.active {
		if a == old {
			c.active[j] = o
		}
	}
	return nil
}

// FindByID looks up top level object by identity.
func (c *Canvas) FindByID(id string) *Object {
	if len(id) == 0 {
		return nil
	}
	for _, o := range c.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// ActiveObjects returns current selection.
func (c *Canvas) ActiveObjects() []*Object {
	return slices.Clone(c.active)
}

// SetActive replaces selection, objects not on canvas are ignored.
func (c *Canvas) SetActive(objs ...*Object) {
	c.active = c.active[:0]
	for _, o := range objs {
		if c.IndexOf(o) >= 0 && !slices.Contains(c.active, o) {
			c.active = append(c.active, o)
		}
	}
}

func (c *Canvas) DiscardActive() {
	c.active = nil
}

// RequestRender marks canvas for redraw.
func (c *Canvas) RequestRender() {
	c.renders++
	if c.onRender != nil {
		c.onRender()
	}
}

// Renders returns number of render requests so far.
func (c *Canvas) Renders() int {
	return c.renders
}

// GroupObjects groups top level objects in place: the new group takes the
// highest z-index among members and becomes the only active object.
func (c *Canvas) GroupObjects(objs []*Object) (*Object, error) {
	if len(objs) < 2 {
		return nil, errors.New("at least two objects are required")
	}
	at := -1
	for _, o := range objs {
		i := c.IndexOf(o)
		if i < 0 {
			return nil, fmt.Errorf("group %q: %w", o.ID, ErrNotOnCanvas)
		}
		at = max(at, i)
	}
	// members are removed first, so index shifts by the ones below it
	at -= len(objs) - 1

	ordered := slices.Clone(objs)
	slices.SortFunc(ordered, func(a, b *Object) int { return c.IndexOf(a) - c.IndexOf(b) })
	c.Remove(ordered...)

	g := NewGroup(ordered...)
	if err := c.Insert(at, g); err != nil {
		return nil, err
	}
	c.SetActive(g)
	return g, nil
}
