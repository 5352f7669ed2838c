// Package editor keeps design elements on a canvas in sync with their
// metadata: every change rebuilds element graphics in place.
package editor

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"plancanvas/build"
	"plancanvas/element"
	"plancanvas/identity"
	"plancanvas/scene"
	"plancanvas/selection"
)

// DefaultDebounce is delay used when none is configured.
const DefaultDebounce = 150 * time.Millisecond

var (
	ErrNotFound   = errors.New("object not found")
	ErrNotElement = errors.New("object is not an element")
)

// Options configure Store. Zero values select defaults.
type Options struct {
	Debounce    time.Duration
	PasteOffset float64
	Namer       *identity.Namer
	History     selection.History
	Lookups     build.Lookups
}

// Store owns canvas and serializes all its mutations. Debounce timers and
// image loads call into it from their own goroutines.
type Store struct {
	mu       sync.Mutex
	canvas   *scene.Canvas
	lookups  build.Lookups
	actions  *selection.Actions
	namer    *identity.Namer
	history  selection.History
	debounce time.Duration
	timers   map[string]*time.Timer
	updates  map[string][]func(element.Metadata)
	log      *zap.Logger
}

// New creates store over empty canvas.
func New(opts Options, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		canvas:   scene.NewCanvas(),
		lookups:  opts.Lookups,
		namer:    opts.Namer,
		history:  opts.History,
		debounce: opts.Debounce,
		timers:   make(map[string]*time.Timer),
		updates:  make(map[string][]func(element.Metadata)),
		log:      log.Named("editor"),
	}
	if s.namer == nil {
		s.namer = identity.Default()
	}
	if s.debounce <= 0 {
		s.debounce = DefaultDebounce
	}
	s.lookups.OnImageLoaded = s.ImageLoaded
	s.actions = &selection.Actions{
		Surface: s.canvas,
		History: s.history,
		Log:     s.log.Named("selection"),
		Namer:   s.namer,
		Offset:  opts.PasteOffset,
	}
	return s
}

func (s *Store) snapshot(reason string) {
	s.canvas.RequestRender()
	if s.history != nil {
		s.history.Snapshot(reason)
	}
}

// View calls fn with canvas while holding the store lock. Canvas must not
// be retained or mutated.
func (s *Store) View(fn func(c *scene.Canvas)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.canvas)
}

// Add builds graphics of metadata and places it with top-left corner at
// (left, top). Returns id of the new object.
func (s *Store) Add(meta element.Metadata, left, top float64) (string, error) {
	if meta == nil {
		return "", errors.New("nil metadata")
	}
	meta = element.Apply(meta, nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	obj := build.Build(meta, s.lookups)
	obj.Left, obj.Top = left, top
	s.namer.EnsureObjectIdentity(obj)
	if err := s.canvas.Add(obj); err != nil {
		return "", fmt.Errorf("unable to add %s: %w", meta.Kind(), err)
	}
	s.log.Debug("Element added", zap.String("id", obj.ID), zap.String("name", obj.Name))
	s.snapshot("add")
	return obj.ID, nil
}

// AddArrow places new arrow centered at (x, y).
func (s *Store) AddArrow(opts *scene.ArrowOptions, x, y float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := identity.NewArrow(opts)
	obj.SetCenter(scene.Point{X: x, Y: y})
	s.namer.EnsureObjectIdentity(obj)
	if err := s.canvas.Add(obj); err != nil {
		return "", fmt.Errorf("unable to add arrow: %w", err)
	}
	s.snapshot("add")
	return obj.ID, nil
}

// SetName renames object, an empty name restores the generated one.
func (s *Store) SetName(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, _ := s.find(id)
	if obj == nil {
		return fmt.Errorf("rename %q: %w", id, ErrNotFound)
	}
	obj.Name = name
	s.namer.EnsureObjectIdentity(obj)
	s.snapshot("rename")
	return nil
}

// Metadata returns current metadata of element object.
func (s *Store) Metadata(id string) (element.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, meta, err := s.element(id)
	return meta, err
}

// find looks object up anywhere in the tree returning it with its parent
// group (nil for top level objects).
func (s *Store) find(id string) (obj, parent *scene.Object) {
	if len(id) == 0 {
		return nil, nil
	}
	for _, top := range s.canvas.Objects() {
		if top.ID == id {
			return top, nil
		}
		top.Walk(func(o *scene.Object) bool {
			if obj != nil {
				return false
			}
			for _, c := range o.Children {
				if c.ID == id {
					obj, parent = c, o
					return false
				}
			}
			// element graphics are opaque
			return o.Element == nil
		})
		if obj != nil {
			return obj, parent
		}
	}
	return nil, nil
}

func (s *Store) element(id string) (*scene.Object, element.Metadata, error) {
	obj, _ := s.find(id)
	if obj == nil {
		return nil, nil, fmt.Errorf("element %q: %w", id, ErrNotFound)
	}
	meta, ok := obj.Element.(element.Metadata)
	if !ok {
		return nil, nil, fmt.Errorf("object %q: %w", id, ErrNotElement)
	}
	return obj, meta, nil
}

// rebuild replaces graphics of element object keeping identity, placement
// and z-index.
func (s *Store) rebuild(id string, meta element.Metadata) error {
	old, parent := s.find(id)
	if old == nil {
		return fmt.Errorf("rebuild %q: %w", id, ErrNotFound)
	}

	g := build.Build(meta, s.lookups)
	g.Left, g.Top = old.Left, old.Top
	g.Angle, g.ScaleX, g.ScaleY = old.Angle, old.ScaleX, old.ScaleY
	g.Opacity, g.Visible = old.Opacity, old.Visible
	g.ID, g.Name, g.AutoName = old.ID, old.Name, old.AutoName
	g.Data = old.Data
	s.namer.EnsureObjectIdentity(g)

	if parent == nil {
		return s.canvas.Replace(old, g)
	}
	i := slices.Index(parent.Children, old)
	parent.Children[i] = g
	return nil
}

func (s *Store) apply(id string, fns ...func(element.Metadata)) error {
	_, meta, err := s.element(id)
	if err != nil {
		return err
	}
	next := meta.Clone()
	for _, fn := range fns {
		fn(next)
	}
	next.Normalize()
	return s.rebuild(id, next)
}

// Update applies fn to a copy of element metadata and rebuilds element
// graphics. Pending debounced updates of the element are applied first.
func (s *Store) Update(id string, fn func(element.Metadata)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fns := append(s.takePending(id), fn)
	if err := s.apply(id, fns...); err != nil {
		return err
	}
	s.snapshot("update")
	return nil
}

// Patch lays partial YAML fragment over element metadata.
func (s *Store) Patch(id string, fragment []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending := s.takePending(id); len(pending) > 0 {
		if err := s.apply(id, pending...); err != nil {
			return err
		}
	}
	_, meta, err := s.element(id)
	if err != nil {
		return err
	}
	next, err := element.Patch(meta, fragment)
	if err != nil {
		return err
	}
	if err := s.rebuild(id, next); err != nil {
		return err
	}
	s.snapshot("update")
	return nil
}

// UpdateDebounced queues fn and restarts element timer. Queued updates are
// applied together once edits stop arriving for the debounce delay.
func (s *Store) UpdateDebounced(id string, fn func(element.Metadata)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
	}
	s.updates[id] = append(s.updates[id], fn)
	s.timers[id] = time.AfterFunc(s.debounce, func() {
		s.commit(id)
	})
}

// Pending returns number of elements with queued updates.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.updates)
}

func (s *Store) takePending(id string) []func(element.Metadata) {
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	fns := s.updates[id]
	delete(s.updates, id)
	return fns
}

func (s *Store) commit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fns := s.takePending(id)
	if len(fns) == 0 {
		// flushed already
		return
	}
	if err := s.apply(id, fns...); err != nil {
		s.log.Warn("Unable to apply delayed update", zap.String("id", id), zap.Error(err))
		return
	}
	s.snapshot("update")
}

// Flush applies all queued updates immediately.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.updates))
	for id := range s.updates {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var err error
	for _, id := range ids {
		err = multierr.Append(err, s.apply(id, s.takePending(id)...))
	}
	if len(ids) > 0 {
		s.snapshot("update")
	}
	return err
}

// Remove deletes top level object dropping its queued updates.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.takePending(id)
	obj := s.canvas.FindByID(id)
	if obj == nil || !s.canvas.Remove(obj) {
		return false
	}
	s.snapshot("remove")
	return true
}

// ImageLoaded rebuilds every element showing url.
func (s *Store) ImageLoaded(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for _, top := range s.canvas.Objects() {
		top.Walk(func(o *scene.Object) bool {
			if o.Element == nil {
				return true
			}
			if c, ok := o.Element.(*element.Collage); ok && slices.Contains(c.ImageURLs(), url) {
				ids = append(ids, o.ID)
			}
			return false
		})
	}
	for _, id := range ids {
		if err := s.apply(id); err != nil {
			s.log.Warn("Unable to refresh element", zap.String("id", id), zap.Error(err))
		}
	}
	if len(ids) > 0 {
		s.log.Debug("Image applied", zap.String("url", url), zap.Int("elements", len(ids)))
		s.canvas.RequestRender()
	}
}

// Settle waits for started image loads, applies queued updates and
// releases images pinned by the rebuilt elements.
func (s *Store) Settle() error {
	if s.lookups.Images != nil {
		s.lookups.Images.Wait()
		defer s.lookups.Images.Release()
	}
	return s.Flush()
}
