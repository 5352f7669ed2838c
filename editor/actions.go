package editor

import (
	"fmt"
	"math"

	"plancanvas/identity"
	"plancanvas/scene"
)

// Select replaces active selection with top level objects by ids.
func (s *Store) Select(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	objs := make([]*scene.Object, 0, len(ids))
	for _, id := range ids {
		if o := s.canvas.FindByID(id); o != nil {
			objs = append(objs, o)
		}
	}
	s.canvas.SetActive(objs...)
}

// Selected returns ids of active objects.
func (s *Store) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.canvas.ActiveObjects()
	ids := make([]string, len(active))
	for i, o := range active {
		ids[i] = o.ID
	}
	return ids
}

// Group groups objects by ids or active selection.
func (s *Store) Group(ids ...string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.GroupSelected(ids...)
}

func (s *Store) Ungroup() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.UngroupSelected()
}

func (s *Store) Duplicate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.Duplicate()
}

func (s *Store) Copy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.Copy()
}

func (s *Store) Paste() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.Paste()
}

// Cut removes selection keeping it on clipboard, queued updates of cut
// elements are dropped.
func (s *Store) Cut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.canvas.ActiveObjects()
	if !s.actions.Cut() {
		return false
	}
	for _, o := range active {
		s.takePending(o.ID)
	}
	return true
}

// UpdateArrow changes options of arrow and refreshes its geometry.
func (s *Store) UpdateArrow(id string, fn func(o *scene.ArrowOptions)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, _ := s.find(id)
	if obj == nil {
		return fmt.Errorf("arrow %q: %w", id, ErrNotFound)
	}
	if !identity.IsArrow(obj) {
		return fmt.Errorf("object %q is not an arrow", id)
	}
	identity.RetagArrow(obj)
	opts := identity.ResolveArrowOptions(obj.Arrow)
	fn(&opts)
	obj.Arrow = &opts
	identity.RefreshArrowGroupGeometry(obj)
	s.snapshot("update")
	return nil
}

// Rotate sets object angle in degrees, object turns around its center.
func (s *Store) Rotate(id string, angle float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, _ := s.find(id)
	if obj == nil {
		return fmt.Errorf("rotate %q: %w", id, ErrNotFound)
	}
	obj.Angle = math.Mod(angle, 360)
	s.snapshot("rotate")
	return nil
}
