package engine

import "racer/internal/physics"

// ColliderSnapshot is one entity's collider as it was at the start of a tick.
type ColliderSnapshot struct {
	Handle   Handle
	Name     string
	Collider physics.Collider
}

type slot struct {
	obj        *GameObject
	generation uint32
}

// Scene owns its GameObjects in an arena addressed by Handle. Iteration is
// always in handle order so every run visits objects identically.
type Scene struct {
	Name string

	slots    []slot
	free     []uint32
	live     int
	snapshot []ColliderSnapshot
	updating bool
	doomed   []Handle
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		slots: make([]slot, 0),
	}
}

// AddGameObject stores g and returns its handle. Freed slots are reused
// lowest index first.
func (s *Scene) AddGameObject(g *GameObject) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		best := 0
		for i, f := range s.free {
			if f < s.free[best] {
				best = i
			}
		}
		idx = s.free[best]
		s.free[best] = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[idx]
	sl.generation++
	sl.obj = g

	h := Handle{Index: idx, Generation: sl.generation}
	g.handle = h
	g.Scene = s
	s.live++
	return h
}

// Get returns the object for h, or nil if it is stale.
func (s *Scene) Get(h Handle) *GameObject {
	if int(h.Index) >= len(s.slots) {
		return nil
	}
	sl := s.slots[h.Index]
	if sl.generation != h.Generation {
		return nil
	}
	return sl.obj
}

// Remove deletes the object behind h. During Update the removal is deferred
// until every object has been updated. Reports false for stale handles.
func (s *Scene) Remove(h Handle) bool {
	if s.Get(h) == nil {
		return false
	}
	if s.updating {
		s.doomed = append(s.doomed, h)
		return true
	}
	s.remove(h)
	return true
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	if g == nil || g.Scene != s {
		return
	}
	s.Remove(g.handle)
}

func (s *Scene) remove(h Handle) {
	sl := &s.slots[h.Index]
	if sl.obj == nil || sl.generation != h.Generation {
		return
	}
	sl.obj.Scene = nil
	sl.obj.handle = NilHandle
	sl.obj = nil
	s.free = append(s.free, h.Index)
	s.live--
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return s.live
}

// GameObjects returns the live objects in handle order.
func (s *Scene) GameObjects() []*GameObject {
	out := make([]*GameObject, 0, s.live)
	for _, sl := range s.slots {
		if sl.obj != nil {
			out = append(out, sl.obj)
		}
	}
	return out
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, sl := range s.slots {
		if sl.obj != nil && sl.obj.Name == name {
			return sl.obj
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, sl := range s.slots {
		if sl.obj != nil && sl.obj.HasTag(tag) {
			result = append(result, sl.obj)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects() {
		g.Start()
	}
}

// Update snapshots colliders, then updates every object. Objects added
// during the tick are started and updated from the next tick on.
func (s *Scene) Update(deltaTime float32) {
	s.snapshot = s.collect()

	s.updating = true
	for _, g := range s.GameObjects() {
		if g.Scene != s {
			continue
		}
		g.Start()
		g.Update(deltaTime)
	}
	s.updating = false

	for _, h := range s.doomed {
		s.remove(h)
	}
	s.doomed = s.doomed[:0]
}

// Snapshot returns the colliders captured at the start of the current tick,
// without the entry for exclude. Outside Update it captures a fresh set.
func (s *Scene) Snapshot(exclude Handle) []ColliderSnapshot {
	src := s.snapshot
	if !s.updating {
		src = s.collect()
	}
	out := make([]ColliderSnapshot, 0, len(src))
	for _, c := range src {
		if c.Handle != exclude {
			out = append(out, c)
		}
	}
	return out
}

func (s *Scene) collect() []ColliderSnapshot {
	var out []ColliderSnapshot
	for _, sl := range s.slots {
		g := sl.obj
		if g == nil || !g.Active || !g.IsCollidable() {
			continue
		}
		out = append(out, ColliderSnapshot{Handle: g.handle, Name: g.Name, Collider: g.Collider()})
	}
	return out
}
