package engine

import "fmt"

// Handle is a stable reference to a GameObject in a Scene. Handles stay valid
// while other objects come and go; once the object is removed its slot may
// be reused, but with a new generation, so stale handles resolve to nil.
//
// Example:
//
//	type Follower struct {
//	    engine.BaseComponent
//	    Target engine.Handle
//	}
//
//	func (f *Follower) Update(dt float32) {
//	    if target := f.Target.Get(f.GetGameObject().Scene); target != nil {
//	        // Follow the target...
//	    }
//	}
type Handle struct {
	Index      uint32
	Generation uint32 // 0 is never issued
}

// NilHandle refers to nothing.
var NilHandle Handle

// Get resolves the handle. Returns nil for NilHandle, a nil scene, or an
// object that has since been removed.
func (h Handle) Get(scene *Scene) *GameObject {
	if !h.IsValid() || scene == nil {
		return nil
	}
	return scene.Get(h)
}

// IsValid reports whether the handle was ever issued.
// Note: This doesn't check if the GameObject still exists in the scene.
func (h Handle) IsValid() bool {
	return h.Generation != 0
}

// Compare orders handles by slot, then generation.
func (h Handle) Compare(o Handle) int {
	switch {
	case h.Index < o.Index:
		return -1
	case h.Index > o.Index:
		return 1
	case h.Generation < o.Generation:
		return -1
	case h.Generation > o.Generation:
		return 1
	}
	return 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d#%d", h.Index, h.Generation)
}
