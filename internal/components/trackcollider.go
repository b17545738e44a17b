package components

import (
	"racer/internal/engine"
	"racer/internal/physics"
	"racer/internal/track"
)

// TrackCollider exposes one built track segment to the scene. The collider
// is generated once by track.New and never changes.
type TrackCollider struct {
	engine.BaseComponent
	Segment  track.Segment
	collider physics.Composite
}

// NewTrackCollider wraps segment i of t.
func NewTrackCollider(t *track.Track, i int) *TrackCollider {
	return &TrackCollider{
		Segment:  t.Segments()[i],
		collider: t.SegmentCollider(i),
	}
}

func (c *TrackCollider) Collider() physics.Collider {
	return c.collider
}
