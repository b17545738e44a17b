package track

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/physics"
)

// DefaultLayout returns the standard circuit: a long start straight, a right
// corner, a back straight into an S of three hairpins, then home.
func DefaultLayout() []Segment {
	return []Segment{
		NewStraight(rl.Vector3{X: 0, Z: 66}, North, 240),
		NewRightCorner(rl.Vector3{X: -10, Z: 285}),
		NewStraight(rl.Vector3{X: 186, Z: 275}, West, 200),

		NewUTurn(rl.Vector3{X: 286, Z: 235}, 90),
		NewUTurn(rl.Vector3{X: 292.3, Z: 159}, 270),
		NewUTurn(rl.Vector3{X: 292, Z: 79}, 90),

		NewStraight(rl.Vector3{X: 226, Z: 40}, West, 140),
		NewRightCorner(rl.Vector3{X: 67, Z: 50}),
		NewUTurn(rl.Vector3{X: 37, Z: -49}, 180),
	}
}

// Track is a built circuit. Segment colliders are generated once in New and
// shared by every query afterwards.
type Track struct {
	segments  []Segment
	colliders []physics.Composite
	walls     []physics.WallSegment
}

// New builds the colliders for segments.
func New(segments []Segment) *Track {
	t := &Track{
		segments:  append([]Segment(nil), segments...),
		colliders: make([]physics.Composite, len(segments)),
	}
	for i, seg := range t.segments {
		t.colliders[i] = Build(seg)
		for _, p := range physics.Flatten(t.colliders[i]) {
			if w, ok := p.(physics.WallSegment); ok {
				t.walls = append(t.walls, w)
			}
		}
	}
	return t
}

// Segments returns the segments in circuit order.
func (t *Track) Segments() []Segment {
	return t.segments
}

// SegmentCollider returns the cached collider of segment i.
func (t *Track) SegmentCollider(i int) physics.Composite {
	return t.colliders[i]
}

// Walls returns every rail wall, for drawing.
func (t *Track) Walls() []physics.WallSegment {
	return t.walls
}
