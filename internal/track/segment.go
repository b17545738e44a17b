// Package track describes the circuit and turns its segments into collider
// geometry.
package track

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/physics"
)

const (
	// Elevation is the height of the road deck above the ground.
	Elevation = 30
	// Width is the drivable width between the rails of a curved segment.
	Width = 20
	// BoxHeight is the thickness of the platform drawn under the deck.
	BoxHeight = 5

	// RailOffset is the distance of each straight rail from the centre line.
	RailOffset = 11.5
	// SliceLength is the length of one straight rail slice.
	SliceLength = 4

	// CurveSamples is the number of points sampled along each rail.
	CurveSamples = 70
	// CurveScale maps curve space to metres.
	CurveScale = 200

	// railHeight lifts the rails half a metre above the deck.
	railHeight = 0.5
)

// Kind is a segment type. The set is closed.
type Kind int

const (
	Straight Kind = iota
	RightCorner
	UTurn
)

func (k Kind) String() string {
	switch k {
	case Straight:
		return "straight"
	case RightCorner:
		return "right-corner"
	case UTurn:
		return "u-turn"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Heading is the direction a straight segment runs in.
type Heading int

const (
	North Heading = iota // along +Z
	West                 // along +X
)

// Yaw returns the heading as a rotation about +Y in radians.
func (h Heading) Yaw() float32 {
	if h == West {
		return math.Pi / 2
	}
	return 0
}

// rightCornerYaw is the fixed orientation every right corner is built with.
const rightCornerYaw = 3 * math.Pi / 2

// Segment is one piece of the circuit. Position is at ground level; the deck
// sits Elevation above it.
type Segment struct {
	Kind     Kind
	Position rl.Vector3
	Yaw      float32 // radians
	Length   float32 // straights only
}

// NewStraight returns a straight of the given length centred on position.
func NewStraight(position rl.Vector3, heading Heading, length float32) Segment {
	return Segment{Kind: Straight, Position: position, Yaw: heading.Yaw(), Length: length}
}

// NewRightCorner returns a 90° right-hand corner.
func NewRightCorner(position rl.Vector3) Segment {
	return Segment{Kind: RightCorner, Position: position, Yaw: rightCornerYaw}
}

// NewUTurn returns a 180° hairpin rotated by yawDegrees.
func NewUTurn(position rl.Vector3, yawDegrees float32) Segment {
	return Segment{Kind: UTurn, Position: position, Yaw: yawDegrees * rl.Deg2rad}
}

// Transform places segment-local geometry in the world, at rail height.
func (s Segment) Transform() physics.Transform {
	pos := s.Position
	pos.Y += Elevation + railHeight
	return physics.Transform{Position: pos, Yaw: s.Yaw}
}

func (s Segment) String() string {
	return fmt.Sprintf("%s@(%.1f, %.1f)", s.Kind, s.Position.X, s.Position.Z)
}
