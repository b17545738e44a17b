package vehicle

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/physics"
)

// Dimensions describe the car's collision box relative to PositionWC, which
// sits GroundOffset above the bottom of the box.
type Dimensions struct {
	Width        float32
	Length       float32
	Height       float32
	GroundOffset float32
}

// DefaultDimensions matches the stock car model.
func DefaultDimensions() Dimensions {
	return Dimensions{Width: 1.5, Length: 3.0, Height: 1.2, GroundOffset: 1.5}
}

// Bounds returns the oriented collision box for s.
func (d Dimensions) Bounds(s *CarState) physics.OBB {
	center := s.PositionWC
	center.Y += d.Height/2 - d.GroundOffset
	return physics.NewOBB(center, rl.Vector3{X: d.Width, Y: d.Height, Z: d.Length}, s.Angle)
}

// AABB returns the world-aligned box around Bounds.
func (d Dimensions) AABB(s *CarState) physics.AABB {
	return d.Bounds(s).AABB()
}
