package track

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/physics"
)

// Curve-space rails. The inner rail of each corner runs Width/CurveScale
// inside the outer one.
var (
	rightCornerOuter = physics.QuadraticCurve{
		P0: rl.Vector3{X: -0.5},
		P1: rl.Vector3{},
		P2: rl.Vector3{Z: -0.5},
	}
	rightCornerInner = physics.QuadraticCurve{
		P0: rl.Vector3{X: -0.5, Z: -0.1},
		P1: rl.Vector3{X: -0.1, Z: -0.1},
		P2: rl.Vector3{X: -0.1, Z: -0.5},
	}

	uTurnOuter = physics.QuadraticCurve{
		P0: rl.Vector3{X: -0.25},
		P1: rl.Vector3{Z: 0.5},
		P2: rl.Vector3{X: 0.25},
	}
	uTurnInner = physics.CubicCurve{
		P0: rl.Vector3{X: -0.15},
		P1: rl.Vector3{X: -0.15, Z: 0.2},
		P2: rl.Vector3{X: 0.15, Z: 0.2},
		P3: rl.Vector3{X: 0.15},
	}
)

// Rails returns the outer and inner rail of a curved segment in curve space.
// Straights have no rail curves.
func Rails(k Kind) (outer, inner physics.Curve, ok bool) {
	switch k {
	case RightCorner:
		return rightCornerOuter, rightCornerInner, true
	case UTurn:
		return uTurnOuter, uTurnInner, true
	}
	return nil, nil, false
}

// Build returns the collider of one segment: its deck followed by the
// walls along both rails, baked into world space.
func Build(seg Segment) physics.Composite {
	parts := []physics.Collider{physics.HeightPlane{Y: seg.Position.Y + Elevation}}

	tr := seg.Transform()
	switch seg.Kind {
	case Straight:
		parts = append(parts, straightWalls(seg.Length, tr)...)
	case RightCorner, UTurn:
		outer, inner, _ := Rails(seg.Kind)
		curved := tr
		curved.Scale = CurveScale
		parts = append(parts, railWalls(outer, curved)...)
		parts = append(parts, railWalls(inner, curved)...)
	}
	return physics.NewComposite(parts...)
}

// straightWalls lays SliceLength slices down both sides of a straight,
// starting half a slice before the segment's near end.
func straightWalls(length float32, tr physics.Transform) []physics.Collider {
	n := int(length / SliceLength)
	walls := make([]physics.Collider, 0, 2*n)
	for _, x := range [2]float32{RailOffset, -RailOffset} {
		for i := range n {
			z := -length/2 + SliceLength*float32(i)
			walls = append(walls, physics.WallSegment{
				P0: tr.Apply(rl.Vector3{X: x, Z: z - SliceLength/2}),
				P1: tr.Apply(rl.Vector3{X: x, Z: z + SliceLength/2}),
			})
		}
	}
	return walls
}

// railWalls samples c and emits one wall per chord. Each wall is centred on
// the chord midpoint, points along the curve's tangent at the middle
// parameter and is as long as the chord.
func railWalls(c physics.Curve, tr physics.Transform) []physics.Collider {
	points := physics.Sample(c, CurveSamples)
	walls := make([]physics.Collider, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		p1, p2 := points[i], points[i+1]
		mid := rl.Vector3Lerp(p1, p2, 0.5)
		half := rl.Vector3Distance(p1, p2) / 2

		tmid := (float32(i) + 0.5) / float32(CurveSamples-1)
		tan := c.Tangent(tmid)
		yaw := float32(math.Atan2(float64(tan.X), float64(tan.Z)))

		local := physics.Transform{Position: mid, Yaw: yaw}
		walls = append(walls, physics.WallSegment{
			P0: tr.Apply(local.Apply(rl.Vector3{Z: -half})),
			P1: tr.Apply(local.Apply(rl.Vector3{Z: half})),
		})
	}
	return walls
}
