package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ParallelTolerance bounds |n·c| relative to |n||c| below which motion is
// treated as parallel to a wall and no crossing time is computed.
const ParallelTolerance = 1e-6

// Direction returns P1 - P0 in the horizontal plane (x, z).
func (w WallSegment) Direction() rl.Vector2 {
	return rl.Vector2Subtract(Horizontal(w.P1), Horizontal(w.P0))
}

// Normal returns the unnormalised perpendicular (-d.z, d.x) of the direction.
func (w WallSegment) Normal() rl.Vector2 {
	d := w.Direction()
	return rl.Vector2{X: -d.Y, Y: d.X}
}

// IsParallel reports whether horizontal motion c runs along the wall line.
func (w WallSegment) IsParallel(c rl.Vector2) bool {
	n := w.Normal()
	den := rl.Vector2DotProduct(n, c)
	return absf(den) <= ParallelTolerance*rl.Vector2Length(n)*rl.Vector2Length(c)
}

// Sweep returns the time at which a point at from, moving with horizontal
// velocity c, crosses the wall. It reports false when the motion is parallel,
// the crossing is outside (0, dt], or the crossing lies beyond the endpoints.
func (w WallSegment) Sweep(from, c rl.Vector2, dt float32) (float32, bool) {
	if w.IsParallel(c) {
		return 0, false
	}

	p0 := Horizontal(w.P0)
	n := w.Normal()
	t := rl.Vector2DotProduct(n, rl.Vector2Subtract(p0, from)) / rl.Vector2DotProduct(n, c)
	if !(t > 0 && t <= dt) {
		return 0, false
	}

	hit := rl.Vector2Add(from, rl.Vector2Scale(c, t))
	d := w.Direction()
	s := rl.Vector2DotProduct(rl.Vector2Subtract(hit, p0), d) / rl.Vector2DotProduct(d, d)
	if s < 0 || s > 1 {
		return 0, false
	}
	return t, true
}

// Reflect mirrors c about the wall line: c - 2(c·n)/(n·n)·n.
func (w WallSegment) Reflect(c rl.Vector2) rl.Vector2 {
	n := w.Normal()
	k := 2 * rl.Vector2DotProduct(c, n) / rl.Vector2DotProduct(n, n)
	return rl.Vector2Subtract(c, rl.Vector2Scale(n, k))
}
