package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Curve is a parametric curve on t in [0, 1].
type Curve interface {
	At(t float32) rl.Vector3
	Tangent(t float32) rl.Vector3
}

// Quadratic evaluates B(t) = (1-t)²p0 + 2(1-t)t·p1 + t²p2.
func Quadratic(p0, p1, p2 rl.Vector3, t float32) rl.Vector3 {
	u := 1 - t
	a, b, c := u*u, 2*u*t, t*t
	return rl.Vector3{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
		Z: a*p0.Z + b*p1.Z + c*p2.Z,
	}
}

// QuadraticDerivative returns dB/dt of the quadratic curve.
func QuadraticDerivative(p0, p1, p2 rl.Vector3, t float32) rl.Vector3 {
	u := 1 - t
	return rl.Vector3Add(
		rl.Vector3Scale(rl.Vector3Subtract(p1, p0), 2*u),
		rl.Vector3Scale(rl.Vector3Subtract(p2, p1), 2*t),
	)
}

// Cubic evaluates B(t) = (1-t)³p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³p3.
func Cubic(p0, p1, p2, p3 rl.Vector3, t float32) rl.Vector3 {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return rl.Vector3{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		Z: a*p0.Z + b*p1.Z + c*p2.Z + d*p3.Z,
	}
}

// CubicDerivative returns dB/dt of the cubic curve.
func CubicDerivative(p0, p1, p2, p3 rl.Vector3, t float32) rl.Vector3 {
	u := 1 - t
	d := rl.Vector3Scale(rl.Vector3Subtract(p1, p0), 3*u*u)
	d = rl.Vector3Add(d, rl.Vector3Scale(rl.Vector3Subtract(p2, p1), 6*u*t))
	return rl.Vector3Add(d, rl.Vector3Scale(rl.Vector3Subtract(p3, p2), 3*t*t))
}

// QuadraticCurve is a quadratic bezier with fixed control points.
type QuadraticCurve struct {
	P0, P1, P2 rl.Vector3
}

func (q QuadraticCurve) At(t float32) rl.Vector3 { return Quadratic(q.P0, q.P1, q.P2, t) }

func (q QuadraticCurve) Tangent(t float32) rl.Vector3 {
	return QuadraticDerivative(q.P0, q.P1, q.P2, t)
}

// CubicCurve is a cubic bezier with fixed control points.
type CubicCurve struct {
	P0, P1, P2, P3 rl.Vector3
}

func (c CubicCurve) At(t float32) rl.Vector3 { return Cubic(c.P0, c.P1, c.P2, c.P3, t) }

func (c CubicCurve) Tangent(t float32) rl.Vector3 {
	return CubicDerivative(c.P0, c.P1, c.P2, c.P3, t)
}

// Sample evaluates the curve at n evenly spaced parameters from 0 to 1 inclusive.
func Sample(c Curve, n int) []rl.Vector3 {
	if n < 2 {
		return nil
	}
	points := make([]rl.Vector3, n)
	for i := range points {
		points[i] = c.At(float32(i) / float32(n-1))
	}
	return points
}
