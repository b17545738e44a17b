package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform places local geometry in the world: uniform scale, then yaw about
// +Y, then translation. It is always passed by value; nothing in this module
// keeps a shared current transform.
type Transform struct {
	Position rl.Vector3
	Yaw      float32 // radians
	Scale    float32 // 0 means 1
}

// YawMatrix rotates about +Y so that local +Z maps to (sin yaw, 0, cos yaw),
// the car's heading convention. rl.MatrixRotateY turns the opposite way.
func YawMatrix(yaw float32) rl.Matrix {
	s, c := math.Sincos(float64(yaw))
	m := rl.MatrixIdentity()
	m.M0, m.M8 = float32(c), float32(s)
	m.M2, m.M10 = float32(-s), float32(c)
	return m
}

// Matrix returns the raylib matrix for the transform.
func (t Transform) Matrix() rl.Matrix {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	m := rl.MatrixMultiply(rl.MatrixScale(s, s, s), YawMatrix(t.Yaw))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z))
}

// Apply transforms a single point.
func (t Transform) Apply(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(p, t.Matrix())
}
