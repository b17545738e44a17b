package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Horizontal projects a world point onto the x/z plane as (x, z).
func Horizontal(v rl.Vector3) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Z}
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite(v rl.Vector3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
