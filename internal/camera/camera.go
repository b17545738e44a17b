// Package camera places the view relative to the player's car, or flies a
// detached debug camera around the circuit.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type View int

const (
	ThirdPerson View = iota
	FirstPerson
)

func (v View) String() string {
	if v == FirstPerson {
		return "first person"
	}
	return "third person"
}

// Offsets from the car's PositionWC, along its heading and up.
const (
	ThirdPersonBack = 20.0
	ThirdPersonUp   = 6.0
	FirstPersonBack = 1.8
	FirstPersonUp   = 1.2

	// LookDistance is how far ahead of the eye the target sits.
	LookDistance = 0.9
)

// Chase follows a car from behind or from the driver's seat. The view keeps
// level with the eye; it never pitches with the track.
type Chase struct {
	View View
	Fovy float32
}

func NewChase() *Chase {
	return &Chase{View: ThirdPerson, Fovy: 45}
}

// Toggle switches between third and first person.
func (c *Chase) Toggle() {
	if c.View == ThirdPerson {
		c.View = FirstPerson
	} else {
		c.View = ThirdPerson
	}
}

// Eye returns the camera position for a car at position facing angle.
func (c *Chase) Eye(position rl.Vector3, angle float32) rl.Vector3 {
	back, up := float32(ThirdPersonBack), float32(ThirdPersonUp)
	if c.View == FirstPerson {
		back, up = FirstPersonBack, FirstPersonUp
	}
	sin, cos := sincos(angle)
	return rl.Vector3Add(position, rl.Vector3{X: -sin * back, Y: up, Z: -cos * back})
}

func (c *Chase) Camera(position rl.Vector3, angle float32) rl.Camera3D {
	eye := c.Eye(position, angle)
	sin, cos := sincos(angle)
	target := rl.Vector3Add(eye, rl.Vector3{X: sin * LookDistance, Z: cos * LookDistance})

	return rl.Camera3D{
		Position:   eye,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// FreeControls is one frame of free camera input. Look is in degrees.
type FreeControls struct {
	Forward  bool
	Backward bool
	Look     rl.Vector2
}

// Free is a detached fly camera for inspecting the track colliders.
type Free struct {
	Position  rl.Vector3
	Yaw       float32 // degrees
	Pitch     float32 // degrees
	MoveSpeed float32
	LookSpeed float32
}

func NewFree(pos rl.Vector3) *Free {
	return &Free{
		Position:  pos,
		Yaw:       90,
		Pitch:     -30,
		MoveSpeed: 10, // units per second
		LookSpeed: 0.1,
	}
}

func (f *Free) Update(in FreeControls, deltaTime float32) {
	f.Yaw += in.Look.X * f.LookSpeed
	f.Pitch -= in.Look.Y * f.LookSpeed

	// Clamp pitch
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}

	dir := f.Direction()
	if in.Forward {
		f.Position = rl.Vector3Add(f.Position, rl.Vector3Scale(dir, f.MoveSpeed*deltaTime))
	}
	if in.Backward {
		f.Position = rl.Vector3Subtract(f.Position, rl.Vector3Scale(dir, f.MoveSpeed*deltaTime))
	}
}

// Direction is the unit look vector.
func (f *Free) Direction() rl.Vector3 {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (f *Free) Camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   f.Position,
		Target:     rl.Vector3Add(f.Position, f.Direction()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
