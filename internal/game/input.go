package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/vehicle"
)

// TriggerThreshold is how far a gamepad trigger must travel, in [0, 1], to
// count as pressed.
const TriggerThreshold = 0.05

// KeyState is the raw driver input of one frame.
type KeyState struct {
	Up, Down, Left, Right bool
	Handbrake             bool

	Gamepad      bool
	StickX       float32 // -1 left .. 1 right
	Throttle     float32 // 0 .. 1
	BrakeTrigger float32 // 0 .. 1
}

// Controls maps the raw input to car controls. The keyboard and a gamepad
// can be used together; any pressed control wins.
func (k KeyState) Controls() vehicle.Controls {
	c := vehicle.Controls{
		Gas:       k.Up,
		Brake:     k.Down,
		Handbrake: k.Handbrake,
	}
	switch {
	case k.Left && !k.Right:
		c.Steer = 1
	case k.Right && !k.Left:
		c.Steer = -1
	}

	if k.Gamepad {
		c.Gas = c.Gas || k.Throttle > TriggerThreshold
		c.Brake = c.Brake || k.BrakeTrigger > TriggerThreshold
		if c.Steer == 0 {
			c.Steer = -k.StickX
		}
	}
	return c
}

// Keyboard reads WASD, Space and the first gamepad.
type Keyboard struct{}

func (Keyboard) Controls() vehicle.Controls {
	return ReadKeys().Controls()
}

func ReadKeys() KeyState {
	k := KeyState{
		Up:        rl.IsKeyDown(rl.KeyW),
		Down:      rl.IsKeyDown(rl.KeyS),
		Left:      rl.IsKeyDown(rl.KeyA),
		Right:     rl.IsKeyDown(rl.KeyD),
		Handbrake: rl.IsKeyDown(rl.KeySpace),
	}
	if rl.IsGamepadAvailable(0) {
		k.Gamepad = true
		k.StickX = rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX)
		// Triggers rest at -1.
		k.Throttle = (rl.GetGamepadAxisMovement(0, rl.GamepadAxisRightTrigger) + 1) / 2
		k.BrakeTrigger = (rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftTrigger) + 1) / 2
	}
	return k
}
