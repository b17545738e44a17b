package components

import "racer/internal/vehicle"

// Input supplies one frame of driver controls.
type Input interface {
	Controls() vehicle.Controls
}

// InputFunc adapts a plain function to Input.
type InputFunc func() vehicle.Controls

func (f InputFunc) Controls() vehicle.Controls { return f() }

// FixedInput always returns the same controls.
type FixedInput vehicle.Controls

func (f FixedInput) Controls() vehicle.Controls { return vehicle.Controls(f) }
