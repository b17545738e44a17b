package vehicle

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/physics"
)

const (
	// SteeringLock is the wheel angle at full steering input.
	SteeringLock = math.Pi / 16

	FullThrottle    = 100
	FullBrake       = 100
	ReverseThrottle = 20

	// ReverseBelowSpeed is the speed under which a held brake engages reverse.
	ReverseBelowSpeed = 0.3
)

// Controls is one frame of driver input. Steer is in [-1, 1], positive left.
type Controls struct {
	Gas       bool
	Brake     bool
	Handbrake bool
	Steer     float32
}

type BrakingState int

const (
	NotBraking BrakingState = iota
	Braking
	Reversing
)

func (b BrakingState) String() string {
	switch b {
	case Braking:
		return "braking"
	case Reversing:
		return "reversing"
	default:
		return "none"
	}
}

// Controller owns a car's state together with the parts of its motion the
// integrator does not model: vertical velocity, handbrake and gear selection.
type Controller struct {
	State      CarState
	YVelocity  float32
	Dimensions Dimensions

	handbrake bool
	braking   BrakingState
}

// NewController places a car at rest at spawn.
func NewController(spawn rl.Vector3, tuning *Tuning) *Controller {
	return &Controller{
		State:      NewCarState(spawn, tuning),
		Dimensions: DefaultDimensions(),
	}
}

// Apply maps input onto throttle, brake, steering and gear.
func (c *Controller) Apply(in Controls) {
	c.handbrake = in.Handbrake
	c.State.SteeringAngle = clamp(in.Steer, -1, 1) * SteeringLock

	if !in.Brake {
		if c.braking != NotBraking {
			// Leaving reverse hands the motion back to the forward model.
			if c.braking == Reversing {
				c.State.VelocityWC = rl.Vector3Negate(c.State.VelocityWC)
			}
			c.braking = NotBraking
			c.State.Brake = 0
			c.State.Reverse = false
		}
		c.State.Throttle = 0
		if in.Gas {
			c.State.Throttle = FullThrottle
		}
		return
	}

	switch c.braking {
	case NotBraking:
		c.braking = Braking
		fallthrough
	case Braking:
		if c.State.Speed() < ReverseBelowSpeed {
			c.braking = Reversing
		}
		c.State.Throttle = 0
		c.State.Brake = FullBrake
	case Reversing:
		c.State.Brake = 0
		c.State.Throttle = ReverseThrottle
		c.State.Reverse = true
	}
}

// BrakingState reports where the brake pedal state machine is.
func (c *Controller) BrakingState() BrakingState {
	return c.braking
}

// Slip returns the front and rear slip flags. The handbrake locks both axles.
func (c *Controller) Slip() (front, rear bool) {
	return c.handbrake, c.handbrake
}

// Fall applies gravity to the vertical motion.
func (c *Controller) Fall(dt float32) {
	c.YVelocity -= c.State.Tuning().Gravity * dt
	c.State.PositionWC.Y += c.YVelocity * dt
}

// Step advances the planar model by dt.
func (c *Controller) Step(dt float32) {
	front, rear := c.Slip()
	c.State.Advance(dt, front, rear)
}

// Peek returns the planar state one step ahead.
func (c *Controller) Peek(dt float32) CarState {
	front, rear := c.Slip()
	return c.State.Peek(dt, front, rear)
}

// Bounds returns the car's current oriented box.
func (c *Controller) Bounds() physics.OBB {
	return c.Dimensions.Bounds(&c.State)
}

// Reset puts the car back at rest at spawn, keeping its tuning.
func (c *Controller) Reset(spawn rl.Vector3) {
	tuning := c.State.tuning
	c.State = NewCarState(spawn, tuning)
	c.YVelocity = 0
	c.handbrake = false
	c.braking = NotBraking
}

// ApplyRemote overwrites the pose with values reported by another client.
// Remote cars are never integrated locally.
func (c *Controller) ApplyRemote(position rl.Vector3, angle, steering float32) {
	c.State.PositionWC = position
	c.State.Angle = angle
	c.State.SteeringAngle = steering
}
