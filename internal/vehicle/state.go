// Package vehicle implements the slip-angle car model and the controller that
// feeds it driver input.
package vehicle

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CarState is the physical state of one car. Angles are radians; yaw 0 faces
// +Z. The y components are owned by whoever resolves ground contact, the
// integrator only moves the car in the x/z plane.
type CarState struct {
	PositionWC         rl.Vector3
	VelocityWC         rl.Vector3
	Angle              float32
	AngularVelocity    float32
	SteeringAngle      float32
	Throttle           float32
	Brake              float32
	WheelRotationSpeed float32

	// Reverse flips the sign of the throttle so the engine drives backwards.
	Reverse bool

	tuning *Tuning
}

// NewCarState returns a car at rest at position. A nil tuning uses DefaultTuning.
func NewCarState(position rl.Vector3, tuning *Tuning) CarState {
	return CarState{PositionWC: position, tuning: tuning}
}

var defaultTuning = DefaultTuning()

// Tuning returns the constants in use.
func (s *CarState) Tuning() Tuning {
	if s.tuning == nil {
		return defaultTuning
	}
	return *s.tuning
}

// SetTuning replaces the constants; nil restores the defaults.
func (s *CarState) SetTuning(t *Tuning) {
	s.tuning = t
}

// Advance integrates one step of length dt. A set slip flag halves the
// lateral grip of that axle; rearSlip also halves traction.
func (s *CarState) Advance(dt float32, frontSlip, rearSlip bool) {
	k := s.Tuning()

	sinA, cosA := sincos(s.Angle)

	// Car frame: x forward, z lateral.
	vx := cosA*s.VelocityWC.Z + sinA*s.VelocityWC.X
	vz := -sinA*s.VelocityWC.Z + cosA*s.VelocityWC.X

	yawSpeed := k.Wheelbase() * 0.5 * s.AngularVelocity

	var rotAngle, sideslip float32
	if vx != 0 {
		rotAngle = atan2(yawSpeed, vx)
		sideslip = atan2(vz, vx)
	}

	slipFront := sideslip + rotAngle - s.SteeringAngle
	slipRear := sideslip - rotAngle

	weight := k.Mass * k.Gravity * 0.5

	frontLateral := clamp(k.CorneringFront*slipFront, -k.MaxGrip, k.MaxGrip) * weight
	if frontSlip {
		frontLateral *= 0.5
	}
	rearLateral := clamp(k.CorneringRear*slipRear, -k.MaxGrip, k.MaxGrip) * weight
	if rearSlip {
		rearLateral *= 0.5
	}

	throttle := s.Throttle
	if s.Reverse {
		throttle = -throttle
	}
	traction := k.TractionGain * (throttle - s.Brake*signum(vx))
	s.WheelRotationSpeed = traction * dt / k.WheelCircumference * 2 * math.Pi
	if rearSlip {
		traction *= 0.5
	}

	resistX := -(k.RollingResistance*vx + k.Drag*vx*absf(vx))
	resistZ := -(k.RollingResistance*vz + k.Drag*vz*absf(vz))

	// The front lateral force is purely lateral, so steering only scales it.
	_, cosS := sincos(s.SteeringAngle)
	forceX := traction + resistX
	forceZ := cosS*frontLateral + rearLateral + resistZ

	torque := k.CGToFront*frontLateral - k.CGToRear*rearLateral

	ax := forceX / k.Mass
	az := forceZ / k.Mass
	angularAccel := torque / k.Inertia

	awx := cosA*az + sinA*ax
	awz := -sinA*az + cosA*ax

	s.VelocityWC.X += dt * awx
	s.VelocityWC.Z += dt * awz
	s.PositionWC.X += dt * s.VelocityWC.X
	s.PositionWC.Z += dt * s.VelocityWC.Z

	s.AngularVelocity += dt * angularAccel
	s.Angle += dt * s.AngularVelocity
}

// Peek returns the state one step ahead without touching the receiver.
func (s CarState) Peek(dt float32, frontSlip, rearSlip bool) CarState {
	s.Advance(dt, frontSlip, rearSlip)
	return s
}

// Speed is the horizontal speed in m/s.
func (s *CarState) Speed() float32 {
	return float32(math.Hypot(float64(s.VelocityWC.X), float64(s.VelocityWC.Z)))
}

// Forward is the unit heading in the x/z plane.
func (s *CarState) Forward() rl.Vector3 {
	sinA, cosA := sincos(s.Angle)
	return rl.Vector3{X: sinA, Z: cosA}
}

// LongitudinalSpeed is the signed speed along the heading.
func (s *CarState) LongitudinalSpeed() float32 {
	return rl.Vector3DotProduct(s.VelocityWC, s.Forward())
}

// signum is 1 for +0 and -1 for -0, so a car at exact rest brakes against a
// positive direction.
func signum(f float32) float32 {
	if math.IsNaN(float64(f)) {
		return f
	}
	if math.Signbit(float64(f)) {
		return -1
	}
	return 1
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

func atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
