package vehicle

import (
	"errors"
	"fmt"
)

// Tuning holds the constants of the slip-angle model. The zero value is not
// usable; start from DefaultTuning.
type Tuning struct {
	Drag               float32 `mapstructure:"drag"`
	RollingResistance  float32 `mapstructure:"rollingResistance"`
	CorneringFront     float32 `mapstructure:"corneringFront"`
	CorneringRear      float32 `mapstructure:"corneringRear"`
	MaxGrip            float32 `mapstructure:"maxGrip"`
	CGToFront          float32 `mapstructure:"cgToFront"` // b
	CGToRear           float32 `mapstructure:"cgToRear"`  // c
	Mass               float32 `mapstructure:"mass"`
	Inertia            float32 `mapstructure:"inertia"`
	WheelCircumference float32 `mapstructure:"wheelCircumference"`
	TractionGain       float32 `mapstructure:"tractionGain"`
	Gravity            float32 `mapstructure:"gravity"`
}

// DefaultTuning returns the stock car.
func DefaultTuning() Tuning {
	return Tuning{
		Drag:               5,
		RollingResistance:  30,
		CorneringFront:     -5,
		CorneringRear:      -5.2,
		MaxGrip:            2,
		CGToFront:          1,
		CGToRear:           1,
		Mass:               600,
		Inertia:            600,
		WheelCircumference: 1.4,
		TractionGain:       100,
		Gravity:            9.8,
	}
}

// Wheelbase is b·c, matching how the yaw term was calibrated.
func (t Tuning) Wheelbase() float32 {
	return t.CGToFront * t.CGToRear
}

// ErrInvalidTuning is returned by Validate.
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate rejects values that would divide by zero or make the model unstable.
func (t Tuning) Validate() error {
	switch {
	case t.Mass <= 0:
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidTuning, t.Mass)
	case t.Inertia <= 0:
		return fmt.Errorf("%w: inertia must be positive, got %v", ErrInvalidTuning, t.Inertia)
	case t.WheelCircumference <= 0:
		return fmt.Errorf("%w: wheelCircumference must be positive, got %v", ErrInvalidTuning, t.WheelCircumference)
	case t.MaxGrip < 0:
		return fmt.Errorf("%w: maxGrip must not be negative, got %v", ErrInvalidTuning, t.MaxGrip)
	case t.Drag < 0 || t.RollingResistance < 0:
		return fmt.Errorf("%w: resistance coefficients must not be negative", ErrInvalidTuning)
	}
	return nil
}
