package components

import (
	"racer/internal/engine"
	"racer/internal/physics"
	"racer/internal/vehicle"
)

// BaseCar holds the vehicle shared by local and remote cars and keeps the
// owning object's transform in step with it.
type BaseCar struct {
	engine.BaseComponent
	Car *vehicle.Controller
}

// Collider implements engine.Collidable with the car's current bounding box.
func (b *BaseCar) Collider() physics.Collider {
	a := b.Car.Dimensions.AABB(&b.Car.State)
	return physics.Box{Min: a.Min, Max: a.Max}
}

func (b *BaseCar) sync() {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = b.Car.State.PositionWC
	g.Transform.Yaw = b.Car.State.Angle
}
