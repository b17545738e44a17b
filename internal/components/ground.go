package components

import (
	"racer/internal/engine"
	"racer/internal/physics"
)

// Ground is the desert floor under the track.
type Ground struct {
	engine.BaseComponent
	Height float32
}

func (g *Ground) Collider() physics.Collider {
	return physics.HeightPlane{Y: g.Height}
}
