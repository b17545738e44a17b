package components

import (
	"racer/internal/physics"
	"racer/internal/track"
	"racer/internal/vehicle"
)

// RemoteCar mirrors another player's car. Its pose comes straight from the
// network and is never integrated; the car only acts as a box other cars
// bump into. The object removes itself once the player disconnects.
type RemoteCar struct {
	BaseCar
	PlayerID int
	Source   StatusSource

	seen bool
}

func NewRemoteCar(playerID int, source StatusSource) *RemoteCar {
	return &RemoteCar{
		BaseCar:  BaseCar{Car: vehicle.NewController(track.SpawnPosition(playerID), nil)},
		PlayerID: playerID,
		Source:   source,
	}
}

// Visible reports whether a status has been received yet.
func (r *RemoteCar) Visible() bool { return r.seen }

// Collider is empty until the first status arrives.
func (r *RemoteCar) Collider() physics.Collider {
	if !r.seen {
		return physics.None{}
	}
	return r.BaseCar.Collider()
}

func (r *RemoteCar) Start() {
	r.sync()
}

func (r *RemoteCar) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || r.Source == nil {
		return
	}

	s, ok := r.Source.Latest(r.PlayerID)
	if !ok {
		if r.seen && g.Scene != nil {
			g.Scene.RemoveGameObject(g)
		}
		return
	}
	r.seen = true
	r.Car.ApplyRemote(s.Position, s.Angle, s.Steering)
	r.sync()
}
