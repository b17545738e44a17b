package components

import (
	"github.com/rs/zerolog"

	"racer/internal/collision"
	"racer/internal/track"
	"racer/internal/vehicle"
)

// PlayerCar drives the local car. Each tick it reads input, checks the lap
// gates against the predicted position, applies gravity, resolves
// collisions against the scene snapshot and then integrates.
type PlayerCar struct {
	BaseCar
	PlayerID int
	Input    Input
	Resolver *collision.Resolver
	Laps     *track.LapCounter
	Sink     StatusSink

	log zerolog.Logger
}

func NewPlayerCar(playerID int, tuning *vehicle.Tuning, log zerolog.Logger) *PlayerCar {
	return &PlayerCar{
		BaseCar:  BaseCar{Car: vehicle.NewController(track.SpawnPosition(playerID), tuning)},
		PlayerID: playerID,
		Resolver: collision.NewResolver(nil, log),
		Laps:     track.NewLapCounter(),
		log:      log.With().Int("player", playerID).Logger(),
	}
}

func (p *PlayerCar) Start() {
	p.Laps.OnLap.AddListener(func(lap track.Lap) {
		p.log.Info().Int("lap", lap.Number).Float32("time", lap.Time).Msg("Lap complete")
	})
	p.sync()
}

func (p *PlayerCar) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil {
		return
	}

	if p.Input != nil {
		p.Car.Apply(p.Input.Controls())
	}

	next := p.Car.Peek(deltaTime)
	p.Laps.Observe(p.Car.State.PositionWC, next.PositionWC, deltaTime)

	p.Car.Fall(deltaTime)
	if g.Scene != nil {
		self := g.Handle()
		p.Resolver.CheckAll(p.Car, self, g.Scene.Snapshot(self), deltaTime)
	}
	p.Car.Step(deltaTime)

	if p.Sink != nil {
		p.Sink.Publish(p.Status())
	}
	p.sync()
}

// Status is the pose reported to other players.
func (p *PlayerCar) Status() Status {
	s := &p.Car.State
	return Status{
		PlayerID: p.PlayerID,
		Position: s.PositionWC,
		Angle:    s.Angle,
		Steering: s.SteeringAngle,
	}
}

// Respawn puts the car back on its grid slot. Lap progress is kept.
func (p *PlayerCar) Respawn() {
	p.Car.Reset(track.SpawnPosition(p.PlayerID))
	p.log.Debug().Msg("Respawned")
	p.sync()
}
