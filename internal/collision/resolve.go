// Package collision pushes a car out of, or bounces it off, the colliders of
// the other entities in the scene.
package collision

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"racer/internal/engine"
	"racer/internal/physics"
	"racer/internal/vehicle"
)

// Clearances used when snapping a car out of geometry. They are tuned for
// the stock car and have no derivation beyond feel.
const (
	// GroundClearance is the height of PositionWC above a height plane.
	GroundClearance = 1.5
	// BoxSideMargin is the distance kept from a box's x and z faces.
	BoxSideMargin = 2.5
	// BoxTopClearance is the height kept above a box's top face.
	BoxTopClearance = 1.5
	// BoxUndersideMargin is the distance kept below a box's bottom face.
	BoxUndersideMargin = 5.0
)

// Stats counts what happened since the last ResetStats.
type Stats struct {
	Ground   int
	Box      int
	Wall     int
	Parallel int
}

// Resolver applies collision response to one car at a time.
type Resolver struct {
	Stats Stats

	metrics *Metrics
	log     zerolog.Logger
}

// NewResolver returns a resolver. metrics may be nil.
func NewResolver(metrics *Metrics, log zerolog.Logger) *Resolver {
	return &Resolver{metrics: metrics, log: log}
}

// ResetStats zeroes the counters in Stats.
func (r *Resolver) ResetStats() {
	r.Stats = Stats{}
}

// CheckAll resolves car against every snapshot in order, skipping the entry
// whose handle is self.
func (r *Resolver) CheckAll(car *vehicle.Controller, self engine.Handle, others []engine.ColliderSnapshot, dt float32) {
	for _, other := range others {
		if other.Handle == self {
			continue
		}
		r.resolve(car, other.Collider, dt, other.Name)
	}
}

// Resolve applies the response for a single collider.
func (r *Resolver) Resolve(car *vehicle.Controller, c physics.Collider, dt float32) {
	r.resolve(car, c, dt, "")
}

func (r *Resolver) resolve(car *vehicle.Controller, c physics.Collider, dt float32, entity string) {
	switch c := c.(type) {
	case nil, physics.None:
	case physics.HeightPlane:
		r.heightPlane(car, c, entity)
	case physics.Box:
		r.box(car, c, entity)
	case physics.WallSegment:
		r.wall(car, c, dt, entity)
	case physics.Composite:
		for i := 0; i < c.Len(); i++ {
			r.resolve(car, c.At(i), dt, entity)
		}
	default:
		panic(fmt.Sprintf("collision: unknown collider %T", c))
	}
}

func (r *Resolver) heightPlane(car *vehicle.Controller, p physics.HeightPlane, entity string) {
	if car.Bounds().AABB().Min.Y > p.Y {
		return
	}
	car.State.PositionWC.Y = p.Y + GroundClearance
	car.YVelocity = 0

	r.Stats.Ground++
	r.metrics.Ground(entity)
}

// box snaps each axis to the nearest face independently. All three axes move
// whenever the boxes overlap, so a car resting on a box is also pushed to a
// side. The next tick sorts out whatever that leaves behind.
func (r *Resolver) box(car *vehicle.Controller, b physics.Box, entity string) {
	if !car.Bounds().AABB().Intersects(b.AABB()) {
		return
	}
	pos := &car.State.PositionWC

	pos.X = snap(pos.X, b.Min.X, b.Max.X, BoxSideMargin)

	if nearerMax(pos.Y, b.Min.Y, b.Max.Y) {
		pos.Y = b.Max.Y + BoxTopClearance
		car.YVelocity = 0
	} else {
		pos.Y = b.Min.Y - BoxUndersideMargin
		car.YVelocity = min(car.YVelocity, 0)
	}

	pos.Z = snap(pos.Z, b.Min.Z, b.Max.Z, BoxSideMargin)

	r.Stats.Box++
	r.metrics.Box(entity)
	r.log.Debug().Str("entity", entity).
		Float32("x", pos.X).Float32("y", pos.Y).Float32("z", pos.Z).
		Msg("box overlap resolved")
}

func nearerMax(v, lo, hi float32) bool {
	return hi-v <= v-lo
}

func snap(v, lo, hi, margin float32) float32 {
	if nearerMax(v, lo, hi) {
		return hi + margin
	}
	return lo - margin
}

// wall sweeps each bottom corner over the next step and reflects the car's
// horizontal velocity off the first corner that crosses the wall.
func (r *Resolver) wall(car *vehicle.Controller, w physics.WallSegment, dt float32, entity string) {
	if dt <= 0 {
		return
	}
	next := car.Peek(dt)
	now := car.Bounds().BottomCorners()
	then := car.Dimensions.Bounds(&next).BottomCorners()

	for i := range now {
		from := physics.Horizontal(now[i])
		c := rl.Vector2Scale(rl.Vector2Subtract(physics.Horizontal(then[i]), from), 1/dt)
		if c.X == 0 && c.Y == 0 {
			continue
		}
		if w.IsParallel(c) {
			r.Stats.Parallel++
			r.metrics.Parallel(entity)
			continue
		}
		if _, ok := w.Sweep(from, c, dt); !ok {
			continue
		}

		v := w.Reflect(c)
		car.State.VelocityWC.X = v.X
		car.State.VelocityWC.Z = v.Y

		r.Stats.Wall++
		r.metrics.Wall(entity)
		r.log.Trace().Str("entity", entity).Int("corner", i).Msg("wall hit")
		return
	}
}
