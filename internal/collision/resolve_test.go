package collision

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"racer/internal/engine"
	"racer/internal/physics"
	"racer/internal/vehicle"
)

const dt = float32(0.016)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	return NewResolver(m, zerolog.Nop())
}

func TestHeightPlaneSnapsCarUp(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{X: 3, Y: 30.5, Z: 7}, nil)
	car.YVelocity = -12

	r.Resolve(car, physics.HeightPlane{Y: 30}, dt)

	assert.Equal(t, float32(31.5), car.State.PositionWC.Y)
	assert.Equal(t, float32(0), car.YVelocity)
	assert.Equal(t, float32(3), car.State.PositionWC.X)
	assert.Equal(t, 1, r.Stats.Ground)
}

func TestHeightPlaneIgnoresCarAbove(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{Y: 40}, nil)
	car.YVelocity = -2

	r.Resolve(car, physics.HeightPlane{Y: 30}, dt)

	assert.Equal(t, float32(40), car.State.PositionWC.Y)
	assert.Equal(t, float32(-2), car.YVelocity)
	assert.Zero(t, r.Stats.Ground)
}

func TestRestingCarStaysOnPlane(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{Y: 31.5}, nil)

	for range 120 {
		car.Fall(dt)
		r.Resolve(car, physics.HeightPlane{Y: 30}, dt)
		car.Step(dt)
	}

	assert.Equal(t, float32(31.5), car.State.PositionWC.Y)
}

func TestBoxSnapsEveryAxis(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{Y: 31.5}, nil)
	car.YVelocity = -4
	box := physics.Box{Min: rl.Vector3{X: 0.5, Y: 29, Z: -1}, Max: rl.Vector3{X: 3, Y: 30.5, Z: 1}}

	r.Resolve(car, box, dt)

	assert.Equal(t, float32(0.5-BoxSideMargin), car.State.PositionWC.X)
	assert.Equal(t, float32(30.5+BoxTopClearance), car.State.PositionWC.Y)
	assert.Equal(t, float32(1+BoxSideMargin), car.State.PositionWC.Z)
	assert.Equal(t, float32(0), car.YVelocity)
	assert.Equal(t, 1, r.Stats.Box)
}

func TestBoxUndersideClampsUpwardVelocity(t *testing.T) {
	box := physics.Box{Min: rl.Vector3{X: -1, Y: 26, Z: -1}, Max: rl.Vector3{X: 1, Y: 40, Z: 1}}

	tests := []struct {
		name string
		vy   float32
		want float32
	}{
		{"rising", 3, 0},
		{"falling", -2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(t)
			car := vehicle.NewController(rl.Vector3{Y: 27}, nil)
			car.YVelocity = tt.vy

			r.Resolve(car, box, dt)

			assert.Equal(t, float32(26-BoxUndersideMargin), car.State.PositionWC.Y)
			assert.Equal(t, tt.want, car.YVelocity)
		})
	}
}

func TestBoxWithoutOverlapIsIgnored(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{Y: 31.5}, nil)
	box := physics.Box{Min: rl.Vector3{X: 10, Y: 29, Z: 10}, Max: rl.Vector3{X: 12, Y: 33, Z: 12}}

	r.Resolve(car, box, dt)

	assert.Equal(t, rl.Vector3{Y: 31.5}, car.State.PositionWC)
	assert.Zero(t, r.Stats.Box)
}

// headingWest returns a car facing -X at x, moving with velocity v.
func headingWest(x float32, v rl.Vector3) *vehicle.Controller {
	car := vehicle.NewController(rl.Vector3{X: x, Y: 31.5}, nil)
	car.State.Angle = -math.Pi / 2
	car.State.VelocityWC = v
	return car
}

var wallAtOrigin = physics.WallSegment{P0: rl.Vector3{Z: 10}, P1: rl.Vector3{Z: -10}}

func TestWallReflectsHeadOnHit(t *testing.T) {
	r := newResolver(t)
	car := headingWest(1.55, rl.Vector3{X: -5})

	r.Resolve(car, wallAtOrigin, dt)

	require.Equal(t, 1, r.Stats.Wall)
	assert.InDelta(t, 5, car.State.VelocityWC.X, 0.02)
	assert.InDelta(t, 0, car.State.VelocityWC.Z, 1e-3)
	assert.Equal(t, float32(1.55), car.State.PositionWC.X, "reflection leaves position alone")
}

func TestWallReflectsObliqueHit(t *testing.T) {
	r := newResolver(t)
	car := headingWest(1.55, rl.Vector3{X: -5, Z: 3})

	r.Resolve(car, wallAtOrigin, dt)

	require.Equal(t, 1, r.Stats.Wall)
	assert.Greater(t, car.State.VelocityWC.X, float32(4.5))
	assert.Greater(t, car.State.VelocityWC.Z, float32(1))
}

func TestWallOutOfReachIsIgnored(t *testing.T) {
	r := newResolver(t)
	car := headingWest(20, rl.Vector3{X: -5})

	r.Resolve(car, wallAtOrigin, dt)

	assert.Zero(t, r.Stats.Wall)
	assert.Equal(t, float32(-5), car.State.VelocityWC.X)
}

func TestWallParallelMotionIsSkipped(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{X: 0.5, Y: 31.5}, nil)
	car.State.VelocityWC = rl.Vector3{Z: 5}

	r.Resolve(car, wallAtOrigin, dt)

	assert.Zero(t, r.Stats.Wall)
	assert.Equal(t, 4, r.Stats.Parallel)
	assert.False(t, math.IsNaN(float64(car.State.VelocityWC.X)))
	assert.Equal(t, float32(0), car.State.VelocityWC.X)
}

func TestWallIgnoresCarAtRest(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{X: 0.5, Y: 31.5}, nil)

	r.Resolve(car, wallAtOrigin, dt)

	assert.Zero(t, r.Stats.Wall)
	assert.Zero(t, r.Stats.Parallel)
}

func TestCompositeWithNoneMatchesChild(t *testing.T) {
	plain := vehicle.NewController(rl.Vector3{Y: 4}, nil)
	plain.YVelocity = -3
	wrapped := vehicle.NewController(rl.Vector3{Y: 4}, nil)
	wrapped.YVelocity = -3

	newResolver(t).Resolve(plain, physics.HeightPlane{Y: 5}, dt)
	newResolver(t).Resolve(wrapped, physics.NewComposite(physics.None{}, physics.HeightPlane{Y: 5}), dt)

	assert.Equal(t, plain.State, wrapped.State)
	assert.Equal(t, plain.YVelocity, wrapped.YVelocity)
}

func TestCompositeAppliesChildrenInOrder(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{Y: 0}, nil)

	// The second plane only triggers because the first lifted the car to 31.5.
	r.Resolve(car, physics.NewComposite(physics.HeightPlane{Y: 30}, physics.HeightPlane{Y: 30.5}), dt)

	assert.Equal(t, float32(32), car.State.PositionWC.Y)
	assert.Equal(t, 2, r.Stats.Ground)
}

func TestNoneIsNoop(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{Y: -100}, nil)
	before := *car

	r.Resolve(car, physics.None{}, dt)
	r.Resolve(car, nil, dt)

	assert.Equal(t, before, *car)
}

func TestCheckAllSkipsSelf(t *testing.T) {
	self := engine.Handle{Index: 0, Generation: 1}
	other := engine.Handle{Index: 1, Generation: 1}
	snaps := []engine.ColliderSnapshot{
		{Handle: self, Name: "player", Collider: physics.HeightPlane{Y: 100}},
		{Handle: other, Name: "ground", Collider: physics.HeightPlane{Y: 0}},
	}

	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{Y: 50}, nil)
	r.CheckAll(car, self, snaps, dt)
	assert.Equal(t, float32(50), car.State.PositionWC.Y)

	// A stale handle for the same slot is a different entity.
	r = newResolver(t)
	car = vehicle.NewController(rl.Vector3{Y: 50}, nil)
	r.CheckAll(car, engine.Handle{Index: 0, Generation: 2}, snaps, dt)
	assert.Equal(t, float32(101.5), car.State.PositionWC.Y)
}

func TestNilMetricsAreSafe(t *testing.T) {
	r := NewResolver(nil, zerolog.Nop())
	car := vehicle.NewController(rl.Vector3{}, nil)

	assert.NotPanics(t, func() {
		r.Resolve(car, physics.HeightPlane{Y: 0}, dt)
	})
	assert.Equal(t, 1, r.Stats.Ground)

	r.ResetStats()
	assert.Zero(t, r.Stats)
}

// foreignCollider satisfies physics.Collider through the embedded None but is
// not one of the known variants.
type foreignCollider struct{ physics.None }

func TestUnknownColliderPanicsLikeFlatten(t *testing.T) {
	r := newResolver(t)
	car := vehicle.NewController(rl.Vector3{Y: 31.5}, nil)

	assert.Panics(t, func() { physics.Flatten(foreignCollider{}) })
	assert.Panics(t, func() { r.Resolve(car, foreignCollider{}, dt) })
	assert.NotPanics(t, func() { r.Resolve(car, nil, dt) })
}
