package world

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"racer/internal/camera"
	"racer/internal/components"
	"racer/internal/physics"
	"racer/internal/track"
	"racer/internal/vehicle"
)

func newWorld(t *testing.T, in components.Input) *World {
	t.Helper()
	return New(Options{PlayerID: 1, Input: in, Log: zerolog.Nop()})
}

func TestNewBuildsScene(t *testing.T) {
	w := newWorld(t, nil)

	assert.Equal(t, 1+9+len(Cacti)+1, w.Scene.Len())
	assert.Len(t, w.Scene.FindByTag("track"), 9)
	assert.Len(t, w.Scene.FindByTag("cactus"), len(Cacti))
	require.NotNil(t, w.Scene.FindByName("Ground"))
	assert.Equal(t, w.Player.GetGameObject(), w.Scene.FindByName("Player"))
	assert.NotNil(t, w.Scene.FindByName("Track_1_right-corner"))
}

func TestPlayerSettlesOnDeck(t *testing.T) {
	w := newWorld(t, nil)
	for i := 0; i < 10; i++ {
		w.Update(1.0 / 60)
	}

	pos := w.Player.Car.State.PositionWC
	assert.InDelta(t, track.Elevation+1.5, pos.Y, 1e-4)
	assert.InDelta(t, -4.5, pos.X, 1e-4)
	assert.InDelta(t, 120, pos.Z, 1e-4)
}

func TestPlayerStaysBetweenRails(t *testing.T) {
	// Full throttle across the start straight towards the rail at x = 11.5.
	w := newWorld(t, components.FixedInput(vehicle.Controls{Gas: true}))
	w.Player.Car.State.PositionWC = rl.Vector3{Y: 31.5, Z: 120}
	w.Player.Car.State.Angle = math.Pi / 2

	for i := 0; i < 240; i++ {
		w.Update(1.0 / 60)
		x := w.Player.Car.State.PositionWC.X
		require.Less(t, x, float32(track.RailOffset), "tick %d", i)
		require.Greater(t, x, float32(-track.RailOffset), "tick %d", i)
	}
	assert.Positive(t, w.Player.Resolver.Stats.Wall)
}

func TestPlayerBouncesOffFirstCorner(t *testing.T) {
	// Straight north at x = 0 meets the outer rail of the right corner at
	// (-10, 285), which curves east across the car's path near z = 238.
	w := newWorld(t, components.FixedInput(vehicle.Controls{Gas: true}))
	w.Player.Car.State.PositionWC = rl.Vector3{Y: 31.5, Z: 226}

	for i := 0; i < 360; i++ {
		w.Update(1.0 / 60)
		pos := w.Player.Car.State.PositionWC
		require.Greater(t, pos.X, float32(-25), "tick %d", i)
		require.Less(t, pos.Z, float32(300), "tick %d", i)
		if pos.Z > 270 {
			require.Less(t, pos.X, float32(110), "tick %d", i)
		}
	}
	assert.Positive(t, w.Player.Resolver.Stats.Wall)
}

func TestSyncRemotes(t *testing.T) {
	w := newWorld(t, nil)
	w.Mailbox.Publish(components.Status{PlayerID: 2, Position: rl.Vector3{X: 5, Y: 31.5, Z: 100}})

	w.Update(1.0 / 60)
	remotes := w.Remotes()
	require.Len(t, remotes, 1, "the local player's own status is not mirrored")
	assert.Equal(t, 2, remotes[0].PlayerID)
	assert.True(t, remotes[0].Visible())

	// Spawning is idempotent.
	w.Update(1.0 / 60)
	assert.Len(t, w.Remotes(), 1)

	w.Mailbox.Disconnect(2)
	w.Update(1.0 / 60)
	assert.Empty(t, w.Remotes())

	w.Mailbox.Publish(components.Status{PlayerID: 2})
	w.Update(1.0 / 60)
	assert.Len(t, w.Remotes(), 1, "a returning player gets a new car")
}

func TestRespawn(t *testing.T) {
	w := newWorld(t, components.FixedInput(vehicle.Controls{Gas: true}))
	for i := 0; i < 30; i++ {
		w.Update(1.0 / 60)
	}
	w.Respawn()
	assert.Equal(t, track.SpawnPosition(1), w.Player.Car.State.PositionWC)
}

func TestFrustum(t *testing.T) {
	cam := rl.Camera3D{
		Target:     rl.Vector3{Z: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(cam, 1)

	assert.True(t, f.ContainsSphere(rl.Vector3{Z: 10}, 0))
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: -10}, 1), "behind")
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: 2000}, 1), "beyond far plane")
	assert.False(t, f.ContainsSphere(rl.Vector3{X: 100, Z: 10}, 1))
	assert.True(t, f.ContainsSphere(rl.Vector3{X: 100, Z: 10}, 200))

	assert.True(t, f.ContainsAABB(physics.AABB{Min: rl.Vector3{X: -1, Y: -1, Z: 5}, Max: rl.Vector3{X: 1, Y: 1, Z: 6}}))
	assert.True(t, f.ContainsAABB(physics.AABB{Min: rl.Vector3{X: -500, Z: 5}, Max: rl.Vector3{X: 500, Z: 6}}), "straddling")
	assert.False(t, f.ContainsAABB(physics.AABB{Min: rl.Vector3{X: -1, Y: -1, Z: -6}, Max: rl.Vector3{X: 1, Y: 1, Z: -5}}))
}

func TestInViewCullsProps(t *testing.T) {
	cam := rl.Camera3D{
		Target:     rl.Vector3{Z: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(cam, 1)

	ahead := physics.NewAABBFromCenter(rl.Vector3{Z: 20}, CactusSize)
	behind := physics.NewAABBFromCenter(rl.Vector3{Z: -20}, CactusSize)
	edge := physics.NewAABBFromCenter(rl.Vector3{X: -9, Z: 20}, CactusSize)
	assert.True(t, inView(&f, ahead))
	assert.False(t, inView(&f, behind))
	assert.True(t, inView(&f, edge), "partly visible counts")
}

func TestVisibleSegments(t *testing.T) {
	w := newWorld(t, nil)

	chase := camera.NewChase()
	cam := chase.Camera(w.Player.Car.State.PositionWC, w.Player.Car.State.Angle)
	f := ExtractFrustum(cam, 16.0/9)
	assert.Contains(t, w.VisibleSegments(&f), 0, "the start straight is ahead of the grid")

	sky := rl.Camera3D{
		Position:   rl.Vector3{Y: 500},
		Target:     rl.Vector3{Y: 501},
		Up:         rl.Vector3{Z: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	f = ExtractFrustum(sky, 1)
	assert.Empty(t, w.VisibleSegments(&f))
}
