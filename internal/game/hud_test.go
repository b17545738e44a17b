package game

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"racer/internal/camera"
	"racer/internal/collision"
	"racer/internal/config"
	"racer/internal/laps"
	"racer/internal/track"
	"racer/internal/vehicle"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "--:--.---", formatTime(0))
	assert.Equal(t, "00:05.250", formatTime(5.25))
	assert.Equal(t, "01:02.500", formatTime(62.5))
}

func TestHUDLines(t *testing.T) {
	h := HUDState{Speed: 10, Lap: 2, LapTime: 12.5, Best: 61}
	lines := h.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, " 36 km/h  D", lines[0])
	assert.Equal(t, "Lap 3  00:12.500", lines[1])
	assert.Equal(t, "Best 01:01.000", lines[2])
	assert.Equal(t, "Record --:--.---", lines[3])

	h.Reverse = true
	h.Gear = vehicle.Reversing
	h.ShowDetails = true
	h.View = camera.FirstPerson
	h.Collisions = collision.Stats{Ground: 3, Wall: 1}
	lines = h.Lines()
	require.Len(t, lines, 7)
	assert.Equal(t, " 36 km/h  R", lines[0])
	assert.Equal(t, "Brake: reversing  View: "+camera.FirstPerson.String(), lines[4])
	assert.Equal(t, "Hits: ground 3 box 0 wall 1 parallel 0", lines[5])

	h.FreeCamera = true
	assert.Contains(t, h.Lines()[4], "View: free")
}

func testConfig() config.Config {
	return config.Config{
		PlayerID: 1,
		Vehicle:  vehicle.DefaultTuning(),
		Laps:     config.LapsConfig{Enabled: true, Track: "desert"},
	}
}

func TestNewWithoutStore(t *testing.T) {
	g := New(testConfig(), zerolog.Nop(), nil, nil)

	h := g.HUD()
	assert.Zero(t, h.Lap)
	assert.Zero(t, h.StoredBest)
	assert.Equal(t, camera.ThirdPerson, h.View)
	assert.Equal(t, track.SpawnPosition(1), g.World.Player.Car.State.PositionWC)
}

func TestNewLoadsAndTracksStoredBest(t *testing.T) {
	ctx := context.Background()
	store, err := laps.Open(filepath.Join(t.TempDir(), "laps.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Record(ctx, &laps.Record{Track: "desert", PlayerID: 7, Number: 1, Seconds: 80}))

	g := New(testConfig(), zerolog.Nop(), store, nil)
	assert.InDelta(t, 80, g.HUD().StoredBest, 1e-6)

	// A faster lap on the session counter reaches the store and the HUD.
	g.World.Player.Laps.OnLap.Invoke(track.Lap{Number: 1, Time: 70})
	assert.InDelta(t, 70, g.HUD().StoredBest, 1e-6)

	best, ok, err := store.Best(ctx, "desert")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, best.PlayerID)
}
