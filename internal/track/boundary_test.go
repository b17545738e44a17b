package track

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"racer/internal/physics"
)

func walls(t *testing.T, c physics.Composite) []physics.WallSegment {
	t.Helper()
	var out []physics.WallSegment
	for _, p := range physics.Flatten(c)[1:] {
		w, ok := p.(physics.WallSegment)
		require.True(t, ok, "expected only walls after the deck, got %T", p)
		out = append(out, w)
	}
	return out
}

func assertNear(t *testing.T, want, got rl.Vector3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestBuildStartsWithDeck(t *testing.T) {
	for _, seg := range DefaultLayout() {
		c := Build(seg)
		require.Greater(t, c.Len(), 0)
		assert.Equal(t, physics.HeightPlane{Y: Elevation}, c.At(0), seg.String())
	}
}

func TestBuildStraightNorth(t *testing.T) {
	seg := NewStraight(rl.Vector3{Z: 66}, North, 240)
	ws := walls(t, Build(seg))

	require.Len(t, ws, 120)

	// First left slice starts half a slice before the near end.
	assertNear(t, rl.Vector3{X: 11.5, Y: 30.5, Z: -56}, ws[0].P0, 1e-4)
	assertNear(t, rl.Vector3{X: 11.5, Y: 30.5, Z: -52}, ws[0].P1, 1e-4)

	// Right rail mirrors it.
	assertNear(t, rl.Vector3{X: -11.5, Y: 30.5, Z: -56}, ws[60].P0, 1e-4)
}

func TestBuildStraightWest(t *testing.T) {
	seg := NewStraight(rl.Vector3{X: 186, Z: 275}, West, 200)
	ws := walls(t, Build(seg))

	require.Len(t, ws, 100)
	for _, w := range ws {
		assert.InDelta(t, w.P0.Z, w.P1.Z, 1e-3, "west straight rails run along x")
		assert.InDelta(t, 4, w.P1.X-w.P0.X, 1e-3)
	}
	assert.InDelta(t, 275-11.5, ws[0].P0.Z, 1e-3)
	assert.InDelta(t, 275+11.5, ws[50].P0.Z, 1e-3)
}

func TestBuildStraightPartialSlice(t *testing.T) {
	ws := walls(t, Build(NewStraight(rl.Vector3{}, North, 10)))
	assert.Len(t, ws, 4)

	c := Build(NewStraight(rl.Vector3{}, North, 3))
	assert.Equal(t, 1, c.Len(), "too short for a slice leaves only the deck")
}

func TestBuildRightCorner(t *testing.T) {
	seg := NewRightCorner(rl.Vector3{X: -10, Z: 285})
	ws := walls(t, Build(seg))

	require.Len(t, ws, 2*(CurveSamples-1))
	outer, inner := ws[:CurveSamples-1], ws[CurveSamples-1:]

	// Enters heading north from the start straight, leaves heading east.
	assertNear(t, rl.Vector3{X: -10, Y: 30.5, Z: 185}, outer[0].P0, 1e-2)
	assertNear(t, rl.Vector3{X: 90, Y: 30.5, Z: 285}, outer[len(outer)-1].P1, 1e-2)
	assertNear(t, rl.Vector3{X: 10, Y: 30.5, Z: 185}, inner[0].P0, 1e-2)
	assertNear(t, rl.Vector3{X: 90, Y: 30.5, Z: 265}, inner[len(inner)-1].P1, 1e-2)
}

func TestQuadraticRailIsContinuous(t *testing.T) {
	ws := walls(t, Build(NewRightCorner(rl.Vector3{})))
	outer := ws[:CurveSamples-1]

	// For a quadratic the mid-parameter tangent is parallel to the chord, so
	// neighbouring walls share endpoints.
	for i := 1; i < len(outer); i++ {
		assertNear(t, outer[i-1].P1, outer[i].P0, 1e-2)
	}
}

func TestBuildUTurn(t *testing.T) {
	ws := walls(t, Build(NewUTurn(rl.Vector3{}, 0)))
	require.Len(t, ws, 2*(CurveSamples-1))
	outer, inner := ws[:CurveSamples-1], ws[CurveSamples-1:]

	assertNear(t, rl.Vector3{X: -50, Y: 30.5}, outer[0].P0, 1e-2)
	assertNear(t, rl.Vector3{X: 50, Y: 30.5}, outer[len(outer)-1].P1, 1e-2)

	// The cubic inner rail stays roughly continuous and Width inside the apex.
	for i := 1; i < len(inner); i++ {
		gap := rl.Vector3Distance(inner[i-1].P1, inner[i].P0)
		assert.Less(t, gap, float32(0.05), "gap at wall %d", i)
	}
	apexOuter := outer[len(outer)/2].P0
	apexInner := inner[len(inner)/2].P0
	assert.InDelta(t, Width, apexOuter.Z-apexInner.Z, 0.5)
}

func TestBuildUTurnFollowsYaw(t *testing.T) {
	ws := walls(t, Build(NewUTurn(rl.Vector3{X: 37, Z: -49}, 180)))

	// Rotated half a turn the hairpin opens towards -Z.
	assertNear(t, rl.Vector3{X: 87, Y: 30.5, Z: -49}, ws[0].P0, 1e-2)
	apex := ws[(CurveSamples-1)/2].P0
	assert.Less(t, apex.Z, float32(-49-40))
}

func TestWallsAreFiniteAndNonDegenerate(t *testing.T) {
	for _, seg := range DefaultLayout() {
		for _, w := range walls(t, Build(seg)) {
			require.True(t, physics.IsFinite(w.P0) && physics.IsFinite(w.P1), seg.String())
			d := w.Direction()
			assert.Greater(t, rl.Vector2Length(d), float32(0.1), seg.String())
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	seg := NewUTurn(rl.Vector3{X: 292.3, Z: 159}, 270)
	assert.Equal(t, Build(seg), Build(seg))
}

func TestRails(t *testing.T) {
	_, _, ok := Rails(Straight)
	assert.False(t, ok)

	outer, inner, ok := Rails(UTurn)
	require.True(t, ok)
	assert.IsType(t, physics.QuadraticCurve{}, outer)
	assert.IsType(t, physics.CubicCurve{}, inner)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "straight", Straight.String())
	assert.Equal(t, "right-corner", RightCorner.String())
	assert.Equal(t, "u-turn", UTurn.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestHeadingYaw(t *testing.T) {
	assert.Equal(t, float32(0), North.Yaw())
	assert.InDelta(t, math.Pi/2, West.Yaw(), 1e-6)
}
