// Package world assembles the race scene and draws it.
package world

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"racer/internal/collision"
	"racer/internal/components"
	"racer/internal/engine"
	"racer/internal/physics"
	"racer/internal/track"
	"racer/internal/vehicle"
)

// GroundHeight is the desert floor, a little under the origin.
const GroundHeight = -0.2

// CactusSize is the collision box of a cactus.
var CactusSize = rl.Vector3{X: 2, Y: 6, Z: 2}

// Cacti stand in the infield and around the outside of the circuit.
var Cacti = []rl.Vector3{
	{X: 60, Z: 150},
	{X: 120, Z: 200},
	{X: 140, Z: 90},
	{X: -60, Z: 40},
	{X: -45, Z: 230},
	{X: 400, Z: 320},
	{X: 200, Z: -20},
}

type Options struct {
	PlayerID int
	Tuning   *vehicle.Tuning
	Input    components.Input
	Mailbox  *components.Mailbox
	Metrics  *collision.Metrics
	Layout   []track.Segment
	Log      zerolog.Logger
}

type World struct {
	Scene   *engine.Scene
	Track   *track.Track
	Player  *components.PlayerCar
	Mailbox *components.Mailbox

	playerID      int
	remotes       map[int]engine.Handle
	segmentBounds []physics.AABB
	log           zerolog.Logger
}

// New builds the scene: ground, one object per track segment, cacti and the
// local player. A nil Mailbox gets an empty one; nil Layout uses the
// default circuit.
func New(opts Options) *World {
	if opts.Mailbox == nil {
		opts.Mailbox = components.NewMailbox()
	}
	if opts.Layout == nil {
		opts.Layout = track.DefaultLayout()
	}

	w := &World{
		Scene:    engine.NewScene("Race"),
		Track:    track.New(opts.Layout),
		Mailbox:  opts.Mailbox,
		playerID: opts.PlayerID,
		remotes:  make(map[int]engine.Handle),
		log:      opts.Log,
	}

	ground := engine.NewGameObject("Ground")
	ground.AddComponent(&components.Ground{Height: GroundHeight})
	w.Scene.AddGameObject(ground)

	for i, seg := range w.Track.Segments() {
		obj := engine.NewGameObject(fmt.Sprintf("Track_%d_%s", i, seg.Kind))
		obj.Tags = []string{"track"}
		obj.Transform.Position = seg.Position
		obj.Transform.Yaw = seg.Yaw
		obj.AddComponent(components.NewTrackCollider(w.Track, i))
		w.Scene.AddGameObject(obj)
		w.segmentBounds = append(w.segmentBounds, segmentBounds(w.Track.SegmentCollider(i)))
	}

	for i, pos := range Cacti {
		cactus := engine.NewGameObject(fmt.Sprintf("Cactus_%d", i))
		cactus.Tags = []string{"cactus"}
		cactus.Transform.Position = pos
		col := components.NewBoxCollider(CactusSize)
		col.Offset = rl.Vector3{Y: CactusSize.Y / 2}
		cactus.AddComponent(col)
		w.Scene.AddGameObject(cactus)
	}

	w.Player = components.NewPlayerCar(opts.PlayerID, opts.Tuning, opts.Log)
	w.Player.Input = opts.Input
	w.Player.Resolver = collision.NewResolver(opts.Metrics, opts.Log)
	w.Player.Sink = w.Mailbox
	player := engine.NewGameObject("Player")
	player.Tags = []string{"player"}
	player.AddComponent(w.Player)
	w.Scene.AddGameObject(player)

	w.Scene.Start()
	w.log.Info().Int("segments", len(opts.Layout)).Int("walls", len(w.Track.Walls())).
		Int("objects", w.Scene.Len()).Msg("World built")
	return w
}

// segmentBounds covers a segment's walls from the deck up to the wall tops.
func segmentBounds(c physics.Composite) physics.AABB {
	var pts []rl.Vector3
	for _, p := range physics.Flatten(c) {
		if wall, ok := p.(physics.WallSegment); ok {
			pts = append(pts, wall.P0, wall.P1)
		}
	}
	b := physics.NewAABBFromPoints(pts...)
	b.Min.Y = track.Elevation
	b.Max.Y = track.Elevation + track.BoxHeight
	return b
}

// Update adds cars for newly seen players, then ticks the scene.
func (w *World) Update(deltaTime float32) {
	w.SyncRemotes()
	w.Scene.Update(deltaTime)
}

// SyncRemotes spawns a RemoteCar for every player in the mailbox that has
// none. Cars of disconnected players remove themselves.
func (w *World) SyncRemotes() {
	for _, id := range w.Mailbox.Players() {
		if id == w.playerID {
			continue
		}
		if h, ok := w.remotes[id]; ok && h.IsValid() && w.Scene.Get(h) != nil {
			continue
		}
		obj := engine.NewGameObject(fmt.Sprintf("Remote_%d", id))
		obj.Tags = []string{"remote"}
		obj.AddComponent(components.NewRemoteCar(id, w.Mailbox))
		w.remotes[id] = w.Scene.AddGameObject(obj)
		w.log.Info().Int("player", id).Msg("Remote player joined")
	}
}

// Remotes returns the live remote cars ordered by handle.
func (w *World) Remotes() []*components.RemoteCar {
	var out []*components.RemoteCar
	for _, g := range w.Scene.FindByTag("remote") {
		if r := engine.GetComponent[*components.RemoteCar](g); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// VisibleSegments returns the indices of segments whose walls intersect f.
func (w *World) VisibleSegments(f *Frustum) []int {
	var out []int
	for i, b := range w.segmentBounds {
		if f.ContainsAABB(b) {
			out = append(out, i)
		}
	}
	return out
}

// Respawn puts the player back on the grid.
func (w *World) Respawn() {
	w.Player.Respawn()
}
