package game

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"racer/internal/camera"
	"racer/internal/collision"
	"racer/internal/config"
	"racer/internal/laps"
	"racer/internal/track"
	"racer/internal/vehicle"
	"racer/internal/world"
)

type Game struct {
	World    *world.World
	Renderer *world.Renderer
	Chase    *camera.Chase
	Free     *camera.Free

	FreeCamera  bool
	ShowDetails bool

	cfg        config.Config
	store      *laps.Store
	storedBest float32
	log        zerolog.Logger
}

// New builds the world for the local player. store may be nil, in which case
// laps are only kept for the session.
func New(cfg config.Config, log zerolog.Logger, store *laps.Store, metrics *collision.Metrics) *Game {
	tuning := cfg.Vehicle
	w := world.New(world.Options{
		PlayerID: cfg.PlayerID,
		Tuning:   &tuning,
		Input:    Keyboard{},
		Metrics:  metrics,
		Log:      log,
	})

	g := &Game{
		World:    w,
		Renderer: world.NewRenderer(),
		Chase:    camera.NewChase(),
		Free:     camera.NewFree(rl.Vector3Add(w.Player.Car.State.PositionWC, rl.Vector3{Y: 20, Z: -20})),
		cfg:      cfg,
		store:    store,
		log:      log,
	}

	if store != nil {
		ctx := context.Background()
		store.Watch(ctx, w.Player.Laps, cfg.Laps.Track, cfg.PlayerID)
		g.loadStoredBest(ctx)
		w.Player.Laps.OnLap.AddListener(func(track.Lap) { g.loadStoredBest(ctx) })
	}
	return g
}

func (g *Game) loadStoredBest(ctx context.Context) {
	best, ok, err := g.store.Best(ctx, g.cfg.Laps.Track)
	if err != nil {
		g.log.Warn().Err(err).Msg("Could not read best lap")
		return
	}
	if ok {
		g.storedBest = best.Seconds
	}
}

func (g *Game) Run() {
	win := g.cfg.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(win.TargetFPS))
	initHUDStyle()

	g.Renderer.Initialize()
	defer g.Renderer.Unload()

	g.log.Info().Int("width", win.Width).Int("height", win.Height).Msg("Window open")

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
}

func (g *Game) Update(deltaTime float32) {
	if rl.IsKeyPressed(rl.KeyV) {
		g.Chase.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.Renderer.ShowColliders = !g.Renderer.ShowColliders
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.FreeCamera = !g.FreeCamera
		if g.FreeCamera {
			rl.DisableCursor()
		} else {
			rl.EnableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.ShowDetails = !g.ShowDetails
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.World.Respawn()
	}

	if g.FreeCamera {
		g.Free.Update(camera.FreeControls{
			Forward:  rl.IsKeyDown(rl.KeyUp),
			Backward: rl.IsKeyDown(rl.KeyDown),
			Look:     rl.GetMouseDelta(),
		}, deltaTime)
	}

	g.World.Update(deltaTime)
}

func (g *Game) camera() rl.Camera3D {
	if g.FreeCamera {
		return g.Free.Camera()
	}
	s := &g.World.Player.Car.State
	return g.Chase.Camera(s.PositionWC, s.Angle)
}

func (g *Game) Draw() {
	cam := g.camera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(135, 180, 230, 255))

	rl.BeginMode3D(cam)
	g.Renderer.Draw(g.World, cam, aspect)
	rl.EndMode3D()

	g.Renderer.ShowColliders = drawHUD(g.HUD(), g.Renderer.ShowColliders)
	rl.EndDrawing()
}

// HUD collects the overlay state for this frame.
func (g *Game) HUD() HUDState {
	p := g.World.Player
	return HUDState{
		Speed:       p.Car.State.Speed(),
		Gear:        p.Car.BrakingState(),
		Reverse:     p.Car.BrakingState() == vehicle.Reversing,
		Lap:         p.Laps.Laps(),
		LapTime:     p.Laps.Current(),
		Best:        p.Laps.Best(),
		StoredBest:  g.storedBest,
		View:        g.Chase.View,
		FreeCamera:  g.FreeCamera,
		Collisions:  p.Resolver.Stats,
		WallsDrawn:  g.Renderer.WallsDrawn,
		ShowDetails: g.ShowDetails,
	}
}
