package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/components"
	"racer/internal/engine"
	"racer/internal/physics"
	"racer/internal/track"
	"racer/internal/vehicle"
)

// FloorSize is the side of the drawn desert floor.
const FloorSize = 700.0

var (
	sandColor   = rl.NewColor(153, 71, 41, 255)
	deckColor   = rl.NewColor(70, 70, 75, 255)
	railColor   = rl.NewColor(220, 220, 220, 255)
	cactusColor = rl.NewColor(60, 130, 60, 255)
	playerColor = rl.Red
	remoteColor = rl.Blue
)

// Renderer draws a World with raylib primitives. It must only be used
// between BeginMode3D and EndMode3D on the window's thread.
type Renderer struct {
	// ShowColliders draws every collider in the scene snapshot on top.
	ShowColliders bool

	// Per frame counters, for the HUD.
	SegmentsDrawn int
	WallsDrawn    int
	PropsDrawn    int

	floor rl.Model
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Initialize loads GPU resources. Requires an open window.
func (r *Renderer) Initialize() {
	r.floor = rl.LoadModelFromMesh(rl.GenMeshPlane(FloorSize, FloorSize, 1, 1))
	r.floor.Materials.Maps.Color = sandColor
}

func (r *Renderer) Draw(w *World, cam rl.Camera3D, aspect float32) {
	rl.DrawModel(r.floor, rl.Vector3{X: 150, Y: GroundHeight, Z: 120}, 1.0, rl.White)

	f := ExtractFrustum(cam, aspect)
	r.SegmentsDrawn, r.WallsDrawn, r.PropsDrawn = 0, 0, 0
	for _, i := range w.VisibleSegments(&f) {
		r.drawSegment(w.Track.SegmentCollider(i))
		r.SegmentsDrawn++
	}

	for _, g := range w.Scene.FindByTag("cactus") {
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil || !inView(&f, box.GetAABB()) {
			continue
		}
		size := box.GetWorldSize()
		rl.DrawCylinder(g.Transform.Position, size.X/2, size.X/2, size.Y, 8, cactusColor)
		r.PropsDrawn++
	}

	for _, remote := range w.Remotes() {
		if remote.Visible() && inView(&f, remote.Car.Bounds().AABB()) {
			drawCar(remote.Car, remoteColor)
			r.PropsDrawn++
		}
	}
	drawCar(w.Player.Car, playerColor)

	if r.ShowColliders {
		drawColliders(w.Scene.Snapshot(engine.NilHandle))
		drawOBB(w.Player.Car.Bounds(), rl.Yellow)
	}
}

// inView tests the bounding sphere of box.
func inView(f *Frustum, box physics.AABB) bool {
	return f.ContainsSphere(box.Center(), rl.Vector3Length(box.Size())/2)
}

func (r *Renderer) drawSegment(c physics.Composite) {
	for _, p := range physics.Flatten(c) {
		wall, ok := p.(physics.WallSegment)
		if !ok {
			continue
		}
		top := rl.Vector3{Y: track.BoxHeight}
		rl.DrawLine3D(wall.P0, wall.P1, railColor)
		rl.DrawLine3D(rl.Vector3Add(wall.P0, top), rl.Vector3Add(wall.P1, top), railColor)
		rl.DrawLine3D(wall.P0, rl.Vector3Add(wall.P0, top), railColor)
		r.WallsDrawn++
	}
}

func drawCar(car *vehicle.Controller, color rl.Color) {
	o := car.Bounds()
	corners := o.Corners()
	rl.DrawTriangle3D(corners[4], corners[5], corners[6], color)
	rl.DrawTriangle3D(corners[4], corners[6], corners[7], color)
	drawOBB(o, color)

	// Front wheels show the steering angle.
	s := &car.State
	fwd := s.Forward()
	steer := rl.Vector3RotateByAxisAngle(fwd, rl.Vector3{Y: 1}, s.SteeringAngle)
	nose := rl.Vector3Add(o.Center, rl.Vector3Scale(fwd, car.Dimensions.Length/2))
	rl.DrawLine3D(nose, rl.Vector3Add(nose, rl.Vector3Scale(steer, 1.5)), rl.Black)
}

func drawOBB(o physics.OBB, color rl.Color) {
	c := o.Corners()
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		rl.DrawLine3D(c[e[0]], c[e[1]], color)
	}
}

func drawColliders(snap []engine.ColliderSnapshot) {
	planes := make(map[float32]bool)
	for _, s := range snap {
		for _, p := range physics.Flatten(s.Collider) {
			switch p := p.(type) {
			case physics.Box:
				rl.DrawBoundingBox(rl.BoundingBox{Min: p.Min, Max: p.Max}, rl.Green)
			case physics.WallSegment:
				rl.DrawLine3D(p.P0, p.P1, rl.Orange)
			case physics.HeightPlane:
				planes[p.Y] = true
			}
		}
	}

	// Every deck shares one plane, so draw one grid per distinct height.
	for y := range planes {
		rl.PushMatrix()
		rl.Translatef(0, y, 0)
		rl.DrawGrid(20, 10)
		rl.PopMatrix()
	}
}

func (r *Renderer) Unload() {
	rl.UnloadModel(r.floor)
}
