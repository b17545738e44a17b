package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/camera"
	"racer/internal/collision"
	"racer/internal/vehicle"
)

var (
	colorPanel  = rl.NewColor(18, 18, 24, 220)
	colorText   = rl.NewColor(230, 230, 235, 255)
	colorAccent = rl.NewColor(255, 170, 40, 255)
)

// HUDState is what the overlay shows for one frame.
type HUDState struct {
	Speed       float32 // m/s
	Gear        vehicle.BrakingState
	Reverse     bool
	Lap         int
	LapTime     float32
	Best        float32 // this session, 0 if none
	StoredBest  float32 // from the lap store, 0 if none
	View        camera.View
	FreeCamera  bool
	Collisions  collision.Stats
	WallsDrawn  int
	ShowDetails bool
}

func formatTime(seconds float32) string {
	if seconds <= 0 {
		return "--:--.---"
	}
	m := int(seconds) / 60
	return fmt.Sprintf("%02d:%06.3f", m, seconds-float32(m*60))
}

// Lines returns the HUD text, top to bottom.
func (h HUDState) Lines() []string {
	gear := "D"
	if h.Reverse {
		gear = "R"
	}
	lines := []string{
		fmt.Sprintf("%3.0f km/h  %s", h.Speed*3.6, gear),
		fmt.Sprintf("Lap %d  %s", h.Lap+1, formatTime(h.LapTime)),
		fmt.Sprintf("Best %s", formatTime(h.Best)),
		fmt.Sprintf("Record %s", formatTime(h.StoredBest)),
	}
	if h.ShowDetails {
		view := h.View.String()
		if h.FreeCamera {
			view = "free"
		}
		lines = append(lines,
			fmt.Sprintf("Brake: %s  View: %s", h.Gear, view),
			fmt.Sprintf("Hits: ground %d box %d wall %d parallel %d",
				h.Collisions.Ground, h.Collisions.Box, h.Collisions.Wall, h.Collisions.Parallel),
			fmt.Sprintf("Walls drawn: %d", h.WallsDrawn),
		)
	}
	return lines
}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

// drawHUD draws the panel and returns the new state of the collider
// overlay checkbox.
func drawHUD(h HUDState, showColliders bool) bool {
	const (
		x, y      = 10, 10
		width     = 360
		rowHeight = 24
	)
	lines := h.Lines()
	height := float32(len(lines)*rowHeight + 2*rowHeight)

	gui.Panel(rl.Rectangle{X: x, Y: y, Width: width, Height: height}, "")
	for i, line := range lines {
		gui.Label(rl.Rectangle{X: x + 10, Y: float32(y + 6 + i*rowHeight), Width: width - 20, Height: rowHeight}, line)
	}

	checkY := float32(y + 10 + len(lines)*rowHeight)
	showColliders = gui.CheckBox(rl.Rectangle{X: x + 10, Y: checkY, Width: 18, Height: 18}, "Colliders (F1)", showColliders)

	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
	return showColliders
}
