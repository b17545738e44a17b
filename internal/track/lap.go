package track

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/engine"
)

// Gate is a timing line across the track at Z, open between MinX and MaxX
// (exclusive). Northbound gates count cars moving towards +Z.
type Gate struct {
	Z          float32
	MinX, MaxX float32
	Northbound bool
}

var (
	FinishLine = Gate{Z: 130, MinX: -10, MaxX: 20, Northbound: true}
	HalfRing   = Gate{Z: 158, MinX: 230, MaxX: 270}
)

// Crossed reports whether moving from cur to next crosses the gate. Only
// cur's x is checked, and touching the line counts.
func (g Gate) Crossed(cur, next rl.Vector3) bool {
	if cur.X <= g.MinX || cur.X >= g.MaxX {
		return false
	}
	if g.Northbound {
		return cur.Z <= g.Z && g.Z <= next.Z
	}
	return cur.Z >= g.Z && g.Z >= next.Z
}

// Lap is a completed lap.
type Lap struct {
	Number int
	Time   float32 // seconds
}

// LapCounter counts laps. A lap is the finish line crossed after the half
// ring, so driving back and forth over the line does not count.
type LapCounter struct {
	Finish   Gate
	HalfRing Gate

	OnHalfRing engine.Event
	OnLap      engine.EventWithArg[Lap]

	laps     int
	halfDone bool
	elapsed  float32
	best     float32
}

func NewLapCounter() *LapCounter {
	return &LapCounter{Finish: FinishLine, HalfRing: HalfRing}
}

// Observe feeds one tick of motion from cur to the predicted next position.
func (l *LapCounter) Observe(cur, next rl.Vector3, dt float32) {
	l.elapsed += dt

	if l.halfDone && l.Finish.Crossed(cur, next) {
		l.laps++
		l.halfDone = false
		lap := Lap{Number: l.laps, Time: l.elapsed}
		if l.best == 0 || lap.Time < l.best {
			l.best = lap.Time
		}
		l.elapsed = 0
		l.OnLap.Invoke(lap)
	}

	if l.HalfRing.Crossed(cur, next) && !l.halfDone {
		l.halfDone = true
		l.OnHalfRing.Invoke()
	}
}

// Laps returns the number of completed laps.
func (l *LapCounter) Laps() int { return l.laps }

// HalfRingComplete reports whether the current lap has passed the half ring.
func (l *LapCounter) HalfRingComplete() bool { return l.halfDone }

// Best returns the fastest lap time so far, or 0 before the first lap.
func (l *LapCounter) Best() float32 { return l.best }

// Current returns the time spent on the lap in progress.
func (l *LapCounter) Current() float32 { return l.elapsed }

// Reset clears progress, for example after a respawn. Listeners are kept.
func (l *LapCounter) Reset() {
	l.laps = 0
	l.halfDone = false
	l.elapsed = 0
	l.best = 0
}
