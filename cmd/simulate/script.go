package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"racer/internal/vehicle"
)

// DefaultScript drives off the grid, takes the first corner and brakes.
const DefaultScript = "gas*120 gas,left*45 gas*120 brake*30 idle*30"

var errEmptyScript = errors.New("script has no steps")

// step holds one set of controls for a number of ticks.
type step struct {
	Controls vehicle.Controls
	Ticks    int
}

// parseScript reads steps of the form "controls*ticks", separated by spaces
// or semicolons. controls is a comma separated list of gas, brake,
// handbrake, left, right and idle. "*ticks" may be left out for one tick.
func parseScript(src string) ([]step, error) {
	fields := strings.FieldsFunc(src, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\n' || r == '\t'
	})

	var out []step
	for _, f := range fields {
		names, count, found := strings.Cut(f, "*")
		s := step{Ticks: 1}
		if found {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("step %q: bad tick count %q", f, count)
			}
			s.Ticks = n
		}

		for _, name := range strings.Split(names, ",") {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "gas":
				s.Controls.Gas = true
			case "brake":
				s.Controls.Brake = true
			case "handbrake":
				s.Controls.Handbrake = true
			case "left":
				s.Controls.Steer = 1
			case "right":
				s.Controls.Steer = -1
			case "idle", "":
			default:
				return nil, fmt.Errorf("step %q: unknown control %q", f, name)
			}
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, errEmptyScript
	}
	return out, nil
}

// scriptInput replays a script, starting over when it runs out.
type scriptInput struct {
	steps []step
	index int
	tick  int
}

func (s *scriptInput) Controls() vehicle.Controls {
	cur := s.steps[s.index]
	s.tick++
	if s.tick >= cur.Ticks {
		s.tick = 0
		s.index = (s.index + 1) % len(s.steps)
	}
	return cur.Controls
}
