package core

import (
	"fmt"
	"strings"
)

// Size describes the dimensions of a concentration grid.
type Size struct {
	W int
	H int
}

// Wind is the prevailing wind for a single propagation run. Non-calm values
// name the direction the plume is pushed toward.
type Wind uint8

const (
	Calm Wind = iota
	North
	South
	East
	West
)

// Winds lists every wind value in a stable order.
var Winds = []Wind{Calm, North, South, East, West}

// String returns the lowercase wind name.
func (w Wind) String() string {
	switch w {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "calm"
	}
}

// Opposite returns the wind blowing the other way. Calm is its own opposite.
func (w Wind) Opposite() Wind {
	switch w {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Calm
	}
}

// Offset returns the unit step in grid coordinates. Rows grow southwards.
func (w Wind) Offset() (dx, dy int) {
	switch w {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseWind accepts full names, single letters and the empty string (calm).
func ParseWind(s string) (Wind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "calm", "none", "c":
		return Calm, nil
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	}
	return Calm, fmt.Errorf("unknown wind direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (w Wind) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Wind) UnmarshalText(b []byte) error {
	parsed, err := ParseWind(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
