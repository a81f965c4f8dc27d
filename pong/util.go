package pong

import "math"

// Rect is an integer-snapped bounding box used for collision and render queries
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// snapRect truncates a fractional box the same way for every entity
func snapRect(x, y, w, h float64) Rect {
	return Rect{X: int(x), Y: int(y), W: int(w), H: int(h)}
}

// Overlaps reports whether two rectangles share any area. Touching edges do
// not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// State is an enum that represents all possible match states
type State byte

const (
	PlayingState State = iota
	IntermissionState
	ReplayMenuState
)

func (s State) String() string {
	switch s {
	case PlayingState:
		return "PLAYING"
	case IntermissionState:
		return "INTERMISSION"
	case ReplayMenuState:
		return "REPLAY_MENU"
	}
	return "UNKNOWN"
}

// MarshalText lets snapshots carry the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Side identifies one of the two competitors
type Side byte

const (
	NoSide Side = iota
	PlayerSide
	AISide
)

func (s Side) String() string {
	switch s {
	case PlayerSide:
		return "Player"
	case AISide:
		return "AI"
	}
	return ""
}

// MarshalText renders the side as its display name, empty for NoSide
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sign maps any int onto {-1, 0, +1}
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// sanitizeDT turns a bad frame delta into something the simulation can step
// with: negative and NaN become zero, huge stalls are capped.
func sanitizeDT(dt float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 0
	}
	if dt > MaxFrameDT {
		return MaxFrameDT
	}
	return dt
}
