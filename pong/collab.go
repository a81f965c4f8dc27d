package pong

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for serves and opponent mistakes.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. A zero seed picks one from the wall clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// BounceListener consumes ball collision events
type BounceListener interface {
	OnWallBounce()
	OnPaddleBounce()
}

// Sounds is the audio collaborator. Implementations must not block.
type Sounds interface {
	BounceListener
	OnScore()
}

// NopSounds discards every cue
type NopSounds struct{}

func (NopSounds) OnWallBounce()   {}
func (NopSounds) OnPaddleBounce() {}
func (NopSounds) OnScore()        {}

// Clock supplies monotonic timestamps in milliseconds
type Clock interface {
	NowMillis() int64
}

// MonotonicClock reads the process monotonic clock and also measures frame
// deltas for hosts.
type MonotonicClock struct {
	start time.Time
	last  time.Time
}

func NewMonotonicClock() *MonotonicClock {
	now := time.Now()
	return &MonotonicClock{start: now, last: now}
}

func (c *MonotonicClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// Tick returns the seconds elapsed since the previous Tick
func (c *MonotonicClock) Tick() float64 {
	now := time.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// ManualClock only moves when told to. Used by the simulator and tests.
type ManualClock struct {
	Millis int64
}

func (c *ManualClock) NowMillis() int64 {
	return c.Millis
}

// Advance moves the clock forward by dt seconds
func (c *ManualClock) Advance(dt float64) {
	c.Millis += int64(dt * 1000)
}

// TextSize selects one of the three HUD fonts
type TextSize byte

const (
	TextSmall TextSize = iota
	TextNormal
	TextLarge
)

// Points returns the nominal font size
func (s TextSize) Points() float64 {
	switch s {
	case TextSmall:
		return 22
	case TextLarge:
		return 54
	}
	return 30
}

// Anchor says which point of a text block the given coordinates refer to
type Anchor byte

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorCenter
)

// Origin converts an anchored position of a w×h block into its top-left corner
func (a Anchor) Origin(x, y, w, h float64) (float64, float64) {
	switch a {
	case AnchorTop:
		return x - w/2, y
	case AnchorCenter:
		return x - w/2, y - h/2
	}
	return x, y
}

// Renderer receives draw requests in field coordinates. Colors and fonts are
// the renderer's business.
type Renderer interface {
	FillRect(r Rect)
	FillEllipse(r Rect)
	Line(x1, y1, x2, y2 float64)
	// Overlay darkens everything drawn so far
	Overlay()
	Text(s string, x, y float64, size TextSize, anchor Anchor)
}
