// Package sim plays matches without a window: the player paddle is steered
// by a pilot and menu choices are scripted.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/jtestard/pong-series/pong"
)

// Options configures a headless run
type Options struct {
	Seed   int64
	Frames int
	// DT is the fixed frame time in seconds
	DT     float64
	BestOf int
	// Series is how many series to finish before stopping
	Series int
	// MaxRally is the paddle hits after which the pilot concedes the point
	MaxRally int
	// OnFrame, if set, is called after every step
	OnFrame func(m *pong.Match)
}

// DefaultOptions plays one best-of-3 series at 60 frames per second
func DefaultOptions() Options {
	return Options{
		Seed:     1,
		Frames:   1_000_000,
		DT:       1.0 / 60,
		BestOf:   pong.DefaultBestOf,
		Series:   1,
		MaxRally: DefaultMaxRally,
	}
}

// Counter tallies sound cues
type Counter struct {
	Walls, Paddles, Scores int
}

func (c *Counter) OnWallBounce()   { c.Walls++ }
func (c *Counter) OnPaddleBounce() { c.Paddles++ }
func (c *Counter) OnScore()        { c.Scores++ }

// SeriesResult is one finished series
type SeriesResult struct {
	Winner     pong.Side `json:"winner"`
	BestOf     int       `json:"bestOf"`
	PlayerWins int       `json:"playerWins"`
	AIWins     int       `json:"aiWins"`
}

// Result summarises a run
type Result struct {
	Frames    int            `json:"frames"`
	Games     []pong.Side    `json:"games"`
	Series    []SeriesResult `json:"series"`
	Completed bool           `json:"completed"`
	Cues      Counter        `json:"cues"`
}

// ErrInvariant is wrapped by every invariant violation Run reports
var ErrInvariant = errors.New("invariant violated")

// Run plays until opts.Series series are finished or the frame budget is spent
func Run(opts Options) (Result, error) {
	def := DefaultOptions()
	if opts.Frames <= 0 {
		opts.Frames = def.Frames
	}
	if opts.DT <= 0 {
		opts.DT = def.DT
	}
	if opts.Series <= 0 {
		opts.Series = def.Series
	}
	opts.BestOf = pong.NormalizeBestOf(opts.BestOf)

	var res Result
	clock := &pong.ManualClock{}
	m := pong.NewMatch(pong.Options{
		Clock:  clock,
		Rand:   pong.NewRand(opts.Seed),
		Sounds: &res.Cues,
	})
	pick := hotkey(opts.BestOf)
	pl := newPilot(opts.MaxRally)

	prev := m.State()
	for res.Frames < opts.Frames {
		var in pong.Input
		switch m.State() {
		case pong.PlayingState:
			in.Held = pl.held(m, res.Cues)
		case pong.ReplayMenuState:
			in.Pressed = []pong.Action{pick}
		}

		clock.Advance(opts.DT)
		m.Step(in, opts.DT)
		res.Frames++

		if err := Check(m); err != nil {
			return res, fmt.Errorf("frame %d: %w", res.Frames, err)
		}
		if opts.OnFrame != nil {
			opts.OnFrame(m)
		}

		state := m.State()
		if prev == pong.PlayingState && state != pong.PlayingState {
			res.Games = append(res.Games, m.LastGameWinner())
			if w := m.SeriesWinner(); state == pong.ReplayMenuState && w != pong.NoSide {
				pw, aw := m.SeriesWins()
				res.Series = append(res.Series, SeriesResult{
					Winner:     w,
					BestOf:     m.BestOf(),
					PlayerWins: pw,
					AIWins:     aw,
				})
				if len(res.Series) >= opts.Series {
					res.Completed = true
					return res, nil
				}
			}
		}
		prev = state
	}
	return res, nil
}

func hotkey(bestOf int) pong.Action {
	switch bestOf {
	case 5:
		return pong.ActionBestOf5
	case 7:
		return pong.ActionBestOf7
	}
	return pong.ActionBestOf3
}

// Check verifies the match invariants that must hold after every frame
func Check(m *pong.Match) error {
	_, h := m.Field()

	for _, p := range []*pong.Paddle{m.Player, m.AI} {
		if p.Y < 0 || p.Y+p.Height > h {
			return fmt.Errorf("%w: paddle at y=%.2f outside field", ErrInvariant, p.Y)
		}
	}

	b := m.Ball
	if speed := math.Hypot(b.VX, b.VY); speed > b.MaxSpeed+1e-6 {
		return fmt.Errorf("%w: ball speed %.2f above %.2f", ErrInvariant, speed, b.MaxSpeed)
	}
	if b.Y < 0 || b.Y+b.Height > h {
		return fmt.Errorf("%w: ball at y=%.2f outside field", ErrInvariant, b.Y)
	}

	ps, as := m.Score()
	if ps > pong.PointsToWin || as > pong.PointsToWin {
		return fmt.Errorf("%w: score %d-%d", ErrInvariant, ps, as)
	}

	if m.SeriesActive() {
		need := m.GamesToWin()
		pw, aw := m.SeriesWins()
		if pw > need || aw > need {
			return fmt.Errorf("%w: series wins %d-%d with %d needed", ErrInvariant, pw, aw, need)
		}
	}
	return nil
}
