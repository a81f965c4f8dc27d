package sim

import "github.com/jtestard/pong-series/pong"

// DefaultMaxRally is how many paddle hits a rally may last before the pilot
// lets the ball through.
const DefaultMaxRally = 24

// aimOffset is where on the paddle the pilot tries to take the ball, as a
// fraction of the half height
const aimOffset = 0.7

// pilot steers the player paddle through held movement keys. It angles its
// returns away from the opponent and concedes rallies that run too long so a
// headless game always ends.
type pilot struct {
	maxRally int
	hits     int
	scores   int
}

func newPilot(maxRally int) *pilot {
	if maxRally <= 0 {
		maxRally = DefaultMaxRally
	}
	return &pilot{maxRally: maxRally}
}

// held picks the movement key to hold this frame. cues is the running tally
// so far.
func (p *pilot) held(m *pong.Match, cues Counter) pong.Actions {
	if cues.Scores != p.scores {
		p.scores = cues.Scores
		p.hits = cues.Paddles
	}

	ball := m.Ball.CenterY()
	center := m.Player.CenterY()
	_, h := m.Field()

	var target float64
	switch {
	case cues.Paddles-p.hits >= p.maxRally:
		// run from the ball
		if ball < center {
			return pong.Actions(0).With(pong.ActionMoveDown)
		}
		return pong.Actions(0).With(pong.ActionMoveUp)

	case m.Ball.VX < 0:
		// take the ball off-center, sending it toward the side the
		// opponent is not covering
		rel := aimOffset
		if m.AI.CenterY() > h/2 {
			rel = -aimOffset
		}
		target = ball - rel*m.Player.Height/2

	default:
		target = h / 2
	}

	switch {
	case target < center-pong.TrackDeadzone:
		return pong.Actions(0).With(pong.ActionMoveUp)
	case target > center+pong.TrackDeadzone:
		return pong.Actions(0).With(pong.ActionMoveDown)
	}
	return 0
}
