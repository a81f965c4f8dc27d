package pong

// opponent drives the right paddle. It re-decides only every reaction
// interval and keeps moving in the last chosen direction in between.
type opponent struct {
	deadzone   float64
	reactionMs int64
	humanError float64
	centerBias float64

	lastDecision int64
	decided      bool
	dir          int
}

func newOpponent() *opponent {
	return &opponent{
		deadzone:   AIDeadzone,
		reactionMs: AIReactionMillis,
		humanError: AIHumanError,
		centerBias: AICenterBias,
	}
}

// reset forgets the current decision so the next frame decides afresh
func (o *opponent) reset() {
	o.decided = false
	o.dir = 0
}

// step updates the decision if due and moves the paddle
func (o *opponent) step(now int64, dt float64, ball *Ball, paddle *Paddle, fieldHeight float64, rng Rand) {
	approaching := ball.VX > 0

	if o.due(now) {
		o.lastDecision = now
		o.decided = true
		o.decide(approaching, ball, paddle, fieldHeight)

		if approaching && rng.Float64() < o.humanError {
			o.dir = 0
		}
	}

	// drift home while the ball is on its way to the player
	if !approaching && o.dir == 0 {
		center := fieldHeight / 2
		switch {
		case paddle.CenterY() < center-AICenterBand:
			if rng.Float64() < o.centerBias {
				o.dir = 1
			}
		case paddle.CenterY() > center+AICenterBand:
			if rng.Float64() < o.centerBias {
				o.dir = -1
			}
		}
	}

	paddle.Move(o.dir, dt, fieldHeight)
}

func (o *opponent) due(now int64) bool {
	if !o.decided {
		return true
	}
	// a clock that went backwards restarts the window instead of stalling
	if now < o.lastDecision {
		return true
	}
	return now-o.lastDecision >= o.reactionMs
}

func (o *opponent) decide(approaching bool, ball *Ball, paddle *Paddle, fieldHeight float64) {
	target := fieldHeight / 2
	if approaching {
		target = ball.CenterY()
	}
	center := paddle.CenterY()

	switch {
	case target < center-o.deadzone:
		o.dir = -1
	case target > center+o.deadzone:
		o.dir = 1
	default:
		o.dir = 0
	}
}
