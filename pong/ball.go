package pong

import "math"

// Direction forces the horizontal sign of a serve. RandomDirection lets the
// ball pick a side.
type Direction int

const (
	ServeLeft       Direction = -1
	RandomDirection Direction = 0
	ServeRight      Direction = 1
)

// Ball is the moving square. Velocities are in pixels per second.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`

	BaseSpeed     float64 `json:"-"`
	MaxSpeed      float64 `json:"-"`
	SpeedIncrease float64 `json:"-"`

	spawnX, spawnY float64
	fieldW, fieldH float64

	rng    Rand
	events BounceListener
}

// NewBall creates a ball that serves from (spawnX, spawnY) and stays inside a
// fieldW×fieldH field. events may be nil.
func NewBall(spawnX, spawnY, size, fieldW, fieldH float64, rng Rand, events BounceListener) *Ball {
	if rng == nil {
		rng = NewRand(0)
	}
	if events == nil {
		events = NopSounds{}
	}
	b := &Ball{
		Width:         size,
		Height:        size,
		BaseSpeed:     BaseBallSpeed,
		MaxSpeed:      MaxBallSpeed,
		SpeedIncrease: SpeedIncrease,
		spawnX:        spawnX,
		spawnY:        spawnY,
		fieldW:        fieldW,
		fieldH:        fieldH,
		rng:           rng,
		events:        events,
	}
	b.Reset(RandomDirection)
	return b
}

// Reset moves the ball back to the spawn point and serves it at a fresh
// mostly-horizontal angle.
func (b *Ball) Reset(dir Direction) {
	b.X = b.spawnX - b.Width/2
	b.Y = b.spawnY - b.Height/2

	angle := (b.rng.Float64()*2 - 1) * MaxServeAngle
	side := 1.0
	switch {
	case dir < 0:
		side = -1
	case dir > 0:
		side = 1
	case b.rng.Float64() < 0.5:
		side = -1
	}
	b.VX = side * b.BaseSpeed * math.Cos(angle)
	b.VY = b.BaseSpeed * math.Sin(angle)
}

// Advance integrates one frame of motion in sub-steps no longer than
// SubstepPixels so a fast ball cannot skip over a paddle.
func (b *Ball) Advance(dt float64, left, right *Paddle) {
	dt = sanitizeDT(dt)
	if dt == 0 {
		return
	}

	maxComp := math.Max(math.Abs(b.VX), math.Abs(b.VY))
	steps := int(maxComp * dt / SubstepPixels)
	if steps < 1 {
		steps = 1
	}
	stepDT := dt / float64(steps)

	for i := 0; i < steps; i++ {
		b.X += b.VX * stepDT
		b.Y += b.VY * stepDT

		b.bounceWalls()

		r := b.Rect()
		if b.VX < 0 && left != nil && r.Overlaps(left.Rect()) {
			b.bouncePaddle(left, 1)
		} else if b.VX > 0 && right != nil && r.Overlaps(right.Rect()) {
			b.bouncePaddle(right, -1)
		}
	}
}

func (b *Ball) bounceWalls() {
	switch {
	case b.Y <= 0:
		b.Y = 0
	case b.Y+b.Height >= b.fieldH:
		b.Y = b.fieldH - b.Height
	default:
		return
	}
	b.VY = -b.VY
	b.events.OnWallBounce()
}

// bouncePaddle sends the ball back out, out = +1 for the left paddle and -1
// for the right one.
func (b *Ball) bouncePaddle(p *Paddle, out float64) {
	if out > 0 {
		b.X = p.X + p.Width + FlushEpsilon
	} else {
		b.X = p.X - b.Width - FlushEpsilon
	}

	rel := clamp((b.CenterY()-p.CenterY())/(p.Height/2), -1, 1)
	angle := rel * MaxDeflection

	speed := math.Min(b.Speed()*b.SpeedIncrease, b.MaxSpeed)
	b.VX = out * speed * math.Cos(angle)
	b.VY = speed * math.Sin(angle)

	if math.Abs(b.VY) < MinVerticalSpeed {
		s := b.VY
		if s == 0 {
			s = rel
		}
		if s == 0 {
			s = 1
		}
		b.VY = math.Copysign(MinVerticalSpeed, s)

		// the floor must not push the ball past its speed cap
		if math.Hypot(b.VX, b.VY) > b.MaxSpeed {
			b.VX = out * math.Sqrt(b.MaxSpeed*b.MaxSpeed-b.VY*b.VY)
		}
	}

	b.events.OnPaddleBounce()
}

// Speed is the magnitude of the velocity vector
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

func (b *Ball) CenterY() float64 {
	return b.Y + b.Height/2
}

// Rect returns the truncated bounding box
func (b *Ball) Rect() Rect {
	return snapRect(b.X, b.Y, b.Width, b.Height)
}
