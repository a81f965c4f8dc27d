package pong

// Paddle is a vertical bat. X is fixed for its lifetime, Y moves.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"` // pixels per second
}

// NewPaddle creates a paddle at x, vertically centered in the field
func NewPaddle(x, fieldHeight, speed float64) *Paddle {
	p := &Paddle{
		X:      x,
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Speed:  speed,
	}
	p.Recenter(fieldHeight)
	return p
}

// Move shifts the paddle by dir*Speed*dt and keeps it inside the field.
// Only the sign of dir is used.
func (p *Paddle) Move(dir int, dt, fieldHeight float64) {
	dir = sign(dir)
	if dir == 0 {
		return
	}
	dt = sanitizeDT(dt)
	p.Y += float64(dir) * p.Speed * dt
	p.clampY(fieldHeight)
}

// AutoTrack steps toward the ball's vertical center unless it is already
// within TrackDeadzone of the paddle center.
func (p *Paddle) AutoTrack(ballY, ballHeight, fieldHeight, dt float64) {
	target := ballY + ballHeight/2
	center := p.CenterY()

	dir := 0
	if target < center-TrackDeadzone {
		dir = -1
	} else if target > center+TrackDeadzone {
		dir = 1
	}
	p.Move(dir, dt, fieldHeight)
}

// Recenter puts the paddle back in the vertical middle of the field
func (p *Paddle) Recenter(fieldHeight float64) {
	p.Y = float64(int(fieldHeight)/2 - int(p.Height)/2)
	p.clampY(fieldHeight)
}

// CenterY is the vertical center at full precision
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Rect returns the truncated bounding box
func (p *Paddle) Rect() Rect {
	return snapRect(p.X, p.Y, p.Width, p.Height)
}

func (p *Paddle) clampY(fieldHeight float64) {
	maxY := fieldHeight - p.Height
	if maxY < 0 {
		maxY = 0
	}
	p.Y = clamp(p.Y, 0, maxY)
}
