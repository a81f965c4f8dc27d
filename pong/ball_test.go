package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same value
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

type bounceCounter struct {
	walls, paddles, scores int
}

func (c *bounceCounter) OnWallBounce()   { c.walls++ }
func (c *bounceCounter) OnPaddleBounce() { c.paddles++ }
func (c *bounceCounter) OnScore()        { c.scores++ }

func newTestBall(rng Rand, events BounceListener) *Ball {
	return NewBall(FieldWidth/2, FieldHeight/2, BallSize, FieldWidth, FieldHeight, rng, events)
}

func testPaddles() (*Paddle, *Paddle) {
	left := NewPaddle(PaddleInset, FieldHeight, PlayerSpeed)
	right := NewPaddle(FieldWidth-PaddleInset-PaddleWidth, FieldHeight, AISpeed)
	return left, right
}

func TestBallCenterHitOnRightPaddle(t *testing.T) {
	events := &bounceCounter{}
	b := newTestBall(fixedRand(0.5), events)
	left, right := testPaddles()

	b.X, b.Y = 395, 295
	b.VX, b.VY = 360, 0

	for i := 0; i < 200 && b.VX > 0; i++ {
		b.Advance(1.0/60, left, right)
	}

	require.Equal(t, 1, events.paddles)
	assert.InDelta(t, -360*1.06, b.VX, 1e-9)
	assert.Equal(t, MinVerticalSpeed, b.VY, "flat hit gets the default positive nudge")
	assert.Equal(t, right.X-b.Width-FlushEpsilon, b.X)
}

func TestBallBouncesAwayFromLeftPaddle(t *testing.T) {
	b := newTestBall(fixedRand(0.5), nil)
	left, right := testPaddles()

	b.X, b.Y = 60, 260
	b.VX, b.VY = -500, 30

	for i := 0; i < 100 && b.VX < 0; i++ {
		b.Advance(1.0/60, left, right)
	}

	require.Greater(t, b.VX, 0.0)
	assert.GreaterOrEqual(t, b.X, left.X+left.Width+FlushEpsilon)
	assert.Less(t, b.VY, 0.0, "hit above center deflects upward")
}

func TestBallDeflectionAngleLimits(t *testing.T) {
	tests := []struct {
		name   string
		offset float64 // ball center minus paddle center
	}{
		{"top edge", -55},
		{"upper half", -25},
		{"lower half", 25},
		{"bottom edge", 55},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(fixedRand(0.5), nil)
			_, right := testPaddles()

			b.X = right.X - b.Width + 1
			b.Y = right.CenterY() + tc.offset - b.Height/2
			b.VX, b.VY = 400, 0
			b.bouncePaddle(right, -1)

			angle := math.Atan2(b.VY, -b.VX)
			assert.LessOrEqual(t, math.Abs(angle), MaxDeflection+1e-9)
			assert.Equal(t, math.Signbit(tc.offset), math.Signbit(b.VY))
			assert.InDelta(t, 400*SpeedIncrease, b.Speed(), 1e-6)
		})
	}
}

func TestBallVerticalFloorKeepsSign(t *testing.T) {
	b := newTestBall(fixedRand(0.5), nil)
	left, _ := testPaddles()

	// two pixels above the paddle center
	b.X = left.X + left.Width - 1
	b.Y = left.CenterY() - 2 - b.Height/2
	b.VX, b.VY = -300, 0
	b.bouncePaddle(left, 1)

	assert.Equal(t, -MinVerticalSpeed, b.VY)
	assert.Greater(t, b.VX, 0.0)
}

func TestBallFloorRespectsSpeedCap(t *testing.T) {
	b := newTestBall(fixedRand(0.5), nil)
	_, right := testPaddles()

	b.X = right.X - b.Width + 1
	b.Y = right.CenterY() - b.Height/2
	b.VX, b.VY = MaxBallSpeed, 0
	b.bouncePaddle(right, -1)

	assert.Equal(t, MinVerticalSpeed, b.VY)
	assert.Less(t, b.VX, 0.0)
	assert.LessOrEqual(t, b.Speed(), MaxBallSpeed+1e-9)
}

func TestBallWallBounce(t *testing.T) {
	events := &bounceCounter{}
	b := newTestBall(fixedRand(0.5), events)

	b.X, b.Y = 400, 2
	b.VX, b.VY = 0, -300
	b.Advance(0.01, nil, nil)
	assert.Equal(t, 0.0, b.Y)
	assert.Equal(t, 300.0, b.VY)

	b.Y = FieldHeight - b.Height - 2
	b.VY = 300
	b.Advance(0.01, nil, nil)
	assert.Equal(t, FieldHeight-b.Height, b.Y)
	assert.Equal(t, -300.0, b.VY)

	assert.Equal(t, 2, events.walls)
}

func TestBallDoesNotTunnelAtMaxSpeed(t *testing.T) {
	b := newTestBall(fixedRand(0.5), nil)
	left, right := testPaddles()

	b.X, b.Y = 700, right.CenterY()-b.Height/2
	b.VX, b.VY = MaxBallSpeed, 0

	// one long frame covers far more than the paddle width
	b.Advance(MaxFrameDT, left, right)

	assert.Less(t, b.VX, 0.0)
	assert.Less(t, b.X, right.X)
}

func TestBallSpeedNeverExceedsMax(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		b := newTestBall(rand.New(rand.NewSource(seed)), nil)
		left := &Paddle{X: PaddleInset, Width: PaddleWidth, Height: FieldHeight}
		right := &Paddle{X: FieldWidth - PaddleInset - PaddleWidth, Width: PaddleWidth, Height: FieldHeight}

		for i := 0; i < 3000; i++ {
			b.Advance(1.0/60, left, right)
			require.LessOrEqual(t, b.Speed(), b.MaxSpeed+1e-9, "seed %d frame %d", seed, i)
			require.GreaterOrEqual(t, b.Y, 0.0)
			require.LessOrEqual(t, b.Y, FieldHeight-b.Height)
			require.Greater(t, b.X+b.Width, 0.0, "full-height paddles keep the ball in play")
			require.Less(t, b.X, float64(FieldWidth))
		}
	}
}

func TestBallResetIsIdempotent(t *testing.T) {
	b := newTestBall(rand.New(rand.NewSource(7)), nil)

	for i := 0; i < 2; i++ {
		b.Reset(RandomDirection)
		assert.Equal(t, 395.0, b.X)
		assert.Equal(t, 295.0, b.Y)
		assert.InDelta(t, BaseBallSpeed, b.Speed(), 1e-9)
		assert.LessOrEqual(t, math.Abs(math.Atan2(b.VY, math.Abs(b.VX))), MaxServeAngle+1e-9)
	}
}

func TestBallResetForcedDirection(t *testing.T) {
	b := newTestBall(rand.New(rand.NewSource(3)), nil)

	for i := 0; i < 20; i++ {
		b.Reset(ServeLeft)
		require.Less(t, b.VX, 0.0)
		b.Reset(ServeRight)
		require.Greater(t, b.VX, 0.0)
	}
}

func TestBallResetRandomDirectionUsesRand(t *testing.T) {
	b := newTestBall(fixedRand(0.2), nil)
	assert.Less(t, b.VX, 0.0)

	b = newTestBall(fixedRand(0.8), nil)
	assert.Greater(t, b.VX, 0.0)
}

func TestBallAdvanceIgnoresBadDT(t *testing.T) {
	b := newTestBall(fixedRand(0.5), nil)
	x, y := b.X, b.Y

	b.Advance(-1, nil, nil)
	b.Advance(math.NaN(), nil, nil)
	b.Advance(0, nil, nil)

	assert.Equal(t, x, b.X)
	assert.Equal(t, y, b.Y)
}
