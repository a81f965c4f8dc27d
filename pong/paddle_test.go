package pong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaddleMoveStaysInField(t *testing.T) {
	dirs := []int{-7, -1, 0, 1, 3}
	dts := []float64{-1, 0, 0.016, 0.25, 1, 10, math.NaN()}

	for _, dir := range dirs {
		for _, dt := range dts {
			p := NewPaddle(PaddleInset, FieldHeight, PlayerSpeed)
			for i := 0; i < 50; i++ {
				p.Move(dir, dt, FieldHeight)
				require.GreaterOrEqual(t, p.Y, 0.0, "dir=%d dt=%v", dir, dt)
				require.LessOrEqual(t, p.Y, FieldHeight-p.Height, "dir=%d dt=%v", dir, dt)
			}
		}
	}
}

func TestPaddleMoveDistance(t *testing.T) {
	p := NewPaddle(PaddleInset, FieldHeight, PlayerSpeed)
	start := p.Y

	p.Move(1, 0.1, FieldHeight)
	assert.InDelta(t, start+42, p.Y, 1e-9)

	p.Move(-5, 0.1, FieldHeight)
	assert.InDelta(t, start, p.Y, 1e-9, "only the sign of the direction counts")

	p.Move(0, 0.1, FieldHeight)
	assert.InDelta(t, start, p.Y, 1e-9)
}

func TestPaddleRecenter(t *testing.T) {
	p := NewPaddle(PaddleInset, FieldHeight, PlayerSpeed)
	assert.Equal(t, 250.0, p.Y)
	assert.Equal(t, 300.0, p.CenterY())

	p.Y = 0
	p.Recenter(FieldHeight)
	assert.Equal(t, 250.0, p.Y)
}

func TestPaddleAutoTrack(t *testing.T) {
	tests := []struct {
		name  string
		ballY float64
		want  float64
	}{
		{"inside deadzone", 298, 250},
		{"edge of deadzone", 300, 250},
		{"above", 100, 250 - 4.2},
		{"below", 500, 250 + 4.2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(FieldWidth-20, FieldHeight, PlayerSpeed)
			p.AutoTrack(tc.ballY, BallSize, FieldHeight, 0.01)
			assert.InDelta(t, tc.want, p.Y, 1e-9)
		})
	}
}

func TestPaddleAutoTrackStaysInField(t *testing.T) {
	p := NewPaddle(PaddleInset, FieldHeight, PlayerSpeed)
	for i := 0; i < 500; i++ {
		p.AutoTrack(-1000, BallSize, FieldHeight, 0.05)
	}
	assert.Equal(t, 0.0, p.Y)

	for i := 0; i < 500; i++ {
		p.AutoTrack(5000, BallSize, FieldHeight, 0.05)
	}
	assert.Equal(t, FieldHeight-p.Height, p.Y)
}

func TestPaddleRectTruncates(t *testing.T) {
	p := &Paddle{X: 10.9, Y: 99.99, Width: 10, Height: 100}
	assert.Equal(t, Rect{X: 10, Y: 99, W: 10, H: 100}, p.Rect())
	assert.Equal(t, 99.99, p.Y, "position keeps full precision")
}
