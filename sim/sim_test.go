package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtestard/pong-series/pong"
)

func TestRunCompletesSeries(t *testing.T) {
	for _, bestOf := range []int{3, 5, 7} {
		opts := DefaultOptions()
		opts.Seed = 42
		opts.BestOf = bestOf

		res, err := Run(opts)
		require.NoError(t, err)
		require.True(t, res.Completed, "best of %d did not finish in %d frames", bestOf, res.Frames)
		require.Len(t, res.Series, 1)

		s := res.Series[0]
		need := pong.GamesNeeded(bestOf)
		assert.Equal(t, bestOf, s.BestOf)
		assert.NotEqual(t, pong.NoSide, s.Winner)
		assert.Equal(t, need, max(s.PlayerWins, s.AIWins))
		assert.Less(t, min(s.PlayerWins, s.AIWins), need)

		// the opening standalone game plus every series game
		assert.Len(t, res.Games, 1+s.PlayerWins+s.AIWins)
		assert.Equal(t, s.Winner, res.Games[len(res.Games)-1])

		assert.GreaterOrEqual(t, res.Cues.Scores, pong.PointsToWin*len(res.Games))
		assert.Positive(t, res.Cues.Paddles)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7

	a, err := Run(opts)
	require.NoError(t, err)
	b, err := Run(opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunMultipleSeries(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 3
	opts.Series = 2

	res, err := Run(opts)
	require.NoError(t, err)
	require.True(t, res.Completed)
	assert.Len(t, res.Series, 2)
}

func TestRunStopsAtFrameBudget(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 30

	res, err := Run(opts)
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Equal(t, 30, res.Frames)
	assert.Empty(t, res.Series)
}

func TestRunOnFrame(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 10

	calls := 0
	opts.OnFrame = func(*pong.Match) { calls++ }

	_, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 10, calls)
}

func TestCheckReportsViolations(t *testing.T) {
	m := pong.NewMatch(pong.Options{Clock: &pong.ManualClock{}, Rand: pong.NewRand(1)})
	require.NoError(t, Check(m))

	m.Ball.VX = m.Ball.MaxSpeed * 2
	err := Check(m)
	assert.True(t, errors.Is(err, ErrInvariant))
	assert.ErrorContains(t, err, "ball speed")

	m.Ball.VX = 100
	m.AI.Y = -5
	assert.ErrorContains(t, Check(m), "paddle")
}

func TestPilotConcedesLongRallies(t *testing.T) {
	m := pong.NewMatch(pong.Options{Clock: &pong.ManualClock{}, Rand: pong.NewRand(1)})
	p := newPilot(4)

	// ball just above the paddle center
	m.Ball.Y = m.Player.CenterY() - 20
	m.Ball.VX = -300

	held := p.held(m, Counter{Paddles: 1})
	assert.False(t, held.Has(pong.ActionMoveDown), "aims rather than running")

	held = p.held(m, Counter{Paddles: 4})
	assert.True(t, held.Has(pong.ActionMoveDown), "runs from the ball")

	// a point resets the rally count
	held = p.held(m, Counter{Paddles: 4, Scores: 1})
	assert.False(t, held.Has(pong.ActionMoveDown))
}
