package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtestard/pong-series/pong"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func cell(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func rowText(screen tcell.Screen, y, from, n int) string {
	out := make([]rune, 0, n)
	for x := from; x < from+n; x++ {
		out = append(out, cell(screen, x, y))
	}
	return string(out)
}

func TestRendererScalesRects(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, pong.FieldWidth, pong.FieldHeight)
	r.Begin()

	// 10px per column, 25px per row
	r.FillRect(pong.Rect{X: 10, Y: 250, W: 10, H: 100})
	screen.Show()

	for y := 10; y < 14; y++ {
		assert.Equal(t, '█', cell(screen, 1, y), "row %d", y)
	}
	assert.NotEqual(t, '█', cell(screen, 1, 9))
	assert.NotEqual(t, '█', cell(screen, 1, 14))
	assert.NotEqual(t, '█', cell(screen, 2, 10))
}

func TestRendererSmallShapesStayVisible(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, pong.FieldWidth, pong.FieldHeight)
	r.Begin()

	r.FillEllipse(pong.Rect{X: 395, Y: 295, W: 10, H: 10})
	r.FillEllipse(pong.Rect{X: 0, Y: 0, W: 0, H: 10})
	screen.Show()

	assert.Equal(t, '●', cell(screen, 39, 11))
	assert.NotEqual(t, '●', cell(screen, 0, 0))
}

func TestRendererClipsOffscreen(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, pong.FieldWidth, pong.FieldHeight)
	r.Begin()

	assert.NotPanics(t, func() {
		r.FillRect(pong.Rect{X: -50, Y: -50, W: 2000, H: 2000})
		r.Text("far away", 5000, 5000, pong.TextNormal, pong.AnchorTopLeft)
		r.Line(-100, -100, 900, 700)
	})
}

func TestRendererCenterLine(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, pong.FieldWidth, pong.FieldHeight)
	r.Begin()

	r.Line(400, 0, 400, 600)
	screen.Show()

	assert.Equal(t, '│', cell(screen, 40, 0))
	assert.Equal(t, '│', cell(screen, 40, 23))
	assert.NotEqual(t, '│', cell(screen, 41, 12))
}

func TestRendererTextAnchors(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, pong.FieldWidth, pong.FieldHeight)
	r.Begin()

	r.Text("abcd", 400, 300, pong.TextLarge, pong.AnchorCenter)
	r.Text("xy", 400, 8, pong.TextSmall, pong.AnchorTop)
	r.Text("7", 200, 20, pong.TextNormal, pong.AnchorTopLeft)
	screen.Show()

	assert.Equal(t, "abcd", rowText(screen, 12, 38, 4))
	assert.Equal(t, "xy", rowText(screen, 0, 39, 2))
	assert.Equal(t, '7', cell(screen, 20, 0))
}

func TestRendererOverlayDims(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, pong.FieldWidth, pong.FieldHeight)
	r.Begin()

	r.FillRect(pong.Rect{X: 10, Y: 250, W: 10, H: 100})
	r.Overlay()
	r.Text("hi", 0, 0, pong.TextNormal, pong.AnchorTopLeft)
	screen.Show()

	ch, _, style, _ := screen.GetContent(1, 10)
	assert.Equal(t, '█', ch)
	assert.Equal(t, dimStyle, style)

	_, _, style, _ = screen.GetContent(0, 0)
	assert.Equal(t, objStyle, style)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestKeyboardHoldWindow(t *testing.T) {
	kb := NewKeyboard(180)

	require.True(t, kb.Handle(key(tcell.KeyUp), 0))

	in := kb.Input(0)
	assert.Equal(t, []pong.Action{pong.ActionNavUp}, in.Pressed)
	assert.True(t, in.Held.Has(pong.ActionMoveUp))

	in = kb.Input(100)
	assert.Empty(t, in.Pressed)
	assert.True(t, in.Held.Has(pong.ActionMoveUp))

	// auto-repeat extends the hold
	kb.Handle(key(tcell.KeyUp), 150)
	assert.True(t, kb.Input(300).Held.Has(pong.ActionMoveUp))
	assert.False(t, kb.Input(330).Held.Has(pong.ActionMoveUp))
}

func TestKeyboardOppositeKeyReleasesHeld(t *testing.T) {
	kb := NewKeyboard(0)

	kb.Handle(char('w'), 0)
	kb.Handle(char('s'), 10)

	in := kb.Input(20)
	assert.Equal(t, []pong.Action{pong.ActionNavUp, pong.ActionNavDown}, in.Pressed)
	assert.False(t, in.Held.Has(pong.ActionMoveUp))
	assert.True(t, in.Held.Has(pong.ActionMoveDown))
}

func TestKeyboardBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want pong.Action
	}{
		{"enter", key(tcell.KeyEnter), pong.ActionConfirm},
		{"space", char(' '), pong.ActionConfirm},
		{"r", char('r'), pong.ActionConfirm},
		{"3", char('3'), pong.ActionBestOf3},
		{"5", char('5'), pong.ActionBestOf5},
		{"7", char('7'), pong.ActionBestOf7},
		{"escape", key(tcell.KeyEscape), pong.ActionQuit},
		{"q", char('q'), pong.ActionQuit},
		{"down arrow", key(tcell.KeyDown), pong.ActionNavDown},
		{"S", char('S'), pong.ActionNavDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeyboard(DefaultHoldMs)
			require.True(t, kb.Handle(tt.ev, 0))
			assert.True(t, kb.Input(0).WasPressed(tt.want))
		})
	}

	kb := NewKeyboard(DefaultHoldMs)
	assert.False(t, kb.Handle(char('x'), 0))
	assert.Empty(t, kb.Input(0).Pressed)
}

func TestRunQuitsOnEscape(t *testing.T) {
	screen := newScreen(t)
	clock := pong.NewMonotonicClock()
	m := pong.NewMatch(pong.Options{Clock: clock, Rand: pong.NewRand(7)})

	require.NoError(t, screen.PostEvent(key(tcell.KeyEscape)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, Run(ctx, screen, m, clock, Options{TPS: 120}))
	assert.True(t, m.QuitRequested())
}

func TestRunStopsWithContext(t *testing.T) {
	screen := newScreen(t)
	clock := pong.NewMonotonicClock()
	m := pong.NewMatch(pong.Options{Clock: clock, Rand: pong.NewRand(7)})

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	frames := 0
	err := Run(ctx, screen, m, clock, Options{
		TPS:     60,
		OnFrame: func(*pong.Match) { frames++ },
	})
	require.NoError(t, err)
	assert.False(t, m.QuitRequested())
	assert.Positive(t, frames)

	// the field is on screen: player paddle in column 1, center line in 40
	assert.Equal(t, '█', cell(screen, 1, 12))
	assert.Equal(t, '│', cell(screen, 40, 23))
}
