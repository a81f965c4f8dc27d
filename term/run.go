package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jtestard/pong-series/pong"
)

// Options configures Run
type Options struct {
	HoldMs int
	TPS    int
	// OnFrame, if set, is called after every drawn frame
	OnFrame func(m *pong.Match)
}

// Run drives m on an already initialised screen until the player quits or
// ctx is cancelled. The caller owns the screen and must Fini it.
func Run(ctx context.Context, screen tcell.Screen, m *pong.Match, clock *pong.MonotonicClock, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	kb := NewKeyboard(opts.HoldMs)
	width, height := m.Field()
	r := NewRenderer(screen, width, height)

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(opts.TPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				kb.Handle(ev, clock.NowMillis())
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			dt := clock.Tick()
			m.Step(kb.Input(clock.NowMillis()), dt)
			if m.QuitRequested() {
				return nil
			}

			r.Begin()
			m.Draw(r)
			screen.Show()

			if opts.OnFrame != nil {
				opts.OnFrame(m)
			}
		}
	}
}
