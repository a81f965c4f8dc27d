// Package sfx plays short generated tones for ball and score events.
package sfx

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	// MinGap is the shortest interval between two plays of the same cue
	MinGap = 40 * time.Millisecond
)

// Cue names a sound event
type Cue byte

const (
	CueWall Cue = iota
	CuePaddle
	CueScore
)

type tone struct {
	freq   float64
	dur    time.Duration
	volume float64
}

var tones = map[Cue]tone{
	CueWall:   {freq: 600, dur: 70 * time.Millisecond, volume: 0.35},
	CuePaddle: {freq: 440, dur: 55 * time.Millisecond, volume: 0.40},
	CueScore:  {freq: 220, dur: 120 * time.Millisecond, volume: 0.45},
}

// Config controls playback
type Config struct {
	Enabled bool
	Volume  float64 // 0..1
}

// DefaultConfig returns audio on at full volume
func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 1}
}

type sink interface {
	play(s beep.Streamer)
}

type speakerSink struct {
	mixer *beep.Mixer
}

func (s *speakerSink) play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Player turns match events into tones. A Player without an output device
// accepts every call and plays nothing.
type Player struct {
	mu     sync.Mutex
	out    sink
	volume float64
	now    func() time.Time
	last   map[Cue]time.Time
	closed bool
}

// New returns a silent player
func New() *Player {
	return &Player{
		now:  time.Now,
		last: make(map[Cue]time.Time),
	}
}

// Open initializes the speaker. On failure it still returns a usable silent
// player together with the error so the caller can report it.
func Open(cfg Config) (*Player, error) {
	p := New()
	if !cfg.Enabled {
		return p, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return p, err
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	p.out = &speakerSink{mixer: mixer}
	p.volume = clampVolume(cfg.Volume)
	return p, nil
}

// Close stops playback. Further cues are ignored.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	if _, ok := p.out.(*speakerSink); ok {
		speaker.Clear()
		speaker.Close()
	}
	p.out = nil
}

func (p *Player) OnWallBounce()   { p.trigger(CueWall) }
func (p *Player) OnPaddleBounce() { p.trigger(CuePaddle) }
func (p *Player) OnScore()        { p.trigger(CueScore) }

// trigger plays c unless the same cue played less than MinGap ago. It
// reports whether a sound was queued.
func (p *Player) trigger(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil {
		return false
	}
	now := p.now()
	if last, ok := p.last[c]; ok && now.Sub(last) < MinGap {
		return false
	}
	p.last[c] = now

	p.out.play(p.streamer(c))
	return true
}

func (p *Player) streamer(c Cue) beep.Streamer {
	var st beep.Streamer = newTone(tones[c], sampleRate)
	if p.volume >= 1 {
		return st
	}
	return &effects.Volume{
		Streamer: st,
		Base:     2,
		Volume:   math.Log2(p.volume),
		Silent:   p.volume <= 0,
	}
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toneStreamer is a sine wave with a linear fade-out
type toneStreamer struct {
	t    tone
	rate beep.SampleRate
	n    int
	pos  int
}

func newTone(t tone, rate beep.SampleRate) *toneStreamer {
	return &toneStreamer{t: t, rate: rate, n: rate.N(t.dur)}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.n {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.n {
			return i, true
		}
		t := float64(s.pos) / float64(s.rate)
		amp := s.t.volume * (1 - float64(s.pos)/float64(s.n))
		v := amp * math.Sin(2*math.Pi*s.t.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }
