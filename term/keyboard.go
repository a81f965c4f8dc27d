package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jtestard/pong-series/pong"
)

// DefaultHoldMs is how long a movement key counts as held after its last
// press or auto-repeat.
const DefaultHoldMs = 180

// binding is what one physical key means: a discrete press, a held movement,
// or both.
type binding struct {
	press []pong.Action
	hold  pong.Action
}

var (
	upKey   = binding{press: []pong.Action{pong.ActionNavUp}, hold: pong.ActionMoveUp}
	downKey = binding{press: []pong.Action{pong.ActionNavDown}, hold: pong.ActionMoveDown}
	confirm = binding{press: []pong.Action{pong.ActionConfirm}}
	quit    = binding{press: []pong.Action{pong.ActionQuit}}
)

var runeBindings = map[rune]binding{
	'w': upKey,
	'W': upKey,
	's': downKey,
	'S': downKey,
	' ': confirm,
	'r': confirm,
	'R': confirm,
	'3': {press: []pong.Action{pong.ActionBestOf3}},
	'5': {press: []pong.Action{pong.ActionBestOf5}},
	'7': {press: []pong.Action{pong.ActionBestOf7}},
	'q': quit,
	'Q': quit,
}

var keyBindings = map[tcell.Key]binding{
	tcell.KeyUp:     upKey,
	tcell.KeyDown:   downKey,
	tcell.KeyEnter:  confirm,
	tcell.KeyEscape: quit,
	tcell.KeyCtrlC:  quit,
}

func lookup(ev *tcell.EventKey) (binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := runeBindings[ev.Rune()]
		return b, ok
	}
	b, ok := keyBindings[ev.Key()]
	return b, ok
}

// Keyboard turns tcell key events into per-frame pong.Input. Terminals never
// report key releases, so a movement key stays held until HoldMs passes
// without another press or repeat.
type Keyboard struct {
	holdMs  int64
	pressed []pong.Action
	expires map[pong.Action]int64
}

func NewKeyboard(holdMs int) *Keyboard {
	if holdMs <= 0 {
		holdMs = DefaultHoldMs
	}
	return &Keyboard{
		holdMs:  int64(holdMs),
		expires: make(map[pong.Action]int64),
	}
}

// Handle records a key event that happened at now (milliseconds). It reports
// whether the key is bound.
func (k *Keyboard) Handle(ev *tcell.EventKey, now int64) bool {
	b, ok := lookup(ev)
	if !ok {
		return false
	}
	k.pressed = append(k.pressed, b.press...)

	switch b.hold {
	case pong.ActionMoveUp:
		delete(k.expires, pong.ActionMoveDown)
		k.expires[b.hold] = now + k.holdMs
	case pong.ActionMoveDown:
		delete(k.expires, pong.ActionMoveUp)
		k.expires[b.hold] = now + k.holdMs
	}
	return true
}

// Input drains the presses seen since the last call and reports which
// movement keys are still held at now.
func (k *Keyboard) Input(now int64) pong.Input {
	in := pong.Input{Pressed: k.pressed}
	k.pressed = nil

	for a, until := range k.expires {
		if now >= until {
			delete(k.expires, a)
			continue
		}
		in.Held = in.Held.With(a)
	}
	return in
}
