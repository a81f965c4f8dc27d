package pong

// Action is a logical key the core understands. Hosts map physical keys to it.
type Action uint16

const (
	ActionMoveUp Action = 1 << iota
	ActionMoveDown
	ActionConfirm
	ActionNavUp
	ActionNavDown
	ActionBestOf3
	ActionBestOf5
	ActionBestOf7
	ActionQuit
)

// Actions is a set of actions
type Actions uint16

// Has reports whether a is in the set
func (s Actions) Has(a Action) bool {
	return s&Actions(a) != 0
}

// With returns the set plus a
func (s Actions) With(a Action) Actions {
	return s | Actions(a)
}

// Input is one frame worth of keyboard state: discrete presses in the order
// they happened and keys currently held down.
type Input struct {
	Pressed []Action
	Held    Actions
}

// WasPressed reports whether a was pressed this frame
func (in Input) WasPressed(a Action) bool {
	for _, p := range in.Pressed {
		if p == a {
			return true
		}
	}
	return false
}

// moveDir reduces the held movement keys to -1, 0 or +1
func (in Input) moveDir() int {
	dir := 0
	if in.Held.Has(ActionMoveUp) {
		dir--
	}
	if in.Held.Has(ActionMoveDown) {
		dir++
	}
	return dir
}
