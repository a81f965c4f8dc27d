package pong

// MenuContext changes the framing of the replay menu, not its options
type MenuContext byte

const (
	FirstChoiceMenu MenuContext = iota // after the standalone opening game
	PostSeriesMenu
)

func (c MenuContext) String() string {
	if c == PostSeriesMenu {
		return "POST_SERIES"
	}
	return "FIRST_CHOICE"
}

func (c MenuContext) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MenuOption is one line of the replay menu. BestOf is zero for Exit.
type MenuOption struct {
	Label  string
	BestOf int
}

// IsExit reports whether choosing the option ends the program
func (o MenuOption) IsExit() bool {
	return o.BestOf == 0
}

var menuOptions = [...]MenuOption{
	{Label: "Best of 3", BestOf: 3},
	{Label: "Best of 5", BestOf: 5},
	{Label: "Best of 7", BestOf: 7},
	{Label: "Exit"},
}

// MenuOptions returns the fixed replay menu
func MenuOptions() []MenuOption {
	out := make([]MenuOption, len(menuOptions))
	copy(out, menuOptions[:])
	return out
}

// wrapIndex maps any int onto a valid menu index
func wrapIndex(i int) int {
	n := len(menuOptions)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// hotkeyOption maps a best-of hotkey onto its menu option
func hotkeyOption(a Action) (MenuOption, bool) {
	switch a {
	case ActionBestOf3:
		return menuOptions[0], true
	case ActionBestOf5:
		return menuOptions[1], true
	case ActionBestOf7:
		return menuOptions[2], true
	}
	return MenuOption{}, false
}

// NormalizeBestOf returns bestOf when it is one of the offered series
// lengths and DefaultBestOf otherwise.
func NormalizeBestOf(bestOf int) int {
	for _, o := range menuOptions {
		if !o.IsExit() && o.BestOf == bestOf {
			return bestOf
		}
	}
	return DefaultBestOf
}

// GamesNeeded is the number of games that wins a best-of-N series
func GamesNeeded(bestOf int) int {
	return NormalizeBestOf(bestOf)/2 + 1
}
