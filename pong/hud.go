package pong

import "fmt"

const (
	menuSpacing = 36.0
	menuMarker  = "► "
	menuBlank   = "   "
)

// Draw issues the draw requests for the current frame
func (m *Match) Draw(r Renderer) {
	w, h := m.width, m.height

	r.FillRect(m.Player.Rect())
	r.FillRect(m.AI.Rect())
	r.FillEllipse(m.Ball.Rect())
	r.Line(w/2, 0, w/2, h)

	r.Text(fmt.Sprint(m.playerScore), float64(int(w)/4), 20, TextNormal, AnchorTopLeft)
	r.Text(fmt.Sprint(m.aiScore), float64(int(w)*3/4), 20, TextNormal, AnchorTopLeft)
	r.Text(m.seriesLine(), w/2, 8, TextSmall, AnchorTop)

	switch m.state {
	case IntermissionState:
		m.drawIntermission(r)
	case ReplayMenuState:
		m.drawMenu(r)
	}
}

func (m *Match) seriesLine() string {
	if !m.seriesActive {
		return fmt.Sprintf("Single game (first to %d).", PointsToWin)
	}
	return fmt.Sprintf("Series: Player %d - %d AI   (Best of %d; First to %d)",
		m.playerWins, m.aiWins, m.bestOf, m.GamesToWin())
}

func (m *Match) drawIntermission(r Renderer) {
	cx, cy := m.width/2, m.height/2
	r.Overlay()
	r.Text(fmt.Sprintf("%s won the game!", m.gameWinner), cx, cy-16, TextLarge, AnchorCenter)
	r.Text("Next game starting... (Press Enter/Space to skip)", cx, cy+36, TextSmall, AnchorCenter)
}

// MenuTitle returns the headline and prompt for the replay menu
func (m *Match) MenuTitle() (title, prompt string) {
	if m.menuContext == FirstChoiceMenu {
		return fmt.Sprintf("%s won the first game!", m.lastWinner),
			"Start a series. Choose a length:"
	}
	if m.seriesActive && m.seriesWinner != NoSide {
		title = fmt.Sprintf("%s wins the series!", m.seriesWinner)
	} else {
		title = fmt.Sprintf("%s won the last game!", m.lastWinner)
	}
	return title, "Play another series? Choose a length:"
}

func (m *Match) drawMenu(r Renderer) {
	cx, cy := m.width/2, m.height/2
	r.Overlay()

	title, prompt := m.MenuTitle()
	r.Text(title, cx, cy-120, TextLarge, AnchorCenter)
	r.Text(prompt, cx, cy-60, TextNormal, AnchorCenter)

	baseY := cy - 10
	for i, o := range menuOptions {
		prefix := menuBlank
		if i == m.menuIndex {
			prefix = menuMarker
		}
		r.Text(prefix+o.Label, cx, baseY+float64(i)*menuSpacing, TextNormal, AnchorCenter)
	}

	n := float64(len(menuOptions))
	r.Text("Use ↑/↓ or W/S to navigate; Enter/Space to select.", cx, baseY+menuSpacing*(n+0.8), TextSmall, AnchorCenter)
	r.Text("Hotkeys: 3 / 5 / 7 for best-of; Esc/Q to quit.", cx, baseY+menuSpacing*(n+1.6), TextSmall, AnchorCenter)
}
