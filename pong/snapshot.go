package pong

// Snapshot is a value copy of everything a viewer needs to redraw a frame
type Snapshot struct {
	State        State       `json:"state"`
	Player       Paddle      `json:"player"`
	AI           Paddle      `json:"ai"`
	Ball         Ball        `json:"ball"`
	PlayerScore  int         `json:"playerScore"`
	AIScore      int         `json:"aiScore"`
	SeriesActive bool        `json:"seriesActive"`
	BestOf       int         `json:"bestOf"`
	PlayerWins   int         `json:"playerWins"`
	AIWins       int         `json:"aiWins"`
	GameWinner   Side        `json:"gameWinner"`
	SeriesWinner Side        `json:"seriesWinner"`
	MenuIndex    int         `json:"menuIndex"`
	MenuContext  MenuContext `json:"menuContext"`
	TimeMillis   int64       `json:"t"`
}

// Snapshot copies the current match state
func (m *Match) Snapshot() Snapshot {
	ball := *m.Ball
	ball.rng, ball.events = nil, nil

	return Snapshot{
		State:        m.state,
		Player:       *m.Player,
		AI:           *m.AI,
		Ball:         ball,
		PlayerScore:  m.playerScore,
		AIScore:      m.aiScore,
		SeriesActive: m.seriesActive,
		BestOf:       m.bestOf,
		PlayerWins:   m.playerWins,
		AIWins:       m.aiWins,
		GameWinner:   m.gameWinner,
		SeriesWinner: m.seriesWinner,
		MenuIndex:    m.menuIndex,
		MenuContext:  m.menuContext,
		TimeMillis:   m.clock.NowMillis(),
	}
}
