package pong

// Options configures a Match. Zero values fall back to the standard field
// and no-op collaborators.
type Options struct {
	Width, Height float64
	Clock         Clock
	Rand          Rand
	Sounds        Sounds
	// AutoPlayer lets the player paddle track the ball instead of reading
	// movement keys.
	AutoPlayer bool
}

// Match owns the paddles and the ball and runs the game/series state machine.
// It is not safe for concurrent use; hosts call Step once per frame.
type Match struct {
	width, height float64

	Player *Paddle
	AI     *Paddle
	Ball   *Ball

	state State

	playerScore, aiScore int

	seriesActive           bool
	bestOf                 int
	playerWins, aiWins     int
	gameWinner, lastWinner Side
	seriesWinner           Side

	menuIndex   int
	menuContext MenuContext

	intermissionStart int64

	ai         *opponent
	autoPlayer bool
	quit       bool

	clock  Clock
	rng    Rand
	sounds Sounds
}

// NewMatch sets up the opening standalone game
func NewMatch(opts Options) *Match {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = FieldWidth, FieldHeight
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicClock()
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}
	if opts.Sounds == nil {
		opts.Sounds = NopSounds{}
	}

	m := &Match{
		width:       opts.Width,
		height:      opts.Height,
		state:       PlayingState,
		bestOf:      DefaultBestOf,
		menuContext: FirstChoiceMenu,
		ai:          newOpponent(),
		autoPlayer:  opts.AutoPlayer,
		clock:       opts.Clock,
		rng:         opts.Rand,
		sounds:      opts.Sounds,
	}
	m.Player = NewPaddle(PaddleInset, m.height, PlayerSpeed)
	m.AI = NewPaddle(m.width-PaddleInset-PaddleWidth, m.height, AISpeed)
	m.Ball = NewBall(float64(int(m.width)/2), float64(int(m.height)/2), BallSize, m.width, m.height, m.rng, m.sounds)
	return m
}

// Step runs one frame: input first, then simulation
func (m *Match) Step(in Input, dt float64) {
	m.HandleInput(in, dt)
	m.Update(dt)
}

// HandleInput applies the frame's key state for the current state
func (m *Match) HandleInput(in Input, dt float64) {
	if in.WasPressed(ActionQuit) {
		m.quit = true
	}

	switch m.state {
	case PlayingState:
		if m.autoPlayer {
			m.Player.AutoTrack(m.Ball.Y, m.Ball.Height, m.height, dt)
			return
		}
		m.Player.Move(in.moveDir(), dt, m.height)

	case IntermissionState:
		if in.WasPressed(ActionConfirm) {
			m.ResetGame()
		}

	case ReplayMenuState:
		m.handleMenu(in.Pressed)
	}
}

func (m *Match) handleMenu(pressed []Action) {
	for _, a := range pressed {
		choice, ok := hotkeyOption(a)
		switch a {
		case ActionNavUp:
			m.menuIndex = wrapIndex(m.menuIndex - 1)
		case ActionNavDown:
			m.menuIndex = wrapIndex(m.menuIndex + 1)
		case ActionConfirm:
			choice, ok = m.Selected(), true
		}
		if ok {
			m.applyMenuChoice(choice)
			return
		}
	}
}

func (m *Match) applyMenuChoice(o MenuOption) {
	if o.IsExit() {
		m.quit = true
		return
	}
	m.StartSeries(o.BestOf)
}

// StartSeries configures a fresh best-of-N series and starts its first game.
// Unsupported lengths fall back to DefaultBestOf.
func (m *Match) StartSeries(bestOf int) {
	m.bestOf = NormalizeBestOf(bestOf)
	m.playerWins, m.aiWins = 0, 0
	m.seriesWinner = NoSide
	m.seriesActive = true
	m.menuContext = PostSeriesMenu
	m.ResetGame()
}

// ResetGame clears the per-game score, recenters paddles and serves
func (m *Match) ResetGame() {
	m.playerScore, m.aiScore = 0, 0
	m.gameWinner = NoSide
	m.Player.Recenter(m.height)
	m.AI.Recenter(m.height)
	m.Ball.Reset(RandomDirection)
	m.ai.reset()
	m.state = PlayingState
}

// Update advances timers and, while playing, the opponent and the ball
func (m *Match) Update(dt float64) {
	dt = sanitizeDT(dt)
	now := m.clock.NowMillis()

	switch m.state {
	case IntermissionState:
		if now < m.intermissionStart {
			m.intermissionStart = now
		}
		if now-m.intermissionStart >= IntermissionMillis {
			m.ResetGame()
		}
		return
	case PlayingState:
	default:
		return
	}

	m.ai.step(now, dt, m.Ball, m.AI, m.height, m.rng)
	m.Ball.Advance(dt, m.Player, m.AI)
	m.checkScore()
	m.checkGameOver(now)
}

func (m *Match) checkScore() {
	b := m.Ball
	switch {
	case b.X+b.Width < 0:
		m.aiScore++
		m.sounds.OnScore()
		b.Reset(ServeRight)
	case b.X > m.width:
		m.playerScore++
		m.sounds.OnScore()
		b.Reset(ServeLeft)
	}
}

func (m *Match) checkGameOver(now int64) {
	if m.playerScore < PointsToWin && m.aiScore < PointsToWin {
		return
	}
	m.gameWinner = AISide
	if m.playerScore > m.aiScore {
		m.gameWinner = PlayerSide
	}
	m.lastWinner = m.gameWinner

	if !m.seriesActive {
		m.openMenu(FirstChoiceMenu)
		return
	}

	if m.gameWinner == PlayerSide {
		m.playerWins++
	} else {
		m.aiWins++
	}

	if m.endSeriesIfNeeded() {
		m.openMenu(PostSeriesMenu)
		return
	}
	m.state = IntermissionState
	m.intermissionStart = now
}

func (m *Match) endSeriesIfNeeded() bool {
	need := GamesNeeded(m.bestOf)
	switch {
	case m.playerWins >= need:
		m.seriesWinner = PlayerSide
	case m.aiWins >= need:
		m.seriesWinner = AISide
	default:
		return false
	}
	return true
}

func (m *Match) openMenu(ctx MenuContext) {
	m.state = ReplayMenuState
	m.menuContext = ctx
	m.menuIndex = 0
}

// State returns the current state machine state
func (m *Match) State() State { return m.state }

// Score returns the per-game points
func (m *Match) Score() (player, ai int) { return m.playerScore, m.aiScore }

// SeriesWins returns the games each side has won in the current series
func (m *Match) SeriesWins() (player, ai int) { return m.playerWins, m.aiWins }

// SeriesActive is false until the first series is chosen from the menu
func (m *Match) SeriesActive() bool { return m.seriesActive }

func (m *Match) BestOf() int { return m.bestOf }

// GamesToWin is the series tally that ends the current series
func (m *Match) GamesToWin() int { return GamesNeeded(m.bestOf) }

func (m *Match) GameWinner() Side     { return m.gameWinner }
func (m *Match) LastGameWinner() Side { return m.lastWinner }
func (m *Match) SeriesWinner() Side   { return m.seriesWinner }

func (m *Match) MenuIndex() int           { return m.menuIndex }
func (m *Match) MenuContext() MenuContext { return m.menuContext }

// Selected returns the highlighted menu option
func (m *Match) Selected() MenuOption {
	return menuOptions[wrapIndex(m.menuIndex)]
}

// QuitRequested is set by the Quit action or the Exit menu entry
func (m *Match) QuitRequested() bool { return m.quit }

// Field returns the field dimensions
func (m *Match) Field() (width, height float64) { return m.width, m.height }
