package game

type GameState int

const (
	StatePlaying  GameState = iota // main gameplay
	StateGameOver                  // health ran out, waiting for restart
)

func (s GameState) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

type GameSession struct {
	State     GameState
	Run       int     // restarts so far; feeds the per-run seed
	RunTimer  float64 // seconds since the current run started
	BestScore int
}

func NewGameSession() *GameSession {
	return &GameSession{State: StatePlaying}
}

// StartRun begins a fresh run and returns its seed.
func (s *GameSession) StartRun(seed uint64) uint64 {
	s.State = StatePlaying
	s.RunTimer = 0
	return runSeed(seed, s.Run)
}

// Update advances the run timer.
func (s *GameSession) Update(dt float64) {
	if s.State == StatePlaying {
		s.RunTimer += dt
	}
}

// CheckGameOver moves to StateGameOver the first time the player has no
// health left and reports whether that transition happened now.
func (s *GameSession) CheckGameOver(player *Snake, score int) bool {
	if s.State != StatePlaying {
		return false
	}
	if player != nil && !player.HP.IsDead() {
		return false
	}
	s.State = StateGameOver
	if score > s.BestScore {
		s.BestScore = score
	}
	return true
}
