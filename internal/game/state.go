package game

// Rules holds per-session gameplay switches.
type Rules struct {
	// ConsumePotions removes a potion from the inventory once it is drunk.
	ConsumePotions bool
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{ConsumePotions: true}
}

// GameState is the whole mutable session: the hero, where they stand and
// their score. It is owned by a single console loop.
type GameState struct {
	World   *World
	Player  *Player
	Current *Room
	Score   int
	Rules   Rules
}

// NewGameState starts a new game in w's start room.
func NewGameState(w *World, rules Rules) *GameState {
	return &GameState{
		World:   w,
		Player:  w.NewPlayer(),
		Current: w.Start(),
		Rules:   rules,
	}
}

// AddScore adds n points to the session score.
func (s *GameState) AddScore(n int) {
	s.Score += n
}
