package game

import "github.com/lox/threecards/internal/deck"

// Snapshot is a read-only copy of everything a front end needs to render a
// session. Scores are cumulative round wins, not hand strengths.
type Snapshot struct {
	ID        string
	DeckSize  int
	CanDraw   bool
	Started   bool
	Rounds    int
	Hands     [NumPlayers][]deck.Card
	Scores    [NumPlayers]int
	LastRound *RoundResult
}

// Snapshot captures the current state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:       s.id,
		DeckSize: len(s.deck),
		CanDraw:  s.CanDraw(),
		Started:  s.started,
		Rounds:   len(s.history),
		Scores:   s.scores,
	}
	for _, p := range Players {
		snap.Hands[p] = s.Hand(p)
	}
	if last, ok := s.LastRound(); ok {
		snap.LastRound = &last
	}
	return snap
}
