package game

import (
	"time"

	"github.com/lox/threecards/internal/deck"
)

// Outcome is the result of comparing two hand scores
type Outcome int

const (
	Tie Outcome = iota
	Player1Wins
	Player2Wins
)

// String returns a short description of the outcome
func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "Player 1 wins"
	case Player2Wins:
		return "Player 2 wins"
	default:
		return "Tie"
	}
}

// Winner returns the winning player. ok is false for a tie.
func (o Outcome) Winner() (p Player, ok bool) {
	switch o {
	case Player1Wins:
		return Player1, true
	case Player2Wins:
		return Player2, true
	default:
		return 0, false
	}
}

// Compare decides a round from the two hand scores. Only a strictly higher
// score wins; equal scores tie.
func Compare(score1, score2 int) Outcome {
	switch {
	case score1 > score2:
		return Player1Wins
	case score2 > score1:
		return Player2Wins
	default:
		return Tie
	}
}

// RoundResult records one draw. HandScores are hand strengths for that round,
// distinct from the cumulative round-win tallies kept by the Session.
type RoundResult struct {
	Number     int // 1-based round number since the last reset
	Hands      [NumPlayers][]deck.Card
	HandScores [NumPlayers]int
	Outcome    Outcome
	PlayedAt   time.Time
}

// Hand returns the cards dealt to p this round
func (r RoundResult) Hand(p Player) []deck.Card {
	return r.Hands[p]
}

func (r RoundResult) clone() RoundResult {
	c := r
	for i := range r.Hands {
		c.Hands[i] = append([]deck.Card(nil), r.Hands[i]...)
	}
	return c
}
