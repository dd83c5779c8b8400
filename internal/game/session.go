package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/threecards/internal/deck"
	"github.com/lox/threecards/internal/evaluator"
	"github.com/lox/threecards/internal/gameid"
	"github.com/lox/threecards/internal/randutil"
)

// HandSize is the number of cards dealt to each player per round
const HandSize = 3

// CardsPerRound is the number of cards a draw removes from the deck
const CardsPerRound = HandSize * NumPlayers

// Session holds the state of one game: the remaining deck, the current hands,
// the cumulative round-win tallies and whether a round has been played.
//
// State changes only through Draw and Reset. A Session is not safe for
// concurrent use; each command runs to completion before the next.
type Session struct {
	id      string
	deck    []deck.Card
	hands   [NumPlayers][]deck.Card
	scores  [NumPlayers]int
	started bool
	history []RoundResult

	source randutil.Source
	clock  quartz.Clock
	logger *log.Logger
	ids    *gameid.Generator
}

// NewSession creates a session with a freshly shuffled deck.
func NewSession(opts ...SessionOption) *Session {
	cfg := newSessionConfig(opts)
	s := &Session{
		source: cfg.source,
		clock:  cfg.clock,
		logger: cfg.logger.WithPrefix("session"),
		ids:    cfg.ids,
	}
	s.reset()
	return s
}

// NewSessionWithDeck creates a session that plays from the given deck order
// instead of a shuffled one. Later resets shuffle as usual. Intended for
// replaying a known deal.
func NewSessionWithDeck(cards []deck.Card, opts ...SessionOption) *Session {
	s := NewSession(opts...)
	s.deck = append([]deck.Card(nil), cards...)
	return s
}

// Draw deals three cards to player 1 then three to player 2 from the front of
// the deck, scores both hands and awards the round to the strictly higher
// score. With fewer than six cards left it returns an error wrapping
// deck.ErrInsufficientCards and leaves the session untouched.
func (s *Session) Draw() (RoundResult, error) {
	dealt, rest, err := deck.Draw(s.deck, CardsPerRound)
	if err != nil {
		s.logger.Debug("Draw refused", "id", s.id, "remaining", len(s.deck))
		return RoundResult{}, fmt.Errorf("draw needs %d cards, %d remaining: %w", CardsPerRound, len(s.deck), err)
	}

	result := RoundResult{
		Number:   len(s.history) + 1,
		PlayedAt: s.clock.Now(),
	}
	for i, p := range Players {
		hand := dealt[i*HandSize : (i+1)*HandSize : (i+1)*HandSize]
		result.Hands[p] = hand
		result.HandScores[p] = evaluator.Score(hand)
	}
	result.Outcome = Compare(result.HandScores[Player1], result.HandScores[Player2])

	s.deck = rest
	s.hands = result.Hands
	if winner, ok := result.Outcome.Winner(); ok {
		s.scores[winner]++
	}
	s.started = true
	s.history = append(s.history, result)

	s.logger.Debug("Dealt round",
		"id", s.id,
		"round", result.Number,
		"p1", deck.FormatCards(result.Hands[Player1]),
		"p2", deck.FormatCards(result.Hands[Player2]),
		"p1_score", result.HandScores[Player1],
		"p2_score", result.HandScores[Player2],
		"outcome", result.Outcome,
		"remaining", len(s.deck))

	return result.clone(), nil
}

// Reset starts a new game: a new shuffled 52-card deck, empty hands, zero
// tallies and a new session ID. It cannot fail.
func (s *Session) Reset() {
	prev := s.id
	s.reset()
	s.logger.Debug("Session reset", "previous", prev, "id", s.id)
}

func (s *Session) reset() {
	s.id = s.ids.Generate()
	s.deck = deck.NewShuffled(s.source)
	s.hands = [NumPlayers][]deck.Card{}
	s.scores = [NumPlayers]int{}
	s.started = false
	s.history = nil
}

// ID returns the identifier of the current game
func (s *Session) ID() string {
	return s.id
}

// DeckSize returns the number of cards left in the deck
func (s *Session) DeckSize() int {
	return len(s.deck)
}

// CanDraw reports whether enough cards remain for another round
func (s *Session) CanDraw() bool {
	return len(s.deck) >= CardsPerRound
}

// Hand returns a copy of p's current hand. It is empty before the first draw
// and for an unknown player.
func (s *Session) Hand(p Player) []deck.Card {
	if !p.Valid() {
		return nil
	}
	return append([]deck.Card(nil), s.hands[p]...)
}

// Score returns p's cumulative number of rounds won since the last reset
func (s *Session) Score(p Player) int {
	if !p.Valid() {
		return 0
	}
	return s.scores[p]
}

// Started reports whether a round has been drawn since the last reset
func (s *Session) Started() bool {
	return s.started
}

// Rounds returns how many rounds have been drawn since the last reset
func (s *Session) Rounds() int {
	return len(s.history)
}

// History returns the rounds drawn since the last reset, oldest first
func (s *Session) History() []RoundResult {
	out := make([]RoundResult, len(s.history))
	for i, r := range s.history {
		out[i] = r.clone()
	}
	return out
}

// LastRound returns the most recent round. ok is false before the first draw.
func (s *Session) LastRound() (RoundResult, bool) {
	if len(s.history) == 0 {
		return RoundResult{}, false
	}
	return s.history[len(s.history)-1].clone(), true
}
