// Package deck models the 52-card deck: card values, canonical ordering,
// shuffling and dealing from the front.
//
// The functions here never mutate the slices they are given. A deck is just
// an ordered []Card; callers replace their copy with whatever Draw returns.
package deck

import (
	"errors"

	"github.com/lox/threecards/internal/randutil"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrInsufficientCards is returned when a draw asks for more cards than remain
var ErrInsufficientCards = errors.New("insufficient cards")

// New returns the canonical 52-card deck, suit-major and rank-minor
// (A♠ 2♠ ... K♠ A♥ ... K♣). It involves no randomness.
func New() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// NewShuffled returns a freshly created deck shuffled with src
func NewShuffled(src randutil.Source) []Card {
	return Shuffle(New(), src)
}

// Shuffle returns a new slice holding a uniformly random permutation of cards
// using Fisher-Yates. The input is left untouched.
func Shuffle(cards []Card, src randutil.Source) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw removes the first n cards. It returns the drawn cards and the remaining
// deck, both as fresh slices. If fewer than n cards remain it returns
// ErrInsufficientCards and nil slices.
func Draw(cards []Card, n int) (drawn, rest []Card, err error) {
	if n < 0 || len(cards) < n {
		return nil, nil, ErrInsufficientCards
	}
	drawn = make([]Card, n)
	copy(drawn, cards[:n])
	rest = make([]Card, len(cards)-n)
	copy(rest, cards[n:])
	return drawn, rest, nil
}
