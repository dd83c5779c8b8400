// Package evaluator scores three-card hands.
//
// A hand's score is its highest card value (Ace low, 1..13) plus a bonus for
// every rank that repeats: 2 for each rank held exactly twice and 5 for each
// rank held exactly three times. The bonus is computed per rank group, so the
// same rules apply to hands of any size. An empty hand scores 0.
package evaluator

import (
	"fmt"

	"github.com/lox/threecards/internal/deck"
)

const (
	PairBonus   = 2
	TripleBonus = 5
)

// Category classifies a hand by its best rank group
type Category int

const (
	Empty Category = iota
	HighCard
	Pair
	Triple
)

// String returns a description of the category
func (c Category) String() string {
	switch c {
	case Empty:
		return "Empty"
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Triple:
		return "Three of a Kind"
	default:
		return "Unknown"
	}
}

// Breakdown explains how a hand's score was reached
type Breakdown struct {
	Base     int // Highest card value in the hand
	Bonus    int // Sum of pair and triple bonuses
	Total    int
	Category Category
}

// String renders e.g. "Pair (13 + 2 = 15)"
func (b Breakdown) String() string {
	return fmt.Sprintf("%s (%d + %d = %d)", b.Category, b.Base, b.Bonus, b.Total)
}

// Score returns the score of a hand. It is pure and never fails.
func Score(hand []deck.Card) int {
	return Evaluate(hand).Total
}

// Evaluate returns the full scoring breakdown of a hand
func Evaluate(hand []deck.Card) Breakdown {
	if len(hand) == 0 {
		return Breakdown{Category: Empty}
	}

	counts := make(map[deck.Rank]int, len(hand))
	base := 0
	for _, c := range hand {
		counts[c.Rank]++
		if v := c.Value(); v > base {
			base = v
		}
	}

	b := Breakdown{Base: base, Category: HighCard}
	for _, n := range counts {
		switch n {
		case 2:
			b.Bonus += PairBonus
			if b.Category < Pair {
				b.Category = Pair
			}
		case 3:
			b.Bonus += TripleBonus
			b.Category = Triple
		}
	}
	b.Total = b.Base + b.Bonus
	return b
}
