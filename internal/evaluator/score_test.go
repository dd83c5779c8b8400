package evaluator

import (
	"testing"

	"github.com/lox/threecards/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected int
		category Category
	}{
		{name: "empty hand", cards: "", expected: 0, category: Empty},
		{name: "pair of kings", cards: "KsKh2c", expected: 15, category: Pair},
		{name: "three sevens", cards: "7s7h7d", expected: 12, category: Triple},
		{name: "no pairs", cards: "As5h9d", expected: 9, category: HighCard},
		{name: "aces are low", cards: "AsAh2d", expected: 4, category: Pair},
		{name: "three aces", cards: "AsAhAd", expected: 6, category: Triple},
		{name: "pair below high card", cards: "3s3hQd", expected: 14, category: Pair},
		{name: "single card", cards: "10c", expected: 10, category: HighCard},
		{name: "suits do not matter", cards: "KsKsKs", expected: 18, category: Triple},
		{name: "two pairs in a larger hand", cards: "2s2h9d9c", expected: 13, category: Pair},
		{name: "four of a rank earns nothing", cards: "5s5h5d5c", expected: 5, category: HighCard},
		{name: "pair and triple in a larger hand", cards: "4s4h4dJcJd", expected: 18, category: Triple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := deck.MustParseCards(tt.cards)
			assert.Equal(t, tt.expected, Score(hand))
			b := Evaluate(hand)
			assert.Equal(t, tt.expected, b.Total)
			assert.Equal(t, b.Base+b.Bonus, b.Total)
			assert.Equal(t, tt.category, b.Category)
		})
	}
}

func TestScoreNil(t *testing.T) {
	assert.Equal(t, 0, Score(nil))
}

func TestScoreDoesNotModifyHand(t *testing.T) {
	hand := deck.MustParseCards("Ks2hKd")
	before := append([]deck.Card(nil), hand...)
	_ = Score(hand)
	assert.Equal(t, before, hand)
}

func TestBreakdownString(t *testing.T) {
	b := Evaluate(deck.MustParseCards("KsKh2c"))
	assert.Equal(t, "Pair (13 + 2 = 15)", b.String())
	assert.Equal(t, "Empty (0 + 0 = 0)", Evaluate(nil).String())
}
