package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are low.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in deck order, Ace first
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠", "10♥")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the numeric value of the card, 1 (Ace) through 13 (King).
// It depends on the rank only.
func (c Card) Value() int {
	return int(c.Rank)
}

// FormatCards joins cards with single spaces, e.g. "K♠ K♥ 2♣"
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// ParseCard parses a single card such as "As", "Th", "10h" or "K♠".
// Parsing is case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	runes := []rune(s)
	suit, err := parseSuit(runes[len(runes)-1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	rank, err := parseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	return NewCard(suit, rank), nil
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas ("Ks, Kh, 2c") or written back to back ("KsKh2c").
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	}) {
		tokens, err := splitCompact(field)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			c, err := ParseCard(tok)
			if err != nil {
				return nil, err
			}
			cards = append(cards, c)
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// splitCompact breaks "KsKh10c" into "Ks", "Kh", "10c".
func splitCompact(s string) ([]string, error) {
	runes := []rune(s)
	var tokens []string
	for i := 0; i < len(runes); {
		width := 2
		if runes[i] == '1' && i+1 < len(runes) && runes[i+1] == '0' {
			width = 3
		}
		if i+width > len(runes) {
			return nil, fmt.Errorf("incomplete card %q at position %d", string(runes[i:]), i)
		}
		tokens = append(tokens, string(runes[i:i+width]))
		i += width
	}
	return tokens, nil
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A", "1":
		return Ace, nil
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", s)
	}
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 's', 'S', '♠':
		return Spades, nil
	case 'h', 'H', '♥':
		return Hearts, nil
	case 'd', 'D', '♦':
		return Diamonds, nil
	case 'c', 'C', '♣':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", r)
	}
}
