package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "pair of kings",
			input: "KsKh2c",
			expected: []Card{
				{Suit: Spades, Rank: King},
				{Suit: Hearts, Rank: King},
				{Suit: Clubs, Rank: Two},
			},
		},
		{
			name:  "space separated with ten",
			input: "10h Td As",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Ten},
				{Suit: Spades, Rank: Ace},
			},
		},
		{
			name:  "comma separated",
			input: "7s, 7h, 7d",
			expected: []Card{
				{Suit: Spades, Rank: Seven},
				{Suit: Hearts, Rank: Seven},
				{Suit: Diamonds, Rank: Seven},
			},
		},
		{
			name:  "suit symbols",
			input: "Q♠ J♥ 10♦ 9♣",
			expected: []Card{
				{Suit: Spades, Rank: Queen},
				{Suit: Hearts, Rank: Jack},
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "incomplete card",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("AsKs")
	expected := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: King},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardValue(t *testing.T) {
	for i, rank := range Ranks {
		for _, suit := range Suits {
			if got := NewCard(suit, rank).Value(); got != i+1 {
				t.Errorf("%s%s Value() = %d, want %d", rank, suit, got, i+1)
			}
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "10♥"},
		{NewCard(Diamonds, Two), "2♦"},
		{NewCard(Clubs, King), "K♣"},
		{Card{Suit: Suit(9), Rank: Rank(0)}, "??"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	if got := FormatCards(MustParseCards("KsKh2c")); got != "K♠ K♥ 2♣" {
		t.Errorf("FormatCards() = %q", got)
	}
}

func TestIsRed(t *testing.T) {
	if !NewCard(Hearts, Ace).IsRed() || !NewCard(Diamonds, Ace).IsRed() {
		t.Error("hearts and diamonds should be red")
	}
	if NewCard(Spades, Ace).IsRed() || NewCard(Clubs, Ace).IsRed() {
		t.Error("spades and clubs should not be red")
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}
