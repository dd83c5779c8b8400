package statistics

import (
	"math"
	"testing"

	"github.com/lox/threecards/internal/deck"
	"github.com/lox/threecards/internal/evaluator"
	"github.com/lox/threecards/internal/game"
)

func round(p1, p2 string) game.RoundResult {
	h1 := deck.MustParseCards(p1)
	h2 := deck.MustParseCards(p2)
	s1, s2 := evaluator.Score(h1), evaluator.Score(h2)
	return game.RoundResult{
		Hands:      [game.NumPlayers][]deck.Card{h1, h2},
		HandScores: [game.NumPlayers]int{s1, s2},
		Outcome:    game.Compare(s1, s2),
	}
}

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.WinRate(game.Player1) != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate(game.Player1))
	}
	if stats.TieRate() != 0 {
		t.Errorf("Expected tie rate of 0 for empty stats, got %f", stats.TieRate())
	}
	if stats.MeanHandScore(game.Player1) != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.MeanHandScore(game.Player1))
	}
	if stats.HandScoreStdDev(game.Player2) != 0 {
		t.Errorf("Expected stddev of 0 for empty stats, got %f", stats.HandScoreStdDev(game.Player2))
	}
	if stats.MedianHandScore(game.Player1) != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.MedianHandScore(game.Player1))
	}
	if cmp := stats.Compare(); cmp.PValue != 1 || cmp.Decided != 0 {
		t.Errorf("Expected neutral comparison, got %+v", cmp)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Empty stats should validate: %v", err)
	}
}

func TestStatistics_SingleRound(t *testing.T) {
	stats := &Statistics{}
	stats.Add(round("KsKh2c", "As5h9d"))

	if stats.Rounds != 1 {
		t.Errorf("Expected 1 round, got %d", stats.Rounds)
	}
	if stats.Wins[game.Player1] != 1 || stats.Wins[game.Player2] != 0 {
		t.Errorf("Expected player 1 to win, got %v", stats.Wins)
	}
	if stats.MeanHandScore(game.Player1) != 15 {
		t.Errorf("Expected mean 15, got %f", stats.MeanHandScore(game.Player1))
	}
	if stats.MaxHandScore != 15 {
		t.Errorf("Expected max hand score 15, got %d", stats.MaxHandScore)
	}
	if stats.Categories[game.Player1][evaluator.Pair] != 1 {
		t.Errorf("Expected a pair for player 1, got %v", stats.Categories[game.Player1])
	}
	if stats.Categories[game.Player2][evaluator.HighCard] != 1 {
		t.Errorf("Expected high card for player 2, got %v", stats.Categories[game.Player2])
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStatistics_MultipleRounds(t *testing.T) {
	stats := &Statistics{}
	rounds := []game.RoundResult{
		round("KsKh2c", "As5h9d"),  // 15 vs 9
		round("2s3s4s", "QsQhQd"),  // 4 vs 17
		round("5c6c8c", "5d6d8d"),  // 8 vs 8
		round("JsJhJd", "9s9h10s"), // 16 vs 12
	}
	for _, r := range rounds {
		stats.Add(r)
	}

	if stats.Wins[game.Player1] != 2 || stats.Wins[game.Player2] != 1 || stats.Ties != 1 {
		t.Errorf("Unexpected tallies: wins=%v ties=%d", stats.Wins, stats.Ties)
	}
	if got := stats.WinRate(game.Player1); got != 0.5 {
		t.Errorf("Expected player 1 win rate 0.5, got %f", got)
	}
	if got := stats.TieRate(); got != 0.25 {
		t.Errorf("Expected tie rate 0.25, got %f", got)
	}

	// Player 1 scores: 15, 4, 8, 16
	if got := stats.MeanHandScore(game.Player1); got != 10.75 {
		t.Errorf("Expected mean 10.75, got %f", got)
	}
	if got := stats.MedianHandScore(game.Player1); got != 11.5 {
		t.Errorf("Expected median 11.5, got %f", got)
	}
	expectedStdDev := math.Sqrt((math.Pow(15-10.75, 2) + math.Pow(4-10.75, 2) + math.Pow(8-10.75, 2) + math.Pow(16-10.75, 2)) / 3)
	if got := stats.HandScoreStdDev(game.Player1); math.Abs(got-expectedStdDev) > 1e-9 {
		t.Errorf("Expected stddev %f, got %f", expectedStdDev, got)
	}
	if got := stats.Percentile(game.Player1, 1.0); got != 16 {
		t.Errorf("Expected max percentile 16, got %f", got)
	}
	if got := stats.Percentile(game.Player1, 0.0); got != 4 {
		t.Errorf("Expected min percentile 4, got %f", got)
	}
	if got := stats.CategoryRate(game.Player1, evaluator.Triple); got != 0.25 {
		t.Errorf("Expected triple rate 0.25, got %f", got)
	}
	if stats.MaxHandScore != 17 {
		t.Errorf("Expected max hand score 17, got %d", stats.MaxHandScore)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a := &Statistics{}
	a.Add(round("KsKh2c", "As5h9d"))
	a.AddGame()

	b := &Statistics{}
	b.Add(round("2s3s4s", "QsQhQd"))
	b.Add(round("5c6c8c", "5d6d8d"))
	b.AddGame()

	a.Merge(b)

	if a.Games != 2 || a.Rounds != 3 {
		t.Errorf("Expected 2 games and 3 rounds, got %d and %d", a.Games, a.Rounds)
	}
	if a.Wins != [game.NumPlayers]int{1, 1} || a.Ties != 1 {
		t.Errorf("Unexpected merged tallies: wins=%v ties=%d", a.Wins, a.Ties)
	}
	if len(a.HandScores[game.Player2]) != 3 {
		t.Errorf("Expected 3 merged hand scores, got %d", len(a.HandScores[game.Player2]))
	}
	if a.MaxHandScore != 17 {
		t.Errorf("Expected merged max 17, got %d", a.MaxHandScore)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStatistics_Compare(t *testing.T) {
	t.Run("balanced wins", func(t *testing.T) {
		stats := &Statistics{Rounds: 200, Wins: [game.NumPlayers]int{100, 100}}
		cmp := stats.Compare()
		if cmp.Decided != 200 || cmp.Share != 0.5 || cmp.ZScore != 0 {
			t.Errorf("Unexpected comparison: %+v", cmp)
		}
		if math.Abs(cmp.PValue-1) > 1e-9 {
			t.Errorf("Expected p-value 1, got %f", cmp.PValue)
		}
	})

	t.Run("lopsided wins", func(t *testing.T) {
		stats := &Statistics{Rounds: 100, Wins: [game.NumPlayers]int{80, 20}}
		cmp := stats.Compare()
		// z = (0.8-0.5)/sqrt(0.25/100) = 6
		if math.Abs(cmp.ZScore-6) > 1e-9 {
			t.Errorf("Expected z of 6, got %f", cmp.ZScore)
		}
		if cmp.PValue > 1e-6 {
			t.Errorf("Expected tiny p-value, got %g", cmp.PValue)
		}
		if cmp.CI95Low >= 0.8 || cmp.CI95High <= 0.8 {
			t.Errorf("CI [%f, %f] should contain 0.8", cmp.CI95Low, cmp.CI95High)
		}
	})

	t.Run("two standard errors", func(t *testing.T) {
		// 60 of 100 decided: z = 2, p about 0.0455
		stats := &Statistics{Rounds: 110, Ties: 10, Wins: [game.NumPlayers]int{60, 40}}
		cmp := stats.Compare()
		if math.Abs(cmp.PValue-0.0455) > 0.001 {
			t.Errorf("Expected p-value near 0.0455, got %f", cmp.PValue)
		}
	})
}

func TestStatistics_ValidateDetectsMismatch(t *testing.T) {
	stats := &Statistics{Rounds: 2, Wins: [game.NumPlayers]int{1, 0}}
	if err := stats.Validate(); err == nil {
		t.Error("Expected error for tallies that do not add up")
	}

	stats = &Statistics{}
	stats.Add(round("KsKh2c", "As5h9d"))
	stats.HandScores[game.Player2] = nil
	if err := stats.Validate(); err == nil {
		t.Error("Expected error for missing hand scores")
	}
}
