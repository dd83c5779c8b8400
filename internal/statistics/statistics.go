package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/threecards/internal/evaluator"
	"github.com/lox/threecards/internal/game"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Statistics accumulates the outcomes of many rounds, typically across many
// simulated games.
type Statistics struct {
	Games  int
	Rounds int
	Wins   [game.NumPlayers]int
	Ties   int

	// Hand strengths per player, one entry per round, for distribution stats
	HandScores [game.NumPlayers][]float64

	// Category counts per player, indexed by evaluator.Category
	Categories [game.NumPlayers][evaluator.Triple + 1]int

	MaxHandScore int
}

// Comparison tests whether player 1 and player 2 win decided rounds equally
// often. Ties are excluded.
type Comparison struct {
	Decided    int     // Rounds that were not ties
	Share      float64 // Player 1's share of decided rounds
	Difference float64 // Share - 0.5
	StdError   float64
	ZScore     float64
	PValue     float64 // Two-tailed
	CI95Low    float64
	CI95High   float64
}

// Add incorporates one round
func (s *Statistics) Add(r game.RoundResult) {
	s.Rounds++
	if winner, ok := r.Outcome.Winner(); ok {
		s.Wins[winner]++
	} else {
		s.Ties++
	}

	for _, p := range game.Players {
		b := evaluator.Evaluate(r.Hands[p])
		s.HandScores[p] = append(s.HandScores[p], float64(r.HandScores[p]))
		s.Categories[p][b.Category]++
		if r.HandScores[p] > s.MaxHandScore {
			s.MaxHandScore = r.HandScores[p]
		}
	}
}

// AddGame records that a complete game has been played
func (s *Statistics) AddGame() {
	s.Games++
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Rounds += other.Rounds
	s.Ties += other.Ties
	for _, p := range game.Players {
		s.Wins[p] += other.Wins[p]
		s.HandScores[p] = append(s.HandScores[p], other.HandScores[p]...)
		for c := range other.Categories[p] {
			s.Categories[p][c] += other.Categories[p][c]
		}
	}
	if other.MaxHandScore > s.MaxHandScore {
		s.MaxHandScore = other.MaxHandScore
	}
}

// WinRate returns the fraction of all rounds won by p
func (s *Statistics) WinRate(p game.Player) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins[p]) / float64(s.Rounds)
}

// TieRate returns the fraction of rounds that tied
func (s *Statistics) TieRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Ties) / float64(s.Rounds)
}

// MeanHandScore returns p's average hand strength
func (s *Statistics) MeanHandScore(p game.Player) float64 {
	if len(s.HandScores[p]) == 0 {
		return 0
	}
	return stat.Mean(s.HandScores[p], nil)
}

// HandScoreStdDev returns the sample standard deviation of p's hand strength
func (s *Statistics) HandScoreStdDev(p game.Player) float64 {
	if len(s.HandScores[p]) < 2 {
		return 0
	}
	return stat.StdDev(s.HandScores[p], nil)
}

// MedianHandScore returns the median of p's hand strength
func (s *Statistics) MedianHandScore(p game.Player) float64 {
	return s.Percentile(p, 0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0) of p's
// hand strengths, interpolating linearly between ranks.
func (s *Statistics) Percentile(p game.Player, q float64) float64 {
	values := s.HandScores[p]
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	index := q * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// CategoryRate returns the fraction of p's hands that fell in category c
func (s *Statistics) CategoryRate(p game.Player, c evaluator.Category) float64 {
	if s.Rounds == 0 || c < 0 || int(c) >= len(s.Categories[p]) {
		return 0
	}
	return float64(s.Categories[p][c]) / float64(s.Rounds)
}

// Compare runs a two-tailed z-test of player 1's share of decided rounds
// against 0.5.
func (s *Statistics) Compare() Comparison {
	decided := s.Wins[game.Player1] + s.Wins[game.Player2]
	if decided == 0 {
		return Comparison{PValue: 1}
	}

	n := float64(decided)
	share := float64(s.Wins[game.Player1]) / n
	se := math.Sqrt(0.25 / n)
	z := (share - 0.5) / se

	normal := distuv.UnitNormal
	pValue := 2 * (1 - normal.CDF(math.Abs(z)))
	margin := normal.Quantile(0.975) * math.Sqrt(share*(1-share)/n)

	return Comparison{
		Decided:    decided,
		Share:      share,
		Difference: share - 0.5,
		StdError:   se,
		ZScore:     z,
		PValue:     pValue,
		CI95Low:    share - margin,
		CI95High:   share + margin,
	}
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Rounds < 0 || s.Games < 0 {
		return fmt.Errorf("negative counts: rounds=%d games=%d", s.Rounds, s.Games)
	}

	if total := s.Wins[game.Player1] + s.Wins[game.Player2] + s.Ties; total != s.Rounds {
		return fmt.Errorf("wins and ties (%d) do not match rounds (%d)", total, s.Rounds)
	}

	for _, p := range game.Players {
		if len(s.HandScores[p]) != s.Rounds {
			return fmt.Errorf("%s has %d hand scores for %d rounds", p, len(s.HandScores[p]), s.Rounds)
		}
		categories := 0
		for _, n := range s.Categories[p] {
			categories += n
		}
		if categories != s.Rounds {
			return fmt.Errorf("%s category total (%d) does not match rounds (%d)", p, categories, s.Rounds)
		}
	}

	return nil
}
