package simulator

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lox/threecards/internal/evaluator"
	"github.com/lox/threecards/internal/fileutil"
	"github.com/lox/threecards/internal/game"
	"github.com/lox/threecards/internal/statistics"
)

// Report is the JSON summary of a simulation run
type Report struct {
	Seed         int64          `json:"seed"`
	Games        int            `json:"games"`
	Rounds       int            `json:"rounds"`
	Ties         int            `json:"ties"`
	TieRate      float64        `json:"tie_rate"`
	Players      []PlayerReport `json:"players"`
	Comparison   ComparisonJSON `json:"comparison"`
	MaxHandScore int            `json:"max_hand_score"`
	DurationMS   int64          `json:"duration_ms"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// PlayerReport summarises one seat
type PlayerReport struct {
	Player      string             `json:"player"`
	Wins        int                `json:"wins"`
	WinRate     float64            `json:"win_rate"`
	MeanScore   float64            `json:"mean_hand_score"`
	StdDevScore float64            `json:"stddev_hand_score"`
	MedianScore float64            `json:"median_hand_score"`
	Categories  map[string]float64 `json:"categories"`
}

// ComparisonJSON mirrors statistics.Comparison
type ComparisonJSON struct {
	Decided  int     `json:"decided_rounds"`
	Share    float64 `json:"player1_share"`
	ZScore   float64 `json:"z_score"`
	PValue   float64 `json:"p_value"`
	CI95Low  float64 `json:"ci95_low"`
	CI95High float64 `json:"ci95_high"`
}

// NewReport builds a report from merged statistics
func NewReport(stats *statistics.Statistics, seed int64, duration time.Duration, generatedAt time.Time) Report {
	r := Report{
		Seed:         seed,
		Games:        stats.Games,
		Rounds:       stats.Rounds,
		Ties:         stats.Ties,
		TieRate:      stats.TieRate(),
		MaxHandScore: stats.MaxHandScore,
		DurationMS:   duration.Milliseconds(),
		GeneratedAt:  generatedAt,
	}

	for _, p := range game.Players {
		categories := make(map[string]float64)
		for _, c := range []evaluator.Category{evaluator.HighCard, evaluator.Pair, evaluator.Triple} {
			categories[c.String()] = stats.CategoryRate(p, c)
		}
		r.Players = append(r.Players, PlayerReport{
			Player:      p.String(),
			Wins:        stats.Wins[p],
			WinRate:     stats.WinRate(p),
			MeanScore:   stats.MeanHandScore(p),
			StdDevScore: stats.HandScoreStdDev(p),
			MedianScore: stats.MedianHandScore(p),
			Categories:  categories,
		})
	}

	cmp := stats.Compare()
	r.Comparison = ComparisonJSON{
		Decided:  cmp.Decided,
		Share:    cmp.Share,
		ZScore:   cmp.ZScore,
		PValue:   cmp.PValue,
		CI95Low:  cmp.CI95Low,
		CI95High: cmp.CI95High,
	}
	return r
}

// WriteFile writes the report as indented JSON, atomically
func (r Report) WriteFile(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(filename, append(data, '\n'), os.FileMode(0o644))
}
