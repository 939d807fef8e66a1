// Package statistics aggregates results of simulated hands.
package statistics

import (
	"fmt"
	"math"

	"github.com/beira/bisca6/internal/deck"
)

// HandResult summarises one completed hand.
type HandResult struct {
	Seed      string `json:"seed"`
	TeamA     int    `json:"team_a"`
	TeamB     int    `json:"team_b"`
	TiePoints int    `json:"tie_points"` // residual carry at hand end
	Unplayed  int    `json:"unplayed"`   // points stranded in the pile, normally 0
	Moves     int    `json:"moves"`
}

// Winner returns 0 for a team A win, 1 for team B, -1 for a drawn hand.
func (r HandResult) Winner() int {
	switch {
	case r.TeamA > r.TeamB:
		return 0
	case r.TeamB > r.TeamA:
		return 1
	default:
		return -1
	}
}

// Statistics accumulates hand results.
type Statistics struct {
	Hands     int `json:"hands"`
	TeamAWins int `json:"team_a_wins"`
	TeamBWins int `json:"team_b_wins"`
	Drawn     int `json:"drawn"`

	SumA  int `json:"sum_a"`
	SumB  int `json:"sum_b"`
	sumA2 float64
	sumB2 float64

	Results []HandResult `json:"results"`
}

// Add records one hand result.
func (s *Statistics) Add(r HandResult) {
	s.Hands++
	switch r.Winner() {
	case 0:
		s.TeamAWins++
	case 1:
		s.TeamBWins++
	default:
		s.Drawn++
	}
	s.SumA += r.TeamA
	s.SumB += r.TeamB
	s.sumA2 += float64(r.TeamA) * float64(r.TeamA)
	s.sumB2 += float64(r.TeamB) * float64(r.TeamB)
	s.Results = append(s.Results, r)
}

// MeanA returns team A's mean points per hand.
func (s *Statistics) MeanA() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.SumA) / float64(s.Hands)
}

// MeanB returns team B's mean points per hand.
func (s *Statistics) MeanB() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.SumB) / float64(s.Hands)
}

// StdDevA returns the sample standard deviation of team A's points.
func (s *Statistics) StdDevA() float64 {
	return s.stdDev(float64(s.SumA), s.sumA2)
}

// StdDevB returns the sample standard deviation of team B's points.
func (s *Statistics) StdDevB() float64 {
	return s.stdDev(float64(s.SumB), s.sumB2)
}

func (s *Statistics) stdDev(sum, sum2 float64) float64 {
	if s.Hands < 2 {
		return 0
	}
	n := float64(s.Hands)
	mean := sum / n
	variance := (sum2 - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// Validate checks every recorded hand for point conservation: scores plus
// residual tie-points plus stranded pile points must equal the deck total.
func (s *Statistics) Validate() error {
	for _, r := range s.Results {
		total := r.TeamA + r.TeamB + r.TiePoints + r.Unplayed
		if total != deck.TotalPoints {
			return fmt.Errorf("seed %s: points total %d, want %d", r.Seed, total, deck.TotalPoints)
		}
	}
	return nil
}
