// Package simulator batch-runs seeded hands and aggregates their results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/beira/bisca6/internal/deck"
	"github.com/beira/bisca6/internal/game"
	"github.com/beira/bisca6/internal/statistics"
)

// Config holds configuration for a simulation run.
type Config struct {
	Hands   int
	Seed    string // base seed; hand i plays with "<seed>-<i>"
	Workers int    // 0 means GOMAXPROCS
	Logger  *log.Logger
}

// Simulator runs hand simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// HandSeed returns the derived seed for hand i.
func (s *Simulator) HandSeed(i int) string {
	return fmt.Sprintf("%s-%d", s.config.Seed, i)
}

// Run plays every hand to completion and returns aggregated statistics.
// Hands run in parallel but results are collected in hand order, so a run is
// fully reproducible for a fixed base seed.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.HandResult, s.config.Hands)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := 0; i < s.config.Hands; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := s.HandSeed(i)
			m := game.InitMatch(seed, s.config.Logger).PlayHand()
			if err := m.ValidatePointConservation(); err != nil {
				return fmt.Errorf("hand %d (seed %s): %w", i, seed, err)
			}
			results[i] = statistics.HandResult{
				Seed:      seed,
				TeamA:     m.Scores[0],
				TeamB:     m.Scores[1],
				TiePoints: m.TiePoints,
				Unplayed:  deck.Points(m.Pile),
				Moves:     len(m.Log),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("simulation complete",
		"hands", stats.Hands,
		"teamAWins", stats.TeamAWins,
		"teamBWins", stats.TeamBWins,
		"drawn", stats.Drawn)
	return stats, nil
}
