package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/beira/bisca6/cmd/bisca6/shared"
	"github.com/beira/bisca6/internal/fileutil"
	"github.com/beira/bisca6/internal/matchid"
	"github.com/beira/bisca6/internal/simulator"
)

// SimulateCmd batch-runs seeded hands with the auto-play strategy.
type SimulateCmd struct {
	Hands   int    `default:"1000" help:"Number of hands to simulate"`
	Seed    string `help:"Base seed; hand i plays with '<seed>-<i>' (random when empty)"`
	Workers int    `default:"0" help:"Worker goroutines (0 = GOMAXPROCS)"`
	Output  string `help:"Write full results as JSON to this file"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := c.Seed
	if seed == "" {
		seed = matchid.New()
	}

	sim := simulator.New(simulator.Config{
		Hands:   c.Hands,
		Seed:    seed,
		Workers: c.Workers,
		Logger:  logger,
	})

	ctx := shared.SetupSignalHandler(logger)
	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	fmt.Printf("Simulated %d hands with base seed %q in %v\n", stats.Hands, seed, duration.Round(time.Millisecond))
	fmt.Printf("Team A: %d wins, %.2f points/hand (stddev %.2f)\n", stats.TeamAWins, stats.MeanA(), stats.StdDevA())
	fmt.Printf("Team B: %d wins, %.2f points/hand (stddev %.2f)\n", stats.TeamBWins, stats.MeanB(), stats.StdDevB())
	if stats.Drawn > 0 {
		fmt.Printf("Drawn: %d hands\n", stats.Drawn)
	}

	if c.Output != "" {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		if err := fileutil.WriteFileAtomic(c.Output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		logger.Info("results written", "path", c.Output, "hands", stats.Hands)
	}
	return nil
}
