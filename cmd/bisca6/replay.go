package main

import (
	"fmt"

	"github.com/beira/bisca6/cmd/bisca6/shared"
	"github.com/beira/bisca6/internal/game"
)

// ReplayCmd auto-plays one seeded hand and prints the resulting move log.
// The same seed always yields the same log, so it doubles as a quick way to
// inspect what a reported simulation hand actually did.
type ReplayCmd struct {
	Seed  string `arg:"" help:"Seed of the hand to replay"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *ReplayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	m := game.InitMatch(c.Seed, logger).PlayHand()
	if err := m.ValidatePointConservation(); err != nil {
		return err
	}

	fmt.Printf("Seed: %s  Trump: %s (%s)\n\n", m.Seed, m.Trump, m.TrumpCard)
	fmt.Print(m.RenderLog())
	if m.TiePoints > 0 {
		fmt.Printf("Carried tie points at hand end: %d\n", m.TiePoints)
	}
	return nil
}
