package main

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/beira/bisca6/cmd/bisca6/shared"
	"github.com/beira/bisca6/internal/game"
	"github.com/beira/bisca6/internal/matchid"
	"github.com/beira/bisca6/internal/tui"
)

// PlayCmd runs an interactive match against the built-in bots.
type PlayCmd struct {
	Seed    string `help:"Match seed (random when empty)"`
	DelayMs int    `default:"400" help:"Delay between bot moves in milliseconds"`
	NoColor bool   `help:"Disable colour output"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	// Engine logs would tear the TUI apart, so they stay off unless asked for.
	logger := log.New(io.Discard)
	if c.Debug {
		logger = shared.SetupLogger(true)
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := c.Seed
	if seed == "" {
		seed = matchid.New()
	}

	m := game.InitMatch(seed, logger)
	return tui.Run(m, time.Duration(c.DelayMs)*time.Millisecond, logger)
}
