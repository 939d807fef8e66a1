package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beira/bisca6/internal/deck"
)

func TestRunDeterministic(t *testing.T) {
	run := func(workers int) []int {
		sim := New(Config{Hands: 8, Seed: "bench", Workers: workers})
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, 8, stats.Hands)

		out := make([]int, 0, 16)
		for _, r := range stats.Results {
			out = append(out, r.TeamA, r.TeamB)
		}
		return out
	}

	serial := run(1)
	parallel := run(4)
	assert.Equal(t, serial, parallel, "worker count must not change results")
	assert.Equal(t, serial, run(1), "same base seed must reproduce the run")
}

func TestRunConservesPoints(t *testing.T) {
	sim := New(Config{Hands: 16, Seed: "conserve", Workers: 4})
	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	for _, r := range stats.Results {
		assert.Equal(t, deck.TotalPoints, r.TeamA+r.TeamB+r.TiePoints+r.Unplayed, "seed %s", r.Seed)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sim := New(Config{Hands: 64, Seed: "cancelled", Workers: 2})
	_, err := sim.Run(ctx)
	assert.Error(t, err)
}

func TestHandSeedDerivation(t *testing.T) {
	sim := New(Config{Hands: 2, Seed: "base"})
	assert.Equal(t, "base-0", sim.HandSeed(0))
	assert.Equal(t, "base-17", sim.HandSeed(17))
}
