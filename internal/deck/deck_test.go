package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beira/bisca6/internal/randutil"
)

func TestNewShuffledIsPermutation(t *testing.T) {
	cards := NewShuffled(randutil.NewString("permutation"))
	require.Len(t, cards, Size)

	seen := make(map[Card]int, Size)
	for _, c := range cards {
		seen[c]++
	}
	require.Len(t, seen, Size, "deck contains duplicate cards")
	for c, n := range seen {
		assert.Equal(t, 1, n, "card %s appears %d times", c, n)
	}
}

func TestNewShuffledDeterministic(t *testing.T) {
	a := NewShuffled(randutil.NewString("same-seed"))
	b := NewShuffled(randutil.NewString("same-seed"))
	require.Equal(t, a, b, "identical seeds must give identical deck order")

	c := NewShuffled(randutil.NewString("other-seed"))
	assert.NotEqual(t, a, c, "distinct seeds should not collide on deck order")
}

func TestDeckTotalPoints(t *testing.T) {
	cards := NewShuffled(randutil.NewString("points"))
	assert.Equal(t, TotalPoints, Points(cards))
}

func TestPointsSubset(t *testing.T) {
	cards := []Card{
		NewCard(Spades, Ace),   // 11
		NewCard(Hearts, Seven), // 10
		NewCard(Clubs, Six),    // 0
	}
	assert.Equal(t, 21, Points(cards))
}
