package deck

import "github.com/beira/bisca6/internal/randutil"

const (
	// Size is the number of cards in a full deck: 4 suits × 9 ranks.
	Size = 36

	// TotalPoints is the point value of a full deck. Scoring must conserve
	// this across a hand.
	TotalPoints = 116
)

// NewShuffled builds the 36-card universe in suit-major order and shuffles it
// in place with a Fisher–Yates pass driven by rng. Both the enumeration order
// and the shuffle loop are load-bearing: changing either changes which seed
// produces which deck and breaks replay of recorded seeds.
func NewShuffled(rng *randutil.Stream) []Card {
	cards := make([]Card, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= Three; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

// Points sums the scoring value of the given cards.
func Points(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Rank.Points()
	}
	return total
}
