package game

import "github.com/beira/bisca6/internal/deck"

// Play stores a card along with the seat that played it.
type Play struct {
	Player int
	Card   deck.Card
}

// Trick holds the ordered plays of an in-progress trick. A Match carries a
// nil *Trick between tricks, so "trick just completed" is an explicit state
// rather than an empty list.
type Trick struct {
	Plays []Play
}

// TrickResult is the outcome of a resolved trick. Winner is -1 when the
// trick tied; Points is always the sum of all played cards regardless of
// tie status, only its destination differs.
type TrickResult struct {
	Winner int
	Points int
	Tie    bool
}

// Weight classes: any trump beats any led-suit card, any led-suit card beats
// any off-suit card. Within a class, rank strength decides.
const (
	trumpWeight = 200
	ledWeight   = 100
)

func cardWeight(c deck.Card, led, trump deck.Suit) int {
	switch {
	case c.Suit == trump:
		return trumpWeight + c.Rank.Strength()
	case c.Suit == led:
		return ledWeight + c.Rank.Strength()
	default:
		return c.Rank.Strength()
	}
}

// ResolveTrick computes the winner (or tie) and point total of a trick. The
// led suit is taken from the first play, so play order must be seat order
// starting at the lead. Two or more plays sharing the maximum weight is a
// tie: no first-occurrence tie-break is applied.
func ResolveTrick(plays []Play, trump deck.Suit) (TrickResult, error) {
	if len(plays) == 0 {
		return TrickResult{}, ErrEmptyTrick
	}

	led := plays[0].Card.Suit

	best := -1
	winner := -1
	atMax := 0
	points := 0
	for _, p := range plays {
		points += p.Card.Rank.Points()
		w := cardWeight(p.Card, led, trump)
		switch {
		case w > best:
			best = w
			winner = p.Player
			atMax = 1
		case w == best:
			atMax++
		}
	}

	if atMax > 1 {
		return TrickResult{Winner: -1, Points: points, Tie: true}, nil
	}
	return TrickResult{Winner: winner, Points: points}, nil
}

// Team returns the team index for a seat: even seats are team A (0), odd
// seats are team B (1). Assignment is fixed for the life of a match.
func Team(player int) int {
	return player % 2
}

// NextLead derives the next trick's leader. A tie leaves the lead unchanged.
// A win by the leading team also leaves it unchanged, even across many
// consecutive tricks; the lead only moves when the opposing team takes the
// trick, and then it moves to the winning seat.
func NextLead(currentLead int, res TrickResult) int {
	if res.Tie {
		return currentLead
	}
	if Team(res.Winner) == Team(currentLead) {
		return currentLead
	}
	return res.Winner
}
