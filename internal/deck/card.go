package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. The bisca deck has nine ranks per suit;
// tens, nines and eights are not part of the deck.
type Rank int

const (
	Ace Rank = iota
	King
	Queen
	Jack
	Seven
	Six
	Five
	Four
	Three
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case Seven:
		return "7"
	case Six:
		return "6"
	case Five:
		return "5"
	case Four:
		return "4"
	case Three:
		return "3"
	default:
		return "?"
	}
}

// Points returns the scoring value of the rank. The full deck is worth 116
// points: 4×(11+10+4+3+2).
func (r Rank) Points() int {
	switch r {
	case Ace:
		return 11
	case Seven:
		return 10
	case King:
		return 4
	case Jack:
		return 3
	case Queen:
		return 2
	default:
		return 0
	}
}

// Strength returns the rank's position in the trick-taking order, higher is
// stronger. The seven outranks everything but the ace; this is the defining
// quirk of the ruleset and must not be "fixed" to numeric order.
func (r Rank) Strength() int {
	switch r {
	case Ace:
		return 8
	case Seven:
		return 7
	case King:
		return 6
	case Queen:
		return 5
	case Jack:
		return 4
	case Six:
		return 3
	case Five:
		return 2
	case Four:
		return 1
	case Three:
		return 0
	default:
		return -1
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}
