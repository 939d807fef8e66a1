package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/beira/bisca6/internal/deck"
	"github.com/beira/bisca6/internal/randutil"
)

const (
	// NumPlayers is the fixed seat count. Seats 0,2,4 are team A and seats
	// 1,3,5 are team B.
	NumPlayers = 6

	// HandSize is the hand cards are dealt and replenished to while the draw
	// pile lasts.
	HandSize = 3
)

// Match is the aggregate state of one hand. It is created by InitMatch,
// mutated in place by PlayCard/PlayHand, and discarded when done. Exported
// fields are read-only for callers; all mutation goes through the methods.
type Match struct {
	Seed      string
	Pile      []deck.Card // front = next draw
	Trump     deck.Suit
	TrumpCard deck.Card // revealed card, re-enters circulation at the pile bottom
	Lead      int
	Hands     [NumPlayers][]deck.Card
	Scores    [2]int // indexed by team
	TiePoints int    // points from tied tricks, carried to the next clear winner
	Log       []LogEntry

	// Punishments is the match's punishment ledger. The engine never submits
	// to it; that orchestration belongs to the hosting application.
	Punishments *PunishmentQueue

	trick  *Trick // nil between tricks
	logger *log.Logger
}

// InitMatch builds a match from a seed string: shuffles the deck, deals three
// cards to each of the six seats in seat-major rounds, reveals the next card
// as trump and moves it to the bottom of the draw pile. Player 0 leads.
// A nil logger disables engine logging.
func InitMatch(seed string, logger *log.Logger) *Match {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := randutil.NewString(seed)
	cards := deck.NewShuffled(rng)

	m := &Match{
		Seed:        seed,
		Punishments: NewPunishmentQueue(),
		logger:      logger,
	}

	next := 0
	for round := 0; round < HandSize; round++ {
		for p := 0; p < NumPlayers; p++ {
			m.Hands[p] = append(m.Hands[p], cards[next])
			next++
		}
	}

	// The revealed trump card goes to the bottom of the pile and is drawn
	// last.
	m.TrumpCard = cards[next]
	m.Trump = m.TrumpCard.Suit
	m.Pile = append(m.Pile, cards[next+1:]...)
	m.Pile = append(m.Pile, m.TrumpCard)

	m.logger.Debug("match initialised",
		"seed", seed,
		"trump", m.Trump,
		"trumpCard", m.TrumpCard,
		"pile", len(m.Pile))

	return m
}

// Turn returns the seat whose turn it is within the current trick.
func (m *Match) Turn() int {
	return (m.Lead + m.trickLen()) % NumPlayers
}

// CurrentTrick returns a copy of the in-progress trick's plays, or nil when
// no trick is in progress.
func (m *Match) CurrentTrick() []Play {
	if m.trick == nil {
		return nil
	}
	out := make([]Play, len(m.trick.Plays))
	copy(out, m.trick.Plays)
	return out
}

// Done reports whether the hand is over: every seat's hand is empty.
func (m *Match) Done() bool {
	for p := 0; p < NumPlayers; p++ {
		if len(m.Hands[p]) > 0 {
			return false
		}
	}
	return true
}

// LegalMoves returns the player's full hand when it is their turn, otherwise
// nothing. Any held card is legal on the player's turn; following suit is not
// enforced (see the package comment).
func (m *Match) LegalMoves(player int) []deck.Card {
	if player != m.Turn() {
		return nil
	}
	out := make([]deck.Card, len(m.Hands[player]))
	copy(out, m.Hands[player])
	return out
}

// PlayCard submits one card for the given seat. It fails with *TurnError if
// it is not that seat's turn and with *MissingCardError if the card is not in
// the seat's hand; both checks run before any mutation. The sixth play of a
// trick resolves it atomically: scoring, tie-point carry, lead rotation and
// draw replenishment all happen before PlayCard returns.
func (m *Match) PlayCard(player int, card deck.Card) error {
	if turn := m.Turn(); player != turn {
		return &TurnError{Player: player, Expected: turn}
	}

	idx := -1
	for i, c := range m.Hands[player] {
		if c == card {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &MissingCardError{Player: player, Card: card}
	}

	m.commitPlay(player, idx)
	if m.trickLen() == NumPlayers {
		m.finishTrick()
	}
	return nil
}

// PlayHand batch-simulates the hand to completion with the placeholder
// strategy: each acting seat plays the first card in its hand, in turn order
// from the lead. Seats that have run out of cards are skipped, so late-game
// tricks after a tied trick may hold fewer than six plays. Returns the match
// for chaining.
func (m *Match) PlayHand() *Match {
	for !m.Done() {
		for off := m.trickLen(); off < NumPlayers; off++ {
			p := (m.Lead + off) % NumPlayers
			if len(m.Hands[p]) == 0 {
				continue
			}
			m.commitPlay(p, 0)
		}
		m.finishTrick()
	}
	m.logger.Debug("hand complete",
		"seed", m.Seed,
		"teamA", m.Scores[0],
		"teamB", m.Scores[1],
		"tiePoints", m.TiePoints)
	return m
}

// ValidatePointConservation checks that awarded scores, carried tie-points
// and the points still held in hands, pile and the in-progress trick add up
// to the full deck value.
func (m *Match) ValidatePointConservation() error {
	total := m.Scores[0] + m.Scores[1] + m.TiePoints
	total += deck.Points(m.Pile)
	for p := 0; p < NumPlayers; p++ {
		total += deck.Points(m.Hands[p])
	}
	if m.trick != nil {
		for _, play := range m.trick.Plays {
			total += play.Card.Rank.Points()
		}
	}
	if total != deck.TotalPoints {
		return fmt.Errorf("point conservation violated: have %d, want %d", total, deck.TotalPoints)
	}
	return nil
}

func (m *Match) trickLen() int {
	if m.trick == nil {
		return 0
	}
	return len(m.trick.Plays)
}

// commitPlay removes the card at idx from the seat's hand, appends the log
// entry and adds the play to the in-progress trick. Validation is the
// caller's job.
func (m *Match) commitPlay(player, idx int) {
	card := m.Hands[player][idx]
	m.Hands[player] = append(m.Hands[player][:idx], m.Hands[player][idx+1:]...)
	m.Log = append(m.Log, LogEntry{Move: len(m.Log) + 1, Player: player, Card: card})
	if m.trick == nil {
		m.trick = &Trick{Plays: make([]Play, 0, NumPlayers)}
	}
	m.trick.Plays = append(m.trick.Plays, Play{Player: player, Card: card})
	m.logger.Debug("card played", "move", len(m.Log), "player", player, "card", card)
}

// finishTrick resolves the in-progress trick and applies scoring, tie-point
// carry, lead rotation and replenishment. A tied trick carries its points
// forward, leaves the lead unchanged and skips replenishment.
func (m *Match) finishTrick() {
	if m.trick == nil || len(m.trick.Plays) == 0 {
		return
	}
	res, err := ResolveTrick(m.trick.Plays, m.Trump)
	if err != nil {
		// Unreachable: the trick is non-empty by the guard above.
		return
	}
	m.trick = nil

	if res.Tie {
		m.TiePoints += res.Points
		m.logger.Debug("trick tied", "points", res.Points, "carried", m.TiePoints)
		return
	}

	m.Scores[Team(res.Winner)] += res.Points + m.TiePoints
	m.logger.Debug("trick won",
		"winner", res.Winner,
		"points", res.Points,
		"carried", m.TiePoints,
		"lead", m.Lead)
	m.TiePoints = 0
	m.Lead = NextLead(m.Lead, res)
	if len(m.Pile) > 0 {
		m.draw(res.Winner)
	}
}

// draw replenishes hands from the front of the pile: the winner first, then
// clockwise, each seat topped up to HandSize before the next seat draws. The
// strict winner-first sequential order decides which seat receives which
// card and must not be interleaved.
func (m *Match) draw(winner int) {
	for off := 0; off < NumPlayers; off++ {
		p := (winner + off) % NumPlayers
		for len(m.Hands[p]) < HandSize && len(m.Pile) > 0 {
			m.Hands[p] = append(m.Hands[p], m.Pile[0])
			m.Pile = m.Pile[1:]
		}
	}
}
