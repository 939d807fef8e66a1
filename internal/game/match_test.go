package game

import (
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beira/bisca6/internal/deck"
)

func newTestMatch(t *testing.T, seed string) *Match {
	t.Helper()
	return InitMatch(seed, log.New(io.Discard))
}

func TestInitMatchDeterministic(t *testing.T) {
	a := newTestMatch(t, "replay-me")
	b := newTestMatch(t, "replay-me")

	require.Equal(t, a.Pile, b.Pile)
	require.Equal(t, a.Trump, b.Trump)
	require.Equal(t, a.TrumpCard, b.TrumpCard)
	require.Equal(t, a.Hands, b.Hands)

	c := newTestMatch(t, "another-seed")
	assert.NotEqual(t, a.Pile, c.Pile)
}

func TestInitMatchDealShape(t *testing.T) {
	m := newTestMatch(t, "deal-shape")

	for p := 0; p < NumPlayers; p++ {
		assert.Len(t, m.Hands[p], HandSize, "seat %d", p)
	}
	// 36 - 18 dealt = 18; the revealed trump card re-enters at the bottom.
	require.Len(t, m.Pile, 18)
	assert.Equal(t, m.TrumpCard, m.Pile[len(m.Pile)-1], "trump card must be drawn last")
	assert.Equal(t, m.TrumpCard.Suit, m.Trump)

	assert.Equal(t, 0, m.Lead)
	assert.Equal(t, [2]int{0, 0}, m.Scores)
	assert.Zero(t, m.TiePoints)
	assert.Empty(t, m.Log)
	require.NotNil(t, m.Punishments)
}

func TestInitMatchNoDuplicateCards(t *testing.T) {
	m := newTestMatch(t, "uniqueness")
	seen := make(map[deck.Card]bool, deck.Size)
	count := 0
	record := func(c deck.Card) {
		require.False(t, seen[c], "card %s appears twice", c)
		seen[c] = true
		count++
	}
	for p := 0; p < NumPlayers; p++ {
		for _, c := range m.Hands[p] {
			record(c)
		}
	}
	for _, c := range m.Pile {
		record(c)
	}
	assert.Equal(t, deck.Size, count)
}

func TestLegalMovesTurnGating(t *testing.T) {
	m := newTestMatch(t, "turn-gate")

	require.Equal(t, 0, m.Turn())
	moves := m.LegalMoves(0)
	assert.ElementsMatch(t, m.Hands[0], moves, "on turn: whole hand is legal")
	for p := 1; p < NumPlayers; p++ {
		assert.Empty(t, m.LegalMoves(p), "seat %d is not on turn", p)
	}

	require.NoError(t, m.PlayCard(0, m.Hands[0][0]))
	assert.Equal(t, 1, m.Turn())
	assert.Empty(t, m.LegalMoves(0))
	assert.Len(t, m.LegalMoves(1), HandSize)
}

func TestPlayCardOutOfTurn(t *testing.T) {
	m := newTestMatch(t, "turn-error")
	before := snapshot(m)

	err := m.PlayCard(3, m.Hands[3][0])
	var turnErr *TurnError
	require.ErrorAs(t, err, &turnErr)
	assert.Equal(t, 3, turnErr.Player)
	assert.Equal(t, 0, turnErr.Expected)

	assert.Equal(t, before, snapshot(m), "rejected call must leave state unmodified")
}

func TestPlayCardMissingCard(t *testing.T) {
	m := newTestMatch(t, "missing-card")
	before := snapshot(m)

	// Cards are unique, so anything from seat 1's hand cannot be in seat 0's.
	foreign := m.Hands[1][0]
	err := m.PlayCard(0, foreign)
	var missing *MissingCardError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 0, missing.Player)
	assert.Equal(t, foreign, missing.Card)

	assert.Equal(t, before, snapshot(m), "rejected call must leave state unmodified")
}

func TestPlayCardFirstTrick(t *testing.T) {
	m := newTestMatch(t, "first-trick")

	played := make([]deck.Card, 0, NumPlayers)
	for i := 0; i < NumPlayers; i++ {
		p := m.Turn()
		moves := m.LegalMoves(p)
		require.NotEmpty(t, moves)
		played = append(played, moves[0])
		require.NoError(t, m.PlayCard(p, moves[0]))
	}

	// The sixth play resolved the trick and cleared it.
	assert.Nil(t, m.CurrentTrick())
	require.Len(t, m.Log, NumPlayers)

	trickPoints := deck.Points(played)
	awarded := m.Scores[0] + m.Scores[1] + m.TiePoints
	assert.Equal(t, trickPoints, awarded, "trick points must land in a score or in the carry")

	if m.TiePoints == 0 {
		// Clear win: winner-first replenishment topped every hand back up.
		for p := 0; p < NumPlayers; p++ {
			assert.Len(t, m.Hands[p], HandSize, "seat %d after replenishment", p)
		}
		assert.Len(t, m.Pile, 12)
	}
	assert.NoError(t, m.ValidatePointConservation())
}

func TestDrawReplenishmentOrder(t *testing.T) {
	// Constructed endgame: one card each, seat 3 holds the only trump and
	// wins, pile of nine known cards. Seat 3 draws first, then 4, 5, 0, 1, 2,
	// each topped up to three before the next seat draws; the pile runs dry
	// after seats 3, 4 and 5.
	pile := []deck.Card{
		card(deck.Diamonds, deck.Ace),
		card(deck.Diamonds, deck.King),
		card(deck.Diamonds, deck.Queen),
		card(deck.Diamonds, deck.Jack),
		card(deck.Diamonds, deck.Seven),
		card(deck.Diamonds, deck.Six),
		card(deck.Diamonds, deck.Five),
		card(deck.Diamonds, deck.Four),
		card(deck.Diamonds, deck.Three),
	}
	m := &Match{
		Trump:  deck.Clubs,
		Lead:   0,
		Pile:   append([]deck.Card(nil), pile...),
		logger: log.New(io.Discard),
	}
	m.Punishments = NewPunishmentQueue()
	m.Hands[0] = []deck.Card{card(deck.Spades, deck.King)}
	m.Hands[1] = []deck.Card{card(deck.Spades, deck.Queen)}
	m.Hands[2] = []deck.Card{card(deck.Spades, deck.Jack)}
	m.Hands[3] = []deck.Card{card(deck.Clubs, deck.Three)}
	m.Hands[4] = []deck.Card{card(deck.Hearts, deck.Six)}
	m.Hands[5] = []deck.Card{card(deck.Hearts, deck.Five)}

	for i := 0; i < NumPlayers; i++ {
		p := m.Turn()
		require.NoError(t, m.PlayCard(p, m.Hands[p][0]))
	}

	assert.Equal(t, pile[0:3], m.Hands[3], "winner draws first")
	assert.Equal(t, pile[3:6], m.Hands[4])
	assert.Equal(t, pile[6:9], m.Hands[5])
	assert.Empty(t, m.Hands[0], "pile was empty before seat 0 could draw")
	assert.Empty(t, m.Hands[1])
	assert.Empty(t, m.Hands[2])
	assert.Empty(t, m.Pile)

	// Seat 3 (team B) beat the seat-0 lead (team A), so the lead moved.
	assert.Equal(t, 3, m.Lead)
}

func TestTiePointsCarryToNextClearWinner(t *testing.T) {
	// Duplicate trumps force a tie; a real deal cannot produce one, but the
	// resolver must carry the points forward all the same.
	m := &Match{
		Trump:  deck.Clubs,
		Lead:   0,
		logger: log.New(io.Discard),
	}
	m.Punishments = NewPunishmentQueue()
	m.Hands[0] = []deck.Card{card(deck.Diamonds, deck.Four), card(deck.Diamonds, deck.Ace)}
	m.Hands[1] = []deck.Card{card(deck.Clubs, deck.Ace), card(deck.Hearts, deck.Five)}
	m.Hands[2] = []deck.Card{card(deck.Hearts, deck.Seven), card(deck.Spades, deck.Five)}
	m.Hands[3] = []deck.Card{card(deck.Clubs, deck.Ace), card(deck.Hearts, deck.Four)}
	m.Hands[4] = []deck.Card{card(deck.Hearts, deck.Three), card(deck.Spades, deck.Six)}
	m.Hands[5] = []deck.Card{card(deck.Spades, deck.Three), card(deck.Hearts, deck.Six)}

	// Trick one: both club aces tie at the top.
	for i := 0; i < NumPlayers; i++ {
		p := m.Turn()
		require.NoError(t, m.PlayCard(p, m.Hands[p][0]))
	}
	assert.Equal(t, [2]int{0, 0}, m.Scores)
	// 0 + 11 + 10 + 11 + 0 + 0
	assert.Equal(t, 32, m.TiePoints)
	assert.Equal(t, 0, m.Lead, "tie leaves the lead unchanged")

	// Trick two: seat 0's led ace of diamonds wins cleanly and collects the
	// carried points in full.
	for i := 0; i < NumPlayers; i++ {
		p := m.Turn()
		require.NoError(t, m.PlayCard(p, m.Hands[p][0]))
	}
	assert.Equal(t, 32+11, m.Scores[0])
	assert.Zero(t, m.Scores[1])
	assert.Zero(t, m.TiePoints, "carry is released in full, never split or kept")
	assert.Equal(t, 0, m.Lead)
	assert.True(t, m.Done())
}

func TestPlayHandCompletesAndConserves(t *testing.T) {
	seeds := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel"}
	for _, seed := range seeds {
		t.Run(seed, func(t *testing.T) {
			m := newTestMatch(t, seed).PlayHand()

			assert.True(t, m.Done())
			for p := 0; p < NumPlayers; p++ {
				assert.Empty(t, m.Hands[p])
			}
			assert.Empty(t, m.Pile, "every card re-enters play, including the trump reveal")
			assert.Len(t, m.Log, deck.Size)
			total := m.Scores[0] + m.Scores[1] + m.TiePoints
			assert.Equal(t, deck.TotalPoints, total, "seed %s leaks points", seed)
			assert.NoError(t, m.ValidatePointConservation())
		})
	}
}

func TestPlayHandDeterministic(t *testing.T) {
	a := newTestMatch(t, "identical").PlayHand()
	b := newTestMatch(t, "identical").PlayHand()

	assert.Equal(t, a.Scores, b.Scores)
	assert.Equal(t, a.Log, b.Log)
	assert.Equal(t, a.RenderLog(), b.RenderLog())
}

func TestPlayHandContinuesInteractiveTrick(t *testing.T) {
	m := newTestMatch(t, "mixed-mode")
	require.NoError(t, m.PlayCard(0, m.Hands[0][0]))
	require.NoError(t, m.PlayCard(1, m.Hands[1][0]))

	m.PlayHand()
	assert.True(t, m.Done())
	assert.Len(t, m.Log, deck.Size)
	assert.Equal(t, deck.TotalPoints, m.Scores[0]+m.Scores[1]+m.TiePoints)
}

func TestRenderLogFormat(t *testing.T) {
	m := newTestMatch(t, "log-format")
	require.NoError(t, m.PlayCard(0, m.Hands[0][0]))

	out := m.RenderLog()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	moveLine := regexp.MustCompile(`^Move 1: Player 0 played [AKQJ76543][♠♥♦♣]$`)
	assert.Regexp(t, moveLine, lines[0])
	assert.Equal(t, "Team A: 0, Team B: 0", lines[1])
}

func TestRenderLogFullHand(t *testing.T) {
	m := newTestMatch(t, "full-log").PlayHand()
	lines := strings.Split(strings.TrimRight(m.RenderLog(), "\n"), "\n")
	require.Len(t, lines, deck.Size+1)

	for i := 0; i < deck.Size; i++ {
		assert.Regexp(t, regexp.MustCompile(`^Move \d+: Player [0-5] played .+$`), lines[i])
	}
	last := lines[deck.Size]
	assert.Regexp(t, regexp.MustCompile(`^Team A: \d+, Team B: \d+$`), last)
}

// snapshot captures everything PlayCard may touch, for no-partial-mutation
// checks.
type matchSnapshot struct {
	pile      []deck.Card
	hands     [NumPlayers][]deck.Card
	scores    [2]int
	tiePoints int
	lead      int
	logLen    int
	trick     []Play
}

func snapshot(m *Match) matchSnapshot {
	s := matchSnapshot{
		pile:      append([]deck.Card(nil), m.Pile...),
		scores:    m.Scores,
		tiePoints: m.TiePoints,
		lead:      m.Lead,
		logLen:    len(m.Log),
		trick:     m.CurrentTrick(),
	}
	for p := 0; p < NumPlayers; p++ {
		s.hands[p] = append([]deck.Card(nil), m.Hands[p]...)
	}
	return s
}
