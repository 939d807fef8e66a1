package server

import (
	"fmt"

	"github.com/beira/bisca6/internal/deck"
	"github.com/beira/bisca6/internal/game"
)

// Client message types.
const (
	MsgInit   = "init"   // start a fresh match, optionally with a seed
	MsgState  = "state"  // request the current state snapshot
	MsgLegal  = "legal"  // request legal moves for a seat
	MsgPlay   = "play"   // submit a card for a seat
	MsgPunish = "punish" // submit to the punishment ledger
)

// Server message types.
const (
	MsgError = "error"
	MsgMoves = "moves"
)

// ClientMessage is a request from a websocket client.
type ClientMessage struct {
	Type   string       `json:"type"`
	Seed   string       `json:"seed,omitempty"`
	Player int          `json:"player,omitempty"`
	Card   *CardPayload `json:"card,omitempty"`
}

// ServerMessage is a reply to a websocket client. State replies carry a full
// snapshot; clients are expected to re-render from it after every mutation.
type ServerMessage struct {
	Type    string        `json:"type"`
	MatchID string        `json:"match_id,omitempty"`
	Error   string        `json:"error,omitempty"`
	Moves   []CardPayload `json:"moves,omitempty"`
	State   *StatePayload `json:"state,omitempty"`
}

// CardPayload is the wire form of a card.
type CardPayload struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// PlayPayload is the wire form of one play in the current trick.
type PlayPayload struct {
	Player int         `json:"player"`
	Card   CardPayload `json:"card"`
}

// StatePayload is a read-only snapshot of a match.
type StatePayload struct {
	Seed        string          `json:"seed"`
	Trump       string          `json:"trump"`
	TrumpCard   CardPayload     `json:"trump_card"`
	Lead        int             `json:"lead"`
	Turn        int             `json:"turn"`
	Hands       [][]CardPayload `json:"hands"`
	PileSize    int             `json:"pile_size"`
	Scores      [2]int          `json:"scores"`
	TiePoints   int             `json:"tie_points"`
	Trick       []PlayPayload   `json:"trick"`
	Punishments []int           `json:"punishments"`
	Done        bool            `json:"done"`
	Log         string          `json:"log"`
}

var suitNames = map[deck.Suit]string{
	deck.Spades:   "spades",
	deck.Hearts:   "hearts",
	deck.Diamonds: "diamonds",
	deck.Clubs:    "clubs",
}

var rankNames = map[deck.Rank]string{
	deck.Ace:   "A",
	deck.King:  "K",
	deck.Queen: "Q",
	deck.Jack:  "J",
	deck.Seven: "7",
	deck.Six:   "6",
	deck.Five:  "5",
	deck.Four:  "4",
	deck.Three: "3",
}

func payloadFromCard(c deck.Card) CardPayload {
	return CardPayload{Rank: rankNames[c.Rank], Suit: suitNames[c.Suit]}
}

func cardFromPayload(p CardPayload) (deck.Card, error) {
	var suit deck.Suit
	found := false
	for s, name := range suitNames {
		if name == p.Suit {
			suit, found = s, true
			break
		}
	}
	if !found {
		return deck.Card{}, fmt.Errorf("unknown suit %q", p.Suit)
	}
	for r, name := range rankNames {
		if name == p.Rank {
			return deck.NewCard(suit, r), nil
		}
	}
	return deck.Card{}, fmt.Errorf("unknown rank %q", p.Rank)
}

func payloadFromCards(cards []deck.Card) []CardPayload {
	out := make([]CardPayload, len(cards))
	for i, c := range cards {
		out[i] = payloadFromCard(c)
	}
	return out
}

func stateFromMatch(m *game.Match) *StatePayload {
	hands := make([][]CardPayload, game.NumPlayers)
	for p := 0; p < game.NumPlayers; p++ {
		hands[p] = payloadFromCards(m.Hands[p])
	}
	trick := m.CurrentTrick()
	plays := make([]PlayPayload, len(trick))
	for i, play := range trick {
		plays[i] = PlayPayload{Player: play.Player, Card: payloadFromCard(play.Card)}
	}
	return &StatePayload{
		Seed:        m.Seed,
		Trump:       suitNames[m.Trump],
		TrumpCard:   payloadFromCard(m.TrumpCard),
		Lead:        m.Lead,
		Turn:        m.Turn(),
		Hands:       hands,
		PileSize:    len(m.Pile),
		Scores:      m.Scores,
		TiePoints:   m.TiePoints,
		Trick:       plays,
		Punishments: m.Punishments.Cards(),
		Done:        m.Done(),
		Log:         m.RenderLog(),
	}
}
