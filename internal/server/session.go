package server

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/beira/bisca6/internal/game"
	"github.com/beira/bisca6/internal/matchid"
)

// humanSeat is the seat a connected client controls when auto-play is on;
// the remaining seats are played by the server.
const humanSeat = 0

// Session owns one match on behalf of one websocket connection. All calls
// come from that connection's read loop, so a session needs no locking.
type Session struct {
	ID    string
	match *game.Match

	settings MatchSettings
	logger   *log.Logger
	clock    quartz.Clock
}

// NewSession creates a session and its initial match. An empty seed falls
// back to the configured default, then to a random one.
func NewSession(settings MatchSettings, seed string, logger *log.Logger, clock quartz.Clock) *Session {
	s := &Session{
		ID:       matchid.New(),
		settings: settings,
		logger:   logger.WithPrefix("session"),
		clock:    clock,
	}
	s.startMatch(seed)
	return s
}

func (s *Session) startMatch(seed string) {
	if seed == "" {
		seed = s.settings.DefaultSeed
	}
	if seed == "" {
		seed = matchid.New()
	}
	s.match = game.InitMatch(seed, s.logger)
	s.logger.Info("match started", "id", s.ID, "seed", seed, "trump", s.match.Trump)
}

// Match exposes the session's match for read-only use.
func (s *Session) Match() *game.Match {
	return s.match
}

// Handle processes one client message and returns the reply. Mutating
// messages reply with a full state snapshot.
func (s *Session) Handle(msg ClientMessage) ServerMessage {
	switch msg.Type {
	case MsgInit:
		s.startMatch(msg.Seed)
		return s.stateReply()

	case MsgState:
		return s.stateReply()

	case MsgLegal:
		if err := checkSeat(msg.Player); err != nil {
			return s.errorReply(err)
		}
		return ServerMessage{
			Type:    MsgMoves,
			MatchID: s.ID,
			Moves:   payloadFromCards(s.match.LegalMoves(msg.Player)),
		}

	case MsgPlay:
		if err := checkSeat(msg.Player); err != nil {
			return s.errorReply(err)
		}
		if msg.Card == nil {
			return s.errorReply(fmt.Errorf("play message requires a card"))
		}
		card, err := cardFromPayload(*msg.Card)
		if err != nil {
			return s.errorReply(err)
		}
		if err := s.match.PlayCard(msg.Player, card); err != nil {
			return s.errorReply(err)
		}
		if s.settings.AutoPlay {
			s.playBots()
		}
		return s.stateReply()

	case MsgPunish:
		s.match.Punishments.Submit()
		return s.stateReply()

	default:
		return s.errorReply(fmt.Errorf("unknown message type %q", msg.Type))
	}
}

// playBots advances the server-controlled seats until the human is on turn
// again or the hand ends, pacing each play on the session clock.
func (s *Session) playBots() {
	for !s.match.Done() && s.match.Turn() != humanSeat {
		s.pause()
		seat := s.match.Turn()
		moves := s.match.LegalMoves(seat)
		if len(moves) == 0 {
			// Seat ran dry after a tied trick; nothing to advance with.
			return
		}
		if err := s.match.PlayCard(seat, moves[0]); err != nil {
			s.logger.Error("bot play rejected", "seat", seat, "error", err)
			return
		}
	}
}

func (s *Session) pause() {
	delay := time.Duration(s.settings.BotDelayMs) * time.Millisecond
	if delay <= 0 {
		return
	}
	fired := make(chan struct{})
	t := s.clock.AfterFunc(delay, func() {
		close(fired)
	})
	defer t.Stop()
	<-fired
}

func (s *Session) stateReply() ServerMessage {
	return ServerMessage{Type: MsgState, MatchID: s.ID, State: stateFromMatch(s.match)}
}

func (s *Session) errorReply(err error) ServerMessage {
	return ServerMessage{Type: MsgError, MatchID: s.ID, Error: err.Error()}
}

func checkSeat(player int) error {
	if player < 0 || player >= game.NumPlayers {
		return fmt.Errorf("seat %d out of range", player)
	}
	return nil
}
