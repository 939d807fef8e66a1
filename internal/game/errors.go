package game

import (
	"errors"
	"fmt"

	"github.com/beira/bisca6/internal/deck"
)

// ErrEmptyTrick is returned when resolving a trick with no plays. This is a
// programming error, never expected in normal flow.
var ErrEmptyTrick = errors.New("cannot resolve an empty trick")

// TurnError reports a play submitted out of turn order. The caller may
// recover by re-prompting the correct player; the match state is unchanged.
type TurnError struct {
	Player   int
	Expected int
}

func (e *TurnError) Error() string {
	return fmt.Sprintf("player %d played out of turn, expected player %d", e.Player, e.Expected)
}

// MissingCardError reports a play referencing a card not present in the
// claimed hand. It indicates caller/state desync and must be surfaced, not
// swallowed; the match state is unchanged.
type MissingCardError struct {
	Player int
	Card   deck.Card
}

func (e *MissingCardError) Error() string {
	return fmt.Sprintf("player %d does not hold %s", e.Player, e.Card)
}
