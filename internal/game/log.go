package game

import (
	"fmt"
	"strings"

	"github.com/beira/bisca6/internal/deck"
)

// LogEntry records one play in chronological order. Move numbers start at 1.
type LogEntry struct {
	Move   int
	Player int
	Card   deck.Card
}

// String renders the entry in the canonical log line format.
func (e LogEntry) String() string {
	return fmt.Sprintf("Move %d: Player %d played %s", e.Move, e.Player, e.Card)
}

// RenderLog renders the chronological play log, one line per entry, followed
// by the score summary line.
func (m *Match) RenderLog() string {
	var b strings.Builder
	for _, e := range m.Log {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Team A: %d, Team B: %d\n", m.Scores[0], m.Scores[1])
	return b.String()
}
