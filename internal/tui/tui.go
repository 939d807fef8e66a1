// Package tui is the interactive terminal front end: the human plays seat 0
// and the remaining seats are auto-played with a short delay between moves.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/beira/bisca6/internal/deck"
	"github.com/beira/bisca6/internal/game"
)

// humanSeat is the seat the terminal player controls.
const humanSeat = 0

// logTail is how many recent log entries the view shows.
const logTail = 8

// botMoveMsg tells the model to advance one bot play.
type botMoveMsg struct{}

// Model is the Bubble Tea model for an interactive match.
type Model struct {
	match  *game.Match
	logger *log.Logger
	delay  time.Duration

	cursor   int
	status   string
	spin     spinner.Model
	botsBusy bool
	quitting bool
	width    int
}

// New creates a model around an already-initialised match.
func New(match *game.Match, delay time.Duration, logger *log.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = TrumpStyle
	return Model{
		match:  match,
		logger: logger.WithPrefix("tui"),
		delay:  delay,
		spin:   sp,
	}
}

// Run drives the model in a fresh Bubble Tea program until the player quits.
func Run(match *game.Match, delay time.Duration, logger *log.Logger) error {
	_, err := tea.NewProgram(New(match, delay, logger), tea.WithAltScreen()).Run()
	return err
}

// Match exposes the underlying match, mainly for tests.
func (m Model) Match() *game.Match {
	return m.match
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.maybeBots())
}

// maybeBots schedules bot play when the human is not on turn.
func (m *Model) maybeBots() tea.Cmd {
	if m.match.Done() || m.match.Turn() == humanSeat {
		m.botsBusy = false
		return nil
	}
	m.botsBusy = true
	if m.delay <= 0 {
		return func() tea.Msg { return botMoveMsg{} }
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return botMoveMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case botMoveMsg:
		return m.advanceBot()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}

	case "right", "l":
		if m.cursor < len(m.match.Hands[humanSeat])-1 {
			m.cursor++
		}

	case "p":
		m.match.Punishments.Submit()
		m.status = fmt.Sprintf("punishment submitted, ledger %v", m.match.Punishments.Cards())

	case "enter", " ":
		return m.playSelected()
	}
	return m, nil
}

func (m Model) playSelected() (tea.Model, tea.Cmd) {
	if m.botsBusy || m.match.Done() {
		return m, nil
	}
	hand := m.match.Hands[humanSeat]
	if m.cursor >= len(hand) {
		return m, nil
	}
	card := hand[m.cursor]
	if err := m.match.PlayCard(humanSeat, card); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("you played %s", card)
	if n := len(m.match.Hands[humanSeat]); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	return m, m.maybeBots()
}

// advanceBot plays one card for the acting bot seat and reschedules itself
// until the turn comes back to the human or the hand ends.
func (m Model) advanceBot() (tea.Model, tea.Cmd) {
	if m.match.Done() || m.match.Turn() == humanSeat {
		m.botsBusy = false
		return m, nil
	}
	seat := m.match.Turn()
	moves := m.match.LegalMoves(seat)
	if len(moves) == 0 {
		// Seat ran dry after a tied trick; nothing to play.
		m.botsBusy = false
		return m, nil
	}
	if err := m.match.PlayCard(seat, moves[0]); err != nil {
		m.logger.Error("bot play rejected", "seat", seat, "error", err)
		m.botsBusy = false
		return m, nil
	}
	return m, m.maybeBots()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("bisca6 · seed %s", m.match.Seed)))
	b.WriteString("\n\n")
	b.WriteString(TrumpStyle.Render(fmt.Sprintf("Trump: %s (%s)", m.match.Trump, formatCard(m.match.TrumpCard, false))))
	b.WriteString("  ")
	b.WriteString(ScoreStyle.Render(fmt.Sprintf("Team A: %d  Team B: %d", m.match.Scores[0], m.match.Scores[1])))
	if m.match.TiePoints > 0 {
		b.WriteString("  ")
		b.WriteString(StatusStyle.Render(fmt.Sprintf("carried: %d", m.match.TiePoints)))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(fmt.Sprintf("pile: %d  lead: player %d", len(m.match.Pile), m.match.Lead)))
	if ledger := m.match.Punishments.Cards(); len(ledger) > 0 {
		b.WriteString(HelpStyle.Render(fmt.Sprintf("  punishments: %v", ledger)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderTrick())
	b.WriteString("\n")
	b.WriteString(m.renderLogTail())
	b.WriteString("\n")
	b.WriteString(m.renderHand())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	switch {
	case m.match.Done():
		b.WriteString(m.renderResult())
	case m.botsBusy:
		b.WriteString(m.spin.View())
		b.WriteString(TrickStyle.Render(fmt.Sprintf(" player %d is thinking...", m.match.Turn())))
		b.WriteString("\n")
	default:
		b.WriteString(HelpStyle.Render("←/→ select · enter play · p punish · q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderTrick() string {
	plays := m.match.CurrentTrick()
	if len(plays) == 0 {
		return TrickStyle.Render("Table: (empty)") + "\n"
	}
	parts := make([]string, len(plays))
	for i, p := range plays {
		parts[i] = fmt.Sprintf("p%d:%s", p.Player, formatCard(p.Card, false))
	}
	return TrickStyle.Render("Table: "+strings.Join(parts, "  ")) + "\n"
}

func (m Model) renderLogTail() string {
	entries := m.match.Log
	if len(entries) > logTail {
		entries = entries[len(entries)-logTail:]
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(HelpStyle.Render(e.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHand() string {
	hand := m.match.Hands[humanSeat]
	if len(hand) == 0 {
		return TrickStyle.Render("Your hand is empty") + "\n"
	}
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = formatCard(c, i == m.cursor)
	}
	return TrickStyle.Render("Your hand: ") + strings.Join(parts, " ") + "\n"
}

func (m Model) renderResult() string {
	a, b := m.match.Scores[0], m.match.Scores[1]
	var verdict string
	switch {
	case a > b:
		verdict = "Team A wins"
	case b > a:
		verdict = "Team B wins"
	default:
		verdict = "Draw"
	}
	line := ScoreStyle.Render(fmt.Sprintf("%s  (%d - %d)", verdict, a, b))
	return lipgloss.JoinVertical(lipgloss.Left, line, HelpStyle.Render("q to quit")) + "\n"
}

// formatCard renders a card with its suit colour, inverted when selected.
func formatCard(c deck.Card, selected bool) string {
	if selected {
		return SelectedCardStyle.Render(c.String())
	}
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}
