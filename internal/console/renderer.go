package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

// Renderer writes game output as plain lines of styled text
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{
		out:    w,
		styles: NewStyles(lipgloss.NewRenderer(w), color),
	}
}

// Title prints the banner line
func (r *Renderer) Title(s string) {
	r.println(r.styles.Title.Render(s))
}

// Error prints an error line
func (r *Renderer) Error(err error) {
	r.println(r.styles.Error.Render("Error: " + err.Error()))
}

// HandleEvent renders a game event. It is a game.EventHandler.
func (r *Renderer) HandleEvent(e game.Event) {
	switch ev := e.(type) {
	case game.TurnStartEvent:
		r.println("")
		r.println(r.styles.Turn.Render(ev.Player + "'s turn:"))
	case game.HandEvent:
		r.println(fmt.Sprintf("%s's Hand: %s", ev.Player, r.cards(ev.Cards)))
		line := fmt.Sprintf("%s's Score: %s", ev.Player, r.styles.Score.Render(fmt.Sprint(ev.Score)))
		if ev.Natural {
			line += " " + r.styles.Natural.Render("Blackjack!")
		}
		r.println(line)
	case game.StandEvent:
		r.println(fmt.Sprintf("%s stands on %d.", ev.Player, ev.Score))
	case game.BustEvent:
		r.println(r.styles.Bust.Render(ev.Player + " busts!"))
	case game.RoundEndEvent:
		r.result(ev.Result)
	}
}

func (r *Renderer) result(res *game.Result) {
	r.println("")
	r.println("Final Scores:")
	for _, p := range res.Players {
		line := fmt.Sprintf("%s: %d", p.Name, p.Score)
		if p.Busted {
			line += " " + r.styles.Info.Render("(bust)")
		}
		r.println(line)
	}

	msg := res.Outcome.String()
	switch res.Outcome.Kind {
	case game.OutcomeWinner:
		r.println(r.styles.Win.Render(msg))
	case game.OutcomeTie:
		r.println(r.styles.Tie.Render(msg))
	default:
		r.println(r.styles.Bust.Render(msg))
	}
}

// Statistics prints a simulation summary
func (r *Renderer) Statistics(s *statistics.Statistics) {
	r.println(r.styles.Turn.Render(fmt.Sprintf("Simulated %d rounds with %d players", s.Rounds, s.Players)))
	r.println(fmt.Sprintf("  Wins: %d  Ties: %d  No winner: %d", s.Wins, s.Ties, s.NoWinner))
	for _, seat := range s.Seats {
		r.println(fmt.Sprintf("  %-12s win %5.1f%%  tie %5.1f%%  bust %5.1f%%  naturals %d  mean %.2f",
			seat.Name,
			100*seat.WinRate(s.Rounds),
			100*seat.TieRate(s.Rounds),
			100*seat.BustRate(s.Rounds),
			seat.Naturals,
			seat.MeanScore()))
	}
}

func (r *Renderer) cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		style := r.styles.BlackCard
		if c.IsRed() {
			style = r.styles.RedCard
		}
		parts[i] = style.Render(c.String())
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}
