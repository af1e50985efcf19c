package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles bound to one output renderer
type Styles struct {
	Title     lipgloss.Style
	Turn      lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Score     lipgloss.Style
	Natural   lipgloss.Style
	Bust      lipgloss.Style
	Win       lipgloss.Style
	Tie       lipgloss.Style
	Prompt    lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

// NewStyles builds styles for r. When color is false the renderer is forced
// to the ASCII profile so output carries no escape sequences.
func NewStyles(r *lipgloss.Renderer, color bool) Styles {
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Turn: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Score: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Natural: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Bust: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Tie: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
