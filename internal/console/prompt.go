package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// ErrInputClosed is returned when input ends while an answer is required
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on a line-oriented terminal
type Prompter struct {
	in       *bufio.Scanner
	out      io.Writer
	renderer *Renderer
	logger   *log.Logger
}

// NewPrompter creates a prompter reading answers from in and writing
// questions through r
func NewPrompter(in io.Reader, r *Renderer, logger *log.Logger) *Prompter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prompter{
		in:       bufio.NewScanner(in),
		out:      r.out,
		renderer: r,
		logger:   logger,
	}
}

// Mode asks for PvP or PvC. An unknown answer is fatal.
func (p *Prompter) Mode() (game.Mode, error) {
	answer, err := p.ask("Choose game mode: 'PvP' (Player vs Player) or 'PvC' (Player vs Computer): ")
	if err != nil {
		return 0, err
	}
	return game.ParseMode(answer)
}

// PlayerCount asks how many players sit at a PvP table
func (p *Prompter) PlayerCount() (int, error) {
	answer, err := p.ask("Enter the number of players (2 or more): ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", answer, game.ErrInvalidPlayerCount)
	}
	if n < 2 {
		return 0, fmt.Errorf("number of players must be at least 2, got %d: %w", n, game.ErrInvalidPlayerCount)
	}
	return n, nil
}

// Decide asks a human player to hit or stand, re-prompting until the answer
// is valid. It is a game.Policy.
func (p *Prompter) Decide(view game.TurnView) (game.Decision, error) {
	for {
		answer, err := p.ask(fmt.Sprintf("%s, do you want to 'hit' or 'stand'? ", view.Player))
		if err != nil {
			return 0, err
		}
		decision, err := game.ParseDecision(answer)
		if errors.Is(err, game.ErrInvalidTurnChoice) {
			p.logger.Debug("Rejected choice", "player", view.Player, "input", answer)
			p.renderer.println(p.renderer.styles.Error.Render("Invalid choice. Please enter 'hit' or 'stand'."))
			continue
		}
		return decision, err
	}
}

// PlayAgain asks whether to start another round. End of input means no.
func (p *Prompter) PlayAgain() (bool, error) {
	answer, err := p.ask("Do you want to play again? (yes/no): ")
	if errors.Is(err, ErrInputClosed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, p.renderer.styles.Prompt.Render(question))
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		_, _ = fmt.Fprintln(p.out)
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}
