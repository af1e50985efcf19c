package game

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sanity-io/litter"

	"github.com/lox/blackjack/internal/deck"
)

// MaxPlayers is the most seats a single deck can give the two-card opening deal.
const MaxPlayers = deck.Size / 2

// Mode selects who sits at the table
type Mode int

const (
	PlayerVsPlayer Mode = iota
	PlayerVsComputer
	ComputerOnly
)

func (m Mode) String() string {
	switch m {
	case PlayerVsPlayer:
		return "PvP"
	case PlayerVsComputer:
		return "PvC"
	case ComputerOnly:
		return "CvC"
	default:
		return "unknown"
	}
}

// ParseMode accepts "PvP" or "PvC" in any case
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pvp":
		return PlayerVsPlayer, nil
	case "pvc":
		return PlayerVsComputer, nil
	default:
		return 0, fmt.Errorf("%q, choose 'PvP' or 'PvC': %w", s, ErrInvalidMode)
	}
}

// Seats builds the players for mode with their default names
func (m Mode) Seats(n int) ([]*Player, error) {
	switch m {
	case PlayerVsComputer:
		if n != 2 {
			return nil, fmt.Errorf("%s needs exactly 2 players, got %d: %w", m, n, ErrInvalidPlayerCount)
		}
		return []*Player{NewPlayer("Player", Human), NewPlayer("Computer", Computer)}, nil
	case PlayerVsPlayer, ComputerOnly:
		if n < 2 || n > MaxPlayers {
			return nil, fmt.Errorf("%s needs 2 to %d players, got %d: %w", m, MaxPlayers, n, ErrInvalidPlayerCount)
		}
		kind, prefix := Human, "Player"
		if m == ComputerOnly {
			kind, prefix = Computer, "Computer"
		}
		players := make([]*Player, n)
		for i := range players {
			players[i] = NewPlayer(fmt.Sprintf("%s %d", prefix, i+1), kind)
		}
		return players, nil
	default:
		return nil, fmt.Errorf("mode %d: %w", m, ErrInvalidMode)
	}
}

// PlayerResult is a player's final hand
type PlayerResult struct {
	Name   string
	Kind   Kind
	Cards  []deck.Card
	Score  int
	Busted bool
}

// Result is the outcome of a played round
type Result struct {
	RoundID   string
	Mode      Mode
	Players   []PlayerResult
	Outcome   Outcome
	StartedAt time.Time
	Duration  time.Duration
}

// Round owns one deck and the players for a single game. Rounds are never
// reused; play again by creating a new one.
type Round struct {
	id      string
	mode    Mode
	deck    *deck.Deck
	players []*Player
	played  bool

	cfg    *roundConfig
	clock  quartz.Clock
	logger *log.Logger
}

// NewRound validates the seating for mode and builds a fresh deck from rng.
// The RNG is required so shuffles are explicit and reproducible in tests.
//
//	rng := randutil.New(42)
//	r, err := game.NewRound(rng, game.PlayerVsPlayer, game.WithPlayers(3))
//	result, err := r.Play(game.Policies{Human: prompt})
func NewRound(rng *rand.Rand, mode Mode, opts ...RoundOption) (*Round, error) {
	if rng == nil {
		panic("rng is required for round creation")
	}
	cfg := newRoundConfig(opts)

	players, err := mode.Seats(cfg.players)
	if err != nil {
		return nil, err
	}

	d := cfg.deck
	if d == nil {
		d = deck.New(rng)
	}

	id := uuid.NewString()
	return &Round{
		id:      id,
		mode:    mode,
		deck:    d,
		players: players,
		cfg:     cfg,
		clock:   cfg.clock,
		logger:  cfg.logger.With("round", id),
	}, nil
}

// ID returns the round identifier used in logs
func (r *Round) ID() string { return r.id }

// Mode returns the round's mode
func (r *Round) Mode() Mode { return r.mode }

// Deck returns the round's deck
func (r *Round) Deck() *deck.Deck { return r.deck }

// Players returns the seated players in turn order
func (r *Round) Players() []*Player { return r.players }

// Play runs every turn in seat order and resolves the winner. A fatal error
// discards the round; nothing is rolled back.
func (r *Round) Play(policies Policies) (*Result, error) {
	if r.played {
		return nil, ErrRoundPlayed
	}
	r.played = true

	start := r.clock.Now()
	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = p.Name
	}
	r.logger.Info("Starting round", "mode", r.mode, "players", len(r.players), "cards", r.deck.Remaining())
	r.cfg.events(RoundStartEvent{RoundID: r.id, Mode: r.mode, Players: names, timestamp: start})

	turnCfg := *r.cfg
	turnCfg.logger = r.logger
	for _, p := range r.players {
		policy, err := policies.For(p.Kind)
		if err != nil {
			return nil, err
		}
		turn := newTurn(p, r.deck, policy, &turnCfg)
		if err := turn.Play(); err != nil {
			r.logger.Error("Round aborted", "player", p.Name, "error", err)
			return nil, err
		}
		r.logger.Info("Turn complete", "player", p.Name, "score", p.Score(), "result", turn.Result(), "hits", turn.Hits())
	}

	result := &Result{
		RoundID:   r.id,
		Mode:      r.mode,
		Players:   make([]PlayerResult, len(r.players)),
		StartedAt: start,
	}
	standings := make([]Standing, len(r.players))
	for i, p := range r.players {
		score := p.Score()
		result.Players[i] = PlayerResult{
			Name:   p.Name,
			Kind:   p.Kind,
			Cards:  p.Cards(),
			Score:  score,
			Busted: IsBust(score),
		}
		standings[i] = Standing{Name: p.Name, Score: score}
	}
	result.Outcome = Resolve(standings)
	result.Duration = r.clock.Since(start)

	r.logger.Info("Round complete", "outcome", result.Outcome.Kind, "score", result.Outcome.Score, "cards_dealt", r.deck.Dealt())
	if r.logger.GetLevel() <= log.DebugLevel {
		r.logger.Debug("Round state", "result", litter.Sdump(result))
	}
	r.cfg.events(RoundEndEvent{Result: result, timestamp: r.clock.Now()})
	return result, nil
}
