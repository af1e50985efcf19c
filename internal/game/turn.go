package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
)

// TurnState is a step of a player's turn
type TurnState int

const (
	AwaitingFirstDeal TurnState = iota
	Deciding
	Hitting
	Standing
	Busted
	Done
)

func (s TurnState) String() string {
	switch s {
	case AwaitingFirstDeal:
		return "awaiting_first_deal"
	case Deciding:
		return "deciding"
	case Hitting:
		return "hit"
	case Standing:
		return "stand"
	case Busted:
		return "bust"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Turn drives one player from the first deal to stand or bust. It mutates
// only the player's hand and the cursor of the borrowed deck.
type Turn struct {
	player *Player
	deck   *deck.Deck
	policy Policy
	clock  quartz.Clock
	logger *log.Logger
	emit   EventHandler

	state  TurnState
	result TurnState
	hits   int
}

// NewTurn creates a turn for player drawing from d
func NewTurn(player *Player, d *deck.Deck, policy Policy, opts ...RoundOption) *Turn {
	cfg := newRoundConfig(opts)
	return newTurn(player, d, policy, cfg)
}

func newTurn(player *Player, d *deck.Deck, policy Policy, cfg *roundConfig) *Turn {
	return &Turn{
		player: player,
		deck:   d,
		policy: policy,
		clock:  cfg.clock,
		logger: cfg.logger,
		emit:   cfg.events,
		state:  AwaitingFirstDeal,
	}
}

// State returns the current state
func (t *Turn) State() TurnState {
	return t.state
}

// Result returns Standing or Busted once the turn is Done
func (t *Turn) Result() TurnState {
	return t.result
}

// Hits returns how many cards were drawn after the first deal
func (t *Turn) Hits() int {
	return t.hits
}

// Play runs the turn to completion. Any error is fatal to the round.
func (t *Turn) Play() error {
	for t.state != Done {
		if err := t.step(); err != nil {
			return fmt.Errorf("%s's turn: %w", t.player.Name, err)
		}
	}
	return nil
}

func (t *Turn) step() error {
	switch t.state {
	case AwaitingFirstDeal:
		t.emit(TurnStartEvent{Player: t.player.Name, Kind: t.player.Kind, timestamp: t.clock.Now()})
		for range 2 {
			if err := t.draw(); err != nil {
				return err
			}
		}
		t.state = Deciding

	case Deciding:
		view := t.player.View()
		t.emit(HandEvent{
			Player:    view.Player,
			Cards:     view.Cards,
			Score:     view.Score,
			Soft:      view.Soft,
			Natural:   IsNatural(view.Cards),
			timestamp: t.clock.Now(),
		})
		if IsBust(view.Score) {
			t.state = Busted
			return nil
		}

		decision, err := t.policy(view)
		if err != nil {
			return err
		}
		t.logger.Debug("Decision", "player", view.Player, "score", view.Score, "soft", view.Soft, "decision", decision)

		switch decision {
		case Hit:
			t.state = Hitting
		case Stand:
			t.state = Standing
		default:
			return fmt.Errorf("policy returned %d: %w", decision, ErrInvalidTurnChoice)
		}

	case Hitting:
		if err := t.draw(); err != nil {
			return err
		}
		t.hits++
		t.state = Deciding

	case Standing:
		t.emit(StandEvent{Player: t.player.Name, Score: t.player.Score(), timestamp: t.clock.Now()})
		t.result = Standing
		t.state = Done

	case Busted:
		t.logger.Info("Player busts", "player", t.player.Name, "score", t.player.Score())
		t.emit(BustEvent{Player: t.player.Name, Score: t.player.Score(), timestamp: t.clock.Now()})
		t.result = Busted
		t.state = Done
	}
	return nil
}

func (t *Turn) draw() error {
	card, err := t.deck.Deal()
	if err != nil {
		return err
	}
	if err := t.player.hand.Add(card); err != nil {
		return err
	}
	t.logger.Debug("Dealt card", "player", t.player.Name, "card", card.Short(), "remaining", t.deck.Remaining())
	return nil
}
