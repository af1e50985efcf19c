package game

import (
	"errors"

	"github.com/lox/blackjack/internal/deck"
)

var (
	// ErrDeckExhausted aborts the round: a single deck ran out mid-play.
	ErrDeckExhausted = deck.ErrDeckExhausted

	// ErrInvalidPlayerCount is returned before any round state is built.
	ErrInvalidPlayerCount = errors.New("invalid player count")

	// ErrInvalidMode is returned for a mode outside PvP/PvC.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidTurnChoice is recoverable; the caller re-prompts.
	ErrInvalidTurnChoice = errors.New("invalid choice, please enter 'hit' or 'stand'")

	// ErrHandFull should be unreachable, see MaxHandSize.
	ErrHandFull = errors.New("hand is full")

	// ErrRoundPlayed is returned when Play is called twice on the same round.
	ErrRoundPlayed = errors.New("round already played")
)
