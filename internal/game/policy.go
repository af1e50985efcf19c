package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// DealerStandsOn is the score at which the computer policy stops drawing.
const DealerStandsOn = 17

// Decision is a player's choice while deciding
type Decision int

const (
	Hit Decision = iota + 1
	Stand
)

func (d Decision) String() string {
	switch d {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// ParseDecision accepts "hit" or "stand", ignoring case and surrounding space.
// Anything else wraps ErrInvalidTurnChoice.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit":
		return Hit, nil
	case "stand":
		return Stand, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidTurnChoice)
	}
}

// TurnView is the immutable state a policy decides on
type TurnView struct {
	Player string
	Kind   Kind
	Cards  []deck.Card
	Score  int
	Soft   bool
}

// Policy decides whether the player hits or stands. Errors abort the round.
type Policy func(view TurnView) (Decision, error)

// DealerPolicy hits below 17 and stands otherwise.
func DealerPolicy(view TurnView) (Decision, error) {
	if view.Score < DealerStandsOn {
		return Hit, nil
	}
	return Stand, nil
}

// Policies selects a Policy by player kind
type Policies struct {
	Human    Policy
	Computer Policy
}

// For returns the policy for kind. Computer players fall back to DealerPolicy.
func (ps Policies) For(kind Kind) (Policy, error) {
	switch kind {
	case Human:
		if ps.Human == nil {
			return nil, fmt.Errorf("no policy configured for %s players", kind)
		}
		return ps.Human, nil
	case Computer:
		if ps.Computer == nil {
			return DealerPolicy, nil
		}
		return ps.Computer, nil
	default:
		return nil, fmt.Errorf("unknown player kind %d", kind)
	}
}
