package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// stackedDeck returns a deck dealing cards first, then the shuffled remainder
func stackedDeck(t *testing.T, cards string) *deck.Deck {
	t.Helper()
	d, err := deck.NewStacked(randutil.New(1), deck.MustParseCards(cards)...)
	require.NoError(t, err)
	return d
}

// scripted returns a policy replaying decisions in order, standing once exhausted
func scripted(decisions ...Decision) Policy {
	return func(TurnView) (Decision, error) {
		if len(decisions) == 0 {
			return Stand, nil
		}
		d := decisions[0]
		decisions = decisions[1:]
		return d, nil
	}
}

func alwaysHit(TurnView) (Decision, error) { return Hit, nil }

// recorder collects events for assertions
type recorder struct {
	events []Event
}

func (r *recorder) handle(e Event) { r.events = append(r.events, e) }

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}
