package game

import (
	"fmt"
	"strings"
)

// OutcomeKind classifies how a round ended
type OutcomeKind int

const (
	OutcomeNoWinner OutcomeKind = iota
	OutcomeWinner
	OutcomeTie
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWinner:
		return "winner"
	case OutcomeTie:
		return "tie"
	default:
		return "no_winner"
	}
}

// Standing is a player's final score
type Standing struct {
	Name  string
	Score int
}

// Outcome is the resolved result of a round. Winners holds one entry for a
// win, every tied player for a tie, and nothing when all players bust.
type Outcome struct {
	Kind    OutcomeKind
	Winners []Standing
	Score   int
}

// String renders the outcome as an announcement line
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeWinner:
		return fmt.Sprintf("%s wins with a score of %d!", o.Winners[0].Name, o.Score)
	case OutcomeTie:
		names := make([]string, len(o.Winners))
		for i, w := range o.Winners {
			names[i] = w.Name
		}
		return fmt.Sprintf("It's a tie between %s at %d!", joinNames(names), o.Score)
	default:
		return "No winner, all busted."
	}
}

// Resolve applies the winner rule to final standings. Players over 21 are
// out. The highest remaining score wins; when several players share it the
// round is a tie between all of them, in turn order.
func Resolve(standings []Standing) Outcome {
	best := -1
	var leaders []Standing
	for _, s := range standings {
		if IsBust(s.Score) {
			continue
		}
		switch {
		case s.Score > best:
			best = s.Score
			leaders = []Standing{s}
		case s.Score == best:
			leaders = append(leaders, s)
		}
	}

	switch len(leaders) {
	case 0:
		return Outcome{Kind: OutcomeNoWinner}
	case 1:
		return Outcome{Kind: OutcomeWinner, Winners: leaders, Score: best}
	default:
		return Outcome{Kind: OutcomeTie, Winners: leaders, Score: best}
	}
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
