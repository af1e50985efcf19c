package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func standings(scores ...int) []Standing {
	out := make([]Standing, len(scores))
	for i, s := range scores {
		out[i] = Standing{Name: "Player " + string(rune('1'+i)), Score: s}
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		scores  []int
		kind    OutcomeKind
		winners []string
		score   int
		message string
	}{
		{
			name:    "highest non-bust wins",
			scores:  []int{18, 21, 22},
			kind:    OutcomeWinner,
			winners: []string{"Player 2"},
			score:   21,
			message: "Player 2 wins with a score of 21!",
		},
		{
			name:    "everyone bust",
			scores:  []int{22, 23},
			kind:    OutcomeNoWinner,
			message: "No winner, all busted.",
		},
		{
			name:    "two way tie",
			scores:  []int{17, 17},
			kind:    OutcomeTie,
			winners: []string{"Player 1", "Player 2"},
			score:   17,
			message: "It's a tie between Player 1 and Player 2 at 17!",
		},
		{
			name:    "tie among many ignores lower scores",
			scores:  []int{20, 19, 20, 25},
			kind:    OutcomeTie,
			winners: []string{"Player 1", "Player 3"},
			score:   20,
		},
		{
			name:    "three way tie",
			scores:  []int{19, 19, 19},
			kind:    OutcomeTie,
			winners: []string{"Player 1", "Player 2", "Player 3"},
			score:   19,
			message: "It's a tie between Player 1, Player 2 and Player 3 at 19!",
		},
		{
			name:    "equal busts are not a tie",
			scores:  []int{24, 24},
			kind:    OutcomeNoWinner,
		},
		{
			name:    "sole survivor",
			scores:  []int{4, 30},
			kind:    OutcomeWinner,
			winners: []string{"Player 1"},
			score:   4,
		},
		{
			name:   "no players",
			scores: nil,
			kind:   OutcomeNoWinner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(standings(tt.scores...))
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.score, got.Score)

			var names []string
			for _, w := range got.Winners {
				names = append(names, w.Name)
			}
			assert.Equal(t, tt.winners, names)
			if tt.message != "" {
				assert.Equal(t, tt.message, got.String())
			}
		})
	}
}
