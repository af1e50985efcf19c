package game

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"PvP", PlayerVsPlayer, false},
		{"PvC", PlayerVsComputer, false},
		{"pvc", PlayerVsComputer, false},
		{" PVP ", PlayerVsPlayer, false},
		{"CvC", 0, true},
		{"solo", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidMode, "input: %q", tt.input)
			continue
		}
		require.NoError(t, err, "input: %q", tt.input)
		assert.Equal(t, tt.expected, got)
	}
}

func TestNewRoundSeating(t *testing.T) {
	t.Run("player vs computer", func(t *testing.T) {
		r, err := NewRound(randutil.New(1), PlayerVsComputer)
		require.NoError(t, err)
		require.Len(t, r.Players(), 2)
		assert.Equal(t, "Player", r.Players()[0].Name)
		assert.Equal(t, Human, r.Players()[0].Kind)
		assert.Equal(t, "Computer", r.Players()[1].Name)
		assert.Equal(t, Computer, r.Players()[1].Kind)
		assert.Equal(t, deck.Size, r.Deck().Remaining())
		assert.NotEmpty(t, r.ID())
	})

	t.Run("player vs player names seats", func(t *testing.T) {
		r, err := NewRound(randutil.New(1), PlayerVsPlayer, WithPlayers(3))
		require.NoError(t, err)
		var names []string
		for _, p := range r.Players() {
			assert.Equal(t, Human, p.Kind)
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"Player 1", "Player 2", "Player 3"}, names)
	})

	t.Run("invalid counts", func(t *testing.T) {
		cases := []struct {
			mode Mode
			n    int
		}{
			{PlayerVsPlayer, 1},
			{PlayerVsPlayer, 0},
			{PlayerVsPlayer, MaxPlayers + 1},
			{PlayerVsComputer, 3},
			{ComputerOnly, 1},
		}
		for _, c := range cases {
			_, err := NewRound(randutil.New(1), c.mode, WithPlayers(c.n))
			assert.ErrorIs(t, err, ErrInvalidPlayerCount, "%s with %d", c.mode, c.n)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := NewRound(randutil.New(1), Mode(42))
		assert.ErrorIs(t, err, ErrInvalidMode)
	})

	t.Run("requires rng", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = NewRound(nil, PlayerVsComputer) })
	})
}

func TestRoundPlayerVsComputer(t *testing.T) {
	clock := quartz.NewMock(t)
	rec := &recorder{}
	// Player: Kh 9c -> stands on 19. Computer: 5d 6s -> hits 4h (15), 2c (17), stands.
	d := stackedDeck(t, "Kh 9c 5d 6s 4h 2c")
	r, err := NewRound(randutil.New(1), PlayerVsComputer,
		WithDeck(d), WithClock(clock), WithEventHandler(rec.handle))
	require.NoError(t, err)

	result, err := r.Play(Policies{Human: scripted(Stand)})
	require.NoError(t, err)

	require.Len(t, result.Players, 2)
	assert.Equal(t, 19, result.Players[0].Score)
	assert.Equal(t, 17, result.Players[1].Score)
	assert.Len(t, result.Players[1].Cards, 4)
	assert.Equal(t, OutcomeWinner, result.Outcome.Kind)
	assert.Equal(t, "Player", result.Outcome.Winners[0].Name)
	assert.Equal(t, "Player wins with a score of 19!", result.Outcome.String())
	assert.Equal(t, r.ID(), result.RoundID)
	assert.Equal(t, PlayerVsComputer, result.Mode)
	assert.Equal(t, clock.Now(), result.StartedAt)
	assert.Equal(t, time.Duration(0), result.Duration)

	types := rec.types()
	assert.Equal(t, EventTypeRoundStart, types[0])
	assert.Equal(t, EventTypeRoundEnd, types[len(types)-1])
	end := rec.events[len(rec.events)-1].(RoundEndEvent)
	assert.Same(t, result, end.Result)
}

func TestRoundPlayerVsComputerTie(t *testing.T) {
	// Player: Kh 7c stands on 17. Computer: Qd 7s stands on 17.
	d := stackedDeck(t, "Kh 7c Qd 7s")
	r, err := NewRound(randutil.New(1), PlayerVsComputer, WithDeck(d))
	require.NoError(t, err)

	result, err := r.Play(Policies{Human: scripted(Stand)})
	require.NoError(t, err)
	assert.Equal(t, OutcomeTie, result.Outcome.Kind)
	assert.Equal(t, "It's a tie between Player and Computer at 17!", result.Outcome.String())
}

func TestRoundPlayerVsPlayerTurnOrder(t *testing.T) {
	d := stackedDeck(t, "Kh 8c Qd As 9h 9d 3c")
	var order []string
	human := func(v TurnView) (Decision, error) {
		order = append(order, v.Player)
		if v.Player == "Player 3" && v.Score < 21 {
			return Hit, nil
		}
		return Stand, nil
	}

	r, err := NewRound(randutil.New(1), PlayerVsPlayer, WithPlayers(3), WithDeck(d))
	require.NoError(t, err)
	result, err := r.Play(Policies{Human: human})
	require.NoError(t, err)

	assert.Equal(t, []string{"Player 1", "Player 2", "Player 3", "Player 3"}, order)
	assert.Equal(t, 18, result.Players[0].Score)
	assert.Equal(t, 21, result.Players[1].Score)
	assert.Equal(t, 21, result.Players[2].Score)
	assert.Equal(t, OutcomeTie, result.Outcome.Kind)
	assert.Len(t, result.Outcome.Winners, 2)
}

func TestRoundAllBust(t *testing.T) {
	r, err := NewRound(randutil.New(9), PlayerVsPlayer, WithPlayers(2))
	require.NoError(t, err)

	result, err := r.Play(Policies{Human: alwaysHit})
	require.NoError(t, err)
	for _, p := range result.Players {
		assert.True(t, p.Busted)
	}
	assert.Equal(t, OutcomeNoWinner, result.Outcome.Kind)
}

func TestRoundCannotBeReplayed(t *testing.T) {
	r, err := NewRound(randutil.New(1), ComputerOnly, WithPlayers(2))
	require.NoError(t, err)
	_, err = r.Play(Policies{})
	require.NoError(t, err)
	_, err = r.Play(Policies{})
	assert.ErrorIs(t, err, ErrRoundPlayed)
}

func TestRoundMissingHumanPolicy(t *testing.T) {
	r, err := NewRound(randutil.New(1), PlayerVsComputer)
	require.NoError(t, err)
	_, err = r.Play(Policies{})
	assert.Error(t, err)
}

func TestRoundDeckExhaustionIsFatal(t *testing.T) {
	// Every player hits to bust, needing at least three cards each.
	r, err := NewRound(randutil.New(3), PlayerVsPlayer, WithPlayers(MaxPlayers))
	require.NoError(t, err)

	result, err := r.Play(Policies{Human: alwaysHit})
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Nil(t, result)
}

func TestConsecutiveRoundsAreIndependent(t *testing.T) {
	rng := randutil.New(11)

	first, err := NewRound(rng, PlayerVsPlayer, WithPlayers(MaxPlayers))
	require.NoError(t, err)
	_, err = first.Play(Policies{Human: alwaysHit})
	require.ErrorIs(t, err, ErrDeckExhausted)
	require.Equal(t, 0, first.Deck().Remaining())

	second, err := NewRound(rng, PlayerVsComputer)
	require.NoError(t, err)
	assert.Equal(t, deck.Size, second.Deck().Remaining())
	assert.NotSame(t, first.Deck(), second.Deck())
	assert.NotEqual(t, first.ID(), second.ID())
	for _, p := range second.Players() {
		assert.Zero(t, p.Hand().Len())
	}

	result, err := second.Play(Policies{Human: scripted(Stand)})
	require.NoError(t, err)
	assert.Len(t, result.Players, 2)
}

func TestComputerOnlyRound(t *testing.T) {
	r, err := NewRound(randutil.New(21), ComputerOnly, WithPlayers(4))
	require.NoError(t, err)
	result, err := r.Play(Policies{})
	require.NoError(t, err)

	for _, p := range result.Players {
		assert.Equal(t, Computer, p.Kind)
		if !p.Busted {
			assert.GreaterOrEqual(t, p.Score, DealerStandsOn)
		}
	}
}
