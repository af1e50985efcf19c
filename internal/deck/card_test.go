package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "faces and ace",
			input: "As Kh Qd Jc",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
				{Rank: Queen, Suit: Diamonds},
				{Rank: Jack, Suit: Clubs},
			},
		},
		{
			name:  "both ten spellings",
			input: "Th 10d",
			expected: []Card{
				{Rank: Ten, Suit: Hearts},
				{Rank: Ten, Suit: Diamonds},
			},
		},
		{
			name:  "case insensitive",
			input: "aS kH 2c",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
				{Rank: Two, Suit: Clubs},
			},
		},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "one is not a rank", input: "1s", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		card  string
		value int
	}{
		{"2h", 2},
		{"9c", 9},
		{"Td", 10},
		{"Js", 10},
		{"Qh", 10},
		{"Kc", 10},
		{"Ad", 11},
	}

	for _, tt := range tests {
		c, err := ParseCard(tt.card)
		require.NoError(t, err)
		assert.Equal(t, tt.value, c.Value(), "card %s", tt.card)
	}
}

func TestCardString(t *testing.T) {
	c := NewCard(Queen, Hearts)
	assert.Equal(t, "Queen of Hearts", c.String())
	assert.Equal(t, "Q♥", c.Short())
	assert.True(t, c.IsRed())

	ten := NewCard(Ten, Spades)
	assert.Equal(t, "10 of Spades", ten.String())
	assert.Equal(t, "10♠", ten.Short())
	assert.False(t, ten.IsRed())
}
