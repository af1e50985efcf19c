package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// MaxHandSize bounds a hand. The eleven lowest cards (four aces, four twos,
// three threes) already total 21, so the twelfth card always busts and the
// bound is never reached in play.
const MaxHandSize = 12

// Hand is the ordered, append-only set of cards held by one player.
type Hand struct {
	cards []deck.Card
}

// Add appends a card to the hand
func (h *Hand) Add(c deck.Card) error {
	if len(h.cards) >= MaxHandSize {
		return ErrHandFull
	}
	h.cards = append(h.cards, c)
	return nil
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Score returns the current blackjack score of the hand
func (h *Hand) Score() int {
	return Score(h.cards)
}

// String lists the cards in long form, e.g. "King of Spades, 7 of Hearts"
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
