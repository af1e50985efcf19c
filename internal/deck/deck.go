package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/randutil"
)

// Size is the number of cards in a standard deck
const Size = 52

// ErrDeckExhausted is returned when a card is requested from an empty deck
var ErrDeckExhausted = errors.New("deck is out of cards")

// Deck is a single shuffled 52-card deck dealt front to back
type Deck struct {
	cards [Size]Card
	next  int
	rng   *rand.Rand
}

// New creates a shuffled deck using rng. A nil rng gets a freshly seeded source.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = randutil.New(randutil.NewSeed())
	}
	d := &Deck{rng: rng}

	i := 0
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Deal returns the next card and advances the cursor
func (d *Deck) Deal() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Dealt returns the number of cards dealt so far
func (d *Deck) Dealt() int {
	return d.next
}

// NewStacked creates a deck whose first cards are top, in order, followed by
// the rest of the deck shuffled with rng. The 52-distinct-card invariant holds,
// so top must not repeat a card.
func NewStacked(rng *rand.Rand, top ...Card) (*Deck, error) {
	if len(top) > Size {
		return nil, fmt.Errorf("stacked deck: %d cards exceeds deck size", len(top))
	}
	d := New(rng)

	used := make(map[Card]bool, len(top))
	for i, c := range top {
		if used[c] {
			return nil, fmt.Errorf("stacked deck: %s appears twice", c)
		}
		used[c] = true
		d.cards[i] = c
	}

	i := len(top)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			if used[c] {
				continue
			}
			d.cards[i] = c
			i++
		}
	}
	rest := d.cards[len(top):]
	d.rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	return d, nil
}
