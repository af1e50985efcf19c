package game

import "github.com/lox/blackjack/internal/deck"

// Blackjack is the best possible score; anything above it is a bust.
const Blackjack = 21

// Score returns the blackjack total for cards. Aces count 11 and are
// softened to 1, one at a time, while the total exceeds 21. The result may
// still exceed 21. Score(nil) is 0.
func Score(cards []deck.Card) int {
	total, _ := scoreWithSoftAces(cards)
	return total
}

// IsSoft reports whether the best total still counts an ace as 11.
func IsSoft(cards []deck.Card) bool {
	_, soft := scoreWithSoftAces(cards)
	return soft > 0
}

// IsBust reports whether score is over 21.
func IsBust(score int) bool {
	return score > Blackjack
}

// IsNatural reports a two-card 21.
func IsNatural(cards []deck.Card) bool {
	return len(cards) == 2 && Score(cards) == Blackjack
}

func scoreWithSoftAces(cards []deck.Card) (total, soft int) {
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			soft++
		}
	}
	for total > Blackjack && soft > 0 {
		total -= 10
		soft--
	}
	return total, soft
}
