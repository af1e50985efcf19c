package game

import "github.com/lox/blackjack/internal/deck"

// Kind tags who decides for a player
type Kind int

const (
	Human Kind = iota
	Computer
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// Player is a seat in a round. The score is always derived from the hand.
type Player struct {
	Name string
	Kind Kind
	hand Hand
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string, kind Kind) *Player {
	return &Player{Name: name, Kind: kind}
}

// Hand returns the player's hand
func (p *Player) Hand() *Hand {
	return &p.hand
}

// Cards returns a copy of the player's cards
func (p *Player) Cards() []deck.Card {
	return p.hand.Cards()
}

// Score returns the player's current score
func (p *Player) Score() int {
	return p.hand.Score()
}

// IsBust returns true if the player's score is over 21
func (p *Player) IsBust() bool {
	return IsBust(p.Score())
}

// View returns the read-only state handed to a policy
func (p *Player) View() TurnView {
	cards := p.hand.Cards()
	return TurnView{
		Player: p.Name,
		Kind:   p.Kind,
		Cards:  cards,
		Score:  Score(cards),
		Soft:   IsSoft(cards),
	}
}
