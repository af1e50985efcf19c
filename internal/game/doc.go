// Package game implements the blackjack engine: hand scoring, the per-player
// turn state machine and round orchestration with winner resolution.
//
// # Basic Usage
//
// A round is built for a mode, played once with a policy per player kind and
// then thrown away:
//
//	rng := randutil.New(seed)
//	r, err := game.NewRound(rng, game.PlayerVsComputer)
//	if err != nil {
//	    return err
//	}
//	result, err := r.Play(game.Policies{Human: promptForDecision})
//	fmt.Println(result.Outcome)
//
// Computer players use DealerPolicy (hit below 17) unless Policies.Computer
// is set.
//
// # Deterministic Testing
//
// The RNG is always explicit. Pass a seeded source, or a stacked deck when the
// exact cards matter:
//
//	d, _ := deck.NewStacked(rng, deck.MustParseCards("Kh As")...)
//	r, _ := game.NewRound(rng, game.PlayerVsPlayer, game.WithDeck(d))
//
// # Architecture
//
// Round owns the deck and seats; each Turn borrows the deck and mutates only
// its player's hand. Score is a pure function used by both turns and Resolve.
// Rendering is driven by events delivered to an EventHandler.
package game
