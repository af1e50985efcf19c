package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
)

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

type roundConfig struct {
	players int
	clock   quartz.Clock
	logger  *log.Logger
	events  EventHandler
	deck    *deck.Deck // overrides the RNG-built deck when set
}

func newRoundConfig(opts []RoundOption) *roundConfig {
	cfg := &roundConfig{
		players: 2,
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
		events:  func(Event) {},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPlayers sets the number of seats (PvP and computer-only rounds)
func WithPlayers(n int) RoundOption {
	return func(c *roundConfig) { c.players = n }
}

// WithClock sets the clock used for event timestamps and round duration
func WithClock(clock quartz.Clock) RoundOption {
	return func(c *roundConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEventHandler subscribes h to round events
func WithEventHandler(h EventHandler) RoundOption {
	return func(c *roundConfig) {
		if h != nil {
			c.events = h
		}
	}
}

// WithDeck plays the round from d instead of a freshly shuffled deck
func WithDeck(d *deck.Deck) RoundOption {
	return func(c *roundConfig) { c.deck = d }
}
