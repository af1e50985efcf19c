package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType identifies a game event
type EventType string

const (
	EventTypeRoundStart EventType = "round_start"
	EventTypeTurnStart  EventType = "turn_start"
	EventTypeHand       EventType = "hand"
	EventTypeStand      EventType = "stand"
	EventTypeBust       EventType = "bust"
	EventTypeRoundEnd   EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything that happens during a round that a renderer may show
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// EventHandler receives events in the order they happen
type EventHandler func(Event)

// RoundStartEvent is published before the first turn
type RoundStartEvent struct {
	RoundID   string
	Mode      Mode
	Players   []string
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// TurnStartEvent is published when a player begins their turn
type TurnStartEvent struct {
	Player    string
	Kind      Kind
	timestamp time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// HandEvent is published after the initial deal and after every hit
type HandEvent struct {
	Player    string
	Cards     []deck.Card
	Score     int
	Soft      bool
	Natural   bool
	timestamp time.Time
}

func (e HandEvent) EventType() EventType { return EventTypeHand }
func (e HandEvent) Timestamp() time.Time { return e.timestamp }

// StandEvent is published when a player stands
type StandEvent struct {
	Player    string
	Score     int
	timestamp time.Time
}

func (e StandEvent) EventType() EventType { return EventTypeStand }
func (e StandEvent) Timestamp() time.Time { return e.timestamp }

// BustEvent is published when a player's score goes over 21
type BustEvent struct {
	Player    string
	Score     int
	timestamp time.Time
}

func (e BustEvent) EventType() EventType { return EventTypeBust }
func (e BustEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent carries the resolved result
type RoundEndEvent struct {
	Result    *Result
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }
