package game

import (
	"time"

	"github.com/lox/fivecarddraw/internal/evaluator"
)

// EventType represents a match event type with type safety
type EventType string

const (
	EventTypeMatchStart   EventType = "match_start"
	EventTypePlayerAction EventType = "player_action"
	EventTypeBetsApplied  EventType = "bets_applied"
	EventTypeHoldsChosen  EventType = "holds_chosen"
	EventTypeRedraw       EventType = "redraw"
	EventTypeShowdown     EventType = "showdown"
	EventTypeMatchReset   EventType = "match_reset"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// MatchEvent represents anything that happens during a match
type MatchEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// MatchStartEvent is published after both hands are dealt
type MatchStartEvent struct {
	MatchID    string
	Number     int
	OpeningBet int
	Chips      [2]int
	timestamp  time.Time
}

func (e MatchStartEvent) EventType() EventType { return EventTypeMatchStart }
func (e MatchStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published when a seat calls or raises
type PlayerActionEvent struct {
	MatchID   string
	Seat      Seat
	Action    CommandType
	Round     int
	Bet       int // seat's staged bet after the action
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// BetsAppliedEvent is published when staged bets move into the pot
type BetsAppliedEvent struct {
	MatchID   string
	Round     int
	Bets      [2]int
	PotAfter  int
	Chips     [2]int
	timestamp time.Time
}

func (e BetsAppliedEvent) EventType() EventType { return EventTypeBetsApplied }
func (e BetsAppliedEvent) Timestamp() time.Time { return e.timestamp }

// HoldsChosenEvent is published when a seat confirms its holds
type HoldsChosenEvent struct {
	MatchID   string
	Seat      Seat
	Holds     HoldMask
	timestamp time.Time
}

func (e HoldsChosenEvent) EventType() EventType { return EventTypeHoldsChosen }
func (e HoldsChosenEvent) Timestamp() time.Time { return e.timestamp }

// RedrawEvent is published after a seat's discards are replaced
type RedrawEvent struct {
	MatchID   string
	Seat      Seat
	Replaced  int
	Remaining int // cards left in the working deck
	timestamp time.Time
}

func (e RedrawEvent) EventType() EventType { return EventTypeRedraw }
func (e RedrawEvent) Timestamp() time.Time { return e.timestamp }

// ShowdownEvent is published once the pot has been distributed
type ShowdownEvent struct {
	MatchID   string
	Results   [2]evaluator.Result
	Winner    Seat // NoSeat on a tie
	Pot       int
	Awarded   [2]int
	Discarded int // odd chip lost on a split
	Message   string
	timestamp time.Time
}

func (e ShowdownEvent) EventType() EventType { return EventTypeShowdown }
func (e ShowdownEvent) Timestamp() time.Time { return e.timestamp }

// MatchResetEvent is published when the showdown is acknowledged
type MatchResetEvent struct {
	MatchID   string
	Chips     [2]int
	timestamp time.Time
}

func (e MatchResetEvent) EventType() EventType { return EventTypeMatchReset }
func (e MatchResetEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to match events
type EventSubscriber interface {
	OnEvent(event MatchEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event MatchEvent)

// OnEvent calls f
func (f EventSubscriberFunc) OnEvent(event MatchEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event MatchEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event MatchEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
