package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/fivecarddraw/internal/deck"
)

// Table defaults, matching the original game's stakes.
const (
	DefaultStartingChips = 1000
	DefaultOpeningBet    = 20
	DefaultMinimumRaise  = 50
)

// MatchOption configures a Match during creation.
type MatchOption func(*matchConfig)

type matchConfig struct {
	startingChips int
	openingBet    int
	minimumRaise  int
	clock         quartz.Clock
	logger        *log.Logger
	bus           EventBus
	newDeck       func() *deck.Deck
	newID         func() string
}

// WithStartingChips sets both seats' stacks at session start.
func WithStartingChips(chips int) MatchOption {
	return func(c *matchConfig) {
		c.startingChips = chips
	}
}

// WithOpeningBet sets the bet staged for each seat when a match starts.
func WithOpeningBet(bet int) MatchOption {
	return func(c *matchConfig) {
		c.openingBet = bet
	}
}

// WithMinimumRaise sets the fixed raise increment.
func WithMinimumRaise(raise int) MatchOption {
	return func(c *matchConfig) {
		c.minimumRaise = raise
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) MatchOption {
	return func(c *matchConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) MatchOption {
	return func(c *matchConfig) {
		c.logger = logger
	}
}

// WithEventBus publishes match events to bus.
func WithEventBus(bus EventBus) MatchOption {
	return func(c *matchConfig) {
		c.bus = bus
	}
}

// WithDeckFactory overrides how the working deck is built for each match.
// Tests use it to stack the deck.
func WithDeckFactory(f func() *deck.Deck) MatchOption {
	return func(c *matchConfig) {
		c.newDeck = f
	}
}

// WithIDGenerator overrides match identifier generation.
func WithIDGenerator(f func() string) MatchOption {
	return func(c *matchConfig) {
		c.newID = f
	}
}

func newMatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func defaultMatchConfig() *matchConfig {
	return &matchConfig{
		startingChips: DefaultStartingChips,
		openingBet:    DefaultOpeningBet,
		minimumRaise:  DefaultMinimumRaise,
		clock:         quartz.NewReal(),
		logger:        log.New(io.Discard),
		bus:           NewEventBus(),
		newID:         newMatchID,
	}
}
