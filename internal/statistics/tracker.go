package statistics

import (
	"github.com/lox/fivecarddraw/internal/game"
)

// Tracker turns match events into MatchResults. Subscribe it to the
// match's event bus.
type Tracker struct {
	stats Statistics
	// chips each seat has put into the current pot
	paid [2]int
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnEvent implements game.EventSubscriber
func (t *Tracker) OnEvent(event game.MatchEvent) {
	switch e := event.(type) {
	case game.MatchStartEvent:
		t.paid = [2]int{}
	case game.BetsAppliedEvent:
		for _, seat := range game.Seats {
			t.paid[seat] += e.Bets[seat]
		}
	case game.ShowdownEvent:
		result := MatchResult{
			MatchID:   e.MatchID,
			Winner:    e.Winner,
			Pot:       e.Pot,
			Discarded: e.Discarded,
		}
		for _, seat := range game.Seats {
			result.Net[seat] = e.Awarded[seat] - t.paid[seat]
			result.Categories[seat] = e.Results[seat].Category
		}
		t.stats.Add(result)
		t.paid = [2]int{}
	}
}

// Statistics returns the tally so far
func (t *Tracker) Statistics() *Statistics {
	return &t.stats
}
