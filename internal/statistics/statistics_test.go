package statistics

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/fivecarddraw/internal/deck"
	"github.com/lox/fivecarddraw/internal/evaluator"
	"github.com/lox/fivecarddraw/internal/game"
	"github.com/lox/fivecarddraw/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.True(t, stats.IsLedgerBalanced())
	assert.NoError(t, stats.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	stats := &Statistics{}
	stats.Add(MatchResult{
		Winner:     game.Player1,
		Pot:        140,
		Net:        [2]int{70, -70},
		Categories: [2]evaluator.Category{evaluator.TwoPair, evaluator.OnePair},
	})
	stats.Add(MatchResult{
		Winner:     game.Player2,
		Pot:        40,
		Net:        [2]int{-20, 20},
		Categories: [2]evaluator.Category{evaluator.HighCard, evaluator.OnePair},
	})
	stats.Add(MatchResult{
		Winner:     game.NoSeat,
		Pot:        41,
		Net:        [2]int{0, -1},
		Categories: [2]evaluator.Category{evaluator.OnePair, evaluator.OnePair},
		Discarded:  1,
	})

	assert.Equal(t, 3, stats.Matches)
	assert.Equal(t, [2]int{1, 1}, stats.Wins)
	assert.Equal(t, 1, stats.Ties)
	assert.Equal(t, 140, stats.MaxPot)
	assert.Equal(t, 1, stats.Discarded)
	assert.Equal(t, [2]int{50, -51}, stats.SumNet)
	assert.InDelta(t, 50.0/3.0, stats.Mean(), 1e-9)
	assert.Equal(t, 0.0, stats.Median())
	assert.Equal(t, 4, stats.Categories[evaluator.OnePair])
	assert.Equal(t, 1, stats.Categories[evaluator.TwoPair])
	assert.Equal(t, 1, stats.Categories[evaluator.HighCard])
	assert.True(t, stats.IsLedgerBalanced())
	require.NoError(t, stats.Validate())

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
}

func TestStatisticsVariance(t *testing.T) {
	stats := &Statistics{}
	for _, net := range []int{10, -10, 10, -10} {
		winner := game.Player1
		if net < 0 {
			winner = game.Player2
		}
		stats.Add(MatchResult{
			Winner:     winner,
			Net:        [2]int{net, -net},
			Categories: [2]evaluator.Category{evaluator.HighCard, evaluator.HighCard},
		})
	}

	assert.Zero(t, stats.Mean())
	assert.InDelta(t, 400.0/3.0, stats.Variance(), 1e-9)
	assert.InDelta(t, 5.7735, stats.StdError(), 1e-4)
}

func TestValidateDetectsUnbalancedLedger(t *testing.T) {
	stats := &Statistics{}
	stats.Add(MatchResult{
		Winner:     game.Player1,
		Net:        [2]int{30, -20},
		Categories: [2]evaluator.Category{evaluator.OnePair, evaluator.HighCard},
	})

	assert.False(t, stats.IsLedgerBalanced())
	assert.ErrorContains(t, stats.Validate(), "ledger mismatch")
}

func TestTrackerFromEvents(t *testing.T) {
	tracker := NewTracker()

	tracker.OnEvent(game.MatchStartEvent{MatchID: "m1", Number: 1, OpeningBet: 20})
	tracker.OnEvent(game.BetsAppliedEvent{MatchID: "m1", Round: 1, Bets: [2]int{20, 20}, PotAfter: 40})
	tracker.OnEvent(game.BetsAppliedEvent{MatchID: "m1", Round: 2, Bets: [2]int{50, 51}, PotAfter: 141})
	tracker.OnEvent(game.ShowdownEvent{
		MatchID: "m1",
		Results: [2]evaluator.Result{
			{Category: evaluator.OnePair, Description: "One Pair"},
			{Category: evaluator.OnePair, Description: "One Pair"},
		},
		Winner:    game.NoSeat,
		Pot:       141,
		Awarded:   [2]int{70, 70},
		Discarded: 1,
	})

	stats := tracker.Statistics()
	assert.Equal(t, 1, stats.Matches)
	assert.Equal(t, 1, stats.Ties)
	assert.Equal(t, [2]int{0, -1}, stats.SumNet)
	assert.Equal(t, 1, stats.Discarded)
	require.NoError(t, stats.Validate())
}

func TestTrackerFollowsRealMatches(t *testing.T) {
	bus := game.NewEventBus()
	tracker := NewTracker()
	bus.Subscribe(tracker)

	m := game.NewMatch(deck.Standard(), randutil.New(3),
		game.WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})),
		game.WithEventBus(bus),
	)

	script := []game.Command{
		game.Start(), game.Call(), game.Raise(),
		game.ToggleHold(0), game.ToggleHold(1), game.ConfirmHolds(), game.Redraw(),
		game.ConfirmHolds(), game.Redraw(),
		game.Raise(), game.Call(),
		game.Acknowledge(),
	}
	for range 5 {
		for _, cmd := range script {
			handled, err := m.Apply(cmd)
			require.NoError(t, err)
			require.True(t, handled, "command %v in phase %s", cmd, m.Phase())
		}
	}

	stats := tracker.Statistics()
	require.NoError(t, stats.Validate())
	assert.Equal(t, 5, stats.Matches)

	chips := m.Chips()
	assert.Equal(t, game.DefaultStartingChips+stats.SumNet[game.Player1], chips[game.Player1])
	assert.Equal(t, game.DefaultStartingChips+stats.SumNet[game.Player2], chips[game.Player2])
}
