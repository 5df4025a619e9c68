package game

import (
	"testing"

	"github.com/lox/fivecarddraw/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBeforeFirstMatch(t *testing.T) {
	t.Parallel()
	m := newTestMatch(t)
	snap := m.Snapshot()

	assert.Equal(t, ChooseMode, snap.Phase)
	assert.Equal(t, NoSeat, snap.Acting)
	assert.Equal(t, "Press 1 to start Five-Card Draw.", snap.Instruction)
	for _, seat := range Seats {
		assert.Empty(t, snap.Seats[seat].Cards)
		assert.Nil(t, snap.Seats[seat].Result)
	}
}

func TestSnapshotVisibility(t *testing.T) {
	t.Parallel()
	m := newTestMatch(t, WithDeckFactory(stackedDeck(t, pairHand+" "+tripsHand)))
	mustApply(t, m, Start())

	steps := []struct {
		phase       Phase
		instruction string
		next        Command
	}{
		{BetRound1Player1, "Player 1: Press C to Call, R to Raise", Call()},
		{BetRound1Player2, "Player 2: Press C to Call, R to Raise", Call()},
		{HoldPlayer1, "Player 1: Click cards or press 1-5 to hold/discard. Press RETURN when done.", ConfirmHolds()},
		{RedrawPlayer1, "Player 1: Press SPACE to redraw.", Redraw()},
		{HoldPlayer2, "Player 2: Click cards or press 1-5 to hold/discard. Press RETURN when done.", ConfirmHolds()},
		{RedrawPlayer2, "Player 2: Press SPACE to redraw.", Redraw()},
		{BetRound2Player1, "Player 1: Press C to Call, R to Raise", Call()},
		{BetRound2Player2, "Player 2: Press C to Call, R to Raise", Call()},
	}

	for _, step := range steps {
		snap := m.Snapshot()
		require.Equal(t, step.phase, snap.Phase)
		assert.Equal(t, step.instruction, snap.Instruction)

		acting := step.phase.Seat()
		assert.Equal(t, acting, snap.Acting)
		assert.Len(t, snap.VisibleCards(acting), deck.HandSize, "acting seat sees its cards in %s", step.phase)
		assert.Empty(t, snap.VisibleCards(acting.Other()), "opponent cards hidden in %s", step.phase)
		assert.True(t, snap.Seats[acting].Acting)
		assert.False(t, snap.Seats[acting.Other()].Acting)
		mustApply(t, m, step.next)
	}

	snap := m.Snapshot()
	require.Equal(t, Showdown, snap.Phase)
	for _, seat := range Seats {
		assert.Len(t, snap.VisibleCards(seat), deck.HandSize)
		require.NotNil(t, snap.Seats[seat].Result)
	}
	assert.Equal(t, m.Results()[Player2], *snap.Seats[Player2].Result)

	mustApply(t, m, Acknowledge())
	snap = m.Snapshot()
	for _, seat := range Seats {
		assert.Len(t, snap.Seats[seat].Cards, deck.HandSize, "last hands stay on the table")
		assert.Empty(t, snap.VisibleCards(seat))
	}
}

func TestSnapshotHoldLabels(t *testing.T) {
	t.Parallel()
	m := newTestMatch(t)
	mustApply(t, m, Start(), Call(), Call(), ToggleHold(1), ToggleHold(4))

	snap := m.Snapshot()
	labels := make([]string, 0, deck.HandSize)
	for _, cv := range snap.Seats[Player1].Cards {
		labels = append(labels, cv.Label)
	}
	assert.Equal(t, []string{"DISCARD", "HOLD", "DISCARD", "DISCARD", "HOLD"}, labels)
	for _, cv := range snap.Seats[Player2].Cards {
		assert.Empty(t, cv.Label)
	}

	mustApply(t, m, ConfirmHolds())
	for _, cv := range m.Snapshot().Seats[Player1].Cards {
		assert.Empty(t, cv.Label, "labels only shown while choosing holds")
	}
}

func TestSnapshotBetsAndPot(t *testing.T) {
	t.Parallel()
	m := newTestMatch(t)
	mustApply(t, m, Start(), Raise())

	snap := m.Snapshot()
	assert.Equal(t, 70, snap.Seats[Player1].Bet)
	assert.Equal(t, 20, snap.Seats[Player2].Bet)
	assert.Equal(t, 1000, snap.Seats[Player1].Chips)
	assert.Equal(t, DefaultMinimumRaise, snap.MinimumRaise)
	assert.Equal(t, 42, snap.CardsRemaining)
	assert.Equal(t, "match-1", snap.MatchID)
}
