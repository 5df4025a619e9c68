// Package game implements the two-player five-card draw match.
//
// The main type is Match, which owns the phase, hands, hold masks, bets,
// pot and chip stacks for a session of matches between two seats.
//
// # Basic Usage
//
// Create a match from the original deck and feed it commands:
//
//	m := game.NewMatch(deck.Standard(), randutil.New(42))
//	m.Apply(game.Start())
//	m.Apply(game.Call()) // player 1
//	m.Apply(game.Call()) // player 2, bets go into the pot
//	snap := m.Snapshot()
//
// Commands that make no sense for the current phase are ignored and
// Apply reports them as not handled.
//
// # Deterministic Testing
//
// Use WithDeckFactory to stack the deck, WithClock with a quartz mock to
// pin event timestamps, and WithIDGenerator to fix match identifiers.
//
// # Architecture
//
// The acting seat is part of the Phase, so dispatch is a single switch
// over the closed set of phases. Bets are staged per seat and moved into
// the pot when the second seat acts. At showdown both hands go through
// evaluator.EvaluateHand and the pot is awarded or split.
//
// Match is not safe for concurrent use; the TUI drives it from its single
// update loop.
package game
