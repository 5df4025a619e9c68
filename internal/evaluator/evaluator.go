// Package evaluator ranks five-card draw hands by rank multiplicity.
//
// Only pairs, trips, full houses and quads are recognised. Straights,
// flushes and kickers play no part, so two hands in the same category tie.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/fivecarddraw/internal/deck"
)

// ErrInvalidHandSize is returned when a hand does not hold five cards.
var ErrInvalidHandSize = errors.New("hand must contain exactly five cards")

// Result is the outcome of evaluating a hand
type Result struct {
	Category    Category
	Description string
}

// String returns the description
func (r Result) String() string {
	return r.Description
}

// Evaluate ranks a five card hand. Card order does not matter.
func Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) != deck.HandSize {
		return Result{}, fmt.Errorf("evaluate %d cards: %w", len(cards), ErrInvalidHandSize)
	}

	var counts [deck.Ace + 1]int
	high := deck.Rank(0)
	for _, c := range cards {
		if !c.Rank.Valid() {
			return Result{}, fmt.Errorf("evaluate: invalid rank %d", int(c.Rank))
		}
		counts[c.Rank]++
		high = max(high, c.Rank)
	}

	var pairs, trips, quads int
	for _, n := range counts {
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	switch {
	case quads > 0:
		return result(FourOfAKind), nil
	case trips > 0 && pairs > 0:
		return result(FullHouse), nil
	case trips > 0:
		return result(ThreeOfAKind), nil
	case pairs == 2:
		return result(TwoPair), nil
	case pairs == 1:
		return result(OnePair), nil
	default:
		return Result{
			Category:    HighCard,
			Description: fmt.Sprintf("%s %d", HighCard, int(high)),
		}, nil
	}
}

// EvaluateHand ranks a dealt hand
func EvaluateHand(h deck.Hand) (Result, error) {
	return Evaluate(h.Cards())
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 on a tie.
// Only categories are compared.
func Compare(a, b Result) int {
	return a.Category.Compare(b.Category)
}

func result(c Category) Result {
	return Result{Category: c, Description: c.String()}
}
