package deck

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in a five-card draw hand.
const HandSize = 5

// Hand is a player's five cards. The fixed array keeps the length invariant
// in the type.
type Hand [HandSize]Card

// NewHand builds a hand from exactly five cards
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("hand needs %d cards, got %d", HandSize, len(cards))
	}
	copy(h[:], cards)
	return h, nil
}

// MustParseHand parses five cards or panics
func MustParseHand(s string) Hand {
	h, err := NewHand(MustParseCards(s)...)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns the hand as a slice
func (h Hand) Cards() []Card {
	return h[:]
}

// String returns the cards separated by spaces
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
