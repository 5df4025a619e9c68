package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when more cards are requested than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a working copy of the original deck. Cards are dealt from the
// top and never returned.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a working deck holding a copy of cards, shuffled with rng.
// The caller's slice is never modified.
func NewDeck(cards []Card, rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards)),
		rng:   rng,
	}
	copy(d.cards, cards)
	d.Shuffle()
	return d
}

// NewOrderedDeck creates a working deck that deals cards in the given
// order, first card first. Used to stack the deck in tests.
func NewOrderedDeck(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Shuffle randomizes the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Pop removes and returns the top card
func (d *Deck) Pop() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Deal removes n cards from the top. If fewer than n remain nothing is
// removed and the error wraps ErrDeckExhausted.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("deal %d cards with %d remaining: %w", n, len(d.cards), ErrDeckExhausted)
	}
	cards := make([]Card, 0, n)
	for range n {
		card, _ := d.Pop()
		cards = append(cards, card)
	}
	return cards, nil
}

// DealHand deals a full five card hand
func (d *Deck) DealHand() (Hand, error) {
	var h Hand
	cards, err := d.Deal(HandSize)
	if err != nil {
		return h, err
	}
	copy(h[:], cards)
	return h, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Contains reports whether card is still in the deck
func (d *Deck) Contains(card Card) bool {
	for _, c := range d.cards {
		if c == card {
			return true
		}
	}
	return false
}
