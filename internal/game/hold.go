package game

import "github.com/lox/fivecarddraw/internal/deck"

// HoldMask marks which cards a seat keeps on redraw, aligned by position
// with the seat's hand. True means hold.
type HoldMask [deck.HandSize]bool

// Toggle flips the flag at index. Out of range indexes are ignored and
// reported as false.
func (h *HoldMask) Toggle(index int) bool {
	if index < 0 || index >= len(h) {
		return false
	}
	h[index] = !h[index]
	return true
}

// IsHeld reports whether the card at index is held. Out of range indexes
// are never held.
func (h HoldMask) IsHeld(index int) bool {
	return index >= 0 && index < len(h) && h[index]
}

// Held returns the number of held cards
func (h HoldMask) Held() int {
	n := 0
	for _, held := range h {
		if held {
			n++
		}
	}
	return n
}

// Discards returns the number of cards to be replaced
func (h HoldMask) Discards() int {
	return len(h) - h.Held()
}

// Label returns "HOLD" or "DISCARD" for the card at index
func (h HoldMask) Label(index int) string {
	if h[index] {
		return "HOLD"
	}
	return "DISCARD"
}
