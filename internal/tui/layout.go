package tui

import (
	"github.com/lox/fivecarddraw/internal/deck"
	"github.com/lox/fivecarddraw/internal/game"
)

// Card geometry in terminal cells, border included.
const (
	cardWidth  = 9
	cardHeight = 5
	cardGap    = 1
	leftMargin = 2

	// Rows above the first seat: title, instruction, pot, blank.
	headerRows = 4
	// Each seat: label, cards, hold labels, blank.
	seatRows = 1 + cardHeight + 1 + 1

	tableRows = headerRows + 2*seatRows
)

// Rect is a rectangle of terminal cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at x, y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CardRect returns where the card at index is drawn for seat
func CardRect(seat game.Seat, index int) Rect {
	return Rect{
		X: leftMargin + index*(cardWidth+cardGap),
		Y: headerRows + int(seat)*seatRows + 1,
		W: cardWidth,
		H: cardHeight,
	}
}

// HitTest maps a click to the seat and card index under it
func HitTest(x, y int) (game.Seat, int, bool) {
	for _, seat := range game.Seats {
		for i := range deck.HandSize {
			if CardRect(seat, i).Contains(x, y) {
				return seat, i, true
			}
		}
	}
	return game.NoSeat, -1, false
}
