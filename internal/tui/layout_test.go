package tui

import (
	"testing"

	"github.com/lox/fivecarddraw/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestCardRect(t *testing.T) {
	assert.Equal(t, Rect{X: 2, Y: 5, W: 9, H: 5}, CardRect(game.Player1, 0))
	assert.Equal(t, Rect{X: 42, Y: 5, W: 9, H: 5}, CardRect(game.Player1, 4))
	assert.Equal(t, Rect{X: 12, Y: 13, W: 9, H: 5}, CardRect(game.Player2, 1))
}

func TestHitTest(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		seat  game.Seat
		index int
		ok    bool
	}{
		{"first card top-left", 2, 5, game.Player1, 0, true},
		{"first card bottom-right", 10, 9, game.Player1, 0, true},
		{"gap between cards", 11, 6, game.NoSeat, -1, false},
		{"second card", 12, 6, game.Player1, 1, true},
		{"last card player 2", 50, 17, game.Player2, 4, true},
		{"seat label row", 5, 12, game.NoSeat, -1, false},
		{"left margin", 1, 6, game.NoSeat, -1, false},
		{"past last card", 51, 6, game.NoSeat, -1, false},
		{"header", 5, 0, game.NoSeat, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seat, index, ok := HitTest(tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.seat, seat)
			assert.Equal(t, tt.index, index)
		})
	}
}
