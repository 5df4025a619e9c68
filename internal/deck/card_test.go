package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "mixed suits",
			input: "Ah Kd Qc Js 9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "ten as 10 or T",
			input: "10h Td",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Ten},
			},
		},
		{
			name:  "case insensitive",
			input: "as KH qD jc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "Xs Ks",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "As Kx",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "A",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestAssetKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2_of_hearts", NewCard(Two, Hearts).AssetKey())
	assert.Equal(t, "10_of_spades", NewCard(Ten, Spades).AssetKey())
	assert.Equal(t, "jack_of_clubs", NewCard(Jack, Clubs).AssetKey())
	assert.Equal(t, "queen_of_hearts", NewCard(Queen, Hearts).AssetKey())
	assert.Equal(t, "king_of_diamonds", NewCard(King, Diamonds).AssetKey())
	assert.Equal(t, "ace_of_spades", NewCard(Ace, Spades).AssetKey())
}

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Q♥", NewCard(Queen, Hearts).String())
	assert.Equal(t, "10♠", NewCard(Ten, Spades).String())
	assert.Equal(t, "2♣", NewCard(Two, Clubs).String())
}

func TestRankValues(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, NewCard(Two, Hearts).Value())
	assert.Equal(t, 14, NewCard(Ace, Hearts).Value())
	assert.False(t, Rank(1).Valid())
	assert.False(t, Rank(15).Valid())
}

func TestStandardDeckIsComplete(t *testing.T) {
	t.Parallel()
	cards := Standard()
	require.Len(t, cards, 52)

	seen := make(map[string]bool)
	for _, c := range cards {
		assert.False(t, seen[c.AssetKey()], "duplicate %s", c)
		seen[c.AssetKey()] = true
	}
	assert.Equal(t, NewCard(Two, Hearts), cards[0])
	assert.Equal(t, NewCard(Ace, Spades), cards[51])
}
