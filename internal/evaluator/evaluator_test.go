package evaluator

import (
	"testing"

	"github.com/lox/fivecarddraw/internal/deck"
	"github.com/lox/fivecarddraw/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cards       string
		category    Category
		description string
	}{
		{
			name:        "ace high",
			cards:       "Ah 9d 7c 4s 2h",
			category:    HighCard,
			description: "High Card 14",
		},
		{
			name:        "seven high",
			cards:       "7h 5d 4c 3s 2h",
			category:    HighCard,
			description: "High Card 7",
		},
		{
			name:        "straight is not detected",
			cards:       "9h 8d 7c 6s 5h",
			category:    HighCard,
			description: "High Card 9",
		},
		{
			name:        "flush is not detected",
			cards:       "Kh 9h 7h 4h 2h",
			category:    HighCard,
			description: "High Card 13",
		},
		{
			name:        "one pair",
			cards:       "2h 2d 5c 9s Kh",
			category:    OnePair,
			description: "One Pair",
		},
		{
			name:        "two pair",
			cards:       "Jh Jd 4c 4s Ah",
			category:    TwoPair,
			description: "Two Pair",
		},
		{
			name:        "three of a kind",
			cards:       "3h 3d 3c 9s Kd",
			category:    ThreeOfAKind,
			description: "Three of a Kind",
		},
		{
			name:        "full house",
			cards:       "Qh Qd Qc 10s 10h",
			category:    FullHouse,
			description: "Full House",
		},
		{
			name:        "four of a kind",
			cards:       "8h 8d 8c 8s 2h",
			category:    FourOfAKind,
			description: "Four of a Kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.description, got.Description)
		})
	}
}

func TestEvaluateRejectsWrongSize(t *testing.T) {
	t.Parallel()
	for _, cards := range []string{"", "Ah Kh Qh Jh", "Ah Kh Qh Jh 10h 9h"} {
		_, err := Evaluate(deck.MustParseCards(cards))
		assert.ErrorIs(t, err, ErrInvalidHandSize, "cards %q", cards)
	}
}

func TestEvaluateRejectsZeroCards(t *testing.T) {
	t.Parallel()
	_, err := EvaluateHand(deck.Hand{})
	assert.Error(t, err)
}

func TestCategoryGap(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Category(3), ThreeOfAKind)
	assert.Equal(t, Category(6), FullHouse)
	assert.Equal(t, Category(7), FourOfAKind)
	for i := 1; i < len(Categories); i++ {
		assert.Equal(t, 1, Categories[i].Compare(Categories[i-1]))
	}
}

// Every pattern evaluates the same under all orderings of its cards.
func TestEvaluateOrderIndependent(t *testing.T) {
	t.Parallel()
	rng := randutil.New(3)
	hands := []string{
		"Ah 9d 7c 4s 2h",
		"2h 2d 5c 9s Kh",
		"Jh Jd 4c 4s Ah",
		"3h 3d 3c 9s Kd",
		"Qh Qd Qc 10s 10h",
		"8h 8d 8c 8s 2h",
	}
	for _, h := range hands {
		cards := deck.MustParseCards(h)
		want, err := Evaluate(cards)
		require.NoError(t, err)
		for range 50 {
			rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
			got, err := Evaluate(cards)
			require.NoError(t, err)
			assert.Equal(t, want, got, "hand %v", cards)
		}
	}
}

// Property sweep: build every pair, full house and quads pattern from
// distinct ranks and check the category.
func TestEvaluatePatterns(t *testing.T) {
	t.Parallel()
	suits := deck.Suits
	for _, a := range deck.Ranks {
		for _, b := range deck.Ranks {
			if a == b {
				continue
			}
			quads := []deck.Card{
				deck.NewCard(a, suits[0]), deck.NewCard(a, suits[1]), deck.NewCard(a, suits[2]), deck.NewCard(a, suits[3]),
				deck.NewCard(b, suits[0]),
			}
			got, err := Evaluate(quads)
			require.NoError(t, err)
			assert.Equal(t, Result{FourOfAKind, "Four of a Kind"}, got)

			fullHouse := []deck.Card{
				deck.NewCard(a, suits[0]), deck.NewCard(a, suits[1]), deck.NewCard(a, suits[2]),
				deck.NewCard(b, suits[0]), deck.NewCard(b, suits[1]),
			}
			got, err = Evaluate(fullHouse)
			require.NoError(t, err)
			assert.Equal(t, Result{FullHouse, "Full House"}, got)
		}
	}

	// One pair: pair rank plus three other distinct ranks.
	for i, p := range deck.Ranks {
		others := make([]deck.Rank, 0, 3)
		for j := 1; len(others) < 3; j++ {
			others = append(others, deck.Ranks[(i+j)%len(deck.Ranks)])
		}
		cards := []deck.Card{
			deck.NewCard(p, deck.Hearts), deck.NewCard(p, deck.Spades),
			deck.NewCard(others[0], deck.Clubs), deck.NewCard(others[1], deck.Diamonds), deck.NewCard(others[2], deck.Hearts),
		}
		got, err := Evaluate(cards)
		require.NoError(t, err)
		assert.Equal(t, Result{OnePair, "One Pair"}, got)
	}
}

func TestCompareIgnoresKickers(t *testing.T) {
	t.Parallel()
	aceHigh, err := Evaluate(deck.MustParseCards("Ah 9d 7c 4s 2h"))
	require.NoError(t, err)
	sevenHigh, err := Evaluate(deck.MustParseCards("7h 5d 4c 3s 2d"))
	require.NoError(t, err)
	pair, err := Evaluate(deck.MustParseCards("2h 2d 5c 9s Kh"))
	require.NoError(t, err)
	trips, err := Evaluate(deck.MustParseCards("3h 3d 3c 9s Kd"))
	require.NoError(t, err)

	assert.Equal(t, 0, Compare(aceHigh, sevenHigh))
	assert.Equal(t, -1, Compare(pair, trips))
	assert.Equal(t, 1, Compare(trips, pair))
}
