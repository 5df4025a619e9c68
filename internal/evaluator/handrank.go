package evaluator

// Category is the hand-strength class used to compare two hands. Higher
// is stronger. Values 4 and 5 are reserved for straight and flush, which
// this game does not detect.
type Category int

const (
	HighCard     Category = 0
	OnePair      Category = 1
	TwoPair      Category = 2
	ThreeOfAKind Category = 3
	FullHouse    Category = 6
	FourOfAKind  Category = 7
)

// Categories lists the recognised categories from weakest to strongest.
var Categories = []Category{HighCard, OnePair, TwoPair, ThreeOfAKind, FullHouse, FourOfAKind}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	default:
		return "Unknown"
	}
}

// Compare returns -1 if c is weaker, 0 if equal, 1 if c is stronger
func (c Category) Compare(other Category) int {
	switch {
	case c > other:
		return 1
	case c < other:
		return -1
	}
	return 0
}
