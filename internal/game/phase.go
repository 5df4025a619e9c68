package game

import "fmt"

// Seat identifies one of the two players
type Seat int

const (
	NoSeat  Seat = -1
	Player1 Seat = 0
	Player2 Seat = 1
)

// Seats lists both seats in acting order
var Seats = []Seat{Player1, Player2}

// String returns "Player 1" or "Player 2"
func (s Seat) String() string {
	switch s {
	case Player1, Player2:
		return fmt.Sprintf("Player %d", int(s)+1)
	default:
		return "nobody"
	}
}

// Other returns the opposing seat
func (s Seat) Other() Seat {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoSeat
	}
}

// Phase is the state of a match. The acting seat is encoded in the phase.
type Phase int

const (
	ChooseMode Phase = iota
	BetRound1Player1
	BetRound1Player2
	HoldPlayer1
	HoldPlayer2
	RedrawPlayer1
	RedrawPlayer2
	BetRound2Player1
	BetRound2Player2
	Showdown
)

// Phases lists every phase in match order
var Phases = []Phase{
	ChooseMode,
	BetRound1Player1,
	BetRound1Player2,
	HoldPlayer1,
	HoldPlayer2,
	RedrawPlayer1,
	RedrawPlayer2,
	BetRound2Player1,
	BetRound2Player2,
	Showdown,
}

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case ChooseMode:
		return "choose_mode"
	case BetRound1Player1:
		return "bet_round1_player1"
	case BetRound1Player2:
		return "bet_round1_player2"
	case HoldPlayer1:
		return "hold_player1"
	case HoldPlayer2:
		return "hold_player2"
	case RedrawPlayer1:
		return "redraw_player1"
	case RedrawPlayer2:
		return "redraw_player2"
	case BetRound2Player1:
		return "bet_round2_player1"
	case BetRound2Player2:
		return "bet_round2_player2"
	case Showdown:
		return "showdown"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Seat returns the seat expected to act, or NoSeat
func (p Phase) Seat() Seat {
	switch p {
	case BetRound1Player1, HoldPlayer1, RedrawPlayer1, BetRound2Player1:
		return Player1
	case BetRound1Player2, HoldPlayer2, RedrawPlayer2, BetRound2Player2:
		return Player2
	default:
		return NoSeat
	}
}

// IsBetting reports whether the phase is part of a betting round
func (p Phase) IsBetting() bool {
	return p.Round() != 0
}

// Round returns 1 or 2 for betting phases and 0 otherwise
func (p Phase) Round() int {
	switch p {
	case BetRound1Player1, BetRound1Player2:
		return 1
	case BetRound2Player1, BetRound2Player2:
		return 2
	default:
		return 0
	}
}

// IsHold reports whether the acting seat is choosing holds
func (p Phase) IsHold() bool {
	return p == HoldPlayer1 || p == HoldPlayer2
}

// IsRedraw reports whether the acting seat is about to redraw
func (p Phase) IsRedraw() bool {
	return p == RedrawPlayer1 || p == RedrawPlayer2
}
