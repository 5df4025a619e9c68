package game

import (
	"fmt"

	"github.com/lox/fivecarddraw/internal/deck"
	"github.com/lox/fivecarddraw/internal/evaluator"
)

// CardView is one card slot as the display should draw it
type CardView struct {
	Card   deck.Card
	FaceUp bool
	// Label is HOLD or DISCARD while the owning seat chooses holds.
	Label string
	Held  bool
}

// SeatView is everything the display shows for one seat
type SeatView struct {
	Seat   Seat
	Chips  int
	Bet    int
	Acting bool
	Cards  []CardView
	// Result is set at showdown only.
	Result *evaluator.Result
}

// Snapshot is a read-only copy of the match state for rendering
type Snapshot struct {
	MatchID        string
	Number         int
	Phase          Phase
	Acting         Seat
	Instruction    string
	Pot            int
	MinimumRaise   int
	CardsRemaining int
	Message        string
	Seats          [2]SeatView
}

// Snapshot returns the current display state. Cards are face up for both
// seats at showdown, and otherwise only for the acting seat.
func (m *Match) Snapshot() Snapshot {
	acting := m.phase.Seat()
	s := Snapshot{
		MatchID:        m.id,
		Number:         m.number,
		Phase:          m.phase,
		Acting:         acting,
		Instruction:    m.instruction(),
		Pot:            m.pot,
		MinimumRaise:   m.minimumRaise,
		CardsRemaining: m.CardsRemaining(),
		Message:        m.message,
	}

	for _, seat := range Seats {
		view := SeatView{
			Seat:   seat,
			Chips:  m.chips[seat],
			Bet:    m.bets[seat],
			Acting: seat == acting,
		}
		if m.number > 0 {
			faceUp := m.phase == Showdown || seat == acting
			view.Cards = make([]CardView, len(m.hands[seat]))
			for i, card := range m.hands[seat] {
				cv := CardView{Card: card, FaceUp: faceUp}
				if m.phase.IsHold() && seat == acting {
					cv.Held = m.holds[seat][i]
					cv.Label = m.holds[seat].Label(i)
				}
				view.Cards[i] = cv
			}
		}
		if m.phase == Showdown {
			r := m.results[seat]
			view.Result = &r
		}
		s.Seats[seat] = view
	}
	return s
}

// VisibleCards returns the face-up cards of a seat, nil when hidden
func (s Snapshot) VisibleCards(seat Seat) []deck.Card {
	var cards []deck.Card
	for _, cv := range s.Seats[seat].Cards {
		if cv.FaceUp {
			cards = append(cards, cv.Card)
		}
	}
	return cards
}

func (m *Match) instruction() string {
	seat := m.phase.Seat()
	switch m.phase {
	case ChooseMode:
		return "Press 1 to start Five-Card Draw."
	case BetRound1Player1, BetRound1Player2, BetRound2Player1, BetRound2Player2:
		return fmt.Sprintf("%s: Press C to Call, R to Raise", seat)
	case HoldPlayer1, HoldPlayer2:
		return fmt.Sprintf("%s: Click cards or press 1-5 to hold/discard. Press RETURN when done.", seat)
	case RedrawPlayer1, RedrawPlayer2:
		return fmt.Sprintf("%s: Press SPACE to redraw.", seat)
	case Showdown:
		return m.message + " Press SPACE to play again."
	default:
		return ""
	}
}
