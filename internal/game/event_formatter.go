package game

import (
	"fmt"
	"strings"
)

// FormatEvent renders an event as a single match log line
func FormatEvent(event MatchEvent) string {
	switch e := event.(type) {
	case MatchStartEvent:
		return fmt.Sprintf("*** MATCH #%d *** cards dealt, opening bet $%d", e.Number, e.OpeningBet)
	case PlayerActionEvent:
		switch e.Action {
		case CmdCall:
			return fmt.Sprintf("%s: calls (bet $%d)", e.Seat, e.Bet)
		case CmdRaise:
			return fmt.Sprintf("%s: raises (bet $%d)", e.Seat, e.Bet)
		default:
			return fmt.Sprintf("%s: %s", e.Seat, e.Action)
		}
	case BetsAppliedEvent:
		return fmt.Sprintf("Round %d bets $%d/$%d collected, pot now $%d", e.Round, e.Bets[0], e.Bets[1], e.PotAfter)
	case HoldsChosenEvent:
		return fmt.Sprintf("%s: holds %d, discards %d", e.Seat, e.Holds.Held(), e.Holds.Discards())
	case RedrawEvent:
		if e.Replaced == 0 {
			return fmt.Sprintf("%s: stands pat", e.Seat)
		}
		return fmt.Sprintf("%s: draws %d", e.Seat, e.Replaced)
	case ShowdownEvent:
		var b strings.Builder
		b.WriteString("*** SHOWDOWN *** ")
		for i, r := range e.Results {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s shows %s", Seat(i), r.Description)
		}
		b.WriteString(". ")
		b.WriteString(e.Message)
		if e.Discarded > 0 {
			fmt.Fprintf(&b, " ($%d odd chip discarded)", e.Discarded)
		}
		return b.String()
	case MatchResetEvent:
		return fmt.Sprintf("Stacks: Player 1 $%d, Player 2 $%d", e.Chips[0], e.Chips[1])
	default:
		return event.EventType().String()
	}
}
