package game

import "fmt"

// CommandType enumerates the inputs a match understands
type CommandType int

const (
	CmdQuit CommandType = iota
	CmdStart
	CmdCall
	CmdRaise
	CmdToggleHold
	CmdConfirmHolds
	CmdRedraw
	CmdAcknowledge
)

// String returns the command name
func (t CommandType) String() string {
	switch t {
	case CmdQuit:
		return "quit"
	case CmdStart:
		return "start"
	case CmdCall:
		return "call"
	case CmdRaise:
		return "raise"
	case CmdToggleHold:
		return "toggle_hold"
	case CmdConfirmHolds:
		return "confirm_holds"
	case CmdRedraw:
		return "redraw"
	case CmdAcknowledge:
		return "acknowledge"
	default:
		return fmt.Sprintf("command(%d)", int(t))
	}
}

// Command is a single player input. Index is only used by CmdToggleHold.
type Command struct {
	Type  CommandType
	Index int
}

// String returns a compact form for logs
func (c Command) String() string {
	if c.Type == CmdToggleHold {
		return fmt.Sprintf("%s(%d)", c.Type, c.Index)
	}
	return c.Type.String()
}

func Quit() Command         { return Command{Type: CmdQuit} }
func Start() Command        { return Command{Type: CmdStart} }
func Call() Command         { return Command{Type: CmdCall} }
func Raise() Command        { return Command{Type: CmdRaise} }
func ConfirmHolds() Command { return Command{Type: CmdConfirmHolds} }
func Redraw() Command       { return Command{Type: CmdRedraw} }
func Acknowledge() Command  { return Command{Type: CmdAcknowledge} }

// ToggleHold flips the hold flag of the card at index for the acting seat
func ToggleHold(index int) Command {
	return Command{Type: CmdToggleHold, Index: index}
}
