package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/lox/fivecarddraw/internal/game"
)

type keyMap struct {
	Start       key.Binding
	Call        key.Binding
	Raise       key.Binding
	Toggle      key.Binding
	Confirm     key.Binding
	Redraw      key.Binding
	Acknowledge key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "start"),
		),
		Call: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "call"),
		),
		Raise: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "raise"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5/click", "hold/discard"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Redraw: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "redraw"),
		),
		Acknowledge: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forPhase enables only the bindings that do something in phase
func (k *keyMap) forPhase(phase game.Phase) {
	k.Start.SetEnabled(phase == game.ChooseMode)
	k.Call.SetEnabled(phase.IsBetting())
	k.Raise.SetEnabled(phase.IsBetting())
	k.Toggle.SetEnabled(phase.IsHold())
	k.Confirm.SetEnabled(phase.IsHold())
	k.Redraw.SetEnabled(phase.IsRedraw())
	k.Acknowledge.SetEnabled(phase == game.Showdown)
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Call, k.Raise, k.Toggle, k.Confirm, k.Redraw, k.Acknowledge, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
