package main

import (
	"fmt"

	"github.com/lox/fivecarddraw/internal/evaluator"
	"github.com/lox/fivecarddraw/internal/game"
	"github.com/lox/fivecarddraw/internal/statistics"
	"github.com/pterm/pterm"
)

// summaryTable lays out the session tally, one row per seat
func summaryTable(stats *statistics.Statistics, chips [2]int) pterm.TableData {
	data := pterm.TableData{{"Seat", "Wins", "Net", "Chips"}}
	for _, seat := range game.Seats {
		data = append(data, []string{
			seat.String(),
			fmt.Sprintf("%d", stats.Wins[seat]),
			fmt.Sprintf("%+d", stats.SumNet[seat]),
			fmt.Sprintf("$%d", chips[seat]),
		})
	}
	return data
}

func printSummary(stats *statistics.Statistics, chips [2]int) error {
	if stats.Matches == 0 {
		pterm.Info.Println("No matches played")
		return nil
	}

	pterm.DefaultSection.Printfln("Session: %d matches, %d ties", stats.Matches, stats.Ties)
	if err := pterm.DefaultTable.WithHasHeader().WithData(summaryTable(stats, chips)).Render(); err != nil {
		return err
	}

	var bars pterm.Bars
	for _, c := range evaluator.Categories {
		if n := stats.Categories[c]; n > 0 {
			bars = append(bars, pterm.Bar{Label: c.String(), Value: n})
		}
	}
	if err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render(); err != nil {
		return err
	}

	low, high := stats.ConfidenceInterval95()
	pterm.Info.Printfln("Biggest pot $%d, player 1 averaged %+.1f per match (95%% CI %+.1f to %+.1f)",
		stats.MaxPot, stats.Mean(), low, high)
	if stats.Discarded > 0 {
		pterm.Info.Printfln("%d chips lost to odd splits", stats.Discarded)
	}
	return nil
}
