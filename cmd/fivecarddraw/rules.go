package main

import (
	"fmt"

	"github.com/lox/fivecarddraw/internal/config"
	"github.com/lox/fivecarddraw/internal/deck"
	"github.com/lox/fivecarddraw/internal/evaluator"
	"github.com/pterm/pterm"
)

type RulesCmd struct{}

var exampleHands = map[evaluator.Category]string{
	evaluator.HighCard:     "2h 7d 9c Js Kh",
	evaluator.OnePair:      "Qh Qd 4c 8s 2h",
	evaluator.TwoPair:      "5h 5d 9c 9s Ah",
	evaluator.ThreeOfAKind: "7h 7d 7c 2s Kd",
	evaluator.FullHouse:    "Th Td Tc 4s 4h",
	evaluator.FourOfAKind:  "Ah Ad Ac As 3d",
}

func (c *RulesCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	pterm.DefaultHeader.WithFullWidth().Println("Five-Card Draw")

	data := pterm.TableData{{"Rank", "Category", "Example", "Shown as"}}
	for i := len(evaluator.Categories) - 1; i >= 0; i-- {
		category := evaluator.Categories[i]
		hand := deck.MustParseHand(exampleHands[category])
		result, err := evaluator.EvaluateHand(hand)
		if err != nil {
			return fmt.Errorf("example for %s: %w", category, err)
		}
		data = append(data, []string{
			fmt.Sprintf("%d", int(category)),
			category.String(),
			hand.String(),
			result.Description,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Table")
	return pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: fmt.Sprintf("Each seat starts with $%d; stacks carry over between matches", cfg.Table.StartingChips)},
		{Level: 0, Text: fmt.Sprintf("Both seats open with $%d each round 1", cfg.Table.OpeningBet)},
		{Level: 0, Text: fmt.Sprintf("A raise adds $%d to the raiser's bet", cfg.Table.MinimumRaise)},
		{Level: 0, Text: "One draw: hold any cards, the rest are replaced from the deck"},
		{Level: 0, Text: "Only the category counts; equal categories split the pot and the odd chip is lost"},
		{Level: 0, Text: "Straights and flushes are not recognised"},
	}).Render()
}
