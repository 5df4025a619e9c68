// Package statistics keeps a running tally of a play session from match
// events. Nothing is written to disk; the tally lives as long as the process.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/fivecarddraw/internal/evaluator"
	"github.com/lox/fivecarddraw/internal/game"
)

// MatchResult is the outcome of a single match
type MatchResult struct {
	MatchID    string
	Winner     game.Seat // NoSeat on a tie
	Pot        int
	Net        [2]int // chips won minus chips put in, per seat
	Categories [2]evaluator.Category
	Discarded  int
}

// Statistics tracks results across a session. Net figures are from
// player 1's side; player 2's are the negation less any discarded chips.
type Statistics struct {
	Matches int
	Wins    [2]int
	Ties    int

	SumNet  [2]int
	SumNet2 float64   // player 1, for variance
	Values  []float64 // player 1 net per match

	MaxPot    int
	Discarded int

	// Categories counts the final category of every hand shown down
	Categories map[evaluator.Category]int
}

// Add incorporates a new match result into the statistics
func (s *Statistics) Add(result MatchResult) {
	s.Matches++
	switch result.Winner {
	case game.Player1, game.Player2:
		s.Wins[result.Winner]++
	default:
		s.Ties++
	}

	for _, seat := range game.Seats {
		s.SumNet[seat] += result.Net[seat]
	}
	net := float64(result.Net[game.Player1])
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	if result.Pot > s.MaxPot {
		s.MaxPot = result.Pot
	}
	s.Discarded += result.Discarded

	if s.Categories == nil {
		s.Categories = make(map[evaluator.Category]int)
	}
	for _, c := range result.Categories {
		s.Categories[c]++
	}
}

// Mean returns player 1's mean net chips per match
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.SumNet[game.Player1]) / float64(s.Matches)
}

// Variance returns the sample variance of player 1's results
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
}

// StdDev returns the sample standard deviation of player 1's results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median of player 1's results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// IsLedgerBalanced reports whether every chip won was lost by the other
// seat or discarded on a split.
func (s *Statistics) IsLedgerBalanced() bool {
	return s.SumNet[game.Player1]+s.SumNet[game.Player2]+s.Discarded == 0
}

// Validate checks the tally is internally consistent
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: player1=%d, player2=%d, discarded=%d",
			s.SumNet[game.Player1], s.SumNet[game.Player2], s.Discarded)
	}
	if s.Wins[game.Player1]+s.Wins[game.Player2]+s.Ties != s.Matches {
		return fmt.Errorf("outcomes (%d wins, %d wins, %d ties) do not add up to %d matches",
			s.Wins[game.Player1], s.Wins[game.Player2], s.Ties, s.Matches)
	}
	if len(s.Values) != s.Matches {
		return fmt.Errorf("values array length (%d) does not match matches count (%d)",
			len(s.Values), s.Matches)
	}
	hands := 0
	for _, n := range s.Categories {
		hands += n
	}
	if hands != 2*s.Matches {
		return fmt.Errorf("category total (%d) is not two per match (%d)", hands, 2*s.Matches)
	}
	return nil
}
