package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/fivecarddraw/internal/deck"
	"github.com/lox/fivecarddraw/internal/evaluator"
)

// Match is a session of five-card draw matches between two seats. Chip
// stacks carry over from one match to the next; everything else is reset
// by Start.
type Match struct {
	id     string
	number int
	phase  Phase

	hands [2]deck.Hand
	holds [2]HoldMask
	bets  [2]int
	chips [2]int
	pot   int

	openingBet   int
	minimumRaise int

	results [2]evaluator.Result
	message string
	quit    bool

	deck    *deck.Deck
	newDeck func() *deck.Deck
	newID   func() string
	clock   quartz.Clock
	logger  *log.Logger
	bus     EventBus
}

// NewMatch creates a match in the ChooseMode phase. cards is the original
// deck; every Start shuffles a fresh working copy of it with rng.
func NewMatch(cards []deck.Card, rng *rand.Rand, opts ...MatchOption) *Match {
	cfg := defaultMatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.newDeck == nil {
		if rng == nil {
			panic("rng is required when no deck factory is given")
		}
		original := make([]deck.Card, len(cards))
		copy(original, cards)
		cfg.newDeck = func() *deck.Deck {
			return deck.NewDeck(original, rng)
		}
	}

	return &Match{
		phase:        ChooseMode,
		chips:        [2]int{cfg.startingChips, cfg.startingChips},
		openingBet:   cfg.openingBet,
		minimumRaise: cfg.minimumRaise,
		newDeck:      cfg.newDeck,
		newID:        cfg.newID,
		clock:        cfg.clock,
		logger:       cfg.logger.WithPrefix("match"),
		bus:          cfg.bus,
	}
}

// Apply feeds one command to the match. It reports whether the command
// was valid for the current phase; invalid commands change nothing and
// return false with a nil error. An error means the command was valid but
// could not be carried out, and the match state is unchanged.
func (m *Match) Apply(cmd Command) (bool, error) {
	if cmd.Type == CmdQuit {
		m.quit = true
		m.logger.Info("Quit requested", "phase", m.phase)
		return true, nil
	}

	handled, err := m.dispatch(cmd)
	if err != nil {
		m.logger.Error("Command failed", "command", cmd, "phase", m.phase, "error", err)
		return true, err
	}
	if !handled {
		m.logger.Debug("Ignoring command", "command", cmd, "phase", m.phase)
	}
	return handled, nil
}

func (m *Match) dispatch(cmd Command) (bool, error) {
	switch m.phase {
	case ChooseMode:
		if cmd.Type == CmdStart {
			return true, m.start()
		}

	case BetRound1Player1, BetRound2Player1:
		switch cmd.Type {
		case CmdCall, CmdRaise:
			m.openBetting(cmd.Type)
			return true, nil
		}

	case BetRound1Player2, BetRound2Player2:
		switch cmd.Type {
		case CmdCall, CmdRaise:
			return true, m.closeBetting(cmd.Type)
		}

	case HoldPlayer1, HoldPlayer2:
		switch cmd.Type {
		case CmdToggleHold:
			return m.holds[m.phase.Seat()].Toggle(cmd.Index), nil
		case CmdConfirmHolds:
			m.confirmHolds()
			return true, nil
		}

	case RedrawPlayer1, RedrawPlayer2:
		if cmd.Type == CmdRedraw {
			return true, m.redraw()
		}

	case Showdown:
		if cmd.Type == CmdAcknowledge {
			m.acknowledge()
			return true, nil
		}

	default:
		panic(fmt.Sprintf("unhandled phase %s", m.phase))
	}

	return false, nil
}

// ToggleHoldFor flips a hold flag on behalf of seat. Toggles for the seat
// that is not acting, outside a Hold phase, or with an index outside 0..4
// are rejected.
func (m *Match) ToggleHoldFor(seat Seat, index int) bool {
	if !m.phase.IsHold() || m.phase.Seat() != seat {
		m.logger.Debug("Rejecting hold toggle", "seat", seat, "index", index, "phase", m.phase)
		return false
	}
	handled, _ := m.Apply(ToggleHold(index))
	return handled
}

func (m *Match) start() error {
	d := m.newDeck()
	var hands [2]deck.Hand
	for _, seat := range Seats {
		h, err := d.DealHand()
		if err != nil {
			return fmt.Errorf("deal %s: %w", seat, err)
		}
		hands[seat] = h
	}

	m.deck = d
	m.hands = hands
	m.holds = [2]HoldMask{}
	m.results = [2]evaluator.Result{}
	m.message = ""
	m.pot = 0
	m.bets = [2]int{m.openingBet, m.openingBet}
	m.number++
	m.id = m.newID()
	m.phase = BetRound1Player1

	m.logger.Info("Match started", "match", m.id, "number", m.number, "chips", m.chips, "remaining", d.CardsRemaining())
	m.publish(MatchStartEvent{
		MatchID:    m.id,
		Number:     m.number,
		OpeningBet: m.openingBet,
		Chips:      m.chips,
		timestamp:  m.clock.Now(),
	})
	return nil
}

// openBetting handles player 1's action in either betting round.
func (m *Match) openBetting(action CommandType) {
	switch action {
	case CmdCall:
		m.bets[Player1] = m.bets[Player2]
	case CmdRaise:
		m.bets[Player1] += m.minimumRaise
	}
	round := m.phase.Round()
	m.publishAction(Player1, action, round)

	if round == 1 {
		m.phase = BetRound1Player2
	} else {
		m.phase = BetRound2Player2
	}
}

// closeBetting handles player 2's action, collects both bets and moves on
// to the holds or the showdown.
func (m *Match) closeBetting(action CommandType) error {
	round := m.phase.Round()
	if round == 2 {
		// Resolve needs both hands to evaluate; check before touching chips.
		for _, seat := range Seats {
			if _, err := evaluator.EvaluateHand(m.hands[seat]); err != nil {
				return fmt.Errorf("evaluate %s: %w", seat, err)
			}
		}
	}

	switch action {
	case CmdCall:
		m.bets[Player2] = m.bets[Player1]
	case CmdRaise:
		m.bets[Player2] += m.minimumRaise
	}
	m.publishAction(Player2, action, round)
	m.applyBets(round)

	if round == 1 {
		m.phase = HoldPlayer1
		return nil
	}
	m.resolve()
	return nil
}

func (m *Match) publishAction(seat Seat, action CommandType, round int) {
	m.logger.Debug("Player action", "match", m.id, "seat", seat, "action", action, "round", round, "bet", m.bets[seat])
	m.publish(PlayerActionEvent{
		MatchID:   m.id,
		Seat:      seat,
		Action:    action,
		Round:     round,
		Bet:       m.bets[seat],
		timestamp: m.clock.Now(),
	})
}

// applyBets moves both staged bets into the pot.
func (m *Match) applyBets(round int) {
	bets := m.bets
	for _, seat := range Seats {
		m.pot += m.bets[seat]
		m.chips[seat] -= m.bets[seat]
		if m.chips[seat] < 0 {
			m.logger.Warn("Chip stack below zero", "match", m.id, "seat", seat, "chips", m.chips[seat])
		}
	}
	m.bets = [2]int{}

	m.publish(BetsAppliedEvent{
		MatchID:   m.id,
		Round:     round,
		Bets:      bets,
		PotAfter:  m.pot,
		Chips:     m.chips,
		timestamp: m.clock.Now(),
	})
}

func (m *Match) confirmHolds() {
	seat := m.phase.Seat()
	m.publish(HoldsChosenEvent{
		MatchID:   m.id,
		Seat:      seat,
		Holds:     m.holds[seat],
		timestamp: m.clock.Now(),
	})

	if seat == Player1 {
		m.phase = RedrawPlayer1
	} else {
		m.phase = RedrawPlayer2
	}
}

// redraw replaces the acting seat's discards. The deck is checked first so
// a short deck leaves hand, deck and phase untouched.
func (m *Match) redraw() error {
	seat := m.phase.Seat()
	discards := m.holds[seat].Discards()
	if remaining := m.deck.CardsRemaining(); discards > remaining {
		return fmt.Errorf("redraw %s: %d discards with %d cards left: %w", seat, discards, remaining, deck.ErrDeckExhausted)
	}

	hand := m.hands[seat]
	for i, held := range m.holds[seat] {
		if held {
			continue
		}
		card, err := m.deck.Pop()
		if err != nil {
			return fmt.Errorf("redraw %s: %w", seat, err)
		}
		hand[i] = card
	}
	m.hands[seat] = hand

	m.logger.Debug("Redraw", "match", m.id, "seat", seat, "replaced", discards, "remaining", m.deck.CardsRemaining())
	m.publish(RedrawEvent{
		MatchID:   m.id,
		Seat:      seat,
		Replaced:  discards,
		Remaining: m.deck.CardsRemaining(),
		timestamp: m.clock.Now(),
	})

	if seat == Player1 {
		m.phase = HoldPlayer2
	} else {
		m.phase = BetRound2Player1
	}
	return nil
}

// resolve evaluates both hands and distributes the pot. Higher category
// takes everything; equal categories split with floor division and the
// odd chip is lost.
func (m *Match) resolve() {
	for _, seat := range Seats {
		// Hands were validated in closeBetting.
		m.results[seat], _ = evaluator.EvaluateHand(m.hands[seat])
	}

	pot := m.pot
	var awarded [2]int
	winner := NoSeat
	switch evaluator.Compare(m.results[Player1], m.results[Player2]) {
	case 1:
		winner = Player1
	case -1:
		winner = Player2
	}

	if winner != NoSeat {
		awarded[winner] = pot
		m.message = fmt.Sprintf("%s wins with %s", winner, m.results[winner].Description)
	} else {
		awarded = [2]int{pot / 2, pot / 2}
		m.message = fmt.Sprintf("It's a tie! Both have %s", m.results[Player1].Description)
	}
	for _, seat := range Seats {
		m.chips[seat] += awarded[seat]
	}
	discarded := pot - awarded[0] - awarded[1]
	m.pot = 0
	m.phase = Showdown

	m.logger.Info("Showdown", "match", m.id, "winner", winner, "pot", pot,
		"player1", m.results[Player1].Description, "player2", m.results[Player2].Description,
		"discarded", discarded, "chips", m.chips)
	m.publish(ShowdownEvent{
		MatchID:   m.id,
		Results:   m.results,
		Winner:    winner,
		Pot:       pot,
		Awarded:   awarded,
		Discarded: discarded,
		Message:   m.message,
		timestamp: m.clock.Now(),
	})
}

func (m *Match) acknowledge() {
	m.message = ""
	m.phase = ChooseMode
	m.publish(MatchResetEvent{
		MatchID:   m.id,
		Chips:     m.chips,
		timestamp: m.clock.Now(),
	})
}

func (m *Match) publish(event MatchEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// ID returns the identifier of the current or last match
func (m *Match) ID() string { return m.id }

// Phase returns the current phase
func (m *Match) Phase() Phase { return m.phase }

// Pot returns the chips in the pot
func (m *Match) Pot() int { return m.pot }

// Chips returns both seats' stacks
func (m *Match) Chips() [2]int { return m.chips }

// Bets returns both seats' staged bets
func (m *Match) Bets() [2]int { return m.bets }

// Hand returns a seat's current hand
func (m *Match) Hand(seat Seat) deck.Hand { return m.hands[seat] }

// Holds returns a seat's hold mask
func (m *Match) Holds(seat Seat) HoldMask { return m.holds[seat] }

// Results returns the showdown evaluations of the last resolved match
func (m *Match) Results() [2]evaluator.Result { return m.results }

// Message returns the winner message, empty outside Showdown
func (m *Match) Message() string { return m.message }

// Number returns how many matches have been started in this session
func (m *Match) Number() int { return m.number }

// MinimumRaise returns the raise increment
func (m *Match) MinimumRaise() int { return m.minimumRaise }

// Finished reports whether a Quit command has been applied
func (m *Match) Finished() bool { return m.quit }

// CardsRemaining returns the size of the working deck, 0 before the first match
func (m *Match) CardsRemaining() int {
	if m.deck == nil {
		return 0
	}
	return m.deck.CardsRemaining()
}
