// Package tui is the terminal front end: it turns key presses and mouse
// clicks into match commands and draws the match snapshot every frame.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/fivecarddraw/internal/assets"
	"github.com/lox/fivecarddraw/internal/deck"
	"github.com/lox/fivecarddraw/internal/game"
)

// Model is the Bubble Tea model for a five-card draw session
type Model struct {
	match   *game.Match
	catalog *assets.Catalog
	logger  *log.Logger

	keys        keyMap
	help        help.Model
	logViewport viewport.Model

	gameLog  []string
	lastErr  error
	quitting bool

	width  int
	height int
}

// New creates a model driving match. Subscribe the model to the match's
// event bus to fill the log pane.
func New(match *game.Match, catalog *assets.Catalog, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")
	// Space and the letter keys belong to the table, so the log only
	// scrolls with arrows, page keys and the wheel.
	vp.KeyMap = viewport.KeyMap{
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	m := &Model{
		match:       match,
		catalog:     catalog,
		logger:      logger.WithPrefix("tui"),
		keys:        newKeyMap(),
		help:        help.New(),
		logViewport: vp,
	}
	m.keys.forPhase(match.Phase())
	return m
}

// OnEvent implements game.EventSubscriber by appending to the log pane
func (m *Model) OnEvent(event game.MatchEvent) {
	m.AddLogEntry(game.FormatEvent(event))
}

// AddLogEntry adds an entry to the log pane and scrolls to it
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns the log pane entries
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles one input message. All match mutation happens here.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeLog()
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.apply(game.Quit())
			m.quitting = true
			return m, tea.Quit
		}
		if cmd, ok := m.commandForKey(msg); ok {
			m.apply(cmd)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// commandForKey maps a key to the command it means in the current phase
func (m *Model) commandForKey(msg tea.KeyMsg) (game.Command, bool) {
	phase := m.match.Phase()
	switch {
	case phase == game.ChooseMode && key.Matches(msg, m.keys.Start):
		return game.Start(), true
	case key.Matches(msg, m.keys.Call):
		return game.Call(), true
	case key.Matches(msg, m.keys.Raise):
		return game.Raise(), true
	case phase.IsHold() && key.Matches(msg, m.keys.Toggle):
		return game.ToggleHold(int(msg.Runes[0] - '1')), true
	case key.Matches(msg, m.keys.Confirm):
		return game.ConfirmHolds(), true
	case phase.IsRedraw() && key.Matches(msg, m.keys.Redraw):
		return game.Redraw(), true
	case phase == game.Showdown && key.Matches(msg, m.keys.Acknowledge):
		return game.Acknowledge(), true
	}
	return game.Command{}, false
}

// click toggles the hold on a card of the acting seat
func (m *Model) click(x, y int) {
	seat, index, ok := HitTest(x, y)
	if !ok {
		return
	}
	if !m.match.ToggleHoldFor(seat, index) {
		m.logger.Debug("Click ignored", "seat", seat, "index", index, "phase", m.match.Phase())
	}
}

func (m *Model) apply(cmd game.Command) {
	handled, err := m.match.Apply(cmd)
	if err != nil {
		m.lastErr = err
		m.AddLogEntry(fmt.Sprintf("error: %v", err))
	} else if handled {
		m.lastErr = nil
	}
	m.keys.forPhase(m.match.Phase())
}

func (m *Model) resizeLog() {
	w := m.width - 2
	h := m.height - tableRows - 4 // log border, error line, help line
	m.logViewport.Width = max(w, 1)
	m.logViewport.Height = max(h, 1)
	m.logViewport.GotoBottom()
}

// View renders the table, the log pane and the help line
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.match.Snapshot()
	var b strings.Builder

	b.WriteString(m.line(HeaderStyle.Render(" ♠ ♥ Five-Card Draw ♦ ♣ ")))
	b.WriteString("\n")
	b.WriteString(m.line(InstructionStyle.Render(snap.Instruction)))
	b.WriteString("\n")
	b.WriteString(m.line(PotStyle.Render(fmt.Sprintf("Pot: $%d", snap.Pot)) +
		InfoStyle.Render(fmt.Sprintf("   Raise: $%d   Deck: %d", snap.MinimumRaise, snap.CardsRemaining))))
	b.WriteString("\n\n")

	for _, seat := range game.Seats {
		b.WriteString(m.renderSeat(snap, snap.Seats[seat]))
	}

	if m.lastErr != nil {
		b.WriteString(m.line(ErrorStyle.Render(m.lastErr.Error())))
	}
	b.WriteString("\n")

	if m.width > 0 && m.height > 0 {
		b.WriteString(logPaneStyle.Width(m.logViewport.Width).Render(m.logViewport.View()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// line keeps header lines to one row so card rectangles stay put
func (m *Model) line(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(s)
}

func (m *Model) renderSeat(snap game.Snapshot, view game.SeatView) string {
	var b strings.Builder

	label := fmt.Sprintf("%s   Chips: $%d   Bet: $%d", view.Seat, view.Chips, view.Bet)
	if view.Result != nil {
		label += "   [" + view.Result.Description + "]"
	}
	if view.Acting {
		b.WriteString(m.line(ActingSeatStyle.Render(label)))
	} else {
		b.WriteString(m.line(SeatStyle.Render(label)))
	}
	b.WriteString("\n")

	margin := strings.Repeat(" ", leftMargin)
	gap := strings.Repeat(" ", cardGap)

	cards := make([]string, 0, 2*deck.HandSize)
	labels := make([]string, 0, 2*deck.HandSize)
	for i := range deck.HandSize {
		if i > 0 {
			cards = append(cards, gap)
			labels = append(labels, gap)
		}
		if i < len(view.Cards) {
			cards = append(cards, m.renderCard(view.Cards[i], snap.Phase.IsHold() && view.Acting))
			labels = append(labels, renderLabel(view.Cards[i]))
		} else {
			cards = append(cards, renderEmptySlot())
			labels = append(labels, strings.Repeat(" ", cardWidth))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	for _, l := range strings.Split(row, "\n") {
		b.WriteString(margin + l + "\n")
	}
	b.WriteString(margin + strings.Join(labels, "") + "\n\n")
	return b.String()
}

func (m *Model) renderCard(cv game.CardView, framed bool) string {
	if !cv.FaceUp {
		return cardBackStyle.Render("POKER")
	}

	style := cardFrame
	if cv.Card.IsRed() {
		style = style.Foreground(RedCardStyle.GetForeground())
	} else {
		style = style.Foreground(BlackCardStyle.GetForeground())
	}
	if framed {
		if cv.Held {
			style = style.BorderForeground(holdFrameColor)
		} else {
			style = style.BorderForeground(discardFrameColor)
		}
	}

	if m.catalog != nil {
		if _, ok := m.catalog.Face(cv.Card); !ok {
			m.logger.Warn("No face for card", "card", cv.Card.AssetKey())
		}
	}
	return style.Render(cardFace(cv.Card))
}

// cardFace lays out rank and suit inside the frame
func cardFace(c deck.Card) string {
	inner := cardWidth - 2
	rank := c.Rank.String()
	suit := c.Suit.String()
	pad := (inner - 1) / 2
	return fmt.Sprintf("%-*s\n%s%s%s\n%*s",
		inner, rank,
		strings.Repeat(" ", pad), suit, strings.Repeat(" ", inner-pad-1),
		inner, rank)
}

func renderEmptySlot() string {
	return lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Width(cardWidth - 2).
		Height(cardHeight - 2).
		Render("")
}

func renderLabel(cv game.CardView) string {
	style := lipgloss.NewStyle().Width(cardWidth).Align(lipgloss.Center)
	switch {
	case cv.Label == "":
		return style.Render("")
	case cv.Held:
		return style.Inherit(HoldLabelStyle).Render(cv.Label)
	default:
		return style.Inherit(DiscardLabelStyle).Render(cv.Label)
	}
}
