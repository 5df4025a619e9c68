package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/fivecarddraw/internal/assets"
	"github.com/lox/fivecarddraw/internal/config"
	"github.com/lox/fivecarddraw/internal/game"
	"github.com/lox/fivecarddraw/internal/randutil"
	"github.com/lox/fivecarddraw/internal/statistics"
	"github.com/lox/fivecarddraw/internal/tui"
)

type PlayCmd struct {
	Seed     int64  `env:"FIVECARDDRAW_SEED" help:"Shuffle seed (0 picks one from the clock)"`
	LogLevel string `env:"FIVECARDDRAW_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFile  string `env:"FIVECARDDRAW_LOG_FILE" help:"File to write logs to"`
	Assets   string `env:"FIVECARDDRAW_ASSETS" help:"Directory of {rank}_of_{suit}.svg card art"`
	NoMouse  bool   `help:"Disable mouse input"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	c.override(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cli.Config, err)
	}

	level := cfg.LogLevel()
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
		Prefix:          "MAIN",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := assets.TextCatalog()
	if cfg.Assets.Dir != "" {
		catalog, err = assets.LoadDir(ctx, os.DirFS(cfg.Assets.Dir), logger)
		if err != nil {
			return fmt.Errorf("failed to load card assets from %s: %w", cfg.Assets.Dir, err)
		}
	}

	seed := randutil.Resolve(cfg.Table.Seed)
	logger.Info("Starting session",
		"seed", seed,
		"assets", catalog.Source(),
		"cards", catalog.Len(),
		"starting_chips", cfg.Table.StartingChips,
		"opening_bet", cfg.Table.OpeningBet,
		"minimum_raise", cfg.Table.MinimumRaise)

	bus := game.NewEventBus()
	bus.Subscribe(game.EventSubscriberFunc(func(event game.MatchEvent) {
		logger.Debug("Event", "type", event.EventType(), "line", game.FormatEvent(event))
	}))

	match := game.NewMatch(catalog.Cards(), randutil.New(seed),
		game.WithStartingChips(cfg.Table.StartingChips),
		game.WithOpeningBet(cfg.Table.OpeningBet),
		game.WithMinimumRaise(cfg.Table.MinimumRaise),
		game.WithLogger(logger),
		game.WithEventBus(bus),
	)

	tracker := statistics.NewTracker()
	bus.Subscribe(tracker)

	model := tui.New(match, catalog, logger)
	bus.Subscribe(model)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreenEnabled() {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	stats := tracker.Statistics()
	if err := stats.Validate(); err != nil {
		logger.Error("Session statistics do not add up", "error", err)
	}
	chips := match.Chips()
	logger.Info("Session finished",
		"matches", stats.Matches,
		"player1", chips[game.Player1],
		"player2", chips[game.Player2],
		"ties", stats.Ties,
		"discarded", stats.Discarded)
	return printSummary(stats, chips)
}

// override applies flags and environment on top of the config file
func (c *PlayCmd) override(cfg *config.Config) {
	if c.Seed != 0 {
		cfg.Table.Seed = c.Seed
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.Assets != "" {
		cfg.Assets.Dir = c.Assets
	}
	if c.NoMouse {
		disabled := false
		cfg.UI.Mouse = &disabled
	}
}
