// Package config loads the game configuration from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Table  TableSettings
	UI     UISettings
	Assets AssetSettings
}

// TableSettings controls stakes and shuffling
type TableSettings struct {
	StartingChips int
	OpeningBet    int
	MinimumRaise  int
	Seed          int64
}

// UISettings controls the terminal interface and logging
type UISettings struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"`
	Mouse     *bool  `hcl:"mouse,optional"`
	AltScreen *bool  `hcl:"alt_screen,optional"`
}

// AssetSettings points at optional SVG card art
type AssetSettings struct {
	Dir string `hcl:"dir,optional"`
}

// tableBlock is the HCL form of TableSettings. The opening bet may be set
// to 0, so it is a pointer to tell that apart from unset.
type tableBlock struct {
	StartingChips int   `hcl:"starting_chips,optional"`
	OpeningBet    *int  `hcl:"opening_bet,optional"`
	MinimumRaise  int   `hcl:"minimum_raise,optional"`
	Seed          int64 `hcl:"seed,optional"`
}

// file mirrors the HCL layout; every block is optional.
type file struct {
	Table  *tableBlock    `hcl:"table,block"`
	UI     *UISettings    `hcl:"ui,block"`
	Assets *AssetSettings `hcl:"assets,block"`
}

// Default returns the default configuration
func Default() *Config {
	enabled := true
	altScreen := true
	return &Config{
		Table: TableSettings{
			StartingChips: 1000,
			OpeningBet:    20,
			MinimumRaise:  50,
		},
		UI: UISettings{
			LogLevel:  "info",
			LogFile:   "fivecarddraw.log",
			Mouse:     &enabled,
			AltScreen: &altScreen,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values from Default
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if t := raw.Table; t != nil {
		if t.StartingChips != 0 {
			cfg.Table.StartingChips = t.StartingChips
		}
		if t.OpeningBet != nil {
			cfg.Table.OpeningBet = *t.OpeningBet
		}
		if t.MinimumRaise != 0 {
			cfg.Table.MinimumRaise = t.MinimumRaise
		}
		cfg.Table.Seed = t.Seed
	}
	if u := raw.UI; u != nil {
		if u.LogLevel != "" {
			cfg.UI.LogLevel = u.LogLevel
		}
		if u.LogFile != "" {
			cfg.UI.LogFile = u.LogFile
		}
		if u.Mouse != nil {
			cfg.UI.Mouse = u.Mouse
		}
		if u.AltScreen != nil {
			cfg.UI.AltScreen = u.AltScreen
		}
	}
	if a := raw.Assets; a != nil {
		cfg.Assets.Dir = a.Dir
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive")
	}
	if c.Table.OpeningBet < 0 {
		return fmt.Errorf("opening bet cannot be negative")
	}
	if c.Table.MinimumRaise <= 0 {
		return fmt.Errorf("minimum raise must be positive")
	}
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	return nil
}

// LogLevel returns the parsed log level, info if unparseable
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// MouseEnabled reports whether click-to-hold is on
func (c *Config) MouseEnabled() bool {
	return c.UI.Mouse == nil || *c.UI.Mouse
}

// AltScreenEnabled reports whether the TUI takes over the whole terminal
func (c *Config) AltScreenEnabled() bool {
	return c.UI.AltScreen == nil || *c.UI.AltScreen
}
