package main

import (
	"errors"
	"io/fs"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"fivecarddraw.hcl" env:"FIVECARDDRAW_CONFIG" help:"Path to the HCL config file"`

	Play  PlayCmd  `cmd:"" default:"withargs" help:"Play two-player five-card draw in the terminal"`
	Rules RulesCmd `cmd:"" help:"Show the hand rankings and the table rules"`
}

func main() {
	// A .env file is optional; values in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Failed to load .env", "error", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fivecarddraw"),
		kong.Description("Two-player hot-seat five-card draw"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
