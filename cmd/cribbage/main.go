package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Score    ScoreCmd         `cmd:"" help:"Score a 4-card hand against a starter"`
	Discard  DiscardCmd       `cmd:"" help:"Pick which 2 of 6 cards to send to the crib"`
	Play     PlayCmd          `cmd:"" help:"Play rounds against the computer"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-vs-bot rounds and report score statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cribbage"),
		kong.Description("Cribbage hand scoring and play on the command line"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
