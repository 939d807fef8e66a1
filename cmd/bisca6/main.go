package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play an interactive match in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Batch-simulate seeded hands and report statistics"`
	Serve    ServeCmd         `cmd:"" help:"Run the websocket match server"`
	Replay   ReplayCmd        `cmd:"" help:"Auto-play a seeded hand and print its move log"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bisca6"),
		kong.Description("Six-player bisca engine: play, simulate and serve seeded matches"),
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
