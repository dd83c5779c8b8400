package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"threecards.hcl" help:"Path to HCL or TOML configuration file"`
	Debug    bool   `help:"Enable debug logging"`
	JSONLogs bool   `name:"json-logs" help:"Emit structured JSON logs on stderr"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play interactively in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play many games headlessly and report statistics"`
	Score    ScoreCmd         `cmd:"" help:"Score a hand, e.g. 'threecards score KsKh2c'"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("threecards"),
		kong.Description("Two-player three-card comparison game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
