package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `help:"Show version"`
	Verbose  bool             `short:"v" help:"Verbose logging"`
	Simulate SimulateCmd      `cmd:"" help:"Run a Spanish 21 simulation"`
	Sweep    SweepCmd         `cmd:"" help:"Run a parameter sweep from an HCL file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("spanish21"),
		kong.Description("Monte-Carlo expected-value simulator for Spanish 21"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(setupLogger(cli.Verbose))
	ctx.FatalIfErrorf(err)
}

func setupLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}
