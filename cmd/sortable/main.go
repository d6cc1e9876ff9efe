package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/sortable/internal/cli"
	"github.com/idilsaglam/sortable/internal/config"
	"github.com/idilsaglam/sortable/internal/logging"
	"github.com/idilsaglam/sortable/internal/ui"
)

func main() {
	code := run(os.Args[1:])
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

func run(argv []string) int {
	// Root flags (apply to every subcommand)
	fs := pflag.NewFlagSet("sortable", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	config.Flags(fs)
	fs.Usage = cli.PrintHelp
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.SetTheme(cfg.UI.Theme)

	log, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closeLog()

	// Hand the remaining args to the CLI runner.
	args := fs.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		return 2
	}
	return cli.Run(args, cli.Options{Config: cfg, Log: log})
}
