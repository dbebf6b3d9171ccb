package main

import (
	"errors"
	"os"

	"github.com/mnafees/chopper/v2/internal/config"
	"github.com/mnafees/chopper/v2/pkg/ebitenio"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	opts, err := config.ParseFlags(os.Args[0], os.Args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage(os.Stderr)
		}
		logger.Error("Invalid arguments", log.Err(err))
		os.Exit(1)
	}

	vm, err := opts.NewVM(logger)
	if err != nil {
		logger.Error("Creating VM failed", log.Err(err))
		os.Exit(1)
	}

	game := ebitenio.NewGame(vm, opts)
	if err := ebitenio.Run(game, "Chopper | CHIP-8 Emulator"); err != nil {
		logger.Error("Emulation stopped", log.Err(err))
		os.Exit(1)
	}
}
