package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/mnafees/chopper/v2/internal/config"
	"github.com/mnafees/chopper/v2/pkg/sdl"
	"github.com/retroenv/retrogolib/log"
)

func init() {
	// SDL calls have to happen on the main thread
	runtime.LockOSThread()
}

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

	io := sdl.NewIO(vm, logger, opts)
	if err := io.SetupWindow("Chopper | CHIP-8 Emulator"); err != nil {
		io.Destroy()
		logger.Error("Setting up window failed", log.Err(err))
		os.Exit(1)
	}

	err = io.Loop()
	io.Destroy()
	if err != nil {
		logger.Error("Emulation stopped", log.Err(err))
		os.Exit(1)
	}
}
