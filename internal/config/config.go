// Package config handles the command line configuration of the frontends
// and the setup derived from it.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/retroenv/retrogolib/log"
)

// Defaults
const (
	DefaultScale                = 20
	DefaultInstructionsPerFrame = 10
	FrameRate                   = 60
)

// Options contains the settings shared by all frontends.
type Options struct {
	Program string

	Scale                int  // size of one CHIP-8 pixel on screen
	InstructionsPerFrame int  // cycles executed per 60Hz frame
	Seed                 uint // seed of the RND instruction
	Mute                 bool // disables the sound timer beep
	Debug                bool
	Quiet                bool
}

// UsageError is returned when the command line could not be used.
type UsageError struct {
	flags *flag.FlagSet
	err   error
}

func (e *UsageError) Error() string {
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}

// ShowUsage prints the usage of all flags.
func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [options] <CHIP-8 program>\n\n", e.flags.Name())
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
}

var errMissingProgram = errors.New("missing CHIP-8 program")

// ParseFlags parses the arguments following the program name.
func ParseFlags(name string, args []string) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	opts := Options{}
	flags.IntVar(&opts.Scale, "scale", DefaultScale, "size of a CHIP-8 pixel in screen pixels")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", DefaultInstructionsPerFrame, "instructions executed per 60Hz frame")
	flags.UintVar(&opts.Seed, "seed", internal.DefaultSeed, "seed of the random number generator")
	flags.BoolVar(&opts.Mute, "mute", false, "do not play a tone while the sound timer runs")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "only log errors")

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, err: err}
	}
	if flags.NArg() != 1 {
		return opts, &UsageError{flags: flags, err: errMissingProgram}
	}
	opts.Program = flags.Arg(0)

	if err := opts.Validate(); err != nil {
		return opts, &UsageError{flags: flags, err: err}
	}
	return opts, nil
}

// Validate checks the option values.
func (o Options) Validate() error {
	switch {
	case o.Program == "":
		return errMissingProgram
	case o.Scale <= 0:
		return fmt.Errorf("invalid scale %d", o.Scale)
	case o.InstructionsPerFrame <= 0:
		return fmt.Errorf("invalid instructions per frame %d", o.InstructionsPerFrame)
	case o.Seed > 0xFFFFFFFF:
		return fmt.Errorf("seed %d does not fit into 32 bits", o.Seed)
	case o.Debug && o.Quiet:
		return errors.New("debug and quiet logging can not be combined")
	}
	return nil
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// VMOptions returns the VM options matching the configuration. The timers
// tick once per frame, which makes them run at 60Hz.
func (o Options) VMOptions(logger *log.Logger) []internal.Option {
	return []internal.Option{
		internal.WithLogger(logger),
		internal.WithSeed(uint32(o.Seed)),
		internal.WithTimerDivider(uint(o.InstructionsPerFrame)),
	}
}

// NewVM creates a VM for the configuration and loads the program into it.
func (o Options) NewVM(logger *log.Logger) (*internal.C8VM, error) {
	vm := internal.NewC8VM(o.VMOptions(logger)...)
	if err := vm.LoadProgram(o.Program); err != nil {
		return nil, err
	}
	logger.Info("Program loaded", log.String("file", o.Program))
	return vm, nil
}
