package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := ParseFlags("chopper", []string{"game.ch8"})
	assert.NoError(t, err)

	assert.Equal(t, "game.ch8", opts.Program)
	assert.Equal(t, DefaultScale, opts.Scale)
	assert.Equal(t, DefaultInstructionsPerFrame, opts.InstructionsPerFrame)
	assert.Equal(t, uint(internal.DefaultSeed), opts.Seed)
	assert.False(t, opts.Mute)
	assert.False(t, opts.Debug)
	assert.False(t, opts.Quiet)
}

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags("chopper", []string{"-scale", "8", "-ipf", "15", "-seed", "42", "-mute", "-debug", "pong.ch8"})
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", opts.Program)
	assert.Equal(t, 8, opts.Scale)
	assert.Equal(t, 15, opts.InstructionsPerFrame)
	assert.Equal(t, uint(42), opts.Seed)
	assert.True(t, opts.Mute)
	assert.True(t, opts.Debug)
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no program", nil},
		{"two programs", []string{"a.ch8", "b.ch8"}},
		{"unknown flag", []string{"-unknown", "a.ch8"}},
		{"zero scale", []string{"-scale", "0", "a.ch8"}},
		{"negative ipf", []string{"-ipf", "-1", "a.ch8"}},
		{"seed too large", []string{"-seed", "4294967296", "a.ch8"}},
		{"debug and quiet", []string{"-debug", "-q", "a.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("chopper", tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))

			var buf bytes.Buffer
			usageErr.ShowUsage(&buf)
			assert.True(t, strings.Contains(buf.String(), "usage: chopper"))
			assert.True(t, strings.Contains(buf.String(), "-ipf"))
		})
	}
}

func TestNewVM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ch8")
	// LD V0, 5 / LD DT, V0 / JP 0x204
	assert.NoError(t, os.WriteFile(path, []byte{0x60, 0x05, 0xF0, 0x15, 0x12, 0x04}, 0o600))

	opts := Options{
		Program:              path,
		Scale:                1,
		InstructionsPerFrame: 2,
		Seed:                 internal.DefaultSeed,
	}
	vm, err := opts.NewVM(log.NewTestLogger(t))
	assert.NoError(t, err)

	for i := 0; i < 6; i++ {
		assert.NoError(t, vm.Cycle())
	}
	// set to 5 on cycle 2, ticked at the end of cycles 2, 4 and 6
	assert.Equal(t, uint8(2), vm.DelayTimer())

	opts.Program = filepath.Join(t.TempDir(), "missing.ch8")
	_, err = opts.NewVM(log.NewTestLogger(t))
	assert.Error(t, err)
}
