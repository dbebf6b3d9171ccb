package internal

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLCG(t *testing.T) {
	g := NewLCG(DefaultSeed)

	assert.Equal(t, uint32(0x25C4A34A), g.Uint32())
	assert.Equal(t, uint32(0x13B642BB), g.Uint32())
	assert.Equal(t, uint32(0x049193D8), g.Uint32())
}

func TestLCGStaysBelowModulus(t *testing.T) {
	g := NewLCG(0xFFFFFFFF)
	for i := 0; i < 1000; i++ {
		assert.True(t, g.Uint32() < lcgModulus)
	}
}
