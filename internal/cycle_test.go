package internal

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCycleLoadAndAdd(t *testing.T) {
	vm := newTestVM(t, 0x600A, 0x7005)
	vm.regV[0xF] = 0x33

	run(t, vm, 2)
	assert.Equal(t, uint8(15), vm.V(0x0))
	assert.Equal(t, uint16(0x204), vm.PC())
	assert.Equal(t, uint8(0x33), vm.V(0xF))
}

func TestCycleDrawGlyph(t *testing.T) {
	// LD F, V0 / DRW V0, V0, 5 / DRW V0, V0, 5
	vm := newTestVM(t, 0xF029, 0xD005, 0xD005)

	run(t, vm, 2)
	glyph := fontset[:fontGlyphSize]
	for y := 0; y < fontGlyphSize; y++ {
		for x := 0; x < 8; x++ {
			lit := glyph[y]&(0x80>>x) != 0
			assert.Equal(t, lit, vm.Pixel(x, y))
		}
	}
	assert.Equal(t, uint8(0), vm.V(0xF))
	assert.True(t, vm.IsDrawFlagSet())

	run(t, vm, 1)
	assert.Equal(t, Framebuffer{}, vm.Pixels())
	assert.Equal(t, uint8(1), vm.V(0xF))
}

func TestCycleDrawAtIndex(t *testing.T) {
	// LD I, 0x250 / DRW V0, V0, 5 / DRW V0, V0, 5
	vm := newTestVM(t, 0xA250, 0xD005, 0xD005)
	copy(vm.memory[0x250:], fontset[:fontGlyphSize])

	run(t, vm, 2)
	assert.True(t, vm.Pixel(0, 0))
	assert.True(t, vm.Pixel(3, 0))
	assert.False(t, vm.Pixel(1, 1))
	assert.False(t, vm.Pixel(4, 0))

	run(t, vm, 1)
	assert.Equal(t, Framebuffer{}, vm.Pixels())
}

func TestCycleCallReturnPairs(t *testing.T) {
	// 0x200: CALL 0x300 / CALL 0x300 / CALL 0x300 / JP 0x206
	// 0x300: CALL 0x310 / RET
	// 0x310: RET
	vm := newTestVM(t, 0x2300, 0x2300, 0x2300, 0x1206)
	vm.memory[0x300], vm.memory[0x301] = 0x23, 0x10
	vm.memory[0x302], vm.memory[0x303] = 0x00, 0xEE
	vm.memory[0x310], vm.memory[0x311] = 0x00, 0xEE

	for i := 0; i < 3; i++ {
		run(t, vm, 4)
		assert.Equal(t, uint16(0x202+2*i), vm.PC())
		assert.Equal(t, uint8(0), vm.SP())
	}
}

func TestCycleUnmappedOpcodes(t *testing.T) {
	opcodes := []uint16{
		0x0000, 0x0123, 0x01E0, 0x0FEE, 0x00E1, // SYS
		0x8008, 0x800F,
		0xE000, 0xE09F, 0xE0A2,
		0xF000, 0xF0FF, 0xF056,
	}

	for _, op := range opcodes {
		vm := newTestVM(t, op)
		for i := range vm.regV {
			vm.regV[i] = uint8(0x10 * i)
		}
		vm.regI = 0x345
		vm.gfx[100] = true
		regs, memory, gfx := vm.regV, vm.memory, vm.gfx

		run(t, vm, 1)
		assert.Equal(t, uint16(0x202), vm.PC())
		assert.Equal(t, regs, vm.regV)
		assert.Equal(t, uint16(0x345), vm.I())
		assert.Equal(t, uint8(0), vm.SP())
		assert.Equal(t, memory, vm.memory)
		assert.Equal(t, gfx, vm.gfx)
	}
}

func TestCycleFetchOutOfRange(t *testing.T) {
	vm := newTestVM(t, 0x1FFF)
	vm.delayTimer = 5

	run(t, vm, 1)
	assert.Equal(t, uint8(4), vm.DelayTimer())

	err := vm.Cycle()
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
	var fault *FaultError
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(0xFFF), fault.PC)
	assert.Equal(t, uint16(0xFFF), vm.PC())
	assert.Equal(t, uint8(4), vm.DelayTimer(), "faulting cycle must not tick timers")

	// 0xFFE is the last address an opcode can be fetched from
	vm = newTestVM(t, 0x1FFE)
	run(t, vm, 2)
	assert.Equal(t, uint16(0x1000), vm.PC())
}

func TestCycleWaitForKey(t *testing.T) {
	vm := newTestVM(t, 0xF50A, 0x6101)
	vm.delayTimer = 3

	run(t, vm, 3)
	assert.Equal(t, uint16(0x200), vm.PC())
	assert.Equal(t, uint8(0), vm.DelayTimer(), "timers keep running while waiting")

	assert.NoError(t, vm.SetKey(0xB, true))
	run(t, vm, 2)
	assert.Equal(t, uint8(0xB), vm.V(0x5))
	assert.Equal(t, uint8(0x01), vm.V(0x1))
	assert.Equal(t, uint16(0x204), vm.PC())
}

func TestCycleTimers(t *testing.T) {
	// LD V0, 3 / LD DT, V0 / LD ST, V0 / JP 0x206
	vm := newTestVM(t, 0x6003, 0xF015, 0xF018, 0x1206)

	run(t, vm, 3)
	assert.Equal(t, uint8(1), vm.DelayTimer())
	assert.Equal(t, uint8(2), vm.SoundTimer())

	run(t, vm, 5)
	assert.Equal(t, uint8(0), vm.DelayTimer())
	assert.Equal(t, uint8(0), vm.SoundTimer())
}

func TestCycleTimerDivider(t *testing.T) {
	vm := NewC8VM(WithTimerDivider(4))
	assert.NoError(t, vm.LoadBytes([]byte{0x60, 0x0A, 0xF0, 0x15, 0x12, 0x04}))

	run(t, vm, 2)
	assert.Equal(t, uint8(10), vm.DelayTimer())

	run(t, vm, 2)
	assert.Equal(t, uint8(9), vm.DelayTimer())

	run(t, vm, 3)
	assert.Equal(t, uint8(9), vm.DelayTimer())
	run(t, vm, 1)
	assert.Equal(t, uint8(8), vm.DelayTimer())

	vm = NewC8VM(WithTimerDivider(0))
	assert.Equal(t, uint(1), vm.timerDivider)
}
