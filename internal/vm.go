package internal

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 VM constants
const (
	totalMemory    = 0x1000
	maxAddress     = totalMemory - 1
	pcStartAddr    = 0x200
	fontsetAddr    = 0x050
	fontGlyphSize  = 5
	maxProgramSize = totalMemory - pcStartAddr
	stackLevels    = 16
	numRegisters   = 16

	NumKeys      = 16
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Framebuffer is the 64 x 32 display, addressed row-major.
type Framebuffer [ScreenWidth * ScreenHeight]bool

// C8VM is an emulated CHIP-8 VM
type C8VM struct {
	opcode     opcode              // 16-bit opcode of the current instruction
	regV       [numRegisters]uint8 // 16 general purpose 8-bit registers
	regI       uint16              // 16-bit register that is generally used to store memory addresses
	delayTimer uint8               // Delay timer
	soundTimer uint8               // Sound timer
	pc         uint16              // Program counter
	sp         uint8               // Stack pointer, index of the next free slot
	stack      [stackLevels]uint16 // A stack of 16 16-bit values
	memory     [totalMemory]uint8  // 4 KB global memory
	key        [NumKeys]bool       // Current press state of every key
	gfx        Framebuffer         // 64 px x 32 px display
	drawFlag   bool                // Set whenever CLS or DRW changed the display

	tables dispatchTables

	random    Random
	newRandom func() Random

	// timers tick once every timerDivider cycles
	timerDivider uint
	timerCycles  uint

	logger *log.Logger
}

// Option configures a VM on creation.
type Option func(*C8VM)

// WithLogger sets a logger that receives debug output about ignored opcodes
// and faults.
func WithLogger(logger *log.Logger) Option {
	return func(vm *C8VM) {
		vm.logger = logger
	}
}

// WithSeed seeds the built-in random generator used by RND.
func WithSeed(seed uint32) Option {
	return func(vm *C8VM) {
		vm.newRandom = func() Random {
			return NewLCG(seed)
		}
	}
}

// WithRandom replaces the random generator used by RND.
func WithRandom(random Random) Option {
	return func(vm *C8VM) {
		vm.newRandom = func() Random {
			return random
		}
	}
}

// WithTimerDivider makes the delay and sound timers tick once every n cycles
// instead of once per cycle. A host that executes n instructions per 60Hz
// frame gets timers running at 60Hz.
func WithTimerDivider(n uint) Option {
	return func(vm *C8VM) {
		if n == 0 {
			n = 1
		}
		vm.timerDivider = n
	}
}

var fontset = [...]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// NewC8VM creates a new instance of an emulated CHIP-8 VM
func NewC8VM(opts ...Option) *C8VM {
	vm := &C8VM{
		newRandom: func() Random {
			return NewLCG(DefaultSeed)
		},
		timerDivider: 1,
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.tables = newDispatchTables()
	vm.Reset()
	return vm
}

// Reset returns the VM to its freshly created state. Options given on
// creation are kept. The default generator and one set by WithSeed start
// over from their seed, a generator passed to WithRandom is not rewound.
func (vm *C8VM) Reset() {
	vm.opcode = 0
	vm.regV = [numRegisters]uint8{}
	vm.regI = 0
	vm.delayTimer = 0
	vm.soundTimer = 0
	vm.pc = pcStartAddr
	vm.sp = 0
	vm.stack = [stackLevels]uint16{}
	vm.memory = [totalMemory]uint8{}
	vm.key = [NumKeys]bool{}
	vm.gfx = Framebuffer{}
	vm.drawFlag = false
	vm.timerCycles = 0
	vm.random = vm.newRandom()

	copy(vm.memory[fontsetAddr:], fontset[:])
}

// LoadBytes copies a program image into the VM's memory at 0x200
func (vm *C8VM) LoadBytes(data []byte) error {
	if len(data) > maxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(data), maxProgramSize)
	}
	copy(vm.memory[pcStartAddr:], data)
	return nil
}

// LoadProgram loads a given CHIP-8 program into the VM's memory
func (vm *C8VM) LoadProgram(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	return vm.LoadBytes(data)
}

// SetKey sets the press state of one of the 16 keys
func (vm *C8VM) SetKey(key uint8, pressed bool) error {
	if key >= NumKeys {
		return fmt.Errorf("%w: 0x%X", ErrInvalidKey, key)
	}
	vm.key[key] = pressed
	return nil
}

// pressed reports the state of the key named by a register value. Values
// outside the keypad never read as pressed.
func (vm *C8VM) pressed(key uint8) bool {
	return key < NumKeys && vm.key[key]
}

// Pixels returns a copy of the framebuffer
func (vm *C8VM) Pixels() Framebuffer {
	return vm.gfx
}

// Pixel returns whether the pixel at x, y is lit
func (vm *C8VM) Pixel(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return vm.gfx[y*ScreenWidth+x]
}

// IsDrawFlagSet returns whether the display changed since the flag was last unset
func (vm *C8VM) IsDrawFlagSet() bool {
	return vm.drawFlag
}

// UnsetDrawFlag unsets the draw flag
func (vm *C8VM) UnsetDrawFlag() {
	vm.drawFlag = false
}

// DelayTimer returns the value of DT
func (vm *C8VM) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the value of ST
func (vm *C8VM) SoundTimer() uint8 {
	return vm.soundTimer
}

// V returns the value of register Vi
func (vm *C8VM) V(i uint8) uint8 {
	return vm.regV[i&0xF]
}

// I returns the value of the index register
func (vm *C8VM) I() uint16 {
	return vm.regI
}

// PC returns the program counter
func (vm *C8VM) PC() uint16 {
	return vm.pc
}

// SP returns the stack pointer
func (vm *C8VM) SP() uint8 {
	return vm.sp
}
