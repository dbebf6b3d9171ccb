package internal

import (
	"errors"
	"fmt"
)

// Fatal conditions reported by Cycle. A faulting cycle leaves the machine
// state exactly as it was before the cycle started.
var (
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrAddressOutOfRange = errors.New("address out of range")
)

// Host side errors.
var (
	ErrProgramTooLarge = errors.New("program size exceeds the maximum size")
	ErrInvalidKey      = errors.New("invalid key")
)

// FaultError describes a fatal condition hit while executing an instruction.
type FaultError struct {
	PC     uint16 // address of the faulting instruction
	Opcode uint16 // 0 if the fault happened while fetching
	Err    error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("fault at 0x%03X executing %04X: %v", e.PC, e.Opcode, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}
