package internal

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Cycle fetches, decodes and executes one instruction and then ticks the
// timers. A fatal condition is returned as a *FaultError and leaves the VM
// state as it was before the call.
func (vm *C8VM) Cycle() error {
	pc := vm.pc
	if err := checkRange(pc, 2); err != nil {
		return vm.fault(pc, 0, err)
	}

	vm.opcode = opcode(uint16(vm.memory[pc])<<8 | uint16(vm.memory[pc+1]))
	vm.pc += 2

	if err := vm.execute(); err != nil {
		vm.pc = pc
		return vm.fault(pc, uint16(vm.opcode), err)
	}

	vm.tickTimers()
	return nil
}

func (vm *C8VM) tickTimers() {
	vm.timerCycles++
	if vm.timerCycles < vm.timerDivider {
		return
	}
	vm.timerCycles = 0

	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}

func (vm *C8VM) fault(pc, op uint16, err error) error {
	if vm.logger != nil {
		vm.logger.Debug("Fault",
			log.String("address", fmt.Sprintf("0x%03X", pc)),
			log.String("opcode", fmt.Sprintf("%04X", op)),
			log.Err(err))
	}
	return &FaultError{
		PC:     pc,
		Opcode: op,
		Err:    err,
	}
}
