package internal

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// instruction executes the opcode held in vm.opcode. The program counter
// already points at the next instruction when it is called.
type instruction func(vm *C8VM) error

// dispatchTables is the two-level decoder. The top nibble of an opcode picks
// one of the 16 groups; groups 0x0, 0x8, 0xE and 0xF look up a second table
// keyed by the low nibble or low byte. Every unmapped entry is opSYS.
type dispatchTables struct {
	groups [16]instruction
	table0 [256]instruction // 00kk, keyed by low byte
	table8 [16]instruction  // 8xyn, keyed by low nibble
	tableE [256]instruction // Exkk, keyed by low byte
	tableF [256]instruction // Fxkk, keyed by low byte
}

func newDispatchTables() dispatchTables {
	var t dispatchTables

	fill(t.table0[:])
	fill(t.table8[:])
	fill(t.tableE[:])
	fill(t.tableF[:])

	t.groups = [16]instruction{
		0x0: dispatch0,
		0x1: (*C8VM).opJP,
		0x2: (*C8VM).opCALL,
		0x3: (*C8VM).opSEByte,
		0x4: (*C8VM).opSNEByte,
		0x5: (*C8VM).opSERegister,
		0x6: (*C8VM).opLDByte,
		0x7: (*C8VM).opADDByte,
		0x8: dispatch8,
		0x9: (*C8VM).opSNERegister,
		0xA: (*C8VM).opLDI,
		0xB: (*C8VM).opJPV0,
		0xC: (*C8VM).opRND,
		0xD: (*C8VM).opDRW,
		0xE: dispatchE,
		0xF: dispatchF,
	}

	t.table0[0xE0] = (*C8VM).opCLS
	t.table0[0xEE] = (*C8VM).opRET

	t.table8[0x0] = (*C8VM).opLDRegister
	t.table8[0x1] = (*C8VM).opOR
	t.table8[0x2] = (*C8VM).opAND
	t.table8[0x3] = (*C8VM).opXOR
	t.table8[0x4] = (*C8VM).opADDRegister
	t.table8[0x5] = (*C8VM).opSUB
	t.table8[0x6] = (*C8VM).opSHR
	t.table8[0x7] = (*C8VM).opSUBN
	t.table8[0xE] = (*C8VM).opSHL

	t.tableE[0x9E] = (*C8VM).opSKP
	t.tableE[0xA1] = (*C8VM).opSKNP

	t.tableF[0x07] = (*C8VM).opLDVxDT
	t.tableF[0x0A] = (*C8VM).opLDVxK
	t.tableF[0x15] = (*C8VM).opLDDTVx
	t.tableF[0x18] = (*C8VM).opLDSTVx
	t.tableF[0x1E] = (*C8VM).opADDI
	t.tableF[0x29] = (*C8VM).opLDF
	t.tableF[0x33] = (*C8VM).opLDB
	t.tableF[0x55] = (*C8VM).opStore
	t.tableF[0x65] = (*C8VM).opLoad

	return t
}

func fill(table []instruction) {
	for i := range table {
		table[i] = (*C8VM).opSYS
	}
}

// 00E0 and 00EE are the only mapped group 0 opcodes, anything with a
// non-zero x nibble is a SYS call.
func dispatch0(vm *C8VM) error {
	if vm.opcode.x() != 0 {
		return vm.opSYS()
	}
	return vm.tables.table0[vm.opcode.kk()](vm)
}

func dispatch8(vm *C8VM) error {
	return vm.tables.table8[vm.opcode.n()](vm)
}

func dispatchE(vm *C8VM) error {
	return vm.tables.tableE[vm.opcode.kk()](vm)
}

func dispatchF(vm *C8VM) error {
	return vm.tables.tableF[vm.opcode.kk()](vm)
}

// execute runs the instruction for the current opcode.
func (vm *C8VM) execute() error {
	return vm.tables.groups[vm.opcode.group()](vm)
}

// opSYS ignores the opcode. Undefined opcodes resolve here as well.
func (vm *C8VM) opSYS() error {
	if vm.logger != nil {
		vm.logger.Debug("Ignoring opcode",
			log.String("opcode", fmt.Sprintf("%04X", uint16(vm.opcode))),
			log.String("address", fmt.Sprintf("0x%03X", vm.pc-2)))
	}
	return nil
}
