package internal

// opcode is a 16-bit instruction word. Operand fields always sit at fixed
// bit positions regardless of the instruction:
//
//	group = bits 15-12
//	x     = bits 11-8
//	y     = bits 7-4
//	n     = bits 3-0
//	kk    = bits 7-0
//	nnn   = bits 11-0
type opcode uint16

func (op opcode) group() uint8 {
	return uint8(op >> 12)
}

func (op opcode) x() uint8 {
	return uint8(op>>8) & 0xF
}

func (op opcode) y() uint8 {
	return uint8(op>>4) & 0xF
}

func (op opcode) n() uint8 {
	return uint8(op) & 0xF
}

func (op opcode) kk() uint8 {
	return uint8(op)
}

func (op opcode) nnn() uint16 {
	return uint16(op) & 0x0FFF
}
