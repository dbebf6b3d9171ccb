package internal

// flag converts a condition into the 0/1 value stored in VF.
func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// checkRange verifies that count bytes starting at base lie inside memory.
func checkRange(base uint16, count int) error {
	if count > 0 && int(base)+count-1 > maxAddress {
		return ErrAddressOutOfRange
	}
	return nil
}

func (vm *C8VM) skipIf(cond bool) {
	if cond {
		vm.pc += 2
	}
}

// 00E0 - CLS
func (vm *C8VM) opCLS() error {
	vm.gfx = Framebuffer{}
	vm.drawFlag = true
	return nil
}

// 00EE - RET
func (vm *C8VM) opRET() error {
	if vm.sp == 0 {
		return ErrStackUnderflow
	}
	vm.sp--
	vm.pc = vm.stack[vm.sp]
	return nil
}

// 1nnn - JP addr
func (vm *C8VM) opJP() error {
	vm.pc = vm.opcode.nnn()
	return nil
}

// 2nnn - CALL addr
func (vm *C8VM) opCALL() error {
	if vm.sp >= stackLevels {
		return ErrStackOverflow
	}
	vm.stack[vm.sp] = vm.pc
	vm.sp++
	vm.pc = vm.opcode.nnn()
	return nil
}

// 3xkk - SE Vx, byte
func (vm *C8VM) opSEByte() error {
	vm.skipIf(vm.regV[vm.opcode.x()] == vm.opcode.kk())
	return nil
}

// 4xkk - SNE Vx, byte
func (vm *C8VM) opSNEByte() error {
	vm.skipIf(vm.regV[vm.opcode.x()] != vm.opcode.kk())
	return nil
}

// 5xy0 - SE Vx, Vy
func (vm *C8VM) opSERegister() error {
	vm.skipIf(vm.regV[vm.opcode.x()] == vm.regV[vm.opcode.y()])
	return nil
}

// 6xkk - LD Vx, byte
func (vm *C8VM) opLDByte() error {
	vm.regV[vm.opcode.x()] = vm.opcode.kk()
	return nil
}

// 7xkk - ADD Vx, byte. VF is left untouched.
func (vm *C8VM) opADDByte() error {
	vm.regV[vm.opcode.x()] += vm.opcode.kk()
	return nil
}

// 8xy0 - LD Vx, Vy
func (vm *C8VM) opLDRegister() error {
	vm.regV[vm.opcode.x()] = vm.regV[vm.opcode.y()]
	return nil
}

// 8xy1 - OR Vx, Vy
func (vm *C8VM) opOR() error {
	vm.regV[vm.opcode.x()] |= vm.regV[vm.opcode.y()]
	return nil
}

// 8xy2 - AND Vx, Vy
func (vm *C8VM) opAND() error {
	vm.regV[vm.opcode.x()] &= vm.regV[vm.opcode.y()]
	return nil
}

// 8xy3 - XOR Vx, Vy
func (vm *C8VM) opXOR() error {
	vm.regV[vm.opcode.x()] ^= vm.regV[vm.opcode.y()]
	return nil
}

// The flag setting 8xy_ instructions read both operands first, store the
// result and write VF last, so VF as an operand behaves like any register
// and VF as the destination ends up holding the flag.

// 8xy4 - ADD Vx, Vy
func (vm *C8VM) opADDRegister() error {
	x := vm.opcode.x()
	sum := uint16(vm.regV[x]) + uint16(vm.regV[vm.opcode.y()])
	vm.regV[x] = uint8(sum)
	vm.regV[0xF] = flag(sum > 0xFF)
	return nil
}

// 8xy5 - SUB Vx, Vy
func (vm *C8VM) opSUB() error {
	x := vm.opcode.x()
	vx, vy := vm.regV[x], vm.regV[vm.opcode.y()]
	vm.regV[x] = vx - vy
	vm.regV[0xF] = flag(vx >= vy)
	return nil
}

// 8xy6 - SHR Vx {, Vy}
func (vm *C8VM) opSHR() error {
	x := vm.opcode.x()
	vx := vm.regV[x]
	vm.regV[x] = vx >> 1
	vm.regV[0xF] = vx & 0x01
	return nil
}

// 8xy7 - SUBN Vx, Vy
func (vm *C8VM) opSUBN() error {
	x := vm.opcode.x()
	vx, vy := vm.regV[x], vm.regV[vm.opcode.y()]
	vm.regV[x] = vy - vx
	vm.regV[0xF] = flag(vy >= vx)
	return nil
}

// 8xyE - SHL Vx {, Vy}
func (vm *C8VM) opSHL() error {
	x := vm.opcode.x()
	vx := vm.regV[x]
	vm.regV[x] = vx << 1
	vm.regV[0xF] = vx >> 7
	return nil
}

// 9xy0 - SNE Vx, Vy
func (vm *C8VM) opSNERegister() error {
	vm.skipIf(vm.regV[vm.opcode.x()] != vm.regV[vm.opcode.y()])
	return nil
}

// Annn - LD I, addr
func (vm *C8VM) opLDI() error {
	vm.regI = vm.opcode.nnn()
	return nil
}

// Bnnn - JP V0, addr
func (vm *C8VM) opJPV0() error {
	vm.pc = vm.opcode.nnn() + uint16(vm.regV[0x0])
	return nil
}

// Cxkk - RND Vx, byte
func (vm *C8VM) opRND() error {
	vm.regV[vm.opcode.x()] = uint8(vm.random.Uint32()) & vm.opcode.kk()
	return nil
}

// Dxyn - DRW Vx, Vy, nibble
//
// The start position wraps around the screen, the sprite itself is clipped
// at the right and bottom edges. VF reports whether any lit pixel was erased.
func (vm *C8VM) opDRW() error {
	height := int(vm.opcode.n())
	if err := checkRange(vm.regI, height); err != nil {
		return err
	}

	xPos := int(vm.regV[vm.opcode.x()]) % ScreenWidth
	yPos := int(vm.regV[vm.opcode.y()]) % ScreenHeight
	collision := false

	for row := 0; row < height && yPos+row < ScreenHeight; row++ {
		spriteByte := vm.memory[int(vm.regI)+row]

		for col := 0; col < 8 && xPos+col < ScreenWidth; col++ {
			if spriteByte&(0x80>>col) == 0 {
				continue
			}
			px := &vm.gfx[(yPos+row)*ScreenWidth+xPos+col]
			if *px {
				collision = true
			}
			*px = !*px
		}
	}

	vm.regV[0xF] = flag(collision)
	vm.drawFlag = true
	return nil
}

// Ex9E - SKP Vx
func (vm *C8VM) opSKP() error {
	vm.skipIf(vm.pressed(vm.regV[vm.opcode.x()]))
	return nil
}

// ExA1 - SKNP Vx
func (vm *C8VM) opSKNP() error {
	vm.skipIf(!vm.pressed(vm.regV[vm.opcode.x()]))
	return nil
}

// Fx07 - LD Vx, DT
func (vm *C8VM) opLDVxDT() error {
	vm.regV[vm.opcode.x()] = vm.delayTimer
	return nil
}

// Fx0A - LD Vx, K
//
// Without a pressed key the program counter is moved back onto this
// instruction, so it runs again on the next cycle.
func (vm *C8VM) opLDVxK() error {
	for k := uint8(0); k < NumKeys; k++ {
		if vm.key[k] {
			vm.regV[vm.opcode.x()] = k
			return nil
		}
	}
	vm.pc -= 2
	return nil
}

// Fx15 - LD DT, Vx
func (vm *C8VM) opLDDTVx() error {
	vm.delayTimer = vm.regV[vm.opcode.x()]
	return nil
}

// Fx18 - LD ST, Vx
func (vm *C8VM) opLDSTVx() error {
	vm.soundTimer = vm.regV[vm.opcode.x()]
	return nil
}

// Fx1E - ADD I, Vx
func (vm *C8VM) opADDI() error {
	vm.regI += uint16(vm.regV[vm.opcode.x()])
	return nil
}

// Fx29 - LD F, Vx
func (vm *C8VM) opLDF() error {
	vm.regI = fontsetAddr + fontGlyphSize*uint16(vm.regV[vm.opcode.x()])
	return nil
}

// Fx33 - LD B, Vx
func (vm *C8VM) opLDB() error {
	if err := checkRange(vm.regI, 3); err != nil {
		return err
	}
	value := vm.regV[vm.opcode.x()]
	vm.memory[vm.regI] = value / 100
	vm.memory[vm.regI+1] = (value / 10) % 10
	vm.memory[vm.regI+2] = value % 10
	return nil
}

// Fx55 - LD [I], Vx
func (vm *C8VM) opStore() error {
	x := int(vm.opcode.x())
	if err := checkRange(vm.regI, x+1); err != nil {
		return err
	}
	copy(vm.memory[vm.regI:int(vm.regI)+x+1], vm.regV[:x+1])
	return nil
}

// Fx65 - LD Vx, [I]
func (vm *C8VM) opLoad() error {
	x := int(vm.opcode.x())
	if err := checkRange(vm.regI, x+1); err != nil {
		return err
	}
	copy(vm.regV[:x+1], vm.memory[vm.regI:int(vm.regI)+x+1])
	return nil
}
