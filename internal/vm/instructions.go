package vm

// 00E0 - CLS
func (c *Interpreter) clearScreen(_ instruction) error {
	c.display.clear()
	return nil
}

// 00EE - RET
func (c *Interpreter) returnFromSubroutine(_ instruction) error {
	if c.sp == 0 {
		return ErrStackUnderflow
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

// 1NNN - JP addr
func (c *Interpreter) jump(ins instruction) error {
	c.pc = ins.nnn()
	return nil
}

// 2NNN - CALL addr
func (c *Interpreter) call(ins instruction) error {
	if int(c.sp) == StackSize {
		return ErrStackOverflow
	}
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = ins.nnn()
	return nil
}

// 3XNN - SE Vx, byte
func (c *Interpreter) skipIfEqualImmediate(ins instruction) error {
	if c.registers[ins.x()] == ins.nn() {
		c.skip()
	}
	return nil
}

// 4XNN - SNE Vx, byte
func (c *Interpreter) skipIfNotEqualImmediate(ins instruction) error {
	if c.registers[ins.x()] != ins.nn() {
		c.skip()
	}
	return nil
}

// 5XY0 - SE Vx, Vy
// The low nibble is not checked, 5XYN behaves like 5XY0.
func (c *Interpreter) skipIfRegistersEqual(ins instruction) error {
	if c.registers[ins.x()] == c.registers[ins.y()] {
		c.skip()
	}
	return nil
}

// 6XNN - LD Vx, byte
func (c *Interpreter) setImmediate(ins instruction) error {
	c.registers[ins.x()] = ins.nn()
	return nil
}

// 7XNN - ADD Vx, byte
func (c *Interpreter) addImmediate(ins instruction) error {
	c.registers[ins.x()] += ins.nn()
	return nil
}

// 8XY0 - LD Vx, Vy
func (c *Interpreter) assign(ins instruction) error {
	c.registers[ins.x()] = c.registers[ins.y()]
	return nil
}

// 8XY1 - OR Vx, Vy
func (c *Interpreter) or(ins instruction) error {
	c.registers[ins.x()] |= c.registers[ins.y()]
	return nil
}

// 8XY2 - AND Vx, Vy
func (c *Interpreter) and(ins instruction) error {
	c.registers[ins.x()] &= c.registers[ins.y()]
	return nil
}

// 8XY3 - XOR Vx, Vy
func (c *Interpreter) xor(ins instruction) error {
	c.registers[ins.x()] ^= c.registers[ins.y()]
	return nil
}

// 8XY4 - ADD Vx, Vy
// The flag is written before the result, if X is VF the sum wins.
func (c *Interpreter) add(ins instruction) error {
	sum := uint16(c.registers[ins.x()]) + uint16(c.registers[ins.y()])
	c.registers[FlagRegister] = boolToFlag(sum > 0xFF)
	c.registers[ins.x()] = uint8(sum)
	return nil
}

// 8XY5 - SUB Vx, Vy
// The flag is written first, operands are read afterwards. This matters
// when X or Y is VF, the same holds for the other flag setting ALU
// instructions except 8XY4.
func (c *Interpreter) subtract(ins instruction) error {
	c.registers[FlagRegister] = boolToFlag(c.registers[ins.x()] >= c.registers[ins.y()])
	c.registers[ins.x()] -= c.registers[ins.y()]
	return nil
}

// 8XY6 - SHR Vx, Vy
// Shifts Vy and stores the result in Vx.
func (c *Interpreter) shiftRight(ins instruction) error {
	c.registers[FlagRegister] = c.registers[ins.y()] & 0x01
	c.registers[ins.x()] = c.registers[ins.y()] >> 1
	return nil
}

// 8XY7 - SUBN Vx, Vy
func (c *Interpreter) subtractReverse(ins instruction) error {
	c.registers[FlagRegister] = boolToFlag(c.registers[ins.y()] > c.registers[ins.x()])
	c.registers[ins.x()] = c.registers[ins.y()] - c.registers[ins.x()]
	return nil
}

// 8XYE - SHL Vx
func (c *Interpreter) shiftLeft(ins instruction) error {
	c.registers[FlagRegister] = c.registers[ins.x()] >> 7
	c.registers[ins.x()] <<= 1
	return nil
}

// 9XY0 - SNE Vx, Vy
func (c *Interpreter) skipIfRegistersNotEqual(ins instruction) error {
	if c.registers[ins.x()] != c.registers[ins.y()] {
		c.skip()
	}
	return nil
}

// ANNN - LD I, addr
func (c *Interpreter) setIndex(ins instruction) error {
	c.index = ins.nnn()
	return nil
}

// BNNN - JP V0, addr
func (c *Interpreter) jumpWithOffset(ins instruction) error {
	c.pc = (uint16(c.registers[0]) + ins.nnn()) & addressMask
	return nil
}

// CXNN - RND Vx, byte
func (c *Interpreter) randomAnd(ins instruction) error {
	c.registers[ins.x()] = c.random.Byte() & ins.nn()
	return nil
}

// DXYN - DRW Vx, Vy, nibble
// Every sprite pixel coordinate wraps around the display edges.
func (c *Interpreter) drawSprite(ins instruction) error {
	x := int(c.registers[ins.x()])
	y := int(c.registers[ins.y()])
	height := int(ins.n())

	var collision bool
	for row := range height {
		line := c.readMemory(int(c.index) + row)
		for col := range spriteWidth {
			if line&(0x80>>col) == 0 {
				continue
			}
			if c.display.flip((x+col)%DisplayWidth, (y+row)%DisplayHeight) {
				collision = true
			}
		}
	}

	c.registers[FlagRegister] = boolToFlag(collision)
	return nil
}

// EX9E - SKP Vx
func (c *Interpreter) skipIfKeyPressed(ins instruction) error {
	if c.keypad[c.registers[ins.x()]&0x0F] {
		c.skip()
	}
	return nil
}

// EXA1 - SKNP Vx
func (c *Interpreter) skipIfKeyNotPressed(ins instruction) error {
	if !c.keypad[c.registers[ins.x()]&0x0F] {
		c.skip()
	}
	return nil
}

// FX07 - LD Vx, DT
func (c *Interpreter) getDelayTimer(ins instruction) error {
	c.registers[ins.x()] = c.delayTimer
	return nil
}

// FX0A - LD Vx, K
// Without a pressed key the program counter is moved back onto this
// instruction so that the next step executes it again. If several keys are
// pressed the lowest key index is stored.
func (c *Interpreter) waitForKey(ins instruction) error {
	key, ok := c.keypad.firstPressed()
	if !ok {
		c.pc = (c.pc - opcodeSize) & addressMask
		return nil
	}
	c.registers[ins.x()] = key
	return nil
}

// FX15 - LD DT, Vx
func (c *Interpreter) setDelayTimer(ins instruction) error {
	c.delayTimer = c.registers[ins.x()]
	return nil
}

// FX18 - LD ST, Vx
func (c *Interpreter) setSoundTimer(ins instruction) error {
	c.soundTimer = c.registers[ins.x()]
	return nil
}

// FX1E - ADD I, Vx
func (c *Interpreter) addToIndex(ins instruction) error {
	c.index += uint16(c.registers[ins.x()])
	return nil
}

// FX29 - LD F, Vx
func (c *Interpreter) loadFontAddress(ins instruction) error {
	digit := uint16(c.registers[ins.x()] & 0x0F)
	c.index = FontBase + glyphSize*digit
	return nil
}

// FX33 - LD B, Vx
func (c *Interpreter) storeBCD(ins instruction) error {
	value := c.registers[ins.x()]
	address := int(c.index)
	c.writeMemory(address, value/100)
	c.writeMemory(address+1, (value/10)%10)
	c.writeMemory(address+2, value%10)
	return nil
}

// FX55 - LD [I], Vx
// The index register is not modified.
func (c *Interpreter) storeRegisters(ins instruction) error {
	for i := 0; i <= int(ins.x()); i++ {
		c.writeMemory(int(c.index)+i, c.registers[i])
	}
	return nil
}

// FX65 - LD Vx, [I]
func (c *Interpreter) loadRegisters(ins instruction) error {
	for i := 0; i <= int(ins.x()); i++ {
		c.registers[i] = c.readMemory(int(c.index) + i)
	}
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
