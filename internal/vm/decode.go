package vm

// instruction is a fetched 16-bit CHIP-8 instruction word.
type instruction uint16

// x returns the X register index nibble.
func (i instruction) x() uint8 {
	return uint8(i>>8) & 0x0F
}

// y returns the Y register index nibble.
func (i instruction) y() uint8 {
	return uint8(i>>4) & 0x0F
}

// n returns the lowest nibble.
func (i instruction) n() uint8 {
	return uint8(i) & 0x0F
}

// nn returns the low byte.
func (i instruction) nn() uint8 {
	return uint8(i)
}

// nnn returns the 12-bit address.
func (i instruction) nnn() uint16 {
	return uint16(i) & 0x0FFF
}

// family returns the top nibble that selects the opcode family.
func (i instruction) family() uint8 {
	return uint8(i >> 12)
}

type handler func(c *Interpreter, ins instruction) error

// opcodeFamily describes how the instructions of one top nibble are decoded.
// A family either maps directly to a handler or selects a handler from a
// sub table using a discriminator taken from the instruction word.
type opcodeFamily struct {
	handler       handler
	discriminator func(ins instruction) uint8
	handlers      map[uint8]handler
}

func lowNibble(ins instruction) uint8 { return ins.n() }
func lowByte(ins instruction) uint8   { return ins.nn() }

var families = [16]opcodeFamily{
	0x0: {
		discriminator: lowByte,
		handlers: map[uint8]handler{
			0xE0: (*Interpreter).clearScreen,
			0xEE: (*Interpreter).returnFromSubroutine,
		},
	},
	0x1: {handler: (*Interpreter).jump},
	0x2: {handler: (*Interpreter).call},
	0x3: {handler: (*Interpreter).skipIfEqualImmediate},
	0x4: {handler: (*Interpreter).skipIfNotEqualImmediate},
	0x5: {handler: (*Interpreter).skipIfRegistersEqual},
	0x6: {handler: (*Interpreter).setImmediate},
	0x7: {handler: (*Interpreter).addImmediate},
	0x8: {
		discriminator: lowNibble,
		handlers: map[uint8]handler{
			0x0: (*Interpreter).assign,
			0x1: (*Interpreter).or,
			0x2: (*Interpreter).and,
			0x3: (*Interpreter).xor,
			0x4: (*Interpreter).add,
			0x5: (*Interpreter).subtract,
			0x6: (*Interpreter).shiftRight,
			0x7: (*Interpreter).subtractReverse,
			0xE: (*Interpreter).shiftLeft,
		},
	},
	0x9: {handler: (*Interpreter).skipIfRegistersNotEqual},
	0xA: {handler: (*Interpreter).setIndex},
	0xB: {handler: (*Interpreter).jumpWithOffset},
	0xC: {handler: (*Interpreter).randomAnd},
	0xD: {handler: (*Interpreter).drawSprite},
	0xE: {
		discriminator: lowByte,
		handlers: map[uint8]handler{
			0x9E: (*Interpreter).skipIfKeyPressed,
			0xA1: (*Interpreter).skipIfKeyNotPressed,
		},
	},
	0xF: {
		discriminator: lowByte,
		handlers: map[uint8]handler{
			0x07: (*Interpreter).getDelayTimer,
			0x0A: (*Interpreter).waitForKey,
			0x15: (*Interpreter).setDelayTimer,
			0x18: (*Interpreter).setSoundTimer,
			0x1E: (*Interpreter).addToIndex,
			0x29: (*Interpreter).loadFontAddress,
			0x33: (*Interpreter).storeBCD,
			0x55: (*Interpreter).storeRegisters,
			0x65: (*Interpreter).loadRegisters,
		},
	},
}

// decode returns the handler of the instruction word and whether the word
// is a recognized instruction.
func decode(ins instruction) (handler, bool) {
	family := families[ins.family()]
	if family.handler != nil {
		return family.handler, true
	}

	h, ok := family.handlers[family.discriminator(ins)]
	return h, ok
}
