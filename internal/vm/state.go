package vm

// State is a copy of the machine state, taken by Interpreter.State.
// Modifying a State does not affect the interpreter it was taken from.
type State struct {
	Registers [RegisterCount]uint8
	Index     uint16
	PC        uint16
	Stack     [StackSize]uint16
	SP        uint8
	Opcode    uint16 // most recently fetched instruction word

	DelayTimer uint8
	SoundTimer uint8

	Keypad  Keypad
	Display Display
}

// State returns a snapshot of the current machine state.
func (c *Interpreter) State() State {
	return State{
		Registers:  c.registers,
		Index:      c.index,
		PC:         c.pc,
		Stack:      c.stack,
		SP:         c.sp,
		Opcode:     c.opcode,
		DelayTimer: c.delayTimer,
		SoundTimer: c.soundTimer,
		Keypad:     c.keypad,
		Display:    c.display,
	}
}

// Display returns a copy of the display buffer. Changes to the returned
// buffer do not affect the interpreter.
func (c *Interpreter) Display() *Display {
	display := c.display
	return &display
}

// PC returns the address of the next instruction to fetch.
func (c *Interpreter) PC() uint16 {
	return c.pc
}

// Opcode returns the most recently fetched instruction word.
func (c *Interpreter) Opcode() uint16 {
	return c.opcode
}

// Register returns the value of the general-purpose register Vx,
// only the low 4 bits of x are used.
func (c *Interpreter) Register(x uint8) uint8 {
	return c.registers[x&0x0F]
}

// Index returns the value of the index register I.
func (c *Interpreter) Index() uint16 {
	return c.index
}

// DelayTimer returns the current value of the delay timer.
func (c *Interpreter) DelayTimer() uint8 {
	return c.delayTimer
}

// SoundTimer returns the current value of the sound timer. A host should
// emit a tone while it is nonzero.
func (c *Interpreter) SoundTimer() uint8 {
	return c.soundTimer
}

// Memory returns the byte at the given address, the address wraps at 4KB.
func (c *Interpreter) Memory(address uint16) byte {
	return c.memory[address&addressMask]
}
