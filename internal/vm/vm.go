package vm

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address where program images are loaded and
	// where execution begins.
	ProgramStart = 0x200

	// MaxImageSize is the largest program image that fits into memory.
	MaxImageSize = MemorySize - ProgramStart

	// FontBase is the address of the built-in hexadecimal font glyphs.
	FontBase = 0x050

	// RegisterCount is the number of general-purpose registers.
	RegisterCount = 16

	// StackSize is the number of return addresses the call stack can hold.
	StackSize = 16

	// FlagRegister is the index of VF, used for carry, borrow and collision output.
	FlagRegister = 0xF

	addressMask = MemorySize - 1
	opcodeSize  = 2
)

var (
	// ErrEmptyImage is returned when loading a program image without content.
	ErrEmptyImage = errors.New("program image is empty")
	// ErrImageTooLarge is returned when a program image does not fit into memory.
	ErrImageTooLarge = errors.New("program image too large")
	// ErrStackOverflow is returned when a call is executed with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// Interpreter is a CHIP-8 virtual machine.
// It is not safe for concurrent use, the host has to serialize calls to Step
// and SetKey if they are issued from different goroutines.
type Interpreter struct {
	logger *log.Logger
	random Random

	unrecognized set.Set[uint16] // addresses of reported unrecognized instructions

	memory    [MemorySize]byte
	registers [RegisterCount]uint8
	index     uint16
	pc        uint16
	stack     [StackSize]uint16
	sp        uint8
	opcode    uint16

	delayTimer uint8
	soundTimer uint8

	keypad  Keypad
	display Display
}

// Option configures an Interpreter at construction.
type Option func(c *Interpreter)

// WithLogger sets the logger used to report unrecognized instructions
// and to trace execution at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(c *Interpreter) {
		c.logger = logger
	}
}

// WithRandom sets the random byte source of the CXNN instruction.
func WithRandom(random Random) Option {
	return func(c *Interpreter) {
		c.random = random
	}
}

// New returns a new interpreter in its initial state: memory is cleared
// except for the font glyphs and the program counter points to ProgramStart.
func New(opts ...Option) *Interpreter {
	c := &Interpreter{
		pc:           ProgramStart,
		unrecognized: set.New[uint16](),
	}
	copy(c.memory[FontBase:], fontSet[:])

	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NewWithConfig(log.DefaultConfig())
	}
	if c.random == nil {
		c.random = NewRandom(uint64(time.Now().UnixNano()))
	}
	return c
}

// Load copies a program image into memory starting at ProgramStart and
// returns the image size. The machine state is not modified if the image
// is empty or does not fit into memory.
func (c *Interpreter) Load(image []byte) (int, error) {
	if len(image) == 0 {
		return 0, ErrEmptyImage
	}
	if len(image) > MaxImageSize {
		return 0, fmt.Errorf("%w: %d bytes, maximum is %d bytes", ErrImageTooLarge, len(image), MaxImageSize)
	}

	copy(c.memory[ProgramStart:], image)
	c.logger.Debug("Program image loaded", log.Int("size", len(image)))
	return len(image), nil
}

// LoadFrom reads a program image from the reader and loads it into memory.
func (c *Interpreter) LoadFrom(r io.Reader) (int, error) {
	// one byte more than fits to detect oversized images without reading all of them
	image, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return 0, fmt.Errorf("reading program image: %w", err)
	}
	return c.Load(image)
}

// Step executes a single instruction and decrements the timers.
// An unrecognized instruction word is skipped, it is logged as warning once
// per address. An error is only
// returned for call stack overflow or underflow, in which case the program
// counter still points to the faulting instruction and the timers are
// unchanged.
func (c *Interpreter) Step() error {
	address := c.pc
	ins := c.fetch()
	c.opcode = uint16(ins)
	c.pc = (c.pc + opcodeSize) & addressMask

	h, ok := decode(ins)
	if !ok {
		c.reportUnrecognized(address)
		c.tickTimers()
		return nil
	}

	c.logger.Debug("Executing instruction",
		log.Hex("address", address),
		log.Hex("opcode", c.opcode),
		log.String("mnemonic", Mnemonic(c.opcode)))

	if err := h(c, ins); err != nil {
		c.pc = address
		return fmt.Errorf("executing opcode %04X at address %03X: %w", c.opcode, address, err)
	}

	c.tickTimers()
	return nil
}

// SetKey sets the pressed state of a keypad key, only the low 4 bits of key are used.
func (c *Interpreter) SetKey(key uint8, pressed bool) {
	c.keypad[key&0xF] = pressed
}

// reportUnrecognized logs an unrecognized instruction as warning the first
// time it is executed at an address, repeated executions are logged at
// debug level.
func (c *Interpreter) reportUnrecognized(address uint16) {
	if c.unrecognized.Contains(address) {
		c.logger.Debug("Unrecognized instruction",
			log.Hex("address", address),
			log.Hex("opcode", c.opcode))
		return
	}

	c.unrecognized.Add(address)
	c.logger.Warn("Unrecognized instruction",
		log.Hex("address", address),
		log.Hex("opcode", c.opcode))
}

func (c *Interpreter) fetch() instruction {
	hi := c.memory[c.pc&addressMask]
	lo := c.memory[(c.pc+1)&addressMask]
	return instruction(uint16(hi)<<8 | uint16(lo))
}

func (c *Interpreter) tickTimers() {
	if c.delayTimer > 0 {
		c.delayTimer--
	}
	if c.soundTimer > 0 {
		c.soundTimer--
	}
}

// skip advances the program counter past the next instruction.
func (c *Interpreter) skip() {
	c.pc = (c.pc + opcodeSize) & addressMask
}

func (c *Interpreter) readMemory(address int) byte {
	return c.memory[address&addressMask]
}

func (c *Interpreter) writeMemory(address int, value byte) {
	c.memory[address&addressMask] = value
}
