// Package vm provides a CHIP-8 interpreter core.
//
// # Machine State
//
// The interpreter owns the complete machine state:
//   - 4KB of memory (0x000-0xFFF), the font glyphs for 0-F are stored at FontBase
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - Index register I (16-bit) and program counter (starts at ProgramStart)
//   - 16 entry call stack with stack pointer
//   - Delay and sound timers, decremented once per executed step
//   - 16 key keypad, written by the host
//   - 64x32 pixel display buffer
//
// # Execution
//
// Step fetches the big-endian instruction word at the program counter,
// advances the program counter by 2, dispatches the word through a two-level
// decode table and finally decrements both timers if they are nonzero.
// Unrecognized instruction words are logged and skipped.
//
// The wait-for-key instruction (FX0A) does not block: while no key is
// pressed the program counter is rewound to the instruction so that the next
// Step executes it again.
//
// # Undefined Behavior
//
// Conditions that the architecture leaves undefined are resolved as follows:
//   - Sprite pixel coordinates wrap around the display edges
//   - Memory addresses derived from the index register wrap at 4KB
//   - Key and font digit indexes use the low 4 bits of the register
//   - Call stack overflow and underflow fail the step with an error
//
// # Usage Example
//
//	interpreter := vm.New(vm.WithLogger(logger), vm.WithRandom(vm.NewRandom(1)))
//	if _, err := interpreter.Load(image); err != nil {
//		return fmt.Errorf("loading image: %w", err)
//	}
//	for {
//		if err := interpreter.Step(); err != nil {
//			return fmt.Errorf("executing step: %w", err)
//		}
//	}
package vm
