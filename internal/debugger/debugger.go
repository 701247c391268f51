// Package debugger renders the machine state the way a debugger panel shows it.
package debugger

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/vm"
)

// WriteState writes the current opcode, registers, index register, call
// stack, stack pointer, program counter and timers of a state snapshot.
func WriteState(w io.Writer, state vm.State) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Current Opcode: 0x%04X", state.Opcode)
	if text := vm.Mnemonic(state.Opcode); text != "" {
		fmt.Fprintf(&sb, " (%s)", text)
	}
	sb.WriteString("\nRegisters:\n")
	for i, value := range state.Registers {
		fmt.Fprintf(&sb, "  V%X: 0x%02X\n", i, value)
	}
	fmt.Fprintf(&sb, "Index Register (I): 0x%04X\n", state.Index)
	sb.WriteString("Stack Levels:\n")
	for i, address := range state.Stack {
		marker := ""
		if i < int(state.SP) {
			marker = " *"
		}
		fmt.Fprintf(&sb, "  Stack[%d]: 0x%04X%s\n", i, address, marker)
	}
	fmt.Fprintf(&sb, "Stack Pointer (SP): 0x%02X\n", state.SP)
	fmt.Fprintf(&sb, "Program Counter (PC): 0x%04X\n", state.PC)
	fmt.Fprintf(&sb, "Delay Timer: %d\n", state.DelayTimer)
	fmt.Fprintf(&sb, "Sound Timer: %d\n", state.SoundTimer)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
