package vm

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Mnemonic returns the assembler mnemonic of an instruction word as listed
// in the CHIP-8 opcode table of retrogolib, or an empty string for words
// that do not match any known opcode.
func Mnemonic(opcode uint16) string {
	for _, op := range chip8.Opcodes[int(opcode>>12)] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}
