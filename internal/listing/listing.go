// Package listing provides a linear disassembly of CHIP-8 program images.
package listing

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/vm"
)

// Instruction formats a single instruction word with its operands, for
// example "ld V1, $0A". Unrecognized words are formatted as data.
func Instruction(opcode uint16) string {
	name := vm.Mnemonic(opcode)
	if name == "" {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if params := formatParams(opcode); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// Write writes a listing of the image as loaded at vm.ProgramStart, one
// instruction word per line with its address. A trailing odd byte is
// written as data.
func Write(w io.Writer, image []byte) error {
	address := vm.ProgramStart
	for i := 0; i+1 < len(image); i += 2 {
		opcode := uint16(image[i])<<8 | uint16(image[i+1])
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", address+i, opcode, Instruction(opcode)); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}

	if len(image)%2 == 1 {
		last := len(image) - 1
		if _, err := fmt.Fprintf(w, "%03X  %02X    .byte $%02X\n", address+last, image[last], image[last]); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}
	return nil
}

// formatParams returns the operand string of a recognized instruction word.
func formatParams(opcode uint16) string {
	x := (opcode & 0x0F00) >> 8
	y := (opcode & 0x00F0) >> 4
	nnn := opcode & 0x0FFF
	nn := opcode & 0x00FF

	switch opcode & 0xF000 {
	case 0x0000:
		return "" // cls, ret
	case 0x1000, 0x2000:
		return fmt.Sprintf("$%03X", nnn)
	case 0x3000, 0x4000, 0x6000, 0x7000, 0xC000:
		return fmt.Sprintf("V%X, $%02X", x, nn)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0x8000:
		if opcode&0x000F == 0xE {
			return fmt.Sprintf("V%X", x)
		}
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", nnn)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", nnn)
	case 0xD000:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, opcode&0x000F)
	case 0xE000:
		return fmt.Sprintf("V%X", x)
	case 0xF000:
		return formatMiscParams(x, nn)
	}
	return ""
}

// formatMiscParams formats the operands of the FXNN instruction family.
func formatMiscParams(x, nn uint16) string {
	switch nn {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}
