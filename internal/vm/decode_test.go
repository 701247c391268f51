package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestInstructionFields(t *testing.T) {
	ins := instruction(0xD3A7)

	assert.Equal(t, uint8(0xD), ins.family())
	assert.Equal(t, uint8(0x3), ins.x())
	assert.Equal(t, uint8(0xA), ins.y())
	assert.Equal(t, uint8(0x7), ins.n())
	assert.Equal(t, uint8(0xA7), ins.nn())
	assert.Equal(t, uint16(0x3A7), ins.nnn())
}

func TestDecodeTableSize(t *testing.T) {
	var count int
	for _, family := range families {
		if family.handler != nil {
			count++
			continue
		}
		count += len(family.handlers)
	}
	assert.Equal(t, 34, count)
}

func TestDecode(t *testing.T) {
	recognized := []uint16{
		0x00E0, 0x00EE, 0x1123, 0x2123, 0x3123, 0x4123, 0x5120, 0x6123, 0x7123,
		0x8120, 0x8121, 0x8122, 0x8123, 0x8124, 0x8125, 0x8126, 0x8127, 0x812E,
		0x9120, 0xA123, 0xB123, 0xC123, 0xD123, 0xE19E, 0xE1A1,
		0xF107, 0xF10A, 0xF115, 0xF118, 0xF11E, 0xF129, 0xF133, 0xF155, 0xF165,
	}
	for _, word := range recognized {
		_, ok := decode(instruction(word))
		assert.True(t, ok, "opcode %04X should be recognized", word)
	}

	unrecognized := []uint16{0x0000, 0x00FF, 0x8128, 0x812F, 0xE19F, 0xF100, 0xF1FF}
	for _, word := range unrecognized {
		_, ok := decode(instruction(word))
		assert.False(t, ok, "opcode %04X should not be recognized", word)
	}
}

func TestMnemonic(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00E0, chip8.ClsName},
		{0x00EE, chip8.RetName},
		{0x1200, chip8.JpName},
		{0x2300, chip8.CallName},
		{0x3042, chip8.SeName},
		{0x4042, chip8.SneName},
		{0x6042, chip8.LdName},
		{0x7042, chip8.AddName},
		{0x8011, chip8.OrName},
		{0x8012, chip8.AndName},
		{0x8013, chip8.XorName},
		{0x8015, chip8.SubName},
		{0x8017, chip8.SubnName},
		{0xC0FF, chip8.RndName},
		{0xD015, chip8.DrwName},
		{0xE09E, chip8.SkpName},
		{0xE0A1, chip8.SknpName},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mnemonic(tt.opcode))
		})
	}
}
