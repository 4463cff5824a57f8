package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

func newEmulator(t *testing.T, program []string) (emu *emulator.Emulator, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	emu = emulator.NewEmulator()
	emu.Tape.Output = output

	asm := &cpu.Assembler{}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)
	emu.Program = prog

	require.NoError(t, emu.Reset())
	return
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		output  string
		code    int
	}){
		{"halt", []string{
			"LDI R0, 8",
			"PRN R0",
			"HLT",
		}, "8\n", EXIT_OK},
		{"unknown", []string{
			"LDI R0, 8",
			".db 0b11111111",
			"PRN R0",
			"HLT",
		}, "", EXIT_OPCODE},
		{"div_zero", []string{
			"LDI R0, 8",
			"PRN R0",
			"DIV R0, R1",
			"PRN R0",
			"HLT",
		}, "8\n", EXIT_OK},
		{"mod_zero", []string{
			"LDI R0, 8",
			"MOD R0, R1",
			"HLT",
		}, "", EXIT_OK},
		{"underflow", []string{
			"POP R0",
			"HLT",
		}, "", EXIT_FAULT},
		{"register", []string{
			".db 0b01000111 9",
			"HLT",
		}, "", EXIT_FAULT},
	}

	for _, entry := range table {
		emu, output := newEmulator(t, entry.program)
		assert.Equal(entry.code, run(emu), entry.name)
		assert.Equal(entry.output, output.String(), entry.name)
	}

	// Operand fetch past the end of memory.
	emu, _ := newEmulator(t, []string{
		"LDI R0, 0xff",
		"JMP R0",
	})
	emu.Cpu.Memory[0xff] = uint8(cpu.OP_LDI)
	assert.Equal(EXIT_FAULT, run(emu))
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	assert.NoError(listing(buff, emulator.DefaultProgram))
	assert.Equal("00: LDI R0,8\n03: PRN R0\n05: HLT\n", buff.String())
}
