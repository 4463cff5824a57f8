package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     Opcode
		name   string
		width  int
		alu    bool
		setsPc bool
	}){
		{OP_HLT, "HLT", 1, false, false},
		{OP_RET, "RET", 1, false, true},
		{OP_PUSH, "PUSH", 2, false, false},
		{OP_POP, "POP", 2, false, false},
		{OP_PRN, "PRN", 2, false, false},
		{OP_CALL, "CALL", 2, false, true},
		{OP_JMP, "JMP", 2, false, true},
		{OP_JEQ, "JEQ", 2, false, true},
		{OP_JNE, "JNE", 2, false, true},
		{OP_NOT, "NOT", 2, true, false},
		{OP_LDI, "LDI", 3, false, false},
		{OP_ADD, "ADD", 3, true, false},
		{OP_SUB, "SUB", 3, true, false},
		{OP_MUL, "MUL", 3, true, false},
		{OP_DIV, "DIV", 3, true, false},
		{OP_MOD, "MOD", 3, true, false},
		{OP_CMP, "CMP", 3, true, false},
		{OP_AND, "AND", 3, true, false},
		{OP_OR, "OR", 3, true, false},
		{OP_XOR, "XOR", 3, true, false},
		{OP_SHL, "SHL", 3, true, false},
		{OP_SHR, "SHR", 3, true, false},
	}

	assert.Equal(len(opMnemonic), len(table))

	for _, entry := range table {
		assert.True(entry.op.Valid(), entry.name)
		assert.Equal(entry.name, entry.op.String())
		assert.Equal(entry.width, entry.op.Width(), entry.name)
		assert.Equal(entry.alu, entry.op.IsAlu(), entry.name)
		assert.Equal(entry.setsPc, entry.op.SetsPc(), entry.name)

		op, ok := LookupOpcode(entry.name)
		assert.True(ok)
		assert.Equal(entry.op, op)
	}

	for op := range opAlu {
		assert.True(op.IsAlu(), op.String())
	}
	for _, entry := range table {
		if entry.alu && entry.op != OP_NOT {
			_, ok := opAlu[entry.op]
			assert.True(ok, entry.name)
		}
	}

	_, ok := LookupOpcode("nop")
	assert.False(ok)
	op, ok := LookupOpcode("ldi")
	assert.True(ok)
	assert.Equal(OP_LDI, op)

	assert.False(Opcode(0).Valid())
	assert.Equal("Opcode(0b11111111)", Opcode(0xff).String())
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		inst Instruction
		text string
	}){
		{Instruction{Opcode: OP_HLT}, "HLT"},
		{Instruction{Opcode: OP_RET}, "RET"},
		{Instruction{Opcode: OP_LDI, Operands: [2]uint8{0, 8}}, "LDI R0,8"},
		{Instruction{Opcode: OP_PRN, Operands: [2]uint8{3}}, "PRN R3"},
		{Instruction{Opcode: OP_ADD, Operands: [2]uint8{1, 2}}, "ADD R1,R2"},
		{Instruction{Opcode: Opcode(0xff)}, "Opcode(0b11111111)"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.inst.String())
	}

	inst := Instruction{Opcode: OP_LDI, Operands: [2]uint8{1, 2}}
	assert.Equal([]byte{0x82, 1, 2}, inst.Bytes())
	inst = Instruction{Opcode: OP_PUSH, Operands: [2]uint8{1, 2}}
	assert.Equal([]byte{0x45, 1}, inst.Bytes())
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	data := []byte{
		0b10000010, 0b00000000, 0b00001000,
		0b01000111, 0b00000000,
		0b11111111,
		0b00000001,
		0b10100000, 0b00000001,
	}

	insts := Disassemble(data)
	var text []string
	var addrs []int
	for _, inst := range insts {
		text = append(text, inst.String())
		addrs = append(addrs, inst.Address)
	}

	assert.Equal([]string{"LDI R0,8", "PRN R0", "Opcode(0b11111111)", "HLT", "ADD R1,R0"}, text)
	assert.Equal([]int{0, 3, 5, 6, 7}, addrs)
}
