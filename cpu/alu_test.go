package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     AluOp
		a, b   uint8
		result uint8
	}){
		{ALU_OP_ADD, 3, 4, 7},
		{ALU_OP_ADD, 0xff, 2, 1},
		{ALU_OP_SUB, 10, 4, 6},
		{ALU_OP_SUB, 0, 1, 0xff},
		{ALU_OP_MUL, 8, 9, 72},
		{ALU_OP_MUL, 0x10, 0x10, 0},
		{ALU_OP_DIV, 17, 5, 3},
		{ALU_OP_MOD, 17, 5, 2},
		{ALU_OP_AND, 0b1100, 0b1010, 0b1000},
		{ALU_OP_OR, 0b1100, 0b1010, 0b1110},
		{ALU_OP_XOR, 0b1100, 0b1010, 0b0110},
		{ALU_OP_SHL, 0b0000_0011, 3, 0b0001_1000},
		{ALU_OP_SHL, 0x81, 1, 0x02},
		{ALU_OP_SHL, 0xff, 8, 0},
		{ALU_OP_SHR, 0b1000_0000, 7, 1},
		{ALU_OP_SHR, 0xff, 9, 0},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Registers.R[2] = entry.a
		cpu.Registers.R[5] = entry.b

		err := cpu.Alu(entry.op, 2, 5)
		assert.NoError(err, entry.op.String())
		assert.Equal(entry.result, cpu.Registers.R[2], "%v %d %d", entry.op, entry.a, entry.b)
		assert.Equal(entry.b, cpu.Registers.R[5], entry.op.String())
		assert.Equal(Flags(0), cpu.Flags, entry.op.String())
	}
}

func TestAlu_DivideByZero(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []AluOp{ALU_OP_DIV, ALU_OP_MOD} {
		cpu := NewCpu()
		cpu.Registers.R[0] = 9

		err := cpu.Alu(op, 0, 1)
		assert.ErrorIs(err, ErrDivideByZero, op.String())
		assert.Equal(uint8(9), cpu.Registers.R[0], op.String())
	}
}

func TestAlu_Compare(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b  uint8
		flags Flags
	}){
		{5, 5, FLAG_E},
		{4, 5, FLAG_L},
		{6, 5, FLAG_G},
		{0, 0xff, FLAG_L},
		{0xff, 0, FLAG_G},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Flags = FLAG_E | FLAG_G | FLAG_L
		cpu.Registers.R[0] = entry.a
		cpu.Registers.R[1] = entry.b

		err := cpu.Alu(ALU_OP_CMP, 0, 1)
		assert.NoError(err)
		assert.Equal(entry.flags, cpu.Flags, "%d %d", entry.a, entry.b)
		assert.Equal(entry.a, cpu.Registers.R[0])
	}
}

func TestAlu_Not(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.R[3] = 0b1010_0101

	err := cpu.AluNot(3)
	assert.NoError(err)
	assert.Equal(uint8(0b0101_1010), cpu.Registers.R[3])

	err = cpu.AluNot(8)
	assert.ErrorIs(err, ErrOpcodeAlu)
	assert.ErrorIs(err, ErrRegisterInvalid(8))
}

func TestAlu_BadRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	err := cpu.Alu(ALU_OP_ADD, 9, 0)
	assert.ErrorIs(err, ErrOpcodeArg1)

	err = cpu.Alu(ALU_OP_ADD, 0, 9)
	assert.ErrorIs(err, ErrOpcodeArg2)
}

func TestAlu_UnknownOp(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	assert.Panics(func() { cpu.Alu(AluOp(42), 0, 1) })
	assert.Equal("AluOp(42)", AluOp(42).String())
}
