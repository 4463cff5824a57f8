// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
)

// AluOp is a binary ALU operation.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0)  // add
	ALU_OP_SUB = AluOp(1)  // sub
	ALU_OP_MUL = AluOp(2)  // mul
	ALU_OP_DIV = AluOp(3)  // div
	ALU_OP_MOD = AluOp(4)  // mod
	ALU_OP_AND = AluOp(5)  // and
	ALU_OP_OR  = AluOp(6)  // or
	ALU_OP_XOR = AluOp(7)  // xor
	ALU_OP_SHL = AluOp(8)  // shl
	ALU_OP_SHR = AluOp(9)  // shr
	ALU_OP_CMP = AluOp(10) // cmp
)

// Alu applies op to registers reg_a and reg_b, storing the result in reg_a.
// ALU_OP_CMP leaves the registers alone and updates the flags instead.
func (cpu *Cpu) Alu(op AluOp, reg_a, reg_b uint8) (err error) {
	a, err := cpu.Registers.Get(reg_a)
	if err != nil {
		err = errors.Join(ErrOpcodeAlu, ErrOpcodeArg1, err)
		return
	}
	b, err := cpu.Registers.Get(reg_b)
	if err != nil {
		err = errors.Join(ErrOpcodeAlu, ErrOpcodeArg2, err)
		return
	}

	if op == ALU_OP_CMP {
		cpu.Flags = compare(a, b)
		return
	}

	output, err := doAlu(op, a, b)
	if err != nil {
		return
	}

	cpu.Registers.R[reg_a] = output
	return
}

// AluNot replaces reg with its bitwise complement.
func (cpu *Cpu) AluNot(reg uint8) (err error) {
	a, err := cpu.Registers.Get(reg)
	if err != nil {
		err = errors.Join(ErrOpcodeAlu, ErrOpcodeArg1, err)
		return
	}

	cpu.Registers.R[reg] = ^a
	return
}

// compare returns the flag register for an unsigned comparison of a to b.
func compare(a, b uint8) (flags Flags) {
	switch {
	case a == b:
		flags = FLAG_E
	case a < b:
		flags = FLAG_L
	default:
		flags = FLAG_G
	}
	return
}

// doAlu performs the requested ALU action, and returns the output value.
// All results wrap to 8 bits.
func doAlu(op AluOp, input uint8, value uint8) (output uint8, err error) {
	switch op {
	case ALU_OP_ADD: // add
		output = input + value
	case ALU_OP_SUB: // sub
		output = input - value
	case ALU_OP_MUL: // mul
		output = input * value
	case ALU_OP_DIV: // div
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input / value
	case ALU_OP_MOD: // mod
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input % value
	case ALU_OP_AND: // and
		output = input & value
	case ALU_OP_OR: // or
		output = input | value
	case ALU_OP_XOR: // xor
		output = input ^ value
	case ALU_OP_SHL: // shl
		output = input << value
	case ALU_OP_SHR: // shr
		output = input >> value
	default:
		panic("unknown ALU op " + op.String())
	}

	return
}
