// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the leading byte of an instruction.
//
// Bit layout: AABCDDDD
//   - AA:   number of operand bytes (0, 1 or 2)
//   - B:    ALU instruction
//   - C:    instruction sets the PC itself
//   - DDDD: instruction identifier
type Opcode uint8

const (
	OP_HLT  = Opcode(0b00000001)
	OP_RET  = Opcode(0b00010001)
	OP_PUSH = Opcode(0b01000101)
	OP_POP  = Opcode(0b01000110)
	OP_PRN  = Opcode(0b01000111)
	OP_CALL = Opcode(0b01010000)
	OP_JMP  = Opcode(0b01010100)
	OP_JEQ  = Opcode(0b01010101)
	OP_JNE  = Opcode(0b01010110)
	OP_NOT  = Opcode(0b01101001)
	OP_LDI  = Opcode(0b10000010)
	OP_ADD  = Opcode(0b10100000)
	OP_SUB  = Opcode(0b10100001)
	OP_MUL  = Opcode(0b10100010)
	OP_DIV  = Opcode(0b10100011)
	OP_MOD  = Opcode(0b10100100)
	OP_CMP  = Opcode(0b10100111)
	OP_AND  = Opcode(0b10101000)
	OP_OR   = Opcode(0b10101010)
	OP_XOR  = Opcode(0b10101011)
	OP_SHL  = Opcode(0b10101100)
	OP_SHR  = Opcode(0b10101101)
)

// opMnemonic is the instruction set table.
var opMnemonic = map[Opcode]string{
	OP_HLT:  "HLT",
	OP_RET:  "RET",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_CALL: "CALL",
	OP_JMP:  "JMP",
	OP_JEQ:  "JEQ",
	OP_JNE:  "JNE",
	OP_NOT:  "NOT",
	OP_LDI:  "LDI",
	OP_ADD:  "ADD",
	OP_SUB:  "SUB",
	OP_MUL:  "MUL",
	OP_DIV:  "DIV",
	OP_MOD:  "MOD",
	OP_CMP:  "CMP",
	OP_AND:  "AND",
	OP_OR:   "OR",
	OP_XOR:  "XOR",
	OP_SHL:  "SHL",
	OP_SHR:  "SHR",
}

// opAlu maps the binary ALU instructions to their ALU operation.
var opAlu = map[Opcode]AluOp{
	OP_ADD: ALU_OP_ADD,
	OP_SUB: ALU_OP_SUB,
	OP_MUL: ALU_OP_MUL,
	OP_DIV: ALU_OP_DIV,
	OP_MOD: ALU_OP_MOD,
	OP_CMP: ALU_OP_CMP,
	OP_AND: ALU_OP_AND,
	OP_OR:  ALU_OP_OR,
	OP_XOR: ALU_OP_XOR,
	OP_SHL: ALU_OP_SHL,
	OP_SHR: ALU_OP_SHR,
}

// LookupOpcode returns the opcode for a mnemonic, ignoring case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	mnemonic = strings.ToUpper(mnemonic)
	for op, name := range opMnemonic {
		if name == mnemonic {
			return op, true
		}
	}
	return
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opMnemonic[op]
	return ok
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op >> 6)
}

// Width returns the total instruction width in bytes.
func (op Opcode) Width() int {
	return 1 + op.Operands()
}

// IsAlu returns true if the opcode is executed by the ALU.
func (op Opcode) IsAlu() bool {
	return (op>>5)&1 == 1
}

// SetsPc returns true if the instruction may assign the program counter.
func (op Opcode) SetsPc() bool {
	return (op>>4)&1 == 1
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	name, ok := opMnemonic[op]
	if !ok {
		return fmt.Sprintf("Opcode(0b%08b)", uint8(op))
	}
	return name
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Address  int      // Address the opcode was fetched from.
	Opcode   Opcode   // Operation.
	Operands [2]uint8 // Operand bytes, Opcode.Operands() of them are valid.
}

// Width returns the instruction width in bytes.
func (inst Instruction) Width() int {
	return inst.Opcode.Width()
}

// Bytes returns the encoded instruction.
func (inst Instruction) Bytes() []byte {
	data := []byte{uint8(inst.Opcode)}
	return append(data, inst.Operands[:inst.Opcode.Operands()]...)
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	switch inst.Opcode {
	case OP_HLT, OP_RET:
		return inst.Opcode.String()
	case OP_LDI:
		return fmt.Sprintf("%v R%d,%d", inst.Opcode, inst.Operands[0], inst.Operands[1])
	}

	switch inst.Opcode.Operands() {
	case 1:
		return fmt.Sprintf("%v R%d", inst.Opcode, inst.Operands[0])
	case 2:
		return fmt.Sprintf("%v R%d,R%d", inst.Opcode, inst.Operands[0], inst.Operands[1])
	}

	return inst.Opcode.String()
}

// Disassemble decodes a byte stream into instructions, starting at address 0.
// Unknown opcodes are rendered as single byte instructions, and a trailing
// truncated instruction is decoded with zero operands.
func Disassemble(data []byte) (insts []Instruction) {
	for addr := 0; addr < len(data); {
		inst := Instruction{Address: addr, Opcode: Opcode(data[addr])}
		width := 1
		if inst.Opcode.Valid() {
			width = inst.Width()
			for n := range inst.Opcode.Operands() {
				if addr+1+n < len(data) {
					inst.Operands[n] = data[addr+1+n]
				}
			}
		}
		insts = append(insts, inst)
		addr += width
	}
	return
}
