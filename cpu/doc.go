// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements the processor and assembler for the LS-8 system.
//
// The CPU consists of 256 bytes of memory shared by program, data and stack,
// eight 8-bit general-purpose registers (R0-R7), a program counter, a
// downward-growing stack pointer, an ALU and a three-bit comparison flag
// register (L, G, E). Instructions are one to three bytes long; the top two
// bits of the opcode give the number of operand bytes that follow it.
//
// The assembler provides a mnemonic assembly language for the LS-8
// instruction set, supporting macros, labels, equates, and compile-time
// expression evaluation.
package cpu
