// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("halted"))
	ErrDivideByZero   = errors.New(f("divide by zero"))
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrStackUnderflow = errors.New(f("stack underflow"))
	ErrOutputMissing  = errors.New(f("output channel missing"))

	// Instruction decode errors
	ErrOpcodeAlu  = errors.New(f("alu"))
	ErrOpcodeArg1 = errors.New(f("arg1"))
	ErrOpcodeArg2 = errors.New(f("arg2"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrProgramTooLarge    = errors.New(f("program exceeds memory"))
)

// ErrOpcodeUnknown is raised when the byte at the program counter is not a
// known opcode. It is fatal to the hosting process.
type ErrOpcodeUnknown struct {
	Opcode  uint8
	Address int
}

func (err ErrOpcodeUnknown) Error() string {
	return f("unknown instruction 0b%08b at address %d", err.Opcode, err.Address)
}

func (err ErrOpcodeUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrOpcodeUnknown)
	return
}

// ErrMemoryBounds is raised by any memory or stack access outside of
// the address space.
type ErrMemoryBounds struct {
	Address int
}

func (err ErrMemoryBounds) Error() string {
	return f("address %d out of bounds", err.Address)
}

func (err ErrMemoryBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrMemoryBounds)
	return
}

// ErrRegisterInvalid is raised when an operand names a register outside R0-R7.
type ErrRegisterInvalid uint8

func (err ErrRegisterInvalid) Error() string {
	return f("register %d invalid", uint8(err))
}

func (err ErrRegisterInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterInvalid)
	return
}

// ErrInstruction wraps a fault with the instruction that raised it.
type ErrInstruction struct {
	Instruction Instruction
	Err         error
}

func (err ErrInstruction) Error() string {
	return f("%02x: %v: %v", err.Instruction.Address, err.Instruction, err.Err)
}

func (err ErrInstruction) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a byte value", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
