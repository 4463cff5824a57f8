// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"strings"

	"go.uber.org/zap"

	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_TOP":      fmt.Sprintf("%d", STACK_TOP),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"FLAG_E":         fmt.Sprintf("0b%03b", FLAG_E),
	"FLAG_G":         fmt.Sprintf("0b%03b", FLAG_G),
	"FLAG_L":         fmt.Sprintf("0b%03b", FLAG_L),
}

// Cpu is the simulation context for the LS-8 machine.
type Cpu struct {
	Memory    Memory    // Program, data, and stack memory.
	Registers Registers // Register file.
	Flags     Flags     // Comparison flags.
	State     State     // Current execution state.
	Output    Channel   // Destination of PRN.

	Ticks int // Instructions retired since reset.

	logger *zap.Logger
}

// CpuOpt configures a new Cpu.
type CpuOpt func(cpu *Cpu) *Cpu

// WithLogger sets the logger used for instruction tracing.
func WithLogger(l *zap.Logger) CpuOpt {
	return func(cpu *Cpu) *Cpu {
		cpu.logger = l
		return cpu
	}
}

// WithOutput sets the PRN output channel.
func WithOutput(ch Channel) CpuOpt {
	return func(cpu *Cpu) *Cpu {
		cpu.Output = ch
		return cpu
	}
}

// NewCpu creates a new CPU in the reset state.
func NewCpu(opts ...CpuOpt) (cpu *Cpu) {
	cpu = &Cpu{
		logger: zap.L(),
	}

	for _, opt := range opts {
		cpu = opt(cpu)
	}

	cpu.logger = cpu.logger.Named("cpu")

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears memory, registers, and flags.
// - Places the stack pointer at STACK_TOP.
// - Zeros the tick counter.
// - Rewinds the output channel.
func (cpu *Cpu) Reset() {
	cpu.log().Debug("reset")

	cpu.Memory.Reset()
	cpu.Registers.Reset()
	cpu.Flags = 0
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// log returns the trace logger, which is a no-op for a zero Cpu.
func (cpu *Cpu) log() *zap.Logger {
	if cpu.logger == nil {
		return zap.NewNop()
	}
	return cpu.logger
}

// Halted returns true once the CPU has stopped.
func (cpu *Cpu) Halted() bool {
	return cpu.State == STATE_HALTED
}

// Stack returns the hardware stack of the CPU.
func (cpu *Cpu) Stack() *Stack {
	return &Stack{Memory: &cpu.Memory, Registers: &cpu.Registers}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "sp", "fl", "state",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Registers.Pc)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Registers.Sp)
			if stack := cpu.Stack(); stack.Empty() {
				strval += " (empty)"
			} else {
				strval += fmt.Sprintf(" (depth %d)", stack.Depth())
			}
		case "fl":
			strval = cpu.Flags.String()
		case "state":
			strval = cpu.State.String()
		default:
			val := cpu.Registers.R[byte(reg[1]-'0')]
			strval = fmt.Sprintf("%02X", val)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Trace returns a one line summary of the PC, the bytes at the PC, and the
// general purpose registers.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	pc := cpu.Registers.Pc
	fmt.Fprintf(&sb, "%02X |", pc)
	for n := range 3 {
		value, _ := cpu.Memory.Read(pc + n)
		fmt.Fprintf(&sb, " %02X", value)
	}
	sb.WriteString(" |")
	for _, value := range cpu.Registers.R {
		fmt.Fprintf(&sb, " %02X", value)
	}

	return sb.String()
}

// Fetch reads and decodes the instruction at the program counter.
func (cpu *Cpu) Fetch() (inst Instruction, err error) {
	if cpu.Halted() {
		err = ErrHalted
		return
	}

	pc := cpu.Registers.Pc
	opcode, err := cpu.Memory.Read(pc)
	if err != nil {
		return
	}

	inst = Instruction{Address: pc, Opcode: Opcode(opcode)}
	if !inst.Opcode.Valid() {
		// Execute reports it.
		return
	}

	for n := range inst.Opcode.Operands() {
		inst.Operands[n], err = cpu.Memory.Read(pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	inst, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(inst)
	return
}

// Run ticks the CPU until it halts or faults.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted() {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction.
//
// An unknown opcode or a zero divisor halts the CPU. Memory, stack, and
// register faults leave it running so the caller can choose what to do.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			cpu.log().Warn("fault",
				zap.Int("pc", inst.Address),
				zap.Stringer("inst", inst),
				zap.Error(err))
			err = ErrInstruction{Instruction: inst, Err: err}
		}
	}()

	if cpu.Halted() {
		err = ErrHalted
		return
	}

	if ce := cpu.log().Check(zap.DebugLevel, "execute"); ce != nil {
		ce.Write(zap.Int("pc", inst.Address),
			zap.Stringer("inst", inst),
			zap.String("trace", cpu.Trace()))
	}

	next_pc := inst.Address + inst.Width()
	a := inst.Operands[0]
	b := inst.Operands[1]

	switch inst.Opcode {
	case OP_HLT:
		cpu.State = STATE_HALTED
		next_pc = inst.Address
	case OP_LDI:
		err = cpu.Registers.Set(a, b)
	case OP_PRN:
		var value uint8
		value, err = cpu.Registers.Get(a)
		if err != nil {
			return
		}
		if cpu.Output == nil {
			err = ErrOutputMissing
			return
		}
		err = cpu.Output.Send(value)
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD, OP_CMP,
		OP_AND, OP_OR, OP_XOR, OP_SHL, OP_SHR:
		op, ok := opAlu[inst.Opcode]
		if !ok {
			panic(fmt.Sprintf("opcode %v has no ALU operation", inst.Opcode))
		}
		err = cpu.Alu(op, a, b)
		if errors.Is(err, ErrDivideByZero) {
			cpu.State = STATE_HALTED
		}
	case OP_NOT:
		err = cpu.AluNot(a)
	case OP_PUSH:
		var value uint8
		value, err = cpu.Registers.Get(a)
		if err != nil {
			return
		}
		err = cpu.Stack().Push(value)
	case OP_POP:
		_, err = cpu.Registers.Get(a)
		if err != nil {
			return
		}
		var value uint8
		value, err = cpu.Stack().Pop()
		if err != nil {
			return
		}
		cpu.Registers.R[a] = value
	case OP_CALL:
		var target uint8
		target, err = cpu.Registers.Get(a)
		if err != nil {
			return
		}
		if next_pc >= MEMORY_SIZE {
			err = ErrMemoryBounds{Address: next_pc}
			return
		}
		err = cpu.Stack().Push(uint8(next_pc))
		next_pc = int(target)
	case OP_RET:
		var target uint8
		target, err = cpu.Stack().Pop()
		next_pc = int(target)
	case OP_JMP:
		next_pc, err = cpu.jumpTarget(a, next_pc)
	case OP_JEQ:
		if cpu.Flags.Equal() {
			next_pc, err = cpu.jumpTarget(a, next_pc)
		}
	case OP_JNE:
		if !cpu.Flags.Equal() {
			next_pc, err = cpu.jumpTarget(a, next_pc)
		}
	default:
		cpu.State = STATE_HALTED
		err = ErrOpcodeUnknown{Opcode: uint8(inst.Opcode), Address: inst.Address}
	}

	if err != nil {
		return
	}

	cpu.Registers.Pc = next_pc
	cpu.Ticks++

	return
}

// jumpTarget returns the address held in reg, or fallthrough on error.
func (cpu *Cpu) jumpTarget(reg uint8, fallthrough_pc int) (pc int, err error) {
	target, err := cpu.Registers.Get(reg)
	if err != nil {
		pc = fallthrough_pc
		return
	}

	pc = int(target)
	return
}
