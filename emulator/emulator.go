// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	LOAD_ADDRESS = 0 // Programs are loaded at the bottom of memory.
)

var _emulator_defines = map[string]string{
	"LOAD_ADDRESS": fmt.Sprintf("%v", LOAD_ADDRESS),
}

// DefaultProgram is booted when neither a Program nor a Rom image is given.
//
//	LDI R0,8
//	PRN R0
//	HLT
var DefaultProgram = []uint8{
	0b10000010, 0b00000000, 0b00001000,
	0b01000111, 0b00000000,
	0b00000001,
}

// Emulator state. CPU + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables instruction tracing.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // PRN output channel.
	Rom  io.Rom  // Program image, used when Program is empty.

	logger *zap.Logger
}

// EmulatorOpt configures a new Emulator.
type EmulatorOpt func(emu *Emulator) *Emulator

// WithLogger sets the logger handed to the CPU.
func WithLogger(l *zap.Logger) EmulatorOpt {
	return func(emu *Emulator) *Emulator {
		emu.logger = l
		return emu
	}
}

// NewEmulator creates a new emulator.
func NewEmulator(opts ...EmulatorOpt) (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
		logger:  zap.L(),
	}

	for _, opt := range opts {
		emu = opt(emu)
	}

	emu.Cpu = cpu.NewCpu(
		cpu.WithLogger(emu.logger),
		cpu.WithOutput(&emu.Tape),
	)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.DefinesConcat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Image returns the bytes that Reset loads into memory.
func (emu *Emulator) Image() []uint8 {
	if emu.Program != nil && len(emu.Program.Lines) != 0 {
		return emu.Program.Binary()
	}

	if len(emu.Rom.Data) != 0 {
		return readImage(&emu.Rom)
	}

	return DefaultProgram
}

// readImage rewinds a source and collects everything it yields.
func readImage(src io.Source) []uint8 {
	src.Rewind()
	return slices.Collect(src.Receive())
}

// Reset the CPU and load the program image into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Reset()

	image := emu.Image()

	err = emu.Cpu.Memory.Load(LOAD_ADDRESS, image)
	if err != nil {
		return
	}

	emu.Cpu.Registers.Pc = LOAD_ADDRESS

	if emu.Verbose {
		emu.logger.Info("loaded", zap.Int("bytes", len(image)))
	}

	return
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Registers.Pc
}

// Instruction returns the instruction at the program counter.
func (emu *Emulator) Instruction() (inst cpu.Instruction, err error) {
	return emu.Cpu.Fetch()
}

// LineNo returns the source line number for the executing instruction,
// or 0 when the program was not assembled.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Pc())
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	pc := emu.Pc()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: pc, LineNo: lineno, Err: err}
		}
	}()

	if emu.Verbose {
		emu.logger.Debug("tick", zap.String("trace", emu.Cpu.Trace()))
	}

	err = emu.Cpu.Tick()
	done = emu.Cpu.Halted()

	return
}

// Run ticks until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
