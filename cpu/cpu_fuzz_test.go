package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

func FuzzExecute(f *testing.F) {
	for op := range opMnemonic {
		f.Add(uint8(op), uint8(0), uint8(1), uint8(0x12), uint8(0x34), uint8(FLAG_E))
		f.Add(uint8(op), uint8(1), uint8(0), uint8(0xff), uint8(0), uint8(FLAG_L))
	}
	f.Add(uint8(0xff), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8, r0 uint8, r1 uint8, flags uint8) {
		assert := assert.New(t)

		const base = 0x40

		output := &bytes.Buffer{}
		cpu := NewCpu(WithOutput(&io.Tape{Output: output}))
		cpu.Registers.R[0] = r0
		cpu.Registers.R[1] = r1
		cpu.Registers.R[2] = 0x80
		cpu.Flags = Flags(flags & 0b111)
		cpu.Registers.Pc = base
		cpu.Memory[base] = opcode
		cpu.Memory[base+1] = a
		cpu.Memory[base+2] = b
		assert.NoError(cpu.Stack().Push(0x22))

		sp := cpu.Registers.Sp
		op := Opcode(opcode)

		err := cpu.Tick()

		state := cpu.String()

		assert.GreaterOrEqual(cpu.Registers.Sp, 0, state)
		assert.LessOrEqual(cpu.Registers.Sp, STACK_TOP, state)

		if !op.Valid() {
			assert.ErrorIs(err, ErrOpcodeUnknown{}, state)
			assert.True(cpu.Halted(), state)
			assert.Equal(base, cpu.Registers.Pc, state)
			return
		}

		if err != nil {
			// Faults never retire the instruction.
			assert.Equal(base, cpu.Registers.Pc, state)
			assert.Equal(0, cpu.Ticks, state)
			if errors.Is(err, ErrDivideByZero) {
				assert.True(cpu.Halted(), state)
			} else {
				assert.False(cpu.Halted(), state)
			}
			return
		}

		assert.Equal(1, cpu.Ticks, state)

		switch op {
		case OP_HLT:
			assert.True(cpu.Halted(), state)
			assert.Equal(base, cpu.Registers.Pc, state)
		case OP_CMP:
			set := 0
			for _, flag := range []Flags{FLAG_E, FLAG_G, FLAG_L} {
				if cpu.Flags&flag != 0 {
					set++
				}
			}
			assert.Equal(1, set, state)
		case OP_PUSH, OP_CALL:
			assert.Equal(sp-1, cpu.Registers.Sp, state)
		case OP_POP, OP_RET:
			assert.Equal(sp+1, cpu.Registers.Sp, state)
		case OP_PRN:
			assert.NotEmpty(output.String(), state)
		}

		if !op.SetsPc() && op != OP_HLT {
			assert.Equal(base+op.Width(), cpu.Registers.Pc, state)
		}
		if op != OP_PUSH && op != OP_POP && op != OP_CALL && op != OP_RET {
			assert.Equal(sp, cpu.Registers.Sp, state)
		}
	})
}
