// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

const (
	REGISTER_COUNT = 8           // General purpose registers.
	STACK_TOP      = MEMORY_SIZE // Initial stack pointer, one past the last cell.
)

// Registers is the register file.
type Registers struct {
	R  [REGISTER_COUNT]uint8 // General purpose registers.
	Pc int                   // Program counter.
	Sp int                   // Stack pointer.
}

func (regs *Registers) Get(index uint8) (value uint8, err error) {
	if int(index) >= len(regs.R) {
		err = ErrRegisterInvalid(index)
		return
	}

	value = regs.R[index]
	return
}

func (regs *Registers) Set(index uint8, value uint8) (err error) {
	if int(index) >= len(regs.R) {
		err = ErrRegisterInvalid(index)
		return
	}

	regs.R[index] = value
	return
}

// Reset clears the registers and places the stack pointer at the top
// of memory.
func (regs *Registers) Reset() {
	clear(regs.R[:])
	regs.Pc = 0
	regs.Sp = STACK_TOP
}

// Flags is the comparison flag register, laid out as 00000LGE.
type Flags uint8

const (
	FLAG_E = Flags(0b001) // Equal
	FLAG_G = Flags(0b010) // Greater-than
	FLAG_L = Flags(0b100) // Less-than
)

func (fl Flags) Equal() bool {
	return fl&FLAG_E != 0
}

func (fl Flags) Greater() bool {
	return fl&FLAG_G != 0
}

func (fl Flags) Less() bool {
	return fl&FLAG_L != 0
}

func (fl Flags) String() string {
	out := []byte("LGE")
	for n, flag := range []Flags{FLAG_L, FLAG_G, FLAG_E} {
		if fl&flag == 0 {
			out[n] = '-'
		}
	}
	return string(out)
}
