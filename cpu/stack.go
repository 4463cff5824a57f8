// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Stack is the hardware stack: a view over memory and the stack pointer
// register. It grows downward from STACK_TOP.
type Stack struct {
	Memory    *Memory
	Registers *Registers
}

// Push stores a byte below the stack pointer, or fails with
// ErrStackOverflow when the stack reaches address 0.
func (s *Stack) Push(value uint8) (err error) {
	if s.Full() {
		err = ErrStackOverflow
		return
	}

	sp := s.Registers.Sp - 1
	err = s.Memory.Write(sp, value)
	if err != nil {
		return
	}

	s.Registers.Sp = sp
	return
}

// Pop removes the top byte, or fails with ErrStackUnderflow when empty.
func (s *Stack) Pop() (value uint8, err error) {
	value, err = s.Peek()
	if err != nil {
		return
	}

	s.Registers.Sp++
	return
}

// Peek returns the top byte without removing it.
func (s *Stack) Peek() (value uint8, err error) {
	if s.Empty() {
		err = ErrStackUnderflow
		return
	}

	return s.Memory.Read(s.Registers.Sp)
}

// Empty is true when the stack pointer is at STACK_TOP.
func (s *Stack) Empty() bool {
	return s.Registers.Sp >= STACK_TOP
}

func (s *Stack) Full() bool {
	return s.Registers.Sp <= 0
}

// Depth returns the number of bytes on the stack.
func (s *Stack) Depth() int {
	return STACK_TOP - s.Registers.Sp
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.Registers.Sp = STACK_TOP
}
