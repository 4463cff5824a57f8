// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the flat address space shared by program, data, and stack.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at address, or ErrMemoryBounds.
func (mem *Memory) Read(address int) (value uint8, err error) {
	if address < 0 || address >= len(mem) {
		err = ErrMemoryBounds{Address: address}
		return
	}

	value = mem[address]
	return
}

// Write stores value at address, or fails with ErrMemoryBounds.
func (mem *Memory) Write(address int, value uint8) (err error) {
	if address < 0 || address >= len(mem) {
		err = ErrMemoryBounds{Address: address}
		return
	}

	mem[address] = value
	return
}

// Load copies data into memory starting at address.
func (mem *Memory) Load(address int, data []byte) (err error) {
	if address < 0 || address+len(data) > len(mem) {
		err = ErrMemoryBounds{Address: address + len(data) - 1}
		return
	}

	copy(mem[address:], data)
	return
}

func (mem *Memory) Reset() {
	clear(mem[:])
}
