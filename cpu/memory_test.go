package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, addr := range []int{0, 1, 0x7f, MEMORY_SIZE - 1} {
		value, err := mem.Read(addr)
		assert.NoError(err)
		assert.Equal(uint8(0), value)

		err = mem.Write(addr, uint8(addr)^0x5a)
		assert.NoError(err)

		value, err = mem.Read(addr)
		assert.NoError(err)
		assert.Equal(uint8(addr)^0x5a, value)
	}
}

func TestMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, addr := range []int{-1, MEMORY_SIZE, MEMORY_SIZE + 10} {
		_, err := mem.Read(addr)
		assert.Equal(ErrMemoryBounds{Address: addr}, err)
		assert.True(errors.Is(err, ErrMemoryBounds{}))

		err = mem.Write(addr, 1)
		assert.Equal(ErrMemoryBounds{Address: addr}, err)
	}
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	err := mem.Load(0x10, []byte{1, 2, 3})
	assert.NoError(err)
	assert.Equal([]uint8{0, 1, 2, 3, 0}, mem[0x0f:0x14])

	err = mem.Load(MEMORY_SIZE-2, []byte{1, 2, 3})
	assert.Equal(ErrMemoryBounds{Address: MEMORY_SIZE}, err)
	assert.Equal(uint8(0), mem[MEMORY_SIZE-2])

	mem.Reset()
	assert.Equal(Memory{}, *mem)
}
