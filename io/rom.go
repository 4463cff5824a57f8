// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

const ROM_LIMIT = 256 // Largest image that fits in memory.

// Rom holds a program image.
type Rom struct {
	Data []uint8
}

var _ Source = (*Rom)(nil)

// Rewind is a no-op; Receive always starts at the first byte.
func (rc *Rom) Rewind() {
}

func (rc *Rom) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		for _, data := range rc.Data {
			if !yield(data) {
				return
			}
		}
	}
}

func (rc *Rom) Send(value uint8) error {
	return ErrChannelFull
}

// Load replaces the ROM contents with an image in the text format:
// one byte per line written as binary digits, '#' starts a comment,
// and blank lines are skipped.
func (rc *Rom) Load(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var data []uint8
	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		line, _, _ := strings.Cut(text, "#")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		value, perr := strconv.ParseUint(line, 2, 8)
		if perr != nil {
			err = &ErrImage{LineNo: lineno, Line: text, Err: ErrImageByte}
			return
		}

		if len(data) == ROM_LIMIT {
			err = &ErrImage{LineNo: lineno, Line: text, Err: ErrImageSize}
			return
		}

		data = append(data, uint8(value))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rc.Data = data
	return
}

// Save writes the ROM contents in the text image format.
func (rc *Rom) Save(output io.Writer) (err error) {
	for _, data := range rc.Data {
		_, err = fmt.Fprintf(output, "%08b\n", data)
		if err != nil {
			return
		}
	}

	return
}
