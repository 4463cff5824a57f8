// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line represents a line of assembled code with its source location and
// generated bytes.
type Line struct {
	LineNo    int      // Source line number.
	Address   int      // Address of the first generated byte.
	Words     []string // Source words, after expansion.
	Bytes     []byte   // Generated bytes.
	LinkLabel string   // Label resolved at link time.
	LinkIndex int      // Index into Bytes that receives the label address.
}

type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug returns the source line that generated the byte at address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, line := range prog.Lines {
		if address >= line.Address && address < line.Address+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: address - line.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	for _, data := range prog.Bytes() {
		bins = append(bins, data)
	}

	return
}

// Bytes iterates over every generated byte and its address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(address int, data byte) bool) {
		for _, line := range prog.Lines {
			for n, data := range line.Bytes {
				if !yield(line.Address+n, data) {
					return
				}
			}
		}
	}
}

// WriteImage writes the program in the binary-digit text image format,
// one byte per line, annotated with the source of each line.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	for _, line := range prog.Lines {
		for n, data := range line.Bytes {
			if n == 0 {
				_, err = fmt.Fprintf(w, "%08b # %02X: %v\n", data, line.Address, strings.Join(line.Words, " "))
			} else {
				_, err = fmt.Fprintf(w, "%08b\n", data)
			}
			if err != nil {
				return
			}
		}
	}

	return
}
