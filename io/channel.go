// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io provides I/O channel implementations for the LS-8 emulator.
// It includes the output Tape that receives PRN values, and the Rom that
// holds a program image read from the binary-digit text format.
package io

import (
	"iter"
)

// Channel defines the interface for all I/O channels in the LS-8 system.
// Channels operate at the byte level.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single byte to the channel.
	Send(value uint8) error
}

// Source is a channel that can also be read from.
type Source interface {
	Channel
	// Receive returns an iterator that yields bytes from the channel.
	Receive() iter.Seq[uint8]
}
