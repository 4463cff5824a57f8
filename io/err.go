// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull    = errors.New(f("channel full"))
	ErrChannelMissing = errors.New(f("channel has no backing stream"))

	// Image errors
	ErrImageByte = errors.New(f("not an 8-bit binary value"))
	ErrImageSize = errors.New(f("image exceeds %d bytes", ROM_LIMIT))
)

// ErrImage indicates the location of a program image syntax error.
type ErrImage struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrImage) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
