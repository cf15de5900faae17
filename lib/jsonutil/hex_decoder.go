// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package jsonutil

import (
	"fmt"
	"io"
	"math"

	"git.lukeshu.com/array-bytes-ng/lib/hex"
)

// InvalidHexRuneError is returned for a rune in a JSON hex string that
// cannot be represented as a single byte, and so cannot be reported as
// a *hex.InvalidCharacterError.
type InvalidHexRuneError struct {
	Rune  rune
	Index int
}

func (e *InvalidHexRuneError) Error() string {
	return fmt.Sprintf("jsonutil: invalid hex digit %q at index %d", e.Rune, e.Index)
}

// hexDecoder is like a hex.Decode, but has a "push" interface rather
// than a "pull" interface.  A leading "0x" on the first string written
// to it is stripped, and indexes in errors are relative to the text
// after that.
type hexDecoder struct {
	dst io.ByteWriter

	pos    int // runes written so far, including any prefix
	offset int // len(hex.Prefix) once a prefix has been seen

	buf   byte
	bufOK bool
}

func (d *hexDecoder) WriteRune(r rune) (int, error) {
	pos := d.pos
	d.pos++
	if pos == 1 && r == rune(hex.Prefix[1]) && d.bufOK && d.buf == 0 {
		// The '0' that we buffered was the start of the prefix.
		d.bufOK = false
		d.offset = len(hex.Prefix)
		return 1, nil
	}
	idx := pos - d.offset

	if r > math.MaxUint8 {
		return 0, &InvalidHexRuneError{Rune: r, Index: idx}
	}
	v, ok := hex.DecodeDigit(byte(r))
	if !ok {
		return 0, &hex.InvalidCharacterError{Character: byte(r), Index: idx}
	}

	if !d.bufOK {
		d.buf = v
		d.bufOK = true
		return 1, nil
	}
	d.bufOK = false
	return 1, d.dst.WriteByte(d.buf<<4 | v)
}

func (d *hexDecoder) Close() error {
	if d.bufOK {
		return &hex.InvalidLengthError{Length: d.pos - d.offset}
	}
	return nil
}
