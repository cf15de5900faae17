// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package hex converts between raw bytes and hexadecimal text.
//
// Unlike encoding/hex, it understands an optional "0x" prefix on
// input, can emit uppercase and/or prefixed output, decodes directly
// in to fixed-length arrays and caller-provided buffers, and decodes
// hex text in to integers.
//
// Everything that accepts text accepts either a string or a []byte
// (see Text).  Input may have a leading lowercase "0x", which is
// stripped before decoding ("0X" is not a prefix, and is rejected as
// an invalid character).  Digits may be either case, and may be mixed
// case.  Error positions are always reported relative to the text
// with the prefix already stripped.
package hex

// Text is the set of types that hex text (or the bytes to encode) may
// be passed as.
type Text interface {
	~string | ~[]byte
}

// Prefix is the prefix that may appear on hex text.
const Prefix = "0x"

const (
	digitsLower = "0123456789abcdef"
	digitsUpper = "0123456789ABCDEF"

	invalidNibble = 0xff
)

// nibbleTable maps each byte to its value as a hex digit, or to
// invalidNibble.
var nibbleTable = buildNibbleTable()

func buildNibbleTable() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalidNibble
	}
	for i := byte(0); i < 10; i++ {
		table['0'+i] = i
	}
	//nolint:gomnd // Hex conversion.
	for i := byte(0); i < 6; i++ {
		table['a'+i] = 10 + i
		table['A'+i] = 10 + i
	}
	return table
}

// DecodeDigit returns the value of the hex digit c.
func DecodeDigit(c byte) (byte, bool) {
	v := nibbleTable[c]
	return v, v != invalidNibble
}

// HasPrefix reports whether text begins with Prefix.
func HasPrefix[T Text](text T) bool {
	return len(text) >= len(Prefix) && text[0] == Prefix[0] && text[1] == Prefix[1]
}

// StripPrefix returns text without its leading Prefix, if it has one.
func StripPrefix[T Text](text T) T {
	if HasPrefix(text) {
		return text[len(Prefix):]
	}
	return text
}
