// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hex

import (
	"fmt"

	"git.lukeshu.com/array-bytes-ng/lib/arrays"
)

// InvalidLengthError is returned when the hex text (after stripping
// any prefix) has an odd number of characters.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("hex: odd length hex text: %d characters", e.Length)
}

// InvalidCharacterError is returned for the first byte of the hex text
// that is not a hex digit.  Index is relative to the text after the
// prefix has been stripped.
//
// Character is a single byte, even if that byte is part of a
// multi-byte UTF-8 sequence.
type InvalidCharacterError struct {
	Character byte
	Index     int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("hex: invalid character %q at index %d", rune(e.Character), e.Index)
}

// MismatchedLengthError is returned when the decoded length does not
// match the length of the destination.
//
// When decoding in to a caller-provided buffer, Expect is the decoded
// length of the text and Actual is the length of the buffer.  When
// decoding to an array, Expect is the length of the array and Actual is
// the decoded length of the text.
type MismatchedLengthError = arrays.MismatchedLengthError

// TextEncodingError is returned when text that is to be decoded as an
// integer is not valid UTF-8.  Offset is the byte offset of the first
// invalid sequence, relative to the stripped text.
type TextEncodingError struct {
	Offset int
}

func (e *TextEncodingError) Error() string {
	return fmt.Sprintf("hex: invalid UTF-8 at offset %d", e.Offset)
}

// IntegerParseError is returned when text is not a valid hex integer
// of the requested width.
type IntegerParseError struct {
	Text string
	Err  error
}

func (e *IntegerParseError) Error() string {
	return fmt.Sprintf("hex: parse integer %q: %v", e.Text, e.Err)
}

func (e *IntegerParseError) Unwrap() error { return e.Err }
