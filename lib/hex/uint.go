// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hex

import (
	"math/bits"
	"strconv"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// EncodeUint returns the minimal lowercase hex text of v: no leading
// zeros, and "0" for zero.
//
//	EncodeUint[uint8](52) ⇒ "34"
func EncodeUint[T constraints.Unsigned](v T) string {
	return encodeUint("", v, digitsLower)
}

// EncodeUintUpper is EncodeUint with uppercase digits.
//
//	EncodeUintUpper[uint16](520) ⇒ "208"
func EncodeUintUpper[T constraints.Unsigned](v T) string {
	return encodeUint("", v, digitsUpper)
}

// EncodeUintPrefixed is EncodeUint with a "0x" prefix.
//
//	EncodeUintPrefixed[uint32](5_201_314) ⇒ "0x4f5da2"
func EncodeUintPrefixed[T constraints.Unsigned](v T) string {
	return encodeUint(Prefix, v, digitsLower)
}

// EncodeUintPrefixedUpper is EncodeUint with a "0x" prefix and
// uppercase digits.
//
//	EncodeUintPrefixedUpper[uint32](5_201_314) ⇒ "0x4F5DA2"
func EncodeUintPrefixedUpper[T constraints.Unsigned](v T) string {
	return encodeUint(Prefix, v, digitsUpper)
}

// EncodeUintStyle is EncodeUint in the given style.
func EncodeUintStyle[T constraints.Unsigned](v T, style Style) string {
	return encodeUint(style.Prefix(), v, style.digits())
}

func encodeUint[T constraints.Unsigned](prefix string, v T, digits string) string {
	nibbles := 1
	if v != 0 {
		nibbles = (bits.Len64(uint64(v)) + 3) / 4 //nolint:gomnd // 4 bits per nibble
	}
	buf := make([]byte, len(prefix)+nibbles)
	n := copy(buf, prefix)
	for shift := 4 * (nibbles - 1); shift >= 0; shift -= 4 {
		buf[n] = digits[uint8(v>>shift)&0x0f]
		n++
	}
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// DecodeUint parses hex text (with optional prefix, digits in either
// case) as an unsigned integer of type T.  A single "+" sign may follow
// the prefix.  Empty text, text with non-digits, and values that
// overflow T are *IntegerParseErrors.
//
//	DecodeUint[uint32]("0x4F5DA2") ⇒ 5_201_314
func DecodeUint[T constraints.Unsigned, S Text](text S) (T, error) {
	return decodeInteger[T](text)
}

// DecodeInt parses hex text (with optional prefix, digits in either
// case) as a signed integer of type T.  A leading sign comes after the
// prefix, if there is one: "0x-1f".
func DecodeInt[T constraints.Signed, S Text](text S) (T, error) {
	return decodeInteger[T](text)
}

func decodeInteger[T constraints.Integer, S Text](text S) (T, error) {
	str := string(StripPrefix(text))
	if !utf8.ValidString(str) {
		return 0, &TextEncodingError{Offset: invalidUTF8Offset(str)}
	}
	bitSize := int(unsafe.Sizeof(T(0))) * 8 //nolint:gomnd // bits per byte
	if ^T(0) < 0 {
		v, err := strconv.ParseInt(str, 16, bitSize)
		if err != nil {
			return 0, &IntegerParseError{Text: str, Err: err}
		}
		return T(v), nil
	}
	digits := str
	if len(digits) > 1 && digits[0] == '+' {
		digits = digits[1:]
	}
	v, err := strconv.ParseUint(digits, 16, bitSize)
	if err != nil {
		return 0, &IntegerParseError{Text: str, Err: err}
	}
	return T(v), nil
}

func invalidUTF8Offset(str string) int {
	for i := 0; i < len(str); {
		r, size := utf8.DecodeRuneInString(str[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(str)
}
