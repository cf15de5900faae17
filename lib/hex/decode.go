// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hex

import (
	"git.lukeshu.com/array-bytes-ng/lib/arrays"
)

// Decode decodes hex text to a newly allocated byte slice.
//
// Errors are checked in order: an odd length is an
// *InvalidLengthError, then the first non-hex-digit is an
// *InvalidCharacterError.
//
//	Decode("0x4c6f7665") ⇒ []byte("Love")
//	Decode("") ⇒ []byte{}
func Decode[T Text](text T) ([]byte, error) {
	return DecodeTo[[]byte](text)
}

// DecodeTo is Decode for any byte-slice type.
func DecodeTo[S ~[]byte, T Text](text T) (S, error) {
	text, err := stripAndCheck(text)
	if err != nil {
		return nil, err
	}
	ret := make(S, len(text)/2)
	if err := decode(ret, text); err != nil {
		return nil, err
	}
	return ret, nil
}

// DecodeToArray decodes hex text to a fixed-length array type A, which
// must be a type whose underlying type is [N]byte; any other A panics.
//
// If the text is valid hex but decodes to other than N bytes, a
// *MismatchedLengthError is returned with Expect=N.
//
//	DecodeToArray[[4]byte]("0x01020304") ⇒ [4]byte{1, 2, 3, 4}
func DecodeToArray[A any, T Text](text T) (A, error) {
	var ret A
	text, err := stripAndCheck(text)
	if err != nil {
		return ret, err
	}
	dst := arrays.AsSlice[A, byte](&ret)
	if len(text)/2 != len(dst) {
		if err := validate(text); err != nil {
			return ret, err
		}
		return ret, &MismatchedLengthError{Expect: len(dst), Actual: len(text) / 2}
	}
	if err := decode(dst, text); err != nil {
		var zero A
		return zero, err
	}
	return ret, nil
}

// DecodeInto decodes hex text in to the caller's buffer dst, and
// returns dst.  The text must decode to exactly len(dst) bytes.
//
// Errors are checked in order: odd length, then mismatched length
// (Expect is the decoded length of the text, Actual is len(dst)), then
// invalid characters.  Nothing is written to dst unless the whole text
// is valid.
func DecodeInto[T Text](text T, dst []byte) ([]byte, error) {
	text, err := stripAndCheck(text)
	if err != nil {
		return nil, err
	}
	if n := len(text) / 2; n != len(dst) {
		return nil, &MismatchedLengthError{Expect: n, Actual: len(dst)}
	}
	if err := validate(text); err != nil {
		return nil, err
	}
	decodeUnchecked(dst, text)
	return dst, nil
}

// DecodeUnchecked is Decode for text that the caller already knows to
// be valid hex.  No validation is done: a trailing odd character is
// ignored, and a byte containing a non-hex-digit has an unspecified
// value.  It never panics.
func DecodeUnchecked[T Text](text T) []byte {
	return DecodeToUnchecked[[]byte](text)
}

// DecodeToUnchecked is DecodeUnchecked for any byte-slice type.
func DecodeToUnchecked[S ~[]byte, T Text](text T) S {
	text = StripPrefix(text)
	ret := make(S, len(text)/2)
	decodeUnchecked(ret, text)
	return ret
}

// DecodeToArrayUnchecked is DecodeToArray for text that the caller
// already knows to be valid hex of the right length.  See
// DecodeUnchecked.  If the text is too short, the remaining bytes are
// zero; if it is too long, the excess is ignored.
func DecodeToArrayUnchecked[A any, T Text](text T) A {
	var ret A
	decodeUnchecked(arrays.AsSlice[A, byte](&ret), StripPrefix(text))
	return ret
}

// DecodeIntoUnchecked is DecodeInto for text that the caller already
// knows to be valid hex of the right length.  See DecodeUnchecked.
// Only the first min(len(dst), len(text)/2) bytes of dst are written.
func DecodeIntoUnchecked[T Text](text T, dst []byte) []byte {
	decodeUnchecked(dst, StripPrefix(text))
	return dst
}

// Validate reports whether text is well-formed hex, returning the same
// error that Decode would.
func Validate[T Text](text T) error {
	text, err := stripAndCheck(text)
	if err != nil {
		return err
	}
	return validate(text)
}

// CheckHexBytes returns text as a string if it is a sequence of hex
// digits with an optional prefix (the prefix is kept in the result).
// Unlike Validate, it does not require an even number of digits.
func CheckHexBytes[T Text](text T) (string, error) {
	if err := validate(StripPrefix(text)); err != nil {
		return "", err
	}
	return string(text), nil
}

func stripAndCheck[T Text](text T) (T, error) {
	text = StripPrefix(text)
	if len(text)%2 != 0 {
		return text, &InvalidLengthError{Length: len(text)}
	}
	return text, nil
}

func validate[T Text](text T) error {
	for i := 0; i < len(text); i++ {
		if nibbleTable[text[i]] == invalidNibble {
			return &InvalidCharacterError{Character: text[i], Index: i}
		}
	}
	return nil
}

// decode requires len(text) == 2*len(dst).  On error, dst has been
// partially written.
func decode[T Text](dst []byte, text T) error {
	for i := range dst {
		hi := nibbleTable[text[2*i]]
		if hi == invalidNibble {
			return &InvalidCharacterError{Character: text[2*i], Index: 2 * i}
		}
		lo := nibbleTable[text[2*i+1]]
		if lo == invalidNibble {
			return &InvalidCharacterError{Character: text[2*i+1], Index: 2*i + 1}
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

func decodeUnchecked[T Text](dst []byte, text T) {
	n := min(len(dst), len(text)/2)
	for i := 0; i < n; i++ {
		dst[i] = nibbleTable[text[2*i]]<<4 | nibbleTable[text[2*i+1]]
	}
}
