// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hex

import (
	"unsafe"
)

// EncodedLen returns the length of the hex text for n bytes of data
// following the given prefix.
func EncodedLen(prefix string, n int) int {
	return len(prefix) + 2*n
}

// Encode returns the lowercase hex text of src, with no prefix.
//
//	Encode("Love Jane Forever") ⇒ "4c6f7665204a616e6520466f7265766572"
func Encode[T Text](src T) string {
	return encode("", src, digitsLower)
}

// EncodeUpper returns the uppercase hex text of src, with no prefix.
func EncodeUpper[T Text](src T) string {
	return encode("", src, digitsUpper)
}

// EncodePrefixed returns "0x" followed by the lowercase hex text of
// src.
func EncodePrefixed[T Text](src T) string {
	return encode(Prefix, src, digitsLower)
}

// EncodePrefixedUpper returns "0x" followed by the uppercase hex text
// of src.  The prefix itself stays lowercase.
func EncodePrefixedUpper[T Text](src T) string {
	return encode(Prefix, src, digitsUpper)
}

// EncodeWithPrefix returns prefix followed by the lowercase hex text
// of src.  The prefix is copied verbatim; it need not be "0x".
func EncodeWithPrefix[T Text](prefix string, src T) string {
	return encode(prefix, src, digitsLower)
}

// EncodeUpperWithPrefix returns prefix followed by the uppercase hex
// text of src.
func EncodeUpperWithPrefix[T Text](prefix string, src T) string {
	return encode(prefix, src, digitsUpper)
}

// EncodeStyle returns the hex text of src in the given style.
func EncodeStyle[T Text](src T, style Style) string {
	return encode(style.Prefix(), src, style.digits())
}

// AppendEncode appends the hex text of src in the given style to dst,
// and returns the extended buffer.
func AppendEncode[T Text](dst []byte, style Style, src T) []byte {
	prefix := style.Prefix()
	beg := len(dst)
	end := beg + EncodedLen(prefix, len(src))
	if end > cap(dst) {
		grown := make([]byte, beg, end)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:end]
	fill(dst[beg+copy(dst[beg:], prefix):], src, style.digits())
	return dst
}

// encode allocates exactly EncodedLen bytes, fills every one of them,
// and hands the buffer out as the string; the buffer is never
// referenced again, so it is never mutated after the conversion.
func encode[T Text](prefix string, src T, digits string) string {
	buf := make([]byte, EncodedLen(prefix, len(src)))
	fill(buf[copy(buf, prefix):], src, digits)
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// fill writes the hex digits of src to dst, which must be exactly
// 2*len(src) bytes long.
func fill[T Text](dst []byte, src T, digits string) {
	dst = dst[:2*len(src)]
	for i := 0; i < len(src); i++ {
		dst[2*i] = digits[src[i]>>4]
		dst[2*i+1] = digits[src[i]&0x0f]
	}
}
