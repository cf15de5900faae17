// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package jsonutil provides utilities for implementing the interfaces
// consumed by the "git.lukeshu.com/go/lowmemjson" package, for values
// that are represented in JSON as hex strings.
package jsonutil

import (
	"fmt"
	"io"
	"unicode"

	"git.lukeshu.com/go/lowmemjson"

	"git.lukeshu.com/array-bytes-ng/lib/containers"
	"git.lukeshu.com/array-bytes-ng/lib/hex"
)

var scratch containers.SlicePool[byte]

// EncodeHexString writes str to w as a JSON string of hex digits in
// the given style.
func EncodeHexString[T hex.Text](w io.Writer, str T, style hex.Style) error {
	buf := scratch.Get(hex.EncodedLen(style.Prefix(), len(str)) + 2)
	defer scratch.Put(buf)
	buf = buf[:0]
	buf = append(buf, '"')
	buf = hex.AppendEncode(buf, style, str)
	buf = append(buf, '"')
	_, err := w.Write(buf)
	return err
}

// DecodeHexString reads a JSON string of hex digits (with an optional
// "0x" prefix) from r, and writes the decoded bytes to dst.
func DecodeHexString(r io.RuneScanner, dst io.ByteWriter) error {
	dec := &hexDecoder{dst: dst}
	if err := lowmemjson.DecodeString(r, dec); err != nil {
		return err
	}
	return dec.Close()
}

// EncodeSplitHexString is like EncodeHexString (in StyleLower), but if
// the encoded string would be longer than maxStrLen, it instead writes
// a JSON array of strings, each no longer than maxStrLen.
func EncodeSplitHexString[T hex.Text](w io.Writer, str T, maxStrLen int) error {
	if maxStrLen < 2 {
		return fmt.Errorf("jsonutil: split hex string: maxStrLen must be at least 2, got %d", maxStrLen)
	}
	if len(str)*2 <= maxStrLen {
		return EncodeHexString(w, str, hex.StyleLower)
	}
	var buf [1]byte
	buf[0] = '['
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	chunkLen := maxStrLen / 2
	for i := 0; i < len(str); i += chunkLen {
		if i > 0 {
			buf[0] = ','
			if _, err := w.Write(buf[:]); err != nil {
				return err
			}
		}
		end := min(i+chunkLen, len(str))
		if err := EncodeHexString(w, str[i:end], hex.StyleLower); err != nil {
			return err
		}
	}
	buf[0] = ']'
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	return nil
}

// DecodeSplitHexString reads either a JSON hex string or a JSON array
// of hex strings from r; see EncodeSplitHexString.  The strings of an
// array are concatenated before decoding, so a byte may be split
// across two strings.
func DecodeSplitHexString(r io.RuneScanner, dst io.ByteWriter) error {
	c, err := peekRune(r)
	if err != nil {
		return err
	}
	if c != '[' {
		return DecodeHexString(r, dst)
	}
	dec := &hexDecoder{dst: dst}
	if err := lowmemjson.DecodeArray(r, func(r io.RuneScanner) error {
		return lowmemjson.DecodeString(r, dec)
	}); err != nil {
		return err
	}
	return dec.Close()
}

func peekRune(r io.RuneScanner) (rune, error) {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(c) {
			return c, r.UnreadRune()
		}
	}
}
