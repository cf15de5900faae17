// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hex

import (
	"encoding"
	"fmt"

	"git.lukeshu.com/array-bytes-ng/lib/fmtutil"
)

// Bytes is a byte slice that formats, marshals, and unmarshals as
// prefixed hex text.
type Bytes []byte

var (
	_ fmt.Stringer             = Bytes(nil)
	_ fmt.Formatter            = Bytes(nil)
	_ encoding.TextMarshaler   = Bytes(nil)
	_ encoding.TextUnmarshaler = (*Bytes)(nil)
)

func (b Bytes) String() string {
	return EncodePrefixed(b)
}

func (b Bytes) Format(f fmt.State, verb rune) {
	fmtutil.FormatBytesStringer(b, b, f, verb)
}

func (b Bytes) MarshalText() ([]byte, error) {
	return AppendEncode(nil, StylePrefixed, b), nil
}

// UnmarshalText accepts hex text with or without the prefix.
func (b *Bytes) UnmarshalText(text []byte) error {
	dat, err := DecodeTo[Bytes](text)
	if err != nil {
		return err
	}
	*b = dat
	return nil
}
