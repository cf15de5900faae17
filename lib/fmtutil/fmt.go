// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package fmtutil provides helpers for implementing fmt.Formatter.
package fmtutil

import (
	"fmt"
	"strconv"
	"strings"
)

// FmtStateString returns the fmt.Printf string that produced a given
// fmt.State and verb.
func FmtStateString(st fmt.State, verb rune) string {
	width, ok := st.Width()
	if !ok {
		width = -1
	}
	return FmtStateStringWidth(st, verb, width)
}

// FmtStateStringWidth is like FmtStateString, but replaces the width
// with the given one.  A negative width means no width.
func FmtStateStringWidth(st fmt.State, verb rune, width int) string {
	var ret strings.Builder
	ret.WriteByte('%')
	for _, flag := range "-+# 0" {
		if st.Flag(int(flag)) {
			ret.WriteRune(flag)
		}
	}
	if width >= 0 {
		ret.WriteString(strconv.Itoa(width))
	}
	if prec, ok := st.Precision(); ok {
		ret.WriteByte('.')
		if prec > 0 {
			ret.WriteString(strconv.Itoa(prec))
		}
	}
	ret.WriteRune(verb)
	return ret.String()
}

// FormatBytesStringer helps implement fmt.Formatter for []byte or
// [N]byte types that have a custom string representation.  Use it
// like:
//
//	type MyType [16]byte
//
//	func (val MyType) String() string {
//		…
//	}
//
//	func (val MyType) Format(f fmt.State, verb rune) {
//		fmtutil.FormatBytesStringer(val, val[:], f, verb)
//	}
//
// %v, %s, and %q use the String method; %#v prints Go syntax with
// each byte in hex; any other verb formats objBytes the way fmt
// formats a []byte.
func FormatBytesStringer(obj fmt.Stringer, objBytes []byte, f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if !f.Flag('#') {
			FormatBytesStringer(obj, objBytes, f, 's')
			return
		}
		var str strings.Builder
		fmt.Fprintf(&str, "%T{", obj)
		for i, b := range objBytes {
			if i > 0 {
				str.WriteString(", ")
			}
			fmt.Fprintf(&str, "0x%02x", b)
		}
		str.WriteByte('}')
		fmt.Fprintf(f, FmtStateString(f, 's'), str.String())
	case 's', 'q':
		fmt.Fprintf(f, FmtStateString(f, verb), obj.String())
	default:
		fmt.Fprintf(f, FmtStateString(f, verb), objBytes)
	}
}
