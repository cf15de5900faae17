// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package jsonutil

import (
	"bytes"
	"io"
	"strings"

	"git.lukeshu.com/go/lowmemjson"
	"golang.org/x/exp/constraints"

	"git.lukeshu.com/array-bytes-ng/lib/arrays"
	"git.lukeshu.com/array-bytes-ng/lib/hex"
	"git.lukeshu.com/array-bytes-ng/lib/textui"
)

// Bytes is a byte slice that is a hex string in JSON.  Style only
// affects encoding; decoding accepts any style.
type Bytes struct {
	Val   []byte
	Style hex.Style
}

// Array is a fixed-length byte array that is a hex string in JSON.  A
// must be a type whose underlying type is [N]byte.
type Array[A any] struct {
	Val   A
	Style hex.Style
}

// Uint is an unsigned integer that is a hex string in JSON, written
// with no leading zeros.
type Uint[T constraints.Unsigned] struct {
	Val   T
	Style hex.Style
}

// Blob is a byte slice that is a lowercase hex string in JSON, split
// in to an array of strings if it is long.
type Blob struct {
	Val []byte
}

var (
	_ lowmemjson.Encodable = Bytes{}
	_ lowmemjson.Decodable = (*Bytes)(nil)
	_ lowmemjson.Encodable = Array[[4]byte]{}
	_ lowmemjson.Decodable = (*Array[[4]byte])(nil)
	_ lowmemjson.Encodable = Uint[uint32]{}
	_ lowmemjson.Decodable = (*Uint[uint32])(nil)
	_ lowmemjson.Encodable = Blob{}
	_ lowmemjson.Decodable = (*Blob)(nil)
)

func (o Bytes) EncodeJSON(w io.Writer) error {
	return EncodeHexString(w, o.Val, o.Style)
}

// DecodeJSON implements lowmemjson.Decodable.  Like hex.Decode, the
// result is non-nil even if the string is empty.
func (o *Bytes) DecodeJSON(r io.RuneScanner) error {
	buf := bytes.NewBuffer([]byte{})
	if err := DecodeHexString(r, buf); err != nil {
		return err
	}
	o.Val = buf.Bytes()
	return nil
}

func (o Array[A]) EncodeJSON(w io.Writer) error {
	return EncodeHexString(w, arrays.AsSlice[A, byte](&o.Val), o.Style)
}

func (o *Array[A]) DecodeJSON(r io.RuneScanner) error {
	n := arrays.Len[A, byte]()
	scratchBuf := scratch.Get(n)
	defer scratch.Put(scratchBuf)
	buf := bytes.NewBuffer(scratchBuf[:0])
	if err := DecodeHexString(r, buf); err != nil {
		return err
	}
	val, err := arrays.SliceToArray[A](buf.Bytes())
	if err != nil {
		return err
	}
	o.Val = val
	return nil
}

func (o Uint[T]) EncodeJSON(w io.Writer) error {
	_, err := io.WriteString(w, `"`+hex.EncodeUintStyle(o.Val, o.Style)+`"`)
	return err
}

func (o *Uint[T]) DecodeJSON(r io.RuneScanner) error {
	var str strings.Builder
	if err := lowmemjson.DecodeString(r, &str); err != nil {
		return err
	}
	val, err := hex.DecodeUint[T](str.String())
	if err != nil {
		return err
	}
	o.Val = val
	return nil
}

func (o Blob) EncodeJSON(w io.Writer) error {
	return EncodeSplitHexString(w, o.Val, textui.Tunable(80))
}

func (o *Blob) DecodeJSON(r io.RuneScanner) error {
	buf := bytes.NewBuffer([]byte{})
	if err := DecodeSplitHexString(r, buf); err != nil {
		return err
	}
	o.Val = buf.Bytes()
	return nil
}
