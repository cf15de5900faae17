// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hex_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lukeshu.com/array-bytes-ng/lib/hex"
)

func TestBytesFormat(t *testing.T) {
	t.Parallel()
	b := hex.Bytes{0x01, 0xab}
	assert.Equal(t, "0x01ab", b.String())
	assert.Equal(t, "0x01ab", fmt.Sprint(b))
	assert.Equal(t, "0x01ab", fmt.Sprintf("%v", b))
	assert.Equal(t, `"0x01ab"`, fmt.Sprintf("%q", b))
	assert.Equal(t, "01AB", fmt.Sprintf("%X", b))
	assert.Equal(t, "hex.Bytes{0x01, 0xab}", fmt.Sprintf("%#v", b))
	assert.Equal(t, "0x", hex.Bytes(nil).String())
}

func TestBytesText(t *testing.T) {
	t.Parallel()
	text, err := hex.Bytes("hi").MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "0x6869", string(text))

	var b hex.Bytes
	assert.NoError(t, b.UnmarshalText([]byte("0x6869")))
	assert.Equal(t, hex.Bytes("hi"), b)
	assert.NoError(t, b.UnmarshalText([]byte("ABCD")))
	assert.Equal(t, hex.Bytes{0xab, 0xcd}, b)

	err = b.UnmarshalText([]byte("0xabc"))
	assert.Equal(t, &hex.InvalidLengthError{Length: 3}, err)
	assert.Equal(t, hex.Bytes{0xab, 0xcd}, b)
}
