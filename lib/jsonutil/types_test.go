// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package jsonutil_test

import (
	"bytes"
	"strings"
	"testing"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/array-bytes-ng/lib/hex"
	"git.lukeshu.com/array-bytes-ng/lib/jsonutil"
)

func TestBytesJSON(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Input      jsonutil.Bytes
		OutputJSON string
	}
	testcases := map[string]TestCase{
		"empty": {
			Input:      jsonutil.Bytes{Val: []byte{}},
			OutputJSON: `""`,
		},
		"lower": {
			Input:      jsonutil.Bytes{Val: []byte("xyz")},
			OutputJSON: `"78797a"`,
		},
		"upper": {
			Input:      jsonutil.Bytes{Val: []byte{0xab, 0xcd}, Style: hex.StyleUpper},
			OutputJSON: `"ABCD"`,
		},
		"prefixed": {
			Input:      jsonutil.Bytes{Val: []byte{0xab, 0xcd}, Style: hex.StylePrefixed},
			OutputJSON: `"0xabcd"`,
		},
		"prefixed-upper": {
			Input:      jsonutil.Bytes{Val: []byte{0xab, 0xcd}, Style: hex.StylePrefixedUpper},
			OutputJSON: `"0xABCD"`,
		},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()

			var jsonBuf bytes.Buffer
			assert.NoError(t, lowmemjson.NewEncoder(&jsonBuf).Encode(tc.Input))
			assert.Equal(t, tc.OutputJSON, jsonBuf.String())

			var rt jsonutil.Bytes
			assert.NoError(t, lowmemjson.NewDecoder(&jsonBuf).DecodeThenEOF(&rt))
			assert.Equal(t, tc.Input.Val, rt.Val)
		})
	}
}

func TestBytesDecodeJSONErrors(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		InputJSON string
		OutputErr string
	}
	testcases := map[string]TestCase{
		"odd":          {InputJSON: `"abc"`, OutputErr: "odd length hex text: 3 characters"},
		"odd-prefixed": {InputJSON: `"0xabc"`, OutputErr: "odd length hex text: 3 characters"},
		"bad-char":     {InputJSON: `"0xag"`, OutputErr: "invalid character 'g' at index 1"},
		"wide-rune":    {InputJSON: `"ab我"`, OutputErr: "invalid hex digit '我' at index 2"},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			var out jsonutil.Bytes
			err := lowmemjson.NewDecoder(strings.NewReader(tc.InputJSON)).DecodeThenEOF(&out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.OutputErr)
		})
	}
}

func TestArrayJSON(t *testing.T) {
	t.Parallel()
	var jsonBuf bytes.Buffer
	in := jsonutil.Array[[4]byte]{Val: [4]byte{0xde, 0xad, 0xbe, 0xef}, Style: hex.StylePrefixed}
	assert.NoError(t, lowmemjson.NewEncoder(&jsonBuf).Encode(in))
	assert.Equal(t, `"0xdeadbeef"`, jsonBuf.String())

	var rt jsonutil.Array[[4]byte]
	assert.NoError(t, lowmemjson.NewDecoder(&jsonBuf).DecodeThenEOF(&rt))
	assert.Equal(t, in.Val, rt.Val)

	var short jsonutil.Array[[4]byte]
	err := lowmemjson.NewDecoder(strings.NewReader(`"0xdead"`)).DecodeThenEOF(&short)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatched length: expected 4, got 2")
}

func TestUintJSON(t *testing.T) {
	t.Parallel()
	var jsonBuf bytes.Buffer
	in := jsonutil.Uint[uint32]{Val: 5_201_314, Style: hex.StylePrefixedUpper}
	assert.NoError(t, lowmemjson.NewEncoder(&jsonBuf).Encode(in))
	assert.Equal(t, `"0x4F5DA2"`, jsonBuf.String())

	var rt jsonutil.Uint[uint32]
	assert.NoError(t, lowmemjson.NewDecoder(&jsonBuf).DecodeThenEOF(&rt))
	assert.Equal(t, in.Val, rt.Val)

	var overflow jsonutil.Uint[uint8]
	err := lowmemjson.NewDecoder(strings.NewReader(`"100"`)).DecodeThenEOF(&overflow)
	assert.Error(t, err)
}

func TestStructFields(t *testing.T) {
	t.Parallel()
	type Record struct {
		ID    jsonutil.Array[[2]byte] `json:"id"`
		Count jsonutil.Uint[uint16]   `json:"count"`
		Data  jsonutil.Bytes          `json:"data"`
	}
	in := Record{
		ID:    jsonutil.Array[[2]byte]{Val: [2]byte{0x12, 0x34}},
		Count: jsonutil.Uint[uint16]{Val: 520, Style: hex.StylePrefixed},
		Data:  jsonutil.Bytes{Val: []byte("hi"), Style: hex.StyleUpper},
	}
	var jsonBuf bytes.Buffer
	assert.NoError(t, lowmemjson.NewEncoder(&jsonBuf).Encode(in))
	assert.Equal(t, `{"id":"1234","count":"0x208","data":"6869"}`, jsonBuf.String())

	var rt Record
	assert.NoError(t, lowmemjson.NewDecoder(&jsonBuf).DecodeThenEOF(&rt))
	assert.Equal(t, in.ID.Val, rt.ID.Val)
	assert.Equal(t, in.Count.Val, rt.Count.Val)
	assert.Equal(t, in.Data.Val, rt.Data.Val)
}

func TestBlobJSON(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Input      string
		OutputJSON string
	}
	testcases := map[string]TestCase{
		"empty": {
			Input:      "",
			OutputJSON: `""`,
		},
		"short": {
			Input:      "xyz",
			OutputJSON: `"78797a"`,
		},
		"long": {
			Input:      "0123456789abcdefghijklmnopqrstuvwxyz;:.,ABCDEFG",
			OutputJSON: `["303132333435363738396162636465666768696a6b6c6d6e6f707172737475767778797a3b3a2e2c","41424344454647"]`,
		},
		"medium": { // exactly the maximum string length
			Input:      "0123456789abcdefghijklmnopqrstuvwxyz;:.,",
			OutputJSON: `"303132333435363738396162636465666768696a6b6c6d6e6f707172737475767778797a3b3a2e2c"`,
		},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()

			var jsonBuf bytes.Buffer
			assert.NoError(t, lowmemjson.NewEncoder(&jsonBuf).Encode(jsonutil.Blob{Val: []byte(tc.Input)}))
			assert.Equal(t, tc.OutputJSON, jsonBuf.String())

			var rt jsonutil.Blob
			assert.NoError(t, lowmemjson.NewDecoder(&jsonBuf).DecodeThenEOF(&rt))
			assert.Equal(t, tc.Input, string(rt.Val))
		})
	}
}

func TestSplitHexStringOddChunks(t *testing.T) {
	t.Parallel()
	var out jsonutil.Blob
	assert.NoError(t, lowmemjson.NewDecoder(strings.NewReader(`["0x6","869"]`)).DecodeThenEOF(&out))
	assert.Equal(t, "hi", string(out.Val))

	var buf bytes.Buffer
	assert.Error(t, jsonutil.EncodeSplitHexString(&buf, "hi", 1))
}

func FuzzBlobJSON(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("0123456789abcdefghijklmnopqrstuvwxyz;:.,ABCDEFG"))
	f.Fuzz(func(t *testing.T, in []byte) {
		t.Logf("in = %q", in)
		if in == nil {
			in = []byte{}
		}

		var jsonBuf bytes.Buffer
		assert.NoError(t, lowmemjson.NewEncoder(&jsonBuf).Encode(jsonutil.Blob{Val: in}))
		t.Logf("json = %q", jsonBuf.Bytes())

		var out jsonutil.Blob
		assert.NoError(t, lowmemjson.NewDecoder(&jsonBuf).DecodeThenEOF(&out))
		assert.Equal(t, in, out.Val)
	})
}
