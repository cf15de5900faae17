// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	argparser := newArgparser()
	var stdout, stderr bytes.Buffer
	argparser.SetArgs(args)
	argparser.SetIn(strings.NewReader(stdin))
	argparser.SetOut(&stdout)
	argparser.SetErr(&stderr)
	err := argparser.ExecuteContext(context.Background())
	if stderr.Len() > 0 {
		t.Logf("stderr:\n%s", stderr.String())
	}
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Stdin  string
		Args   []string
		Stdout string
		Err    string
	}
	testcases := map[string]TestCase{
		"encode-stdin":        {Stdin: "Love Jane Forever", Args: []string{"encode"}, Stdout: "4c6f7665204a616e6520466f7265766572\n"},
		"encode-dash":         {Stdin: "hi", Args: []string{"encode", "-"}, Stdout: "6869\n"},
		"encode-empty":        {Stdin: "", Args: []string{"encode"}, Stdout: "\n"},
		"encode-style":        {Stdin: "\xab\xcd", Args: []string{"encode", "--style=prefixed-upper"}, Stdout: "0xABCD\n"},
		"encode-prefix":       {Stdin: "\xab\xcd", Args: []string{"encode", "--prefix=#"}, Stdout: "#abcd\n"},
		"encode-prefix-upper": {Stdin: "\xab\xcd", Args: []string{"encode", "--style=upper", "--prefix=\\x"}, Stdout: "\\xABCD\n"},
		"encode-bad-style":    {Args: []string{"encode", "--style=mixed"}, Err: `invalid style "mixed"`},
		"encode-missing":      {Args: []string{"encode", "/nonexistent/file"}, Err: "no such file or directory"},

		"decode-arg":       {Args: []string{"decode", "0x4c6f7665"}, Stdout: "Love"},
		"decode-stdin":     {Stdin: "  4C6F7665\n", Args: []string{"decode"}, Stdout: "Love"},
		"decode-odd":       {Args: []string{"decode", "123"}, Err: "hex: odd length hex text: 3 characters"},
		"decode-invalid":   {Args: []string{"decode", "0xfg"}, Err: "hex: invalid character 'g' at index 1"},
		"decode-size":      {Args: []string{"decode", "--size=2", "0001"}, Stdout: "\x00\x01"},
		"decode-size-bad":  {Args: []string{"decode", "--size=0", "00"}, Err: "expected 1, got 0"},
		"decode-unchecked": {Args: []string{"decode", "--unchecked", "6869a"}, Stdout: "hi"},
		"decode-size-neg":  {Args: []string{"decode", "--size=-5", "00"}, Err: "invalid --size=-5"},
		"decode-unchecked-size": {
			Args:   []string{"decode", "--unchecked", "--size=3", "6869"},
			Stdout: "hi\x00",
		},
		"decode-lines": {Stdin: "6869\n\n0x6869\n21\n", Args: []string{"decode", "--lines"}, Stdout: "hihi!"},
		"decode-lines-bad": {
			Stdin: "6869\n\nzz\n",
			Args:  []string{"decode", "--lines"},
			Err:   "line 3: hex: invalid character 'z' at index 0",
		},

		"uint-encode":          {Args: []string{"uint", "encode", "5201314"}, Stdout: "4f5da2\n"},
		"uint-encode-zero":     {Args: []string{"uint", "encode", "0"}, Stdout: "0\n"},
		"uint-encode-style":    {Args: []string{"uint", "encode", "--bits=16", "--style=prefixed-upper", "0xbeef"}, Stdout: "0xBEEF\n"},
		"uint-encode-overflow": {Args: []string{"uint", "encode", "--bits=8", "256"}, Err: "value out of range"},
		"uint-encode-bits":     {Args: []string{"uint", "encode", "--bits=12", "1"}, Err: "invalid --bits=12"},
		"uint-decode":          {Args: []string{"uint", "decode", "0x208"}, Stdout: "520\n"},
		"uint-decode-max":      {Args: []string{"uint", "decode", "--bits=32", "FFFFFFFF"}, Stdout: "4294967295\n"},
		"uint-decode-overflow": {Args: []string{"uint", "decode", "--bits=8", "100"}, Err: "value out of range"},
		"uint-decode-signed":   {Args: []string{"uint", "decode", "--bits=8", "--signed", "-80"}, Stdout: "-128\n"},
		"uint-decode-bad":      {Args: []string{"uint", "decode", "xyz"}, Err: `hex: parse integer "xyz"`},

		"check-ok":        {Args: []string{"check", "00", "0xAbCd"}},
		"check-odd":       {Args: []string{"check", "00", "123"}, Err: `"123": hex: odd length hex text: 3 characters`},
		"check-allow-odd": {Args: []string{"check", "--allow-odd", "0x123"}},
		"check-noargs":    {Args: []string{"check"}, Err: "requires at least 1 arg"},

		"dump": {Args: []string{"dump", "6869"}, Stdout: "0x6869"},

		"bad-subcommand": {Args: []string{"frobnicate"}, Err: "frobnicate"},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			stdout, err := runCmd(t, tc.Stdin, tc.Args...)
			if tc.Err != "" {
				assert.ErrorContains(t, err, tc.Err)
				return
			}
			assert.NoError(t, err)
			if tcName == "dump" {
				assert.Contains(t, stdout, "hex.Bytes")
				assert.Contains(t, stdout, tc.Stdout)
				return
			}
			assert.Equal(t, tc.Stdout, stdout)
		})
	}
}

func TestEncodeFile(t *testing.T) {
	t.Parallel()
	filename := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(filename, []byte{0x00, 0x7f, 0x80, 0xff}, 0o644))

	stdout, err := runCmd(t, "", "encode", "--verbosity=debug", filename)
	require.NoError(t, err)
	assert.Equal(t, "007f80ff\n", stdout)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	input := string([]byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x0a})
	encoded, err := runCmd(t, input, "encode", "--style=prefixed")
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef000a\n", encoded)

	decoded, err := runCmd(t, encoded, "decode")
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestDumpJSON(t *testing.T) {
	t.Parallel()
	stdout, err := runCmd(t, "", "dump", "--json", "0xABcd")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "}\n"), stdout)
	assert.Contains(t, stdout, `"0x2"`)
	assert.Contains(t, stdout, `"data_upper"`)
	assert.Contains(t, stdout, `"ABCD"`)
	assert.Contains(t, stdout, `"abcd"`)

	var info dumpInfo
	require.NoError(t, lowmemjson.NewDecoder(strings.NewReader(stdout)).DecodeThenEOF(&info))
	assert.Equal(t, uint64(2), info.Size.Val)
	assert.True(t, info.Prefix)
	assert.Equal(t, []byte{0xab, 0xcd}, info.DataUpper.Val)
	assert.Equal(t, []byte{0xab, 0xcd}, info.Data.Val)
}
