// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"git.lukeshu.com/array-bytes-ng/lib/hex"
)

func checkBits(bits int) error {
	switch bits {
	case 8, 16, 32, 64:
		return nil
	default:
		return fmt.Errorf("invalid --bits=%d (must be one of 8, 16, 32, 64)", bits)
	}
}

func encodeUint(str string, bits int, style hex.Style) (string, error) {
	val, err := strconv.ParseUint(str, 0, bits)
	if err != nil {
		return "", err
	}
	switch bits {
	case 8:
		return hex.EncodeUintStyle(uint8(val), style), nil
	case 16:
		return hex.EncodeUintStyle(uint16(val), style), nil
	case 32:
		return hex.EncodeUintStyle(uint32(val), style), nil
	default:
		return hex.EncodeUintStyle(val, style), nil
	}
}

func decodeUintAs[T constraints.Unsigned](text string) (string, error) {
	val, err := hex.DecodeUint[T](text)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(val), 10), nil
}

func decodeIntAs[T constraints.Signed](text string) (string, error) {
	val, err := hex.DecodeInt[T](text)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(val), 10), nil
}

func decodeInteger(text string, bits int, signed bool) (string, error) {
	switch {
	case bits == 8 && signed:
		return decodeIntAs[int8](text)
	case bits == 8:
		return decodeUintAs[uint8](text)
	case bits == 16 && signed:
		return decodeIntAs[int16](text)
	case bits == 16:
		return decodeUintAs[uint16](text)
	case bits == 32 && signed:
		return decodeIntAs[int32](text)
	case bits == 32:
		return decodeUintAs[uint32](text)
	case signed:
		return decodeIntAs[int64](text)
	default:
		return decodeUintAs[uint64](text)
	}
}

func init() {
	uintCommands = append(uintCommands, func() subcommand {
		var bits int
		var style hex.Style
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "encode [flags] VALUE",
				Short: "Encode an unsigned integer as minimal-length hex text",
				Long: "" +
					"VALUE is parsed with Go integer-literal syntax, so it may be " +
					"decimal, or have a 0x, 0o, or 0b base prefix.",
				Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := checkBits(bits); err != nil {
					return err
				}
				out, err := encodeUint(args[0], bits, style)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
				return err
			},
		}
		cmd.Flags().IntVar(&bits, "bits", 64, "integer width; one of 8, 16, 32, 64")
		cmd.Flags().Var(&style, "style", "output `style`, one of lower, upper, prefixed, prefixed-upper")
		return cmd
	})
	uintCommands = append(uintCommands, func() subcommand {
		var bits int
		var signed bool
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "decode [flags] TEXT",
				Short: "Decode hex TEXT as an integer, and print it in decimal",
				Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := checkBits(bits); err != nil {
					return err
				}
				out, err := decodeInteger(args[0], bits, signed)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
				return err
			},
		}
		cmd.Flags().IntVar(&bits, "bits", 64, "integer width; one of 8, 16, 32, 64")
		cmd.Flags().BoolVar(&signed, "signed", false, "decode as a signed integer (TEXT may begin with \"-\")")
		return cmd
	})
}
