// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"io"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/array-bytes-ng/lib/hex"
)

func init() {
	rootCommands = append(rootCommands, func() subcommand {
		var style hex.Style
		var prefix string
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "encode [flags] [FILE]",
				Short: "Encode the bytes of FILE (or stdin) as hex text",
				Long: "" +
					"Writes the contents of FILE (or stdin, if FILE is absent or \"-\") " +
					"to stdout as a single line of hexadecimal text.",
				Args: cliutil.WrapPositionalArgs(cobra.MaximumNArgs(1)),
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				dat, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				var out string
				switch {
				case !cmd.Flags().Changed("prefix"):
					out = hex.EncodeStyle(dat, style)
				case style&hex.StyleUpper != 0:
					out = hex.EncodeUpperWithPrefix(prefix, dat)
				default:
					out = hex.EncodeWithPrefix(prefix, dat)
				}
				dlog.Debugf(ctx, "encoded %d bytes as %d characters", len(dat), len(out))
				_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
				return err
			},
		}
		cmd.Flags().Var(&style, "style", "output `style`, one of lower, upper, prefixed, prefixed-upper")
		cmd.Flags().StringVar(&prefix, "prefix", "", "use `str` as the prefix, overriding the prefix implied by --style")
		return cmd
	})
}
