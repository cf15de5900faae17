// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"fmt"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/array-bytes-ng/lib/containers"
	"git.lukeshu.com/array-bytes-ng/lib/hex"
	"git.lukeshu.com/array-bytes-ng/lib/textui"
)

type decodeResult struct {
	Dat []byte
	Err error
}

type decoder struct {
	size      int
	unchecked bool
}

func (d decoder) check() error {
	if d.size < -1 {
		return fmt.Errorf("invalid --size=%d (must not be negative)", d.size)
	}
	return nil
}

func (d decoder) decode(text []byte) ([]byte, error) {
	switch {
	case d.size >= 0 && d.unchecked:
		return hex.DecodeIntoUnchecked(text, make([]byte, d.size)), nil
	case d.size >= 0:
		return hex.DecodeInto(text, make([]byte, d.size))
	case d.unchecked:
		return hex.DecodeUnchecked(text), nil
	default:
		return hex.Decode(text)
	}
}

func init() {
	rootCommands = append(rootCommands, func() subcommand {
		d := decoder{size: -1}
		var lines bool
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "decode [flags] [TEXT]",
				Short: "Decode hex TEXT (or stdin) to raw bytes",
				Long: "" +
					"Decodes TEXT (or the contents of stdin, if TEXT is absent) and " +
					"writes the resulting bytes to stdout.  The text may have a \"0x\" " +
					"prefix.\n" +
					"\n" +
					"With --lines, each line of input is decoded separately and the " +
					"results are concatenated; blank lines are skipped.",
				Args: cliutil.WrapPositionalArgs(cobra.MaximumNArgs(1)),
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				if err := d.check(); err != nil {
					return err
				}
				text, err := readText(cmd, args)
				if err != nil {
					return err
				}
				if !lines {
					dat, err := d.decode(text)
					if err != nil {
						return err
					}
					_, err = cmd.OutOrStdout().Write(dat)
					return err
				}

				cache := containers.NewLRUCache[string, decodeResult](textui.Tunable(256))
				var out bytes.Buffer
				for i, line := range bytes.Split(text, []byte("\n")) {
					line = bytes.TrimSpace(line)
					if len(line) == 0 {
						continue
					}
					res := cache.GetOrElse(string(line), func() decodeResult {
						dat, err := d.decode(line)
						return decodeResult{Dat: dat, Err: err}
					})
					if res.Err != nil {
						return fmt.Errorf("line %d: %w", i+1, res.Err)
					}
					out.Write(res.Dat)
				}
				dlog.Debugf(ctx, "decoded %d distinct lines", cache.Len())
				_, err = out.WriteTo(cmd.OutOrStdout())
				return err
			},
		}
		cmd.Flags().IntVar(&d.size, "size", -1, "require the text to decode to exactly `N` bytes")
		cmd.Flags().BoolVar(&d.unchecked, "unchecked", false, "skip validation; invalid digits decode to garbage and a trailing odd digit is dropped")
		cmd.Flags().BoolVar(&lines, "lines", false, "decode each line of input separately")
		return cmd
	})
}
