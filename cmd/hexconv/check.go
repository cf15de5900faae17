// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"

	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/array-bytes-ng/lib/hex"
	"git.lukeshu.com/array-bytes-ng/lib/textui"
)

func init() {
	rootCommands = append(rootCommands, func() subcommand {
		var allowOdd bool
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "check [flags] TEXT...",
				Short: "Check that each TEXT is well-formed hex",
				Args:  cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				var errs derror.MultiError
				for _, arg := range args {
					var err error
					if allowOdd {
						_, err = hex.CheckHexBytes(arg)
					} else {
						err = hex.Validate(arg)
					}
					if err != nil {
						errs = append(errs, fmt.Errorf("%q: %w", arg, err))
						continue
					}
					dlog.Debugf(ctx, "%q: ok", arg)
				}
				dlog.Infof(ctx, "%v", textui.Portion[int]{N: len(args) - len(errs), D: len(args)})
				if len(errs) > 0 {
					return errs
				}
				return nil
			},
		}
		cmd.Flags().BoolVar(&allowOdd, "allow-odd", false, "accept text with an odd number of digits")
		return cmd
	})
}
