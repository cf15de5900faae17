// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"git.lukeshu.com/array-bytes-ng/lib/hex"
	"git.lukeshu.com/array-bytes-ng/lib/jsonutil"
)

type dumpInfo struct {
	Size      jsonutil.Uint[uint64] `json:"size"`
	Prefix    bool                  `json:"prefix"`
	Data      jsonutil.Blob         `json:"data"`
	DataUpper jsonutil.Bytes        `json:"data_upper"`
}

func init() {
	rootCommands = append(rootCommands, func() subcommand {
		var asJSON bool
		cmd := subcommand{
			Command: cobra.Command{
				Use:   "dump [flags] [TEXT]",
				Short: "Decode hex TEXT (or stdin) and describe the result",
				Args:  cliutil.WrapPositionalArgs(cobra.MaximumNArgs(1)),
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := readText(cmd, args)
				if err != nil {
					return err
				}
				dat, err := hex.DecodeTo[hex.Bytes](text)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), dumpInfo{
						Size:      jsonutil.Uint[uint64]{Val: uint64(len(dat)), Style: hex.StylePrefixed},
						Prefix:    hex.HasPrefix(text),
						Data:      jsonutil.Blob{Val: dat},
						DataUpper: jsonutil.Bytes{Val: dat, Style: hex.StyleUpper},
					})
				}
				spew := spew.NewDefaultConfig()
				spew.DisablePointerAddresses = true
				spew.Fdump(cmd.OutOrStdout(), dat)
				return nil
			},
		}
		cmd.Flags().BoolVar(&asJSON, "json", false, "describe the result as JSON")
		return cmd
	})
}
