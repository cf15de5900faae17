// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Command hexconv converts between raw bytes and hexadecimal text.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/array-bytes-ng/lib/profile"
	"git.lukeshu.com/array-bytes-ng/lib/textui"
)

type subcommand struct {
	cobra.Command
	RunE func(*cobra.Command, []string) error
}

// Each entry returns a fresh subcommand, with its own flag variables.
var rootCommands, uintCommands []func() subcommand

func newArgparser() *cobra.Command {
	logLevelFlag := textui.LogLevelFlag{
		Level: dlog.LogLevelInfo,
	}

	argparser := &cobra.Command{
		Use:   "hexconv {[flags]|SUBCOMMAND}",
		Short: "Convert between bytes and hexadecimal text",

		Args: cliutil.WrapPositionalArgs(cliutil.OnlySubcommands),
		RunE: cliutil.RunSubcommands,

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc will handle it

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().Var(&logLevelFlag, "verbosity", "set the verbosity")

	argparserUint := &cobra.Command{
		Use:   "uint {[flags]|SUBCOMMAND}",
		Short: "Convert between unsigned (or signed) integers and hex text",

		Args: cliutil.WrapPositionalArgs(cliutil.OnlySubcommands),
		RunE: cliutil.RunSubcommands,
	}
	argparser.AddCommand(argparserUint)

	for _, cmdgrp := range []struct {
		parent   *cobra.Command
		children []func() subcommand
	}{
		{argparser, rootCommands},
		{argparserUint, uintCommands},
	} {
		for _, newChild := range cmdgrp.children {
			child := newChild()
			cmd := child.Command
			runE := child.RunE
			cmd.RunE = func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				logger := textui.NewLogger(cmd.ErrOrStderr(), logLevelFlag.Level)
				ctx = dlog.WithLogger(ctx, logger)
				ctx = dlog.WithField(ctx, "hexconv.cmd",
					strings.TrimPrefix(cmd.CommandPath(), argparser.Name()+" "))

				grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{
					EnableSignalHandling: true,
				})
				grp.Go("main", func(ctx context.Context) (err error) {
					defer func() {
						if _err := derror.PanicToError(recover()); _err != nil {
							err = _err
						}
					}()
					cmd.SetContext(ctx)
					return runE(cmd, args)
				})
				return grp.Wait()
			}
			cmdgrp.parent.AddCommand(&cmd)
		}
	}

	return argparser
}

func main() {
	argparser := newArgparser()
	stopProfiling := profile.AddProfileFlags(argparser.PersistentFlags(), "profile.")
	dlog.SetFallbackLogger(textui.NewLogger(os.Stderr, dlog.LogLevelInfo).
		WithField("hexconv.THIS_IS_A_BUG", true))

	err := argparser.ExecuteContext(context.Background())
	if _err := stopProfiling(); _err != nil && err == nil {
		err = _err
	}
	if err != nil {
		_, _ = textui.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
