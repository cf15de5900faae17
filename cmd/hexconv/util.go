// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"git.lukeshu.com/array-bytes-ng/lib/textui"
)

type progressReader struct {
	ctx            context.Context //nolint:containedctx // For detecting shutdown from methods
	progress       textui.Portion[int64]
	progressWriter *textui.Progress[textui.Portion[int64]]
	inner          io.Reader
}

func newProgressReader(ctx context.Context, r io.Reader, size int64) *progressReader {
	return &progressReader{
		ctx: ctx,
		progress: textui.Portion[int64]{
			D: size,
		},
		progressWriter: textui.NewProgress[textui.Portion[int64]](ctx, dlog.LogLevelInfo, textui.Tunable(1*time.Second)),
		inner:          r,
	}
}

func (pr *progressReader) Read(p []byte) (int, error) {
	if err := pr.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := pr.inner.Read(p)
	pr.progress.N += int64(n)
	pr.progressWriter.Set(pr.progress)
	return n, err
}

func (pr *progressReader) Close() error {
	pr.progressWriter.Done()
	return nil
}

// readInput reads all of the file named by the optional positional
// argument, or stdin if the argument is absent or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	ctx := cmd.Context()
	if len(args) == 0 || args[0] == "-" {
		dlog.Debug(ctx, "reading stdin...")
		return io.ReadAll(cmd.InOrStdin())
	}
	filename := args[0]
	ctx = dlog.WithField(ctx, "hexconv.input", filename)

	fh, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = fh.Close()
	}()
	fi, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	dlog.Debugf(ctx, "reading %v bytes...", fi.Size())
	pr := newProgressReader(ctx, fh, fi.Size())
	defer func() {
		_ = pr.Close()
	}()
	return io.ReadAll(pr)
}

// readText returns the text given as the optional positional
// argument, or the whitespace-trimmed contents of stdin if there is no
// argument.
func readText(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	dat, err := readInput(cmd, nil)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(dat), nil
}

func writeJSON(w io.Writer, obj any) (err error) {
	buffer := bufio.NewWriter(w)
	defer func() {
		if _err := buffer.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	return lowmemjson.Encode(&lowmemjson.ReEncoder{
		Out: buffer,

		Indent:                "\t",
		ForceTrailingNewlines: true,
	}, obj)
}
