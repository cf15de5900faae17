// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package profile

import (
	"io"
	"os"

	"github.com/datawire/dlib/derror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagSet struct {
	shutdown []StopFunc
}

func (fs *flagSet) Stop() error {
	var errs derror.MultiError
	for _, fn := range fs.shutdown {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	fs.shutdown = nil
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type flagValue struct {
	parent *flagSet
	start  startFunc
	curVal string
}

var _ pflag.Value = (*flagValue)(nil)

// String implements pflag.Value.
func (fv *flagValue) String() string { return fv.curVal }

// Set implements pflag.Value.
func (fv *flagValue) Set(filename string) error {
	if filename == "" {
		return nil
	}
	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	stop, err := fv.start(w)
	if err != nil {
		_ = w.Close()
		return err
	}
	fv.curVal = filename
	fv.parent.shutdown = append(fv.parent.shutdown, func() error {
		var errs derror.MultiError
		if err := stop(); err != nil {
			errs = append(errs, err)
		}
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	})
	return nil
}

// Type implements pflag.Value.
func (*flagValue) Type() string { return "filename" }

func named(name string) startFunc {
	return func(w io.Writer) (StopFunc, error) {
		return Profile(w, name)
	}
}

var profileFlags = []struct {
	name  string
	start startFunc
	usage string
}{
	{"cpu", CPU, "Write a CPU profile to the file `cpu.pprof`"},
	{"trace", Trace, "Write a trace (https://pkg.go.dev/runtime/trace) to the file `trace.out`"},
	{ProfileGoroutine, named(ProfileGoroutine), "Write a goroutine profile to the file `goroutine.pprof`"},
	{ProfileThreadCreate, named(ProfileThreadCreate), "Write a threadcreate profile to the file `threadcreate.pprof`"},
	{ProfileHeap, named(ProfileHeap), "Write a heap profile to the file `heap.pprof`"},
	{ProfileAllocs, named(ProfileAllocs), "Write an allocs profile to the file `allocs.pprof`"},
	{ProfileBlock, named(ProfileBlock), "Write a block profile to the file `block.pprof`"},
	{ProfileMutex, named(ProfileMutex), "Write a mutex profile to the file `mutex.pprof`"},
}

// AddProfileFlags adds flags to a pflag.FlagSet to write any (or all)
// of the standard profiles to a file, and returns a "stop" function
// to be called at program shutdown.
func AddProfileFlags(flags *pflag.FlagSet, prefix string) StopFunc {
	root := new(flagSet)
	for _, pf := range profileFlags {
		flags.Var(&flagValue{parent: root, start: pf.start}, prefix+pf.name, pf.usage)
		_ = cobra.MarkFlagFilename(flags, prefix+pf.name)
	}
	return root.Stop
}
