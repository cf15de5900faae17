// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package profile implements a uniform interface for getting
// profiling information from the Go runtime.
package profile

import (
	"io"
	"runtime/pprof"
	"runtime/trace"
)

// StopFunc finishes writing a profile; it is called at shutdown.
type StopFunc = func() error

type startFunc = func(io.Writer) (StopFunc, error)

// CPU arranges to write a CPU profile to the given Writer, and
// returns a function to be called on shutdown.
func CPU(w io.Writer) (StopFunc, error) {
	if err := pprof.StartCPUProfile(w); err != nil {
		return nil, err
	}
	return func() error {
		pprof.StopCPUProfile()
		return nil
	}, nil
}

// Trace arranges to write a trace (https://pkg.go.dev/runtime/trace)
// to the given Writer, and returns a function to be called on
// shutdown.
func Trace(w io.Writer) (StopFunc, error) {
	if err := trace.Start(w); err != nil {
		return nil, err
	}
	return func() error {
		trace.Stop()
		return nil
	}, nil
}

// Profile arranges to write the named profile (see
// runtime/pprof.Lookup) to the given Writer at shutdown.  A name that
// does not exist at shutdown writes nothing.
func Profile(w io.Writer, name string) (StopFunc, error) {
	return func() error {
		if prof := pprof.Lookup(name); prof != nil {
			return prof.WriteTo(w, 0)
		}
		return nil
	}, nil
}

// The Go runtime's built-in named profiles; to be passed to Profile.
const (
	ProfileGoroutine    = "goroutine"
	ProfileThreadCreate = "threadcreate"
	ProfileHeap         = "heap"
	ProfileAllocs       = "allocs"
	ProfileBlock        = "block"
	ProfileMutex        = "mutex"
)

var (
	_ startFunc = CPU
	_ startFunc = Trace
)
