// Copyright (C) 2019-2022  Ambassador Labs
// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: Apache-2.0
//
// Contains code based on:
// https://github.com/datawire/dlib/blob/b09ab2e017e16d261f05fff5b3b860d645e774d4/dlog/logger_logrus.go
// https://github.com/datawire/dlib/blob/b09ab2e017e16d261f05fff5b3b860d645e774d4/dlog/logger_testing.go
// https://github.com/telepresenceio/telepresence/blob/ece94a40b00a90722af36b12e40f91cbecc0550c/pkg/log/formatter.go

package textui

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"git.lukeshu.com/go/typedsync"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/pflag"
)

var logLevelNames = []struct {
	lvl  dlog.LogLevel
	name string
}{
	{dlog.LogLevelError, "error"},
	{dlog.LogLevelWarn, "warn"},
	{dlog.LogLevelInfo, "info"},
	{dlog.LogLevelDebug, "debug"},
	{dlog.LogLevelTrace, "trace"},
}

// LogLevelFlag is a pflag.Value for selecting a dlog.LogLevel by
// name.
type LogLevelFlag struct {
	Level dlog.LogLevel
}

var _ pflag.Value = (*LogLevelFlag)(nil)

// Type implements pflag.Value.
func (lvl *LogLevelFlag) Type() string { return "loglevel" }

// Set implements pflag.Value.
func (lvl *LogLevelFlag) Set(str string) error {
	str = strings.ToLower(str)
	if str == "warning" {
		str = "warn"
	}
	for _, ent := range logLevelNames {
		if ent.name == str {
			lvl.Level = ent.lvl
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %q", str)
}

// String implements pflag.Value.
func (lvl *LogLevelFlag) String() string {
	for _, ent := range logLevelNames {
		if ent.lvl == lvl.Level {
			return ent.name
		}
	}
	panic(fmt.Errorf("invalid log level: %#v", lvl.Level))
}

type logger struct {
	parent *logger
	out    io.Writer
	lvl    dlog.LogLevel

	// only valid if parent is non-nil
	fieldKey string
	fieldVal any
}

var _ dlog.OptimizedLogger = (*logger)(nil)

// NewLogger returns a dlog.Logger that writes one line per message to
// out, dropping messages less severe than lvl.
func NewLogger(out io.Writer, lvl dlog.LogLevel) dlog.Logger {
	return &logger{
		out: out,
		lvl: lvl,
	}
}

// Helper implements dlog.Logger.
func (*logger) Helper() {}

// WithField implements dlog.Logger.
func (l *logger) WithField(key string, value any) dlog.Logger {
	return &logger{
		parent: l,
		out:    l.out,
		lvl:    l.lvl,

		fieldKey: key,
		fieldVal: value,
	}
}

type logWriter struct {
	log *logger
	lvl dlog.LogLevel
}

// Write implements io.Writer.
func (lw logWriter) Write(data []byte) (int, error) {
	lw.log.log(lw.lvl, func(w io.Writer) {
		_, _ = w.Write(data)
	})
	return len(data), nil
}

// StdLogger implements dlog.Logger.
func (l *logger) StdLogger(lvl dlog.LogLevel) *log.Logger {
	return log.New(logWriter{log: l, lvl: lvl}, "", 0)
}

// Log implements dlog.Logger.
func (*logger) Log(dlog.LogLevel, string) {
	panic("should not happen: optimized log methods should be used instead")
}

// UnformattedLog implements dlog.OptimizedLogger.
func (l *logger) UnformattedLog(lvl dlog.LogLevel, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprint(w, args...)
	})
}

// UnformattedLogln implements dlog.OptimizedLogger.
func (l *logger) UnformattedLogln(lvl dlog.LogLevel, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprintln(w, args...)
	})
}

// UnformattedLogf implements dlog.OptimizedLogger.
func (l *logger) UnformattedLogf(lvl dlog.LogLevel, format string, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprintf(w, format, args...)
	})
}

var (
	logBufPool = typedsync.Pool[*bytes.Buffer]{
		New: func() *bytes.Buffer {
			return new(bytes.Buffer)
		},
	}
	logMu      sync.Mutex
	thisModDir string
)

func init() {
	//nolint:dogsled // I can't change the signature of the stdlib.
	_, file, _, _ := runtime.Caller(0)
	thisModDir = filepath.Dir(filepath.Dir(filepath.Dir(file)))
}

const (
	thisModule  = "git.lukeshu.com/array-bytes-ng"
	thisPackage = thisModule + "/lib/textui"

	timeFmt        = "15:04:05.0000"
	maxCallerDepth = 25
)

var levelTags = map[dlog.LogLevel]string{
	dlog.LogLevelError: " ERR",
	dlog.LogLevelWarn:  " WRN",
	dlog.LogLevelInfo:  " INF",
	dlog.LogLevelDebug: " DBG",
	dlog.LogLevelTrace: " TRC",
}

// A line is "TIME LVL early-fields : message : late-fields (from
// file:line)".
func (l *logger) log(lvl dlog.LogLevel, writeMsg func(io.Writer)) {
	if lvl > l.lvl {
		return
	}
	line, _ := logBufPool.Get()
	defer func() {
		line.Reset()
		logBufPool.Put(line)
	}()

	line.Write(time.Now().AppendFormat(line.AvailableBuffer(), timeFmt))
	line.WriteString(levelTags[lvl])

	early, late := l.fields()
	for _, field := range early {
		writeField(line, field.key, field.val)
	}
	line.WriteString(" : ")
	writeMsg(line)
	if len(late) > 0 {
		line.WriteString(" :")
		for _, field := range late {
			writeField(line, field.key, field.val)
		}
	}
	if file, lineNum, ok := caller(); ok {
		if len(late) == 0 {
			line.WriteString(" :")
		}
		fmt.Fprintf(line, " (from %s:%d)", file, lineNum)
	}
	line.WriteByte('\n')

	logMu.Lock()
	defer logMu.Unlock()
	_, _ = l.out.Write(line.Bytes())
}

type logField struct {
	key string
	val any
}

// fields returns the fields attached to l (the most recent value wins
// for a repeated key), split in to those that go before the message
// and those that go after it.
func (l *logger) fields() (early, late []logField) {
	seen := make(map[string]struct{})
	var all []logField
	for f := l; f.parent != nil; f = f.parent {
		if _, dup := seen[f.fieldKey]; dup {
			continue
		}
		seen[f.fieldKey] = struct{}{}
		all = append(all, logField{key: f.fieldKey, val: f.fieldVal})
	}
	sort.Slice(all, func(i, j int) bool {
		iRank, jRank := fieldRank(all[i].key), fieldRank(all[j].key)
		if iRank != jRank {
			return iRank < jRank
		}
		return all[i].key < all[j].key
	})
	split := sort.Search(len(all), func(i int) bool {
		return fieldRank(all[i].key) >= 0
	})
	return all[:split], all[split:]
}

// caller returns the source position of the innermost frame that is in
// this module but outside of this package.
func caller() (file string, line int, ok bool) {
	var pcs [maxCallerDepth]uintptr
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs[:])])
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, thisModule+"/") &&
			!strings.HasPrefix(frame.Function, thisPackage+".") {
			return strings.TrimPrefix(frame.File, thisModDir+"/"), frame.Line, true
		}
		if !more {
			return "", 0, false
		}
	}
}

// Fields with a negative rank are written before the message, lowest
// first; all others are written after it, sorted by name.
var fieldRanks = map[string]int{
	"THREAD": -99, // dgroup

	"hexconv.cmd":   -10,
	"hexconv.input": -9,
}

func fieldRank(key string) int {
	if rank, ok := fieldRanks[key]; ok {
		return rank
	}
	return 1
}

func writeField(w io.Writer, key string, val any) {
	valBuf, _ := logBufPool.Get()
	defer func() {
		valBuf.Reset()
		logBufPool.Put(valBuf)
	}()
	_, _ = printer.Fprint(valBuf, val)

	valStr := valBuf.String()
	if needsQuote(valStr) {
		valStr = fmt.Sprintf("%q", valStr)
	}

	name := key
	switch {
	case name == "THREAD":
		name = "thread"
		switch {
		case valStr == "" || valStr == "/main":
			return
		case strings.HasPrefix(valStr, "/main/"):
			valStr = strings.TrimPrefix(valStr, "/main/")
		default:
			valStr = strings.TrimPrefix(valStr, "/")
		}
	case strings.HasPrefix(name, "hexconv."):
		name = strings.TrimPrefix(name, "hexconv.")
	}

	fmt.Fprintf(w, " %s=%s", name, valStr)
}

func needsQuote(str string) bool {
	if str == "" || strings.HasPrefix(str, `"`) {
		return true
	}
	for _, r := range str {
		if !unicode.IsPrint(r) || r == ' ' {
			return true
		}
	}
	return false
}
