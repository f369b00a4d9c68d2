// Package clog is a small package-global trace logger, adapted from the
// grammar-tool lineage this module descends from: open a file once, and
// let every stage write one line per notable event. It is diagnostic
// only — nothing in the core reads it back.
package clog

import (
	"fmt"
	"io"
	"os"
)

type logger struct {
	out io.WriteCloser
}

var l *logger

// Init opens outputPath for writing, truncating any previous contents.
// Until Init is called, Log is a silent no-op, so callers that never
// want tracing don't need to redirect anything.
func Init(outputPath string) error {
	f, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	l = &logger{out: f}
	return nil
}

// Close releases the underlying file, if one was opened.
func Close() error {
	if l == nil {
		return nil
	}
	return l.out.Close()
}

// GetWriter exposes the trace destination for callers that print
// structured dumps (symbol tables, rule sets) rather than a single
// formatted line.
func GetWriter() io.Writer {
	if l == nil {
		return nil
	}
	return l.out
}

// Log writes one formatted, newline-terminated trace line. It is a
// no-op if Init was never called.
func Log(format string, args ...interface{}) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}
