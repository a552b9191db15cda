// This file is part of paren - https://github.com/PiJoules/paren
//
// Copyright 2024 The paren Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pio holds the output writer shared by the kernel's print
// builtins and the AOT emitter.
package pio

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Writer is the sink behind pr/prn and the emitter's driver text. The
// language has no exception surface, so the print builtins cannot
// report a broken output stream; the emitter writes many short
// directive lines and wants one error check at the end. Writer serves
// both: it latches the first write error and turns every later call
// into a no-op, so callers write freely and ask Err once.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w. If w already is a *Writer it is returned as is,
// preserving any latched error. w must not be nil.
func NewWriter(w io.Writer) *Writer {
	if lw, ok := w.(*Writer); ok {
		return lw
	}
	return &Writer{w: w}
}

// Write implements io.Writer for the kernel's output stream. After the
// first failure it keeps returning the same wrapped error without
// touching the underlying writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.err = errors.Wrap(err, "output write failed")
		return n, w.err
	}
	return n, nil
}

// Line writes one literal line. Used by the emitter for directives
// that contain '%' characters (assembly registers), which must not
// pass through a format string.
func (w *Writer) Line(s string) {
	if w.err != nil {
		return
	}
	io.WriteString(w, s)
	io.WriteString(w, "\n")
}

// Linef writes one formatted line.
func (w *Writer) Linef(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	fmt.Fprintf(w, format, args...)
	io.WriteString(w, "\n")
}

// Err returns the first error seen by Write, or nil.
func (w *Writer) Err() error { return w.err }
