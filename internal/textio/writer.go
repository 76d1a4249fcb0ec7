// This file is part of triliteral - https://github.com/ecatmur/triliteral
//
// Copyright 2026 The triliteral Authors
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

// Package textio holds the text output helpers shared by the triliteral
// packages and commands.
package textio

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors. Write will keep returning
// the last error over and over.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes s. See Write.
func (w *ErrWriter) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w, nil}
}

// LineWriter writes space separated words, wrapping lines so that they do not
// exceed a given width. A word longer than the width gets a line of its own.
type LineWriter struct {
	w     *ErrWriter
	width int
	col   int
}

// NewLineWriter returns a LineWriter that wraps lines at width runes. A width
// of 0 or less disables wrapping.
func NewLineWriter(w io.Writer, width int) *LineWriter {
	return &LineWriter{w: NewErrWriter(w), width: width}
}

// WriteWord writes word, preceded by either a space or a line break.
func (lw *LineWriter) WriteWord(word string) error {
	n := utf8.RuneCountInString(word)
	switch {
	case lw.col == 0:
	case lw.width > 0 && lw.col+1+n > lw.width:
		lw.w.WriteString("\n")
		lw.col = 0
	default:
		lw.w.WriteString(" ")
		lw.col++
	}
	lw.w.WriteString(word)
	lw.col += n
	return lw.w.Err
}

// Close terminates the current line, if any. It does not close the underlying
// writer.
func (lw *LineWriter) Close() error {
	if lw.col > 0 {
		lw.w.WriteString("\n")
		lw.col = 0
	}
	return lw.w.Err
}
