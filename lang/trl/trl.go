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

// Package trl provides utility functions to load and convert triliteral
// program files.
//
// A program file is written with one of the built-in letter tables, which is
// selected by the file extension: .trl for Latin, .טרל for Hebrew and .طرل for
// Arabic.
package trl

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecatmur/triliteral/asm"
	"github.com/ecatmur/triliteral/internal/textio"
	"github.com/ecatmur/triliteral/script"
	"github.com/pkg/errors"
)

// TableFor returns the letter table for the program file at path.
func TableFor(path string) (*script.Table, error) {
	ext := filepath.Ext(path)
	t, ok := script.ByExt(ext)
	if !ok {
		return nil, errors.Errorf("%s: unknown program file extension %q", path, ext)
	}
	return t, nil
}

func load(path string, parse func(string, io.Reader, *script.Table) ([]string, error)) (*script.Table, []string, error) {
	t, err := TableFor(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	prog, err := parse(path, f, t)
	if err != nil {
		return nil, nil, err
	}
	return t, prog, nil
}

// Open loads the plain program file at path and returns its letter table and
// words. See asm.Parse.
func Open(path string) (*script.Table, []string, error) {
	return load(path, asm.Parse)
}

// Assemble loads a program file written in the assembler dialect. See
// asm.Assemble.
func Assemble(path string) (*script.Table, []string, error) {
	return load(path, asm.Assemble)
}

// ExportPath returns the path of the file that Export writes for the program
// at path and the target table.
func ExportPath(path string, to *script.Table) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + to.Ext
}

// Export recodes the words of program from one letter table to another, and
// writes them to the file ExportPath(path, to), with lines wrapped at width.
// It returns the path of the written file. The file is removed if an error
// occurs.
func Export(path string, program []string, from, to *script.Table, width int) (out string, err error) {
	out = ExportPath(path, to)
	if out == path {
		return "", errors.Errorf("%s: cannot export to itself", path)
	}
	ws := make([]string, len(program))
	for i, w := range program {
		if ws[i], err = script.Recode(w, from, to); err != nil {
			return "", errors.Wrapf(err, "word %d", i)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return "", errors.Wrap(err, "create failed")
	}
	defer func() {
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
		if err != nil {
			os.Remove(out)
			out = ""
		}
	}()
	lw := textio.NewLineWriter(f, width)
	for _, w := range ws {
		if err = lw.WriteWord(w); err != nil {
			return out, err
		}
	}
	return out, lw.Close()
}
