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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/ecatmur/triliteral/internal/textio"
	"github.com/ecatmur/triliteral/script"
	"github.com/ecatmur/triliteral/vm"
	"github.com/pkg/errors"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader, t *script.Table) ([]string, error) {
	return newParser(t, true).Parse(name, r)
}

// Parse splits a plain program into words: maximal runs of letters of the
// given table, case insensitive. Any other character separates words.
//
// Errors are only returned for invalid UTF-8 input, as an ErrAsm.
func Parse(name string, r io.Reader, t *script.Table) ([]string, error) {
	return newParser(t, false).Parse(name, r)
}

// Compose returns the shortest word that decomposes into the given opcode and
// root. Vowel runs are spelled with the first vowel of the table that has the
// required digit.
func Compose(t *script.Table, op vm.Opcode, root string) (string, error) {
	if op < 0 || op >= vm.OpcodeCount {
		return "", errors.Errorf("opcode %d out of range", op)
	}
	n := utf8.RuneCountInString(root)
	if n > script.RootSize {
		return "", errors.Errorf("root %q longer than %d letters", root, script.RootSize)
	}
	for _, r := range root {
		if !t.IsLetter(r) || t.IsVowel(r) {
			return "", errors.Errorf("root %q: %q is not a %s consonant", root, r, t.Name)
		}
	}
	stem := int(op)
	digits := [script.RootSize]int{stem % 4, stem / 4 % 4, stem / 16}
	for k := n + 1; k < script.RootSize; k++ {
		if digits[k] != 0 {
			return "", errors.Errorf("%s cannot have a root of %d letters", op, n)
		}
	}
	var w []byte
	cs := []rune(root)
	for k := 0; k < script.RootSize && k <= n; k++ {
		v, ok := t.VowelSymbol(digits[k])
		if !ok {
			return "", errors.Errorf("%s has no vowel for digit %d", t.Name, digits[k])
		}
		w = append(w, v...)
		if k < n {
			w = utf8.AppendRune(w, cs[k])
		}
	}
	return string(w), nil
}

// Disassemble returns the mnemonic of word: the name of its opcode and its
// root, separated by a colon.
func Disassemble(t *script.Table, word string) string {
	root, stem := t.Decompose(word)
	return vm.Opcode(stem).String() + ":" + root
}

// DisassembleAll writes a disassembly of all words in the given slice to the
// specified io.Writer: index, word, mnemonic and numeral value, one word per
// line. It will return any write error.
func DisassembleAll(t *script.Table, words []string, w io.Writer) error {
	ew := textio.NewErrWriter(w)
	for pc, word := range words {
		v := "?"
		if n, err := t.Value(word); err == nil {
			v = strconv.Itoa(n)
		}
		fmt.Fprintf(ew, "% 6d\t%-12s\t%-12s\t%s\n", pc, word, Disassemble(t, word), v)
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
