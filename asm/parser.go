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
	"strings"
	"text/scanner"
	"unicode"

	"github.com/ecatmur/triliteral/script"
	"github.com/ecatmur/triliteral/vm"
)

const maxErrors = 10

type parser struct {
	t         *script.Table
	mnemonics bool
	s         scanner.Scanner
	words     []string
	errs      ErrAsm
}

func newParser(t *script.Table, mnemonics bool) *parser {
	return &parser{t: t, mnemonics: mnemonics}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

// isIdentRune accepts letters of the table. In mnemonic mode it also accepts
// any letter, and digits after the first rune, for opcode names like op40.
func (p *parser) isIdentRune(ch rune, i int) bool {
	if p.mnemonics && (unicode.IsLetter(ch) || i > 0 && unicode.IsDigit(ch)) {
		return true
	}
	return p.t.IsLetter(ch)
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]string, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = p.isIdentRune
	p.s.Mode = scanner.ScanIdents
	if p.mnemonics {
		p.s.Mode |= scanner.ScanInts
	}
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		switch {
		case tok == scanner.Ident:
			p.ident()
		case !p.mnemonics:
			// anything that is not a letter separates words
		case tok == '#':
			p.number()
		case tok == '(':
			p.comment()
		case tok == scanner.Int:
			p.error(p.s.Position, "unexpected number "+p.s.TokenText()+", numeral literals start with #")
		case unicode.IsSpace(tok) || unicode.IsPunct(tok) || unicode.IsSymbol(tok):
		default:
			p.error(p.s.Position, "unexpected character "+strconv.QuoteRune(tok))
		}
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.words, nil
}

func (p *parser) ident() {
	pos, s := p.s.Position, p.s.TokenText()
	if p.mnemonics && p.s.Peek() == ':' {
		op, ok := vm.Lookup(s)
		if !ok {
			p.error(pos, "unknown opcode "+s)
			return
		}
		p.s.Next()
		var root string
		if p.isIdentRune(p.s.Peek(), 0) {
			p.s.Scan()
			root = p.s.TokenText()
		}
		w, err := Compose(p.t, op, root)
		if err != nil {
			p.error(pos, err.Error())
			return
		}
		p.words = append(p.words, w)
		return
	}
	for _, r := range s {
		if !p.t.IsLetter(r) {
			p.error(pos, fmt.Sprintf("%q is not a %s word", s, p.t.Name))
			return
		}
	}
	p.words = append(p.words, s)
}

func (p *parser) number() {
	pos := p.s.Position
	if tok := p.s.Scan(); tok != scanner.Int {
		p.error(pos, "# must be followed by a number, got "+p.s.TokenText())
		return
	}
	n, err := strconv.Atoi(p.s.TokenText())
	if err != nil || n < 0 {
		p.error(pos, "bad numeral literal #"+p.s.TokenText())
		return
	}
	p.words = append(p.words, p.t.Word(n))
}

// comment skips tokens up to and including the next closing parenthesis.
func (p *parser) comment() {
	pos := p.s.Position
	for tok := p.s.Scan(); tok != ')'; tok = p.s.Scan() {
		if tok == scanner.EOF {
			p.error(pos, "unterminated comment")
			return
		}
	}
}

// ErrAsm encapsulates errors generated by the assembler.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}
