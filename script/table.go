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

package script

import (
	"embed"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// sentinel conceptually follows the last letter of every word. Final letters
// are keyed with it appended, so they can only match at the end of a word.
const sentinel = '_'

// Letter is a letter table entry: a cluster of one or more symbols and its
// numeric value.
type Letter struct {
	Symbol string `yaml:"sym"`
	Value  int    `yaml:"value"`
	// Vowel is the base-4 digit of vowel-class letters, nil for consonants.
	Vowel *int `yaml:"vowel,omitempty"`
	// Final letters only score when they end a word.
	Final bool `yaml:"final,omitempty"`

	idx int
}

// IsVowel returns true for vowel-class letters.
func (l *Letter) IsVowel() bool { return l.Vowel != nil }

func (l *Letter) String() string {
	if l.Final {
		return l.Symbol + string(sentinel)
	}
	return l.Symbol
}

// Table is a letter table, also called a script.
//
// Tables are immutable once loaded and safe for concurrent use.
type Table struct {
	Name    string   `yaml:"name"`
	Ext     string   `yaml:"ext"`
	Letters []Letter `yaml:"letters"`

	keys     map[string]int // folded key -> index in Letters
	folded   [][]rune       // folded symbol of each letter
	vowels   map[rune]int
	alphabet map[rune]bool
	finals   map[string]bool // folded symbols that have a final form
	order    []int           // by decreasing value, then declaration order
	maxKey   int
}

// fold returns the canonical form of s used for table lookups. Casers are not
// safe for concurrent use, so each call gets its own.
func fold(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Parse decodes a YAML letter table.
func Parse(r io.Reader) (*Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, errors.Wrap(err, "letter table decode failed")
	}
	if err := t.init(); err != nil {
		return nil, errors.Wrapf(err, "letter table %q", t.Name)
	}
	return &t, nil
}

func (t *Table) init() error {
	if t.Name == "" {
		return errors.New("missing name")
	}
	t.keys = make(map[string]int, len(t.Letters))
	t.folded = make([][]rune, len(t.Letters))
	t.vowels = make(map[rune]int)
	t.alphabet = make(map[rune]bool)
	t.finals = make(map[string]bool)
	t.order = make([]int, len(t.Letters))
	for i := range t.Letters {
		l := &t.Letters[i]
		l.idx = i
		t.order[i] = i
		sym := fold(l.Symbol)
		switch {
		case sym == "":
			return errors.Errorf("letter %d: empty symbol", i)
		case strings.ContainsRune(sym, sentinel):
			return errors.Errorf("letter %q: symbol contains %q", l.Symbol, sentinel)
		case l.Value <= 0:
			return errors.Errorf("letter %q: value must be positive", l.Symbol)
		}
		if l.IsVowel() {
			if *l.Vowel < 0 || *l.Vowel > 3 {
				return errors.Errorf("letter %q: vowel digit %d out of range", l.Symbol, *l.Vowel)
			}
			if utf8.RuneCountInString(sym) != 1 || l.Final {
				return errors.Errorf("letter %q: vowels must be single plain symbols", l.Symbol)
			}
			r, _ := utf8.DecodeRuneInString(sym)
			if _, ok := t.vowels[r]; !ok {
				t.vowels[r] = *l.Vowel
			}
		}
		key := sym
		if l.Final {
			key += string(sentinel)
			t.finals[sym] = true
		}
		if j, ok := t.keys[key]; ok {
			return errors.Errorf("letter %q: duplicate of letter %d", l, j)
		}
		t.keys[key] = i
		t.folded[i] = []rune(sym)
		for _, r := range sym {
			t.alphabet[r] = true
		}
		if n := utf8.RuneCountInString(key); n > t.maxKey {
			t.maxKey = n
		}
	}
	sort.SliceStable(t.order, func(i, j int) bool {
		return t.Letters[t.order[i]].Value > t.Letters[t.order[j]].Value
	})
	for i := range t.Letters {
		l := &t.Letters[i]
		if l.Value == 1 && !l.Final && (l.IsVowel() || !t.finals[fold(l.Symbol)]) {
			return nil
		}
	}
	return errors.New("no letter of value 1 usable anywhere in a word")
}

// IsLetter returns true if r is used by any symbol of the table.
func (t *Table) IsLetter(r rune) bool {
	for _, f := range fold(string(r)) {
		if !t.alphabet[f] {
			return false
		}
	}
	return true
}

// IsVowel returns true if r is a vowel-class symbol.
func (t *Table) IsVowel(r rune) bool {
	_, ok := t.vowel(r)
	return ok
}

func (t *Table) vowel(r rune) (int, bool) {
	f, _ := utf8.DecodeRuneInString(fold(string(r)))
	d, ok := t.vowels[f]
	return d, ok
}

// VowelSymbol returns the first declared vowel symbol for digit d. Digit 0
// is always available as the empty symbol.
func (t *Table) VowelSymbol(d int) (string, bool) {
	if d == 0 {
		return "", true
	}
	for i := range t.Letters {
		if l := &t.Letters[i]; l.IsVowel() && *l.Vowel == d {
			return l.Symbol, true
		}
	}
	return "", false
}

//go:embed tables/*.yaml
var tableFS embed.FS

// Built-in letter tables.
var (
	Latin  *Table
	Hebrew *Table
	Arabic *Table
)

var builtins []*Table

func init() {
	Latin = mustLoad("latin")
	Hebrew = mustLoad("hebrew")
	Arabic = mustLoad("arabic")
	builtins = []*Table{Latin, Hebrew, Arabic}
}

func mustLoad(name string) *Table {
	f, err := tableFS.Open("tables/" + name + ".yaml")
	if err != nil {
		panic(err)
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		panic(err)
	}
	return t
}

// Tables returns the built-in letter tables.
func Tables() []*Table {
	return append([]*Table(nil), builtins...)
}

// ByName returns the built-in table with the given name.
func ByName(name string) (*Table, bool) {
	for _, t := range builtins {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// ByExt returns the built-in table reserved for program files with the given
// extension, leading dot included.
func ByExt(ext string) (*Table, bool) {
	for _, t := range builtins {
		if t.Ext == ext {
			return t, true
		}
	}
	return nil, false
}
