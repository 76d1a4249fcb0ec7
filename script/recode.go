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
	"fmt"
	"strings"
)

// UnrecodableError is returned by Recode when the target table has no letter
// equivalent to a letter of the source word.
type UnrecodableError struct {
	Symbol string
	Value  int
	Vowel  int // -1 for consonants
	Target string
}

func (e *UnrecodableError) Error() string {
	kind := "consonant"
	if e.Vowel >= 0 {
		kind = fmt.Sprintf("vowel %d", e.Vowel)
	}
	return fmt.Sprintf("cannot recode %q (value %d, %s) to %s", e.Symbol, e.Value, kind, e.Target)
}

// equivalent returns true if a and b have the same value and the same vowel
// class and digit.
func equivalent(a, b *Letter) bool {
	if a.Value != b.Value || a.IsVowel() != b.IsVowel() {
		return false
	}
	return !a.IsVowel() || *a.Vowel == *b.Vowel
}

// Recode transliterates word from one letter table to another. Symbols that
// are not part of the source alphabet are dropped, then each letter of the
// word is replaced with the first letter of the target table that has the
// same value and vowel digit.
func Recode(word string, from, to *Table) (string, error) {
	var clean []rune
	for _, r := range fold(word) {
		if from.alphabet[r] {
			clean = append(clean, r)
		}
	}
	ls, err := from.Tokenize(string(clean))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, l := range ls {
		last := i == len(ls)-1
		m := to.equivalent(l, last)
		if m == nil {
			v := -1
			if l.IsVowel() {
				v = *l.Vowel
			}
			return "", &UnrecodableError{l.Symbol, l.Value, v, to.Name}
		}
		b.WriteString(m.Symbol)
	}
	return b.String(), nil
}

func (t *Table) equivalent(l *Letter, last bool) *Letter {
	for i := range t.Letters {
		m := &t.Letters[i]
		switch {
		case !equivalent(l, m):
		case m.Final && !last:
		case last && !m.Final && !m.IsVowel() && t.finals[string(t.folded[i])]:
		default:
			return m
		}
	}
	return nil
}
