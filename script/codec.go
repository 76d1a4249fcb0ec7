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

// InvalidWordError is returned when a word contains a symbol sequence that
// matches no letter of the table.
type InvalidWordError struct {
	Word   string
	Offset int // in symbols
	Script string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid %s word %q: no letter at offset %d", e.Script, e.Word, e.Offset)
}

// match returns the longest letter whose key is a prefix of rs.
func (t *Table) match(rs []rune) (*Letter, int) {
	n := t.maxKey
	if n > len(rs) {
		n = len(rs)
	}
	for ; n > 0; n-- {
		if i, ok := t.keys[string(rs[:n])]; ok {
			return &t.Letters[i], n
		}
	}
	return nil, 0
}

// Tokenize splits word into letter clusters, greedily taking the longest
// cluster known to the table at each position. Final letters are only
// recognized as the last cluster.
func (t *Table) Tokenize(word string) ([]*Letter, error) {
	rs := []rune(fold(word))
	for pos, r := range rs {
		if !t.alphabet[r] {
			return nil, &InvalidWordError{word, pos, t.Name}
		}
	}
	rs = append(rs, sentinel)
	var ls []*Letter
	for pos := 0; pos < len(rs)-1; {
		l, n := t.match(rs[pos:])
		if l == nil {
			return nil, &InvalidWordError{word, pos, t.Name}
		}
		ls = append(ls, l)
		pos += n
	}
	return ls, nil
}

// Value returns the numeric value of word: the sum of the values of its
// letter clusters. The empty word is worth 0.
func (t *Table) Value(word string) (int, error) {
	ls, err := t.Tokenize(word)
	if err != nil {
		return 0, err
	}
	var n int
	for _, l := range ls {
		n += l.Value
	}
	return n, nil
}

// Word returns the canonical word for n. Values below 1 yield the empty word.
//
// Letters are picked greedily by decreasing value. A final letter may only be
// picked before any consonant, and the plain form of a letter that has a final
// form may not be the first consonant. The letters are then laid out from the
// end of the word, alternating consonants and vowels, so that the word
// tokenizes back into exactly the picked letters.
func (t *Table) Word(n int) string {
	var vs, cs []*Letter
	for n > 0 {
		l := t.next(n, len(cs) == 0)
		n -= l.Value
		if l.IsVowel() {
			vs = append(vs, l)
		} else {
			cs = append(cs, l)
		}
	}
	return t.arrange(vs, cs)
}

func (t *Table) next(n int, first bool) *Letter {
	for _, i := range t.order {
		l := &t.Letters[i]
		switch {
		case l.Value > n:
		case l.Final && !first:
		case first && !l.Final && !l.IsVowel() && t.finals[string(t.folded[i])]:
		default:
			return l
		}
	}
	// init guarantees a usable letter of value 1
	panic("no letter left to pick")
}

// pool is a multiset of letters, kept in the order they were picked.
type pool struct {
	letters []*Letter
	counts  []int
	total   int
}

func newPool(ls []*Letter) *pool {
	p := new(pool)
	idx := make(map[*Letter]int)
	for _, l := range ls {
		i, ok := idx[l]
		if !ok {
			i = len(p.letters)
			idx[l] = i
			p.letters = append(p.letters, l)
			p.counts = append(p.counts, 0)
		}
		p.counts[i]++
		p.total++
	}
	return p
}

func (t *Table) arrange(vs, cs []*Letter) string {
	var (
		pools = [2]*pool{newPool(cs), newPool(vs)}
		kind  = 0
	)
	if len(cs) == 0 {
		kind = 1
	}
	out, ok := t.place(pools, make([]*Letter, 0, len(vs)+len(cs)), kind)
	if !ok {
		// the table cannot spell this value unambiguously; fall back to a
		// plain interleave.
		out = out[:0]
		for i := 0; i < len(vs) || i < len(cs); i++ {
			if i < len(cs) {
				out = append(out, cs[i])
			}
			if i < len(vs) {
				out = append(out, vs[i])
			}
		}
	}
	var b strings.Builder
	for i := len(out) - 1; i >= 0; i-- {
		b.WriteString(out[i].Symbol)
	}
	return b.String()
}

// place lays out the remaining letters of pools in front of out, which holds
// the letters already placed, last letter of the word first. kind is the
// preferred pool for the next letter: 0 for consonants, 1 for vowels.
func (t *Table) place(pools [2]*pool, out []*Letter, kind int) ([]*Letter, bool) {
	if pools[0].total+pools[1].total == 0 {
		return out, true
	}
	for _, k := range [2]int{kind, 1 - kind} {
		p := pools[k]
		for i, l := range p.letters {
			if p.counts[i] == 0 || !t.fits(l, out) {
				continue
			}
			p.counts[i]--
			p.total--
			if res, ok := t.place(pools, append(out, l), 1-k); ok {
				return res, true
			}
			p.counts[i]++
			p.total++
		}
	}
	return out, false
}

// fits returns true if l placed in front of out would tokenize as l itself.
func (t *Table) fits(l *Letter, out []*Letter) bool {
	rs := append(make([]rune, 0, 2*t.maxKey), t.folded[l.idx]...)
	i := len(out) - 1
	for ; i >= 0 && len(rs) < len(t.folded[l.idx])+t.maxKey; i-- {
		rs = append(rs, t.folded[out[i].idx]...)
	}
	if i < 0 {
		rs = append(rs, sentinel)
	}
	m, _ := t.match(rs)
	return m == l
}
