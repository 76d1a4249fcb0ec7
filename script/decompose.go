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

// RootSize is the maximum number of consonants in a root.
const RootSize = 3

// Decompose splits word into its root and stem.
//
// The root is made of the first RootSize consonant-class symbols of the word,
// in order. The stem is a base-4 number built from the vowel runs found
// before the first consonant (least significant digit), between the first and
// second, and between the second and third (most significant digit). A run
// counts as the digit of its first symbol; a missing run counts as 0.
//
// Decomposition works on single symbols, not on the letter clusters used by
// Value, and never fails: any symbol that is not a vowel of the table counts
// as a consonant.
func (t *Table) Decompose(word string) (root string, stem int) {
	var (
		cs     = make([]rune, 0, RootSize)
		digits [RootSize]int
		inRun  bool
	)
	for _, r := range fold(word) {
		if d, ok := t.vowels[r]; ok {
			if !inRun && len(cs) < RootSize {
				digits[len(cs)] = d
				inRun = true
			}
			continue
		}
		if len(cs) == RootSize {
			break
		}
		cs = append(cs, r)
		inRun = false
	}
	for i := RootSize - 1; i >= 0; i-- {
		stem = stem*4 + digits[i]
	}
	return string(cs), stem
}
