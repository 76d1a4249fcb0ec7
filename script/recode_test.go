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

package script_test

import (
	"testing"

	"github.com/ecatmur/triliteral/script"
	"github.com/pkg/errors"
)

func TestRecode(t *testing.T) {
	data := []struct {
		word     string
		from, to *script.Table
		expected string
	}{
		{"ShT", script.Latin, script.Hebrew, "שט"},
		{"Sh-T!", script.Latin, script.Hebrew, "שט"},
		{"XO", script.Latin, script.Hebrew, "סע"},
		{"AK", script.Latin, script.Hebrew, "אך"},
		{"KA", script.Latin, script.Hebrew, "כא"},
		{"שט", script.Hebrew, script.Latin, "ShT"},
		{"אך", script.Hebrew, script.Arabic, "اث"},
		{"", script.Latin, script.Arabic, ""},
	}
	for _, d := range data {
		w, err := script.Recode(d.word, d.from, d.to)
		if err != nil {
			t.Errorf("Recode(%q, %s, %s): %v", d.word, d.from.Name, d.to.Name, err)
			continue
		}
		if w != d.expected {
			t.Errorf("Recode(%q, %s, %s) = %q, expected %q", d.word, d.from.Name, d.to.Name, w, d.expected)
		}
	}
}

func TestRecodeValue(t *testing.T) {
	for n := 0; n <= 2000; n++ {
		w := script.Hebrew.Word(n)
		a, err := script.Recode(w, script.Hebrew, script.Arabic)
		if err != nil {
			t.Fatalf("Recode(%q): %v", w, err)
		}
		v, err := script.Arabic.Value(a)
		if err != nil {
			t.Fatalf("Value(%q): %v", a, err)
		}
		if v != n {
			t.Errorf("Recode(%q) = %q: value %d, expected %d", w, a, v, n)
		}
		r1, s1 := script.Hebrew.Decompose(w)
		r2, s2 := script.Arabic.Decompose(a)
		if s1 != s2 || len([]rune(r1)) != len([]rune(r2)) {
			t.Errorf("Recode(%q) = %q: decomposes to %q, %d; expected %q, %d", w, a, r2, s2, r1, s1)
		}
	}
}

func TestRecodeFailure(t *testing.T) {
	data := []struct {
		word     string
		from, to *script.Table
	}{
		{"H", script.Latin, script.Hebrew},   // no consonant worth 5
		{"כ", script.Hebrew, script.Latin},   // K would be final
		{"غ", script.Arabic, script.Hebrew},  // no letter worth 1000
		{"ثا", script.Arabic, script.Hebrew}, // 500 only exists as final
	}
	for _, d := range data {
		_, err := script.Recode(d.word, d.from, d.to)
		e, ok := errors.Cause(err).(*script.UnrecodableError)
		if !ok {
			t.Errorf("Recode(%q, %s, %s): expected *UnrecodableError, got %v", d.word, d.from.Name, d.to.Name, err)
			continue
		}
		if e.Target != d.to.Name {
			t.Errorf("Recode(%q): bad target %q", d.word, e.Target)
		}
	}
}
