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

package vm_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/ecatmur/triliteral/script"
	"github.com/ecatmur/triliteral/vm"
)

func TestIO(t *testing.T) {
	var out bytes.Buffer
	code := `
		rint:XB wint:XB
		rint:XB wint:XB
		rword:XB wword:XB
		rchar:XB wchar:XB
		rchar:XB
	`
	i := setup(t, code, nil,
		vm.Input(strings.NewReader("42\n -5 \r\nShalom, world\n")),
		vm.Input(strings.NewReader("א")),
		vm.Output(&out))
	// the last pushed input is read first
	if err := i.Run(); err == nil || !strings.Contains(err.Error(), "bad integer") {
		t.Fatalf("expected bad integer error, got %v", err)
	}

	i = setup(t, code, nil,
		vm.Input(strings.NewReader("42\n -5 \r\nShalom, world\nש")),
		vm.Output(&out))
	out.Reset()
	if err := i.Run(); err == nil {
		t.Fatal("expected EOF")
	}
	expected := "42\n0\nShalom, world\nש"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
	checkStacks(t, "io", i, S{"XB": nil})
}

func TestIOValues(t *testing.T) {
	i := setup(t, "rint:XB rchar:XB rword:XB", nil, vm.Input(strings.NewReader("1999\nAlast")))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	checkStacks(t, "io values", i, S{"XB": {script.Latin.Word(1999), script.Latin.Word('A'), "last"}})
}

// writes of an empty stack print the empty word's value
func TestIOEmpty(t *testing.T) {
	var out bytes.Buffer
	i := setup(t, "wint:XB wword:XB wchar:XB", nil, vm.Output(&out))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if expected := "0\n\n\x00"; out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
	checkStacks(t, "io empty", i, S{"XB": nil})
}

// output is flushed after each write
func TestIOFlush(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	i := setup(t, "quot:XB #7 wint:XB", nil, vm.Output(w))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "7\n" {
		t.Errorf("expected \"7\\n\", got %q", out.String())
	}
}
