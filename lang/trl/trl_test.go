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

package trl_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecatmur/triliteral/lang/trl"
	"github.com/ecatmur/triliteral/script"
	"github.com/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestOpenExport(t *testing.T) {
	src := writeFile(t, "prog.trl", "AX G, AX D\nXU\n")
	tb, prog, err := trl.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	if tb != script.Latin {
		t.Fatalf("expected latin table, got %s", tb.Name)
	}
	if strings.Join(prog, " ") != "AX G AX D XU" {
		t.Fatalf("bad program %q", prog)
	}

	out, err := trl.Export(src, prog, tb, script.Hebrew, 8)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out != strings.TrimSuffix(src, ".trl")+".טרל" {
		t.Errorf("bad export path %s", out)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if expected := "אס ג אס\nד סו\n"; string(b) != expected {
		t.Errorf("expected %q, got %q", expected, b)
	}

	tb2, prog2, err := trl.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	if tb2 != script.Hebrew || len(prog2) != len(prog) {
		t.Fatalf("bad reload: %s %q", tb2.Name, prog2)
	}
	for i := range prog {
		v, _ := tb.Value(prog[i])
		v2, _ := tb2.Value(prog2[i])
		if v != v2 {
			t.Errorf("word %d: %q = %d, %q = %d", i, prog[i], v, prog2[i], v2)
		}
	}
}

func TestExport_errors(t *testing.T) {
	src := writeFile(t, "prog.trl", "AX H")
	tb, prog, err := trl.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	_, err = trl.Export(src, prog, tb, script.Hebrew, 72)
	if _, ok := errors.Cause(err).(*script.UnrecodableError); !ok {
		t.Errorf("expected *script.UnrecodableError, got %v", err)
	}
	if _, err = os.Stat(trl.ExportPath(src, script.Hebrew)); !os.IsNotExist(err) {
		t.Errorf("output file left behind: %v", err)
	}
	if _, err = trl.Export(src, prog, tb, script.Latin, 72); err == nil {
		t.Error("export to self succeeded")
	}
}

func TestOpen_errors(t *testing.T) {
	if _, _, err := trl.Open(writeFile(t, "prog.txt", "AX")); err == nil {
		t.Error("unknown extension accepted")
	}
	if _, _, err := trl.Open(filepath.Join(t.TempDir(), "none.trl")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestAssemble(t *testing.T) {
	tb, prog, err := trl.Assemble(writeFile(t, "prog.طرل", "quot:س #3 ( comment )"))
	if err != nil {
		t.Fatal(err)
	}
	if tb != script.Arabic || strings.Join(prog, " ") != "اس ج" {
		t.Errorf("got %s %q", tb.Name, prog)
	}
}
