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

package textio_test

import (
	"bytes"
	"testing"

	"github.com/ecatmur/triliteral/internal/textio"
	"github.com/pkg/errors"
)

func TestLineWriter(t *testing.T) {
	data := []struct {
		width    int
		words    []string
		expected string
	}{
		{10, nil, ""},
		{10, []string{"AX", "G", "AX", "D", "XO"}, "AX G AX D\nXO\n"},
		{0, []string{"AX", "G", "AX", "D", "XO"}, "AX G AX D XO\n"},
		{4, []string{"ThThThTh", "A", "BC"}, "ThThThTh\nA BC\n"},
		{5, []string{"שלום", "אב"}, "שלום\nאב\n"},
	}
	for _, d := range data {
		var b bytes.Buffer
		lw := textio.NewLineWriter(&b, d.width)
		for _, w := range d.words {
			if err := lw.WriteWord(w); err != nil {
				t.Fatal(err)
			}
		}
		if err := lw.Close(); err != nil {
			t.Fatal(err)
		}
		if b.String() != d.expected {
			t.Errorf("width %d: got %q, expected %q", d.width, b.String(), d.expected)
		}
	}
}

type failWriter int

var errFail = errors.New("fail")

func (w *failWriter) Write(p []byte) (int, error) {
	if *w == 0 {
		return 0, errFail
	}
	*w--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	fw := failWriter(1)
	w := textio.NewErrWriter(&fw)
	if _, err := w.WriteString("ok"); err != nil {
		t.Fatal(err)
	}
	w.WriteString("ko")
	if _, err := w.WriteString("ok"); errors.Cause(err) != errFail {
		t.Errorf("expected %v, got %v", errFail, err)
	}
	if errors.Cause(w.Err) != errFail {
		t.Errorf("expected sticky %v, got %v", errFail, w.Err)
	}
}
