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

package main

import (
	"strconv"
	"testing"
)

func TestEnvOr(t *testing.T) {
	if n := envOr(strconv.Atoi, "TRILITERAL_TEST_UNSET", 72); n != 72 {
		t.Errorf("unset: got %d, expected the default", n)
	}
	t.Setenv("TRILITERAL_TEST_WIDTH", "40")
	if n := envOr(strconv.Atoi, "TRILITERAL_TEST_WIDTH", 72); n != 40 {
		t.Errorf("got %d, expected 40", n)
	}
	t.Setenv("TRILITERAL_TEST_TRACE", "true")
	if !envOr(strconv.ParseBool, "TRILITERAL_TEST_TRACE", false) {
		t.Error("got false, expected true")
	}
	// set but empty is not missing
	t.Setenv("TRILITERAL_TEST_EMPTY", "")
	if s := envOr(func(s string) (string, error) { return s, nil }, "TRILITERAL_TEST_EMPTY", "x"); s != "" {
		t.Errorf("got %q, expected the empty value", s)
	}
}
