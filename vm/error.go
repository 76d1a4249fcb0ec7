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

package vm

import "fmt"

// Error is returned by Run when a thread fails. It records where the failure
// occurred.
type Error struct {
	Thread int    // thread id, 0 for the initial thread
	PC     int    // index of Word in the code of the active frame
	Word   string // failing word
	Op     Opcode
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("thread %d: %s (%q at pc %d): %v", e.Thread, e.Op, e.Word, e.PC, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }
