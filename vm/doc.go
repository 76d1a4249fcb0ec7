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

// Package vm implements the triliteral virtual machine.
//
// A program is a sequence of words. Each word is decomposed by the letter
// table of the program into a root and a stem. The root names a storage stack
// in the Space shared by all threads, and the stem selects one of 64 opcode
// slots (see Opcode), which is then applied to that stack. The same words are
// numbers for the arithmetic opcodes, see script.Table.Value.
//
// Threads are created with the fork opcode and waited for with join. All
// threads share a single Space. Individual stack operations are atomic but
// opcodes are not: two threads working on the same stack without joining
// each other race, and the relative order of their operations is undefined.
// This is a property of the language.
//
// A forked thread runs on the stack fork was applied to, not on a copy. Its
// identifier is then pushed on that same stack, so the child may execute it
// as a word if it reaches the end of its code before the identifier is
// popped. Programs that fork often end the child's code with a skip past the
// end.
//
// NewSerializedSpace returns a Space that runs opcodes one at a time for
// programs that need a deterministic order.
//
// Popping an empty stack yields the empty word, which is the numeral for 0.
// Opcodes never fail on missing operands. Errors only come from words that are
// not valid numerals and from console I/O, and are reported as *Error.
package vm
