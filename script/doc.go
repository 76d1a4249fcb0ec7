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

// Package script implements the letter tables of the triliteral language and
// the operations built on them.
//
// A letter table maps clusters of one or more symbols to positive values.
// Some letters are vowels and also carry a base-4 digit. Some others have a
// final form, worth more, which only counts as the last letter of a word.
//
// Every word is at the same time a number, given by Table.Value, and an
// instruction, given by Table.Decompose: its consonants name a storage stack
// (the root) and its vowels select an opcode (the stem). Table.Word goes
// the other way and returns the canonical word for a number.
//
// Three tables are built in: Latin, Hebrew and Arabic. Programs select one
// of them through their file extension (see ByExt).
package script
