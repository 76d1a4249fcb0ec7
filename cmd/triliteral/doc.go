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

// The triliteral command line tool runs triliteral programs with the package
// github.com/ecatmur/triliteral/vm, and converts them between letter tables.
//
// Usage:
//
//	triliteral [flags] program
//
//	-asm
//		  load the program in assembler syntax
//	-dump
//		  dump the storage space to stdout upon exit
//	-list
//		  list the program words with their mnemonics instead of running it
//	-raw
//		  switch the terminal to raw mode while running
//	-recode name
//		  write the program with the letter table name instead of running it
//	-serialize
//		  execute one word at a time across all threads
//	-trace
//		  log every executed word to stderr and print stack traces on failure
//	-width int
//		  maximum line length of recoded programs (default 72)
//
// The letter table of the program is selected by its file extension: .trl for
// Latin, .טרל for Hebrew and .طرل for Arabic.
//
// -recode: the program is written next to the source file, with the extension
// of the target table, and the name of the new file is printed. Words that
// have no equivalent in the target table are reported as errors and no file is
// written.
//
// -raw: stdin is switched to non-canonical mode without echo, so that a
// program reading characters gets them as soon as they are typed. A ^D ends
// the input. Raw mode is only supported on Linux and is silently ignored when
// stdin is not a terminal.
//
// -serialize: by default, threads forked by a program run in parallel and only
// each stack is protected against concurrent access. With this flag, every
// word is executed under a global lock.
//
// The defaults of -trace, -raw, -serialize and -width are read from the
// environment variables TRILITERAL_TRACE, TRILITERAL_RAW,
// TRILITERAL_SERIALIZE and TRILITERAL_WIDTH.
package main
