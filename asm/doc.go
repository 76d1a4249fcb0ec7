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

// Package asm provides utility functions to load, assemble and disassemble
// triliteral programs.
//
// Parse loads plain programs: words are maximal runs of letters of the
// program's letter table and anything else separates them.
//
// Assemble accepts a superset of plain programs where words can also be
// written as mnemonics or numerals:
//
//	op:ROOT	the shortest word with the given opcode and root, e.g. add:X
//	#n	the canonical word for the decimal number n, e.g. #7
//	( ... )	a comment
//
// Supported opcode mnemonics, by stem:
//
//	stem	asm	description
//	----	---	------------------------------------------------------------------------
//	0	nop	no-op
//	1	quot	push the next word of the code, skipping it
//	2	nquot	pop n, then quot n times
//	3	fork	start a thread running a copy of the stack, push its id
//	4	dup	duplicate the top word
//	5	drop	drop the top word
//	6	swap	swap the top two words
//	7	rot	move the third word to the top
//	8	pick	pop n, push a copy of the n-th word (1 is the top word)
//	9	poke	pop n, copy the top word over the n-th word
//	10	push	pop a word from the home stack and push it
//	11	pull	pop a word and push it to the home stack
//	12	add	pop w and x, push w+x
//	13	sub	pop w and x, push w-x, or 0 if negative
//	14	mul	pop w and x, push w*x
//	15	div	pop w and x, push w/x, or 0 if x is 0
//	16	gt	pop w and x, push 1 if w>x, else 0
//	17	eq	pop w and x, push 1 if w=x, else 0
//	18	not	pop w, push 1 if w=0, else 0
//	19	join	pop a thread id and wait for that thread to terminate
//	20	mark	make the stack the home stack of the current frame
//	21	call	run the stack as code in a new frame
//	22	skip	pop n, skip n words of the code
//	23	hop	pop n, go back n words in the code
//	24	split	pop a word, push each of its symbols, then their count
//	25	splat	pop n, pop n words, push the word made of their first symbols
//	26	rint	read a line of input as a decimal integer and push it
//	27	wint	pop a number and write it in decimal on its own line
//	28	rword	read a line of input and push it as is
//	29	wword	pop a word and write it on its own line
//	30	rchar	read a character and push its code point
//	31	wchar	pop a code point and write the character
//	32-63	op32-op63	reserved, no-op
//
// The stem is written in base 4 with the vowels around the root: the digit
// before the first consonant is the least significant one. So opcodes 4 and
// above need a root of at least one letter, and 16 and above a root of at
// least two.
package asm
