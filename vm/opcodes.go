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

import (
	"strconv"
	"strings"
)

// Opcode is an opcode slot, selected by the stem of a word.
type Opcode int

// Opcodes. Slots from OpcodeCount/2 up to OpcodeCount are reserved and behave
// like OpNop.
const (
	OpNop Opcode = iota
	OpQuot
	OpNquot
	OpFork
	OpDup
	OpDrop
	OpSwap
	OpRot
	OpPick
	OpPoke
	OpPush
	OpPull
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpGt
	OpEq
	OpNot
	OpJoin
	OpMark
	OpCall
	OpSkip
	OpHop
	OpSplit
	OpSplat
	OpRint
	OpWint
	OpRword
	OpWword
	OpRchar
	OpWchar

	OpcodeCount = 64
)

var opcodes = [...]string{
	"nop",
	"quot",
	"nquot",
	"fork",
	"dup",
	"drop",
	"swap",
	"rot",
	"pick",
	"poke",
	"push",
	"pull",
	"add",
	"sub",
	"mul",
	"div",
	"gt",
	"eq",
	"not",
	"join",
	"mark",
	"call",
	"skip",
	"hop",
	"split",
	"splat",
	"rint",
	"wint",
	"rword",
	"wword",
	"rchar",
	"wchar",
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for i, v := range opcodes {
		opcodeIndex[v] = Opcode(i)
	}
}

// String returns the mnemonic of op. Reserved slots are named op32 to op63.
func (op Opcode) String() string {
	if op >= 0 && int(op) < len(opcodes) {
		return opcodes[op]
	}
	return "op" + strconv.Itoa(int(op))
}

// Lookup returns the opcode with the given mnemonic.
func Lookup(name string) (Opcode, bool) {
	if op, ok := opcodeIndex[name]; ok {
		return op, true
	}
	n, err := strconv.Atoi(strings.TrimPrefix(name, "op"))
	if err == nil && n >= len(opcodes) && n < OpcodeCount && Opcode(n).String() == name {
		return Opcode(n), true
	}
	return 0, false
}
