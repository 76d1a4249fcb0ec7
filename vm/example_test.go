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
	"fmt"
	"os"
	"strings"

	"github.com/ecatmur/triliteral/asm"
	"github.com/ecatmur/triliteral/script"
	"github.com/ecatmur/triliteral/vm"
)

// Shows how to assemble a program and run it.
func ExampleInstance_Run() {
	code := `
		quot:XB #3 quot:XB #4 add:XB	( 3 + 4 on stack XB )
		dup:XB wint:XB					( print a copy )
	`
	prog, err := asm.Assemble("example", strings.NewReader(code), script.Latin)
	if err != nil {
		panic(err)
	}
	i, err := vm.New(script.Latin, prog, vm.Output(os.Stdout))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	i.Dump(os.Stdout)

	// Output:
	// 7
	// XB: Z
}

// Shows how forked threads and join work together.
func ExampleInstance_Run_fork() {
	code := `
		quot:TL quot:Y quot:TL B	( TL holds the code quot:Y B )
		fork:TL join:TL				( run it in a new thread and wait for it )
		quot:Y G
	`
	prog, err := asm.Assemble("example", strings.NewReader(code), script.Latin)
	if err != nil {
		panic(err)
	}
	i, err := vm.New(script.Latin, prog)
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.Stack("Y").Words())

	// Output:
	// [B G]
}
