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

package script_test

import (
	"fmt"

	"github.com/ecatmur/triliteral/script"
)

func ExampleTable_Word() {
	for _, n := range []int{7, 69, 309, 1999} {
		w := script.Latin.Word(n)
		v, _ := script.Latin.Value(w)
		fmt.Println(n, w, v)
	}
	// Output:
	// 7 Z 7
	// 69 ST 69
	// 309 ShT 309
	// 1999 TTsRThThTs 1999
}

func ExampleTable_Decompose() {
	root, stem := script.Latin.Decompose("UBIGOD")
	fmt.Println(root, stem)
	// Output:
	// BGD 59
}
