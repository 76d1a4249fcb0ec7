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

import "go.uber.org/zap"

// step executes word w, fetched from the code of frame f.
func (t *Thread) step(f *Frame, w string) (Opcode, error) {
	root, stem := t.i.table.Decompose(w)
	op := Opcode(stem)
	st := t.i.space.Stack(root)
	// never operate on the code being executed
	aliased := st.Tag() == f.Code.Tag()
	if aliased {
		st = f.Home
	}
	if ce := t.log.Check(zap.DebugLevel, "exec"); ce != nil {
		ce.Write(zap.String("word", w),
			zap.Stringer("op", op),
			zap.String("root", root),
			zap.Bool("home", aliased),
			zap.Strings("stack", st.Words()))
	}
	fn := ops[op]
	if fn == nil {
		return op, nil
	}
	if op != OpJoin {
		t.i.space.Lock()
		defer t.i.space.Unlock()
	}
	t.i.insCount.Inc()
	return op, fn(t, st)
}
