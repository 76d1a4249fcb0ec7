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
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// opFunc implements an opcode. s is the stack named by the root of the word.
type opFunc func(t *Thread, s *Stack) error

var ops [OpcodeCount]opFunc

func init() {
	ops = [OpcodeCount]opFunc{
		OpQuot:  quot,
		OpNquot: nquot,
		OpFork:  fork,
		OpDup:   dup,
		OpDrop:  drop,
		OpSwap:  swap,
		OpRot:   rot,
		OpPick:  pick,
		OpPoke:  poke,
		OpPush:  push,
		OpPull:  pull,
		OpAdd:   binary(func(w, x int) int { return w + x }),
		OpSub:   binary(func(w, x int) int { return w - x }),
		OpMul:   binary(func(w, x int) int { return w * x }),
		OpDiv:   binary(div),
		OpGt:    binary(func(w, x int) int { return b2i(w > x) }),
		OpEq:    binary(func(w, x int) int { return b2i(w == x) }),
		OpNot:   not,
		OpJoin:  join,
		OpMark:  mark,
		OpCall:  call,
		OpSkip:  skip,
		OpHop:   hop,
		OpSplit: split,
		OpSplat: splat,
		OpRint:  rint,
		OpWint:  wint,
		OpRword: rword,
		OpWword: wword,
		OpRchar: rchar,
		OpWchar: wchar,
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func div(w, x int) int {
	if x == 0 {
		return 0
	}
	return w / x
}

// popInt pops a word from s and returns its value.
func (t *Thread) popInt(s *Stack) (int, error) {
	return t.i.value(s.Pop())
}

func (t *Thread) pushInt(s *Stack, n int) {
	s.Push(t.i.word(n))
}

func quot(t *Thread, s *Stack) error {
	f := t.frame()
	// past the end, the empty word is pushed
	w, _ := f.Code.At(f.PC)
	f.PC++
	s.Push(w)
	return nil
}

func nquot(t *Thread, s *Stack) error {
	n, err := t.popInt(s)
	if err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		quot(t, s)
	}
	t.log.Debug("nquot", zap.Int("n", n))
	return nil
}

func fork(t *Thread, s *Stack) error {
	c := t.i.spawn(&Frame{Home: t.frame().Home, Code: s})
	t.pushInt(s, c.ID)
	return nil
}

func join(t *Thread, s *Stack) error {
	id, err := t.popInt(s)
	if err != nil {
		return err
	}
	t.join(id)
	return nil
}

func dup(t *Thread, s *Stack) error {
	s.Push(s.Peek(1))
	return nil
}

func drop(t *Thread, s *Stack) error {
	s.Pop()
	return nil
}

func swap(t *Thread, s *Stack) error {
	q, p := s.Pop(), s.Pop()
	s.Push(q, p)
	return nil
}

func rot(t *Thread, s *Stack) error {
	r, q, p := s.Pop(), s.Pop(), s.Pop()
	s.Push(q, r, p)
	return nil
}

func pick(t *Thread, s *Stack) error {
	w := s.Pop()
	n, err := t.i.value(w)
	if err != nil {
		return err
	}
	if n == 0 {
		s.Push(w)
		return nil
	}
	s.Push(s.Peek(n))
	return nil
}

func poke(t *Thread, s *Stack) error {
	n, err := t.popInt(s)
	if err != nil {
		return err
	}
	s.Set(n, s.Peek(1))
	return nil
}

func push(t *Thread, s *Stack) error {
	s.Push(t.frame().Home.Pop())
	return nil
}

func pull(t *Thread, s *Stack) error {
	t.frame().Home.Push(s.Pop())
	return nil
}

// binary pops w then x and pushes fn(w, x). Negative results are clamped
// to 0.
func binary(fn func(w, x int) int) opFunc {
	return func(t *Thread, s *Stack) error {
		w, err := t.popInt(s)
		if err != nil {
			return err
		}
		x, err := t.popInt(s)
		if err != nil {
			return err
		}
		t.pushInt(s, fn(w, x))
		return nil
	}
}

func not(t *Thread, s *Stack) error {
	n, err := t.popInt(s)
	if err != nil {
		return err
	}
	t.pushInt(s, b2i(n == 0))
	return nil
}

func mark(t *Thread, s *Stack) error {
	t.frame().Home = s
	return nil
}

func call(t *Thread, s *Stack) error {
	t.frames = append(t.frames, &Frame{Home: t.frame().Home, Code: s})
	return nil
}

func skip(t *Thread, s *Stack) error {
	n, err := t.popInt(s)
	if err != nil {
		return err
	}
	f := t.frame()
	f.PC += n
	t.log.Debug("skip", zap.Int("n", n), zap.Int("pc", f.PC))
	return nil
}

func hop(t *Thread, s *Stack) error {
	n, err := t.popInt(s)
	if err != nil {
		return err
	}
	f := t.frame()
	if f.PC -= n; f.PC < 0 {
		f.PC = 0
	}
	t.log.Debug("hop", zap.Int("n", n), zap.Int("pc", f.PC))
	return nil
}

func split(t *Thread, s *Stack) error {
	w := s.Pop()
	var n int
	for _, r := range w {
		s.Push(string(r))
		n++
	}
	t.pushInt(s, n)
	return nil
}

func splat(t *Thread, s *Stack) error {
	n, err := t.popInt(s)
	if err != nil {
		return err
	}
	var b strings.Builder
	if n > 0 {
		for _, w := range s.Cut(n) {
			if r, size := utf8.DecodeRuneInString(w); size > 0 {
				b.WriteRune(r)
			}
		}
	}
	s.Push(b.String())
	return nil
}

func rint(t *Thread, s *Stack) error {
	t.i.ioMu.Lock()
	n, err := t.i.readInt()
	t.i.ioMu.Unlock()
	if err != nil {
		return errors.Wrap(err, "read-int")
	}
	t.pushInt(s, n)
	return nil
}

func wint(t *Thread, s *Stack) error {
	n, err := t.popInt(s)
	if err != nil {
		return err
	}
	t.i.ioMu.Lock()
	defer t.i.ioMu.Unlock()
	return errors.Wrap(t.i.writeString(strconv.Itoa(n)+"\n"), "write-int")
}

func rword(t *Thread, s *Stack) error {
	t.i.ioMu.Lock()
	w, err := t.i.readLine()
	t.i.ioMu.Unlock()
	if err != nil {
		return errors.Wrap(err, "read-word")
	}
	s.Push(w)
	return nil
}

func wword(t *Thread, s *Stack) error {
	w := s.Pop()
	t.i.ioMu.Lock()
	defer t.i.ioMu.Unlock()
	return errors.Wrap(t.i.writeString(w+"\n"), "write-word")
}

func rchar(t *Thread, s *Stack) error {
	t.i.ioMu.Lock()
	r, err := t.i.readRune()
	t.i.ioMu.Unlock()
	if err != nil {
		return errors.Wrap(err, "read-char")
	}
	t.pushInt(s, int(r))
	return nil
}

func wchar(t *Thread, s *Stack) error {
	n, err := t.popInt(s)
	if err != nil {
		return err
	}
	t.i.ioMu.Lock()
	defer t.i.ioMu.Unlock()
	return errors.Wrap(t.i.writeRune(rune(n)), "write-char")
}
