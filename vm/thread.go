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
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Frame is a call frame.
type Frame struct {
	Home *Stack // target of push and pull
	Code *Stack
	PC   int
}

// Thread is a thread of control. It owns a stack of frames and terminates when
// that stack is empty.
type Thread struct {
	ID     int
	i      *Instance
	log    *zap.Logger
	frames []*Frame
	done   chan struct{}
}

func (i *Instance) newThread(id int, f *Frame) *Thread {
	return &Thread{
		ID:     id,
		i:      i,
		log:    i.log.With(zap.Int("thread", id)),
		frames: []*Frame{f},
		done:   make(chan struct{}),
	}
}

// frame returns the active frame.
func (t *Thread) frame() *Frame {
	return t.frames[len(t.frames)-1]
}

// spawn registers and starts a new thread with f as its only frame.
func (i *Instance) spawn(f *Frame) *Thread {
	t := i.newThread(int(i.nextID.Inc()), f)
	i.mu.Lock()
	i.threads[t.ID] = t
	i.mu.Unlock()
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		i.report(t.run())
	}()
	t.log.Debug("spawn", zap.Int("words", f.Code.Len()))
	return t
}

// join blocks until thread id terminates. It returns immediately if there is
// no such thread.
func (t *Thread) join(id int) {
	if id == t.ID {
		return
	}
	t.i.mu.Lock()
	c := t.i.threads[id]
	t.i.mu.Unlock()
	if c == nil {
		return
	}
	t.log.Debug("join", zap.Int("target", id))
	<-c.done
}

func (t *Thread) exit() {
	close(t.done)
	t.i.mu.Lock()
	if t.i.threads[t.ID] == t {
		delete(t.i.threads, t.ID)
	}
	t.i.mu.Unlock()
	t.log.Debug("exit")
}

// run executes the thread until its frame stack is empty, an error occurs or
// another thread fails.
func (t *Thread) run() (err error) {
	var (
		w  string
		pc int
		op Opcode
	)
	defer func() {
		if e := recover(); e != nil {
			err = &Error{t.ID, pc, w, op, errors.Errorf("%v", e)}
		}
		t.exit()
	}()
	for len(t.frames) > 0 {
		if t.i.failed.Load() {
			return nil
		}
		f := t.frame()
		var ok bool
		pc = f.PC
		if w, ok = f.Code.At(pc); !ok {
			t.frames = t.frames[:len(t.frames)-1]
			continue
		}
		f.PC++
		if op, err = t.step(f, w); err != nil {
			return &Error{t.ID, pc, w, op, err}
		}
	}
	return nil
}
