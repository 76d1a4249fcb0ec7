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
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/ecatmur/triliteral/internal/textio"
	"github.com/ecatmur/triliteral/script"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Instance represents a triliteral VM instance.
type Instance struct {
	table   *script.Table
	program *Stack
	space   Space
	log     *zap.Logger

	input  *multiReader
	in     *bufio.Reader
	output runeWriter
	ioMu   sync.Mutex

	insCount atomic.Int64
	started  atomic.Bool
	failed   atomic.Bool
	nextID   atomic.Int64

	mu      sync.Mutex
	threads map[int]*Thread
	wg      sync.WaitGroup
	err     error
}

// Option interface
type Option func(*Instance) error

// Input pushes the given Reader on top of the input stack. When this reader
// reaches EOF, the previously pushed reader will be used.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.input.pushReader(r); return nil }
}

// Output sets the writer used by the output opcodes. If w has a Flush method,
// it is called after each write and before each read.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// Logger sets the logger. Every executed word is logged at debug level. The
// default is a no-op logger.
func Logger(l *zap.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// WithSpace sets the storage space. The default is NewSpace().
func WithSpace(s Space) Option {
	return func(i *Instance) error {
		if s == nil {
			return errors.New("nil space")
		}
		i.space = s
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance that will run program, a sequence of words
// written with letter table t.
//
// Options will be set by calling SetOptions.
func New(t *script.Table, program []string, opts ...Option) (*Instance, error) {
	if t == nil {
		return nil, errors.New("nil letter table")
	}
	i := &Instance{
		table:   t,
		program: NewStack(program...),
		space:   NewSpace(),
		log:     zap.NewNop(),
		input:   new(multiReader),
		threads: make(map[int]*Thread),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	i.in = bufio.NewReader(i.input)
	return i, nil
}

// Table returns the letter table of the instance.
func (i *Instance) Table() *script.Table { return i.table }

// Program returns the program stack. It is the code and home of the initial
// frame, and is not part of the storage space.
func (i *Instance) Program() *Stack { return i.program }

// Space returns the storage space.
func (i *Instance) Space() Space { return i.space }

// Stack returns the storage stack for root.
func (i *Instance) Stack(root string) *Stack { return i.space.Stack(root) }

// InstructionCount returns the number of instructions executed so far, all
// threads included. Words that select a reserved slot are not counted.
func (i *Instance) InstructionCount() int64 {
	return i.insCount.Load()
}

// Run executes the program in the calling goroutine, then waits for all the
// threads it forked to terminate. Run can only be called once.
//
// If any thread fails, all other threads are stopped before executing their
// next word, and Run returns the errors of all failed threads combined with
// multierr. Threads blocked on input or join are not interrupted.
func (i *Instance) Run() error {
	if !i.started.CompareAndSwap(false, true) {
		return errors.New("instance already started")
	}
	t := i.newThread(0, &Frame{Home: i.program, Code: i.program})
	i.log.Debug("start", zap.Int("words", i.program.Len()))
	i.report(t.run())
	i.wg.Wait()
	i.log.Debug("halt", zap.Int64("instructions", i.insCount.Load()))
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.err
}

func (i *Instance) report(err error) {
	if err == nil {
		return
	}
	i.failed.Store(true)
	i.mu.Lock()
	i.err = multierr.Append(i.err, err)
	i.mu.Unlock()
}

// value and word convert between words and numbers.
func (i *Instance) value(w string) (int, error) {
	return i.table.Value(w)
}

func (i *Instance) word(n int) string {
	if n <= 0 {
		return ""
	}
	return i.table.Word(n)
}

// Dump writes the contents of the storage space to w, one stack per line, in
// root order. Empty words are written as "".
func (i *Instance) Dump(w io.Writer) error {
	ew := textio.NewErrWriter(w)
	for _, root := range i.space.Roots() {
		ws := i.space.Stack(root).Words()
		for k, v := range ws {
			if v == "" {
				ws[k] = `""`
			}
		}
		if root == "" {
			root = "-"
		}
		ew.WriteString(root)
		ew.WriteString(":")
		if len(ws) > 0 {
			ew.WriteString(" ")
			ew.WriteString(strings.Join(ws, " "))
		}
		ew.WriteString("\n")
	}
	return ew.Err
}
