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
	"sort"
	"sync"
)

// Space maps roots to storage stacks.
//
// The engine locks the Space around every opcode except join. Implementations
// that do not need opcodes to run one at a time can make Lock and Unlock
// no-ops.
type Space interface {
	// Stack returns the stack for root, creating an empty one on first use.
	Stack(root string) *Stack
	// Roots returns the roots of all stacks created so far, sorted.
	Roots() []string
	sync.Locker
}

type space struct {
	mu     sync.RWMutex
	stacks map[string]*Stack
}

// NewSpace returns the default Space. Threads are not serialized: opcodes from
// different threads operating on the same stack interleave.
func NewSpace() Space {
	return newSpace()
}

func newSpace() *space {
	return &space{stacks: make(map[string]*Stack)}
}

func (s *space) Stack(root string) *Stack {
	s.mu.RLock()
	st := s.stacks[root]
	s.mu.RUnlock()
	if st != nil {
		return st
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if st = s.stacks[root]; st == nil {
		st = NewStack()
		s.stacks[root] = st
	}
	return st
}

func (s *space) Roots() []string {
	s.mu.RLock()
	roots := make([]string, 0, len(s.stacks))
	for r := range s.stacks {
		roots = append(roots, r)
	}
	s.mu.RUnlock()
	sort.Strings(roots)
	return roots
}

func (s *space) Lock()   {}
func (s *space) Unlock() {}

type serializedSpace struct {
	*space
	op sync.Mutex
}

// NewSerializedSpace returns a Space that lets a single opcode run at a time,
// across all threads. Threads blocked on console input hold the lock.
func NewSerializedSpace() Space {
	return &serializedSpace{space: newSpace()}
}

func (s *serializedSpace) Lock()   { s.op.Lock() }
func (s *serializedSpace) Unlock() { s.op.Unlock() }
