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
	"sync"

	"go.uber.org/atomic"
)

var tags atomic.Uint64

// Stack is a storage stack: a LIFO sequence of words. The zero value is not
// usable, use NewStack.
//
// Methods are safe for concurrent use, but sequences of calls are not atomic.
type Stack struct {
	tag   uint64
	mu    sync.Mutex
	words []string
}

// NewStack returns a new stack holding the given words, the last one on top.
func NewStack(words ...string) *Stack {
	return &Stack{tag: tags.Inc(), words: words}
}

// Tag returns a number that uniquely identifies s.
func (s *Stack) Tag() uint64 { return s.tag }

// Len returns the number of words in s.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// Push pushes ws onto s, in order.
func (s *Stack) Push(ws ...string) {
	s.mu.Lock()
	s.words = append(s.words, ws...)
	s.mu.Unlock()
}

// Pop removes the top word of s and returns it. It returns the empty word if
// s is empty.
func (s *Stack) Pop() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := len(s.words)
	if l == 0 {
		return ""
	}
	w := s.words[l-1]
	s.words = s.words[:l-1]
	return w
}

// Peek returns the n-th word from the top of s, the top word being at n=1. It
// returns the empty word if n is out of range.
func (s *Stack) Peek(n int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 || n > len(s.words) {
		return ""
	}
	return s.words[len(s.words)-n]
}

// Set replaces the n-th word from the top of s. It returns false if n is out
// of range.
func (s *Stack) Set(n int, w string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 || n > len(s.words) {
		return false
	}
	s.words[len(s.words)-n] = w
	return true
}

// At returns the word at index i, counting from the bottom of s.
func (s *Stack) At(i int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.words) {
		return "", false
	}
	return s.words[i], true
}

// Cut removes the top n words of s, or all of them if s holds fewer than n
// words, and returns them bottom first.
func (s *Stack) Cut(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := len(s.words)
	if n > l {
		n = l
	}
	ws := make([]string, n)
	copy(ws, s.words[l-n:])
	s.words = s.words[:l-n]
	return ws
}

// Words returns a copy of the contents of s, bottom first.
func (s *Stack) Words() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.words...)
}
