// This file is part of paren - https://github.com/PiJoules/paren
//
// Copyright 2024 The paren Authors
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

package interp

import "sync"

// Env is one frame of a lexical scope chain, mapping interned symbol
// codes to value handles. Frames form a DAG: every closure captured in a
// frame shares it, and a child frame keeps its parent alive.
//
// Frames are locked so that threads sharing an environment do not
// corrupt the map itself; the value cells behind the bindings are not
// synchronized.
type Env struct {
	mu    sync.RWMutex
	vars  map[int]*Value
	outer *Env
}

// NewEnv returns a fresh frame chained to outer, which may be nil for
// the global frame.
func NewEnv(outer *Env) *Env {
	return &Env{vars: make(map[int]*Value), outer: outer}
}

// Get resolves code against this frame, then the outer chain. An
// unbound name yields nil.
func (e *Env) Get(code int) *Value {
	if v, ok := e.lookup(code); ok {
		return v
	}
	return NewNil()
}

func (e *Env) lookup(code int) (*Value, bool) {
	for f := e; f != nil; f = f.outer {
		f.mu.RLock()
		v, ok := f.vars[code]
		f.mu.RUnlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds code to v in this frame, creating or overwriting. There is
// no removal operation.
func (e *Env) Set(code int, v *Value) {
	e.mu.Lock()
	e.vars[code] = v
	e.mu.Unlock()
}
