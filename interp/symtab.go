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

// symtab interns symbol names to dense non-negative codes. The table is
// monotonic: names are never removed and codes are never reassigned.
type symtab struct {
	mu    sync.RWMutex
	codes map[string]int
	names []string
}

func newSymtab() *symtab {
	return &symtab{codes: make(map[string]int)}
}

// code returns the code for name, interning it on first sight.
func (t *symtab) code(name string) int {
	t.mu.RLock()
	c, ok := t.codes[name]
	t.mu.RUnlock()
	if ok {
		return c
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok = t.codes[name]; ok {
		return c
	}
	c = len(t.names)
	t.names = append(t.names, name)
	t.codes[name] = c
	return c
}

// name returns the name for a code, or "" for a code that was never
// handed out.
func (t *symtab) name(code int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if code < 0 || code >= len(t.names) {
		return ""
	}
	return t.names[code]
}

// Intern maps a symbol name to its code, growing the table as needed.
func (in *Interp) Intern(name string) int { return in.syms.code(name) }

// SymbolName returns the name previously interned for code.
func (in *Interp) SymbolName(code int) string { return in.syms.name(code) }

// Symbol returns a symbol value for name, interning it.
func (in *Interp) Symbol(name string) *Value {
	return newSymbol(name, in.syms.code(name))
}
