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

// macro is one defmacro definition: a parameter list and a single body
// form. The table is keyed by symbol name, not code.
type macro struct {
	params []*Value
	body   *Value
}

// restName is the literal parameter that captures all remaining
// argument forms as a list.
const restName = "..."

func (in *Interp) macro(name string) *macro {
	in.mu.Lock()
	m := in.macros[name]
	in.mu.Unlock()
	return m
}

func (in *Interp) defineMacro(name string, params []*Value, body *Value) {
	in.mu.Lock()
	in.macros[name] = &macro{params: params, body: body}
	in.mu.Unlock()
}

// expand substitutes the unevaluated argument forms into the macro
// body. Binding is positional; the literal parameter "..." binds the
// remaining argument forms as a list and is spliced, not nested, where
// it appears in the body. Expansion is not hygienic.
func (m *macro) expand(args []*Value) *Value {
	bind := make(map[string]*Value, len(m.params))
	for i, p := range m.params {
		if p.kind != KindSymbol {
			continue
		}
		if p.s == restName {
			if i < len(args) {
				bind[restName] = NewList(args[i:]...)
			} else {
				bind[restName] = NewList()
			}
			break
		}
		if i < len(args) {
			bind[p.s] = args[i]
		}
	}
	return substitute(m.body, bind)
}

func substitute(form *Value, bind map[string]*Value) *Value {
	if form.kind == KindList {
		out := make([]*Value, 0, len(form.list))
		for _, el := range form.list {
			if el.kind == KindSymbol && el.s == restName {
				if rest, ok := bind[restName]; ok {
					out = append(out, rest.list...)
					continue
				}
			}
			out = append(out, substitute(el, bind))
		}
		return NewList(out...)
	}
	if form.kind == KindSymbol {
		if b, ok := bind[form.s]; ok {
			return b
		}
	}
	return form
}
