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

// Compile walks a parsed form, records defmacro definitions into the
// macro table and replaces macro calls with their expansions,
// recursively. A defmacro form compiles to nil; quote stops the descent
// so that literal macro calls survive inside quoted data. Compilation
// is a fixed point: compiling an already-compiled form yields the same
// form.
func (in *Interp) Compile(form *Value) *Value {
	if form.kind != KindList || len(form.list) == 0 {
		return form
	}
	head := in.Compile(form.list[0])
	if head.kind == KindSymbol {
		switch head.s {
		case "defmacro":
			// (defmacro NAME (PARAMS...) BODY)
			in.compileDefmacro(form.list[1:])
			return NewNil()
		case "quote":
			return form
		}
		if m := in.macro(head.s); m != nil {
			return in.Compile(m.expand(form.list[1:]))
		}
	}
	out := make([]*Value, len(form.list))
	out[0] = head
	for i, c := range form.list[1:] {
		out[i+1] = in.Compile(c)
	}
	return NewList(out...)
}

func (in *Interp) compileDefmacro(rest []*Value) {
	if len(rest) < 3 || rest[0].kind != KindSymbol {
		return
	}
	var params []*Value
	if rest[1].kind == KindList {
		params = rest[1].list
	}
	in.defineMacro(rest[0].s, params, rest[2])
}
