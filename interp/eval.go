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

// Eval evaluates a compiled form against an environment. Symbols
// resolve through the scope chain, lists apply their head, and every
// other variant evaluates to itself.
//
// A list whose head evaluates to something other than a builtin,
// special or fn yields nil rather than an error; existing programs rely
// on this being permissive.
func (in *Interp) Eval(form *Value, env *Env) *Value {
	switch form.kind {
	case KindSymbol:
		return env.Get(form.code)
	case KindList:
		if len(form.list) == 0 {
			return NewNil()
		}
		head := in.Eval(form.list[0], env)
		switch head.kind {
		case KindSpecial:
			return head.host(in, form.list[1:], env)
		case KindBuiltin, KindFn:
			args := make([]*Value, len(form.list)-1)
			for i, a := range form.list[1:] {
				args[i] = in.Eval(a, env)
			}
			return in.Apply(head, args, env)
		default:
			return NewNil()
		}
	default:
		return form
	}
}

// Apply invokes a builtin or user function with an already-evaluated
// argument vector. A user function runs its body in a fresh frame
// chained to the closure's captured environment; parameters bind
// positionally and extra arguments are ignored. Applying anything else
// yields nil.
func (in *Interp) Apply(f *Value, args []*Value, env *Env) *Value {
	switch f.kind {
	case KindBuiltin:
		return f.host(in, args, env)
	case KindFn:
		frame := NewEnv(f.env)
		for i, p := range f.params {
			if i >= len(args) {
				break
			}
			if p.kind == KindSymbol {
				frame.Set(p.code, args[i])
			}
		}
		res := NewNil()
		for _, b := range f.body {
			res = in.Eval(b, frame)
		}
		return res
	default:
		return NewNil()
	}
}
