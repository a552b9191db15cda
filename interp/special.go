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

// Special forms. Each receives its operand forms unevaluated and the
// environment of the call site.

// (def SYM V) evaluates V, clones it into a fresh cell and binds it in
// the current frame. Returns the value.
func specialDef(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 || args[0].kind != KindSymbol {
		return NewNil()
	}
	v := in.Eval(args[1], env).Clone()
	env.Set(args[0].code, v)
	return v
}

// (set SYM-OR-PLACE V) evaluates both operands. A symbol whose current
// lookup yields nil gets a new binding in the current frame; any other
// place has its contents overwritten in-place, so shared references see
// the change.
func specialSet(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewNil()
	}
	v := in.Eval(args[1], env)
	if args[0].kind == KindSymbol {
		place := env.Get(args[0].code)
		if place.kind == KindNil {
			env.Set(args[0].code, v)
			return v
		}
		*place = *v
		return v
	}
	place := in.Eval(args[0], env)
	*place = *v
	return v
}

// (if C T [E]) evaluates C, then T or E depending on its bool context.
func specialIf(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewNil()
	}
	if in.Eval(args[0], env).Truthy() {
		return in.Eval(args[1], env)
	}
	if len(args) > 2 {
		return in.Eval(args[2], env)
	}
	return NewNil()
}

// (fn (P...) BODY...) produces a closure capturing the current
// environment.
func specialFn(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	var params []*Value
	if args[0].kind == KindList {
		params = args[0].list
	}
	return newFn(params, args[1:], env)
}

// (begin E...) evaluates each form in order and returns the last, or
// nil when empty.
func specialBegin(in *Interp, args []*Value, env *Env) *Value {
	res := NewNil()
	for _, f := range args {
		res = in.Eval(f, env)
	}
	return res
}

// (while C E...) loops while C is true in bool context. Returns nil.
func specialWhile(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	for in.Eval(args[0], env).Truthy() {
		for _, f := range args[1:] {
			in.Eval(f, env)
		}
	}
	return NewNil()
}

// (quote X) returns X unevaluated.
func specialQuote(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return args[0]
}

// (&& E...) evaluates left to right and stops on the first false
// operand, returning false; otherwise true. Never returns the operand
// value itself. With no operands, true.
func specialAnd(in *Interp, args []*Value, env *Env) *Value {
	for _, f := range args {
		if !in.Eval(f, env).Truthy() {
			return NewBool(false)
		}
	}
	return NewBool(true)
}

// (|| E...) evaluates left to right and stops on the first true
// operand, returning true; otherwise false. With no operands, false.
func specialOr(in *Interp, args []*Value, env *Env) *Value {
	for _, f := range args {
		if in.Eval(f, env).Truthy() {
			return NewBool(true)
		}
	}
	return NewBool(false)
}

// (thread E...) spawns a thread evaluating each form in order, sharing
// the spawner's environment. Returns a thread handle to pass to join.
func specialThread(in *Interp, args []*Value, env *Env) *Value {
	h := newThreadHandle()
	go func() {
		defer close(h.done)
		for _, f := range args {
			in.Eval(f, env)
		}
	}()
	return &Value{kind: KindThread, th: h}
}
