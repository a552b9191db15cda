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

import (
	"math"
	"math/rand"
	"strings"
)

// Builtin primitives. Operands arrive already evaluated.
//
// Arithmetic picks its numeric mode from the first operand: an int
// first operand coerces everything to int and yields an int, anything
// else runs in the double domain. Division or modulo by zero is left to
// the host numeric layer, which aborts the process for ints.

func builtinAdd(in *Interp, args []*Value, env *Env) *Value {
	return arith(args, 0, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
}

func builtinSub(in *Interp, args []*Value, env *Env) *Value {
	return arith(args, 0, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
}

func builtinMul(in *Interp, args []*Value, env *Env) *Value {
	return arith(args, 1, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
}

func builtinDiv(in *Interp, args []*Value, env *Env) *Value {
	return arith(args, 1, func(a, b int64) int64 { return a / b }, func(a, b float64) float64 { return a / b })
}

func arith(args []*Value, identity int64, fi func(a, b int64) int64, fd func(a, b float64) float64) *Value {
	if len(args) == 0 {
		return NewInt(identity)
	}
	if args[0].kind == KindInt {
		acc := args[0].i
		for _, a := range args[1:] {
			acc = fi(acc, a.toInt())
		}
		return NewInt(acc)
	}
	acc := args[0].toDouble()
	for _, a := range args[1:] {
		acc = fd(acc, a.toDouble())
	}
	return NewDouble(acc)
}

// (< A B) compares in the domain of the first operand.
func builtinLess(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewNil()
	}
	if args[0].kind == KindInt {
		return NewBool(args[0].i < args[1].toInt())
	}
	return NewBool(args[0].toDouble() < args[1].toDouble())
}

// (== A B...) is n-ary and short-circuits to false on the first
// mismatch against operand 0, in the domain of operand 0.
func builtinEq(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewBool(true)
	}
	if args[0].kind == KindInt {
		for _, a := range args[1:] {
			if a.toInt() != args[0].i {
				return NewBool(false)
			}
		}
		return NewBool(true)
	}
	d := args[0].toDouble()
	for _, a := range args[1:] {
		if a.toDouble() != d {
			return NewBool(false)
		}
	}
	return NewBool(true)
}

func builtinPow(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewNil()
	}
	return NewDouble(math.Pow(args[0].toDouble(), args[1].toDouble()))
}

func builtinMod(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewNil()
	}
	return NewInt(args[0].toInt() % args[1].toInt())
}

func builtinRand(in *Interp, args []*Value, env *Env) *Value {
	return NewDouble(rand.Float64())
}

func mathUnary(f func(float64) float64) HostFunc {
	return func(in *Interp, args []*Value, env *Env) *Value {
		if len(args) == 0 {
			return NewNil()
		}
		return NewDouble(f(args[0].toDouble()))
	}
}

// (++ V) and (-- V) mutate the operand cell in place and return it,
// preserving its type. Shared references see the change.
func builtinInc(in *Interp, args []*Value, env *Env) *Value { return step(args, 1) }
func builtinDec(in *Interp, args []*Value, env *Env) *Value { return step(args, -1) }

func step(args []*Value, by int64) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	v := args[0]
	switch v.kind {
	case KindInt:
		v.i += by
	case KindDouble:
		v.d += float64(by)
	}
	return v
}

// (! V) negates the bool context of its operand.
func builtinNot(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return NewBool(!args[0].Truthy())
}

// Coercions.

func builtinInt(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return NewInt(args[0].toInt())
}

func builtinDouble(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return NewDouble(args[0].toDouble())
}

func builtinType(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return NewString(args[0].TypeName())
}

// (string A B...) concatenates the string forms of all operands; with
// one operand or none it yields the empty string.
func builtinString(in *Interp, args []*Value, env *Env) *Value {
	if len(args) <= 1 {
		return NewString("")
	}
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.String())
	}
	return NewString(b.String())
}

// String primitives.

func builtinStrlen(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return NewInt(int64(len(args[0].s)))
}

// (char-at S I) returns the byte at index I as an int, or nil when the
// index is out of range.
func builtinCharAt(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewNil()
	}
	i := args[1].toInt()
	if i < 0 || i >= int64(len(args[0].s)) {
		return NewNil()
	}
	return NewInt(int64(args[0].s[i]))
}

// (chr N) builds a one-byte string out of an int.
func builtinChr(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return NewString(string([]byte{byte(args[0].toInt())}))
}

// (read-string S) parses the first form out of source text, without
// evaluating it.
func builtinReadString(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	forms := in.ReadString(args[0].s)
	if len(forms) == 0 {
		return NewNil()
	}
	return forms[0]
}

// List primitives.

func builtinList(in *Interp, args []*Value, env *Env) *Value {
	return NewList(args...)
}

// (cons X XS) prepends X to XS, producing a new list.
func builtinCons(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewNil()
	}
	elems := make([]*Value, 0, len(args[1].list)+1)
	elems = append(elems, args[0])
	elems = append(elems, args[1].list...)
	return NewList(elems...)
}

// (nth XS I) indexes a list; out of range yields nil.
func builtinNth(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 || args[0].kind != KindList {
		return NewNil()
	}
	i := args[1].toInt()
	if i < 0 || i >= int64(len(args[0].list)) {
		return NewNil()
	}
	return args[0].list[i]
}

func builtinLength(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return NewInt(int64(len(args[0].list)))
}

// (push-back! XS V) destructively appends a clone of V and returns the
// list.
func builtinPushBack(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 || args[0].kind != KindList {
		return NewNil()
	}
	args[0].list = append(args[0].list, args[1].Clone())
	return args[0]
}

// (pop-back! XS) destructively removes and returns the last element.
func builtinPopBack(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 || args[0].kind != KindList || len(args[0].list) == 0 {
		return NewNil()
	}
	last := args[0].list[len(args[0].list)-1]
	args[0].list = args[0].list[:len(args[0].list)-1]
	return last
}

// Higher-order primitives.

// (apply F XS) applies F to the elements of XS.
func builtinApply(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewNil()
	}
	return in.Apply(args[0], args[1].list, env)
}

// (fold F XS) folds left, seeded with element 0. The empty list yields
// nil.
func builtinFold(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 || args[1].kind != KindList || len(args[1].list) == 0 {
		return NewNil()
	}
	acc := args[1].list[0]
	for _, el := range args[1].list[1:] {
		acc = in.Apply(args[0], []*Value{acc, el}, env)
	}
	return acc
}

// (map F XS) builds a new list of F applied to each element.
func builtinMap(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 || args[1].kind != KindList {
		return NewNil()
	}
	out := make([]*Value, len(args[1].list))
	for i, el := range args[1].list {
		out[i] = in.Apply(args[0], []*Value{el}, env)
	}
	return NewList(out...)
}

// (filter F XS) keeps the elements for which F is true in bool context.
func builtinFilter(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 || args[1].kind != KindList {
		return NewNil()
	}
	var out []*Value
	for _, el := range args[1].list {
		if in.Apply(args[0], []*Value{el}, env).Truthy() {
			out = append(out, el)
		}
	}
	return NewList(out...)
}
