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
	"reflect"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a Value.
type Kind uint8

// Value variants.
const (
	KindNil Kind = iota
	KindInt
	KindDouble
	KindBool
	KindString
	KindSymbol
	KindList
	KindBuiltin
	KindSpecial
	KindFn
	KindThread
)

var kindNames = [...]string{
	"nil",
	"int",
	"double",
	"bool",
	"string",
	"symbol",
	"list",
	"builtin",
	"special",
	"fn",
	"thread",
}

// HostFunc is the uniform signature of host routines bound into the
// language. Builtins receive evaluated arguments; specials receive the
// raw, unevaluated operand forms.
type HostFunc func(in *Interp, args []*Value, env *Env) *Value

// Value is a tagged cell. Values are shared by reference: bindings,
// list elements and closures all hold *Value handles, so in-place
// mutation through one handle is observable through every other.
type Value struct {
	kind Kind
	i    int64
	d    float64
	b    bool
	s    string // string bytes, or symbol name
	code int    // symbol code
	list []*Value
	host HostFunc
	// fn payload
	params []*Value
	body   []*Value
	env    *Env
	th     *threadHandle
}

// NewNil returns a fresh nil value.
func NewNil() *Value { return &Value{kind: KindNil} }

// NewInt returns a fresh int value.
func NewInt(i int64) *Value { return &Value{kind: KindInt, i: i} }

// NewDouble returns a fresh double value.
func NewDouble(d float64) *Value { return &Value{kind: KindDouble, d: d} }

// NewBool returns a fresh bool value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewString returns a fresh string value.
func NewString(s string) *Value { return &Value{kind: KindString, s: s} }

// NewList returns a fresh list holding the given elements.
func NewList(elems ...*Value) *Value { return &Value{kind: KindList, list: elems} }

// NewBuiltin wraps a host function whose operands are evaluated before
// the call.
func NewBuiltin(f HostFunc) *Value { return &Value{kind: KindBuiltin, host: f} }

// NewSpecial wraps a host function that receives its operand forms
// unevaluated.
func NewSpecial(f HostFunc) *Value { return &Value{kind: KindSpecial, host: f} }

func newSymbol(name string, code int) *Value {
	return &Value{kind: KindSymbol, s: name, code: code}
}

func newFn(params, body []*Value, env *Env) *Value {
	return &Value{kind: KindFn, params: params, body: body, env: env}
}

// Kind returns the variant tag.
func (v *Value) Kind() Kind { return v.kind }

// Int returns the int payload.
func (v *Value) Int() int64 { return v.i }

// Double returns the double payload.
func (v *Value) Double() float64 { return v.d }

// Bool returns the raw bool slot.
func (v *Value) Bool() bool { return v.b }

// Str returns the string payload (or the symbol name).
func (v *Value) Str() string { return v.s }

// Code returns the interned symbol code.
func (v *Value) Code() int { return v.code }

// List returns the element slice. Changes to the elements are visible
// through every handle sharing this value.
func (v *Value) List() []*Value { return v.list }

// Clone returns a new handle holding a shallow copy of the cell. List
// elements, function bodies and captured environments stay shared.
func (v *Value) Clone() *Value {
	c := *v
	return &c
}

// Truthy reports the bool context of a value: nil is false, a bool is
// its own value, everything else (including the empty list) is true.
func (v *Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.b
	default:
		return true
	}
}

// TypeName returns the name of the variant, as exposed by the type
// builtin.
func (v *Value) TypeName() string { return kindNames[v.kind] }

// String renders the printed form: nil prints empty, bools as
// true/false, ints in decimal, doubles with up to 16 significant
// digits, strings and symbols as their raw characters, lists and
// functions parenthesized, host functions as #<builtin:HEX>.
func (v *Value) String() string {
	switch v.kind {
	case KindNil:
		return ""
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.d, 'g', 16, 64)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindString, KindSymbol:
		return v.s
	case KindList:
		return printSeq(v.list)
	case KindFn:
		seq := make([]*Value, 0, len(v.body)+1)
		seq = append(seq, NewList(v.params...))
		seq = append(seq, v.body...)
		return printSeq(seq)
	case KindBuiltin, KindSpecial:
		return "#<builtin:" + strconv.FormatUint(uint64(reflect.ValueOf(v.host).Pointer()), 16) + ">"
	case KindThread:
		return "#<thread:" + strconv.FormatUint(uint64(reflect.ValueOf(v.th).Pointer()), 16) + ">"
	}
	return ""
}

func printSeq(elems []*Value) string {
	var b strings.Builder
	b.WriteByte('(')
	for n, e := range elems {
		if n > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// toInt coerces a value to the integer domain. Bools convert as 0/1,
// strings parse leniently, anything else is 0.
func (v *Value) toInt() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindDouble:
		return int64(v.d)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		n, _ := strconv.ParseInt(v.s, 10, 64)
		return n
	}
	return 0
}

// toDouble coerces a value to the double domain.
func (v *Value) toDouble() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindDouble:
		return v.d
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		d, _ := strconv.ParseFloat(v.s, 64)
		return d
	}
	return 0
}
