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

package interp_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/PiJoules/paren/interp"
)

// runForms evaluates every form in src against a fresh kernel and
// returns the REPL-style "VALUE : TYPE" line of each, plus anything the
// program printed.
func runForms(t *testing.T, src string) (lines []string, printed string) {
	t.Helper()
	var out bytes.Buffer
	in, err := interp.New(interp.Stdout(&out), interp.Stderr(&out))
	if err != nil {
		t.Fatal(err)
	}
	for _, form := range in.ReadString(src) {
		v := in.Run(form)
		lines = append(lines, fmt.Sprintf("%s : %s", v, v.TypeName()))
	}
	return lines, out.String()
}

func lastLine(t *testing.T, src string) string {
	t.Helper()
	lines, _ := runForms(t, src)
	if len(lines) == 0 {
		t.Fatalf("no forms in %q", src)
	}
	return lines[len(lines)-1]
}

var evalTests = [...]struct {
	name string
	src  string
	want string // REPL line of the last form
}{
	{"add-ints", "(+ 1 2 3)", "6 : int"},
	{"add-mixed", "(+ 1.5 2)", "3.5 : double"},
	{"set-increment", "(def x 10) (set x (+ x 1)) x", "11 : int"},
	{"fib", "(def f (fn (n) (if (< n 2) n (+ (f (- n 1)) (f (- n 2)))))) (f 10)", "55 : int"},
	{"unless-macro", "(defmacro unless (c body) (if c nil body)) (unless false 42)", "42 : int"},
	{"push-back", "(def xs (list 1 2 3)) (push-back! xs 4) (length xs)", "4 : int"},
	{"map-square", "(map (fn (x) (* x x)) (list 1 2 3))", "(1 4 9) : list"},
	{"self-evaluating", "3.5", "3.5 : double"},
	{"string-literal", `"hi"`, "hi : string"},
	{"undefined-symbol", "no-such-thing", " : nil"},
	{"nil-head", "(1 2 3)", " : nil"},
	{"empty-list-call", "()", " : nil"},
	{"quote", "(quote (a b))", "(a b) : list"},
	{"quote-atom", "(quote x)", "x : symbol"},
	{"if-true", "(if true 1 2)", "1 : int"},
	{"if-false", "(if false 1 2)", "2 : int"},
	{"if-no-else", "(if false 1)", " : nil"},
	{"if-nil-condition", "(if nil 1 2)", "2 : int"},
	{"if-empty-list-truthy", "(if (list) 1 2)", "1 : int"},
	{"begin", "(begin 1 2 3)", "3 : int"},
	{"begin-empty", "(begin)", " : nil"},
	{"while", "(def i 0) (def n 0) (while (< i 5) (set n (+ n i)) (++ i)) n", "10 : int"},
	{"and-empty", "(&&)", "true : bool"},
	{"or-empty", "(||)", "false : bool"},
	{"and", "(&& true 1 (list))", "true : bool"},
	{"and-false", "(&& true false true)", "false : bool"},
	{"or", "(|| false nil 3)", "true : bool"},
	{"or-false", "(|| false nil)", "false : bool"},
	{"def-returns-value", "(def x 7)", "7 : int"},
	{"fn-body-empty", "((fn ()))", " : nil"},
	{"extra-args-ignored", "((fn (a) a) 1 2 3)", "1 : int"},
	{"eval-builtin", "(eval (quote (+ 1 2)))", "3 : int"},
}

func TestEval(t *testing.T) {
	for _, tc := range evalTests {
		if got := lastLine(t, tc.src); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestEvalScenarioLines(t *testing.T) {
	lines, _ := runForms(t, `(def xs (list 1 2 3)) (push-back! xs 4) (length xs)`)
	want := []string{"(1 2 3) : list", "(1 2 3 4) : list", "4 : int"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestDefBindsLocally(t *testing.T) {
	src := `
(def x 1)
(def f (fn () (begin (def x 2) x)))
(f)
x`
	lines, _ := runForms(t, src)
	if got := lines[2]; got != "2 : int" {
		t.Errorf("local def: expected %q, got %q", "2 : int", got)
	}
	if got := lines[3]; got != "1 : int" {
		t.Errorf("outer binding touched by local def: got %q", got)
	}
}

func TestClosureSeesOuterSet(t *testing.T) {
	src := `
(def x 1)
(def get-x (fn () x))
(set x 5)
(get-x)`
	if got := lastLine(t, src); got != "5 : int" {
		t.Errorf("expected %q, got %q", "5 : int", got)
	}
}

func TestClosureCounter(t *testing.T) {
	src := `
(def make-counter (fn () (begin (def n 0) (fn () (begin (set n (+ n 1)) n)))))
(def c (make-counter))
(c)
(c)
(c)`
	lines, _ := runForms(t, src)
	for i, want := range []string{"1 : int", "2 : int", "3 : int"} {
		if got := lines[i+2]; got != want {
			t.Errorf("call %d: expected %q, got %q", i+1, want, got)
		}
	}
}

// Arguments bind by handle, so in-place mutation through a parameter is
// visible to the caller.
func TestSharedMutation(t *testing.T) {
	src := `
(def xs (list 1 2 3))
(def grow (fn (ys) (push-back! ys 9)))
(grow xs)
xs`
	if got := lastLine(t, src); got != "(1 2 3 9) : list" {
		t.Errorf("expected %q, got %q", "(1 2 3 9) : list", got)
	}
}

func TestShortCircuitSkipsEval(t *testing.T) {
	_, printed := runForms(t, `(&& false (prn "boom")) (|| true (prn "boom"))`)
	if strings.Contains(printed, "boom") {
		t.Errorf("short-circuit evaluated its tail: %q", printed)
	}
}

func TestThreadJoin(t *testing.T) {
	var out bytes.Buffer
	in, err := interp.New(interp.Stdout(&out))
	if err != nil {
		t.Fatal(err)
	}
	v := in.EvalString(`(def t (thread (prn "hi"))) (join t)`)
	if v.Kind() != interp.KindNil {
		t.Errorf("join: expected nil, got %s : %s", v, v.TypeName())
	}
	if got := out.String(); got != "hi\n" {
		t.Errorf("thread output: expected %q, got %q", "hi\n", got)
	}
}

func TestThreadSharesEnvironment(t *testing.T) {
	in := newKernel(t)
	v := in.EvalString(`(def n 1) (join (thread (set n 42))) n`)
	if v.Kind() != interp.KindInt || v.Int() != 42 {
		t.Errorf("expected 42, got %s : %s", v, v.TypeName())
	}
}
