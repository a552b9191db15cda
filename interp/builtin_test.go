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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PiJoules/paren/interp"
)

var builtinTests = [...]struct {
	name string
	src  string
	want string
}{
	// arithmetic identities and numeric modes
	{"add-identity", "(+)", "0 : int"},
	{"sub-identity", "(-)", "0 : int"},
	{"mul-identity", "(*)", "1 : int"},
	{"div-identity", "(/)", "1 : int"},
	{"sub-single", "(- 5)", "5 : int"},
	{"int-mode-truncates", "(+ 1 2.5)", "3 : int"},
	{"double-mode", "(* 2.0 3)", "6 : double"},
	{"bool-as-number", "(+ 1 true)", "2 : int"},
	{"div-int", "(/ 10 4)", "2 : int"},
	{"div-double", "(/ 10.0 4)", "2.5 : double"},
	{"mod", "(% 7 3)", "1 : int"},
	{"pow", "(^ 2 10)", "1024 : double"},
	{"sqrt", "(sqrt 9)", "3 : double"},
	{"floor", "(floor 2.7)", "2 : double"},
	{"ceil", "(ceil 2.1)", "3 : double"},
	{"ln", "(ln 1)", "0 : double"},
	{"log10", "(log10 1)", "0 : double"},

	// comparison
	{"less-int", "(< 1 2)", "true : bool"},
	{"less-int-false", "(< 3 2)", "false : bool"},
	{"less-double", "(< 2.5 2)", "false : bool"},
	{"eq-nary-true", "(== 2 2 2)", "true : bool"},
	{"eq-nary-false", "(== 2 2 3)", "false : bool"},
	{"eq-double-mode", "(== 2.0 2)", "true : bool"},

	// logic
	{"not-true", "(! true)", "false : bool"},
	{"not-nil", "(! nil)", "true : bool"},
	{"not-value", "(! 42)", "false : bool"},

	// mutation
	{"inc", "(def x 5) (++ x) x", "6 : int"},
	{"inc-returns-value", "(def x 5) (++ x)", "6 : int"},
	{"dec-double", "(def x 1.5) (-- x) x", "0.5 : double"},

	// coercions
	{"int-of-double", "(int 3.7)", "3 : int"},
	{"int-of-bool", "(int true)", "1 : int"},
	{"int-of-string", `(int "12")`, "12 : int"},
	{"double-of-int", "(double 2)", "2 : double"},
	{"type-int", "(type 1)", "int : string"},
	{"type-list", "(type (list))", "list : string"},
	{"type-nil", "(type nil)", "nil : string"},
	{"string-empty", "(string)", " : string"},
	{"string-single", `(string "a")`, " : string"},
	{"string-concat", `(string "a" "b" 1)`, "ab1 : string"},

	// strings
	{"strlen", `(strlen "abc")`, "3 : int"},
	{"char-at", `(char-at "abc" 1)`, "98 : int"},
	{"char-at-out-of-range", `(char-at "abc" 9)`, " : nil"},
	{"chr", "(chr 97)", "a : string"},
	{"chr-char-at-roundtrip", `(chr (char-at "zebra" 0))`, "z : string"},
	{"read-string", `(read-string "(+ 1 2)")`, "(+ 1 2) : list"},
	{"read-string-atom", `(read-string "42")`, "42 : int"},

	// lists
	{"list", "(list 1 2 3)", "(1 2 3) : list"},
	{"list-empty", "(list)", "() : list"},
	{"list-heterogeneous", `(list 1 "two" 3.5)`, "(1 two 3.5) : list"},
	{"cons", "(cons 1 (list 2 3))", "(1 2 3) : list"},
	{"cons-fresh", "(def xs (list 2)) (cons 1 xs) xs", "(2) : list"},
	{"nth", "(nth (list 4 5 6) 1)", "5 : int"},
	{"nth-out-of-range", "(nth (list 1 2) 5)", " : nil"},
	{"length", "(length (list 1 2 3))", "3 : int"},
	{"length-empty", "(length (list))", "0 : int"},
	{"pop-back", "(def xs (list 1 2 3)) (pop-back! xs)", "3 : int"},
	{"pop-back-shrinks", "(def xs (list 1 2 3)) (pop-back! xs) xs", "(1 2) : list"},
	{"pop-back-empty", "(pop-back! (list))", " : nil"},

	// higher-order
	{"apply", "(apply + (list 1 2 3))", "6 : int"},
	{"fold", "(fold + (list 1 2 3 4))", "10 : int"},
	{"fold-single", "(fold + (list 7))", "7 : int"},
	{"fold-empty", "(fold + (list))", " : nil"},
	{"map", "(map (fn (x) (+ x 1)) (list 1 2))", "(2 3) : list"},
	{"filter", "(filter (fn (x) (< 0 x)) (list -1 2 -3 4))", "(2 4) : list"},
	{"filter-none", "(filter (fn (x) false) (list 1 2))", "() : list"},
}

func TestBuiltins(t *testing.T) {
	for _, tc := range builtinTests {
		if got := lastLine(t, tc.src); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

// push-back! clones the appended value: later mutation of the source
// cell must not rewrite the list element.
func TestPushBackClones(t *testing.T) {
	src := `
(def i 1)
(def xs (list))
(push-back! xs i)
(++ i)
xs`
	if got := lastLine(t, src); got != "(1) : list" {
		t.Errorf("expected %q, got %q", "(1) : list", got)
	}
}

func TestRandRange(t *testing.T) {
	in := newKernel(t)
	for n := 0; n < 100; n++ {
		v := in.EvalString("(rand)")
		require.Equal(t, interp.KindDouble, v.Kind())
		require.GreaterOrEqual(t, v.Double(), 0.0)
		require.Less(t, v.Double(), 1.0)
	}
}

func TestPrAndPrn(t *testing.T) {
	var out bytes.Buffer
	in, err := interp.New(interp.Stdout(&out))
	require.NoError(t, err)
	in.EvalString(`(pr 1 2 "x") (prn) (prn "a" 3.5)`)
	require.Equal(t, "1 2 x\na 3.5\n", out.String())
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	in, err := interp.New(interp.Stdin(strings.NewReader("hello\nworld")), interp.Stdout(&out))
	require.NoError(t, err)
	v := in.EvalString("(read-line)")
	require.Equal(t, "hello", v.Str())
	v = in.EvalString("(read-line)")
	require.Equal(t, "world", v.Str())
	v = in.EvalString("(read-line)")
	require.Equal(t, interp.KindNil, v.Kind())
}

func TestSlurpSpit(t *testing.T) {
	in := newKernel(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	v := in.EvalString(`(spit "` + path + `" "payload")`)
	require.Equal(t, int64(len("payload")), v.Int())
	v = in.EvalString(`(slurp "` + path + `")`)
	require.Equal(t, "payload", v.Str())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "payload", string(b))
}

func TestSlurpMissing(t *testing.T) {
	in := newKernel(t)
	v := in.EvalString(`(slurp "/no/such/file")`)
	require.Equal(t, interp.KindNil, v.Kind())
}

func TestSpitFailure(t *testing.T) {
	in := newKernel(t)
	v := in.EvalString(`(spit "/no/such/dir/file" "x")`)
	require.Equal(t, int64(-1), v.Int())
}

func TestSystem(t *testing.T) {
	in := newKernel(t)
	v := in.EvalString(`(system "exit 3")`)
	require.Equal(t, int64(3), v.Int())
	v = in.EvalString(`(system "true")`)
	require.Equal(t, int64(0), v.Int())
}
