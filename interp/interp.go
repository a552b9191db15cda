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
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/PiJoules/paren/internal/pio"
)

// DefaultPreludeFile is the library script loaded from the working
// directory at init.
const DefaultPreludeFile = "library.paren"

// Interp is the kernel handle: the symbol table, the macro table, the
// global environment and the I/O streams, shared by every thread the
// program spawns.
type Interp struct {
	syms   *symtab
	global *Env

	mu     sync.Mutex // guards macros
	macros map[string]*macro

	stdin       *bufio.Reader
	stdout      io.Writer
	stderr      io.Writer
	preludePath string
}

// Option configures an Interp at construction time.
type Option func(*Interp) error

// Stdin sets the reader behind the read-line builtin.
func Stdin(r io.Reader) Option {
	return func(in *Interp) error { in.stdin = bufio.NewReader(r); return nil }
}

// Stdout sets the writer behind pr and prn.
func Stdout(w io.Writer) Option {
	return func(in *Interp) error { in.stdout = pio.NewWriter(w); return nil }
}

// Stderr sets the writer for kernel diagnostics (missing prelude,
// unreadable import).
func Stderr(w io.Writer) Option {
	return func(in *Interp) error { in.stderr = w; return nil }
}

// PreludePath overrides the file LoadPrelude reads.
func PreludePath(path string) Option {
	return func(in *Interp) error {
		if path == "" {
			return errors.New("empty prelude path")
		}
		in.preludePath = path
		return nil
	}
}

// New creates a kernel with builtins, special forms and constants
// installed. The prelude is not loaded; call LoadPrelude for that.
func New(opts ...Option) (*Interp, error) {
	in := &Interp{
		syms:        newSymtab(),
		macros:      make(map[string]*macro),
		stdin:       bufio.NewReader(os.Stdin),
		stdout:      pio.NewWriter(os.Stdout),
		stderr:      os.Stderr,
		preludePath: DefaultPreludeFile,
	}
	in.global = NewEnv(nil)
	for _, opt := range opts {
		if err := opt(in); err != nil {
			return nil, err
		}
	}
	in.install()
	return in, nil
}

// Global returns the global environment frame.
func (in *Interp) Global() *Env { return in.global }

// Bind installs a value under name in the global environment. Embedders
// use it to expose host functions to programs:
//
//	in.Bind("host-version", interp.NewBuiltin(version))
func (in *Interp) Bind(name string, v *Value) {
	in.global.Set(in.syms.code(name), v)
}

func (in *Interp) install() {
	g := in.global
	bind := func(name string, v *Value) { g.Set(in.syms.code(name), v) }
	builtin := func(name string, f HostFunc) { bind(name, NewBuiltin(f)) }
	special := func(name string, f HostFunc) { bind(name, NewSpecial(f)) }

	// constants
	bind("true", NewBool(true))
	bind("false", NewBool(false))
	bind("nil", NewNil())

	// special forms
	special("def", specialDef)
	special("set", specialSet)
	special("if", specialIf)
	special("fn", specialFn)
	special("begin", specialBegin)
	special("while", specialWhile)
	special("quote", specialQuote)
	special("&&", specialAnd)
	special("||", specialOr)
	special("thread", specialThread)

	// arithmetic and comparison
	builtin("+", builtinAdd)
	builtin("-", builtinSub)
	builtin("*", builtinMul)
	builtin("/", builtinDiv)
	builtin("<", builtinLess)
	builtin("==", builtinEq)
	builtin("^", builtinPow)
	builtin("%", builtinMod)
	builtin("rand", builtinRand)
	builtin("sqrt", mathUnary(math.Sqrt))
	builtin("floor", mathUnary(math.Floor))
	builtin("ceil", mathUnary(math.Ceil))
	builtin("ln", mathUnary(math.Log))
	builtin("log10", mathUnary(math.Log10))
	builtin("++", builtinInc)
	builtin("--", builtinDec)
	builtin("!", builtinNot)

	// coercions
	builtin("int", builtinInt)
	builtin("double", builtinDouble)
	builtin("type", builtinType)
	builtin("string", builtinString)

	// strings
	builtin("strlen", builtinStrlen)
	builtin("char-at", builtinCharAt)
	builtin("chr", builtinChr)
	builtin("read-string", builtinReadString)

	// lists
	builtin("list", builtinList)
	builtin("cons", builtinCons)
	builtin("nth", builtinNth)
	builtin("length", builtinLength)
	builtin("push-back!", builtinPushBack)
	builtin("pop-back!", builtinPopBack)

	// higher-order
	builtin("apply", builtinApply)
	builtin("fold", builtinFold)
	builtin("map", builtinMap)
	builtin("filter", builtinFilter)

	// I/O, control, FFI
	builtin("pr", builtinPr)
	builtin("prn", builtinPrn)
	builtin("read-line", builtinReadLine)
	builtin("slurp", builtinSlurp)
	builtin("spit", builtinSpit)
	builtin("eval", builtinEval)
	builtin("exit", builtinExit)
	builtin("system", builtinSystem)
	builtin("import", builtinImport)
	builtin("join", builtinJoin)
}

// LoadPrelude reads the library script from the prelude path and
// evaluates it. A missing or unreadable file is reported on standard
// error and the kernel stays usable with only builtins.
func (in *Interp) LoadPrelude() {
	b, err := os.ReadFile(in.preludePath)
	if err != nil {
		fmt.Fprintf(in.stderr, "paren: cannot load prelude %s: %v\n", in.preludePath, err)
		return
	}
	in.EvalString(string(b))
}

// Run compiles and evaluates a single form against the global
// environment.
func (in *Interp) Run(form *Value) *Value {
	return in.Eval(in.Compile(form), in.global)
}

// EvalString tokenizes, reads, compiles and evaluates every form in
// src against the global environment, returning the value of the last
// form (nil when src holds none).
func (in *Interp) EvalString(src string) *Value {
	res := NewNil()
	for _, form := range in.ReadString(src) {
		res = in.Run(form)
	}
	return res
}

// ImportFile slurps a file and evaluates it as source. An unreadable
// file is reported on standard error; the returned error carries the
// cause for host callers.
func (in *Interp) ImportFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(in.stderr, "paren: cannot import %s: %v\n", path, err)
		return errors.Wrap(err, "import failed")
	}
	in.EvalString(string(b))
	return nil
}
