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

// Package interp implements the Paren language kernel: an S-expression
// language with integers, doubles, booleans, strings, symbols, lists,
// first-class functions with lexical closures, user-defined macros and a
// thread primitive.
//
// The kernel is driven through an Interp handle. A typical embedding looks
// like this:
//
//	in, err := interp.New()
//	if err != nil {
//		// only option errors end up here
//	}
//	in.LoadPrelude()
//	in.EvalString(`(prn (+ 1 2 3))`)
//
// Source text flows through a fixed pipeline: Tokenize splits the buffer
// into tokens and reports the net number of unbalanced '(' and '"' (which
// interactive front-ends use to detect incomplete forms), ReadString builds
// S-expression trees from the tokens, Compile records defmacro definitions
// and expands macro calls, and Eval walks the compiled tree against an
// environment chain.
//
// The language has no exception surface. Malformed input produces
// degenerate trees rather than parse errors, type mismatches coerce or
// yield nil, and undefined symbols evaluate to nil. The only fatal ways
// out are the exit builtin and unrecoverable host failures.
//
// Threads spawned with the thread special form share the spawner's
// environment. The symbol table, the macro table and environment frames
// are guarded so that concurrent evaluation does not corrupt the kernel
// itself, but individual value cells are not: mutating a shared cell from
// two threads (set, push-back!, pop-back!, ++, --) is a data race.
// Multithreaded programs should confine mutation of shared bindings to
// initialization.
package interp
