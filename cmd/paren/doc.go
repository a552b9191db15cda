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

// The paren command line tool drives the Paren kernel in the package
// github.com/PiJoules/paren/interp: it evaluates source files, runs an
// interactive REPL, and lowers scripts into standalone driver programs.
//
// Usage:
//
//	paren [flags] [input]
//
//	-c, --compile
//		  compile input into a driver program instead of evaluating it
//	-i, --import filename
//		  import filename before evaluation (can be specified multiple times)
//	-o, --output filename
//		  output filename for the compiled driver, - for standard output
//	--emit-llvm
//		  emit LLVM IR in compile mode (the default)
//	--emit-asm
//		  emit x86-64 assembly in compile mode
//	-h, --help
//		  print usage
//
// With no input file, paren enters the REPL. Each completed top-level
// form prints its value and type:
//
//	> (+ 1 2 3)
//	6 : int
//	> (def sq (fn (x) (* x x)))
//	((x) (* x x)) : fn
//	> (map sq (list 1 2 3))
//	(1 4 9) : list
//
// Unbalanced '(' or '"' switch the REPL to a continuation prompt until
// the form is complete.
//
// On startup the interpreter loads the prelude script library.paren
// from the current working directory; if the file is missing a note is
// printed to standard error and the session continues with builtins
// only.
//
// In compile mode (-c) no evaluation takes place: the input source and
// the -i import paths are wrapped into a driver program that calls the
// embedding entry points paren_init, paren_import and
// paren_eval_string. The driver links against the C archive produced by
//
//	go build -buildmode=c-archive ./cmd/libparen
package main
