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

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/PiJoules/paren/emit"
	"github.com/PiJoules/paren/interp"
)

var (
	compileMode bool
	outputName  string
	importFiles []string
	withLLVM    bool
	withAsm     bool
	showHelp    bool
)

func die(err error) {
	fmt.Fprintf(os.Stderr, "paren: %v\n", err)
	os.Exit(1)
}

func main() {
	pflag.BoolVarP(&compileMode, "compile", "c", false, "compile input into a driver program instead of evaluating it")
	pflag.StringVarP(&outputName, "output", "o", "-", "output `filename` for the compiled driver, - for standard output")
	pflag.StringArrayVarP(&importFiles, "import", "i", nil, "import `filename` before evaluation (can be specified multiple times)")
	pflag.BoolVar(&withLLVM, "emit-llvm", false, "emit LLVM IR in compile mode (the default)")
	pflag.BoolVar(&withAsm, "emit-asm", false, "emit x86-64 assembly in compile mode")
	pflag.BoolVarP(&showHelp, "help", "h", false, "print this help and exit")
	pflag.Parse()

	if showHelp {
		pflag.Usage()
		return
	}
	input := pflag.Arg(0)

	if compileMode {
		if input == "" {
			die(errors.New("compile mode requires an input file"))
		}
		if err := compileFile(input, outputName); err != nil {
			die(err)
		}
		return
	}

	in, err := interp.New()
	if err != nil {
		die(err)
	}
	in.LoadPrelude()
	for _, f := range importFiles {
		in.ImportFile(f)
	}

	if input == "" {
		repl(in)
		return
	}
	b, err := os.ReadFile(input)
	if err != nil {
		die(errors.Wrap(err, "cannot read input"))
	}
	in.EvalString(string(b))
}

func compileFile(input, output string) error {
	b, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(err, "cannot read input")
	}
	kind := emit.LLVM
	if withAsm && !withLLVM {
		kind = emit.Asm
	}
	w := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "cannot create output")
		}
		defer f.Close()
		w = f
	}
	return emit.Emit(w, kind, string(b), importFiles)
}
