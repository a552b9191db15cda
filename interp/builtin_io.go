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
	"io"
	"os"
	"os/exec"
	"strings"
)

// I/O, control and FFI builtins.

// (pr A...) writes the space-separated string forms of its operands,
// with no trailing newline. (prn A...) adds one.
func builtinPr(in *Interp, args []*Value, env *Env) *Value {
	io.WriteString(in.stdout, joinForms(args))
	return NewNil()
}

func builtinPrn(in *Interp, args []*Value, env *Env) *Value {
	io.WriteString(in.stdout, joinForms(args)+"\n")
	return NewNil()
}

func joinForms(args []*Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// (read-line) reads one line from standard input, without the newline.
// EOF yields nil.
func builtinReadLine(in *Interp, args []*Value, env *Env) *Value {
	line, err := in.stdin.ReadString('\n')
	if err != nil && line == "" {
		return NewNil()
	}
	return NewString(strings.TrimRight(line, "\r\n"))
}

// (slurp PATH) reads a file into a string; nil on failure.
func builtinSlurp(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	b, err := os.ReadFile(args[0].s)
	if err != nil {
		return NewNil()
	}
	return NewString(string(b))
}

// (spit PATH S) writes a string to a file; returns the byte count
// written, or -1 on failure.
func builtinSpit(in *Interp, args []*Value, env *Env) *Value {
	if len(args) < 2 {
		return NewInt(-1)
	}
	if err := os.WriteFile(args[0].s, []byte(args[1].s), 0666); err != nil {
		return NewInt(-1)
	}
	return NewInt(int64(len(args[1].s)))
}

// (eval X) evaluates a form.
func builtinEval(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	return in.Eval(args[0], env)
}

// (exit [N]) terminates the process.
func builtinExit(in *Interp, args []*Value, env *Env) *Value {
	code := 0
	if len(args) > 0 {
		code = int(args[0].toInt())
	}
	os.Exit(code)
	return NewNil()
}

// (system CMD) runs a shell command and returns its exit status, or -1
// when the command could not be run at all.
func builtinSystem(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewInt(-1)
	}
	cmd := exec.Command("/bin/sh", "-c", args[0].s)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return NewInt(0)
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return NewInt(int64(ee.ExitCode()))
	}
	return NewInt(-1)
}

// (import PATH) reads a file and evaluates it as source. An unreadable
// file is reported on standard error.
func builtinImport(in *Interp, args []*Value, env *Env) *Value {
	if len(args) == 0 {
		return NewNil()
	}
	in.ImportFile(args[0].s)
	return NewNil()
}
