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

// The libparen build target exports the Paren embedding ABI with C
// linkage, over a process-wide default kernel:
//
//	void paren_init(void);
//	void paren_eval_string(const char *src);
//	void paren_import(const char *path);
//
// paren_init must be called exactly once before any other entry; it
// installs the builtin bindings and loads the prelude. Build the
// archive with:
//
//	go build -buildmode=c-archive -o libparen.a ./cmd/libparen
package main

import "C"

import (
	"fmt"
	"os"

	"github.com/PiJoules/paren/interp"
)

var kernel *interp.Interp

//export paren_init
func paren_init() {
	in, err := interp.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "paren: init failed: %v\n", err)
		os.Exit(1)
	}
	kernel = in
	kernel.LoadPrelude()
}

//export paren_eval_string
func paren_eval_string(src *C.char) {
	if kernel == nil {
		return
	}
	kernel.EvalString(C.GoString(src))
}

//export paren_import
func paren_import(path *C.char) {
	if kernel == nil {
		return
	}
	kernel.ImportFile(C.GoString(path))
}

func main() {}
