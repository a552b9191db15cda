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

// Package emit lowers a Paren source file into a tiny driver program.
//
// The emitter performs no language analysis. The driver it produces
// embeds the source text and the import paths as string constants and
// calls the three embedding entry points of the kernel, in order:
//
//	paren_init()
//	paren_import(path)   once per import, in command-line order
//	paren_eval_string(source)
//
// Linking the driver against the paren C archive (cmd/libparen built
// with -buildmode=c-archive) yields a standalone executable for the
// script. Two emission kinds are supported: textual LLVM IR and x86-64
// AT&T assembly.
package emit
