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
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/PiJoules/paren/interp"
)

const (
	prompt     = "> "
	contPrompt = ".. "
)

// repl reads forms line by line and prints "VALUE : TYPE" for each
// completed top-level form. The tokenizer's unclosed counter drives
// multi-line input: a buffer with unclosed > 0 keeps accumulating under
// the continuation prompt.
func repl(in *interp.Interp) {
	rl, err := readline.New(prompt)
	if err != nil {
		die(err)
	}
	defer rl.Close()

	var src strings.Builder
	for {
		line, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			src.Reset()
			rl.SetPrompt(prompt)
			continue
		case io.EOF:
			return
		default:
			return
		}
		src.WriteString(line)
		src.WriteByte('\n')
		if _, unclosed := interp.Tokenize(src.String()); unclosed > 0 {
			rl.SetPrompt(contPrompt)
			continue
		}
		for _, form := range in.ReadString(src.String()) {
			v := in.Run(form)
			fmt.Printf("%s : %s\n", v, v.TypeName())
		}
		src.Reset()
		rl.SetPrompt(prompt)
	}
}
