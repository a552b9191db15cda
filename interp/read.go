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
	"strconv"
	"strings"
)

// reader builds S-expression trees out of a token sequence. Like the
// tokenizer it is total: stray closers read as nil, unterminated lists
// end at the last token.
type reader struct {
	in   *Interp
	toks []string
	pos  int
}

// ReadString tokenizes src and reads every top-level form out of it.
// Symbols are interned into the kernel's symbol table as a side effect.
func (in *Interp) ReadString(src string) []*Value {
	toks, _ := Tokenize(src)
	return in.readTokens(toks)
}

func (in *Interp) readTokens(toks []string) []*Value {
	r := &reader{in: in, toks: toks}
	var forms []*Value
	for r.pos < len(r.toks) {
		// A token whose first byte has the high bit set terminates
		// parsing at the top level.
		if t := r.toks[r.pos]; len(t) > 0 && t[0] >= 0x80 {
			break
		}
		forms = append(forms, r.next())
	}
	return forms
}

func (r *reader) next() *Value {
	tok := r.toks[r.pos]
	r.pos++
	switch {
	case tok[0] == '"':
		return NewString(tok[1:])
	case tok == "(":
		var elems []*Value
		for r.pos < len(r.toks) && r.toks[r.pos] != ")" {
			elems = append(elems, r.next())
		}
		if r.pos < len(r.toks) {
			r.pos++ // consume ')'
		}
		return NewList(elems...)
	case tok == ")":
		return NewNil()
	case isNumeric(tok):
		if strings.ContainsAny(tok, ".e") {
			d, _ := strconv.ParseFloat(tok, 64)
			return NewDouble(d)
		}
		n, _ := strconv.ParseInt(tok, 10, 64)
		return NewInt(n)
	default:
		return r.in.Symbol(tok)
	}
}

// isNumeric reports whether a token reads as a number: a leading digit,
// or a leading '-' followed by a digit.
func isNumeric(tok string) bool {
	if tok[0] >= '0' && tok[0] <= '9' {
		return true
	}
	return tok[0] == '-' && len(tok) > 1 && tok[1] >= '0' && tok[1] <= '9'
}
