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

import "strings"

// Tokenize splits a source buffer into tokens and reports the net number
// of unbalanced '(' and '"' across the buffer. Interactive front-ends
// treat unclosed <= 0 as "form complete"; negative counts (stray ')')
// are possible.
//
// Whitespace separates tokens. ';' and the two-character sequence "#!"
// start comments that run to the next newline. '(' and ')' are emitted
// as single-character tokens. A '"' opens a string literal in which the
// escapes \r, \n and \t are translated and any other escaped character
// is taken literally; the emitted token keeps a leading '"' as a
// discriminator for the reader. Every other run of non-delimiter bytes
// forms an atom.
//
// The tokenizer is total: it never reports an error. Malformed input
// manifests downstream as degenerate trees.
func Tokenize(src string) (tokens []string, unclosed int) {
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == ';' || (c == '#' && i+1 < len(src) && src[i+1] == '!'):
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '"':
			unclosed++
			i++
			var b strings.Builder
			b.WriteByte('"')
			for i < len(src) {
				if src[i] == '\\' && i+1 < len(src) {
					switch src[i+1] {
					case 'r':
						b.WriteByte('\r')
					case 'n':
						b.WriteByte('\n')
					case 't':
						b.WriteByte('\t')
					default:
						b.WriteByte(src[i+1])
					}
					i += 2
					continue
				}
				if src[i] == '"' {
					unclosed--
					i++
					break
				}
				b.WriteByte(src[i])
				i++
			}
			tokens = append(tokens, b.String())
		case c == '(':
			unclosed++
			tokens = append(tokens, "(")
			i++
		case c == ')':
			unclosed--
			tokens = append(tokens, ")")
			i++
		default:
			start := i
			for i < len(src) && !isDelim(src[i]) {
				i++
			}
			tokens = append(tokens, src[start:i])
		}
	}
	return tokens, unclosed
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"', ';':
		return true
	}
	return false
}
