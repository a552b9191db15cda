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

package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/PiJoules/paren/internal/pio"
)

// Kind selects the emission format.
type Kind int

// Supported emission kinds.
const (
	LLVM Kind = iota
	Asm
)

// Emit writes a driver program for src to w. Each path in imports
// becomes a paren_import call preceding the paren_eval_string call for
// the source text itself.
func Emit(w io.Writer, kind Kind, src string, imports []string) error {
	lw := pio.NewWriter(w)
	switch kind {
	case LLVM:
		emitLLVM(lw, src, imports)
	case Asm:
		emitAsm(lw, src, imports)
	default:
		return errors.Errorf("unsupported emission kind %d", kind)
	}
	return lw.Err()
}

func emitLLVM(w *pio.Writer, src string, imports []string) {
	w.Line("; ModuleID = 'paren'")
	w.Line("")
	for n, imp := range imports {
		w.Linef("@.imp%d = private unnamed_addr constant [%d x i8] c\"%s\"",
			n, len(imp)+1, llvmEscape(imp))
	}
	w.Linef("@.src = private unnamed_addr constant [%d x i8] c\"%s\"",
		len(src)+1, llvmEscape(src))
	w.Line("")
	w.Line("declare void @paren_init()")
	w.Line("declare void @paren_eval_string(i8*)")
	w.Line("declare void @paren_import(i8*)")
	w.Line("")
	w.Line("define i32 @main() {")
	w.Line("entry:")
	w.Line("  call void @paren_init()")
	for n, imp := range imports {
		w.Linef("  call void @paren_import(i8* getelementptr inbounds ([%d x i8], [%d x i8]* @.imp%d, i64 0, i64 0))",
			len(imp)+1, len(imp)+1, n)
	}
	w.Linef("  call void @paren_eval_string(i8* getelementptr inbounds ([%d x i8], [%d x i8]* @.src, i64 0, i64 0))",
		len(src)+1, len(src)+1)
	w.Line("  ret i32 0")
	w.Line("}")
}

func emitAsm(w *pio.Writer, src string, imports []string) {
	w.Line("\t.section .rodata")
	for n, imp := range imports {
		w.Linef(".Limp%d:", n)
		w.Linef("\t.asciz \"%s\"", asmEscape(imp))
	}
	w.Line(".Lsrc:")
	w.Linef("\t.asciz \"%s\"", asmEscape(src))
	w.Line("\t.text")
	w.Line("\t.globl main")
	w.Line("main:")
	w.Line("\tpushq %rbp")
	w.Line("\tmovq %rsp, %rbp")
	w.Line("\tcallq paren_init")
	for n := range imports {
		w.Linef("\tleaq .Limp%d(%%rip), %%rdi", n)
		w.Line("\tcallq paren_import")
	}
	w.Line("\tleaq .Lsrc(%rip), %rdi")
	w.Line("\tcallq paren_eval_string")
	w.Line("\txorl %eax, %eax")
	w.Line("\tpopq %rbp")
	w.Line("\tretq")
	w.Line("\t.section .note.GNU-stack,\"\",@progbits")
}

// llvmEscape renders s as the body of an LLVM c"..." constant,
// including the trailing NUL.
func llvmEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c < 0x7f && c != '"' && c != '\\' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "\\%02X", c)
	}
	b.WriteString("\\00")
	return b.String()
}

// asmEscape renders s as the body of a GNU as .asciz directive; the
// assembler supplies the trailing NUL.
func asmEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		default:
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				fmt.Fprintf(&b, "\\%03o", c)
			}
		}
	}
	return b.String()
}
