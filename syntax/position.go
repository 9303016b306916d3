// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// A Position describes the location of a token or syntax node
// within a source unit. It is used only for diagnostics and never
// influences evaluation.
//
// Row numbering starts at 1. Column numbering starts at 1 and is
// best-effort: it records the column of the first byte of the lexeme.
type Position struct {
	Filename string // display name of the source unit ("<repl>", a file path, ...)
	LineText string // full text of the source line, for snippet rendering
	Row      int32  // 1-based line number, 0 if unknown
	Col      int32  // 1-based column (byte offset within line), 0 if unknown
}

// MakePosition returns the position of column col on row row of the
// named source unit.
func MakePosition(filename, lineText string, row, col int32) Position {
	return Position{Filename: filename, LineText: lineText, Row: row, Col: col}
}

// IsValid reports whether the position carries a known row.
func (p Position) IsValid() bool { return p.Row > 0 }

func (p Position) String() string {
	file := p.Filename
	if file == "" {
		file = "<unknown>"
	}
	if p.Row > 0 {
		if p.Col > 0 {
			return fmt.Sprintf("%s:%d:%d", file, p.Row, p.Col)
		}
		return fmt.Sprintf("%s:%d", file, p.Row)
	}
	return file
}

// add returns the position immediately after s on the same line.
func (p Position) add(s string) Position {
	if p.Col > 0 {
		p.Col += int32(len(s))
	}
	return p
}
