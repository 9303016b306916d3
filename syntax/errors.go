// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"
	"strings"
)

// An ErrorKind classifies a diagnostic. The set is flat: there is no
// hierarchy among the three kinds.
type ErrorKind uint8

const (
	SyntaxError  ErrorKind = iota // scanning, parsing, or resolution failure
	RuntimeError                  // undefined name, wrong arity, calling a non-callable
	TypeError                     // operator/operand kind mismatch, bad condition value
)

var kindNames = [...]string{
	SyntaxError:  "SyntaxError",
	RuntimeError: "RuntimeError",
	TypeError:    "TypeError",
}

func (k ErrorKind) String() string { return kindNames[k] }

// An Error is a structured diagnostic produced by any stage of the
// pipeline. The core never renders snippets or colors; a host renderer
// is responsible for presentation.
type Error struct {
	Kind ErrorKind
	ID   string // optional stable identifier, may be empty
	Msg  string
	Pos  Position
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

// An ErrorList is a non-empty list of errors accumulated by the
// scanner or by the parser's panic-mode recovery.
type ErrorList []Error // len > 0

func (list ErrorList) Error() string {
	var sb strings.Builder
	for i, e := range list {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
