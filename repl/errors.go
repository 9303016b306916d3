// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fluetlang/fluet/syntax"
)

// ANSI escape sequences used by the error printer.
const (
	ansiReset   = "\033[0m"
	ansiBoldRed = "\033[1;31m"
	ansiBlue    = "\033[34m"
)

// An ErrorPrinter renders fluet errors with the offending source line
// and a caret marking the column.
type ErrorPrinter struct {
	out   io.Writer
	color bool
}

// NewErrorPrinter returns a printer writing to out.
func NewErrorPrinter(out io.Writer, color bool) *ErrorPrinter {
	return &ErrorPrinter{out: out, color: color}
}

// Print renders err. A syntax.ErrorList is rendered one entry at a
// time; errors of other types are printed as plain lines.
func (p *ErrorPrinter) Print(err error) {
	switch err := err.(type) {
	case syntax.ErrorList:
		for i := range err {
			p.printOne(&err[i])
		}
	case *syntax.Error:
		p.printOne(err)
	default:
		fmt.Fprintln(p.out, err)
	}
}

func (p *ErrorPrinter) printOne(e *syntax.Error) {
	head := fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	if p.color {
		head = ansiBoldRed + head + ansiReset
	}
	fmt.Fprintln(p.out, head)

	if !e.Pos.IsValid() {
		return
	}
	loc := fmt.Sprintf(" --> %s", e.Pos)
	if p.color {
		loc = ansiBlue + loc + ansiReset
	}
	fmt.Fprintln(p.out, loc)

	if e.Pos.LineText != "" {
		line := strings.TrimRight(e.Pos.LineText, "\r\n")
		fmt.Fprintf(p.out, "  %s\n", line)
		fmt.Fprintf(p.out, "  %s^\n", caretPad(line, int(e.Pos.Col)))
	}
}

// caretPad returns the run of spaces and tabs that aligns a caret
// under column col (1-based) of line. Tabs in the source are kept so
// that the caret lines up under any tab width.
func caretPad(line string, col int) string {
	var sb strings.Builder
	for i, r := range line {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// colorEnabled reports whether errors should be colored under the
// given mode ("auto", "always", or "never").
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
