// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

// scan renders the token sequence of src as a space-separated string,
// always ending in EOF.
func scan(src string) (string, error) {
	tokens, err := Scan("foo.fluet", src)

	var buf bytes.Buffer
	for _, tok := range tokens {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		if tok.Kind == EOF {
			buf.WriteString("EOF")
		} else {
			buf.WriteString(tok.String())
		}
	}
	return buf.String(), err
}

func TestScanner(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{``, "EOF"},
		{`123`, "123 EOF"},
		{`1.5`, "1.5 EOF"},
		{`.5`, "0.5 EOF"},
		{`2.`, "2 . EOF"}, // dot binds to a number only if a digit follows
		{`x.y`, "x . y EOF"},
		{`inf NaN`, "inf NaN EOF"},
		{`print(x)`, "print ( x ) EOF"},
		{`print(x); print(y)`, "print ( x ) ; print ( y ) EOF"},
		{`! != = == > >= < <= : :: & && | ||`,
			"! != = == > >= < <= : :: & && | || EOF"},
		{`+ - * / %`, "+ - * / % EOF"},
		{`a and b or c`, "a && b || c EOF"}, // keyword aliases
		{`let x = 1;`, "let x = 1 ; EOF"},
		{`fn f(a, b) { a + b }`, "fn f ( a , b ) { a + b } EOF"},
		{`if x then y else z`, "if x then y else z EOF"},
		{`loop { } while true { }`, "loop { } while true { } EOF"},
		{`class const enum match module super this`,
			"class const enum match module super this EOF"},
		{`"hi" 'there'`, `"hi" "there" EOF`},
		{`''`, `"" EOF`},
		{`'line one
line two'`, "\"line one\\nline two\" EOF"}, // strings may span lines
		{`"it's"`, `"it's" EOF`}, // the other quote is ordinary inside
		{`x // comment
y`, "x y EOF"},
		{`x /* comment */ y`, "x y EOF"},
		{`x /* outer /* inner */ still outer */ y`, "x y EOF"}, // comments nest
		{`x /* multi
line */ y`, "x y EOF"},
		{"\tx\r\n  y", "x y EOF"},
	} {
		got, err := scan(test.input)
		if err != nil {
			t.Errorf("scan `%s` failed: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("scan `%s` = %s, want %s", test.input, got, test.want)
		}
	}
}

func TestScanErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string // rendering of the first error
		resum string // tokens still produced, showing recovery
	}{
		{"let ~ x;",
			"foo.fluet:1:5: SyntaxError: Unexpected character '~'",
			"let x ; EOF"},
		{"let x = 'abc",
			"foo.fluet:1:9: SyntaxError: Unterminated string",
			"let x = EOF"},
		{"x /* never closed",
			"foo.fluet:1:3: SyntaxError: Unterminated block comment",
			"x EOF"},
		{"let\n  # = 1;",
			"foo.fluet:2:3: SyntaxError: Unexpected character '#'",
			"let = 1 ; EOF"},
	} {
		got, err := scan(test.input)
		if err == nil {
			t.Errorf("scan `%s` succeeded, want error", test.input)
			continue
		}
		list, ok := err.(ErrorList)
		if !ok {
			t.Errorf("scan `%s` returned %T, want ErrorList", test.input, err)
			continue
		}
		if first := list[0].Error(); first != test.want {
			t.Errorf("scan `%s` error = %s, want %s", test.input, first, test.want)
		}
		if got != test.resum {
			t.Errorf("scan `%s` tokens = %s, want %s", test.input, got, test.resum)
		}
	}
}

func TestScanNumbers(t *testing.T) {
	for _, test := range []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".125", 0.125},
		{"10000000000", 1e10},
	} {
		tokens, err := Scan("num.fluet", test.input)
		if err != nil {
			t.Fatalf("scan `%s` failed: %v", test.input, err)
		}
		if tokens[0].Kind != NUMBER || tokens[0].Number != test.want {
			t.Errorf("scan `%s` = %v (%v), want NUMBER %v",
				test.input, tokens[0].Kind, tokens[0].Number, test.want)
		}
	}

	// inf and NaN are ordinary number literals.
	tokens, err := Scan("num.fluet", "inf NaN")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(tokens[0].Number, +1) {
		t.Errorf("inf scanned as %v", tokens[0].Number)
	}
	if !math.IsNaN(tokens[1].Number) {
		t.Errorf("NaN scanned as %v", tokens[1].Number)
	}
}

func TestScanPositions(t *testing.T) {
	src := "let x = 1;\nlet yy = 'two';\n"
	tokens, err := Scan("pos.fluet", src)
	if err != nil {
		t.Fatal(err)
	}

	wantPos := []struct {
		lexeme   string
		row, col int32
	}{
		{"let", 1, 1},
		{"x", 1, 5},
		{"=", 1, 7},
		{"1", 1, 9},
		{";", 1, 10},
		{"let", 2, 1},
		{"yy", 2, 5},
		{"=", 2, 8},
		{"'two'", 2, 10},
		{";", 2, 15},
	}
	for i, want := range wantPos {
		tok := tokens[i]
		if tok.Lexeme != want.lexeme || tok.Pos.Row != want.row || tok.Pos.Col != want.col {
			t.Errorf("token %d = %q at %d:%d, want %q at %d:%d",
				i, tok.Lexeme, tok.Pos.Row, tok.Pos.Col, want.lexeme, want.row, want.col)
		}
	}

	// Every position carries the text of its line for diagnostics.
	for _, tok := range tokens[:len(tokens)-1] {
		wantLine := strings.Split(src, "\n")[tok.Pos.Row-1]
		if tok.Pos.LineText != wantLine {
			t.Errorf("token %q LineText = %q, want %q", tok.Lexeme, tok.Pos.LineText, wantLine)
		}
	}
}
