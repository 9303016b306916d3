// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"
	"math"
)

// A TokenKind represents a kind of lexical token.
type TokenKind int8

const (
	ILLEGAL TokenKind = iota
	EOF

	// Single-character tokens
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	DOT       // .
	MINUS     // -
	PLUS      // +
	SEMICOLON // ;
	SLASH     // /
	STAR      // *
	PERCENT   // %

	// One or two character tokens
	BANG        // !
	NEQ         // !=
	EQ          // =
	EQEQ        // ==
	GT          // >
	GE          // >=
	LT          // <
	LE          // <=
	COLON       // :
	COLONCOLON  // ::
	AMP         // &
	AMPAMP      // &&
	PIPE        // |
	PIPEPIPE    // ||

	// Literals
	IDENT  // x
	NUMBER // 42, 3.5, .5 (value in Token.Number)
	STRING // "foo", 'foo' (value in Token.Text)

	// Keywords
	CLASS
	CONST
	ELSE
	ENUM
	FALSE
	FN
	FOR
	IF
	LET
	LOOP
	MATCH
	MODULE
	NULL
	RETURN
	SUPER
	THEN
	THIS
	TRUE
	WHILE

	maxToken
)

var tokenNames = [...]string{
	ILLEGAL:    "illegal token",
	EOF:        "end of input",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACE:     "{",
	RBRACE:     "}",
	COMMA:      ",",
	DOT:        ".",
	MINUS:      "-",
	PLUS:       "+",
	SEMICOLON:  ";",
	SLASH:      "/",
	STAR:       "*",
	PERCENT:    "%",
	BANG:       "!",
	NEQ:        "!=",
	EQ:         "=",
	EQEQ:       "==",
	GT:         ">",
	GE:         ">=",
	LT:         "<",
	LE:         "<=",
	COLON:      ":",
	COLONCOLON: "::",
	AMP:        "&",
	AMPAMP:     "&&",
	PIPE:       "|",
	PIPEPIPE:   "||",
	IDENT:      "identifier",
	NUMBER:     "number literal",
	STRING:     "string literal",
	CLASS:      "class",
	CONST:      "const",
	ELSE:       "else",
	ENUM:       "enum",
	FALSE:      "false",
	FN:         "fn",
	FOR:        "for",
	IF:         "if",
	LET:        "let",
	LOOP:       "loop",
	MATCH:      "match",
	MODULE:     "module",
	NULL:       "null",
	RETURN:     "return",
	SUPER:      "super",
	THEN:       "then",
	THIS:       "this",
	TRUE:       "true",
	WHILE:      "while",
}

func (k TokenKind) String() string { return tokenNames[k] }

// keywords reclassifies identifier text into reserved-word token kinds.
// The numeric keywords inf and NaN scan as NUMBER tokens carrying
// pre-built literal values; and/or are aliases for the && and ||
// operators.
var keywords = map[string]TokenKind{
	"and":    AMPAMP,
	"class":  CLASS,
	"const":  CONST,
	"else":   ELSE,
	"enum":   ENUM,
	"false":  FALSE,
	"fn":     FN,
	"for":    FOR,
	"if":     IF,
	"inf":    NUMBER,
	"let":    LET,
	"loop":   LOOP,
	"match":  MATCH,
	"module": MODULE,
	"NaN":    NUMBER,
	"null":   NULL,
	"or":     PIPEPIPE,
	"return": RETURN,
	"super":  SUPER,
	"then":   THEN,
	"this":   THIS,
	"true":   TRUE,
	"while":  WHILE,
}

// A Token is one lexical unit plus its source location.
// Tokens are immutable once produced by the scanner; AST nodes embed
// copies, never references into scanner state.
type Token struct {
	Kind   TokenKind
	Lexeme string // exact source substring the token was scanned from
	Pos    Position

	// Attached literal value. Number is meaningful only for NUMBER
	// tokens, Text only for STRING tokens; other kinds (true, false,
	// null) imply their value.
	Number float64
	Text   string
}

func (tok Token) String() string {
	switch tok.Kind {
	case IDENT:
		return tok.Lexeme
	case NUMBER:
		return formatNumber(tok.Number)
	case STRING:
		return fmt.Sprintf("%q", tok.Text)
	}
	return tok.Kind.String()
}

// formatNumber renders an IEEE double the way fluet displays it:
// shortest decimal form, with inf/-inf/NaN matching the numeric
// keywords.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, +1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return fmt.Sprintf("%g", f)
}
