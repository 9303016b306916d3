// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines the lexical scanner: a single forward pass over
// the source text producing a finite token sequence ending in EOF.
//
// Lexical errors (unrecognized character, unterminated string) are
// accumulated and scanning continues, so one bad character does not
// hide diagnostics for the rest of the unit.

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scan tokenizes the given source text. The returned sequence is
// ordered and always ends with an EOF token, even on error. If any
// lexical errors occurred, err is an ErrorList describing all of them.
func Scan(filename, src string) (tokens []Token, err error) {
	sc := &scanner{
		filename: filename,
		src:      src,
		lines:    strings.Split(src, "\n"),
		row:      1,
	}
	sc.scanAll()
	if len(sc.errors) > 0 {
		return sc.tokens, sc.errors
	}
	return sc.tokens, nil
}

type scanner struct {
	filename  string
	src       string
	lines     []string // source split by newline, for Position.LineText
	start     int      // byte offset of current token
	current   int      // byte offset of next unconsumed byte
	row       int32    // 1-based row of current byte
	lineStart int      // byte offset of start of current row
	startPos  Position // position captured at the start of each token
	tokens    []Token
	errors    ErrorList
}

func (sc *scanner) scanAll() {
	for !sc.eof() {
		sc.start = sc.current
		sc.startPos = sc.pos()
		sc.scanToken()
	}
	sc.start = sc.current
	sc.startPos = sc.pos()
	sc.addToken(EOF)
}

func (sc *scanner) scanToken() {
	c := sc.advance()
	switch c {
	case '(':
		sc.addToken(LPAREN)
	case ')':
		sc.addToken(RPAREN)
	case '{':
		sc.addToken(LBRACE)
	case '}':
		sc.addToken(RBRACE)
	case ',':
		sc.addToken(COMMA)
	case '-':
		sc.addToken(MINUS)
	case '+':
		sc.addToken(PLUS)
	case ';':
		sc.addToken(SEMICOLON)
	case '*':
		sc.addToken(STAR)
	case '%':
		sc.addToken(PERCENT)

	case '!':
		sc.addToken(sc.pick('=', NEQ, BANG))
	case '=':
		sc.addToken(sc.pick('=', EQEQ, EQ))
	case '<':
		sc.addToken(sc.pick('=', LE, LT))
	case '>':
		sc.addToken(sc.pick('=', GE, GT))
	case ':':
		sc.addToken(sc.pick(':', COLONCOLON, COLON))
	case '&':
		sc.addToken(sc.pick('&', AMPAMP, AMP))
	case '|':
		sc.addToken(sc.pick('|', PIPEPIPE, PIPE))

	case '/':
		switch {
		case sc.match('/'):
			// Line comment runs to end of line.
			for sc.peek() != '\n' && !sc.eof() {
				sc.advance()
			}
		case sc.match('*'):
			sc.blockComment()
		default:
			sc.addToken(SLASH)
		}

	case '.':
		sc.dot()
	case '"', '\'':
		sc.string(c)

	case ' ', '\r', '\t':
		// whitespace
	case '\n':
		sc.newline()

	default:
		switch {
		case isDigit(c):
			sc.number()
		case isAlpha(c):
			sc.identifier()
		default:
			sc.errorf("Unexpected character %q", c)
		}
	}
}

// blockComment consumes a /* ... */ comment. Comments nest:
// a depth counter tracks inner /* */ pairs.
func (sc *scanner) blockComment() {
	depth := 1
	for depth > 0 {
		if sc.eof() {
			sc.errorf("Unterminated block comment")
			return
		}
		switch {
		case sc.peek() == '/' && sc.peekNext() == '*':
			sc.advance()
			sc.advance()
			depth++
		case sc.peek() == '*' && sc.peekNext() == '/':
			sc.advance()
			sc.advance()
			depth--
		case sc.peek() == '\n':
			sc.advance()
			sc.newline()
		default:
			sc.advance()
		}
	}
}

// string consumes a string literal delimited by the given quote.
// There are no escape sequences; a string may span multiple lines.
func (sc *scanner) string(quote byte) {
	for !sc.eof() && sc.peek() != quote {
		if sc.peek() == '\n' {
			sc.advance()
			sc.newline()
		} else {
			sc.advance()
		}
	}

	if sc.eof() {
		sc.errorf("Unterminated string")
		return
	}

	sc.advance() // closing quote

	tok := sc.token(STRING)
	tok.Text = sc.src[sc.start+1 : sc.current-1]
	sc.tokens = append(sc.tokens, tok)
}

// dot disambiguates the '.' operator from a bare .digits number
// by one character of lookahead.
func (sc *scanner) dot() {
	if !isDigit(sc.peek()) {
		sc.addToken(DOT)
		return
	}
	for isDigit(sc.peek()) {
		sc.advance()
	}
	sc.addNumber()
}

func (sc *scanner) number() {
	for isDigit(sc.peek()) {
		sc.advance()
	}

	// Fractional part, only if a digit follows the dot.
	if sc.peek() == '.' && isDigit(sc.peekNext()) {
		sc.advance()
		for isDigit(sc.peek()) {
			sc.advance()
		}
	}

	sc.addNumber()
}

func (sc *scanner) addNumber() {
	f, err := strconv.ParseFloat(sc.src[sc.start:sc.current], 64)
	if err != nil {
		// digits with at most one dot always parse
		panic("syntax: unparseable number literal: " + sc.src[sc.start:sc.current])
	}
	tok := sc.token(NUMBER)
	tok.Number = f
	sc.tokens = append(sc.tokens, tok)
}

func (sc *scanner) identifier() {
	for isAlphaNumeric(sc.peek()) {
		sc.advance()
	}

	text := sc.src[sc.start:sc.current]
	kind, ok := keywords[text]
	if !ok {
		kind = IDENT
	}

	tok := sc.token(kind)
	if kind == NUMBER {
		// numeric keywords: inf, NaN
		if text == "inf" {
			tok.Number = math.Inf(+1)
		} else {
			tok.Number = math.NaN()
		}
	}
	sc.tokens = append(sc.tokens, tok)
}

func (sc *scanner) eof() bool { return sc.current >= len(sc.src) }

func (sc *scanner) advance() byte {
	c := sc.src[sc.current]
	sc.current++
	return c
}

// match consumes the next byte iff it equals expected.
func (sc *scanner) match(expected byte) bool {
	if sc.eof() || sc.src[sc.current] != expected {
		return false
	}
	sc.current++
	return true
}

// pick resolves a one-or-two character operator by lookahead.
func (sc *scanner) pick(second byte, double, single TokenKind) TokenKind {
	if sc.match(second) {
		return double
	}
	return single
}

func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.src[sc.current]
}

func (sc *scanner) peekNext() byte {
	if sc.current+1 >= len(sc.src) {
		return 0
	}
	return sc.src[sc.current+1]
}

func (sc *scanner) newline() {
	sc.row++
	sc.lineStart = sc.current
}

// pos returns the position of the current byte.
func (sc *scanner) pos() Position {
	var line string
	if int(sc.row) <= len(sc.lines) {
		line = sc.lines[sc.row-1]
	}
	return Position{
		Filename: sc.filename,
		LineText: line,
		Row:      sc.row,
		Col:      int32(sc.current-sc.lineStart) + 1,
	}
}

func (sc *scanner) token(kind TokenKind) Token {
	return Token{
		Kind:   kind,
		Lexeme: sc.src[sc.start:sc.current],
		Pos:    sc.startPos,
	}
}

func (sc *scanner) addToken(kind TokenKind) {
	sc.tokens = append(sc.tokens, sc.token(kind))
}

func (sc *scanner) errorf(format string, args ...interface{}) {
	sc.errors = append(sc.errors, Error{
		Kind: SyntaxError,
		Msg:  fmt.Sprintf(format, args...),
		Pos:  sc.startPos,
	})
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
