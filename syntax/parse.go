// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines the recursive-descent parser.
//
// The grammar, highest to lowest binding strength:
//
//	primary    → literal | identifier | "(" expression ")"
//	call       → primary ( "(" args ")" )*
//	block      → "{" declaration* expression? "}" | call
//	unary      → ( "!" | "-" ) unary | block
//	factor     → unary ( ( "*" | "/" | "%" ) unary )*
//	term       → factor ( ( "+" | "-" ) factor )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	equality   → comparison ( ( "==" | "!=" ) comparison )*
//	logic      → equality ( ( "&&" | "||" ) equality )*
//	conditional→ "if" conditional "then" expression ( "else" expression )? | logic
//	assignment → IDENT "=" assignment | conditional
//	expression → assignment
//
// On a parse error inside a declaration the parser enters panic mode:
// it discards tokens until it passes a ';' or reaches a token that
// starts a new declaration, then resumes. This bounds the cascade to
// one reported error per broken statement.

// An IDGen allocates process-unique identifiers for variable-reference
// and assignment use sites. A host that parses incrementally (a REPL)
// must thread a single IDGen through all parse calls so that ids stay
// unique across the whole session.
type IDGen struct {
	next int
}

func (g *IDGen) id() int {
	id := g.next
	g.next++
	return id
}

// Parse scans and parses the given source text as a program: an
// ordered sequence of top-level statements.
//
// If gen is nil, a fresh id generator is used.
// On failure the statements parsed so far are returned along with an
// ErrorList carrying one entry per lexical error and per broken
// statement.
func Parse(filename, src string, gen *IDGen) ([]Stmt, error) {
	tokens, scanErr := Scan(filename, src)
	p := newParser(tokens, gen)
	if scanErr != nil {
		p.errors = append(p.errors, scanErr.(ErrorList)...)
	}

	var stmts []Stmt
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, *err)
			if !p.synchronize() {
				break // recovery ran off the end of input
			}
			continue
		}
		stmts = append(stmts, stmt)
	}

	if len(p.errors) > 0 {
		return stmts, p.errors
	}
	return stmts, nil
}

// ParseREPLChunk parses one line of interactive input: a statement
// sequence plus an optional trailing expression. Before failing on
// input that does not form a complete statement, the parser retries
// the remainder as a single expression, so a line like "2 + 2" without
// a trailing ';' is still usable.
func ParseREPLChunk(filename, src string, gen *IDGen) ([]Stmt, Expr, error) {
	tokens, scanErr := Scan(filename, src)
	if scanErr != nil {
		return nil, nil, scanErr
	}
	p := newParser(tokens, gen)

	var stmts []Stmt
	var final Expr
	for !p.atEnd() {
		last, nerrs := p.current, len(p.errors)
		stmt, err := p.declaration()
		if err == nil {
			stmts = append(stmts, stmt)
			continue
		}

		// Rewind to before the failing statement and try the
		// remainder as an expression. Soft errors reported during
		// the failed attempt are retracted; the retry re-reports
		// any that still apply.
		saved := p.current
		p.current, p.errors = last, p.errors[:nerrs]
		expr, exprErr := p.expression()
		if exprErr != nil || !p.atEnd() {
			p.current = saved
			return nil, nil, err // surface the original error
		}
		final = expr
	}

	if len(p.errors) > 0 {
		return nil, nil, p.errors
	}
	return stmts, final, nil
}

type parser struct {
	tokens  []Token
	current int
	gen     *IDGen
	errors  ErrorList
}

func newParser(tokens []Token, gen *IDGen) *parser {
	if gen == nil {
		gen = new(IDGen)
	}
	return &parser{tokens: tokens, gen: gen}
}

// synchronize discards tokens until it passes a statement-terminating
// ';' or reaches a token that starts a new declaration. It reports
// whether a resynchronization point was found before end of input.
func (p *parser) synchronize() bool {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == SEMICOLON {
			return true
		}
		switch p.peek().Kind {
		case CLASS, FN, FOR, IF, LET, RETURN, WHILE:
			return true
		}
		p.advance()
	}
	return false
}

func (p *parser) declaration() (Stmt, *Error) {
	if p.match(LET) {
		return p.letDeclaration()
	}
	if p.match(FN) {
		return p.fnDeclaration()
	}
	return p.statement()
}

func (p *parser) letDeclaration() (Stmt, *Error) {
	let := p.previous()
	name, err := p.consume(IDENT, "Expected variable name")
	if err != nil {
		return nil, err
	}

	var init Expr = &LiteralExpr{Token: name, Value: nil}
	if p.match(EQ) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(SEMICOLON, "Expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &LetStmt{Let: let, Name: name, Init: init}, nil
}

func (p *parser) fnDeclaration() (Stmt, *Error) {
	fn := p.previous()
	name, err := p.consume(IDENT, "Expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(LPAREN, "Expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []Token
	if !p.check(RPAREN) {
		for {
			param, err := p.consume(IDENT, "Expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(RPAREN, "Expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(LBRACE, "Expected '{' before function body"); err != nil {
		return nil, err
	}

	body, result, rbrace, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &FnStmt{Fn: fn, Name: name, Params: params, Body: body, Result: result, Rbrace: rbrace}, nil
}

func (p *parser) statement() (Stmt, *Error) {
	switch {
	case p.match(LOOP):
		return p.loopStatement()
	case p.match(WHILE):
		return p.whileStatement()
	case p.match(RETURN):
		return p.returnStatement()
	}
	return p.expressionStatement()
}

func (p *parser) expressionStatement() (Stmt, *Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "Expected ';' after expression."); err != nil {
		return nil, err
	}
	return &ExprStmt{X: expr}, nil
}

func (p *parser) loopStatement() (Stmt, *Error) {
	loop := p.previous()
	if _, err := p.consume(LBRACE, "Expected '{' after 'loop'."); err != nil {
		return nil, err
	}
	body, rbrace, err := p.stmtBlockBody()
	if err != nil {
		return nil, err
	}
	return &LoopStmt{Loop: loop, Body: body, Rbrace: rbrace}, nil
}

func (p *parser) whileStatement() (Stmt, *Error) {
	while := p.previous()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(LBRACE, "Expected '{' after 'while'."); err != nil {
		return nil, err
	}
	body, rbrace, err := p.stmtBlockBody()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{While: while, Cond: cond, Body: body, Rbrace: rbrace}, nil
}

func (p *parser) returnStatement() (Stmt, *Error) {
	ret := p.previous()
	var result Expr
	if !p.check(SEMICOLON) {
		var err *Error
		result, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(SEMICOLON, "Expected ';' after return value."); err != nil {
		return nil, err
	}
	return &ReturnStmt{Return: ret, Result: result}, nil
}

// stmtBlockBody parses a loop or while body. The grammar is the same
// as a block expression's; a trailing expression is kept as an
// expression statement whose value is discarded each iteration.
func (p *parser) stmtBlockBody() ([]Stmt, Token, *Error) {
	stmts, final, rbrace, err := p.blockBody()
	if err != nil {
		return nil, Token{}, err
	}
	if final != nil {
		stmts = append(stmts, &ExprStmt{X: final})
	}
	return stmts, rbrace, nil
}

// blockBody parses "declaration* expression? '}'" after an opening
// brace has been consumed. On a statement error it rewinds and retries
// the remainder as the block's trailing expression.
func (p *parser) blockBody() (stmts []Stmt, final Expr, rbrace Token, err *Error) {
	for !p.check(RBRACE) && !p.atEnd() {
		last, nerrs := p.current, len(p.errors)
		stmt, stmtErr := p.declaration()
		if stmtErr == nil {
			stmts = append(stmts, stmt)
			continue
		}

		// Rewind and retry as the trailing expression, retracting
		// soft errors from the failed attempt.
		saved := p.current
		p.current, p.errors = last, p.errors[:nerrs]
		expr, exprErr := p.expression()
		if exprErr != nil || !p.check(RBRACE) {
			p.current = saved
			return nil, nil, Token{}, stmtErr
		}
		final = expr
	}

	rbrace, err = p.consume(RBRACE, "Expected '}' after block")
	if err != nil {
		return nil, nil, Token{}, err
	}
	return stmts, final, rbrace, nil
}

func (p *parser) expression() (Expr, *Error) {
	return p.assignment()
}

func (p *parser) assignment() (Expr, *Error) {
	lhs, err := p.conditional()
	if err != nil {
		return nil, err
	}

	if p.match(EQ) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if v, ok := lhs.(*VarExpr); ok {
			return &AssignExpr{ID: p.gen.id(), Name: v.Name, Value: value}, nil
		}

		// Report but keep parsing with the left-hand expression as-is.
		p.errors = append(p.errors, Error{
			Kind: SyntaxError,
			Msg:  "Invalid left-hand side in assignment",
			Pos:  equals.Pos,
		})
	}

	return lhs, nil
}

func (p *parser) conditional() (Expr, *Error) {
	if p.match(IF) {
		ifTok := p.previous()
		cond, err := p.conditional()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(THEN, "Expected 'then' after 'if' condition."); err != nil {
			return nil, err
		}
		then, err := p.expression()
		if err != nil {
			return nil, err
		}
		var els Expr
		if p.match(ELSE) {
			els, err = p.expression()
			if err != nil {
				return nil, err
			}
		}
		return &IfExpr{If: ifTok, Cond: cond, Then: then, Else: els}, nil
	}

	return p.logic()
}

func (p *parser) logic() (Expr, *Error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(AMPAMP, PIPEPIPE) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{X: expr, Op: op, Y: right}
	}
	return expr, nil
}

func (p *parser) equality() (Expr, *Error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(NEQ, EQEQ) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{X: expr, Op: op, Y: right}
	}
	return expr, nil
}

func (p *parser) comparison() (Expr, *Error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GT, GE, LT, LE) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{X: expr, Op: op, Y: right}
	}
	return expr, nil
}

func (p *parser) term() (Expr, *Error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{X: expr, Op: op, Y: right}
	}
	return expr, nil
}

func (p *parser) factor() (Expr, *Error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(PERCENT, SLASH, STAR) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{X: expr, Op: op, Y: right}
	}
	return expr, nil
}

func (p *parser) unary() (Expr, *Error) {
	if p.match(BANG, MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, X: right}, nil
	}
	return p.block()
}

func (p *parser) block() (Expr, *Error) {
	if p.match(LBRACE) {
		lbrace := p.previous()
		stmts, final, rbrace, err := p.blockBody()
		if err != nil {
			return nil, err
		}
		return &BlockExpr{Lbrace: lbrace, Stmts: stmts, Final: final, Rbrace: rbrace}, nil
	}
	return p.call()
}

func (p *parser) call() (Expr, *Error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(LPAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *parser) finishCall(callee Expr) (Expr, *Error) {
	var args []Expr
	if !p.check(RPAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(COMMA) {
				break
			}
		}
	}
	rparen, err := p.consume(RPAREN, "Expected ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &CallExpr{Fn: callee, Rparen: rparen, Args: args}, nil
}

func (p *parser) primary() (Expr, *Error) {
	switch {
	case p.match(FALSE):
		return &LiteralExpr{Token: p.previous(), Value: false}, nil
	case p.match(TRUE):
		return &LiteralExpr{Token: p.previous(), Value: true}, nil
	case p.match(NULL):
		return &LiteralExpr{Token: p.previous(), Value: nil}, nil
	case p.match(NUMBER):
		tok := p.previous()
		return &LiteralExpr{Token: tok, Value: tok.Number}, nil
	case p.match(STRING):
		tok := p.previous()
		return &LiteralExpr{Token: tok, Value: tok.Text}, nil
	case p.match(IDENT):
		return &VarExpr{ID: p.gen.id(), Name: p.previous()}, nil
	case p.match(LPAREN):
		lparen := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		rparen, err := p.consume(RPAREN, "Expected ')' after expression")
		if err != nil {
			return nil, err
		}
		return &GroupExpr{Lparen: lparen, X: expr, Rparen: rparen}, nil
	}

	return nil, p.errorAt(p.peek(), "Expected expression")
}

func (p *parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) consume(kind TokenKind, message string) (Token, *Error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), message)
}

func (p *parser) check(kind TokenKind) bool { return p.peek().Kind == kind }

func (p *parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) atEnd() bool { return p.peek().Kind == EOF }

func (p *parser) peek() Token { return p.tokens[p.current] }

func (p *parser) previous() Token { return p.tokens[p.current-1] }

func (p *parser) errorAt(tok Token, message string) *Error {
	return &Error{Kind: SyntaxError, Msg: message, Pos: tok.Pos}
}
