// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides a fluet scanner, parser, and abstract
// syntax tree.
package syntax

// A Node is a node in a fluet syntax tree.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)
}

// Start returns the start position of the node.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the node.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// A Stmt is a fluet statement.
type Stmt interface {
	Node
	stmt()
}

func (*ExprStmt) stmt()   {}
func (*FnStmt) stmt()     {}
func (*LetStmt) stmt()    {}
func (*LoopStmt) stmt()   {}
func (*ReturnStmt) stmt() {}
func (*WhileStmt) stmt()  {}

// An ExprStmt is an expression evaluated for its side effects;
// at top level its value is discarded.
type ExprStmt struct {
	X Expr
}

func (x *ExprStmt) Span() (start, end Position) { return x.X.Span() }

// A LetStmt declares a new binding in the current scope: let x = e;
// An omitted initializer defaults to null.
type LetStmt struct {
	Let  Token
	Name Token
	Init Expr
}

func (x *LetStmt) Span() (start, end Position) {
	_, end = x.Init.Span()
	return x.Let.Pos, end
}

// A FnStmt declares a named closure: fn name(params) { body }.
// Result is the body's trailing expression, the implicit return
// value; it may be nil, in which case the function yields null.
type FnStmt struct {
	Fn     Token
	Name   Token
	Params []Token
	Body   []Stmt
	Result Expr // may be nil
	Rbrace Token
}

func (x *FnStmt) Span() (start, end Position) {
	return x.Fn.Pos, x.Rbrace.Pos.add(x.Rbrace.Lexeme)
}

// A LoopStmt repeats its body unconditionally: loop { body }.
// The only exits are a return propagating through the enclosing call,
// or an error.
type LoopStmt struct {
	Loop   Token
	Body   []Stmt
	Rbrace Token
}

func (x *LoopStmt) Span() (start, end Position) {
	return x.Loop.Pos, x.Rbrace.Pos.add(x.Rbrace.Lexeme)
}

// A WhileStmt is a conditional loop: while cond { body }.
type WhileStmt struct {
	While  Token
	Cond   Expr
	Body   []Stmt
	Rbrace Token
}

func (x *WhileStmt) Span() (start, end Position) {
	return x.While.Pos, x.Rbrace.Pos.add(x.Rbrace.Lexeme)
}

// A ReturnStmt returns early from a function: return e;
// An omitted result yields null.
type ReturnStmt struct {
	Return Token
	Result Expr // may be nil
}

func (x *ReturnStmt) Span() (start, end Position) {
	if x.Result == nil {
		return x.Return.Pos, x.Return.Pos.add(x.Return.Lexeme)
	}
	_, end = x.Result.Span()
	return x.Return.Pos, end
}

// An Expr is a fluet expression.
type Expr interface {
	Node
	expr()
}

func (*AssignExpr) expr()  {}
func (*BinaryExpr) expr()  {}
func (*BlockExpr) expr()   {}
func (*CallExpr) expr()    {}
func (*GroupExpr) expr()   {}
func (*IfExpr) expr()      {}
func (*LiteralExpr) expr() {}
func (*LogicalExpr) expr() {}
func (*UnaryExpr) expr()   {}
func (*VarExpr) expr()     {}

// A LiteralExpr is a literal number, string, boolean, or null.
// Value is float64, string, bool, or nil (for null).
type LiteralExpr struct {
	Token Token
	Value interface{}
}

func (x *LiteralExpr) Span() (start, end Position) {
	return x.Token.Pos, x.Token.Pos.add(x.Token.Lexeme)
}

// A VarExpr is a reference to a variable by name.
//
// ID is unique across all expressions produced by one IDGen; the
// resolver's side table is keyed on it, so that this particular use
// site (not the node's address) carries its resolution.
type VarExpr struct {
	ID   int
	Name Token
}

func (x *VarExpr) Span() (start, end Position) {
	return x.Name.Pos, x.Name.Pos.add(x.Name.Lexeme)
}

// An AssignExpr assigns a new value to a variable: x = e.
// Like VarExpr, it carries a use-site ID for the resolver.
type AssignExpr struct {
	ID    int
	Name  Token
	Value Expr
}

func (x *AssignExpr) Span() (start, end Position) {
	_, end = x.Value.Span()
	return x.Name.Pos, end
}

// A UnaryExpr is a prefix operator application: !x or -x.
type UnaryExpr struct {
	Op Token
	X  Expr
}

func (x *UnaryExpr) Span() (start, end Position) {
	_, end = x.X.Span()
	return x.Op.Pos, end
}

// A BinaryExpr is a binary operator application: x + y, x < y, ...
type BinaryExpr struct {
	X  Expr
	Op Token
	Y  Expr
}

func (x *BinaryExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	_, end = x.Y.Span()
	return start, end
}

// A LogicalExpr is a short-circuiting && or ||. It is distinct from
// BinaryExpr because its right operand must not be evaluated
// unconditionally.
type LogicalExpr struct {
	X  Expr
	Op Token
	Y  Expr
}

func (x *LogicalExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	_, end = x.Y.Span()
	return start, end
}

// A GroupExpr is a parenthesized expression: (x).
type GroupExpr struct {
	Lparen Token
	X      Expr
	Rparen Token
}

func (x *GroupExpr) Span() (start, end Position) {
	return x.Lparen.Pos, x.Rparen.Pos.add(x.Rparen.Lexeme)
}

// A CallExpr is a function call: f(args). Rparen is the call-site
// token used for diagnostics.
type CallExpr struct {
	Fn     Expr
	Rparen Token
	Args   []Expr
}

func (x *CallExpr) Span() (start, end Position) {
	start, _ = x.Fn.Span()
	return start, x.Rparen.Pos.add(x.Rparen.Lexeme)
}

// An IfExpr is a conditional expression: if cond then e1 else e2.
// It yields a value; an omitted else branch (Else == nil) yields null.
type IfExpr struct {
	If   Token
	Cond Expr
	Then Expr
	Else Expr // may be nil
}

func (x *IfExpr) Span() (start, end Position) {
	if x.Else != nil {
		_, end = x.Else.Span()
	} else {
		_, end = x.Then.Span()
	}
	return x.If.Pos, end
}

// A BlockExpr is a brace-delimited statement sequence followed by an
// optional trailing expression whose value becomes the block's value;
// with no trailing expression the block yields null.
type BlockExpr struct {
	Lbrace Token
	Stmts  []Stmt
	Final  Expr // may be nil
	Rbrace Token
}

func (x *BlockExpr) Span() (start, end Position) {
	return x.Lbrace.Pos, x.Rbrace.Pos.add(x.Rbrace.Lexeme)
}
