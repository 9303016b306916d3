// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve performs fluet's static binding-resolution pass.
//
// For every variable reference and assignment target, the resolver
// computes the number of lexical scopes between the use site and the
// declaration site. The result is a side table keyed by use-site id,
// consumed by the evaluator to replace linear environment-chain walks
// with fixed-distance lookups. A name with no table entry resolves in
// the global scope at run time.
//
// Binding a declaration is a two-step dance: the name is declared
// (present but uninitialized) before its initializer is resolved, and
// defined only afterwards, so "let x = x;" is caught here as a
// SyntaxError instead of silently reaching an outer x.
package resolve

import (
	"fmt"

	"github.com/fluetlang/fluet/syntax"
)

// A Table maps variable-reference and assignment use-site ids to
// scope distances: the number of parent links between the use site's
// environment and the frame holding the binding.
type Table map[int]int

// Program resolves a parsed program.
// The first binding error aborts the pass.
func Program(stmts []syntax.Stmt) (Table, error) {
	return Chunk(stmts, nil)
}

// Chunk resolves a REPL chunk: statements plus an optional trailing
// expression.
func Chunk(stmts []syntax.Stmt, final syntax.Expr) (Table, error) {
	r := &resolver{
		// The outermost scope tracks top-level declarations for the
		// self-initializer check only; names bound there resolve in
		// the global scope and get no table entry.
		scopes: []map[string]bool{{}},
		table:  make(Table),
	}
	if err := r.stmts(stmts); err != nil {
		return nil, err
	}
	if final != nil {
		if err := r.expr(final); err != nil {
			return nil, err
		}
	}
	return r.table, nil
}

type resolver struct {
	scopes []map[string]bool // innermost last; value false = declared, true = defined
	table  Table
}

func (r *resolver) stmts(stmts []syntax.Stmt) error {
	for _, stmt := range stmts {
		if err := r.stmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) stmt(stmt syntax.Stmt) error {
	switch stmt := stmt.(type) {
	case *syntax.ExprStmt:
		return r.expr(stmt.X)

	case *syntax.LetStmt:
		r.declare(stmt.Name)
		if err := r.expr(stmt.Init); err != nil {
			return err
		}
		r.define(stmt.Name)
		return nil

	case *syntax.FnStmt:
		// The function name is defined before the body is resolved,
		// so the body may recurse.
		r.declare(stmt.Name)
		r.define(stmt.Name)

		r.beginScope()
		defer r.endScope()
		for _, param := range stmt.Params {
			r.declare(param)
			r.define(param)
		}
		if err := r.stmts(stmt.Body); err != nil {
			return err
		}
		if stmt.Result != nil {
			return r.expr(stmt.Result)
		}
		return nil

	case *syntax.LoopStmt:
		r.beginScope()
		defer r.endScope()
		return r.stmts(stmt.Body)

	case *syntax.WhileStmt:
		if err := r.expr(stmt.Cond); err != nil {
			return err
		}
		r.beginScope()
		defer r.endScope()
		return r.stmts(stmt.Body)

	case *syntax.ReturnStmt:
		if stmt.Result != nil {
			return r.expr(stmt.Result)
		}
		return nil
	}

	panic(fmt.Sprintf("resolve: unexpected statement %T", stmt))
}

func (r *resolver) expr(expr syntax.Expr) error {
	switch expr := expr.(type) {
	case *syntax.LiteralExpr:
		return nil

	case *syntax.VarExpr:
		if declared, ok := r.innermost()[expr.Name.Lexeme]; ok && !declared {
			return &syntax.Error{
				Kind: syntax.SyntaxError,
				Msg:  fmt.Sprintf("Cannot read local variable %s in its own initializer", expr.Name.Lexeme),
				Pos:  expr.Name.Pos,
			}
		}
		r.resolveLocal(expr.ID, expr.Name)
		return nil

	case *syntax.AssignExpr:
		if err := r.expr(expr.Value); err != nil {
			return err
		}
		r.resolveLocal(expr.ID, expr.Name)
		return nil

	case *syntax.UnaryExpr:
		return r.expr(expr.X)

	case *syntax.BinaryExpr:
		if err := r.expr(expr.X); err != nil {
			return err
		}
		return r.expr(expr.Y)

	case *syntax.LogicalExpr:
		if err := r.expr(expr.X); err != nil {
			return err
		}
		return r.expr(expr.Y)

	case *syntax.GroupExpr:
		return r.expr(expr.X)

	case *syntax.CallExpr:
		if err := r.expr(expr.Fn); err != nil {
			return err
		}
		for _, arg := range expr.Args {
			if err := r.expr(arg); err != nil {
				return err
			}
		}
		return nil

	case *syntax.IfExpr:
		if err := r.expr(expr.Cond); err != nil {
			return err
		}
		if err := r.expr(expr.Then); err != nil {
			return err
		}
		if expr.Else != nil {
			return r.expr(expr.Else)
		}
		return nil

	case *syntax.BlockExpr:
		r.beginScope()
		defer r.endScope()
		if err := r.stmts(expr.Stmts); err != nil {
			return err
		}
		if expr.Final != nil {
			return r.expr(expr.Final)
		}
		return nil
	}

	panic(fmt.Sprintf("resolve: unexpected expression %T", expr))
}

// resolveLocal walks the scope stack from innermost outward. The
// first scope containing the name fixes the distance recorded in the
// table; a name found only in the outermost (top-level) scope, or in
// no scope, resolves in the global scope and gets no entry.
func (r *resolver) resolveLocal(id int, name syntax.Token) {
	for i := len(r.scopes) - 1; i > 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.table[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) declare(name syntax.Token) {
	r.innermost()[name.Lexeme] = false
}

func (r *resolver) define(name syntax.Token) {
	r.innermost()[name.Lexeme] = true
}

func (r *resolver) innermost() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}
