// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Walk traverses a syntax tree in depth-first order.
// It starts by calling f(n); n must not be nil.
// If f returns true, Walk calls itself recursively for each
// non-nil child of n, then calls f(nil).
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		panic("nil")
	}
	if !f(n) {
		return
	}

	switch n := n.(type) {
	case *ExprStmt:
		Walk(n.X, f)
	case *LetStmt:
		Walk(n.Init, f)
	case *FnStmt:
		walkStmts(n.Body, f)
		if n.Result != nil {
			Walk(n.Result, f)
		}
	case *LoopStmt:
		walkStmts(n.Body, f)
	case *WhileStmt:
		Walk(n.Cond, f)
		walkStmts(n.Body, f)
	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, f)
		}
	case *LiteralExpr:
		// nothing to do
	case *VarExpr:
		// nothing to do
	case *AssignExpr:
		Walk(n.Value, f)
	case *UnaryExpr:
		Walk(n.X, f)
	case *BinaryExpr:
		Walk(n.X, f)
		Walk(n.Y, f)
	case *LogicalExpr:
		Walk(n.X, f)
		Walk(n.Y, f)
	case *GroupExpr:
		Walk(n.X, f)
	case *CallExpr:
		Walk(n.Fn, f)
		for _, arg := range n.Args {
			Walk(arg, f)
		}
	case *IfExpr:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		if n.Else != nil {
			Walk(n.Else, f)
		}
	case *BlockExpr:
		walkStmts(n.Stmts, f)
		if n.Final != nil {
			Walk(n.Final, f)
		}
	default:
		panic(n)
	}

	f(nil)
}

func walkStmts(stmts []Stmt, f func(Node) bool) {
	for _, stmt := range stmts {
		Walk(stmt, f)
	}
}
