// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluet

// This file defines the tree-walking evaluator.
//
// Execution is single-threaded and synchronous. The only state shared
// between expressions is the environment chain, touched solely by the
// goroutine driving ExecFile/ExecREPLChunk, so no locking is needed.
// Recursion depth is bounded only by the Go stack.

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fluetlang/fluet/resolve"
	"github.com/fluetlang/fluet/syntax"
)

// An Interp evaluates fluet programs. One Interp may be kept alive
// across REPL lines: the global scope, the id generator, and the
// cumulative resolution table persist between calls, and mutations
// made before a failing expression remain visible afterwards.
//
// An Interp is not safe for concurrent use.
type Interp struct {
	// Stdout and Stderr receive the output of the print and eprint
	// natives. They default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	predeclared *Env // host natives, the bottom of every chain
	globals     *Env // persistent top-level frame, child of predeclared
	env         *Env // current environment
	gen         syntax.IDGen
	locals      resolve.Table // cumulative use-site id -> scope distance

	// pending is the pending-return slot. While set, statement
	// execution is a no-op until the call boundary that owns the
	// slot consumes it.
	pending Value
}

// New returns an interpreter whose global scope contains the
// Universe of host natives.
func New() *Interp {
	predeclared := NewEnv(nil)
	for name, v := range Universe {
		predeclared.Define(name, v)
	}
	globals := NewEnv(predeclared)
	return &Interp{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		predeclared: predeclared,
		globals:     globals,
		env:         globals,
		locals:      make(resolve.Table),
	}
}

// Globals returns the persistent top-level scope frame.
func (in *Interp) Globals() *Env { return in.globals }

// ExecFile scans, parses, resolves, and executes a whole program.
// It returns the value of the last executed statement, or Null for an
// empty program. Any syntax error prevents execution.
func (in *Interp) ExecFile(filename, src string) (Value, error) {
	stmts, err := syntax.Parse(filename, src, &in.gen)
	if err != nil {
		return nil, err
	}
	table, err := resolve.Program(stmts)
	if err != nil {
		return nil, err
	}
	in.extendLocals(table)
	return in.interpret(stmts, nil)
}

// ExecREPLChunk executes one line of interactive input: statements
// followed by an optional trailing expression whose value becomes the
// chunk's value. Top-level bindings land in the interpreter's
// persistent global scope, so later chunks can reference them.
func (in *Interp) ExecREPLChunk(filename, src string) (Value, error) {
	stmts, final, err := syntax.ParseREPLChunk(filename, src, &in.gen)
	if err != nil {
		return nil, err
	}
	table, err := resolve.Chunk(stmts, final)
	if err != nil {
		return nil, err
	}
	in.extendLocals(table)
	return in.interpret(stmts, final)
}

// extendLocals merges one resolve pass's side table into the
// interpreter's cumulative table. Entries are never pruned; use-site
// ids increase monotonically across the session, so stale keys cannot
// collide with new ones.
func (in *Interp) extendLocals(table resolve.Table) {
	for id, depth := range table {
		in.locals[id] = depth
	}
}

func (in *Interp) interpret(stmts []syntax.Stmt, final syntax.Expr) (Value, error) {
	var result Value = Null
	for _, stmt := range stmts {
		if in.pending != nil {
			break
		}
		v, err := in.execute(stmt)
		if err != nil {
			return nil, err
		}
		result = v
	}
	if final != nil && in.pending == nil {
		v, err := in.evaluate(final)
		if err != nil {
			return nil, err
		}
		result = v
	}
	// A return at top level acts as the program's final value.
	if in.pending != nil {
		result = in.pending
		in.pending = nil
	}
	return result, nil
}

func (in *Interp) execute(stmt syntax.Stmt) (Value, error) {
	switch stmt := stmt.(type) {
	case *syntax.ExprStmt:
		return in.evaluate(stmt.X)

	case *syntax.LetStmt:
		v, err := in.evaluate(stmt.Init)
		if err != nil {
			return nil, err
		}
		in.env.Define(stmt.Name.Lexeme, v)
		return v, nil

	case *syntax.FnStmt:
		in.env.Define(stmt.Name.Lexeme, &Function{decl: stmt, env: in.env})
		return Null, nil

	case *syntax.LoopStmt:
		return in.executeLoop(stmt)

	case *syntax.WhileStmt:
		return in.executeWhile(stmt)

	case *syntax.ReturnStmt:
		var v Value = Null
		if stmt.Result != nil {
			var err error
			v, err = in.evaluate(stmt.Result)
			if err != nil {
				return nil, err
			}
		}
		in.pending = v
		return Null, nil
	}

	panic(fmt.Sprintf("fluet: unexpected statement %T", stmt))
}

// executeLoop repeats the body forever, each iteration in a fresh
// child scope. There is no break construct: the only exits are a
// return propagating to its owning call, or an error.
func (in *Interp) executeLoop(stmt *syntax.LoopStmt) (Value, error) {
	for {
		if err := in.executeBody(stmt.Body); err != nil {
			return nil, err
		}
		if in.pending != nil {
			return Null, nil
		}
	}
}

func (in *Interp) executeWhile(stmt *syntax.WhileStmt) (Value, error) {
	for {
		cond, err := in.evaluate(stmt.Cond)
		if err != nil {
			return nil, err
		}
		ok, err := in.truthRestrictive(cond, syntax.Start(stmt.Cond))
		if err != nil {
			return nil, err
		}
		if !ok {
			return Null, nil
		}
		if err := in.executeBody(stmt.Body); err != nil {
			return nil, err
		}
		if in.pending != nil {
			return Null, nil
		}
	}
}

// executeBody runs a statement list in a fresh child environment.
// The previous environment is restored on every exit path.
func (in *Interp) executeBody(stmts []syntax.Stmt) error {
	prev := in.env
	in.env = NewEnv(prev)
	defer func() { in.env = prev }()

	for _, stmt := range stmts {
		if in.pending != nil {
			return nil
		}
		if _, err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) evaluate(expr syntax.Expr) (Value, error) {
	switch expr := expr.(type) {
	case *syntax.LiteralExpr:
		return literalValue(expr), nil

	case *syntax.VarExpr:
		return in.lookupVariable(expr.ID, expr.Name)

	case *syntax.AssignExpr:
		return in.evaluateAssign(expr)

	case *syntax.UnaryExpr:
		return in.evaluateUnary(expr)

	case *syntax.BinaryExpr:
		return in.evaluateBinary(expr)

	case *syntax.LogicalExpr:
		return in.evaluateLogical(expr)

	case *syntax.GroupExpr:
		return in.evaluate(expr.X)

	case *syntax.CallExpr:
		return in.evaluateCall(expr)

	case *syntax.IfExpr:
		return in.evaluateIf(expr)

	case *syntax.BlockExpr:
		return in.evaluateBlock(expr)
	}

	panic(fmt.Sprintf("fluet: unexpected expression %T", expr))
}

func literalValue(expr *syntax.LiteralExpr) Value {
	switch v := expr.Value.(type) {
	case float64:
		return Number(v)
	case string:
		return String(v)
	case bool:
		return Bool(v)
	case nil:
		return Null
	}
	panic(fmt.Sprintf("fluet: unexpected literal %T", expr.Value))
}

// lookupVariable reads a variable: a use site with a resolved
// distance walks exactly that many parent links; everything else
// falls back to the global scope.
func (in *Interp) lookupVariable(id int, name syntax.Token) (Value, error) {
	if distance, ok := in.locals[id]; ok {
		return in.env.getAt(distance, name.Lexeme), nil
	}
	if v, ok := in.globals.Lookup(name.Lexeme); ok {
		return v, nil
	}
	return nil, in.undefined(name)
}

func (in *Interp) evaluateAssign(expr *syntax.AssignExpr) (Value, error) {
	v, err := in.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[expr.ID]; ok {
		in.env.setAt(distance, expr.Name.Lexeme, v)
		return v, nil
	}
	// Unresolved assignment mutates the global scope directly,
	// without walking the current environment chain.
	if !in.globals.Assign(expr.Name.Lexeme, v) {
		return nil, in.undefined(expr.Name)
	}
	return v, nil
}

func (in *Interp) undefined(name syntax.Token) error {
	msg := fmt.Sprintf("%s is not defined", name.Lexeme)
	if near := nearest(name.Lexeme, in.env.Names()); near != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", near)
	}
	return &syntax.Error{Kind: syntax.RuntimeError, Msg: msg, Pos: name.Pos}
}

func (in *Interp) evaluateUnary(expr *syntax.UnaryExpr) (Value, error) {
	v, err := in.evaluate(expr.X)
	if err != nil {
		return nil, err
	}
	switch expr.Op.Kind {
	case syntax.MINUS:
		if n, ok := v.(Number); ok {
			return -n, nil
		}
		return nil, &syntax.Error{
			Kind: syntax.TypeError,
			Msg:  "Unary minus operator can only be applied to numbers",
			Pos:  expr.Op.Pos,
		}
	case syntax.BANG:
		return Bool(!Truth(v)), nil
	}
	panic(fmt.Sprintf("fluet: unexpected unary operator %s", expr.Op.Kind))
}

func (in *Interp) evaluateBinary(expr *syntax.BinaryExpr) (Value, error) {
	x, err := in.evaluate(expr.X)
	if err != nil {
		return nil, err
	}
	y, err := in.evaluate(expr.Y)
	if err != nil {
		return nil, err
	}

	op := expr.Op
	switch op.Kind {
	case syntax.EQEQ:
		return Bool(Equal(x, y)), nil
	case syntax.NEQ:
		return Bool(!Equal(x, y)), nil
	}

	if xn, ok := x.(Number); ok {
		if yn, ok := y.(Number); ok {
			switch op.Kind {
			case syntax.GT:
				return Bool(xn > yn), nil
			case syntax.GE:
				return Bool(xn >= yn), nil
			case syntax.LT:
				return Bool(xn < yn), nil
			case syntax.LE:
				return Bool(xn <= yn), nil
			case syntax.PLUS:
				return xn + yn, nil
			case syntax.MINUS:
				return xn - yn, nil
			case syntax.STAR:
				return xn * yn, nil
			case syntax.SLASH:
				// IEEE semantics: division by zero is inf or NaN.
				return xn / yn, nil
			case syntax.PERCENT:
				// Truncated remainder: the result takes the
				// sign of the dividend.
				return Number(math.Mod(float64(xn), float64(yn))), nil
			}
		}
	}

	// String concatenation: string with string, and string with any
	// other value via its display form, on either side.
	if op.Kind == syntax.PLUS {
		_, xs := x.(String)
		_, ys := y.(String)
		if xs || ys {
			return String(rawText(x) + rawText(y)), nil
		}
	}

	return nil, &syntax.Error{
		Kind: syntax.TypeError,
		Msg:  fmt.Sprintf("invalid binary operation '%s'", op.Lexeme),
		Pos:  op.Pos,
	}
}

func (in *Interp) evaluateLogical(expr *syntax.LogicalExpr) (Value, error) {
	x, err := in.evaluate(expr.X)
	if err != nil {
		return nil, err
	}
	// Short circuit: the untouched operand value is returned, not a
	// coerced boolean.
	switch expr.Op.Kind {
	case syntax.AMPAMP:
		if !Truth(x) {
			return x, nil
		}
	case syntax.PIPEPIPE:
		if Truth(x) {
			return x, nil
		}
	default:
		panic(fmt.Sprintf("fluet: unexpected logical operator %s", expr.Op.Kind))
	}
	return in.evaluate(expr.Y)
}

func (in *Interp) evaluateIf(expr *syntax.IfExpr) (Value, error) {
	cond, err := in.evaluate(expr.Cond)
	if err != nil {
		return nil, err
	}
	ok, err := in.truthRestrictive(cond, syntax.Start(expr.Cond))
	if err != nil {
		return nil, err
	}
	if ok {
		return in.evaluate(expr.Then)
	}
	if expr.Else != nil {
		return in.evaluate(expr.Else)
	}
	return Null, nil
}

func (in *Interp) evaluateBlock(expr *syntax.BlockExpr) (Value, error) {
	prev := in.env
	in.env = NewEnv(prev)
	defer func() { in.env = prev }()

	for _, stmt := range expr.Stmts {
		if in.pending != nil {
			break
		}
		if _, err := in.execute(stmt); err != nil {
			return nil, err
		}
	}
	if in.pending != nil {
		return in.pending, nil
	}
	if expr.Final != nil {
		return in.evaluate(expr.Final)
	}
	return Null, nil
}

func (in *Interp) evaluateCall(expr *syntax.CallExpr) (Value, error) {
	callee, err := in.evaluate(expr.Fn)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(expr.Args))
	for _, arg := range expr.Args {
		v, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(callable)
	if !ok {
		return nil, &syntax.Error{
			Kind: syntax.TypeError,
			Msg:  fmt.Sprintf("Cannot call value of type '%s'", callee.Type()),
			Pos:  expr.Rparen.Pos,
		}
	}
	if len(args) != fn.Arity() {
		return nil, &syntax.Error{
			Kind: syntax.RuntimeError,
			Msg:  fmt.Sprintf("Expected %d arguments but got %d", fn.Arity(), len(args)),
			Pos:  expr.Rparen.Pos,
		}
	}
	return fn.call(in, args, expr.Rparen.Pos)
}

// call invokes a user function: a fresh environment parented at the
// function's captured environment (not the caller's), parameters
// bound positionally, then the body. The function yields the pending
// return value if a return fired, else the body's trailing
// expression, else null.
func (fn *Function) call(in *Interp, args []Value, pos syntax.Position) (Value, error) {
	prevEnv, prevPending := in.env, in.pending
	in.env = NewEnv(fn.env)
	in.pending = nil
	defer func() { in.env, in.pending = prevEnv, prevPending }()

	for i, param := range fn.decl.Params {
		in.env.Define(param.Lexeme, args[i])
	}

	for _, stmt := range fn.decl.Body {
		if in.pending != nil {
			break
		}
		if _, err := in.execute(stmt); err != nil {
			return nil, err
		}
	}
	if in.pending != nil {
		return in.pending, nil
	}
	if fn.decl.Result != nil {
		return in.evaluate(fn.decl.Result)
	}
	return Null, nil
}

func (b *Builtin) call(in *Interp, args []Value, pos syntax.Position) (Value, error) {
	return b.fn(in, args)
}

// truthRestrictive implements the truthiness rule for if and while
// conditions: only Bool and Null are acceptable; any other kind is a
// TypeError.
func (in *Interp) truthRestrictive(v Value, pos syntax.Position) (bool, error) {
	switch v := v.(type) {
	case Bool:
		return bool(v), nil
	case NullType:
		return false, nil
	}
	return false, &syntax.Error{
		Kind: syntax.TypeError,
		Msg:  "Expected a boolean or null",
		Pos:  pos,
	}
}
