// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fluet provides the fluet runtime: values, environments, and
// the tree-walking evaluator.
package fluet

import (
	"fmt"
	"math"

	"github.com/fluetlang/fluet/syntax"
)

// Value is a value in the fluet interpreter: one of Number, String,
// Bool, Null, *Function, or *Builtin. The set of variants is closed.
type Value interface {
	// String returns the display form of the value.
	// Strings render quoted; print and string concatenation use the
	// raw text instead.
	String() string
	// Type returns the name of the value's kind.
	Type() string
}

// A Number is a fluet number: an IEEE double.
type Number float64

func (n Number) String() string {
	f := float64(n)
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

func (n Number) Type() string { return "number" }

// A String is a fluet string.
type String string

func (s String) String() string { return "'" + string(s) + "'" }
func (s String) Type() string   { return "string" }

// A Bool is a fluet boolean.
type Bool bool

const (
	False Bool = false
	True  Bool = true
)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Type() string { return "bool" }

// NullType is the type of Null. Its only legal value is Null.
type NullType byte

// Null is the fluet null value.
const Null = NullType(0)

func (NullType) String() string { return "null" }
func (NullType) Type() string   { return "null" }

// A Function is a user-defined function: a declaration closed over
// the environment in force at its declaration site. The environment
// is shared, not copied, so mutations of captured variables are
// visible to every closure capturing them.
type Function struct {
	decl *syntax.FnStmt
	env  *Env
}

func (fn *Function) Name() string   { return fn.decl.Name.Lexeme }
func (fn *Function) Arity() int     { return len(fn.decl.Params) }
func (fn *Function) String() string { return "<fn " + fn.Name() + ">" }
func (fn *Function) Type() string   { return "function" }

// A NativeFunc is the Go implementation of a host-provided builtin.
// Natives may perform host I/O through the interpreter handle.
type NativeFunc func(in *Interp, args []Value) (Value, error)

// A Builtin is a host-provided native function with a fixed arity,
// checked by the evaluator before invocation.
type Builtin struct {
	name  string
	arity int
	fn    NativeFunc
}

// NewBuiltin returns a native function value implemented by fn.
func NewBuiltin(name string, arity int, fn NativeFunc) *Builtin {
	return &Builtin{name: name, arity: arity, fn: fn}
}

func (b *Builtin) Name() string   { return b.name }
func (b *Builtin) Arity() int     { return b.arity }
func (b *Builtin) String() string { return "<native fn " + b.name + ">" }
func (b *Builtin) Type() string   { return "native function" }

// A callable is a Value the evaluator may invoke: *Function or
// *Builtin. The call method is unexported to keep the variant set
// closed.
type callable interface {
	Value
	Arity() int
	call(in *Interp, args []Value, pos syntax.Position) (Value, error)
}

var (
	_ callable = (*Function)(nil)
	_ callable = (*Builtin)(nil)
)

// Truth implements ordinary truthiness, used by ! and by && / ||:
// false and null are false, everything else is true. It never fails.
func Truth(v Value) bool {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case NullType:
		return false
	}
	return true
}

// Equal implements structural equality across matching value kinds.
// Mismatched kinds are never equal, never an error; functions are
// never equal to anything, themselves included.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case Number:
		y, ok := y.(Number)
		return ok && x == y
	case String:
		y, ok := y.(String)
		return ok && x == y
	case Bool:
		y, ok := y.(Bool)
		return ok && x == y
	case NullType:
		_, ok := y.(NullType)
		return ok
	}
	return false
}

// rawText returns the unquoted text of strings and the display form
// of everything else; it is the form used by print, eprint, and
// string concatenation.
func rawText(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	return v.String()
}
