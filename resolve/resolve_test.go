// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fluetlang/fluet/resolve"
	"github.com/fluetlang/fluet/syntax"
)

// resolveString parses and resolves src, then renders each variable
// use site in source order as "name@distance", or "name@global" for
// use sites with no table entry.
func resolveString(src string) (string, error) {
	stmts, err := syntax.Parse("resolve.fluet", src, nil)
	if err != nil {
		return "", err
	}
	table, err := resolve.Program(stmts)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, stmt := range stmts {
		syntax.Walk(stmt, func(n syntax.Node) bool {
			var id int
			var name string
			switch n := n.(type) {
			case *syntax.VarExpr:
				id, name = n.ID, n.Name.Lexeme
			case *syntax.AssignExpr:
				id, name = n.ID, n.Name.Lexeme
			default:
				return true
			}
			if d, ok := table[id]; ok {
				parts = append(parts, fmt.Sprintf("%s@%d", name, d))
			} else {
				parts = append(parts, name+"@global")
			}
			return true
		})
	}
	return strings.Join(parts, " "), nil
}

func TestResolveDistances(t *testing.T) {
	for _, test := range []struct {
		src, want string
	}{
		// Top-level names resolve in the global scope.
		{`let x = 1; x;`,
			"x@global"},
		{`let x = 1; x = 2;`,
			"x@global"},

		// A block binding is local to the block.
		{`let x = 1; { let y = 2; y; x; };`,
			"y@0 x@global"},

		// Shadowing: the inner x is a new binding.
		{`let x = 1; { let x = 2; x; };`,
			"x@0"},

		// Nested blocks: distance counts intervening scopes.
		{`{ let x = 1; x; { x; { x; }; }; };`,
			"x@0 x@1 x@2"},

		// Function parameters live in the call frame.
		{`fn f(a) { a }`,
			"a@0"},

		// A function may call itself by name.
		{`fn f(n) { f(n); }`,
			"f@global n@0"},

		// A local captured by a nested function body.
		{`fn outer(x) { fn inner() { x } }`,
			"x@1"},

		// While condition resolves outside the body scope.
		{`let i = 0; while i < 3 { let j = i; j; }`,
			"i@global i@global j@0"},

		// Initializers resolve before the name is defined, so this
		// x is the enclosing one.
		{`let x = 1; { let y = x; };`,
			"x@global"},

		// Assignment inside a block to an outer local.
		{`{ let n = 0; { n = n + 1; }; };`,
			"n@1 n@1"},
	} {
		got, err := resolveString(test.src)
		if err != nil {
			t.Errorf("resolve `%s` failed: %v", test.src, err)
			continue
		}
		if got != test.want {
			t.Errorf("resolve `%s` = %s, want %s", test.src, got, test.want)
		}
	}
}

func TestSelfInitializer(t *testing.T) {
	for _, src := range []string{
		`let x = x;`,
		`{ let x = x; };`,
		`let x = 1; { let x = x; };`, // shadowing declaration may not read itself
		`fn f() { let y = y; }`,
	} {
		_, err := resolveString(src)
		if err == nil {
			t.Errorf("resolve `%s` succeeded, want error", src)
			continue
		}
		e, ok := err.(*syntax.Error)
		if !ok {
			t.Errorf("resolve `%s` returned %T, want *syntax.Error", src, err)
			continue
		}
		if e.Kind != syntax.SyntaxError {
			t.Errorf("resolve `%s` kind = %v, want SyntaxError", src, e.Kind)
		}
		if !strings.Contains(e.Msg, "in its own initializer") {
			t.Errorf("resolve `%s` msg = %q", src, e.Msg)
		}
	}
}

// An undeclared name is not a resolve error: it may be defined by a
// later REPL chunk or by the host, so the reference is left to the
// global fallback.
func TestUndeclaredIsDeferred(t *testing.T) {
	got, err := resolveString(`undeclared(1);`)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "undeclared@global" {
		t.Errorf("got %s, want undeclared@global", got)
	}
}

func TestChunkFinalExpr(t *testing.T) {
	stmts, final, err := syntax.ParseREPLChunk("repl", "let x = 1; { let y = x; y }", nil)
	if err != nil {
		t.Fatal(err)
	}
	table, err := resolve.Chunk(stmts, final)
	if err != nil {
		t.Fatal(err)
	}

	// The final block's y use site must be resolved at distance 0.
	block, ok := final.(*syntax.BlockExpr)
	if !ok {
		t.Fatalf("final is %T, want *BlockExpr", final)
	}
	y, ok := block.Final.(*syntax.VarExpr)
	if !ok {
		t.Fatalf("block final is %T, want *VarExpr", block.Final)
	}
	if d, ok := table[y.ID]; !ok || d != 0 {
		t.Errorf("y resolved at %d (ok=%t), want 0", d, ok)
	}
}
