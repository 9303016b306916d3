// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/fluetlang/fluet/syntax"
)

func TestWalk(t *testing.T) {
	const src = `
fn classify(x) {
	if x < 0 then 'neg' else { print(x); 'pos' }
}
while running {
	classify(next());
}
`
	stmts, err := syntax.Parse("hello.fluet", src, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	var depth int
	for _, stmt := range stmts {
		syntax.Walk(stmt, func(n syntax.Node) bool {
			if n == nil {
				depth--
				return true
			}
			fmt.Fprintf(&buf, "%s%s\n",
				strings.Repeat("  ", depth),
				strings.TrimPrefix(reflect.TypeOf(n).String(), "*syntax."))
			depth++
			return true
		})
	}
	got := buf.String()
	want := `
FnStmt
  IfExpr
    BinaryExpr
      VarExpr
      LiteralExpr
    LiteralExpr
    BlockExpr
      ExprStmt
        CallExpr
          VarExpr
          VarExpr
      LiteralExpr
WhileStmt
  VarExpr
  ExprStmt
    CallExpr
      VarExpr
      CallExpr
        VarExpr
`[1:]
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// Walk must prune the descent when f returns false.
func TestWalkPrune(t *testing.T) {
	stmts, err := syntax.Parse("prune.fluet", "f(a, b) + g(c);", nil)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	syntax.Walk(stmts[0], func(n syntax.Node) bool {
		switch n := n.(type) {
		case *syntax.CallExpr:
			return false // skip callee and arguments
		case *syntax.VarExpr:
			names = append(names, n.Name.Lexeme)
		}
		return true
	})
	if len(names) != 0 {
		t.Errorf("pruned walk still visited %v", names)
	}
}
