// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluet_test

import (
	"math"
	"testing"

	"github.com/fluetlang/fluet/fluet"
)

func TestValueDisplay(t *testing.T) {
	for _, test := range []struct {
		v    fluet.Value
		want string
	}{
		{fluet.Number(42), "42"},
		{fluet.Number(2.5), "2.5"},
		{fluet.Number(-0.125), "-0.125"},
		{fluet.Number(math.Inf(+1)), "inf"},
		{fluet.Number(math.Inf(-1)), "-inf"},
		{fluet.Number(math.NaN()), "NaN"},
		{fluet.String("hi"), "'hi'"},
		{fluet.String(""), "''"},
		{fluet.True, "true"},
		{fluet.False, "false"},
		{fluet.Null, "null"},
		{fluet.Universe["print"], "<native fn print>"},
	} {
		if got := test.v.String(); got != test.want {
			t.Errorf("%#v.String() = %s, want %s", test.v, got, test.want)
		}
	}

	// User function display includes the declared name.
	in := fluet.New()
	v, err := in.ExecREPLChunk("repl", "fn greet() { } greet")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != "<fn greet>" {
		t.Errorf("function display = %s, want <fn greet>", got)
	}
}

func TestValueType(t *testing.T) {
	for _, test := range []struct {
		v    fluet.Value
		want string
	}{
		{fluet.Number(1), "number"},
		{fluet.String("s"), "string"},
		{fluet.True, "bool"},
		{fluet.Null, "null"},
		{fluet.Universe["print"], "native function"},
	} {
		if got := test.v.Type(); got != test.want {
			t.Errorf("%s.Type() = %s, want %s", test.v, got, test.want)
		}
	}
}

func TestTruth(t *testing.T) {
	for _, test := range []struct {
		v    fluet.Value
		want bool
	}{
		{fluet.False, false},
		{fluet.Null, false},
		{fluet.True, true},
		{fluet.Number(0), true}, // zero is not falsy
		{fluet.Number(math.NaN()), true},
		{fluet.String(""), true}, // nor is the empty string
		{fluet.Universe["print"], true},
	} {
		if got := fluet.Truth(test.v); got != test.want {
			t.Errorf("Truth(%s) = %t, want %t", test.v, got, test.want)
		}
	}
}

func TestEqual(t *testing.T) {
	for _, test := range []struct {
		x, y fluet.Value
		want bool
	}{
		{fluet.Number(1), fluet.Number(1), true},
		{fluet.Number(1), fluet.Number(2), false},
		{fluet.Number(math.NaN()), fluet.Number(math.NaN()), false},
		{fluet.String("a"), fluet.String("a"), true},
		{fluet.String("a"), fluet.String("b"), false},
		{fluet.True, fluet.True, true},
		{fluet.Null, fluet.Null, true},
		// Mismatched kinds are unequal, not an error.
		{fluet.Number(1), fluet.String("1"), false},
		{fluet.Null, fluet.False, false},
		{fluet.Number(0), fluet.False, false},
		// Functions compare unequal even to themselves.
		{fluet.Universe["print"], fluet.Universe["print"], false},
	} {
		if got := fluet.Equal(test.x, test.y); got != test.want {
			t.Errorf("Equal(%s, %s) = %t, want %t", test.x, test.y, got, test.want)
		}
	}
}

// Functions never compare equal through the language's == either.
func TestFunctionEquality(t *testing.T) {
	in := fluet.New()
	v, err := in.ExecREPLChunk("repl", "fn f() { } f == f")
	if err != nil {
		t.Fatal(err)
	}
	if v != fluet.False {
		t.Errorf("f == f yielded %s, want false", v)
	}
}
