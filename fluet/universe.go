// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluet

import "fmt"

// Universe defines the set of host functions available in the
// predeclared environment of every interpreter. Scripts may shadow
// these names with their own bindings.
var Universe = map[string]Value{
	"print":  NewBuiltin("print", 1, printStdout),
	"eprint": NewBuiltin("eprint", 1, printStderr),
}

// print(x): writes x to standard output followed by a newline and
// returns null. Strings are written without quotes.
func printStdout(in *Interp, args []Value) (Value, error) {
	if _, err := fmt.Fprintln(in.Stdout, rawText(args[0])); err != nil {
		return nil, err
	}
	return Null, nil
}

// eprint(x): like print, but writes to standard error.
func printStderr(in *Interp, args []Value) (Value, error) {
	if _, err := fmt.Fprintln(in.Stderr, rawText(args[0])); err != nil {
		return nil, err
	}
	return Null, nil
}
