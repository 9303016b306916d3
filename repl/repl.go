// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/eval/print loop for fluet.
//
// It supports readline-style command editing, and interrupts through
// Control-C.
//
// Each line is executed as a REPL chunk: statements followed by an
// optional trailing expression. Top-level bindings persist in the
// interpreter's global scope, so later lines can use them. If the
// chunk produces a value other than null, the REPL prints it.
package repl // import "github.com/fluetlang/fluet/repl"

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/chzyer/readline"

	"github.com/fluetlang/fluet/fluet"
	"github.com/fluetlang/fluet/internal/config"
)

var interrupted = make(chan os.Signal, 1)

// REPL executes a read, eval, print loop over the interpreter.
//
// A SIGINT (Control-C) during editing discards the current line; at
// any other time it is ignored, since evaluation of a line is not
// interruptible.
func REPL(in *fluet.Interp, conf *config.REPLConfig) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      conf.Prompt,
		HistoryFile: conf.HistoryFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer rl.Close()

	printer := NewErrorPrinter(os.Stderr, colorEnabled(conf.Color))

	for {
		if err := rep(rl, in, printer); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, evaluates, and prints one line.
//
// It returns an error (possibly readline.ErrInterrupt) only if
// readline failed. Fluet errors are printed.
func rep(rl *readline.Instance, in *fluet.Interp, printer *ErrorPrinter) error {
	line, err := rl.Readline()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}
	if line == "" {
		return nil
	}

	v, err := in.ExecREPLChunk("repl", line)
	if err != nil {
		printer.Print(err)
		return nil
	}

	if v != fluet.Null {
		fmt.Println(v)
	}
	return nil
}
