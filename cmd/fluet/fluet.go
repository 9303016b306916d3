// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The fluet command interprets a fluet file.
// With no arguments, it starts a read-eval-print loop (REPL).
package main // import "github.com/fluetlang/fluet/cmd/fluet"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/fluetlang/fluet/fluet"
	"github.com/fluetlang/fluet/internal/config"
	"github.com/fluetlang/fluet/repl"
)

// flags
var (
	cpuprofile = flag.String("cpuprofile", "", "gather Go CPU profile in this file")
	memprofile = flag.String("memprofile", "", "gather Go memory profile in this file")
	showenv    = flag.Bool("showenv", false, "on success, print final global environment")
	execprog   = flag.String("c", "", "execute program `prog`")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("fluet: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		check(err)
		err = pprof.StartCPUProfile(f)
		check(err)
		defer func() {
			pprof.StopCPUProfile()
			err := f.Close()
			check(err)
		}()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		check(err)
		defer func() {
			runtime.GC()
			err := pprof.Lookup("heap").WriteTo(f, 0)
			check(err)
			err = f.Close()
			check(err)
		}()
	}

	conf, err := config.LoadDefault()
	if err != nil {
		log.Print(err)
		return 1
	}

	in := fluet.New()

	switch {
	case flag.NArg() == 1 || *execprog != "":
		var filename, src string
		if *execprog != "" {
			// Execute provided program.
			filename = "cmdline"
			src = *execprog
		} else {
			// Execute specified file.
			filename = flag.Arg(0)
			data, err := os.ReadFile(filename)
			if err != nil {
				log.Print(err)
				return 1
			}
			src = string(data)
		}
		if _, err := in.ExecFile(filename, src); err != nil {
			repl.NewErrorPrinter(os.Stderr, false).Print(err)
			return 1
		}
	case flag.NArg() == 0:
		fmt.Println("Welcome to Fluet (github.com/fluetlang/fluet)")
		repl.REPL(in, &conf.REPL)
	default:
		log.Print("want at most one fluet file name")
		return 1
	}

	// Print the global environment.
	if *showenv {
		globals := in.Globals()
		for _, name := range globals.LocalNames() {
			v, _ := globals.Lookup(name)
			fmt.Fprintf(os.Stderr, "%s = %s\n", name, v)
		}
	}

	return 0
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
