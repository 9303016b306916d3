// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluet

import (
	"fmt"
	"sort"
)

// An Env is one frame of the runtime scope chain: a mapping from name
// to value plus a link to the enclosing frame. Frames form an
// append-only tree (a child is never reparented); a frame stays alive
// as long as any call frame or closure references it, which the Go
// runtime tracks for us.
type Env struct {
	parent   *Env
	bindings map[string]Value
}

// NewEnv returns a fresh frame chained to parent (which may be nil).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, bindings: make(map[string]Value)}
}

// Define binds name in this frame, shadowing any binding of the same
// name in enclosing frames.
func (e *Env) Define(name string, v Value) {
	e.bindings[name] = v
}

// Lookup finds name in this frame or, failing that, the enclosing
// chain.
func (e *Env) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign sets an existing binding of name in this frame or the
// enclosing chain. It reports whether a binding was found.
func (e *Env) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.bindings[name]; ok {
			env.bindings[name] = v
			return true
		}
	}
	return false
}

// getAt fetches name from the frame exactly distance parent links
// away. The resolver guarantees the binding exists there; a miss is
// an internal bug, not a user-facing error.
func (e *Env) getAt(distance int, name string) Value {
	env := e.at(distance)
	v, ok := env.bindings[name]
	if !ok {
		panic(fmt.Sprintf("internal error: %q not bound at distance %d", name, distance))
	}
	return v
}

// setAt mutates name in the frame exactly distance parent links away.
func (e *Env) setAt(distance int, name string, v Value) {
	env := e.at(distance)
	if _, ok := env.bindings[name]; !ok {
		panic(fmt.Sprintf("internal error: %q not bound at distance %d", name, distance))
	}
	env.bindings[name] = v
}

func (e *Env) at(distance int) *Env {
	env := e
	for i := 0; i < distance; i++ {
		if env.parent == nil {
			panic(fmt.Sprintf("internal error: scope distance %d exceeds chain depth %d", distance, i))
		}
		env = env.parent
	}
	return env
}

// LocalNames returns the names bound in this frame alone, sorted.
func (e *Env) LocalNames() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns the names bound in this frame and its enclosing
// chain, sorted.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for env := e; env != nil; env = env.parent {
		for name := range env.bindings {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
