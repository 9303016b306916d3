// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[repl]
prompt = ">> "
history_file = "/tmp/fluet_history"
color = "never"
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{REPL: REPLConfig{
		Prompt:      ">> ",
		HistoryFile: "/tmp/fluet_history",
		Color:       "never",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartial(t *testing.T) {
	// Unset fields keep their defaults.
	path := writeConfig(t, `
[repl]
prompt = "fluet% "
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.REPL.Prompt != "fluet% " {
		t.Errorf("prompt = %q, want %q", got.REPL.Prompt, "fluet% ")
	}
	if got.REPL.Color != "auto" {
		t.Errorf("color = %q, want default %q", got.REPL.Color, "auto")
	}
}

func TestLoadInvalidColor(t *testing.T) {
	path := writeConfig(t, `
[repl]
color = "sometimes"
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "invalid repl.color") {
		t.Errorf("Load = %v, want invalid repl.color error", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `[repl`)
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed TOML succeeded, want error")
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.REPL.Prompt != "> " {
		t.Errorf("default prompt = %q, want %q", c.REPL.Prompt, "> ")
	}
	if err := c.validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}
