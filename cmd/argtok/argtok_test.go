// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argtok/pkg/argtok"
	"github.com/yeetrun/argtok/pkg/tui"
)

func noEnv(string) string { return "" }

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"--declare", "count:usize",
		"-d", "verbose",
		"--format", "json",
		"--strict",
		"--", "--count=5", "--verbose",
	}, noEnv)
	if err != nil {
		t.Fatalf("parseFlags error: %v", err)
	}
	if diff := cmp.Diff([]string{"count:usize", "verbose"}, cfg.declare); diff != "" {
		t.Errorf("declare mismatch (-want +got):\n%s", diff)
	}
	if cfg.format != formatJSON {
		t.Errorf("format = %q, want %q", cfg.format, formatJSON)
	}
	if !cfg.strict {
		t.Error("strict = false, want true")
	}
	if diff := cmp.Diff([]string{"--count=5", "--verbose"}, cfg.tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	env := envMap(map[string]string{
		"ARGTOK_SCHEMA": "/tmp/schema.toml",
		"ARGTOK_FORMAT": "json",
	})
	cfg, err := parseFlags([]string{"--", "x"}, env)
	if err != nil {
		t.Fatalf("parseFlags error: %v", err)
	}
	if cfg.schema != "/tmp/schema.toml" {
		t.Errorf("schema = %q, want env value", cfg.schema)
	}
	if cfg.format != formatJSON {
		t.Errorf("format = %q, want %q", cfg.format, formatJSON)
	}

	cfg, err = parseFlags([]string{"--schema", "flag.yaml", "--format", "table"}, env)
	if err != nil {
		t.Fatalf("parseFlags error: %v", err)
	}
	if cfg.schema != "flag.yaml" || cfg.format != formatTable {
		t.Errorf("flags did not override env: schema=%q format=%q", cfg.schema, cfg.format)
	}
}

func TestParseFlagsUsageErrors(t *testing.T) {
	tests := [][]string{
		{"--", "--count=5"},
		{"-d", "x", "--format", "xml"},
	}
	for _, args := range tests {
		_, err := parseFlags(args, noEnv)
		if err == nil {
			t.Errorf("parseFlags(%q) succeeded, want usage error", args)
			continue
		}
		if code := exitCode(err); code != 2 {
			t.Errorf("exitCode = %d, want 2", code)
		}
	}
}

func TestStripSeparator(t *testing.T) {
	got := stripSeparator([]string{"a", "--", "b", "--"})
	if diff := cmp.Diff([]string{"a", "b", "--"}, got); diff != "" {
		t.Errorf("stripSeparator mismatch (-want +got):\n%s", diff)
	}
}

func TestRunTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.toml")
	schema := "[[option]]\nname = \"count\"\ntype = \"usize\"\n\n[[option]]\nname = \"verbose\"\n"
	if err := os.WriteFile(path, []byte(schema), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config{
		schema: path,
		format: formatTable,
		tokens: []string{"--count=5", "--verbose"},
	}
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	s := out.String()
	for _, want := range []string{"NAME", "count", "usize", "5", "verbose", "single"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestRunJSONWithDeclarations(t *testing.T) {
	cfg := config{
		declare: []string{"name:string"},
		format:  formatJSON,
		tokens:  []string{"--name", "alice"},
	}
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out.String(), `"value": "alice"`) {
		t.Errorf("json output missing value:\n%s", out.String())
	}
}

func TestRunParseError(t *testing.T) {
	cfg := config{
		declare: []string{"count:usize"},
		format:  formatTable,
		tokens:  []string{"--count", "x"},
	}
	var out bytes.Buffer
	err := run(cfg, &out)
	if !errors.Is(err, argtok.ErrTypeCoercion) {
		t.Fatalf("run error = %v, want ErrTypeCoercion", err)
	}
	if out.Len() != 0 {
		t.Errorf("run wrote output on error: %q", out.String())
	}
	if code := exitCode(err); code != 1 {
		t.Errorf("exitCode = %d, want 1", code)
	}
}

func TestRunStrict(t *testing.T) {
	cfg := config{
		declare: []string{"name:string"},
		format:  formatTable,
		strict:  true,
		tokens:  []string{"--name"},
	}
	if err := run(cfg, new(bytes.Buffer)); !errors.Is(err, argtok.ErrMissingValue) {
		t.Fatalf("run error = %v, want ErrMissingValue", err)
	}
}

func TestErrorText(t *testing.T) {
	err := errors.New("unknown option: x")
	if got := errorText(tui.Colorizer{}, err); got != "unknown option: x" {
		t.Errorf("errorText(plain) = %q, want %q", got, "unknown option: x")
	}
	got := errorText(tui.Colorizer{Enabled: true}, err)
	if !strings.HasPrefix(got, "\x1b[31;1m") || !strings.Contains(got, "unknown option: x") {
		t.Errorf("errorText(color) = %q, want red bold wrap", got)
	}
}
