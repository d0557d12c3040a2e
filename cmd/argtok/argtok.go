// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argtok parses a token list against an option schema and prints
// the typed result.
//
//	argtok --schema opts.toml -- --count=5 --verbose
//	argtok -d count:usize -d verbose --format json -- --count 5 --verbose
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argtok/pkg/argtok"
	"github.com/yeetrun/argtok/pkg/schemafile"
	"github.com/yeetrun/argtok/pkg/tui"
	"golang.org/x/term"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type flagsParsed struct {
	Schema  string   `flag:"schema" short:"s" help:"Schema file (.toml, .yaml) (ARGTOK_SCHEMA)"`
	Declare []string `flag:"declare" short:"d" help:"Inline declaration name[:type], repeatable"`
	Format  string   `flag:"format" short:"f" help:"Output format: table or json (ARGTOK_FORMAT)"`
	Strict  bool     `flag:"strict" help:"Reject a trailing option that is missing its value"`
	NoColor bool     `flag:"no-color" help:"Disable colored output"`
}

// config is the resolved command configuration.
type config struct {
	schema  string
	declare []string
	format  string
	strict  bool
	color   bool
	tokens  []string
}

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func parseFlags(args []string, getenv func(string) string) (config, error) {
	result, err := yargs.ParseKnownFlags[flagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return config{}, &usageError{msg: err.Error()}
	}
	f := result.Flags
	cfg := config{
		schema:  f.Schema,
		declare: f.Declare,
		format:  f.Format,
		strict:  f.Strict,
		color:   !f.NoColor,
		tokens:  stripSeparator(result.RemainingArgs),
	}
	if cfg.schema == "" {
		cfg.schema = getenv("ARGTOK_SCHEMA")
	}
	if cfg.format == "" {
		cfg.format = getenv("ARGTOK_FORMAT")
	}
	if cfg.format == "" {
		cfg.format = formatTable
	}
	switch cfg.format {
	case formatTable, formatJSON:
	default:
		return config{}, &usageError{msg: fmt.Sprintf("unknown format %q (want table or json)", cfg.format)}
	}
	if cfg.schema == "" && len(cfg.declare) == 0 {
		return config{}, &usageError{msg: "no schema: use --schema FILE, --declare name[:type] or ARGTOK_SCHEMA"}
	}
	return cfg, nil
}

// stripSeparator drops the first "--", which only separates argtok's own
// flags from the tokens to parse.
func stripSeparator(args []string) []string {
	for i, a := range args {
		if a == "--" {
			out := make([]string, 0, len(args)-1)
			out = append(out, args[:i]...)
			return append(out, args[i+1:]...)
		}
	}
	return args
}

func buildRegistry(cfg config) (*argtok.Registry, error) {
	reg := new(argtok.Registry)
	if cfg.schema != "" {
		var err error
		if reg, err = schemafile.Load(cfg.schema); err != nil {
			return nil, err
		}
	}
	if err := schemafile.Declare(reg, cfg.declare); err != nil {
		return nil, err
	}
	return reg, nil
}

func run(cfg config, stdout io.Writer) error {
	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	parsed, err := argtok.ParseWith(cfg.tokens, reg, argtok.Options{Strict: cfg.strict})
	if err != nil {
		return err
	}
	if cfg.format == formatJSON {
		return tui.WriteJSON(stdout, parsed)
	}
	return tui.WriteTable(stdout, parsed, tui.NewColorizer(cfg.color))
}

func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

// errorText renders err for stderr.
func errorText(c tui.Colorizer, err error) string {
	return c.Wrap(tui.ColorError, err.Error())
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("argtok: ")

	stderrColor := tui.NewColorizer(term.IsTerminal(int(os.Stderr.Fd())))
	cfg, err := parseFlags(os.Args[1:], os.Getenv)
	if err != nil {
		log.Print(errorText(stderrColor, err))
		os.Exit(exitCode(err))
	}
	if !cfg.color {
		stderrColor = tui.Colorizer{}
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.color = false
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Print(errorText(stderrColor, err))
		os.Exit(exitCode(err))
	}
}
