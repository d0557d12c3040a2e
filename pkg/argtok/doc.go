// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtok turns a sequence of command-line tokens into typed
// arguments according to a caller-declared schema.
//
// # Schema
//
// Options are declared on a Registry before parsing. The type string is
// one of "string", "usize" or "bool"; a nil type declares a presence-only
// flag:
//
//	var reg argtok.Registry
//	usize := "usize"
//	reg.Register("count", &usize)
//	reg.Register("verbose", nil)
//
// Registering a name twice keeps the last type.
//
// # Token Syntax
//
// Any number of leading dashes is accepted and ignored:
//   - Embedded values: count=5, --count=5, -count=5
//   - Separate values: --count 5, --name value
//   - Flags: --verbose, -verbose, verbose
//
// Presence-only flags never consume the next token. A value-bearing option
// that is the last token is returned as Single; pass Options{Strict: true}
// to ParseWith to reject it instead.
//
// # Results
//
//	args, err := argtok.Parse([]string{"--count=5", "--verbose"}, &reg)
//	// args == []argtok.Argument{
//	//     argtok.Paired{Name: "count", Value: argtok.UintValue(5)},
//	//     argtok.Single{Name: "verbose"},
//	// }
//
// Parsing stops at the first error. Errors are typed (UnknownOptionError,
// TypeCoercionError, ...) and each matches a sentinel such as
// ErrUnknownOption with errors.Is.
package argtok
