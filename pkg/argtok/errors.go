// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtok

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind. Every concrete error type below
// matches its sentinel with errors.Is.
var (
	ErrInvalidName       = errors.New("invalid option name")
	ErrUnrecognizedType  = errors.New("unrecognized value type")
	ErrUnknownOption     = errors.New("unknown option")
	ErrTypeCoercion      = errors.New("invalid option value")
	ErrMalformedEmbedded = errors.New("malformed embedded argument")
	ErrInvalidToken      = errors.New("invalid token")
	ErrMissingValue      = errors.New("missing option value")
)

// InvalidNameError is returned when an option name cannot be registered.
type InvalidNameError struct {
	Name   string
	Reason string // "empty", "leading dash" or "contains '='"
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid option name %q: %s", e.Name, e.Reason)
}

func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// UnrecognizedTypeError is returned when a schema declares a type string
// outside of "string", "usize" and "bool".
type UnrecognizedTypeError struct {
	Type string
}

func (e *UnrecognizedTypeError) Error() string {
	return fmt.Sprintf("unrecognized argument type: %q", e.Type)
}

func (e *UnrecognizedTypeError) Is(target error) bool { return target == ErrUnrecognizedType }

// UnknownOptionError is returned when a name has no schema entry.
// Token and Index are only set when the lookup happened during a parse.
type UnknownOptionError struct {
	Name  string
	Token string
	Index int
}

func (e *UnknownOptionError) Error() string {
	if e.Token != "" && e.Token != e.Name {
		return fmt.Sprintf("unknown option: %s (from %q)", e.Name, e.Token)
	}
	return fmt.Sprintf("unknown option: %s", e.Name)
}

func (e *UnknownOptionError) Is(target error) bool { return target == ErrUnknownOption }

// TypeCoercionError is returned when a raw value cannot be converted to the
// declared type. Err holds the underlying conversion error, if any.
type TypeCoercionError struct {
	Name  string
	Value string
	Type  ValueType
	Index int
	Err   error
}

func (e *TypeCoercionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid %s value %q", e.Type, e.Value)
	}
	return fmt.Sprintf("invalid %s value %q for option %s", e.Type, e.Value, e.Name)
}

func (e *TypeCoercionError) Unwrap() error { return e.Err }

func (e *TypeCoercionError) Is(target error) bool { return target == ErrTypeCoercion }

// MalformedEmbeddedArgumentError is returned for a name=value token that
// has an empty name or more than one '='.
type MalformedEmbeddedArgumentError struct {
	Token  string
	Reason string
	Index  int
}

func (e *MalformedEmbeddedArgumentError) Error() string {
	return fmt.Sprintf("malformed argument %q: %s", e.Token, e.Reason)
}

func (e *MalformedEmbeddedArgumentError) Is(target error) bool {
	return target == ErrMalformedEmbedded
}

// InvalidTokenError is returned for a token that is empty or made only of dashes.
type InvalidTokenError struct {
	Token string
	Index int
}

func (e *InvalidTokenError) Error() string {
	if e.Token == "" {
		return "empty argument"
	}
	return fmt.Sprintf("invalid argument %q: no option name", e.Token)
}

func (e *InvalidTokenError) Is(target error) bool { return target == ErrInvalidToken }

// MissingValueError is returned in strict mode when a value-bearing option
// is the last token.
type MissingValueError struct {
	Name  string
	Type  ValueType
	Index int
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing required %s value for option %s", e.Type, e.Name)
}

func (e *MissingValueError) Is(target error) bool { return target == ErrMissingValue }
