// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtok

import (
	"errors"
	"strings"
)

// Argument is one parsed option: either Paired or Single.
type Argument interface {
	Option() OptionName
	isArgument()
}

// Paired is an option together with its value.
type Paired struct {
	Name  OptionName
	Value Value
}

// Single is an option that appeared without a value.
type Single struct {
	Name OptionName
}

func (a Paired) Option() OptionName { return a.Name }
func (a Single) Option() OptionName { return a.Name }

func (Paired) isArgument() {}
func (Single) isArgument() {}

// Options adjusts parsing behavior. The zero value gives the default,
// lenient behavior.
type Options struct {
	// Strict rejects a value-bearing option that is the last token with a
	// MissingValueError instead of emitting it as Single.
	Strict bool
}

// Parse converts tokens into arguments using the types declared in reg.
// It is ParseWith with zero Options.
func Parse(tokens []string, reg *Registry) ([]Argument, error) {
	return ParseWith(tokens, reg, Options{})
}

// ParseWith converts tokens into arguments using the types declared in reg.
//
// Tokens are either "name=value" (any number of leading dashes) or a name
// followed, for value-bearing types, by its value as the next token.
// Presence-only options never consume the next token. A value-bearing
// option that ends the input is emitted as Single unless opts.Strict is set.
//
// The first error stops parsing and no arguments are returned with it.
func ParseWith(tokens []string, reg *Registry, opts Options) ([]Argument, error) {
	if reg == nil {
		reg = new(Registry)
	}
	out := make([]Argument, 0, len(tokens))
	for idx := 0; idx < len(tokens); idx++ {
		token := tokens[idx]
		name, err := StripDashes(token)
		if err != nil {
			return nil, atIndex(err, idx)
		}

		// Any '=' goes to SplitEmbedded, not just IsEmbedded tokens, so that
		// "a=b=c" fails as malformed instead of as an unknown option.
		if strings.Contains(name, "=") {
			arg, err := parseEmbedded(name, reg)
			if err != nil {
				return nil, atToken(err, token, idx)
			}
			out = append(out, arg)
			continue
		}

		n := OptionName(name)
		t, err := reg.TypeOf(n)
		if err != nil {
			return nil, atToken(err, token, idx)
		}
		if !t.TakesValue() {
			out = append(out, Single{Name: n})
			continue
		}
		if idx+1 >= len(tokens) {
			if opts.Strict {
				return nil, &MissingValueError{Name: name, Type: t, Index: idx}
			}
			out = append(out, Single{Name: n})
			continue
		}
		v, err := Coerce(tokens[idx+1], t)
		if err != nil {
			return nil, atToken(withName(err, name), token, idx+1)
		}
		out = append(out, Paired{Name: n, Value: v})
		idx++
	}
	return out, nil
}

func parseEmbedded(token string, reg *Registry) (Argument, error) {
	rawName, rawValue, err := SplitEmbedded(token)
	if err != nil {
		return nil, err
	}
	n := OptionName(rawName)
	t, err := reg.TypeOf(n)
	if err != nil {
		return nil, err
	}
	v, err := Coerce(rawValue, t)
	if err != nil {
		return nil, withName(err, rawName)
	}
	if _, ok := v.(NoneValue); ok {
		return Single{Name: n}, nil
	}
	return Paired{Name: n, Value: v}, nil
}

// Lookup returns the last argument named name.
func Lookup(args []Argument, name OptionName) (Argument, bool) {
	for i := len(args) - 1; i >= 0; i-- {
		if args[i].Option() == name {
			return args[i], true
		}
	}
	return nil, false
}

func withName(err error, name string) error {
	var ce *TypeCoercionError
	if errors.As(err, &ce) {
		ce.Name = name
	}
	return err
}

func atIndex(err error, idx int) error {
	var te *InvalidTokenError
	if errors.As(err, &te) {
		te.Index = idx
	}
	return err
}

// atToken records where in the input err happened.
func atToken(err error, token string, idx int) error {
	var (
		ue *UnknownOptionError
		ce *TypeCoercionError
		me *MalformedEmbeddedArgumentError
	)
	switch {
	case errors.As(err, &ue):
		ue.Token = token
		ue.Index = idx
	case errors.As(err, &ce):
		ce.Index = idx
	case errors.As(err, &me):
		me.Token = token
		me.Index = idx
	}
	return err
}
