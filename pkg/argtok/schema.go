// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtok

import (
	"slices"
	"strconv"
	"strings"

	"tailscale.com/util/mak"
)

// OptionName is a validated option name: non-empty, without a leading dash
// and without '='.
type OptionName string

func (n OptionName) String() string { return string(n) }

// ValueType is the declared type of an option's value.
type ValueType int

const (
	// NoValue marks a presence-only flag.
	NoValue ValueType = iota
	String
	UnsignedInteger
	Boolean
)

// Type strings accepted by Register and ParseValueType.
const (
	TypeNameString = "string"
	TypeNameUsize  = "usize"
	TypeNameBool   = "bool"
)

func (t ValueType) String() string {
	switch t {
	case NoValue:
		return "none"
	case String:
		return TypeNameString
	case UnsignedInteger:
		return TypeNameUsize
	case Boolean:
		return TypeNameBool
	}
	return "ValueType(" + strconv.Itoa(int(t)) + ")"
}

// TakesValue reports whether options of this type expect a value.
func (t ValueType) TakesValue() bool { return t != NoValue }

// ParseValueType maps a declared type string to its ValueType.
func ParseValueType(s string) (ValueType, error) {
	switch s {
	case TypeNameUsize:
		return UnsignedInteger, nil
	case TypeNameString:
		return String, nil
	case TypeNameBool:
		return Boolean, nil
	}
	return NoValue, &UnrecognizedTypeError{Type: s}
}

// ValidateName checks that name can be used as an OptionName.
func ValidateName(name string) (OptionName, error) {
	switch {
	case name == "":
		return "", &InvalidNameError{Name: name, Reason: "empty"}
	case name[0] == '-':
		return "", &InvalidNameError{Name: name, Reason: "leading dash"}
	case strings.Contains(name, "="):
		return "", &InvalidNameError{Name: name, Reason: "contains '='"}
	}
	return OptionName(name), nil
}

// Registry maps option names to their declared value types.
// The zero value is an empty registry ready for use.
//
// A Registry may be shared by concurrent Parse calls as long as nothing
// registers into it at the same time.
type Registry struct {
	types map[OptionName]ValueType
}

// Register declares an option. A nil declaredType declares a presence-only
// flag; otherwise it must be one of "usize", "string" or "bool".
// Registering a name again replaces its type.
func (r *Registry) Register(name string, declaredType *string) (OptionName, error) {
	n, err := ValidateName(name)
	if err != nil {
		return "", err
	}
	t := NoValue
	if declaredType != nil {
		if t, err = ParseValueType(*declaredType); err != nil {
			return "", err
		}
	}
	mak.Set(&r.types, n, t)
	return n, nil
}

// Declare is like Register but takes an already resolved type.
func (r *Registry) Declare(name string, t ValueType) (OptionName, error) {
	n, err := ValidateName(name)
	if err != nil {
		return "", err
	}
	if t < NoValue || t > Boolean {
		return "", &UnrecognizedTypeError{Type: t.String()}
	}
	mak.Set(&r.types, n, t)
	return n, nil
}

// TypeOf returns the declared type of name.
func (r *Registry) TypeOf(name OptionName) (ValueType, error) {
	t, ok := r.types[name]
	if !ok {
		return NoValue, &UnknownOptionError{Name: string(name)}
	}
	return t, nil
}

// Len returns the number of registered options.
func (r *Registry) Len() int { return len(r.types) }

// Names returns the registered names in sorted order.
func (r *Registry) Names() []OptionName {
	names := make([]OptionName, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
