// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtok

import "strconv"

// Value is a coerced option value. The set of implementations is closed:
// StringValue, UintValue, BoolValue and NoneValue.
type Value interface {
	// Type returns the ValueType that produces this variant.
	Type() ValueType
	String() string
	isValue()
}

type StringValue string

type UintValue uint64

type BoolValue bool

// NoneValue is the value of a presence-only flag.
type NoneValue struct{}

func (StringValue) Type() ValueType { return String }
func (UintValue) Type() ValueType   { return UnsignedInteger }
func (BoolValue) Type() ValueType   { return Boolean }
func (NoneValue) Type() ValueType   { return NoValue }

func (v StringValue) String() string { return string(v) }
func (v UintValue) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }
func (NoneValue) String() string     { return "" }

func (StringValue) isValue() {}
func (UintValue) isValue()   {}
func (BoolValue) isValue()   {}
func (NoneValue) isValue()   {}
