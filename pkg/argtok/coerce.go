// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtok

import (
	"fmt"
	"strconv"
)

// Coerce converts raw to a Value of type t.
func Coerce(raw string, t ValueType) (Value, error) {
	switch t {
	case NoValue:
		return NoneValue{}, nil
	case String:
		return StringValue(raw), nil
	case UnsignedInteger:
		return coerceUint(raw)
	case Boolean:
		return coerceBool(raw)
	}
	return nil, fmt.Errorf("argtok: unhandled value type %v", t)
}

func coerceUint(raw string) (Value, error) {
	// Digits only. ParseUint still reports overflow.
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return nil, &TypeCoercionError{Value: raw, Type: UnsignedInteger}
		}
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, &TypeCoercionError{Value: raw, Type: UnsignedInteger, Err: err}
	}
	return UintValue(n), nil
}

func coerceBool(raw string) (Value, error) {
	switch raw {
	case "true":
		return BoolValue(true), nil
	case "false":
		return BoolValue(false), nil
	}
	return nil, &TypeCoercionError{Value: raw, Type: Boolean}
}
