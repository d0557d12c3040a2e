// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtok

import "strings"

// IsEmbedded reports whether token is a well-formed name=value pair:
// exactly one '=' and therefore exactly two parts.
func IsEmbedded(token string) bool {
	return strings.Count(token, "=") == 1
}

// SplitEmbedded splits a normalized name=value token. It does not trust
// IsEmbedded and checks the '=' count itself; an empty value is allowed,
// an empty name is not.
func SplitEmbedded(token string) (name, value string, err error) {
	switch n := strings.Count(token, "="); {
	case n == 0:
		return "", "", &MalformedEmbeddedArgumentError{Token: token, Reason: "missing '='"}
	case n > 1:
		return "", "", &MalformedEmbeddedArgumentError{Token: token, Reason: "more than one '='"}
	}
	name, value, _ = strings.Cut(token, "=")
	if name == "" {
		return "", "", &MalformedEmbeddedArgumentError{Token: token, Reason: "missing option name before '='"}
	}
	return name, value, nil
}
