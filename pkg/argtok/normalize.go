// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtok

import "strings"

// StripDashes removes the leading run of '-' characters from token.
// Empty tokens and tokens made only of dashes have no option name and are
// rejected with an InvalidTokenError.
func StripDashes(token string) (string, error) {
	if token == "" {
		return "", &InvalidTokenError{Token: token}
	}
	name := strings.TrimLeft(token, "-")
	if name == "" {
		return "", &InvalidTokenError{Token: token}
	}
	return name, nil
}
