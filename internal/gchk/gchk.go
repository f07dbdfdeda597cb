// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gchk provides the two-lane error policy used across the core:
// Panic for programmer errors (shape mismatches, invariant violations) and
// Err for recoverable failures that are returned up the call chain.
package gchk

import "fmt"

// Panic panics with a formatted message. Use for ShapeMismatch,
// InvariantViolation and MissingLossChecker conditions: these indicate a
// caller built an inconsistent operator stack and cannot be recovered from.
func Panic(msg string, args ...interface{}) {
	panic(fmt.Sprintf(msg, args...))
}

// Err builds a formatted error. Use for recoverable, externally reported
// failures such as a Saver's I/O error.
func Err(msg string, args ...interface{}) error {
	return fmt.Errorf(msg, args...)
}
