// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wutl carries the small formatting and index-range helpers gofem
// keeps in gosl/utl, trimmed to what the propagation core needs.
package wutl

import "fmt"

// Sf is a shorthand for fmt.Sprintf, matching gosl/utl's Sf used pervasively
// for String() methods across gofem.
func Sf(msg string, args ...interface{}) string {
	return fmt.Sprintf(msg, args...)
}

// IntRange returns the half-open integer range [0, n), the way utl.IntRange
// is used to iterate over node/lane counts.
func IntRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

// Max returns the larger of two ints.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
