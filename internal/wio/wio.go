// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wio adapts gosl/io's colored, formatted console notices; its
// caller is the cmd/waveprop driver, and the core packages do not use it.
package wio

import "fmt"

// Verbose enables Pf/Pforan output; off by default, the way gofem gates
// io.Pforan behind chk.Verbose during time loops.
var Verbose = false

// Pf prints a formatted line when Verbose is set.
func Pf(msg string, args ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Printf(msg, args...)
}

// Pforan prints a formatted line in foreground color (orange/alert), the
// style gofem uses for per-step divergence and convergence notices.
func Pforan(msg string, args ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Printf("\033[33m"+msg+"\033[0m", args...)
}
