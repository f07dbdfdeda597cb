// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package control implements the norm-preserving and absorbing-boundary
// controls: LeakControl (mid-step renormalization) and BorderDumping (a
// sin-shaped absorbing mask). Grounded on fem/essenbcs.go's essential
// boundary condition appliers: a small object that adjusts the solution
// at specific points/halves of the solver loop rather than owning a full
// propagator.
package control

import "github.com/Wleter/split-operator/wavefunc"

// Control is one item an OperationStack can hold. FirstHalf and
// SecondHalf are invoked on whichever half-steps the owning stack entry's
// Apply mask selects (FirstHalf, SecondHalf, or both); the mask itself is
// a property of the stack entry, defined in package stack.
type Control interface {
	FirstHalf(wf *wavefunc.WaveFunction) error
	SecondHalf(wf *wavefunc.WaveFunction) error
}
