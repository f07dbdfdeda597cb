// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the basis-transformation operators: FFT
// along an axis, a dense matrix along an axis, and a per-outer-index
// matrix along an axis. All three share the same grid-swap discipline:
// the transformation is a stateful carrier of the replacement Grid,
// swapped into the wave function on every call so that forward followed
// by inverse restores both the array content and the axis descriptor.
//
// Grounded on shp.Shape's scratchpad-carrier pattern (shp/shp.go): a Shape
// recomputes derived quantities (S, G, J, ...) against a natural/real
// coordinate pair on every CalcAtR call the way a Transformation
// recomputes a dual Grid pair on every Transform/InverseTransform call.
package transform

import "github.com/Wleter/split-operator/wavefunc"

// Order controls which half of a symmetric step direction a
// Transformation runs in: Normal applies Transform on the forward sweep
// and InverseTransform on the reverse sweep; InverseFirst does the
// opposite.
type Order int

const (
	Normal Order = iota
	InverseFirst
)

// Transformation is one item an OperationStack can hold.
type Transformation interface {
	Transform(wf *wavefunc.WaveFunction) error
	InverseTransform(wf *wavefunc.WaveFunction) error
}
