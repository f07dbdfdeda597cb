// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package propagator

import (
	"math/cmplx"

	"github.com/Wleter/split-operator/grid"
	"github.com/Wleter/split-operator/internal/gchk"
)

// Factory turns a Hamiltonian sample (real or complex) into an
// exponentiated diagonal propagator for a chosen fraction of a time step.
// Kept as free functions rather than a stateful type, matching how
// fem/e_u.go's element constructors are plain functions taking the data
// they act on rather than a shared factory object.
//
// The effective increment supplied to the exponential is TimeGrid.Delta,
// which already carries the sign and imaginary unit (-i*step for real
// time, -step for imaginary time); the propagator operator is then
// exp(H*delta) elementwise, with no additional imaginary unit folded in
// here: TimeGrid.Delta alone decides between real- and imaginary-time
// evolution.

// OneDimFromReal builds a OneDim propagator along axis from a real
// Hamiltonian sample.
func OneDimFromReal(axis int, h []float64, tg grid.TimeGrid, sel grid.StepSelector) *OneDim {
	delta := tg.Delta(sel)
	op := make([]complex128, len(h))
	for i, v := range h {
		op[i] = cmplx.Exp(complex(v, 0) * delta)
	}
	return &OneDim{Axis: axis, Operator: op}
}

// OneDimFromComplex builds a OneDim propagator along axis from a complex
// Hamiltonian sample.
func OneDimFromComplex(axis int, h []complex128, tg grid.TimeGrid, sel grid.StepSelector) *OneDim {
	delta := tg.Delta(sel)
	op := make([]complex128, len(h))
	for i, v := range h {
		op[i] = cmplx.Exp(v * delta)
	}
	return &OneDim{Axis: axis, Operator: op}
}

// NDimFromReal builds an NDim propagator from a full-tensor real
// Hamiltonian sample of the given shape.
func NDimFromReal(shape []int, h []float64, tg grid.TimeGrid, sel grid.StepSelector) *NDim {
	if len(h) != product(shape) {
		gchk.Panic("propagator.NDimFromReal: hamiltonian has %d elements, want %d for shape %v", len(h), product(shape), shape)
	}
	delta := tg.Delta(sel)
	op := make([]complex128, len(h))
	for i, v := range h {
		op[i] = cmplx.Exp(complex(v, 0) * delta)
	}
	return &NDim{Shape: append([]int(nil), shape...), Operator: op}
}

// NDimFromComplex builds an NDim propagator from a full-tensor complex
// Hamiltonian sample of the given shape.
func NDimFromComplex(shape []int, h []complex128, tg grid.TimeGrid, sel grid.StepSelector) *NDim {
	if len(h) != product(shape) {
		gchk.Panic("propagator.NDimFromComplex: hamiltonian has %d elements, want %d for shape %v", len(h), product(shape), shape)
	}
	delta := tg.Delta(sel)
	op := make([]complex128, len(h))
	for i, v := range h {
		op[i] = cmplx.Exp(v * delta)
	}
	return &NDim{Shape: append([]int(nil), shape...), Operator: op}
}

func product(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
