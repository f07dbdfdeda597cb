// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/Wleter/split-operator/grid"
	"github.com/Wleter/split-operator/internal/cla"
	"github.com/Wleter/split-operator/internal/gchk"
	"github.com/Wleter/split-operator/tensor"
	"github.com/Wleter/split-operator/wavefunc"
)

// Matrix is a dense-matrix basis transformation along one axis: an
// explicit forward matrix T and its supplied inverse T⁻¹, applied
// lane-by-lane (e.g. discretized associated-Legendre diagonalization).
type Matrix struct {
	Axis     int
	ReplGrid grid.Grid
	Forward  [][]complex128
	Inverse  [][]complex128
}

// NewMatrix builds a Matrix transformation for the axis described by g,
// replacing it with newGrid on Transform and reinstating g on
// InverseTransform. The diagonalization matrices are set separately via
// SetDiagonalizationMatrix.
func NewMatrix(g, newGrid grid.Grid) *Matrix {
	return &Matrix{Axis: g.DimNo, ReplGrid: newGrid}
}

// SetDiagonalizationMatrix installs the forward and inverse matrices,
// asserting both are square and sized to the target axis.
func (m *Matrix) SetDiagonalizationMatrix(forward, inverse [][]complex128) {
	n := len(forward)
	assertSquare("transform.Matrix.SetDiagonalizationMatrix: forward", forward, n)
	assertSquare("transform.Matrix.SetDiagonalizationMatrix: inverse", inverse, n)
	m.Forward = forward
	m.Inverse = inverse
}

func assertSquare(ctx string, m [][]complex128, n int) {
	if len(m) != n {
		gchk.Panic("%s: has %d rows, want %d", ctx, len(m), n)
	}
	for _, row := range m {
		if len(row) != n {
			gchk.Panic("%s: row has %d columns, want %d", ctx, len(row), n)
		}
	}
}

// Transform replaces the axis Grid with ReplGrid and applies Forward to
// every lane along the axis.
func (m *Matrix) Transform(wf *wavefunc.WaveFunction) error {
	m.apply(wf, m.Forward)
	return nil
}

// InverseTransform reinstates the original Grid and applies Inverse to
// every lane along the axis.
func (m *Matrix) InverseTransform(wf *wavefunc.WaveFunction) error {
	m.apply(wf, m.Inverse)
	return nil
}

func (m *Matrix) apply(wf *wavefunc.WaveFunction, mat [][]complex128) {
	n := wf.Shape[m.Axis]
	if len(mat) != n {
		gchk.Panic("transform.Matrix: axis %d has length %d, matrix is %dx%d", m.Axis, n, len(mat), n)
	}
	wf.Grids[m.Axis].Swap(&m.ReplGrid)
	wf.MarkPossibleNormChange()
	tensor.ForEachLaneParallel(wf.Array, wf.Shape, m.Axis, func(l tensor.Lane) {
		buf := make([]complex128, n)
		out := make([]complex128, n)
		l.Gather(buf)
		cla.MatVecMul(out, mat, buf)
		l.Scatter(out)
	})
}

// StateMatrix is a basis transformation along an inner axis D whose
// matrix depends on the index along an outer axis E (e.g. Ω-dependent
// associated Legendre diagonalization), E > D.
type StateMatrix struct {
	AxisD, AxisE int
	ReplGrid     grid.Grid
	Forward      [][][]complex128 // [shape[E]][shape[D]][shape[D]]
	Inverse      [][][]complex128
}

// NewStateMatrix builds a StateMatrix transformation for the inner axis
// described by g, conditioned by outerAxis, replacing g with newGrid on
// Transform.
func NewStateMatrix(outerAxis int, g, newGrid grid.Grid) *StateMatrix {
	if outerAxis <= g.DimNo {
		gchk.Panic("transform.NewStateMatrix: outerAxis (%d) must be > axis (%d)", outerAxis, g.DimNo)
	}
	return &StateMatrix{AxisD: g.DimNo, AxisE: outerAxis, ReplGrid: newGrid}
}

// SetDiagonalizationMatrices installs one forward/inverse matrix pair per
// outer-axis index, asserting each pair is square and sized to the inner
// axis.
func (m *StateMatrix) SetDiagonalizationMatrices(forward, inverse [][][]complex128) {
	if len(forward) != len(inverse) {
		gchk.Panic("transform.StateMatrix.SetDiagonalizationMatrices: %d forward matrices, %d inverse", len(forward), len(inverse))
	}
	for j := range forward {
		n := len(forward[j])
		assertSquare("transform.StateMatrix.SetDiagonalizationMatrices: forward", forward[j], n)
		assertSquare("transform.StateMatrix.SetDiagonalizationMatrices: inverse", inverse[j], n)
	}
	m.Forward = forward
	m.Inverse = inverse
}

// Transform replaces the axis Grid with ReplGrid and applies, for each
// outer-axis index j, Forward[j] to every lane along AxisD inside the
// slice fixed at j.
func (m *StateMatrix) Transform(wf *wavefunc.WaveFunction) error {
	m.apply(wf, m.Forward)
	return nil
}

// InverseTransform reinstates the original Grid and applies Inverse the
// same way.
func (m *StateMatrix) InverseTransform(wf *wavefunc.WaveFunction) error {
	m.apply(wf, m.Inverse)
	return nil
}

func (m *StateMatrix) apply(wf *wavefunc.WaveFunction, mats [][][]complex128) {
	dimD := wf.Shape[m.AxisD]
	dimE := wf.Shape[m.AxisE]
	if len(mats) != dimE {
		gchk.Panic("transform.StateMatrix: %d matrices configured, want %d (shape[axisE])", len(mats), dimE)
	}
	wf.Grids[m.AxisD].Swap(&m.ReplGrid)
	wf.MarkPossibleNormChange()
	for j, mat := range mats {
		if len(mat) != dimD {
			gchk.Panic("transform.StateMatrix: matrix %d has %d rows, want %d", j, len(mat), dimD)
		}
		tensor.ForEachLaneInSlice(wf.Array, wf.Shape, m.AxisD, m.AxisE, j, func(l tensor.Lane) {
			buf := make([]complex128, dimD)
			out := make([]complex128, dimD)
			l.Gather(buf)
			cla.MatVecMul(out, mat, buf)
			l.Scatter(out)
		})
	}
}
