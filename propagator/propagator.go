// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package propagator implements the diagonal (elementwise-multiplicative)
// propagators: 1-D along a single axis, N-D across the whole tensor, and
// block-per-state (a dense matrix per outer-axis index). Grounded on the
// Elem interface's AddToKb/Update contract in fem/element.go: an object
// that mutates the shared Solution given the current step, optionally
// reporting failure.
package propagator

import (
	"github.com/Wleter/split-operator/internal/cla"
	"github.com/Wleter/split-operator/internal/gchk"
	"github.com/Wleter/split-operator/loss"
	"github.com/Wleter/split-operator/tensor"
	"github.com/Wleter/split-operator/wavefunc"
)

// Propagator is one item an OperationStack can hold: a diagonal
// multiplicative step applied in place to a WaveFunction.
type Propagator interface {
	Apply(wf *wavefunc.WaveFunction) error
}

// OneDim applies an elementwise complex operator along one axis, the same
// operator broadcast across every lane on that axis.
type OneDim struct {
	Axis     int
	Operator []complex128
	Loss     *loss.Checker
}

// NewOneDim allocates a OneDim propagator for axis with an identity
// operator of the given length.
func NewOneDim(axis, length int) *OneDim {
	op := make([]complex128, length)
	for i := range op {
		op[i] = 1
	}
	return &OneDim{Axis: axis, Operator: op}
}

// SetOperator replaces the operator, asserting its length matches the
// already-configured axis length.
func (p *OneDim) SetOperator(op []complex128) {
	if len(op) != len(p.Operator) {
		gchk.Panic("propagator.OneDim.SetOperator: operator has %d elements, want %d", len(op), len(p.Operator))
	}
	p.Operator = op
}

// AddOperator fuses another operator in multiplicatively (used to combine
// several potentials into a single exponentiated propagator).
func (p *OneDim) AddOperator(op []complex128) {
	if len(op) != len(p.Operator) {
		gchk.Panic("propagator.OneDim.AddOperator: operator has %d elements, want %d", len(op), len(p.Operator))
	}
	for i := range p.Operator {
		p.Operator[i] *= op[i]
	}
}

// SetLossChecked attaches a loss Checker observed around every Apply.
func (p *OneDim) SetLossChecked(c *loss.Checker) {
	p.Loss = c
}

// LossChecker returns the attached loss Checker, or nil.
func (p *OneDim) LossChecker() *loss.Checker {
	return p.Loss
}

// Apply multiplies every lane along Axis elementwise by Operator.
func (p *OneDim) Apply(wf *wavefunc.WaveFunction) error {
	if len(p.Operator) != wf.Shape[p.Axis] {
		gchk.Panic("propagator.OneDim.Apply: operator length %d does not match axis %d length %d", len(p.Operator), p.Axis, wf.Shape[p.Axis])
	}
	if p.Loss != nil {
		p.Loss.CheckBefore(wf)
	}
	op := p.Operator
	tensor.ForEachLaneParallel(wf.Array, wf.Shape, p.Axis, func(l tensor.Lane) {
		for i := 0; i < l.Len(); i++ {
			l.Set(i, l.At(i)*op[i])
		}
	})
	wf.MarkPossibleNormChange()
	if p.Loss != nil {
		return p.Loss.CheckAfter(wf)
	}
	return nil
}

// NDim applies a full-tensor elementwise complex operator with the same
// shape as the wave function.
type NDim struct {
	Shape    []int
	Operator []complex128
	Loss     *loss.Checker
}

// NewNDim allocates an NDim propagator with an identity operator of the
// given shape.
func NewNDim(shape []int) *NDim {
	op := make([]complex128, tensor.Size(shape))
	for i := range op {
		op[i] = 1
	}
	return &NDim{Shape: append([]int(nil), shape...), Operator: op}
}

// SetOperator replaces the operator, asserting it matches the configured
// shape.
func (p *NDim) SetOperator(op []complex128) {
	if len(op) != len(p.Operator) {
		gchk.Panic("propagator.NDim.SetOperator: operator has %d elements, want %d", len(op), len(p.Operator))
	}
	p.Operator = op
}

// AddOperator fuses another full-tensor operator in multiplicatively.
func (p *NDim) AddOperator(op []complex128) {
	if len(op) != len(p.Operator) {
		gchk.Panic("propagator.NDim.AddOperator: operator has %d elements, want %d", len(op), len(p.Operator))
	}
	for i := range p.Operator {
		p.Operator[i] *= op[i]
	}
}

// SetLossChecked attaches a loss Checker observed around every Apply.
func (p *NDim) SetLossChecked(c *loss.Checker) {
	p.Loss = c
}

// LossChecker returns the attached loss Checker, or nil.
func (p *NDim) LossChecker() *loss.Checker {
	return p.Loss
}

// Apply multiplies the whole tensor elementwise by Operator.
func (p *NDim) Apply(wf *wavefunc.WaveFunction) error {
	if !tensor.EqualShape(p.Shape, wf.Shape) {
		gchk.Panic("propagator.NDim.Apply: operator shape %v does not match wave function shape %v", p.Shape, wf.Shape)
	}
	if p.Loss != nil {
		p.Loss.CheckBefore(wf)
	}
	for i := range wf.Array {
		wf.Array[i] *= p.Operator[i]
	}
	wf.MarkPossibleNormChange()
	if p.Loss != nil {
		return p.Loss.CheckAfter(wf)
	}
	return nil
}

// BlockPerState applies, for each index j on the outer axis E, a dense
// matrix Operators[j] to every lane along the inner axis D inside that
// slice. E must be strictly greater than D.
type BlockPerState struct {
	AxisD, AxisE int
	Operators    [][][]complex128 // [shape[E]][shape[D]][shape[D]]
	Loss         *loss.Checker
}

// NewBlockPerState allocates a BlockPerState propagator with identity
// matrices for every outer-axis index.
func NewBlockPerState(axisD, axisE, dimD, dimE int) *BlockPerState {
	if axisE <= axisD {
		gchk.Panic("propagator.NewBlockPerState: axisE (%d) must be > axisD (%d)", axisE, axisD)
	}
	ops := make([][][]complex128, dimE)
	for j := range ops {
		m := cla.MatAlloc(dimD, dimD)
		for i := 0; i < dimD; i++ {
			m[i][i] = 1
		}
		ops[j] = m
	}
	return &BlockPerState{AxisD: axisD, AxisE: axisE, Operators: ops}
}

// SetOperator replaces the dense matrix used for outer-axis index j.
func (p *BlockPerState) SetOperator(j int, m [][]complex128) {
	if j < 0 || j >= len(p.Operators) {
		gchk.Panic("propagator.BlockPerState.SetOperator: index %d out of range (%d states)", j, len(p.Operators))
	}
	dimD := len(p.Operators[j])
	if len(m) != dimD {
		gchk.Panic("propagator.BlockPerState.SetOperator: matrix has %d rows, want %d", len(m), dimD)
	}
	for _, row := range m {
		if len(row) != dimD {
			gchk.Panic("propagator.BlockPerState.SetOperator: matrix row has %d columns, want %d", len(row), dimD)
		}
	}
	p.Operators[j] = m
}

// SetLossChecked attaches a loss Checker observed around every Apply.
func (p *BlockPerState) SetLossChecked(c *loss.Checker) {
	p.Loss = c
}

// LossChecker returns the attached loss Checker, or nil.
func (p *BlockPerState) LossChecker() *loss.Checker {
	return p.Loss
}

// Apply replaces each lane along AxisD, within the slice fixed at index j
// on AxisE, by Operators[j] * lane.
func (p *BlockPerState) Apply(wf *wavefunc.WaveFunction) error {
	if p.AxisE >= len(wf.Shape) || p.AxisD >= len(wf.Shape) {
		gchk.Panic("propagator.BlockPerState.Apply: axes (%d, %d) out of range for shape %v", p.AxisD, p.AxisE, wf.Shape)
	}
	if len(p.Operators) != wf.Shape[p.AxisE] {
		gchk.Panic("propagator.BlockPerState.Apply: %d matrices configured, want %d (shape[axisE])", len(p.Operators), wf.Shape[p.AxisE])
	}
	dimD := wf.Shape[p.AxisD]
	if p.Loss != nil {
		p.Loss.CheckBefore(wf)
	}
	buf := make([]complex128, dimD)
	out := make([]complex128, dimD)
	for j, m := range p.Operators {
		if len(m) != dimD {
			gchk.Panic("propagator.BlockPerState.Apply: matrix %d has %d rows, want %d", j, len(m), dimD)
		}
		tensor.ForEachLaneInSlice(wf.Array, wf.Shape, p.AxisD, p.AxisE, j, func(l tensor.Lane) {
			l.Gather(buf)
			cla.MatVecMul(out, m, buf)
			l.Scatter(out)
		})
	}
	wf.MarkPossibleNormChange()
	if p.Loss != nil {
		return p.Loss.CheckAfter(wf)
	}
	return nil
}
