// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack implements OperationStack, the ordered, heterogeneous
// sequence of propagators, transformations, savers and controls a
// Propagation drives through a symmetric forward/reverse sweep.
//
// The four item kinds are realized as a tagged variant rather than a
// virtual hierarchy: an Item struct carrying one populated field per Kind,
// built through fluent Add* builders the way fem/element.go's Elem values
// are assembled by a handful of small factory functions rather than a
// deep class hierarchy.
package stack

import (
	"github.com/Wleter/split-operator/control"
	"github.com/Wleter/split-operator/internal/wutl"
	"github.com/Wleter/split-operator/propagator"
	"github.com/Wleter/split-operator/saver"
	"github.com/Wleter/split-operator/transform"
)

// Apply is a bitmask selecting which half-steps of a symmetric step a
// Saver or Control stack entry is invoked on.
type Apply int

const (
	FirstHalf Apply = 1 << iota
	SecondHalf
	Both = FirstHalf | SecondHalf
)

// Includes reports whether mask selects half.
func (mask Apply) Includes(half Apply) bool {
	return mask&half != 0
}

// Kind tags which field of an Item is populated.
type Kind int

const (
	KindPropagator Kind = iota
	KindTransformation
	KindSaver
	KindControl
)

// Item is one entry of an OperationStack: a tagged variant over the four
// kinds a stack can hold.
type Item struct {
	Kind Kind

	Propagator propagator.Propagator

	Transformation transform.Transformation
	Order          transform.Order

	Saver      saver.Saver
	SaverApply Apply

	Control      control.Control
	ControlApply Apply
}

// OperationStack is the ordered sequence of items a Propagation sweeps
// forward then reverse on every step.
type OperationStack struct {
	Items []Item
}

// New builds an empty OperationStack.
func New() *OperationStack {
	return &OperationStack{}
}

// AddPropagator appends a diagonal propagator.
func (s *OperationStack) AddPropagator(p propagator.Propagator) *OperationStack {
	s.Items = append(s.Items, Item{Kind: KindPropagator, Propagator: p})
	return s
}

// AddTransformation appends a basis transformation with the given sweep
// order.
func (s *OperationStack) AddTransformation(t transform.Transformation, order transform.Order) *OperationStack {
	s.Items = append(s.Items, Item{Kind: KindTransformation, Transformation: t, Order: order})
	return s
}

// AddSaver appends a monitor invoked on the half-steps apply selects.
func (s *OperationStack) AddSaver(sv saver.Saver, apply Apply) *OperationStack {
	s.Items = append(s.Items, Item{Kind: KindSaver, Saver: sv, SaverApply: apply})
	return s
}

// AddControl appends a control invoked on the half-steps apply selects.
func (s *OperationStack) AddControl(c control.Control, apply Apply) *OperationStack {
	s.Items = append(s.Items, Item{Kind: KindControl, Control: c, ControlApply: apply})
	return s
}

// Len returns the number of items in the stack.
func (s *OperationStack) Len() int {
	return len(s.Items)
}

// axis returns the tensor axis the item's propagator or transformation
// touches, or -1 if it doesn't apply to one (savers, controls).
func (it Item) axis() int {
	switch p := it.Propagator.(type) {
	case *propagator.OneDim:
		return p.Axis
	case *propagator.BlockPerState:
		return wutl.Max(p.AxisD, p.AxisE)
	}
	switch t := it.Transformation.(type) {
	case *transform.FFT:
		return t.Axis
	case *transform.Matrix:
		return t.Axis
	case *transform.StateMatrix:
		return wutl.Max(t.AxisD, t.AxisE)
	}
	return -1
}

// String summarizes the stack's item kinds and the deepest tensor axis
// any propagator or transformation in it touches, the way gofem's
// descriptor types report themselves via utl.Sf.
func (s *OperationStack) String() string {
	var propagators, transformations, savers, controls, maxAxis int
	for _, i := range wutl.IntRange(len(s.Items)) {
		item := s.Items[i]
		switch item.Kind {
		case KindPropagator:
			propagators++
		case KindTransformation:
			transformations++
		case KindSaver:
			savers++
		case KindControl:
			controls++
		}
		if axis := item.axis(); axis >= 0 {
			maxAxis = wutl.Max(maxAxis, axis)
		}
	}
	return wutl.Sf("OperationStack{propagators=%d, transformations=%d, savers=%d, controls=%d, maxAxis=%d}",
		propagators, transformations, savers, controls, maxAxis)
}
