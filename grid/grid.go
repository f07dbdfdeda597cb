// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid holds the 1-D axis descriptors a WaveFunction is attached
// to, adapted from gofem's inp.Mesh node/weight bookkeeping (inp/msh.go) to
// the single-axis, quadrature-weighted case a spectral grid needs.
package grid

import "github.com/Wleter/split-operator/internal/gchk"

// Grid is a named 1-D axis: an ordered set of node positions paired with
// non-negative quadrature weights, plus the tensor axis index it is
// attached to.
type Grid struct {
	Name    string    // axis name, e.g. "x" or "p" (momentum)
	DimNo   int       // which tensor axis (0-based) this grid describes
	NodesNo int       // == len(Nodes) == len(Weights)
	Nodes   []float64 // ordered node positions
	Weights []float64 // non-negative quadrature weights
}

// LinearContinuous builds a uniformly spaced grid over [xmin, xmax] with n
// nodes and trapezoidal quadrature weights (endpoint weights halved).
func LinearContinuous(name string, dimNo, n int, xmin, xmax float64) Grid {
	if n < 2 {
		gchk.Panic("grid.LinearContinuous: n must be >= 2, got %d", n)
	}
	step := (xmax - xmin) / float64(n-1)
	nodes := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		nodes[i] = xmin + float64(i)*step
		weights[i] = step
	}
	weights[0] *= 0.5
	weights[n-1] *= 0.5
	return Grid{Name: name, DimNo: dimNo, NodesNo: n, Nodes: nodes, Weights: weights}
}

// LinearCountable builds a uniformly spaced grid over [xmin, xmax] with n
// nodes and uniform weights equal to the step size (no endpoint halving;
// used for periodic/countable axes such as momentum grids).
func LinearCountable(name string, dimNo, n int, xmin, xmax float64) Grid {
	if n < 2 {
		gchk.Panic("grid.LinearCountable: n must be >= 2, got %d", n)
	}
	step := (xmax - xmin) / float64(n-1)
	nodes := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		nodes[i] = xmin + float64(i)*step
		weights[i] = step
	}
	return Grid{Name: name, DimNo: dimNo, NodesNo: n, Nodes: nodes, Weights: weights}
}

// Custom builds a grid from caller-supplied nodes and weights.
func Custom(name string, dimNo int, nodes, weights []float64) Grid {
	if len(nodes) != len(weights) {
		gchk.Panic("grid.Custom: len(nodes)=%d != len(weights)=%d", len(nodes), len(weights))
	}
	return Grid{Name: name, DimNo: dimNo, NodesNo: len(nodes), Nodes: nodes, Weights: weights}
}

// Swap exchanges the content of g and other in place. This is the
// mechanism a Transformation uses to replace a WaveFunction's axis Grid
// with its dual (e.g. position <-> momentum) and restore it on the
// inverse call.
func (g *Grid) Swap(other *Grid) {
	*g, *other = *other, *g
}
