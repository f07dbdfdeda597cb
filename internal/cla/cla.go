// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cla provides the small set of complex-valued dense linear-algebra
// routines the core's Transformation and BlockPerState propagator need:
// a matrix-vector product applied lane-by-lane along a tensor axis.
//
// gosl/la (gofem's linear-algebra dependency) only operates on float64;
// there is no complex128 dense-matrix package anywhere in the retrieval
// pack, so this sibling reuses gosl/la's naming convention (MatAlloc,
// MatVecMul, MatClone) over complex128 instead of inventing unrelated
// names. See DESIGN.md for why this is implemented here rather than
// imported.
package cla

// MatAlloc allocates a rows x cols complex matrix, the complex analogue of
// la.MatAlloc.
func MatAlloc(rows, cols int) [][]complex128 {
	m := make([][]complex128, rows)
	buf := make([]complex128, rows*cols)
	for i := range m {
		m[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// MatClone returns a deep copy of a, the complex analogue of la.MatClone.
func MatClone(a [][]complex128) [][]complex128 {
	if len(a) == 0 {
		return nil
	}
	cols := len(a[0])
	b := MatAlloc(len(a), cols)
	for i := range a {
		copy(b[i], a[i])
	}
	return b
}

// MatVecMul sets v = A*u, the complex analogue of la.MatVecMul (without the
// scaling factor, which the caller folds into A or u when needed).
func MatVecMul(v []complex128, a [][]complex128, u []complex128) {
	for i := range a {
		var sum complex128
		row := a[i]
		for j, aij := range row {
			sum += aij * u[j]
		}
		v[i] = sum
	}
}

// VecClone returns a copy of v.
func VecClone(v []complex128) []complex128 {
	c := make([]complex128, len(v))
	copy(c, v)
	return c
}
