// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides the flat-array, row-major N-D complex tensor and
// lane iteration the propagation core operates on. A "lane" is the 1-D
// slice obtained by fixing every index except the one on a chosen axis;
// operators and transformations act lane-by-lane, and because lanes
// touching the same axis are disjoint in memory they can be processed
// concurrently without synchronization, the same disjoint-ownership
// argument gofem's shape routines rely on for race-free concurrent
// CalcAtR calls (shp/t_racedetect_test.go).
package tensor

import (
	"sync"

	"github.com/Wleter/split-operator/internal/gchk"
)

// Strides returns the row-major (C-order) strides for shape: the last axis
// is contiguous.
func Strides(shape []int) []int {
	n := len(shape)
	strides := make([]int, n)
	acc := 1
	for i := n - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// Size returns the product of shape, i.e. the number of elements.
func Size(shape []int) int {
	size := 1
	for _, d := range shape {
		size *= d
	}
	return size
}

// EqualShape reports whether two shapes describe the same tensor extent.
func EqualShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Lane is a disjoint, strided view into one 1-D slice of a tensor along a
// fixed axis.
type Lane struct {
	data   []complex128
	offset int
	stride int
	n      int
}

// Len returns the number of elements in the lane (== shape[axis]).
func (l Lane) Len() int { return l.n }

// At returns the i-th element of the lane.
func (l Lane) At(i int) complex128 { return l.data[l.offset+i*l.stride] }

// Set writes the i-th element of the lane.
func (l Lane) Set(i int, v complex128) { l.data[l.offset+i*l.stride] = v }

// Gather copies the lane into dst, which must have length >= l.Len().
func (l Lane) Gather(dst []complex128) {
	for i := 0; i < l.n; i++ {
		dst[i] = l.At(i)
	}
}

// Scatter writes src back into the lane, which must have length >= l.Len().
func (l Lane) Scatter(src []complex128) {
	for i := 0; i < l.n; i++ {
		l.Set(i, src[i])
	}
}

// lanePositions enumerates the base offsets of every lane along axis for a
// tensor of shape, holding fixedAxis (if >= 0) at fixedIndex.
func lanePositions(shape []int, axis, fixedAxis, fixedIndex int) []int {
	strides := Strides(shape)
	ndim := len(shape)
	otherDims := make([]int, 0, ndim-1)
	for d := 0; d < ndim; d++ {
		if d == axis || d == fixedAxis {
			continue
		}
		otherDims = append(otherDims, d)
	}
	total := 1
	for _, d := range otherDims {
		total *= shape[d]
	}
	fixedOffset := 0
	if fixedAxis >= 0 {
		fixedOffset = fixedIndex * strides[fixedAxis]
	}
	offsets := make([]int, total)
	counters := make([]int, len(otherDims))
	for t := 0; t < total; t++ {
		offset := fixedOffset
		for k, d := range otherDims {
			offset += counters[k] * strides[d]
		}
		offsets[t] = offset
		for k := len(otherDims) - 1; k >= 0; k-- {
			counters[k]++
			if counters[k] < shape[otherDims[k]] {
				break
			}
			counters[k] = 0
		}
	}
	return offsets
}

// ForEachLane invokes f once per lane along axis, covering the whole
// tensor.
func ForEachLane(data []complex128, shape []int, axis int, f func(Lane)) {
	if axis < 0 || axis >= len(shape) {
		gchk.Panic("tensor.ForEachLane: axis %d out of range for shape %v", axis, shape)
	}
	strides := Strides(shape)
	for _, offset := range lanePositions(shape, axis, -1, 0) {
		f(Lane{data: data, offset: offset, stride: strides[axis], n: shape[axis]})
	}
}

// ForEachLaneParallel is the concurrent form of ForEachLane: disjoint
// lanes are fanned out one goroutine each, race-free by construction since
// no two lanes along the same axis ever share an element.
func ForEachLaneParallel(data []complex128, shape []int, axis int, f func(Lane)) {
	if axis < 0 || axis >= len(shape) {
		gchk.Panic("tensor.ForEachLaneParallel: axis %d out of range for shape %v", axis, shape)
	}
	strides := Strides(shape)
	offsets := lanePositions(shape, axis, -1, 0)
	var wg sync.WaitGroup
	for _, offset := range offsets {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			f(Lane{data: data, offset: offset, stride: strides[axis], n: shape[axis]})
		}(offset)
	}
	wg.Wait()
}

// ForEachLaneInSlice invokes f once per lane along axis, restricted to the
// slice where the index on fixedAxis equals fixedIndex. Used by the
// BlockPerState propagator and StateMatrixTransformation, where fixedAxis
// is the outer conditioning axis (e) and axis is the inner one (d), e > d.
func ForEachLaneInSlice(data []complex128, shape []int, axis, fixedAxis, fixedIndex int, f func(Lane)) {
	if axis < 0 || axis >= len(shape) || fixedAxis < 0 || fixedAxis >= len(shape) {
		gchk.Panic("tensor.ForEachLaneInSlice: axis %d / fixedAxis %d out of range for shape %v", axis, fixedAxis, shape)
	}
	strides := Strides(shape)
	for _, offset := range lanePositions(shape, axis, fixedAxis, fixedIndex) {
		f(Lane{data: data, offset: offset, stride: strides[axis], n: shape[axis]})
	}
}
