// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavefunc

import (
	"testing"

	"github.com/Wleter/split-operator/grid"
	"github.com/stretchr/testify/require"
)

func uniformGrid(name string, dimNo, n int, lo, hi float64) grid.Grid {
	return grid.LinearCountable(name, dimNo, n, lo, hi)
}

func TestNormIsSeparableAcrossAxes(t *testing.T) {
	gx := uniformGrid("x", 0, 4, 0, 3)
	gy := uniformGrid("y", 1, 3, 0, 2)
	arr := make([]complex128, 12)
	for i := range arr {
		arr[i] = complex(1, 0)
	}
	wf := New(arr, []grid.Grid{gx, gy})
	require.InDelta(t, 12.0, wf.Norm(), 1e-9)
}

func TestNormIsCachedUntilMarked(t *testing.T) {
	g := uniformGrid("x", 0, 4, 0, 3)
	arr := []complex128{1, 1, 1, 1}
	wf := New(arr, []grid.Grid{g})
	first := wf.Norm()
	wf.Array[0] = 100
	require.Equal(t, first, wf.Norm(), "norm must stay cached until MarkPossibleNormChange")
	wf.MarkPossibleNormChange()
	require.Greater(t, wf.Norm(), first)
}

func TestNormalizeRescalesToTarget(t *testing.T) {
	g := uniformGrid("x", 0, 5, 0, 4)
	arr := make([]complex128, 5)
	for i := range arr {
		arr[i] = complex(float64(i+1), 0)
	}
	wf := New(arr, []grid.Grid{g})
	wf.Normalize(1)
	require.InDelta(t, 1.0, wf.Norm(), 1e-9)
}

func TestDensityIsElementwiseSquaredMagnitude(t *testing.T) {
	g := grid.LinearContinuous("x", 0, 5, 0, 4)
	arr := make([]complex128, 5)
	for i := range arr {
		arr[i] = complex(float64(i), 0)
	}
	wf := New(arr, []grid.Grid{g})
	density := wf.Density()
	require.Len(t, density, 5)
	for i, d := range density {
		require.InDelta(t, real(arr[i])*real(arr[i]), d, 1e-12)
	}
}

func TestStateDensityMarginalizesOtherAxes(t *testing.T) {
	gx := uniformGrid("x", 0, 2, 0, 1)
	gy := uniformGrid("y", 1, 3, 0, 2)
	arr := make([]complex128, 6)
	for i := range arr {
		arr[i] = complex(1, 0)
	}
	wf := New(arr, []grid.Grid{gx, gy})
	marginal := wf.StateDensity(0)
	require.Len(t, marginal, 2)
	total := 0.0
	for _, m := range marginal {
		total += m
	}
	require.InDelta(t, wf.Norm(), total, 1e-9)
}

func TestDotOfNormalizedSelfIsOne(t *testing.T) {
	g := uniformGrid("x", 0, 4, 0, 3)
	arr := []complex128{1, 2, 3, 4}
	wf := New(arr, []grid.Grid{g})
	wf.Normalize(1)
	overlap := wf.Dot(wf)
	require.InDelta(t, 1.0, real(overlap), 1e-9)
	require.InDelta(t, 0.0, imag(overlap), 1e-9)
}

func TestDotPanicsOnMismatchedGrids(t *testing.T) {
	g1 := uniformGrid("x", 0, 4, 0, 3)
	g2 := uniformGrid("x", 0, 5, 0, 4)
	wf1 := New([]complex128{1, 1, 1, 1}, []grid.Grid{g1})
	wf2 := New([]complex128{1, 1, 1, 1, 1}, []grid.Grid{g2})
	require.Panics(t, func() { wf1.Dot(wf2) })
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	g := uniformGrid("x", 0, 4, 0, 3)
	wf := New([]complex128{1, 2, 3, 4}, []grid.Grid{g})
	c := wf.Clone()
	require.Equal(t, wf.Norm(), c.Norm())
	c.Array[0] = 42
	require.NotEqual(t, wf.Array[0], c.Array[0])
}

func TestWeightCacheRebuildsWhenAxisNamesChange(t *testing.T) {
	g := uniformGrid("x", 0, 4, 0, 3)
	wf := New([]complex128{1, 1, 1, 1}, []grid.Grid{g})
	_ = wf.Norm()
	renamed := g
	renamed.Name = "p"
	renamed.Weights = []float64{2, 2, 2, 2}
	wf.Grids[0] = renamed
	wf.MarkPossibleNormChange()
	require.NotPanics(t, func() { wf.Norm() })
	require.InDelta(t, 8.0, wf.Norm(), 1e-9)
}

func TestNewPanicsOnShapeMismatch(t *testing.T) {
	g := uniformGrid("x", 0, 4, 0, 3)
	require.Panics(t, func() { New([]complex128{1, 2, 3}, []grid.Grid{g}) })
}

func TestZerosBuildsEmptyArray(t *testing.T) {
	g := uniformGrid("x", 0, 3, 0, 2)
	wf := Zeros([]grid.Grid{g})
	for _, v := range wf.Array {
		require.Equal(t, complex128(0), v)
	}
	require.InDelta(t, 0.0, wf.Norm(), 1e-12)
}
