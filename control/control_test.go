// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"testing"

	"github.com/Wleter/split-operator/grid"
	"github.com/Wleter/split-operator/loss"
	"github.com/Wleter/split-operator/wavefunc"
	"github.com/stretchr/testify/require"
)

func TestLeakControlRestoresNormAfterDrift(t *testing.T) {
	g := grid.LinearCountable("x", 0, 3, 0, 2)
	wf := wavefunc.New([]complex128{1, 1, 1}, []grid.Grid{g})
	lc := NewLeakControl()

	require.NoError(t, lc.FirstHalf(wf))
	wf.Array[0] = 5 // simulate non-unitary drift between halves
	wf.MarkPossibleNormChange()
	require.NoError(t, lc.SecondHalf(wf))
	require.InDelta(t, 3.0, wf.Norm(), 1e-9)
}

func TestLeakControlTracksLossWhenChecked(t *testing.T) {
	g := grid.LinearCountable("x", 0, 2, 0, 1)
	wf := wavefunc.New([]complex128{1, 1}, []grid.Grid{g})
	lc := NewLeakControl()
	lc.SetLossChecked(loss.New("drift"))

	require.NoError(t, lc.FirstHalf(wf))
	wf.Array[0] = 0
	wf.MarkPossibleNormChange()
	require.NoError(t, lc.SecondHalf(wf))
	require.Greater(t, lc.LossChecker().Loss, 0.0)
}

func TestBorderDumpingMaskIsOneInInterior(t *testing.T) {
	g := grid.LinearContinuous("x", 0, 10, 0, 9)
	d := NewBorderDumping(2, 0, g)
	require.Equal(t, complex128(1), d.Mask[0])
}

func TestBorderDumpingMaskDecaysToZeroAtEdge(t *testing.T) {
	g := grid.LinearContinuous("x", 0, 10, 0, 9)
	d := NewBorderDumping(2, 0, g)
	require.Equal(t, complex128(0), d.Mask[len(d.Mask)-1])
}

func TestBorderDumpingAbsorbsNormFromEdge(t *testing.T) {
	g := grid.LinearContinuous("x", 0, 10, 0, 9)
	d := NewBorderDumping(2, 0, g)
	arr := make([]complex128, 10)
	for i := range arr {
		arr[i] = complex(1, 0)
	}
	wf := wavefunc.New(arr, []grid.Grid{g})
	before := wf.Norm()
	absorbed := d.AbsorbedNorm(wf)
	require.Greater(t, absorbed, 0.0)
	require.NoError(t, d.FirstHalf(wf))
	after := wf.Norm()
	require.Less(t, after, before)
}

func TestBorderDumpingPanicsOnAxisLengthMismatch(t *testing.T) {
	g := grid.LinearContinuous("x", 0, 4, 0, 3)
	d := NewBorderDumping(1, 0, g)
	other := grid.LinearContinuous("x", 0, 6, 0, 5)
	wf := wavefunc.New(make([]complex128, 6), []grid.Grid{other})
	require.Panics(t, func() { d.FirstHalf(wf) })
}
