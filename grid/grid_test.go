// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearContinuousTrapezoidalWeights(t *testing.T) {
	g := LinearContinuous("x", 0, 5, 0, 4)
	require.Equal(t, 5, g.NodesNo)
	require.InDeltaSlice(t, []float64{0, 1, 2, 3, 4}, g.Nodes, 1e-12)
	require.InDelta(t, 0.5, g.Weights[0], 1e-12)
	require.InDelta(t, 0.5, g.Weights[4], 1e-12)
	for _, w := range g.Weights[1:4] {
		require.InDelta(t, 1.0, w, 1e-12)
	}
}

func TestLinearCountableUniformWeights(t *testing.T) {
	g := LinearCountable("p", 1, 4, 0, 3)
	for _, w := range g.Weights {
		require.InDelta(t, 1.0, w, 1e-12)
	}
}

func TestCustomRejectsMismatchedLengths(t *testing.T) {
	require.Panics(t, func() {
		Custom("x", 0, []float64{0, 1}, []float64{1})
	})
}

func TestSwapExchangesContent(t *testing.T) {
	a := LinearContinuous("x", 0, 3, 0, 2)
	b := LinearCountable("p", 0, 3, -1, 1)
	aName, bName := a.Name, b.Name
	a.Swap(&b)
	require.Equal(t, bName, a.Name)
	require.Equal(t, aName, b.Name)
}

func TestTimeGridDelta(t *testing.T) {
	tg := NewTimeGrid(2.0, 10, false)
	require.Equal(t, complex(0, -2.0), tg.Delta(Full))
	require.Equal(t, complex(0, -1.0), tg.Delta(Half))

	im := NewTimeGrid(2.0, 10, true)
	require.Equal(t, complex(-2.0, 0), im.Delta(Full))
	require.Equal(t, complex(-1.0, 0), im.Delta(Half))
}

func TestNewTimeGridRejectsInvalidInputs(t *testing.T) {
	require.Panics(t, func() { NewTimeGrid(0, 10, false) })
	require.Panics(t, func() { NewTimeGrid(1, -1, false) })
}
