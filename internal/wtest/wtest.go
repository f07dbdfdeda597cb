// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wtest carries the floating-point tolerance comparisons used
// across the test suite, adapted from gosl/chk's Vector/Scalar/AnaNum
// helpers (seen throughout gofem's t_*_test.go files, e.g.
// fem/t_spo_test.go's chk.AnaNum, shp/testing.go's chk.Vector) onto
// testify/require so every test in the repository shares one assertion
// backend instead of mixing two.
package wtest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scalar asserts actual is within tol of expected, labeling the failure
// with name.
func Scalar(t *testing.T, name string, tol, expected, actual float64) {
	t.Helper()
	require.InDeltaf(t, expected, actual, tol, "%s: expected %v, got %v", name, expected, actual)
}

// Vector asserts actual and expected have the same length and that every
// pair of elements is within tol, labeling the failure with name.
func Vector(t *testing.T, name string, tol float64, actual, expected []float64) {
	t.Helper()
	require.Lenf(t, actual, len(expected), "%s: length mismatch", name)
	require.InDeltaSlicef(t, expected, actual, tol, "%s", name)
}

// ComplexVector asserts actual and expected have the same length and that
// every pair of elements agrees within tol on both real and imaginary
// parts.
func ComplexVector(t *testing.T, name string, tol float64, actual, expected []complex128) {
	t.Helper()
	require.Lenf(t, actual, len(expected), "%s: length mismatch", name)
	for i := range expected {
		require.InDeltaf(t, real(expected[i]), real(actual[i]), tol, "%s[%d] (real)", name, i)
		require.InDeltaf(t, imag(expected[i]), imag(actual[i]), tol, "%s[%d] (imag)", name, i)
	}
}

// AnaNum compares an analytic value against a numeric one within tol,
// optionally printing both when verbose (matching chk.AnaNum's verbose
// flag, used across fem/t_spo_test.go to report tight-tolerance checks).
func AnaNum(t *testing.T, name string, tol, analytic, numeric float64, verbose bool) {
	t.Helper()
	if verbose {
		t.Logf("%s: analytic=%v numeric=%v diff=%v", name, analytic, numeric, analytic-numeric)
	}
	require.InDeltaf(t, analytic, numeric, tol, "%s: analytic %v vs numeric %v", name, analytic, numeric)
}
