// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavefunc implements the N-D complex wave function container: a
// flat tensor paired with one Grid per axis, the weight-amplitude cache
// that turns elementwise magnitudes into a Riemann-sum norm, and the
// change-tracking that decides when that cache must be rebuilt.
//
// Grounded on the Domain/Solution split in gofem (fem/domain.go): Domain
// owns the mesh (here, the Grids) and the Solution vector (here, Array);
// WaveFunction keeps the same ownership shape for a spectral field.
package wavefunc

import (
	"math"

	"github.com/Wleter/split-operator/grid"
	"github.com/Wleter/split-operator/internal/gchk"
	"github.com/Wleter/split-operator/tensor"
)

// WaveFunction is a rank-N complex tensor attached to one Grid per axis.
type WaveFunction struct {
	Array []complex128 // flat row-major tensor data, len == tensor.Size(Shape)
	Shape []int        // Shape[k] == Grids[k].NodesNo
	Grids []grid.Grid  // one Grid per axis, Grids[k].DimNo == k

	weightAmplitude []float64 // cached ⊗_k sqrt(weights_k), same shape as Array
	observer        ChangeObserver
}

// New builds a WaveFunction from a flat complex array and its per-axis
// Grids. The array length must equal the product of grid node counts, and
// Grids[k].DimNo must equal k.
func New(array []complex128, grids []grid.Grid) *WaveFunction {
	shape := make([]int, len(grids))
	for k, g := range grids {
		if g.DimNo != k {
			gchk.Panic("wavefunc.New: grids[%d].DimNo == %d, want %d", k, g.DimNo, k)
		}
		shape[k] = g.NodesNo
	}
	if len(array) != tensor.Size(shape) {
		gchk.Panic("wavefunc.New: array has %d elements, want %d for shape %v", len(array), tensor.Size(shape), shape)
	}
	wf := &WaveFunction{
		Array: array,
		Shape: shape,
		Grids: append([]grid.Grid(nil), grids...),
	}
	wf.rebuildWeightAmplitude()
	wf.observer.possibleNormChange = true
	return wf
}

// Zeros builds a WaveFunction of zeros shaped by grids.
func Zeros(grids []grid.Grid) *WaveFunction {
	shape := make([]int, len(grids))
	for k, g := range grids {
		shape[k] = g.NodesNo
	}
	return New(make([]complex128, tensor.Size(shape)), grids)
}

func (wf *WaveFunction) axisNames() []string {
	names := make([]string, len(wf.Grids))
	for k, g := range wf.Grids {
		names[k] = g.Name
	}
	return names
}

// rebuildWeightAmplitude recomputes the separable weight tensor by
// starting from all-ones and, for each axis, multiplying every element by
// sqrt(weight) of its index on that axis: the outer product ⊗_k sqrt(w_k).
func (wf *WaveFunction) rebuildWeightAmplitude() {
	size := tensor.Size(wf.Shape)
	wa := make([]float64, size)
	for i := range wa {
		wa[i] = 1
	}
	strides := tensor.Strides(wf.Shape)
	for k, g := range wf.Grids {
		sqrtW := make([]float64, g.NodesNo)
		for i, w := range g.Weights {
			sqrtW[i] = math.Sqrt(w)
		}
		stride := strides[k]
		dim := wf.Shape[k]
		for i := range wa {
			axisIdx := (i / stride) % dim
			wa[i] *= sqrtW[axisIdx]
		}
	}
	wf.weightAmplitude = wa
	wf.observer.lastNames = wf.axisNames()
}

// MarkPossibleNormChange flags that the array may have changed magnitude;
// every propagator, transformation or control that mutates Array must call
// this.
func (wf *WaveFunction) MarkPossibleNormChange() {
	wf.observer.possibleNormChange = true
}

// Norm returns Σ|array|²·|weightAmplitude|², the Riemann-sum approximation
// of ∫|ψ|². If no operator has flagged a possible change since the last
// call, the cached value is returned without recomputation.
func (wf *WaveFunction) Norm() float64 {
	if !wf.observer.possibleNormChange {
		return wf.observer.lastNorm
	}
	if !wf.observer.namesMatch(wf.axisNames()) {
		wf.rebuildWeightAmplitude()
	}
	sum := 0.0
	for i, a := range wf.Array {
		wa := wf.weightAmplitude[i]
		sum += (real(a)*real(a) + imag(a)*imag(a)) * wa * wa
	}
	wf.observer.lastNorm = sum
	wf.observer.possibleNormChange = false
	return sum
}

// Normalize rescales Array so that Norm() == targetNorm.
func (wf *WaveFunction) Normalize(targetNorm float64) {
	current := wf.Norm()
	if current <= 0 {
		gchk.Panic("wavefunc.Normalize: current norm is non-positive (%g), cannot rescale", current)
	}
	scale := complex(math.Sqrt(targetNorm/current), 0)
	for i := range wf.Array {
		wf.Array[i] *= scale
	}
	wf.observer.lastNorm = targetNorm
	wf.observer.possibleNormChange = false
}

// Density returns the elementwise |array|² tensor, flattened in the same
// row-major order as Array.
func (wf *WaveFunction) Density() []float64 {
	d := make([]float64, len(wf.Array))
	for i, a := range wf.Array {
		d[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return d
}

// StateDensity integrates |array|²·|weightAmplitude|² over every axis
// except axis, preserving the weights on the integrated-out axes, and
// returns the resulting marginal of length Shape[axis].
func (wf *WaveFunction) StateDensity(axis int) []float64 {
	if axis < 0 || axis >= len(wf.Shape) {
		gchk.Panic("wavefunc.StateDensity: axis %d out of range for shape %v", axis, wf.Shape)
	}
	if !wf.observer.namesMatch(wf.axisNames()) {
		wf.rebuildWeightAmplitude()
	}
	strides := tensor.Strides(wf.Shape)
	stride := strides[axis]
	dim := wf.Shape[axis]
	out := make([]float64, dim)
	for i, a := range wf.Array {
		j := (i / stride) % dim
		wa := wf.weightAmplitude[i]
		out[j] += (real(a)*real(a) + imag(a)*imag(a)) * wa * wa
	}
	return out
}

// Dot returns ⟨self|other⟩ = Σ self·conj(other)·|weightAmplitude|²,
// normalized by √(‖self‖·‖other‖). Both wave functions must share the same
// weight-amplitude cache (same grids), otherwise this is an invariant
// violation and aborts.
func (wf *WaveFunction) Dot(other *WaveFunction) complex128 {
	if !wf.observer.namesMatch(wf.axisNames()) {
		wf.rebuildWeightAmplitude()
	}
	if !other.observer.namesMatch(other.axisNames()) {
		other.rebuildWeightAmplitude()
	}
	if len(wf.weightAmplitude) != len(other.weightAmplitude) {
		gchk.Panic("wavefunc.Dot: weight-amplitude arrays have different lengths (%d vs %d)", len(wf.weightAmplitude), len(other.weightAmplitude))
	}
	for i := range wf.weightAmplitude {
		if wf.weightAmplitude[i] != other.weightAmplitude[i] {
			gchk.Panic("wavefunc.Dot: weight-amplitude arrays differ at index %d; wave functions must share the same grids", i)
		}
	}
	var sum complex128
	for i, a := range wf.Array {
		wa := wf.weightAmplitude[i]
		sum += a * complex(real(other.Array[i]), -imag(other.Array[i])) * complex(wa*wa, 0)
	}
	denom := math.Sqrt(wf.Norm() * other.Norm())
	if denom == 0 {
		gchk.Panic("wavefunc.Dot: cannot normalize dot product, norm product is zero")
	}
	return sum / complex(denom, 0)
}

// Clone returns a deep copy of wf, used by Propagation.MeanEnergy's
// real-time branch to advance a disposable copy one step.
func (wf *WaveFunction) Clone() *WaveFunction {
	arr := make([]complex128, len(wf.Array))
	copy(arr, wf.Array)
	grids := append([]grid.Grid(nil), wf.Grids...)
	c := New(arr, grids)
	c.observer = wf.observer
	return c
}
