// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/Wleter/split-operator/grid"
	"github.com/Wleter/split-operator/internal/gchk"
	"github.com/Wleter/split-operator/tensor"
	"github.com/Wleter/split-operator/wavefunc"
)

// FFT is a unitary complex-to-complex Fourier transformation along one
// axis, backed by gonum's dsp/fourier.CmplxFFT plan — the same package
// zerfoo's spectral feature layers import (features/transformers.go,
// layers/features/spectral.go), generalized here from their real-valued
// fourier.FFT to the complex-to-complex variant a wave function needs.
type FFT struct {
	Axis     int
	ReplGrid grid.Grid
	plan     *fourier.CmplxFFT
	scale    float64 // sqrt(D), applied to both forward and inverse
}

// NewFFT builds an FFT transformation for the axis described by g,
// replacing it with a momentum-space Grid named newName. g's nodes must
// be uniformly spaced and g.NodesNo must be even (so the Nyquist-adjacent
// half-weighting is well defined).
func NewFFT(g grid.Grid, newName string) *FFT {
	d := g.NodesNo
	if d < 2 || d%2 != 0 {
		gchk.Panic("transform.NewFFT: grid %q has %d nodes, must be even and >= 2", g.Name, d)
	}
	xmin, xmax := g.Nodes[0], g.Nodes[d-1]
	dk := 2 * math.Pi / (xmax - xmin) * (1 - 1/float64(d))
	nodes := make([]float64, d)
	weights := make([]float64, d)
	half := d / 2
	for j := 0; j < d; j++ {
		if j < half {
			nodes[j] = float64(j) * dk
		} else {
			nodes[j] = float64(j-d) * dk
		}
		weights[j] = dk
	}
	weights[half-1] *= 0.5
	weights[half] *= 0.5
	repl := grid.Custom(newName, g.DimNo, nodes, weights)
	return &FFT{
		Axis:     g.DimNo,
		ReplGrid: repl,
		plan:     fourier.NewCmplxFFT(d),
		scale:    math.Sqrt(float64(d)),
	}
}

// Transform replaces the axis Grid with the momentum-space Grid and
// applies the normalized forward DFT to every lane along the axis.
func (t *FFT) Transform(wf *wavefunc.WaveFunction) error {
	t.apply(wf, true)
	return nil
}

// InverseTransform reinstates the original Grid and applies the
// normalized inverse DFT to every lane along the axis.
func (t *FFT) InverseTransform(wf *wavefunc.WaveFunction) error {
	t.apply(wf, false)
	return nil
}

func (t *FFT) apply(wf *wavefunc.WaveFunction, forward bool) {
	n := t.plan.Len()
	if wf.Shape[t.Axis] != n {
		gchk.Panic("transform.FFT: axis %d has length %d, plan expects %d", t.Axis, wf.Shape[t.Axis], n)
	}
	wf.Grids[t.Axis].Swap(&t.ReplGrid)
	wf.MarkPossibleNormChange()
	scale := complex(t.scale, 0)
	plan := t.plan
	tensor.ForEachLaneParallel(wf.Array, wf.Shape, t.Axis, func(l tensor.Lane) {
		buf := make([]complex128, n)
		out := make([]complex128, n)
		l.Gather(buf)
		if forward {
			plan.Coefficients(out, buf)
			for i := range out {
				out[i] /= scale
			}
		} else {
			plan.Sequence(out, buf)
			for i := range out {
				out[i] /= scale
			}
		}
		l.Scatter(out)
	})
}
