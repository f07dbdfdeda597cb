// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loss tracks norm lost to non-unitary operators (border damping,
// numerical drift), adapted from the divergence/residual bookkeeping
// gofem's implicit solver keeps across a time loop (fem/s_implicit.go's
// ndiverg counter), generalized here to a continuous accumulated quantity.
package loss

import "github.com/Wleter/split-operator/wavefunc"

// Saver reports instantaneous and cumulative loss after each check,
// analogous to the saver package's Saver contract but scoped to loss
// bookkeeping. A concrete implementation (e.g. writing to a log file)
// lives outside this package.
type Saver interface {
	Save(name string, instantLoss, cumulativeLoss float64) error
}

// Checker observes a WaveFunction's norm before and after an operator and
// accumulates the difference as cumulative loss.
type Checker struct {
	Name        string
	Loss        float64 // cumulative loss observed so far
	CurrentNorm float64 // norm captured at the last CheckBefore
	Saver       Saver   // optional; nil disables reporting
}

// New builds a named Checker with zero accumulated loss.
func New(name string) *Checker {
	return &Checker{Name: name}
}

// CheckBefore records the wave function's norm ahead of a potentially
// lossy operator.
func (c *Checker) CheckBefore(wf *wavefunc.WaveFunction) {
	c.CurrentNorm = wf.Norm()
}

// CheckAfter computes the norm lost since the matching CheckBefore,
// accumulates it, and reports it through Saver if one is attached.
func (c *Checker) CheckAfter(wf *wavefunc.WaveFunction) error {
	after := wf.Norm()
	instant := c.CurrentNorm - after
	c.Loss += instant
	if c.Saver != nil {
		return c.Saver.Save(c.Name, instant, c.Loss)
	}
	return nil
}

// Reset zeroes the cumulative loss, keeping CurrentNorm untouched.
func (c *Checker) Reset() {
	c.Loss = 0
}
