// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/Wleter/split-operator/internal/gchk"

// StepSelector picks which fraction of the time step a PropagatorFactory
// should exponentiate over.
type StepSelector int

const (
	// Full selects the whole time step.
	Full StepSelector = iota
	// Half selects half the time step, used for the bracketing propagators
	// of a symmetric split-operator stack.
	Half
)

// TimeGrid holds the time-stepping parameters shared by a Propagation.
type TimeGrid struct {
	Step   float64 // time step size
	StepNo int     // number of steps to propagate
	ImTime bool    // true for imaginary-time evolution
}

// NewTimeGrid builds a TimeGrid, asserting a positive step and a
// non-negative step count.
func NewTimeGrid(step float64, stepNo int, imTime bool) TimeGrid {
	if step <= 0 {
		gchk.Panic("grid.NewTimeGrid: step must be > 0, got %g", step)
	}
	if stepNo < 0 {
		gchk.Panic("grid.NewTimeGrid: stepNo must be >= 0, got %d", stepNo)
	}
	return TimeGrid{Step: step, StepNo: stepNo, ImTime: imTime}
}

// Selected returns the time increment (not yet signed/rotated into the
// complex plane) for the given selector.
func (t TimeGrid) Selected(sel StepSelector) float64 {
	if sel == Half {
		return t.Step / 2
	}
	return t.Step
}

// Delta returns the effective complex time increment supplied to
// exponentiations: -i*step for real time, -step (real, placed on the real
// axis) for imaginary time.
func (t TimeGrid) Delta(sel StepSelector) complex128 {
	dt := t.Selected(sel)
	if t.ImTime {
		return complex(-dt, 0)
	}
	return complex(0, -dt)
}
