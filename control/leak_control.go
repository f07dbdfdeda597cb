// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"github.com/Wleter/split-operator/loss"
	"github.com/Wleter/split-operator/wavefunc"
)

// LeakControl preserves norm across a step by recording it on FirstHalf
// and rescaling the wave function back to it on SecondHalf, offsetting
// non-unitary numerical drift accumulated in between.
type LeakControl struct {
	Loss *loss.Checker // optional
	norm float64       // norm recorded at the matching FirstHalf
}

// NewLeakControl builds a LeakControl with no loss checker attached.
func NewLeakControl() *LeakControl {
	return &LeakControl{}
}

// SetLossChecked attaches a loss Checker observed around the step this
// control brackets.
func (c *LeakControl) SetLossChecked(l *loss.Checker) {
	c.Loss = l
}

// LossChecker returns the attached loss Checker, or nil.
func (c *LeakControl) LossChecker() *loss.Checker {
	return c.Loss
}

// FirstHalf records the current norm and, if a loss checker is attached,
// begins observing it.
func (c *LeakControl) FirstHalf(wf *wavefunc.WaveFunction) error {
	c.norm = wf.Norm()
	if c.Loss != nil {
		c.Loss.CheckBefore(wf)
	}
	return nil
}

// SecondHalf completes the loss observation, if any, then rescales the
// wave function back to the norm recorded at FirstHalf.
func (c *LeakControl) SecondHalf(wf *wavefunc.WaveFunction) error {
	var err error
	if c.Loss != nil {
		err = c.Loss.CheckAfter(wf)
	}
	wf.Normalize(c.norm)
	return err
}
