// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package propagation implements the symmetric split-operator stepper:
// Propagation orchestrates a forward sweep then a reverse sweep (skipping
// the stack's last, "middle" item) over an OperationStack, drives the
// time loop, and computes mean energy.
//
// Grounded on fem/s_implicit.go's SolverImplicit.Run time loop (the outer
// `for t < tf` driving repeated steps) combined with fem/fem.go's
// FEM/FEsolver split between the thing that owns simulation state and the
// thing that knows how to advance it.
package propagation

import (
	"math"
	"math/cmplx"

	"github.com/Wleter/split-operator/control"
	"github.com/Wleter/split-operator/grid"
	"github.com/Wleter/split-operator/internal/gchk"
	"github.com/Wleter/split-operator/loss"
	"github.com/Wleter/split-operator/stack"
	"github.com/Wleter/split-operator/transform"
	"github.com/Wleter/split-operator/wavefunc"
)

// lossAware is implemented by propagators and controls that optionally
// carry a loss.Checker.
type lossAware interface {
	LossChecker() *loss.Checker
}

// Propagation wires a WaveFunction, a TimeGrid and an OperationStack
// together and drives the split-operator time loop.
type Propagation struct {
	WF       *wavefunc.WaveFunction
	TimeGrid grid.TimeGrid
	Stack    *stack.OperationStack
}

// New builds an empty Propagation; use the Set* builders to wire it up.
func New() *Propagation {
	return &Propagation{}
}

// SetWaveFunction attaches the WaveFunction to propagate.
func (p *Propagation) SetWaveFunction(wf *wavefunc.WaveFunction) *Propagation {
	p.WF = wf
	return p
}

// SetTimeGrid attaches the time-stepping parameters.
func (p *Propagation) SetTimeGrid(tg grid.TimeGrid) *Propagation {
	p.TimeGrid = tg
	return p
}

// SetOperationStack attaches the ordered operator sequence a step sweeps
// over.
func (p *Propagation) SetOperationStack(s *stack.OperationStack) *Propagation {
	p.Stack = s
	return p
}

// Step runs one symmetric split-operator step against the attached
// WaveFunction.
func (p *Propagation) Step() error {
	if p.WF == nil {
		gchk.Panic("propagation.Step: no wave function attached")
	}
	if p.Stack == nil {
		gchk.Panic("propagation.Step: no operation stack attached")
	}
	return p.stepOn(p.WF)
}

// stepOn runs one symmetric split-operator step against an arbitrary
// WaveFunction, letting MeanEnergy's real-time branch advance a disposable
// clone without disturbing the attached WaveFunction.
func (p *Propagation) stepOn(wf *wavefunc.WaveFunction) error {
	items := p.Stack.Items
	n := len(items)
	for i := 0; i < n; i++ {
		if err := applyForward(items[i], wf); err != nil {
			return err
		}
	}
	for i := n - 2; i >= 0; i-- {
		if err := applyReverse(items[i], wf); err != nil {
			return err
		}
	}
	return nil
}

func applyForward(item stack.Item, wf *wavefunc.WaveFunction) error {
	switch item.Kind {
	case stack.KindPropagator:
		return item.Propagator.Apply(wf)
	case stack.KindTransformation:
		if item.Order == transform.Normal {
			return item.Transformation.Transform(wf)
		}
		return item.Transformation.InverseTransform(wf)
	case stack.KindSaver:
		if item.SaverApply.Includes(stack.FirstHalf) {
			return item.Saver.Monitor(wf)
		}
	case stack.KindControl:
		if item.ControlApply.Includes(stack.FirstHalf) {
			return item.Control.FirstHalf(wf)
		}
	}
	return nil
}

func applyReverse(item stack.Item, wf *wavefunc.WaveFunction) error {
	switch item.Kind {
	case stack.KindPropagator:
		return item.Propagator.Apply(wf)
	case stack.KindTransformation:
		if item.Order == transform.Normal {
			return item.Transformation.InverseTransform(wf)
		}
		return item.Transformation.Transform(wf)
	case stack.KindSaver:
		if item.SaverApply.Includes(stack.SecondHalf) {
			return item.Saver.Monitor(wf)
		}
	case stack.KindControl:
		if item.ControlApply.Includes(stack.SecondHalf) {
			return item.Control.SecondHalf(wf)
		}
	}
	return nil
}

// Propagate runs TimeGrid.StepNo steps, stopping early and returning the
// first error raised by a Saver.
func (p *Propagation) Propagate() error {
	for i := 0; i < p.TimeGrid.StepNo; i++ {
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

// MeanEnergy computes the mean energy of the attached WaveFunction.
//
// In imaginary time, it requires the stack's first item to be a
// control.LeakControl with a loss checker attached (a hard failure
// otherwise): it resets that checker's loss, runs one step, and derives
// the energy from the accumulated decay, dividing by 2*step since Norm()
// returns ‖ψ‖² rather than ‖ψ‖.
//
// In real time, it clones the wave function, advances the clone one
// step, and returns the phase of the normalized overlap between the
// advanced clone and the original, divided by -step.
func (p *Propagation) MeanEnergy() (float64, error) {
	if p.TimeGrid.ImTime {
		return p.meanEnergyImaginary()
	}
	return p.meanEnergyReal()
}

func (p *Propagation) meanEnergyImaginary() (float64, error) {
	if p.Stack == nil || len(p.Stack.Items) == 0 {
		gchk.Panic("propagation.MeanEnergy: imaginary-time mode requires the stack's first item to be a LeakControl")
	}
	first := p.Stack.Items[0]
	if first.Kind != stack.KindControl {
		gchk.Panic("propagation.MeanEnergy: imaginary-time mode requires the stack's first item to be a Control, got kind %v", first.Kind)
	}
	lc, ok := first.Control.(*control.LeakControl)
	if !ok {
		gchk.Panic("propagation.MeanEnergy: imaginary-time mode requires the stack's first item to be a LeakControl")
	}
	if lc.LossChecker() == nil {
		gchk.Panic("propagation.MeanEnergy: the leading LeakControl has no loss checker attached")
	}
	lc.Loss.Reset()
	if err := p.Step(); err != nil {
		return 0, err
	}
	delta := lc.Loss.Loss
	arg := p.WF.Norm() - delta
	if arg <= 0 {
		gchk.Panic("propagation.MeanEnergy: norm minus loss is non-positive (%g), cannot take log", arg)
	}
	return -math.Log(arg) / (2 * p.TimeGrid.Step), nil
}

func (p *Propagation) meanEnergyReal() (float64, error) {
	after := p.WF.Clone()
	if err := p.stepOn(after); err != nil {
		return 0, err
	}
	overlap := after.Dot(p.WF)
	return -cmplx.Phase(overlap) / p.TimeGrid.Step, nil
}

// GetLosses returns the cumulative loss of every loss.Checker reachable
// through the stack's propagators and controls, keyed by checker name.
func (p *Propagation) GetLosses() map[string]float64 {
	losses := map[string]float64{}
	for _, item := range p.Stack.Items {
		if lc := checkerOf(item); lc != nil {
			losses[lc.Name] = lc.Loss
		}
	}
	return losses
}

// ResetLosses zeroes every loss.Checker reachable through the stack.
func (p *Propagation) ResetLosses() {
	for _, item := range p.Stack.Items {
		if lc := checkerOf(item); lc != nil {
			lc.Reset()
		}
	}
}

// ResetSaversState resets every Saver reachable through the stack,
// returning the first error encountered.
func (p *Propagation) ResetSaversState() error {
	for _, item := range p.Stack.Items {
		if item.Kind == stack.KindSaver {
			if err := item.Saver.Reset(); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkerOf(item stack.Item) *loss.Checker {
	switch item.Kind {
	case stack.KindPropagator:
		if la, ok := item.Propagator.(lossAware); ok {
			return la.LossChecker()
		}
	case stack.KindControl:
		if la, ok := item.Control.(lossAware); ok {
			return la.LossChecker()
		}
	}
	return nil
}
