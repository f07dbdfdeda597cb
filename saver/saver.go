// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package saver defines the monitor/save/reset contract an OperationStack
// entry drives; concrete persistence (on-disk array archives, text dumps)
// is external to this package. Grounded on the Output boundary in
// fem/output.go, kept intentionally thin here.
package saver

import "github.com/Wleter/split-operator/wavefunc"

// Saver observes a WaveFunction at the half-steps its owning stack entry
// selects, and can persist or report that observation. Monitor failures
// are returned as errors rather than panics; Propagation.Propagate stops
// at the first one and returns it.
type Saver interface {
	Monitor(wf *wavefunc.WaveFunction) error
	Reset() error
}
