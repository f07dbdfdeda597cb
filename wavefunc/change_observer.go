// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavefunc

// ChangeObserver tracks whether a WaveFunction's norm must be recomputed
// and whether the Grid attached to any axis has been replaced since the
// weight-amplitude cache was last built. It is embedded in WaveFunction
// rather than exposed as a standalone collaborator, mirroring how gofem's
// Domain embeds its Solution rather than handing callers a separate
// accessor object (fem/domain.go).
type ChangeObserver struct {
	lastNames          []string // axis names observed when weightAmplitude was last built
	lastNorm           float64  // norm computed at the last Norm() call
	possibleNormChange bool     // true once any operator may have altered |array|
}

// namesMatch reports whether names equals the last-observed axis-name
// snapshot; a mismatch is the sentinel that forces a weight-cache rebuild.
// A monotonic Grid version counter would serve the same purpose without
// changing observable behavior; the name-comparison sentinel is kept here
// for its simplicity.
func (c *ChangeObserver) namesMatch(names []string) bool {
	if len(names) != len(c.lastNames) {
		return false
	}
	for i, n := range names {
		if n != c.lastNames[i] {
			return false
		}
	}
	return true
}
