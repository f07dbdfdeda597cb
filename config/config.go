// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the plain, JSON-tagged descriptors a run is built
// from and the factories that turn them into grid.Grid and grid.TimeGrid
// values; wave functions and operation stacks are not built here.
// Adapted from inp.Simulation's Data/Stage descriptors
// (inp/sim.go): plain structs decoded with encoding/json, post-processed
// by a handful of SetDefault/PostProcess methods, no reflection-based
// schema machinery.
package config

import (
	"encoding/json"
	"io"
	"os"

	"github.com/Wleter/split-operator/grid"
	"github.com/Wleter/split-operator/internal/gchk"
)

// GridKind selects which grid.Grid factory a GridConfig builds.
type GridKind string

const (
	// KindContinuous builds a trapezoidal-quadrature grid via
	// grid.LinearContinuous.
	KindContinuous GridKind = "continuous"
	// KindCountable builds a uniform-weight grid via grid.LinearCountable.
	KindCountable GridKind = "countable"
)

// GridConfig describes one axis of a run, decoded from JSON.
type GridConfig struct {
	Name    string   `json:"name"`    // axis name, e.g. "x"
	DimNo   int      `json:"dimNo"`   // tensor axis index
	NodesNo int      `json:"nodesNo"` // node count
	Min     float64  `json:"min"`     // lower bound
	Max     float64  `json:"max"`     // upper bound
	Kind    GridKind `json:"kind"`    // continuous or countable
}

// SetDefault fills in the quadrature kind when left blank, matching
// inp.Data.SetDefault's role of filling unset JSON fields.
func (c *GridConfig) SetDefault() {
	if c.Kind == "" {
		c.Kind = KindContinuous
	}
}

// Build turns a GridConfig into a grid.Grid.
func (c GridConfig) Build() grid.Grid {
	switch c.Kind {
	case KindCountable:
		return grid.LinearCountable(c.Name, c.DimNo, c.NodesNo, c.Min, c.Max)
	case KindContinuous, "":
		return grid.LinearContinuous(c.Name, c.DimNo, c.NodesNo, c.Min, c.Max)
	default:
		gchk.Panic("config.GridConfig.Build: unknown kind %q", c.Kind)
		return grid.Grid{}
	}
}

// TimeGridConfig describes the time-stepping parameters of a run.
type TimeGridConfig struct {
	Step   float64 `json:"step"`   // time-step size
	StepNo int     `json:"stepNo"` // number of steps
	ImTime bool    `json:"imTime"` // imaginary-time propagation
}

// Build turns a TimeGridConfig into a grid.TimeGrid.
func (c TimeGridConfig) Build() grid.TimeGrid {
	return grid.NewTimeGrid(c.Step, c.StepNo, c.ImTime)
}

// RunConfig is the top-level descriptor for a run: the tensor axes and
// the time-stepping parameters. Propagators, transformations, controls
// and savers are wired programmatically by the caller rather than decoded
// from JSON, since their Hamiltonian samples and diagonalization matrices
// are domain data external to this package.
type RunConfig struct {
	Grids    []GridConfig   `json:"grids"`
	TimeGrid TimeGridConfig `json:"timeGrid"`
}

// SetDefault fills in defaults across every GridConfig. ReadRunConfig
// calls it after decoding, so it only fills fields the JSON left blank.
func (c *RunConfig) SetDefault() {
	for i := range c.Grids {
		c.Grids[i].SetDefault()
	}
}

// BuildGrids turns every GridConfig into a grid.Grid, in order.
func (c RunConfig) BuildGrids() []grid.Grid {
	grids := make([]grid.Grid, len(c.Grids))
	for i, gc := range c.Grids {
		grids[i] = gc.Build()
	}
	return grids
}

// ReadRunConfig reads a RunConfig from a JSON file: it reads the file,
// decodes it, then applies SetDefault.
func ReadRunConfig(path string) (*RunConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gchk.Err("config.ReadRunConfig: %v", err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, gchk.Err("config.ReadRunConfig: %v", err)
	}
	cfg := &RunConfig{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, gchk.Err("config.ReadRunConfig: %v", err)
	}
	cfg.SetDefault()
	return cfg, nil
}
