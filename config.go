// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

// Config bundles the parameters an embedding planner supplies at tree
// construction. The zero value is not ready to use: DOF, StepLength and
// MaxDistance must be set; the rest default sensibly.
type Config struct {
	// DOF is the fixed dimensionality of every configuration vector.
	DOF int

	// StepLength is the planner's nominal per-iteration progress
	// magnitude. It sets both Extend's scaling and, via MinDistance,
	// the separation threshold below which two configurations are
	// treated as identical.
	StepLength float64

	// MaxDistance bounds the configuration space radius the tree must
	// be able to cover; it determines MaxLevel.
	MaxDistance float64

	// Base is the cover tree's level base. Defaults to 2.0.
	Base float64

	// BaseChildMult bounds how far a descendant in the search frontier
	// may sit from a covering ancestor, as a multiple of the current
	// level bound. Must satisfy Base <= BaseChildMult; smaller values
	// (including the zero value) are raised to Base.
	BaseChildMult float64

	// FromGoal fixes Extend's traversal direction for this tree:
	// false for a forward (start-rooted) tree, true for a backward
	// (goal-rooted) tree in a bi-directional planner.
	FromGoal bool

	// ExtendIterationCap bounds the number of step iterations a single
	// Extend call may perform, guarding against a pathological oracle.
	// Defaults to 100.
	ExtendIterationCap int
}

func (c *Config) setDefaults() {
	if c.Base <= 0 {
		c.Base = 2.0
	}
	if c.BaseChildMult < c.Base {
		c.BaseChildMult = c.Base
	}
	if c.ExtendIterationCap <= 0 {
		c.ExtendIterationCap = 100
	}
}
