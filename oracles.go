// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

// Direction indicates which way a bi-directional planner's tree is
// growing, for host callbacks that need to flip their interpolation or
// constraint-checking order accordingly.
type Direction int

const (
	// InitialToGoal is used by a forward (start-rooted) tree.
	InitialToGoal Direction = iota
	// GoalToInitial is used by a backward (goal-rooted) tree.
	GoalToInitial
)

// StepStatus is the result of a single NeighborStep call.
type StepStatus int

const (
	StepReached StepStatus = iota
	StepFailed
)

// CheckFlags is a bitmask passed to CheckPathAllConstraints.
type CheckFlags uint32

const (
	// FillCheckedConfigurations asks the oracle to populate
	// CheckResult.Configurations with every configuration it actually
	// checked along the segment, in traversal order.
	FillCheckedConfigurations CheckFlags = 1 << iota
)

// CheckResult is populated by CheckPathAllConstraints.
type CheckResult struct {
	// Configurations holds every configuration checked along the
	// segment, in order, when FillCheckedConfigurations was set and
	// Deviated is true. Each configuration is dof scalars long.
	Configurations [][]float64

	// Deviated is true when the checker's actual path deviated from a
	// straight-line interpolation between from and to (e.g. because it
	// clipped to a constraint manifold), in which case Configurations
	// holds the polyline that must be inserted instead of a single
	// endpoint.
	Deviated bool
}

// Oracles bundles the host-provided callbacks the tree consults. None
// of these are called concurrently with each other; all are synchronous
// and invoked only from within Extend, except Distance, which Insert,
// FindNearest, RemoveNode and Validate also call.
//
// The "0 on success, non-zero rejects" C convention of the originating
// system is translated to idiomatic Go: a nil error means accepted: a
// non-nil error is always treated as a local, non-fatal rejection (its
// value is never inspected beyond nil-ness by the tree itself).
type Oracles interface {
	// Distance returns a symmetric metric obeying the triangle
	// inequality over two configurations of length DOF. It may be
	// non-Euclidean (e.g. it may wrap circular joints).
	Distance(a, b []float64) float64

	// DiffState returns the componentwise "to - from" delta, respecting
	// joint topology (circular joints wrap to the shorter direction).
	DiffState(to, from []float64) []float64

	// SetState validates/applies config as the current state. A non-nil
	// error rejects it (out-of-bounds, infeasible).
	SetState(config []float64) error

	// NeighborStep attempts to move newInOut by delta, returning
	// StepReached on success. It may clip newInOut to a constraint
	// manifold; direction hints which way the owning tree is growing.
	NeighborStep(newInOut, delta []float64, direction Direction) StepStatus

	// CheckPathAllConstraints validates the segment from -> to. A nil
	// error means the path is valid. When flags includes
	// FillCheckedConfigurations, result is populated with the actual
	// checked configurations and whether they deviated from a
	// straight-line interpolation.
	CheckPathAllConstraints(from, to []float64, openEnd bool, flags CheckFlags, result *CheckResult) error
}
