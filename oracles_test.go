// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import "math"

// euclideanOracles is a minimal Oracles implementation over plain
// Euclidean space, used by the scenario tests in §8 of the spec. It
// never rejects SetState/NeighborStep/CheckPathAllConstraints unless
// explicitly configured to, mirroring the pack's HNSW reference file's
// plain Euclidean distance helper (no third-party linear-algebra
// dependency is needed for a handful of scalars).
type euclideanOracles struct {
	// deviate, when set, makes CheckPathAllConstraints report a
	// polyline of deviateSteps intermediate configurations instead of
	// approving the straight-line endpoint, exercising the Extend
	// multi-point insertion path (spec §4.7, scenario 5).
	deviate      bool
	deviateSteps int

	// rejectAllSetState makes every SetState call fail, for exercising
	// Extend's OracleRejection path.
	rejectAllSetState bool
	accepted          int
}

func (o *euclideanOracles) Distance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (o *euclideanOracles) DiffState(to, from []float64) []float64 {
	delta := make([]float64, len(to))
	for i := range to {
		delta[i] = to[i] - from[i]
	}
	return delta
}

func (o *euclideanOracles) SetState(config []float64) error {
	if o.rejectAllSetState {
		return errStateRejected
	}
	o.accepted++
	return nil
}

func (o *euclideanOracles) NeighborStep(newInOut, delta []float64, direction Direction) StepStatus {
	for i := range newInOut {
		newInOut[i] += delta[i]
	}
	return StepReached
}

func (o *euclideanOracles) CheckPathAllConstraints(from, to []float64, openEnd bool, flags CheckFlags, result *CheckResult) error {
	if !o.deviate {
		return nil
	}

	steps := o.deviateSteps
	if steps <= 0 {
		steps = 5
	}
	result.Deviated = true
	result.Configurations = make([][]float64, steps)
	for s := 1; s <= steps; s++ {
		frac := float64(s) / float64(steps)
		cfg := make([]float64, len(from))
		for i := range from {
			cfg[i] = from[i] + frac*(to[i]-from[i])
		}
		result.Configurations[s-1] = cfg
	}
	return nil
}

var errStateRejected = errRejected{}

type errRejected struct{}

func (errRejected) Error() string { return "oracle: state rejected" }

func newTestTree(t testingT, dof int, stepLength, maxDistance float64, fromGoal bool) (*Tree, *euclideanOracles) {
	t.Helper()
	oracles := &euclideanOracles{}
	tree, err := New(Config{
		DOF:         dof,
		StepLength:  stepLength,
		MaxDistance: maxDistance,
		FromGoal:    fromGoal,
	}, oracles)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tree, oracles
}

// testingT is the minimal subset of *testing.T used by test helpers in
// this package, so helpers can live in a single file shared by every
// _test.go without importing "testing" directly here.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}
