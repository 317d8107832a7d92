// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

// ExtendResult is the outcome of a single Extend call.
type ExtendResult int

const (
	// Failed means no progress was made: the tree is unchanged beyond
	// whatever the loop's early exits already did.
	Failed ExtendResult = iota
	// Success means at least one node was added but the target was not
	// reached.
	Success
	// Connected means the frontier reached within
	// progressThreshold*stepLength of the target, or a single-step Extend made any progress at all
	// (oneStep relies on this value, not Success).
	Connected
)

const progressThreshold = 0.01

// Extend grows the tree toward target, up to t.extendIterationCap
// iterations, consulting the oracles for state validity, neighbor
// stepping and path constraints at each iteration. When oneStep is
// true, Extend returns as soon as any node has been added, using
// Connected rather than Success for that case — preserved exactly as
// the originating bi-directional planner depends on this value.
func (t *Tree) Extend(target []float64, oneStep bool) (ExtendResult, NodeHandle) {
	nearest, _ := t.FindNearest(target)
	if nearest == InvalidHandle {
		return Failed, InvalidHandle
	}

	pnode := nearest
	lastNode := nearest
	added := false
	cur := append([]float64(nil), t.pool.get(pnode).q...)

	outcome := func() ExtendResult {
		if added {
			return Success
		}
		return Failed
	}

	for iter := 0; iter < t.extendIterationCap; iter++ {
		dist := t.oracles.Distance(cur, target)
		var scale float64
		switch {
		case dist > t.stepLength:
			scale = t.stepLength / dist
		case dist <= progressThreshold*t.stepLength:
			return Connected, lastNode
		default:
			scale = 1
		}

		newConfig := append([]float64(nil), cur...)
		delta := t.oracles.DiffState(target, cur)
		for i := range delta {
			delta[i] *= scale
		}

		if err := t.oracles.SetState(newConfig); err != nil {
			return outcome(), lastNode
		}

		direction := InitialToGoal
		if t.fromGoal {
			direction = GoalToInitial
		}
		if t.oracles.NeighborStep(newConfig, delta, direction) == StepFailed {
			return outcome(), lastNode
		}

		if t.oracles.Distance(cur, newConfig) <= progressThreshold*t.stepLength {
			return outcome(), lastNode
		}

		from, to := cur, newConfig
		if t.fromGoal {
			from, to = newConfig, cur
		}
		var result CheckResult
		if err := t.oracles.CheckPathAllConstraints(from, to, t.fromGoal, FillCheckedConfigurations, &result); err != nil {
			return outcome(), lastNode
		}

		if result.Deviated {
			configs := result.Configurations
			insertOne := func(cfg []float64) bool {
				h, err := t.Insert(pnode, cfg, 0)
				if err != nil || h == InvalidHandle {
					return false
				}
				added = true
				pnode, lastNode = h, h
				return true
			}
			if t.fromGoal {
				for i := len(configs) - 1; i >= 0; i-- {
					if !insertOne(configs[i]) {
						break
					}
				}
			} else {
				for i := range configs {
					if !insertOne(configs[i]) {
						break
					}
				}
			}
		} else if h, err := t.Insert(pnode, newConfig, 0); err == nil && h != InvalidHandle {
			pnode, lastNode = h, h
			added = true
		}

		if added && oneStep {
			return Connected, lastNode
		}
		cur = newConfig
	}

	return outcome(), lastNode
}
