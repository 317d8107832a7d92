// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

// Empty reports whether the tree holds no nodes.
func (t *Tree) Empty() bool { return t.numNodes == 0 }

// GetNumNodes returns the count of live structural nodes, including
// self-child clones: it reflects structural nodes, not distinct
// configurations.
func (t *Tree) GetNumNodes() int { return t.numNodes }

// GetDOF returns the fixed configuration dimensionality this tree was
// initialized with.
func (t *Tree) GetDOF() int { return t.dof }

// GetVectorConfig returns a copy of n's configuration. A copy is always
// returned rather than a reference to internal storage, so callers may
// freely retain or mutate it.
func (t *Tree) GetVectorConfig(n NodeHandle) ([]float64, error) {
	if int(n) < 0 || int(n) >= len(t.pool.nodes) {
		return nil, errInvalidHandle
	}
	q := t.pool.get(n).q
	cp := make([]float64, len(q))
	copy(cp, q)
	return cp, nil
}

// GetNodesVector returns every live node handle in level-set storage
// order (the same order DumpTree and GetNodeFromIndex use), not sorted
// by level magnitude.
func (t *Tree) GetNodesVector() []NodeHandle {
	out := make([]NodeHandle, 0, t.numNodes)
	for _, ls := range t.levels {
		if ls != nil {
			out = append(out, ls.order...)
		}
	}
	return out
}

// GetNodeFromIndex returns the node at position i in GetNodesVector's
// order. The index is stable only until the next mutation.
func (t *Tree) GetNodeFromIndex(i int) (NodeHandle, bool) {
	if i < 0 || i >= t.numNodes {
		return InvalidHandle, false
	}
	remaining := i
	for _, ls := range t.levels {
		if ls == nil {
			continue
		}
		if remaining < ls.len() {
			return ls.order[remaining], true
		}
		remaining -= ls.len()
	}
	return InvalidHandle, false
}
