// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import "math"

// Insert adds config to the tree with the given RRT parent and userdata
// tag. It returns InvalidHandle with a nil error when config is within
// minDistance of an existing node (treated as already present, no
// structural change), and a non-nil *OutOfRangeError when no level of
// the tree could accept it.
func (t *Tree) Insert(parent NodeHandle, config []float64, userdata uint32) (NodeHandle, error) {
	if len(config) != t.dof {
		return InvalidHandle, ErrDOFMismatch
	}

	h := t.pool.alloc()
	n := t.pool.get(h)
	n.q = append(n.q[:0], config...)
	n.parent = parent
	n.userdata = userdata

	if t.numNodes == 0 {
		n.level = t.maxLevel
		t.levelSetAt(t.maxLevel).add(h)
		t.numNodes = 1
		t.root = h
		return h, nil
	}

	rootNode := t.pool.get(t.root)
	frontier := []frontierEntry{{t.root, t.oracles.Distance(rootNode.q, config)}}

	switch result := t.insertRecursive(h, config, frontier, t.maxLevel, t.fMaxLevelBound); {
	case result == 0:
		cfgCopy := append([]float64(nil), config...)
		t.pool.release(h)
		logWarnf("covertree: could not insert config=%v, maxDistance=%g is not enough from the root", cfgCopy, t.maxDistance)
		return InvalidHandle, &OutOfRangeError{Config: cfgCopy, MaxDistance: t.maxDistance}
	case result < 0:
		t.pool.release(h)
		return InvalidHandle, nil
	default:
		return h, nil
	}
}

// insertRecursive descends one level per call, narrowing the frontier
// of candidate cover-tree parents. It returns 1 on success, -1 when
// config is a near-duplicate of an existing node (no structural
// change), and 0 when no level accepted it.
func (t *Tree) insertRecursive(nodein NodeHandle, q []float64, frontier []frontierEntry, currentLevel int, fLevelBound float64) int {
	closestDist := math.Inf(1)
	closestNode := InvalidHandle

	considerCandidate := func(e frontierEntry) bool {
		if e.dist > fLevelBound {
			return false
		}
		switch {
		case closestNode == InvalidHandle:
			closestNode, closestDist = e.node, e.dist
		case e.dist < closestDist-epsilonLinear:
			closestNode, closestDist = e.node, e.dist
		case e.dist < closestDist+t.minDistance && t.pool.get(e.node).level < t.pool.get(closestNode).level:
			closestNode, closestDist = e.node, e.dist
		}
		return closestDist <= t.minDistance
	}

	enclevel := encLevel(currentLevel)
	if enclevel < len(t.levels) {
		var next []frontierEntry
		for _, cur := range frontier {
			if considerCandidate(cur) {
				return -1
			}
			if cur.dist <= fLevelBound*t.fBaseChildMult {
				next = append(next, cur)
			}
			curNode := t.pool.get(cur.node)
			if curNode.level == currentLevel {
				for _, c := range curNode.children {
					cn := t.pool.get(c)
					d := t.oracles.Distance(q, cn.q)
					if d <= fLevelBound*t.fBaseChildMult {
						next = append(next, frontierEntry{c, d})
					}
				}
			}
		}
		if len(next) > 0 {
			if r := t.insertRecursive(nodein, q, next, currentLevel-1, fLevelBound*t.fBaseInv); r != 0 {
				return r
			}
		}
	} else {
		for _, cur := range frontier {
			if considerCandidate(cur) {
				return -1
			}
		}
	}

	if closestNode == InvalidHandle {
		return 0
	}

	t.insertDirectly(nodein, closestNode, closestDist, currentLevel-1, fLevelBound*t.fBaseInv)
	t.numNodes++
	return 1
}

// insertDirectly attaches nodein under parent, cloning parent downward
// (self-child chain) as needed to keep the covering invariant, exactly
// mirroring the insertion-level search and clone loop of insertRecursive's
// caller in the originating system.
func (t *Tree) insertDirectly(nodein NodeHandle, parent NodeHandle, parentDist float64, maxInsertLevel int, fInsertLevelBound float64) {
	insertLevel := maxInsertLevel
	parentNode := t.pool.get(parent)

	if parentDist <= t.minDistance {
		if parentNode.hasSelfChild {
			newQ := t.pool.get(nodein).q
			for _, c := range parentNode.children {
				cn := t.pool.get(c)
				childDist := t.oracles.Distance(newQ, cn.q)
				if childDist <= t.minDistance {
					t.insertDirectly(nodein, c, childDist, maxInsertLevel-1, fInsertLevelBound*t.fBaseInv)
					return
				}
			}
			logWarnf("covertree: inconsistent self-child chain during insert")
			return
		}
	} else {
		fChildLevelBound := fInsertLevelBound
		for parentDist < fChildLevelBound {
			fChildLevelBound *= t.fBaseInv
			insertLevel--
		}
	}

	for parentNode.level > insertLevel+1 {
		cloneH := t.cloneNode(parent)
		clone := t.pool.get(cloneH)
		clone.level = parentNode.level - 1
		parentNode.children = append(parentNode.children, cloneH)
		parentNode.hasSelfChild = true
		t.levelSetAt(clone.level).add(cloneH)
		t.numNodes++
		parent = cloneH
		parentNode = clone
	}

	if parentDist <= t.minDistance {
		parentNode.hasSelfChild = true
	}

	newNode := t.pool.get(nodein)
	newNode.level = insertLevel
	t.levelSetAt(insertLevel).add(nodein)
	parentNode.children = append(parentNode.children, nodein)

	if t.minLevel > insertLevel {
		t.minLevel = insertLevel
	}
}

// cloneNode creates a structural duplicate of ref (same q, rrt parent,
// userdata and useNN), used both for self-child insertion and for the
// upward re-parenting clone chain during removal.
func (t *Tree) cloneNode(ref NodeHandle) NodeHandle {
	refNode := t.pool.get(ref)
	h := t.pool.alloc()
	n := t.pool.get(h)
	n.q = append(n.q[:0], refNode.q...)
	n.parent = refNode.parent
	n.userdata = refNode.userdata
	n.useNN = refNode.useNN
	return h
}
