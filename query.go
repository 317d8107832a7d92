// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import "math"

// FindNearest returns the live (useNN) node closest to query and its
// distance, descending the tree level by level. On an empty tree, or
// when no node is usable, it returns (InvalidHandle, +Inf).
//
// The best-so-far answer is replaced only by a node whose own useNN is
// true, and only while the incumbent's useNN is true. Invalidated nodes
// are still expanded, so usable nodes below them in the cover tree are
// still found, and the pruning bound is taken from the closest usable
// child only. The search frontiers are local to each call, so
// concurrent FindNearest calls share no scratch state.
func (t *Tree) FindNearest(query []float64) (NodeHandle, float64) {
	if t.numNodes == 0 {
		return InvalidHandle, math.Inf(1)
	}

	currentLevel := t.maxLevel
	fLevelBound := t.fMaxLevelBound

	rootNode := t.pool.get(t.root)
	rootDist := t.oracles.Distance(rootNode.q, query)

	curFrontier := []frontierEntry{{t.root, rootDist}}
	var nextFrontier []frontierEntry

	best := InvalidHandle
	bestDist := math.Inf(1)
	if rootNode.useNN {
		best, bestDist = t.root, rootDist
	}

	for len(curFrontier) > 0 {
		nextFrontier = nextFrontier[:0]
		minChildDist := math.Inf(1)

		for _, cur := range curFrontier {
			curNode := t.pool.get(cur.node)
			for _, c := range curNode.children {
				cn := t.pool.get(c)
				d := t.oracles.Distance(cn.q, query)
				if cn.useNN && (best == InvalidHandle || (d < bestDist && t.pool.get(best).useNN)) {
					best, bestDist = c, d
				}
				nextFrontier = append(nextFrontier, frontierEntry{c, d})
				if cn.useNN && d < minChildDist {
					minChildDist = d
				}
			}
		}

		testBound := minChildDist + fLevelBound
		curFrontier = curFrontier[:0]
		for _, nxt := range nextFrontier {
			if nxt.dist < testBound {
				curFrontier = append(curFrontier, nxt)
			}
		}

		currentLevel--
		fLevelBound *= t.fBaseInv
	}

	return best, bestDist
}
