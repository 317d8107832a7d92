// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

// Validate re-derives all six invariants by traversing the level sets
// top-down, logging the first violation it finds at Error level. For the
// self-child shape, a child one level down within minDistance of its
// parent counts as the self-child. It
// does not panic or abort: library callers decide how to react to an
// invariant failure (a debug build might choose to panic on a false
// return; this package only reports).
func (t *Tree) Validate() bool {
	if t.numNodes == 0 {
		return true
	}

	rootLS := t.levelSetExists(t.maxLevel)
	if rootLS == nil || rootLS.len() != 1 {
		logErrorf("covertree: expected exactly one root node")
		return false
	}

	fLevelBound := t.fMaxLevelBound
	var accum []NodeHandle
	allChildren := 0
	countedNodes := 0

	for level := t.maxLevel; level >= t.minLevel; level-- {
		ls := t.levelSetExists(level)
		if ls == nil {
			fLevelBound *= t.fBaseInv
			continue
		}

		for _, h := range ls.order {
			n := t.pool.get(h)
			for _, c := range n.children {
				cn := t.pool.get(c)
				d := t.oracles.Distance(n.q, cn.q)
				if d > fLevelBound+epsilonLinear {
					logErrorf("covertree: invalid parent/child at level %d (bound=%g), dist=%g", level, fLevelBound, d)
					return false
				}
			}
			if n.hasSelfChild {
				selfChildren := 0
				for _, c := range n.children {
					cn := t.pool.get(c)
					if cn.level == n.level-1 && t.oracles.Distance(n.q, cn.q) <= t.minDistance {
						selfChildren++
					}
				}
				if selfChildren != 1 {
					logErrorf("covertree: node at level %d has %d self-children, want 1", level, selfChildren)
					return false
				}
			}
			allChildren += len(n.children)
			if !n.hasSelfChild {
				accum = append(accum, h)
			}

			if level < t.maxLevel {
				found := 0
				if parentLS := t.levelSetExists(level + 1); parentLS != nil {
					for _, p := range parentLS.order {
						for _, c := range t.pool.get(p).children {
							if c == h {
								found++
							}
						}
					}
				}
				if found != 1 {
					logErrorf("covertree: node at level %d has %d parents, want 1", level, found)
					return false
				}
			}
		}

		countedNodes += ls.len()

		na := len(accum)
		for i := 0; i < na; i++ {
			for j := i + 1; j < na; j++ {
				d := t.oracles.Distance(t.pool.get(accum[i]).q, t.pool.get(accum[j]).q)
				if d <= fLevelBound {
					logErrorf("covertree: invalid sibling separation at level %d (bound=%g), dist=%g", level, fLevelBound, d)
					return false
				}
			}
		}

		fLevelBound *= t.fBaseInv
	}

	if countedNodes != t.numNodes {
		logErrorf("covertree: numNodes=%d but level sets hold %d", t.numNodes, countedNodes)
		return false
	}
	if allChildren+1 != t.numNodes {
		logErrorf("covertree: numNodes=%d but children count implies %d", t.numNodes, allChildren+1)
		return false
	}
	return true
}
