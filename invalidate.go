// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

// InvalidateNodesWithParent marks root and every node transitively
// reachable through the RRT parent back-reference as unusable for
// nearest-neighbor results (useNN = false). This is purely logical: no
// node is unlinked or freed, so handles held by callers remain valid.
//
// Implemented as a closure fixpoint over the level sets, mirroring the
// originating system's repeat-until-no-change scan. A scratch levelSet
// stands in for its std::set-based "already marked" cache, since both
// are just a fast membership test over NodeHandles.
func (t *Tree) InvalidateNodesWithParent(root NodeHandle) {
	if root == InvalidHandle {
		return
	}

	t.pool.get(root).useNN = false

	marked := newLevelSet()
	marked.add(root)

	changed := true
	for changed {
		changed = false
		for _, ls := range t.levels {
			if ls == nil {
				continue
			}
			for _, h := range ls.order {
				if marked.contains(h) {
					continue
				}
				n := t.pool.get(h)
				if n.parent != InvalidHandle && marked.contains(n.parent) {
					n.useNN = false
					marked.add(h)
					changed = true
				}
			}
		}
	}
}
