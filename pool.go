// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

// pool is a fixed-block allocator for *treeNode, specialized for a
// single-writer tree: tens of thousands of nodes of uniform size are
// allocated and occasionally freed, so a slab with a free list avoids
// both fragmentation and per-node header overhead.
//
// Unlike a sync.Pool, pool hands out stable NodeHandle indices rather
// than pointers, so parent/children back-references survive across
// slab growth. Released nodes are not returned to the slab's backing
// array; their slot is remembered on a free list and reused by the next
// alloc, with the node's own storage (q, children) retained at
// capacity rather than reallocated.
type pool struct {
	dof   int
	nodes []*treeNode
	free  []NodeHandle

	totalAllocated int
	currentLive    int
}

func newPool(dof int) *pool {
	return &pool{dof: dof}
}

// alloc returns a handle to a fresh or recycled node, reset to its zero
// structural state (empty q, no parent, no children, useNN=true).
func (p *pool) alloc() NodeHandle {
	p.currentLive++

	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		return h
	}

	p.totalAllocated++
	n := &treeNode{
		q:      make([]float64, 0, p.dof),
		parent: InvalidHandle,
		useNN:  true,
	}
	p.nodes = append(p.nodes, n)
	return NodeHandle(len(p.nodes) - 1)
}

// release returns h's node to the free list after resetting it in
// place, retaining its backing storage's capacity for reuse.
func (p *pool) release(h NodeHandle) {
	p.currentLive--

	n := p.nodes[h]
	n.reset()
	n.useNN = true
	p.free = append(p.free, h)
}

// get returns the live *treeNode behind h. Callers must only pass
// handles that have been alloc'd and not yet released.
func (p *pool) get(h NodeHandle) *treeNode {
	return p.nodes[h]
}

// stats reports the number of currently live (not-yet-released) nodes
// and the total number of nodes ever allocated by this pool, for
// debugging and tuning.
func (p *pool) stats() (live, total int) {
	return p.currentLive, p.totalAllocated
}
