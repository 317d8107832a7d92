// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import "github.com/bits-and-blooms/bitset"

// encLevel maps a signed cover-tree level L to a non-negative array
// index, so that levels can be grown into a plain slice instead of a
// map. Positive levels (coarse, near the root) and negative levels
// (fine, near maxDistance's opposite extreme) interleave into adjacent
// slots: enc(0)=0, enc(1)=3, enc(-1)=2, enc(2)=5, enc(-2)=4, ...
func encLevel(L int) int {
	if L > 0 {
		return 2*L + 1
	}
	return -2 * L
}

// levelSet is the set of nodes occupying a single cover-tree level,
// backed by a popcount-compressed bitset for membership tests and a
// parallel ordered slice for iteration. This mirrors the
// bitset+parallel-slice pairing used for child presence in radix-tree
// nodes, reused here because level membership has the same shape: a
// sparse, densely-tested set over a bounded universe (live NodeHandles)
// that must also iterate in insertion order for deterministic dumps.
type levelSet struct {
	present *bitset.BitSet
	order   []NodeHandle
}

func newLevelSet() *levelSet {
	return &levelSet{present: bitset.New(64)}
}

func (s *levelSet) contains(h NodeHandle) bool {
	return s.present.Test(uint(h))
}

func (s *levelSet) add(h NodeHandle) {
	if s.present.Test(uint(h)) {
		return
	}
	s.present.Set(uint(h))
	s.order = append(s.order, h)
}

func (s *levelSet) remove(h NodeHandle) {
	if !s.present.Test(uint(h)) {
		return
	}
	s.present.Clear(uint(h))
	for i, n := range s.order {
		if n == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *levelSet) len() int {
	return len(s.order)
}

// levelSetAt returns the levelSet for L, growing t.levels as needed.
// The slice never shrinks: emptied levels are kept around rather than
// freed, since cover trees repeatedly reuse the same handful of levels
// around the root.
func (t *Tree) levelSetAt(L int) *levelSet {
	idx := encLevel(L)
	if idx >= len(t.levels) {
		grown := make([]*levelSet, idx+1)
		copy(grown, t.levels)
		t.levels = grown
	}
	if t.levels[idx] == nil {
		t.levels[idx] = newLevelSet()
	}
	return t.levels[idx]
}

// levelSetExists returns the levelSet for L without growing t.levels,
// or nil if no node has ever occupied that level.
func (t *Tree) levelSetExists(L int) *levelSet {
	idx := encLevel(L)
	if idx >= len(t.levels) {
		return nil
	}
	return t.levels[idx]
}
