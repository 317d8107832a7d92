// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindNearest_EmptyTree(t *testing.T) {
	t.Parallel()

	tree, _ := newTestTree(t, 1, 1.0, 1024, false)
	h, dist := tree.FindNearest([]float64{0})
	assert.Equal(t, InvalidHandle, h)
	assert.True(t, math.IsInf(dist, 1))
}

// Scenario 3 (spec §8): invalidating a subtree excludes it from
// FindNearest results without any structural change.
func TestFindNearest_RespectsInvalidation(t *testing.T) {
	t.Parallel()

	tree, _ := newTestTree(t, 1, 1.0, 1024, false)

	var parent NodeHandle = InvalidHandle
	handles := map[float64]NodeHandle{}
	for _, x := range []float64{0, 1, 2, 3} {
		h, err := tree.Insert(parent, []float64{x}, 0)
		assert.NoError(t, err)
		handles[x] = h
		parent = h
	}

	tree.InvalidateNodesWithParent(handles[2])

	nearest, dist := tree.FindNearest([]float64{2.0})
	assert.InDelta(t, 1.0, dist, 1e-9)
	assert.NotEqual(t, handles[2], nearest)

	// structurally nothing changed: the node is still there, just
	// unusable as a nearest-neighbor answer.
	assert.Equal(t, 4, tree.GetNumNodes())
	assert.True(t, tree.Validate())
}

func TestFindNearest_TieBreaksByFirstEncountered(t *testing.T) {
	t.Parallel()

	tree, _ := newTestTree(t, 1, 1.0, 1024, false)

	root, err := tree.Insert(InvalidHandle, []float64{0}, 0)
	assert.NoError(t, err)
	left, err := tree.Insert(root, []float64{-1}, 0)
	assert.NoError(t, err)
	right, err := tree.Insert(root, []float64{1}, 0)
	assert.NoError(t, err)

	// 0.5 is equidistant from the root and from right; the root is met
	// first, so it stays the answer.
	nearest, dist := tree.FindNearest([]float64{0.5})
	assert.InDelta(t, 0.5, dist, 1e-9)
	assert.Equal(t, root, nearest)
	_ = left
	_ = right
}

// L1 (spec §8): with every node usable, FindNearest must match a
// brute-force scan over all live configurations.
func TestFindNearest_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	tree, oracles := newTestTree(t, 2, 1.0, 1024, false)
	rng := rand.New(rand.NewSource(7))

	var configs [][]float64
	parent := InvalidHandle
	for i := 0; i < 200; i++ {
		cfg := []float64{rng.Float64() * 20, rng.Float64() * 20}
		h, err := tree.Insert(parent, cfg, 0)
		assert.NoError(t, err)
		if h != InvalidHandle {
			configs = append(configs, cfg)
			parent = h
		}
	}

	for i := 0; i < 20; i++ {
		query := []float64{rng.Float64() * 20, rng.Float64() * 20}

		bruteDist := math.Inf(1)
		for _, c := range configs {
			if d := oracles.Distance(c, query); d < bruteDist {
				bruteDist = d
			}
		}

		_, dist := tree.FindNearest(query)
		assert.InDelta(t, bruteDist, dist, 1e-9)
	}
}
