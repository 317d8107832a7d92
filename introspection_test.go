// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntrospection_Accessors(t *testing.T) {
	t.Parallel()

	tree, _ := newTestTree(t, 2, 1.0, 1024, false)
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.GetNumNodes())
	assert.Equal(t, 2, tree.GetDOF())

	root, err := tree.Insert(InvalidHandle, []float64{1, 2}, 7)
	assert.NoError(t, err)
	assert.False(t, tree.Empty())
	assert.Equal(t, 1, tree.GetNumNodes())

	q, err := tree.GetVectorConfig(root)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, q)

	// returned config must be a copy, not an alias.
	q[0] = 99
	q2, err := tree.GetVectorConfig(root)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, q2)
}

func TestIntrospection_InvalidHandleErrors(t *testing.T) {
	t.Parallel()

	tree, _ := newTestTree(t, 1, 1.0, 1024, false)
	_, err := tree.GetVectorConfig(NodeHandle(42))
	assert.ErrorIs(t, err, errInvalidHandle)
}

func TestIntrospection_GetNodeFromIndexIsStableEnumeration(t *testing.T) {
	t.Parallel()

	tree, _ := newTestTree(t, 1, 1.0, 1024, false)
	parent := InvalidHandle
	inserted := map[NodeHandle]bool{}
	for _, x := range []float64{0, 1, 2, 3} {
		h, err := tree.Insert(parent, []float64{x}, 0)
		assert.NoError(t, err)
		inserted[h] = true
		parent = h
	}

	seen := map[NodeHandle]bool{}
	for i := 0; i < tree.GetNumNodes(); i++ {
		h, ok := tree.GetNodeFromIndex(i)
		assert.True(t, ok)
		seen[h] = true
	}
	// the enumeration also holds the root's self-child clones, which
	// GetNumNodes counts, so every index yields a distinct handle and
	// every inserted handle is among them.
	assert.Len(t, seen, tree.GetNumNodes())
	for h := range inserted {
		assert.True(t, seen[h], "inserted handle %d missing from enumeration", h)
	}

	_, ok := tree.GetNodeFromIndex(-1)
	assert.False(t, ok)
	_, ok = tree.GetNodeFromIndex(tree.GetNumNodes())
	assert.False(t, ok)
}
