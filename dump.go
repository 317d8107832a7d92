// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DumpTree writes the tree to w in the flat text format: a first line
// with numNodes, followed by one line per node (in GetNodesVector
// order) holding dof comma-separated scalars followed by a comma and
// either the 0-based index of the node's RRT parent within this same
// listing, or -1 if the parent is not listed (root or external).
func (t *Tree) DumpTree(w io.Writer) error {
	nodes := t.GetNodesVector()
	if _, err := fmt.Fprintln(w, t.numNodes); err != nil {
		return err
	}

	index := make(map[NodeHandle]int, len(nodes))
	for i, h := range nodes {
		index[h] = i
	}

	var sb strings.Builder
	for _, h := range nodes {
		n := t.pool.get(h)
		sb.Reset()
		for _, v := range n.q {
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			sb.WriteByte(',')
		}
		parentIdx := -1
		if pi, ok := index[n.parent]; ok {
			parentIdx = pi
		}
		sb.WriteString(strconv.Itoa(parentIdx))
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
