// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Digital-Shane/treeview"
)

// buildTree turns parsed dump lines into a treeview.Tree whose nodes
// carry the dump listing index as their int payload, are keyed by that
// index, and are labelled with the formatted configuration. A dumped
// forest (more than one node with no listed parent,
// which can happen for nodes whose RRT parent lives outside the
// listing) is rendered under a single synthetic "forest" root so
// treeview always has exactly one top-level node to hang the ASCII/TUI
// rendering off of.
func buildTree(nodes []dumpNode) (*treeview.Tree[int], error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("covertreeviz: dump has no nodes")
	}

	byIndex := make([]*treeview.Node[int], len(nodes))
	for _, n := range nodes {
		if n.index < 0 || n.index >= len(nodes) {
			return nil, fmt.Errorf("covertreeviz: node index %d out of range", n.index)
		}
		byIndex[n.index] = treeview.NewNode(strconv.Itoa(n.index), formatConfig(n), n.index)
	}

	children := make(map[int][]*treeview.Node[int])
	var roots []*treeview.Node[int]
	for _, n := range nodes {
		if n.parentIndex < 0 {
			roots = append(roots, byIndex[n.index])
			continue
		}
		if n.parentIndex >= len(nodes) {
			return nil, fmt.Errorf("covertreeviz: node %d references out-of-range parent %d", n.index, n.parentIndex)
		}
		children[n.parentIndex] = append(children[n.parentIndex], byIndex[n.index])
	}
	for idx, kids := range children {
		byIndex[idx].SetChildren(kids)
	}

	top := roots
	if len(roots) != 1 {
		forest := treeview.NewNode("forest", fmt.Sprintf("forest (%d roots)", len(roots)), -1)
		forest.SetChildren(roots)
		top = []*treeview.Node[int]{forest}
	}

	return treeview.NewTree(top, treeview.WithExpandAll[int]()), nil
}

func formatConfig(n dumpNode) string {
	parts := make([]string, len(n.config))
	for i, v := range n.config {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("#%d [%s]", n.index, strings.Join(parts, ", "))
}
