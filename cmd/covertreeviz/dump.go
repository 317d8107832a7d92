// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// dumpNode is one parsed line of the covertree.DumpTree flat text
// format: dof scalars followed by the 0-based index of the node's RRT
// parent within the same listing, or -1 if the parent isn't listed.
type dumpNode struct {
	index       int
	config      []float64
	parentIndex int
}

// parseDump reads the §6 dump format (numNodes header line, then one
// line per node) and returns the parsed nodes in listing order. Commas
// at the end of a line, after the parent index, are ignored.
func parseDump(r io.Reader) ([]dumpNode, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("covertreeviz: empty dump")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("covertreeviz: invalid node count header: %w", err)
	}

	nodes := make([]dumpNode, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("covertreeviz: expected %d node lines, got %d", n, i)
		}
		fields := strings.Split(strings.TrimRight(scanner.Text(), ","), ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("covertreeviz: line %d: need at least one scalar and a parent index", i+1)
		}

		parentIndex, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
		if err != nil {
			return nil, fmt.Errorf("covertreeviz: line %d: invalid parent index: %w", i+1, err)
		}

		config := make([]float64, 0, len(fields)-1)
		for _, f := range fields[:len(fields)-1] {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("covertreeviz: line %d: invalid scalar %q: %w", i+1, f, err)
			}
			config = append(config, v)
		}

		nodes = append(nodes, dumpNode{index: i, config: config, parentIndex: parentIndex})
	}

	return nodes, nil
}
