// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

// Command covertreeviz renders a covertree.DumpTree dump (§6 of the
// flat text format) as an ASCII tree, or as a navigable interactive
// tree with --interactive. It is a pure consumer of the dump format:
// it never imports the planner or the covertree package itself, only
// reads the text it emits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Digital-Shane/treeview"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var interactive bool

var rootCmd = &cobra.Command{
	Use:   "covertreeviz [file]",
	Short: "Render a covertree dump as a tree",
	Long: `covertreeviz reads the flat dump format emitted by Tree.DumpTree
(a node-count header followed by one "scalars,...,parentIndex" line per
node) from a file argument or stdin, and renders it as a tree.

By default it prints a static ASCII tree. With --interactive it opens a
navigable terminal UI instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		nodes, err := parseDump(r)
		if err != nil {
			return err
		}

		tree, err := buildTree(nodes)
		if err != nil {
			return err
		}

		if interactive {
			model := treeview.NewTuiTreeModel(tree)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		}

		out, err := tree.Render(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "open a navigable terminal UI instead of printing static ASCII")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
