// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/dlogic/gatesim"
	"github.com/dlogic/gatesim/netlist"
	"github.com/spf13/cobra"
)

func tableCmd() *cobra.Command {
	var maxInputs int
	cmd := &cobra.Command{
		Use:   "table [kind ...]",
		Short: "print truth tables for gate kinds",
		Long: `Print the truth table of each named gate kind, one line per input
combination. With no arguments, all catalog kinds are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := args
			if len(kinds) == 0 {
				kinds = netlist.Kinds()
			}
			for _, kind := range kinds {
				g, err := netlist.New(kind)
				if err != nil {
					return err
				}
				if g.NumInputs() > maxInputs {
					slog.Warn("skipping kind, table too large",
						"kind", kind, "inputs", g.NumInputs(), "max", maxInputs)
					continue
				}
				slog.Debug("enumerating", "kind", kind, "gates", g.Size())
				fmt.Printf("-------- %s --------\n", g.Name())
				if err := printTable(g); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxInputs, "max-inputs", 8, "skip gates with more inputs than this")
	return cmd
}

// printTable drives g through every input combination and prints one
// diagnostic line per row. Rows are driven in descending order so a
// fresh gate's whole network recomputes before the all-zeros row, then
// printed ascending.
func printTable(g *gatesim.Gate) error {
	n := g.NumInputs()
	rows := 1 << uint(n)
	lines := make([]string, rows)
	for i := rows - 1; i >= 0; i-- {
		for bit := 0; bit < n; bit++ {
			if err := g.SetInput(n-bit-1, i&(1<<uint(bit)) != 0); err != nil {
				return err
			}
		}
		lines[i] = g.String()
	}
	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}
