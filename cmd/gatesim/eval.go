// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dlogic/gatesim/netlist"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func evalCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "eval <netlist.yaml>",
		Short: "evaluate a netlist with the given inputs",
		Long: `Load a YAML netlist, drive its boundary inputs with the --set values
in order, and print the settled boundary outputs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := netlist.LoadFile(args[0])
			if err != nil {
				return err
			}
			slog.Info("netlist loaded", "name", c.Name(),
				"inputs", strings.Join(c.Inputs(), ","),
				"outputs", strings.Join(c.Outputs(), ","))
			for _, s := range sets {
				name, val, ok := strings.Cut(s, "=")
				if !ok {
					return errors.Errorf("bad --set %q, want name=0|1", s)
				}
				var v bool
				switch val {
				case "0":
					v = false
				case "1":
					v = true
				default:
					return errors.Errorf("bad --set value %q, want 0 or 1", s)
				}
				slog.Debug("driving input", "pin", name, "value", val)
				if err := c.SetInput(name, v); err != nil {
					return err
				}
			}
			for _, name := range c.Outputs() {
				v, err := c.Output(name)
				if err != nil {
					return err
				}
				b := '0'
				if v {
					b = '1'
				}
				fmt.Printf("%s = %c\n", name, b)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "drive a boundary input, name=0|1 (repeatable)")
	return cmd
}
