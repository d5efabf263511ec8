// Copyright 2026 The gatesim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command gatesim is a demonstration driver for the gatesim packages:
// it prints truth tables for the gate catalog and evaluates YAML
// netlists.
package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagLogFile string
	logClose    func()
)

func main() {
	root := &cobra.Command{
		Use:           "gatesim",
		Short:         "digital logic circuit simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logClose != nil {
				logClose()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "append JSON logs to this file")
	root.AddCommand(tableCmd(), evalCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging installs the default logger: a text handler on stderr,
// fanned out to a JSON file handler when --log-file is given.
func setupLogging() error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		logClose = func() { f.Close() }
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return nil
}
