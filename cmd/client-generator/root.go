package main

import (
	"github.com/spf13/cobra"

	"client-generator/internal/logging"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	logFile   string
}

// newRootCmd builds the command tree. The returned func releases the log
// file, if one was opened.
func newRootCmd() (*cobra.Command, func()) {
	opts := &rootOptions{}
	cleanup := func() {}

	cmd := &cobra.Command{
		Use:   "client-generator",
		Short: "Generate Go client interfaces from API operations",
		Long: `client-generator filters, groups, orders and names API operations into
client interfaces under a declarative policy, and derives the HTTP
pipeline wiring of the generated client.

Settings are read from YAML or HCL (by file extension); operations are a
normalized YAML list. The same inputs always produce the same output.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog, err := logging.Setup(cmd.ErrOrStderr(), logging.Options{
				Level:  opts.logLevel,
				Format: opts.logFormat,
				File:   opts.logFile,
			})
			if err != nil {
				return &ConfigError{Field: "log", Message: err.Error()}
			}

			cleanup = closeLog
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text, json")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also append JSON logs to this file")

	cmd.AddCommand(newGenerateCmd(), newCheckCmd(), newVersionCmd())

	return cmd, func() { cleanup() }
}
