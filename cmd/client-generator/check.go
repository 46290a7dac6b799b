package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"client-generator/internal/apidesc"
	"client-generator/internal/diagnostic"
	"client-generator/internal/logging"
	"client-generator/internal/plan"
	"client-generator/internal/policy"
)

type checkOptions struct {
	settings string
	strict   bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [flags] OPERATIONS...",
		Short: "Validate operation lists against a policy",
		Long: `Run the generation pipeline for every operation list without writing
anything, and report the result per file. Each file gets its own run and
policy, and runs execute concurrently.

Examples:
  client-generator check -s settings.yaml petstore.yaml
  client-generator check -s settings.hcl --strict api/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runCheck(cmd, opts, args); err != nil {
				return &CommandError{Command: "check", Err: err}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.settings, "settings", "s", "", "generation settings (YAML or HCL)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "treat warnings as errors")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions, files []string) error {
	var settings policy.Settings

	if opts.settings != "" {
		s, err := policy.LoadFile(opts.settings)
		if err != nil {
			return err
		}

		settings = s
	}

	var loadErrs []error

	runs := make([]plan.Run, 0, len(files))

	for _, path := range files {
		ops, err := apidesc.LoadFile(path)
		if err != nil {
			loadErrs = append(loadErrs, err)
			continue
		}

		runs = append(runs, plan.Run{Name: path, Operations: ops, Settings: settings})
	}

	if err := errors.Join(loadErrs...); err != nil {
		return err
	}

	engine := plan.NewEngine(plan.WithLogger(logging.FromContext(cmd.Context())))

	plans, runErr := engine.GenerateBatch(cmd.Context(), runs)
	if plans == nil {
		return runErr
	}

	out := cmd.OutOrStdout()

	var report diagnostic.Diagnostics

	for i, p := range plans {
		if p == nil {
			fmt.Fprintf(out, "%s: FAILED\n", runs[i].Name)
			continue
		}

		fmt.Fprintf(out, "%s: ok, %d interfaces, %d methods, %d dropped, %d warnings\n",
			runs[i].Name, len(p.Interfaces), p.MethodCount(), len(p.Dropped), len(p.Diagnostics.Warnings))
		reportDiagnostics(cmd.ErrOrStderr(), runs[i].Name, p)

		if opts.strict {
			for _, w := range p.Diagnostics.Warnings {
				report.AddError(w.Code, runs[i].Name+": "+w.Message, w.Interface, w.Operation)
			}
		}

		report.Merge(p.Diagnostics)
	}

	if runErr != nil {
		return runErr
	}

	if err := report.Error(); err != nil {
		return fmt.Errorf("strict mode, %d warnings: %w", len(report.Warnings), err)
	}

	return nil
}
