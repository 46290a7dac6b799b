package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"client-generator/internal/apidesc"
	"client-generator/internal/gen"
	"client-generator/internal/logging"
	"client-generator/internal/metrics"
	"client-generator/internal/plan"
	"client-generator/internal/policy"
	"client-generator/internal/watch"
)

// Output formats of the generate command.
const (
	formatGo   = "go"
	formatYAML = "yaml"
)

type generateOptions struct {
	operations      string
	settings        string
	format          string
	out             string
	pkg             string
	noComments      bool
	watch           bool
	dump            bool
	metricsTextfile string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client interfaces",
		Long: `Generate client interfaces for an operation list.

With --format go (default) one Go file per interface is written into --out,
plus types.go and wiring.go when needed; unchanged files are not touched.
With --format yaml the plan is written to --out, or stdout when --out is
"-" or empty.

Examples:
  client-generator generate -o ops.yaml -s settings.yaml --out ./petclient
  client-generator generate -o ops.yaml -s settings.hcl --format yaml
  client-generator generate -o ops.yaml --watch --metrics-textfile /var/lib/node_exporter/cg.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			if err := runGenerate(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
				return &CommandError{Command: "generate", Err: err}
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.operations, "operations", "o", "", "operation list (YAML)")
	f.StringVarP(&opts.settings, "settings", "s", "", "generation settings (YAML or HCL); defaults apply when omitted")
	f.StringVar(&opts.format, "format", formatGo, "output format: go, yaml")
	f.StringVar(&opts.out, "out", "", `output directory (go, default "./generated") or file (yaml, default stdout)`)
	f.StringVar(&opts.pkg, "package", "", "Go package name (default derived from the namespace)")
	f.BoolVar(&opts.noComments, "no-comments", false, "omit doc comments from generated Go code")
	f.BoolVarP(&opts.watch, "watch", "w", false, "regenerate whenever an input file changes")
	f.BoolVar(&opts.dump, "dump", false, "dump the full plan to stderr")
	f.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after each run")

	_ = cmd.MarkFlagRequired("operations")

	return cmd
}

func (o *generateOptions) validate() error {
	switch o.format {
	case formatGo:
		if o.out == "" {
			o.out = "./generated"
		}

		if o.out == "-" {
			return &ConfigError{Field: "out", Message: "go output needs a directory, not stdout"}
		}
	case formatYAML:
	default:
		return &ConfigError{Field: "format", Message: fmt.Sprintf("unknown format %q (expected go or yaml)", o.format)}
	}

	return nil
}

func runGenerate(ctx context.Context, opts *generateOptions, stdout, stderr io.Writer) error {
	logger := logging.FromContext(ctx)
	collector := metrics.NewCollector(nil)
	engine := plan.NewEngine(plan.WithLogger(logger), plan.WithObserver(collector))

	once := func(context.Context) (err error) {
		if opts.metricsTextfile != "" {
			defer func() {
				if werr := collector.WriteTextfile(opts.metricsTextfile); werr != nil && err == nil {
					err = fmt.Errorf("writing metrics: %w", werr)
				}
			}()
		}

		ops, settings, err := loadInputs(opts.operations, opts.settings)
		if err != nil {
			return err
		}

		p, err := engine.Generate(ops, settings)
		if err != nil {
			return err
		}

		reportDiagnostics(stderr, "", p)

		if opts.dump {
			spew.Fdump(stderr, p)
		}

		return emit(p, opts, stdout, logger)
	}

	if err := once(ctx); err != nil {
		if !opts.watch {
			return err
		}

		logger.Error("initial generation failed", "error", err)
	}

	if !opts.watch {
		return nil
	}

	paths := []string{opts.operations}
	if opts.settings != "" {
		paths = append(paths, opts.settings)
	}

	w, err := watch.New(paths, watch.DefaultDebounce, logger)
	if err != nil {
		return err
	}

	return w.Run(ctx, once)
}

func loadInputs(operationsPath, settingsPath string) ([]apidesc.Operation, policy.Settings, error) {
	ops, err := apidesc.LoadFile(operationsPath)
	if err != nil {
		return nil, policy.Settings{}, err
	}

	if settingsPath == "" {
		return ops, policy.Settings{}, nil
	}

	settings, err := policy.LoadFile(settingsPath)
	if err != nil {
		return nil, policy.Settings{}, err
	}

	return ops, settings, nil
}

func emit(p *plan.Plan, opts *generateOptions, stdout io.Writer, logger *slog.Logger) error {
	if opts.format == formatYAML {
		data, err := plan.ExportYAML(p)
		if err != nil {
			return fmt.Errorf("exporting plan: %w", err)
		}

		if opts.out == "" || opts.out == "-" {
			_, err = stdout.Write(data)
			return err
		}

		if err := os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
			return err
		}

		return os.WriteFile(opts.out, data, 0o644)
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		PackageName:      opts.pkg,
		OutputDir:        opts.out,
		GenerateComments: !opts.noComments,
	})

	files, err := generator.Generate(p)
	if err != nil {
		return err
	}

	written, err := gen.WriteFiles(files, opts.out)
	if err != nil {
		return err
	}

	logger.Info("generated", "dir", opts.out, "files", len(files), "written", len(written))

	return nil
}

// reportDiagnostics prints warnings, prefixed with label when set.
func reportDiagnostics(w io.Writer, label string, p *plan.Plan) {
	for _, d := range p.Diagnostics.Warnings {
		if label != "" {
			fmt.Fprintf(w, "%s: warning: %s\n", label, d.String())
		} else {
			fmt.Fprintf(w, "warning: %s\n", d.String())
		}
	}
}
