package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"client-generator/internal/apidesc"
	"client-generator/internal/diagnostic"
	"client-generator/internal/filter"
	"client-generator/internal/match"
	"client-generator/internal/partition"
	"client-generator/internal/pipeline"
	"client-generator/internal/policy"
)

// DefaultBatchLimit is the number of batch runs executed at once.
const DefaultBatchLimit = 4

// Engine runs generations. It holds no per-run state and is safe for
// concurrent use.
type Engine struct {
	logger     *slog.Logger
	observer   Observer
	batchLimit int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithObserver registers an Observer called after every run.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithBatchLimit sets how many batch runs execute at once.
func WithBatchLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.batchLimit = n
		}
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:     slog.New(slog.DiscardHandler),
		batchLimit: DefaultBatchLimit,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Generate resolves settings and produces the plan for ops. Any fatal
// error yields a nil plan.
func (e *Engine) Generate(ops []apidesc.Operation, settings policy.Settings) (*Plan, error) {
	log := e.logger.With("run_id", uuid.NewString())
	start := time.Now()

	p, err := policy.Resolve(settings)
	if err != nil {
		log.Debug("policy rejected", "error", err)
		e.observe(RunStats{Strategy: settings.PartitionStrategy, Outcome: OutcomePolicyError, Operations: len(ops)}, start)

		return nil, fmt.Errorf("resolve policy: %w", err)
	}

	log = log.With("strategy", p.Strategy().String())
	log.Debug("policy resolved", "namespace", p.Namespace(), "operations", len(ops))

	plan, err := e.execute(ops, p, log)

	stats := RunStats{Strategy: p.Strategy().String(), Outcome: OutcomeOK, Operations: len(ops)}
	if err != nil {
		stats.Outcome = OutcomeError
	} else {
		stats.Kept = len(ops) - len(plan.Dropped)
		stats.Interfaces = len(plan.Interfaces)
		stats.Methods = plan.MethodCount()
		stats.Warnings = len(plan.Diagnostics.Warnings)
	}

	e.observe(stats, start)

	return plan, err
}

// execute runs filter and partition next to the pipeline assembler.
func (e *Engine) execute(ops []apidesc.Operation, p *policy.GenerationPolicy, log *slog.Logger) (*Plan, error) {
	var (
		g errgroup.Group

		filtered filter.Result
		defs     []partition.InterfaceDefinition
		wiring   *pipeline.ClientWiringPlan

		partitionErr error
		wiringErr    error
	)

	g.Go(func() error {
		wiring, wiringErr = pipeline.Assemble(p.DependencyInjection())
		return nil
	})

	g.Go(func() error {
		filtered = filter.Apply(ops, p)
		log.Debug("operations filtered", "kept", len(filtered.Kept), "dropped", len(filtered.Dropped))

		defs, partitionErr = partition.Partition(filtered.Kept, p)

		return nil
	})

	_ = g.Wait()

	if err := errors.Join(wrap("assemble wiring", wiringErr), wrap("partition operations", partitionErr)); err != nil {
		log.Debug("generation failed", "error", err)
		return nil, err
	}

	plan := &Plan{
		Namespace:  p.Namespace(),
		Policy:     p.View(),
		Interfaces: defs,
		Wiring:     wiring,
		Dropped:    filtered.Dropped,
	}

	plan.Diagnostics = diagnose(ops, filtered, wiring, p)

	for _, d := range plan.Diagnostics.Warnings {
		log.Warn(d.Message, "code", d.Code)
	}

	log.Debug("plan ready", "interfaces", len(plan.Interfaces), "methods", plan.MethodCount())

	return plan, nil
}

func wrap(stage string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", stage, err)
}

// diagnose collects the non-fatal findings of a successful run.
func diagnose(
	ops []apidesc.Operation,
	filtered filter.Result,
	wiring *pipeline.ClientWiringPlan,
	p *policy.GenerationPolicy,
) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if len(filtered.Kept) == 0 {
		diags.AddWarning(diagnostic.CodeNoOperations,
			fmt.Sprintf("no operation survived filtering (%d in input)", len(ops)), "", "")
	}

	if unused := filter.UnusedTags(ops, p); len(unused) > 0 {
		known := filter.Tags(ops)
		for _, tag := range unused {
			diags.AddWarning(diagnostic.CodeUnusedIncludeTag,
				fmt.Sprintf("include tag %q matches no operation%s", tag, match.Hint(tag, known)), "", "")
		}
	}

	for _, pattern := range filter.UnusedPathPatterns(ops, p) {
		diags.AddWarning(diagnostic.CodeUnusedPathPattern,
			fmt.Sprintf("include path pattern %q matches no operation", pattern), "", "")
	}

	if tmpl := p.NameTemplate(); tmpl != nil && tmpl.IsConstant() && p.Strategy() != policy.StrategyByEndpoint {
		diags.AddWarning(diagnostic.CodeConstantMethodName,
			fmt.Sprintf("operation name template %q gives every method the same name", tmpl.String()), "", "")
	}

	for _, d := range filtered.Dropped {
		diags.AddInfo(diagnostic.CodeOperationFiltered,
			"operation dropped: "+d.Reason.String(), "", d.Operation.Label())
	}

	if wiring != nil && len(wiring.Handlers) == 0 {
		diags.AddInfo(diagnostic.CodeEmptyHandlerChain, "dependency injection has no handlers", "", "")
	}

	return diags
}

func (e *Engine) observe(stats RunStats, start time.Time) {
	if e.observer == nil {
		return
	}

	stats.Duration = time.Since(start)
	e.observer.ObserveRun(stats)
}

// GenerateBatch runs every run concurrently, each with its own policy.
// Plans are returned in input order. Failed runs leave a nil entry and
// their errors are joined in input order.
func (e *Engine) GenerateBatch(ctx context.Context, runs []Run) ([]*Plan, error) {
	plans := make([]*Plan, len(runs))
	errs := make([]error, len(runs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.batchLimit)

	for i := range runs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			plan, err := e.Generate(runs[i].Operations, runs[i].Settings)
			if err != nil {
				errs[i] = fmt.Errorf("run %q: %w", runs[i].Name, err)
				return nil
			}

			plans[i] = plan

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := errors.Join(errs...); err != nil {
		return plans, err
	}

	return plans, nil
}
