package plan

import (
	"time"

	"client-generator/internal/apidesc"
	"client-generator/internal/diagnostic"
	"client-generator/internal/filter"
	"client-generator/internal/partition"
	"client-generator/internal/pipeline"
	"client-generator/internal/policy"
)

// Plan is the output of one generation run. It holds everything needed
// to render the client.
type Plan struct {
	// Namespace is the package path of the generated code.
	Namespace string
	// Policy is a snapshot of the resolved policy.
	Policy policy.View
	// Interfaces in emission order.
	Interfaces []partition.InterfaceDefinition
	// Wiring is nil when no dependency-injection settings were given.
	Wiring *pipeline.ClientWiringPlan
	// Dropped lists the operations the filter removed, in input order.
	Dropped []filter.Rejection
	// Diagnostics contains non-fatal findings.
	Diagnostics diagnostic.Diagnostics
}

// MethodCount returns the total number of methods over all interfaces.
// Replicated operations count once per interface.
func (p *Plan) MethodCount() int {
	n := 0
	for _, iface := range p.Interfaces {
		n += len(iface.Methods)
	}

	return n
}

// Run is one independent input of a batch.
type Run struct {
	// Name labels the run in logs and errors.
	Name       string
	Operations []apidesc.Operation
	Settings   policy.Settings
}

// Outcome of a run, as reported to an Observer.
const (
	OutcomeOK          = "ok"
	OutcomePolicyError = "policy_error"
	OutcomeError       = "error"
)

// RunStats summarizes one run for an Observer.
type RunStats struct {
	Strategy   string
	Outcome    string
	Operations int
	Kept       int
	Interfaces int
	Methods    int
	Warnings   int
	Duration   time.Duration
}

// Observer receives a summary after every run, successful or not.
type Observer interface {
	ObserveRun(stats RunStats)
}
