package pipeline

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"client-generator/internal/common"
	"client-generator/internal/policy"
)

const (
	// MaxRetryAttempts bounds the schedule length.
	MaxRetryAttempts = 100
	// BackoffMultiplier is the growth factor between consecutive delays.
	BackoffMultiplier = 2.0
	// MaxDelay caps a single delay unless the first backoff is already larger.
	MaxDelay = 5 * time.Minute
)

// ClientWiringPlan is the pipeline the generated client is registered with.
type ClientWiringPlan struct {
	BaseURL string `yaml:"baseUrl,omitempty"`
	// Handlers are delegating handler identifiers in declared order,
	// duplicates included.
	Handlers []string     `yaml:"handlers,omitempty"`
	Retry    *RetryPolicy `yaml:"retry,omitempty"`
}

// RetryPolicy is the retry configuration handed to the HTTP pipeline.
type RetryPolicy struct {
	MaxAttempts  int           `yaml:"maxAttempts"`
	FirstBackoff time.Duration `yaml:"firstBackoff"`
	// Delays holds the wait before each retry; len(Delays) == MaxAttempts.
	Delays []time.Duration `yaml:"delays"`
}

// Assemble builds the wiring plan for di. A nil di yields (nil, nil).
// Retry ranges are checked even when retries are off, so a bad value
// fails the run instead of lying dormant in the settings file.
func Assemble(di *policy.DependencyInjection) (*ClientWiringPlan, error) {
	if di == nil {
		return nil, nil
	}

	if err := validate(di); err != nil {
		return nil, err
	}

	plan := &ClientWiringPlan{
		BaseURL:  di.BaseURL,
		Handlers: common.Clone(di.HandlerChain),
	}

	if di.UseRetry {
		first := seconds(di.FirstBackoffSeconds)
		plan.Retry = &RetryPolicy{
			MaxAttempts:  di.MaxRetryAttempts,
			FirstBackoff: first,
			Delays:       Schedule(first, di.MaxRetryAttempts),
		}
	}

	return plan, nil
}

func validate(di *policy.DependencyInjection) error {
	var errs []error

	if di.MaxRetryAttempts < 1 || di.MaxRetryAttempts > MaxRetryAttempts {
		errs = append(errs, &RetryConfigError{
			Field: "maxRetryAttempts",
			Value: strconv.Itoa(di.MaxRetryAttempts),
			Rule:  "between 1 and " + strconv.Itoa(MaxRetryAttempts),
		})
	}

	s := di.FirstBackoffSeconds
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 || s > float64(math.MaxInt64)/float64(time.Second) ||
		seconds(s) < time.Nanosecond {
		errs = append(errs, &RetryConfigError{
			Field: "firstBackoffSeconds",
			Value: strconv.FormatFloat(s, 'g', -1, 64),
			Rule:  "a positive number of seconds, at least 1e-9",
		})
	}

	return errors.Join(errs...)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Schedule returns attempts delays starting at first and growing by
// BackoffMultiplier, without jitter so generated output stays stable.
func Schedule(first time.Duration, attempts int) []time.Duration {
	if attempts < 1 || first <= 0 {
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = first
	b.RandomizationFactor = 0
	b.Multiplier = BackoffMultiplier
	b.MaxInterval = max(MaxDelay, first)
	b.Reset()

	delays := make([]time.Duration, attempts)
	for i := range delays {
		delays[i] = b.NextBackOff()
	}

	return delays
}
