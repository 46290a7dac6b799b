package pipeline

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-generator/internal/policy"
)

func TestAssemble_NilPolicy(t *testing.T) {
	plan, err := Assemble(nil)
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestAssemble_HandlersVerbatim(t *testing.T) {
	chain := []string{"Auth", "Telemetry", "Auth"}

	plan, err := Assemble(&policy.DependencyInjection{
		BaseURL:             "https://petstore.example.com/v3",
		HandlerChain:        chain,
		MaxRetryAttempts:    6,
		FirstBackoffSeconds: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://petstore.example.com/v3", plan.BaseURL)
	assert.Equal(t, []string{"Auth", "Telemetry", "Auth"}, plan.Handlers)
	assert.Nil(t, plan.Retry)

	chain[0] = "Changed"
	assert.Equal(t, "Auth", plan.Handlers[0])
}

func TestAssemble_Retry(t *testing.T) {
	plan, err := Assemble(&policy.DependencyInjection{
		UseRetry:            true,
		MaxRetryAttempts:    4,
		FirstBackoffSeconds: 0.5,
	})
	require.NoError(t, err)
	require.NotNil(t, plan.Retry)

	assert.Equal(t, 4, plan.Retry.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, plan.Retry.FirstBackoff)
	assert.Equal(t, []time.Duration{
		500 * time.Millisecond, time.Second, 2 * time.Second, 4 * time.Second,
	}, plan.Retry.Delays)
	assert.Empty(t, plan.Handlers)
}

func TestAssemble_InvalidRetry(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		backoff  float64
		useRetry bool
		fields   []string
	}{
		{name: "zero attempts", attempts: 0, backoff: 1, useRetry: true, fields: []string{"maxRetryAttempts"}},
		{name: "negative attempts", attempts: -3, backoff: 1, fields: []string{"maxRetryAttempts"}},
		{name: "too many attempts", attempts: MaxRetryAttempts + 1, backoff: 1, useRetry: true, fields: []string{"maxRetryAttempts"}},
		{name: "zero backoff", attempts: 3, backoff: 0, useRetry: true, fields: []string{"firstBackoffSeconds"}},
		{name: "sub-nanosecond backoff", attempts: 3, backoff: 1e-10, useRetry: true, fields: []string{"firstBackoffSeconds"}},
		{name: "nan backoff", attempts: 3, backoff: math.NaN(), useRetry: true, fields: []string{"firstBackoffSeconds"}},
		{name: "both", attempts: 0, backoff: -1, useRetry: true, fields: []string{"maxRetryAttempts", "firstBackoffSeconds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Assemble(&policy.DependencyInjection{
				UseRetry:            tt.useRetry,
				MaxRetryAttempts:    tt.attempts,
				FirstBackoffSeconds: tt.backoff,
			})
			require.Error(t, err)
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, ErrInvalidRetryConfiguration)

			var first *RetryConfigError
			require.True(t, errors.As(err, &first))
			assert.Equal(t, tt.fields[0], first.Field)

			for _, f := range tt.fields {
				assert.Contains(t, err.Error(), f)
			}
		})
	}
}

func TestSchedule(t *testing.T) {
	assert.Nil(t, Schedule(time.Second, 0))
	assert.Nil(t, Schedule(0, 3))

	delays := Schedule(time.Minute, 5)
	assert.Equal(t, []time.Duration{
		time.Minute, 2 * time.Minute, 4 * time.Minute, MaxDelay, MaxDelay,
	}, delays)

	// A first backoff above the cap is kept as the cap.
	assert.Equal(t, []time.Duration{10 * time.Minute, 10 * time.Minute}, Schedule(10*time.Minute, 2))

	assert.Equal(t, Schedule(time.Second, 6), Schedule(time.Second, 6))
}
