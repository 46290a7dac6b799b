package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidRetryConfiguration matches every *RetryConfigError.
var ErrInvalidRetryConfiguration = errors.New("invalid retry configuration")

// RetryConfigError reports an out-of-range retry parameter.
type RetryConfigError struct {
	Field string
	Value string
	Rule  string
}

func (e *RetryConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %s, must be %s", ErrInvalidRetryConfiguration, e.Field, e.Value, e.Rule)
}

func (e *RetryConfigError) Is(target error) bool {
	return target == ErrInvalidRetryConfiguration
}
