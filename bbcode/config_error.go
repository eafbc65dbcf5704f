package bbcode

import (
	"fmt"
)

// ConfigError is an error in the configuration of the [Dictionary], like an improper Tag.
type ConfigError struct {
	Issue Issue // Issue is the kind of the problem.
	Err   error // Err is the underlying error.
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Issue, e.Err)
}

// NewConfigError is a factory function for creating a *ConfigError.
func NewConfigError(issue Issue, err error) *ConfigError {
	return &ConfigError{
		Issue: issue,
		Err:   err,
	}
}

func newTagError(issue Issue, tag string, format string, args ...any) error {
	return NewConfigError(issue, fmt.Errorf("tag %q: "+format, append([]any{tag}, args...)...))
}
