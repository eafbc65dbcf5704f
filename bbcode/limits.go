package bbcode

import "fmt"

// Limits define upper bounds of a single [Parser.Parse] call.
//
// The engine has no size limit for the input. Callers, which need bounded latency, have to
// limit the input length themselves.
type Limits struct {

	// MaxDepth is the maximum nesting of recursively parsed [KindParsedEquals] parameters.
	// The parameter found deeper is substituted verbatim and [IssueDepthExceeded] is recorded.
	//
	// Zero means [DefaultMaxDepth].
	MaxDepth int

	// MaxWarnings is the capacity of the Warnings collector of a single call. After the
	// capacity is reached, the rest of the Warnings is counted, but not recorded.
	//
	// Zero means [DefaultMaxWarnings].
	MaxWarnings int
}

// DefaultLimits returns the Limits used when nothing else is configured.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:    DefaultMaxDepth,
		MaxWarnings: DefaultMaxWarnings,
	}
}

// Validate checks if the limits are not negative.
// Return [ConfigError] if at least on of the values is negative.
func (l Limits) Validate() error {

	values := [2]int{
		l.MaxDepth,
		l.MaxWarnings,
	}

	names := [2]string{
		"MaxDepth",
		"MaxWarnings",
	}

	for i := range values {
		if values[i] < 0 {
			err := fmt.Errorf("%s must be >= 0, got %d", names[i], values[i])
			return NewConfigError(IssueNegativeLimit, err)
		}
	}

	return nil
}

// withDefaults replaces zero values with the defaults.
func (l Limits) withDefaults() Limits {
	if l.MaxDepth == 0 {
		l.MaxDepth = DefaultMaxDepth
	}

	if l.MaxWarnings == 0 {
		l.MaxWarnings = DefaultMaxWarnings
	}

	return l
}
