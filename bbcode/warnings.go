package bbcode

import (
	"fmt"
)

// Warning is a markup problem found while parsing. The offending markup stays in the output
// as plain text. The exception is [IssueUnclosedTag], whose tag is closed at the end.
type Warning struct {
	Issue Issue `json:"issue"`

	// Pos is the byte offset of the problem in the working document, which is the input with
	// line feeds replaced by [BreakTag]. Inside an autolinked URL span it is counted from the
	// start of that span.
	Pos int `json:"pos"`

	Description string `json:"description"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%d: %s: %s", w.Pos, w.Issue, w.Description)
}

// WarningOverflowPolicy selects how [Warnings] behaves once its capacity is used up.
type WarningOverflowPolicy int

const (
	// WarnOverflowNoCap records every Warning and ignores the capacity.
	WarnOverflowNoCap WarningOverflowPolicy = iota

	// WarnOverflowNoRec records nothing at all.
	WarnOverflowNoRec

	// WarnOverflowDrop silently ignores the Warnings past the capacity.
	WarnOverflowDrop

	// WarnOverflowTrunc ignores the Warnings past the capacity, counts them, and spends the
	// last slot on an [IssueWarningsTruncated] marker.
	WarnOverflowTrunc
)

// Warnings collects the Warnings of a single parse call, up to a capacity, so that a hostile
// input can't grow the list without bound.
type Warnings struct {
	policy      WarningOverflowPolicy
	list        []Warning
	maxWarnings int

	overflowed   bool
	droppedCount int

	// firstDropPos is the Pos of the first ignored Warning.
	firstDropPos int
}

// IsOverflow reports whether the capacity was exceeded.
func (w *Warnings) IsOverflow() bool {
	return w.overflowed
}

// DroppedCount returns how many Warnings were ignored past the capacity.
func (w *Warnings) DroppedCount() int {
	return w.droppedCount
}

// FirstDropPos returns the Pos of the first ignored Warning.
func (w *Warnings) FirstDropPos() int {
	return w.firstDropPos
}

func (w *Warnings) List() []Warning {
	return w.list
}

// Add records the Warning according to the overflow policy.
func (w *Warnings) Add(item Warning) {
	switch w.policy {
	case WarnOverflowNoRec:
		return
	case WarnOverflowNoCap:
		w.list = append(w.list, item)
		return
	}

	if w.overflowed {
		if w.policy == WarnOverflowTrunc {
			w.droppedCount++
		}
		return
	}

	limit := w.maxWarnings
	if w.policy == WarnOverflowTrunc {
		// the last slot belongs to the marker
		limit = max(w.maxWarnings-1, 0)
	}

	if len(w.list) < limit {
		w.list = append(w.list, item)
		return
	}

	w.overflowed = true
	w.firstDropPos = item.Pos

	if w.policy != WarnOverflowTrunc {
		return
	}

	w.droppedCount = 1
	if w.maxWarnings > 0 {
		w.list = append(w.list, Warning{
			Issue:       IssueWarningsTruncated,
			Pos:         w.firstDropPos,
			Description: "too many warnings; further warnings suppressed",
		})
	}
}

// add records a Warning with a formatted Description.
func (w *Warnings) add(issue Issue, pos int, format string, args ...any) {
	w.Add(Warning{
		Issue:       issue,
		Pos:         pos,
		Description: fmt.Sprintf(format, args...),
	})
}

// NewWarnings creates a Warnings collector. A negative capacity is rejected with a ConfigError.
func NewWarnings(policy WarningOverflowPolicy, cap int) (Warnings, error) {
	if cap < 0 {
		return Warnings{}, NewConfigError(
			IssueNegativeWarningsCap,
			fmt.Errorf("warnings cap must be non-negative, got %d", cap),
		)
	}

	return Warnings{
		policy:      policy,
		list:        make([]Warning, 0, min(cap, DefaultMaxWarnings)),
		maxWarnings: cap,
	}, nil
}
