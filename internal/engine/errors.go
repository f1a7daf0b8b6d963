package engine

import "fmt"

// UnresolvedResourceError reports an assignment referencing a resource that
// is missing from the catalog. It is fatal to the whole computation.
type UnresolvedResourceError struct {
	ResourceID string
	ActivityID string
}

func (e *UnresolvedResourceError) Error() string {
	return fmt.Sprintf("activity %q references unknown resource %q", e.ActivityID, e.ResourceID)
}

// InvalidInputError reports a semantic violation in the input snapshot
// (negative quantities, rates or policy values, unknown enum tags). The
// engine rejects rather than clamps, so the computed total can never drift
// from what the caller entered.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func invalidf(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}
