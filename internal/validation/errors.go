// Package validation evaluates single resume field values against declarative rules and
// produces an ATS sub-score for each field.
package validation

import "fmt"

// RuleError represents a rule definition that cannot be evaluated
type RuleError struct {
	Field   string
	Message string
	Cause   error
}

func (e *RuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid rule %q: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid rule %q: %s", e.Field, e.Message)
}

func (e *RuleError) Unwrap() error {
	return e.Cause
}
