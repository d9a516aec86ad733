package ingestion

import "fmt"

// MarkupError represents a failure to parse rich-text markup
type MarkupError struct {
	Message string
	Cause   error
}

func (e *MarkupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("markup error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("markup error: %s", e.Message)
}

func (e *MarkupError) Unwrap() error {
	return e.Cause
}

// LoadError represents a failure to read or decode a resume file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load resume %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load resume %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
