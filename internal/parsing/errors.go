package parsing

import "fmt"

// DateError represents a date string that matches none of the accepted layouts
type DateError struct {
	Value   string
	Message string
}

func (e *DateError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid date %q: %s", e.Value, e.Message)
	}
	return fmt.Sprintf("invalid date: %s", e.Message)
}
