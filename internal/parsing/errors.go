// Package parsing loads raw CV documents from YAML text. Syntax errors are
// this package's concern; the normalizer downstream only ever sees a parsed
// document.
package parsing

import "fmt"

// LoadError represents a failure to read or parse a CV document.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
