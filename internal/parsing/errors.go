package parsing

import "fmt"

// ParseError represents an error decoding an externally produced candidate
// record. Rule-based extraction never returns it; malformed resume text
// degrades to sparse output instead.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
