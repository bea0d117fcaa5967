// Package selection picks the accomplishments for a tailored resume and
// reports how well they cover the job's required skills.
package selection

import "fmt"

// Error represents an error that stops selection before it starts, such as
// an invalid SelectionConfig.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
