package extraction

import (
	"errors"
	"fmt"
)

// ErrEmptyJobText is returned when the posting has no content to extract from.
var ErrEmptyJobText = errors.New("job text is empty")

// ValidationError is the only error Extract surfaces to callers. It means the
// input could not be processed at all.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// RemoteError describes a failed remote extraction attempt. It never crosses
// the Extract boundary; it is carried on a degraded Outcome and logged.
type RemoteError struct {
	// Op is the stage that failed: "call", "parse" or "validate".
	Op        string
	Attempts  int
	Transient bool
	Cause     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote extraction %s failed after %d attempt(s): %v", e.Op, e.Attempts, e.Cause)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}
