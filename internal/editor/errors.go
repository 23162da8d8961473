package editor

import (
	"errors"
	"fmt"
)

// ValidationError is a local precondition failure. It never reaches the
// network: Save refuses to issue the request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

// IsValidation returns true if the error is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
