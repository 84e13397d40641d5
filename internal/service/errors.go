package service

import (
	"errors"
	"fmt"
)

// ErrQueryFailed matches any *QueryFailedError via errors.Is
var ErrQueryFailed = errors.New("query failed")

// QueryFailedError reports a store failure. Cause is kept for logging and
// is not meant for clients.
type QueryFailedError struct {
	Operation string
	Cause     error
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("%s: query failed: %v", e.Operation, e.Cause)
}

func (e *QueryFailedError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrQueryFailed) match
func (e *QueryFailedError) Is(target error) bool {
	return target == ErrQueryFailed
}

// ValidationError reports a malformed or out-of-range request parameter
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
