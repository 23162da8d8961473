// Package catalog implements the client for the remote product catalog API.
package catalog

import (
	"errors"
	"fmt"
)

// NetworkError is a transport or connectivity failure. The request never
// produced an HTTP status.
type NetworkError struct {
	Op  string // the operation that failed, e.g. "list", "get"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("catalog: %s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError is a non-success HTTP status from the catalog service,
// carrying the server-supplied message when one was present in the body.
type RemoteError struct {
	Op      string
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog: %s: remote error %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("catalog: %s: remote error %d", e.Op, e.Status)
}

// IsNetwork returns true if the error is or wraps a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsRemote returns true if the error is or wraps a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// NotFound returns true for a remote 404.
func NotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == 404
}
