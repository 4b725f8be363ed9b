package upstream

import (
	"errors"
	"fmt"
)

// TransportError is a non-2xx response from the upstream API.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

// NetworkError means no usable response arrived: timeout, refused
// connection, DNS failure, or a body that broke mid-read.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("upstream unreachable (%s %s): %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a rejected request, and if so hands
// back the typed error for status inspection.
func IsTransport(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// IsNetwork reports whether err means the upstream never answered.
func IsNetwork(err error) bool {
	var nErr *NetworkError
	return errors.As(err, &nErr)
}
