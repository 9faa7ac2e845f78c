package jokeapi

import (
	"errors"
	"fmt"
)

var errNotObject = errors.New("payload is not a JSON object")

// StatusError is returned when the provider answered but reported a failure,
// either with a non-2xx status or with an in-band "error": true payload.
type StatusError struct {
	StatusCode int
	Status     string // e.g. "500 Internal Server Error"
	Message    string // provider supplied detail, may be empty
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	if e.Message == "" {
		return "HTTP " + status
	}
	return fmt.Sprintf("HTTP %s: %s", status, e.Message)
}

// Temporary reports whether retrying the same request could succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// DecodeError is returned when the response body is not a joke payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when no response was received at all.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("execute request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
