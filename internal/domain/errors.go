package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestions is returned when a fetch succeeds but yields no playable questions.
	ErrNoQuestions = errors.New("no questions available")
	// ErrReportNotFound is returned when an error report ID does not exist.
	ErrReportNotFound = errors.New("error report not found")
)

// TransportError wraps a request that never produced a response.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx response, carrying the server's structured
// error/message fields when the body had them.
type APIError struct {
	Endpoint   string
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
	if e.Code != "" {
		msg += ": " + e.Code
	}
	if e.Message != "" {
		msg += " (" + e.Message + ")"
	}
	return msg
}

// DecodeError is a response body that did not match the expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
