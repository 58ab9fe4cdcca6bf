// Error types and handling
package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies where in a round trip a failure happened
type ErrorKind string

const (
	// KindConfiguration means the client was not initialized or a required argument was empty
	KindConfiguration ErrorKind = "configuration"
	// KindTransport means no HTTP response was obtained (DNS, TLS, connect, timeout)
	KindTransport ErrorKind = "transport"
	// KindProvider means the provider answered with a non-2xx status or an error envelope
	KindProvider ErrorKind = "provider"
	// KindParse means the body was not valid JSON or lacked the expected fields
	KindParse ErrorKind = "parse"
	// KindIO means a local file could not be read
	KindIO ErrorKind = "io"
)

// Error represents a standardized LLM error
type Error struct {
	Kind       ErrorKind `json:"kind"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	StatusCode int       `json:"status_code,omitempty"`
	// Body is the raw provider response for provider and parse errors
	Body string `json:"body,omitempty"`
	Err  error  `json:"-"`
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewConfigError creates a configuration error
func NewConfigError(code, message string) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Code:    code,
		Message: message,
		Type:    "validation_error",
	}
}

// NewTransportError wraps a failure to obtain any HTTP response
func NewTransportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Code:    "transport_error",
		Message: err.Error(),
		Type:    "connection_error",
		Err:     err,
	}
}

// NewParseError reports a response body that could not be decoded
func NewParseError(message string, body []byte, err error) *Error {
	if err != nil {
		message = message + ": " + err.Error()
	}
	return &Error{
		Kind:    KindParse,
		Code:    "invalid_response",
		Message: message,
		Type:    "parse_error",
		Body:    string(body),
		Err:     err,
	}
}

// NewIOError reports a local file that could not be read
func NewIOError(path string, err error) *Error {
	return &Error{
		Kind:    KindIO,
		Code:    "file_unreadable",
		Message: fmt.Sprintf("cannot read %s: %v", path, err),
		Type:    "io_error",
		Err:     err,
	}
}

// IsKind reports whether err (or anything it wraps) is an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Kind == kind
	}
	return false
}
