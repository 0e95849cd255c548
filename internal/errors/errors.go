// Package errors provides the typed error taxonomy for lasso.
//
// Callers distinguish three failure kinds:
// - InvalidMethodError: the verb was rejected before any network I/O
// - TransportError: the request never completed at the network layer
// - APIError: the server answered, either with a failing status or with
//   an application-level error embedded in a successful response body
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error categories for lasso operations
var (
	ErrInvalidMethod = errors.New("invalid HTTP method")
	ErrTransport     = errors.New("transport error")
	ErrAPI           = errors.New("api error")
	ErrNotFound      = errors.New("resource not found")
	ErrUnauthorized  = errors.New("unauthorized")
)

// InvalidMethodError reports a verb outside GET/POST/PUT/DELETE.
type InvalidMethodError struct {
	Method string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid HTTP method: %q", e.Method)
}

func (e *InvalidMethodError) Is(target error) bool {
	return errors.Is(target, ErrInvalidMethod)
}

// NewInvalidMethodError creates a new invalid method error
func NewInvalidMethodError(method string) *InvalidMethodError {
	return &InvalidMethodError{Method: method}
}

// IsInvalidMethod checks if an error is an invalid method rejection
func IsInvalidMethod(err error) bool {
	return errors.Is(err, ErrInvalidMethod)
}

// TransportError represents a failure below the HTTP semantic layer:
// connection refused, DNS failure, or timeout expiry.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return errors.Is(target, ErrTransport)
}

// NewTransportError creates a new transport error wrapping the underlying cause
func NewTransportError(method, url string, err error) *TransportError {
	return &TransportError{
		Method: method,
		URL:    url,
		Err:    err,
	}
}

// IsTransport checks if an error is transport-related
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// APIError represents an error reported by the remote API, either via a
// failing HTTP status or embedded inside a structurally successful body.
type APIError struct {
	// StatusCode is the HTTP status, or zero for embedded errors.
	StatusCode int
	// Body holds the raw response body for status-based errors.
	Body []byte
	// Header holds the response headers for status-based errors.
	Header http.Header
	// Detail carries the payload's `errors` field for embedded errors,
	// or the generic unknown-error marker when the payload omits it.
	Detail any
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, string(e.Body))
	}
	return fmt.Sprintf("api error: %v", e.Detail)
}

func (e *APIError) Is(target error) bool {
	if errors.Is(target, ErrAPI) {
		return true
	}
	switch e.StatusCode {
	case http.StatusNotFound:
		return errors.Is(target, ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Is(target, ErrUnauthorized)
	default:
		return false
	}
}

// NewAPIError creates an API error from a failed HTTP response
func NewAPIError(statusCode int, body []byte, header http.Header) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       body,
		Header:     header,
	}
}

// NewEmbeddedAPIError creates an API error from an error payload carried
// inside a successful response body
func NewEmbeddedAPIError(detail any) *APIError {
	return &APIError{Detail: detail}
}

// IsAPI checks if an error was reported by the remote API
func IsAPI(err error) bool {
	return errors.Is(err, ErrAPI)
}

// IsHTTPStatus checks if an error represents a specific HTTP status
func IsHTTPStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || IsHTTPStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error represents an authorization failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		IsHTTPStatus(err, http.StatusUnauthorized) ||
		IsHTTPStatus(err, http.StatusForbidden)
}
