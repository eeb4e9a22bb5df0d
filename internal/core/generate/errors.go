package generate

import (
	"errors"
	"fmt"

	"github.com/vibescout/vibescout/internal/core"
)

// RequestError normalizes every way a generation request can fail into one
// typed result. The orchestrator and the results resolver branch on Kind,
// never on error strings.
type RequestError struct {
	Kind       core.FailureKind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("generation request failed (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("generation request failed (%s): %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("generation request failed (%s): %s", e.Kind, e.Message)
	}
}

// Unwrap exposes the underlying cause, if any.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FailureKindOf extracts the failure kind from an error chain. Errors that
// did not originate from a generation request classify as network failures.
func FailureKindOf(err error) core.FailureKind {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return core.FailureNetwork
}

func networkError(err error) *RequestError {
	return &RequestError{Kind: core.FailureNetwork, Err: err, Message: "request never reached the service"}
}

func httpError(statusCode int, body string) *RequestError {
	return &RequestError{Kind: core.FailureHTTP, StatusCode: statusCode, Message: body}
}

func parseError(err error) *RequestError {
	return &RequestError{Kind: core.FailureParse, Err: err, Message: "response body is not a valid generation payload"}
}

func serviceError(message string) *RequestError {
	return &RequestError{Kind: core.FailureHTTP, Message: message}
}

func emptyError() *RequestError {
	return &RequestError{Kind: core.FailureEmpty, Message: "service returned zero events"}
}
