package api

import (
	"fmt"
	"net/http"
)

// ErrorType classifies a failed call that never produced an HTTP response.
type ErrorType string

const (
	// ErrorTypeAbort means the call was cancelled or timed out client-side.
	ErrorTypeAbort ErrorType = "abort"
	// ErrorTypeServer covers every other failure: transport, decode, schema.
	ErrorTypeServer ErrorType = "server"
)

// ErrorResponse is the classified, locally recovered failure of a call.
type ErrorResponse struct {
	Type ErrorType
	Err  error
}

func (e *ErrorResponse) Error() string {
	if e.Err == nil {
		return string(e.Type)
	}
	return fmt.Sprintf("%s: %v", e.Type, e.Err)
}

func (e *ErrorResponse) Unwrap() error {
	return e.Err
}

// ResponseError wraps a non-2xx response that is handed back to the caller
// untouched so that status-code semantics stay a feature decision.
type ResponseError struct {
	Response *http.Response
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected response status %d", e.Response.StatusCode)
}

// Kind tells which variant of a Result is populated.
type Kind int

const (
	KindOK Kind = iota
	KindError
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindError:
		return "error"
	case KindResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Result is the outcome of Fetch. Exactly one variant is set:
//   - KindOK:       Data holds the decoded body
//   - KindError:    Error holds an Abort or Server classification
//   - KindResponse: Response holds the non-2xx response, body unread
type Result[T any] struct {
	Kind     Kind
	Data     T
	Error    *ErrorResponse
	Response *http.Response
}

func ok[T any](data T) Result[T] {
	return Result[T]{Kind: KindOK, Data: data}
}

func failed[T any](t ErrorType, err error) Result[T] {
	return Result[T]{Kind: KindError, Error: &ErrorResponse{Type: t, Err: err}}
}

func unexpected[T any](resp *http.Response) Result[T] {
	return Result[T]{Kind: KindResponse, Response: resp}
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Kind == KindOK
}

// Unwrap converts the result into Go's (value, error) form. The error is an
// *ErrorResponse or a *ResponseError.
func (r Result[T]) Unwrap() (T, error) {
	switch r.Kind {
	case KindOK:
		return r.Data, nil
	case KindResponse:
		var zero T
		return zero, &ResponseError{Response: r.Response}
	default:
		var zero T
		return zero, r.Error
	}
}

// Forward re-types a failed result so multi-step flows can return it
// unchanged. It must not be called on a successful result.
func Forward[U, T any](r Result[T]) Result[U] {
	return Result[U]{Kind: r.Kind, Error: r.Error, Response: r.Response}
}

// Fail builds a classified failure for errors raised before any call is
// made, such as an unreadable upload.
func Fail[T any](t ErrorType, err error) Result[T] {
	return failed[T](t, err)
}
