package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes surfaced in API responses. Clients match on these,
// not on messages.
const (
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeInvalidArgument = "invalid_argument"
	CodeJobFailed       = "job_failed"
	CodeJobInterrupted  = "job_interrupted"
	CodeJobExecution    = "job_execution_error"
	CodeInternal        = "internal"
)

type Error struct {
	Status int
	Code   string
	// ExitCode is set only for CodeJobFailed.
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

func Conflict(err error) *Error {
	return New(http.StatusConflict, CodeConflict, err)
}

func InvalidArgument(err error) *Error {
	return New(http.StatusBadRequest, CodeInvalidArgument, err)
}

func JobFailure(exitCode int, err error) *Error {
	e := New(http.StatusInternalServerError, CodeJobFailed, err)
	e.ExitCode = exitCode
	return e
}

func JobInterrupted(err error) *Error {
	return New(http.StatusInternalServerError, CodeJobInterrupted, err)
}

func JobExecutionError(err error) *Error {
	return New(http.StatusInternalServerError, CodeJobExecution, err)
}

// From resolves any error to an *Error for the HTTP boundary. Errors that are
// not part of the taxonomy map to a 500 with code "internal".
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, CodeInternal, err)
}

func IsCode(err error, code string) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
