// Package errors provides errors carrying a gRPC status code. The code is
// mapped to an HTTP status when the error crosses the wire, and back again
// when a status is received.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
)

type CodeError struct {
	code codes.Code
	err  error
}

func (e *CodeError) Error() string {
	return e.err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.err
}

func (e *CodeError) Code() codes.Code {
	return e.code
}

func (e *CodeError) HttpCode() int {
	return runtime.HTTPStatusFromCode(e.code)
}

func makeError(code codes.Code, format string, a ...interface{}) *CodeError {
	return &CodeError{
		code: code,
		err:  fmt.Errorf(format, a...),
	}
}

// CodeOf returns the code of the first CodeError in err's chain,
// codes.OK for nil and codes.Unknown for errors without a code.
func CodeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.code
	}
	return codes.Unknown
}

// HttpCodeOf maps err to an HTTP status. Errors without a code are
// internal server errors.
func HttpCodeOf(err error) int {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.HttpCode()
	}
	return http.StatusInternalServerError
}

// FromHTTPStatus is the inverse of HttpCode for the statuses the BaaS
// platform returns.
func FromHTTPStatus(status int) codes.Code {
	switch {
	case status >= 200 && status < 300:
		return codes.OK
	case status == http.StatusBadRequest:
		return codes.InvalidArgument
	case status == http.StatusUnauthorized:
		return codes.Unauthenticated
	case status == http.StatusForbidden:
		return codes.PermissionDenied
	case status == http.StatusNotFound:
		return codes.NotFound
	case status == http.StatusConflict:
		return codes.AlreadyExists
	case status == http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case status == http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	case status == http.StatusNotImplemented:
		return codes.Unimplemented
	case status == http.StatusServiceUnavailable:
		return codes.Unavailable
	case status >= 500:
		return codes.Internal
	}
	return codes.Unknown
}

// InvalidArgument indicates client specified an invalid argument, such as a
// missing required parameter or a malformed configuration.
func InvalidArgument(format string, a ...interface{}) *CodeError {
	return makeError(codes.InvalidArgument, format, a...)
}

// NotFound means some requested entity (e.g., a device) was not found.
func NotFound(format string, a ...interface{}) *CodeError {
	return makeError(codes.NotFound, format, a...)
}

// AlreadyExists means an attempt to create an entity failed because one
// already exists.
func AlreadyExists(format string, a ...interface{}) *CodeError {
	return makeError(codes.AlreadyExists, format, a...)
}

// PermissionDenied indicates the caller does not have permission to
// execute the specified operation. It must not be used if the caller
// cannot be identified (use Unauthenticated instead for those errors).
func PermissionDenied(format string, a ...interface{}) *CodeError {
	return makeError(codes.PermissionDenied, format, a...)
}

// Internal errors. Means some invariants expected by underlying
// system has been broken.
func Internal(format string, a ...interface{}) *CodeError {
	return makeError(codes.Internal, format, a...)
}

// Unavailable indicates the service is currently unavailable.
func Unavailable(format string, a ...interface{}) *CodeError {
	return makeError(codes.Unavailable, format, a...)
}

// Unauthenticated indicates the request does not have valid
// authentication credentials for the operation: a bad authCode, a stale
// timestamp, a replayed nonce or a missing session token.
func Unauthenticated(format string, a ...interface{}) *CodeError {
	return makeError(codes.Unauthenticated, format, a...)
}

// FromStatus builds an error for a received HTTP status.
func FromStatus(status int, format string, a ...interface{}) *CodeError {
	return makeError(FromHTTPStatus(status), format, a...)
}
