package errors

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestErrToHttp(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{
			err:  NotFound("device is not found"),
			want: http.StatusNotFound,
		},
		{
			err:  Internal("storage failed"),
			want: http.StatusInternalServerError,
		},
		{
			err:  Unauthenticated("signature mismatch"),
			want: http.StatusUnauthorized,
		},
		{
			err:  InvalidArgument("missing required parameter: appToken"),
			want: http.StatusBadRequest,
		},
		{
			err:  fmt.Errorf("can not find the device with ID 123: %w", NotFound("device is not found")),
			want: http.StatusNotFound,
		},

		// Other errors.
		{
			err:  io.EOF,
			want: http.StatusInternalServerError,
		},
		{
			err:  errors.New("some error"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		got := HttpCodeOf(tc.err)
		if got != tc.want {
			t.Errorf("for err %v got code %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestFromHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   codes.Code
	}{
		{http.StatusOK, codes.OK},
		{http.StatusNoContent, codes.OK},
		{http.StatusBadRequest, codes.InvalidArgument},
		{http.StatusUnauthorized, codes.Unauthenticated},
		{http.StatusForbidden, codes.PermissionDenied},
		{http.StatusNotFound, codes.NotFound},
		{http.StatusConflict, codes.AlreadyExists},
		{http.StatusServiceUnavailable, codes.Unavailable},
		{http.StatusBadGateway, codes.Internal},
		{http.StatusTeapot, codes.Unknown},
	}

	for _, tc := range cases {
		if got := FromHTTPStatus(tc.status); got != tc.want {
			t.Errorf("FromHTTPStatus(%d) = %v, want %v", tc.status, got, tc.want)
		}
	}

	// Round trip for the codes this package constructs.
	for _, err := range []*CodeError{
		InvalidArgument("x"), NotFound("x"), AlreadyExists("x"),
		PermissionDenied("x"), Unavailable("x"), Unauthenticated("x"),
	} {
		if got := FromHTTPStatus(err.HttpCode()); got != err.Code() {
			t.Errorf("round trip of %v gave %v", err.Code(), got)
		}
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != codes.OK {
		t.Errorf("CodeOf(nil) = %v", got)
	}
	if got := CodeOf(io.EOF); got != codes.Unknown {
		t.Errorf("CodeOf(io.EOF) = %v", got)
	}
	wrapped := fmt.Errorf("request failed: %w", FromStatus(http.StatusUnauthorized, "status %d", 401))
	if got := CodeOf(wrapped); got != codes.Unauthenticated {
		t.Errorf("CodeOf(wrapped) = %v", got)
	}
}

func TestUnwrap(t *testing.T) {
	cases := []struct {
		err  error
		is   error
		want bool
	}{
		{
			err:  AlreadyExists("device already exists: %w", os.ErrExist),
			is:   os.ErrExist,
			want: true,
		},
		{
			err:  AlreadyExists("device already exists"),
			is:   os.ErrExist,
			want: false,
		},
	}

	for _, tc := range cases {
		got := errors.Is(tc.err, tc.is)
		if got != tc.want {
			t.Errorf("errors.Is(%v, %v) returned %v, want %v.", tc.err, tc.is, got, tc.want)
		}
	}
}
