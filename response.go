package baas

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/grpc/codes"

	apierrors "github.com/Angies2/baas-sdk-go/errors"
)

// SessionTokenHeader carries the session token issued by the login
// operation and expected by most other operations.
const SessionTokenHeader = "session-token"

// Response is the normalized outcome of a request. The same shape is
// returned for successful and failed statuses.
type Response struct {
	Status        int
	StatusMessage string
	Header        http.Header

	// Body is the JSON-decoded body (map[string]any, []any, string,
	// float64, bool or nil) or, when the body is not JSON, its text.
	Body any

	// Data is the raw body.
	Data []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return 200 <= r.Status && r.Status < 300
}

// SessionToken returns the session-token header of the response.
func (r *Response) SessionToken() string {
	return r.Header.Get(SessionTokenHeader)
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func readResponse(raw *RawResponse) (*Response, error) {
	var data []byte
	if raw.Body != nil {
		defer raw.Body.Close()
		var err error
		data, err = io.ReadAll(raw.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		body = string(data)
	}
	header := raw.Header
	if header == nil {
		header = http.Header{}
	}
	return &Response{
		Status:        raw.StatusCode,
		StatusMessage: raw.StatusMessage,
		Header:        header,
		Body:          body,
		Data:          data,
	}, nil
}

// ResponseError is returned together with the response when the status is
// not 2xx.
type ResponseError struct {
	Response *Response
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("unexpected status %d %s", e.Response.Status, e.Response.StatusMessage)
	if detail := errorDetail(e.Response.Body); detail != "" {
		msg += ": " + detail
	}
	return msg
}

func (e *ResponseError) HttpCode() int {
	return e.Response.Status
}

func (e *ResponseError) Code() codes.Code {
	return apierrors.FromHTTPStatus(e.Response.Status)
}

func errorDetail(body any) string {
	switch b := body.(type) {
	case string:
		if len(b) > 200 {
			return b[:200] + "..."
		}
		return b
	case map[string]any:
		for _, key := range []string{"error", "message", "msg"} {
			if s, ok := b[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
