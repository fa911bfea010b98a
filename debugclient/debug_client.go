// Package debugclient traces HTTP exchanges into a zap logger: every request
// as a curl command line, every response as a full dump. Credentials are
// redacted: the authCode signature and the session-token header of requests
// and responses, and the password and appToken fields of url-encoded forms.
package debugclient

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"moul.io/http2curl"

	"github.com/Angies2/baas-sdk-go/authcode"
)

const (
	redacted           = "<redacted>"
	sessionTokenHeader = "session-token"
)

// secretFormFields are masked in url-encoded request bodies.
var secretFormFields = []string{"password", "appToken"}

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

type DebugClient struct {
	impl   HttpClient
	logger *zap.Logger
	n      uint64
}

func New(impl HttpClient, logger *zap.Logger) *DebugClient {
	return &DebugClient{
		impl:   impl,
		logger: logger,
	}
}

func (c *DebugClient) Do(req *http.Request) (*http.Response, error) {
	n := atomic.AddUint64(&c.n, 1)

	curl, err := curlCommand(req)
	if err != nil {
		return nil, fmt.Errorf("http2curl.GetCurlCommand failed for %d: %w", n, err)
	}
	c.logger.Debug("client request", zap.Uint64("n", n), zap.String("curl", curl))

	res, err := c.impl.Do(req)
	if err != nil {
		c.logger.Debug("client request failed", zap.Uint64("n", n), zap.Error(err))
		return nil, err
	}

	resDump, err := dumpResponse(res)
	if err != nil {
		res.Body.Close()
		return nil, fmt.Errorf("httputil.DumpResponse failed for %d: %w", n, err)
	}
	c.logger.Debug("server response", zap.Uint64("n", n), zap.String("dump", string(resDump)))

	return res, nil
}

// dumpResponse dumps res with the session-token header redacted. The body
// of res stays readable.
func dumpResponse(res *http.Response) ([]byte, error) {
	if res.Header.Get(sessionTokenHeader) == "" {
		return httputil.DumpResponse(res, true)
	}
	dump := *res
	dump.Header = res.Header.Clone()
	dump.Header.Set(sessionTokenHeader, redacted)
	data, err := httputil.DumpResponse(&dump, true)
	res.Body = dump.Body
	return data, err
}

// curlCommand renders a redacted copy of req. The body of req stays
// readable.
func curlCommand(req *http.Request) (string, error) {
	dump := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return "", err
			}
			dump.Body = body
		} else {
			data, err := io.ReadAll(req.Body)
			if err != nil {
				return "", err
			}
			req.Body = io.NopCloser(bytes.NewReader(data))
			dump.Body = io.NopCloser(bytes.NewReader(data))
		}
	}
	if code := dump.Header.Get("authCode"); code != "" {
		dump.Header.Set("authCode", authcode.Redact(code))
	}
	if dump.Header.Get(sessionTokenHeader) != "" {
		dump.Header.Set(sessionTokenHeader, redacted)
	}
	if err := redactForm(dump); err != nil {
		return "", err
	}

	curl, err := http2curl.GetCurlCommand(dump)
	if err != nil {
		return "", err
	}
	return curl.String(), nil
}

// redactForm masks secretFormFields in the url-encoded body of dump.
func redactForm(dump *http.Request) error {
	if dump.Body == nil || dump.Body == http.NoBody {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(dump.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/x-www-form-urlencoded" {
		return nil
	}
	data, err := io.ReadAll(dump.Body)
	if err != nil {
		return err
	}
	dump.Body = io.NopCloser(bytes.NewReader(data))
	form, err := url.ParseQuery(string(data))
	if err != nil {
		dump.Body = io.NopCloser(strings.NewReader(redacted))
		dump.ContentLength = int64(len(redacted))
		return nil
	}
	changed := false
	for _, name := range secretFormFields {
		if form.Has(name) {
			form.Set(name, redacted)
			changed = true
		}
	}
	if changed {
		masked := form.Encode()
		dump.Body = io.NopCloser(strings.NewReader(masked))
		dump.ContentLength = int64(len(masked))
	}
	return nil
}

func (c *DebugClient) CloseIdleConnections() {
	c.impl.CloseIdleConnections()
}
