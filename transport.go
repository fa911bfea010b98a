package baas

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Angies2/baas-sdk-go/closingclient"
	"github.com/Angies2/baas-sdk-go/debugclient"
)

// HttpClient is the subset of *http.Client used by HTTPTransport.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

// TLSOptions are passed to the transport for https endpoints only.
type TLSOptions struct {
	// CA is a PEM bundle of trust anchors. Empty means the system pool.
	CA []byte

	RejectUnauthorized bool
}

type SendOptions struct {
	Method string
	Header http.Header

	// Body is nil when no body must be sent.
	Body []byte

	// TLS is nil for plaintext endpoints.
	TLS *TLSOptions
}

// RawResponse is what a transport hands back. The caller closes Body.
type RawResponse struct {
	StatusCode    int
	StatusMessage string
	OK            bool
	Header        http.Header
	Body          io.ReadCloser
}

// Transport sends one request. It must be safe for concurrent use.
type Transport interface {
	Send(ctx context.Context, uri string, opts *SendOptions) (*RawResponse, error)
}

type tlsKey struct {
	ca     string
	reject bool
}

// HTTPTransport is the default Transport, backed by net/http. It keeps one
// client per distinct TLS setting so connections are pooled. Close cancels
// the requests in flight.
type HTTPTransport struct {
	plain  *closingclient.ClosingClient
	custom bool
	logger *zap.Logger

	mu      sync.Mutex
	closed  bool
	clients map[tlsKey]*closingclient.ClosingClient
}

// NewHTTPTransport creates a transport. If client is not nil, every request
// goes through it and TLSOptions are ignored. A non-nil logger enables
// curl-style tracing of every exchange at debug level.
func NewHTTPTransport(client HttpClient, logger *zap.Logger) *HTTPTransport {
	t := &HTTPTransport{
		custom:  client != nil,
		logger:  logger,
		clients: make(map[tlsKey]*closingclient.ClosingClient),
	}
	if client == nil {
		client = &http.Client{}
	}
	t.plain = t.wrap(client)
	return t
}

func (t *HTTPTransport) wrap(client HttpClient) *closingclient.ClosingClient {
	if t.logger != nil && t.logger.Core().Enabled(zap.DebugLevel) {
		client = debugclient.New(client, t.logger)
	}
	return closingclient.New(client)
}

func (t *HTTPTransport) clientFor(opts *TLSOptions) (HttpClient, error) {
	if opts == nil || t.custom {
		return t.plain, nil
	}
	key := tlsKey{ca: string(opts.CA), reject: opts.RejectUnauthorized}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, closingclient.ErrClosed
	}
	if client, has := t.clients[key]; has {
		return client, nil
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: !opts.RejectUnauthorized, //nolint:gosec
	}
	if len(opts.CA) != 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(opts.CA) {
			return nil, fmt.Errorf("no certificates found in CA bundle")
		}
		tlsConfig.RootCAs = pool
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig
	client := t.wrap(&http.Client{Transport: transport})
	t.clients[key] = client
	return client, nil
}

func (t *HTTPTransport) Send(ctx context.Context, uri string, opts *SendOptions) (*RawResponse, error) {
	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, opts.Method, uri, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if opts.Header != nil {
		req.Header = opts.Header.Clone()
	}

	client, err := t.clientFor(opts.TLS)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	return &RawResponse{
		StatusCode:    res.StatusCode,
		StatusMessage: statusMessage(res),
		OK:            200 <= res.StatusCode && res.StatusCode < 300,
		Header:        res.Header,
		Body:          res.Body,
	}, nil
}

func statusMessage(res *http.Response) string {
	message := strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode))
	message = strings.TrimSpace(message)
	if message == "" {
		message = http.StatusText(res.StatusCode)
	}
	return message
}

func (t *HTTPTransport) CloseIdleConnections() {
	t.plain.CloseIdleConnections()
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, client := range t.clients {
		client.CloseIdleConnections()
	}
}

// Close cancels the requests in flight and refuses new ones.
func (t *HTTPTransport) Close() error {
	t.mu.Lock()
	t.closed = true
	clients := make([]*closingclient.ClosingClient, 0, len(t.clients)+1)
	clients = append(clients, t.plain)
	for _, client := range t.clients {
		clients = append(clients, client)
	}
	t.mu.Unlock()

	var errs []error
	for _, client := range clients {
		if err := client.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
