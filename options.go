package baas

import (
	"time"

	"go.uber.org/zap"

	"github.com/Angies2/baas-sdk-go/authcode"
)

type clientOptions struct {
	logger    *zap.Logger
	transport Transport
	client    HttpClient
	nonce     func() string
	now       func() time.Time
}

func newDefaultOptions() *clientOptions {
	return &clientOptions{
		nonce: authcode.NewNonce,
		now:   time.Now,
	}
}

type Option func(*clientOptions)

// WithLogger sets the logger used for debug tracing. Without it the client
// is silent unless Config.Debug is set.
func WithLogger(logger *zap.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithTransport replaces the HTTP transport. TLS settings of Config are
// handed to it through SendOptions.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// CustomClient makes the default transport send requests through client.
// The client is used as is, including its TLS configuration.
func CustomClient(client HttpClient) Option {
	return func(o *clientOptions) {
		o.client = client
	}
}

// WithNonceSource replaces the nonce generator. It must be safe for
// concurrent use. A nil nonce keeps the default.
func WithNonceSource(nonce func() string) Option {
	return func(o *clientOptions) {
		if nonce != nil {
			o.nonce = nonce
		}
	}
}

// WithClock replaces the source of authCode timestamps. A nil now keeps
// time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) {
		if now != nil {
			o.now = now
		}
	}
}
