package baas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Angies2/baas-sdk-go/authcode"
	apierrors "github.com/Angies2/baas-sdk-go/errors"
	"github.com/Angies2/baas-sdk-go/internal/jsval"
)

// AuthCodeHeader is the header carrying the signed authCode.
const AuthCodeHeader = "authCode"

// Client signs and sends requests to the BaaS API. It is safe for
// concurrent use; its configuration never changes after NewClient.
type Client struct {
	config    Config
	transport Transport
	logger    *zap.Logger
	nonce     func() string
	now       func() time.Time
}

// NewClient creates new instance of client.
//
// An empty config.BaseURL is replaced by DefaultBaseURL. The config must
// carry an access ID and an access key.
func NewClient(config Config, opts ...Option) (*Client, error) {
	cfg := config.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := newDefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil && cfg.Debug {
		devConfig := zap.NewDevelopmentConfig()
		l, err := devConfig.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build debug logger: %w", err)
		}
		logger = l
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := o.transport
	if transport == nil {
		transport = NewHTTPTransport(o.client, logger)
	}

	logger.Debug("client created", zap.Object("config", &cfg))

	return &Client{
		config:    cfg,
		transport: transport,
		logger:    logger,
		nonce:     o.nonce,
		now:       o.now,
	}, nil
}

// Call builds the request of op from params and sends it. A missing
// required parameter is reported before any I/O.
func (c *Client) Call(ctx context.Context, op *Operation, params Params) (*Response, error) {
	c.logger.Debug("call", zap.String("operation", op.ID))
	req, err := op.Build(params)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("parameters",
		zap.String("operation", op.ID),
		zap.Any("pathParameters", req.PathParams),
		zap.Any("queryParameters", req.Query),
	)
	return c.Do(ctx, req)
}

// Do signs req over its path and query parameters and sends it.
//
// If the transport fails, the error wraps the transport's error and the
// response is nil. If the server answers with a status outside of 2xx,
// both the response and a *ResponseError are returned.
func (c *Client) Do(ctx context.Context, req *LogicalRequest) (*Response, error) {
	signed := make(map[string]any, len(req.PathParams)+len(req.Query))
	for k, v := range req.PathParams {
		signed[k] = v
	}
	for k, v := range req.Query {
		signed[k] = v
	}

	code, err := authcode.Generate(authcode.Input{
		AccessID:  c.config.AccessID,
		AccessKey: c.config.AccessKey,
		Method:    req.Method,
		Params:    signed,
		Nonce:     c.nonce(),
		Timestamp: c.now().UnixMilli(),
	})
	if err != nil {
		return nil, apierrors.InvalidArgument("failed to sign request: %w", err)
	}
	c.logger.Debug("signed",
		zap.String("prefix", code.Prefix),
		zap.String("content", code.Content),
		zap.String("authCode", authcode.Redact(code.AuthCode)),
	)

	header := req.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set(AuthCodeHeader, code.AuthCode)

	body, err := encodeBody(req)
	if err != nil {
		return nil, apierrors.InvalidArgument("failed to encode request body: %w", err)
	}

	uri := c.config.BaseURL + req.Path
	if len(req.Query) > 0 {
		uri += "?" + jsval.EncodeQuery(req.Query)
	}

	var tlsOpts *TLSOptions
	if strings.HasPrefix(c.config.BaseURL, "https://") {
		tlsOpts = &TLSOptions{
			CA:                 c.config.CA,
			RejectUnauthorized: !c.config.InsecureSkipVerify,
		}
	}

	c.logger.Debug("request",
		zap.String("method", req.Method),
		zap.String("uri", uri),
		zap.Int("bodySize", len(body)),
	)
	raw, err := c.transport.Send(ctx, uri, &SendOptions{
		Method: strings.ToUpper(req.Method),
		Header: header,
		Body:   body,
		TLS:    tlsOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	res, err := readResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	c.logger.Debug("response",
		zap.Int("statusCode", res.Status),
		zap.String("statusMessage", res.StatusMessage),
		zap.Int("bodySize", len(res.Data)),
	)

	if !raw.OK {
		return res, &ResponseError{Response: res}
	}
	return res, nil
}

// encodeBody returns nil for GET and HEAD. Otherwise a non-empty form wins
// over the JSON body and is merged over it.
func encodeBody(req *LogicalRequest) ([]byte, error) {
	switch strings.ToUpper(req.Method) {
	case http.MethodGet, http.MethodHead:
		return nil, nil
	}

	if len(req.Form) > 0 {
		fields := map[string]any{}
		base, err := bodyFields(req.Body)
		if err != nil {
			return nil, err
		}
		for k, v := range base {
			fields[k] = v
		}
		for k, v := range req.Form {
			fields[k] = v
		}
		return []byte(jsval.EncodeQuery(fields)), nil
	}

	body := req.Body
	if body == nil {
		body = map[string]any{}
	}
	s, err := jsval.Marshal(body)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// bodyFields turns a body into the fields of a form. Structs go through
// their JSON form; scalars contribute nothing.
func bodyFields(body any) (map[string]any, error) {
	if body == nil {
		return nil, nil
	}
	if m, ok := jsval.ToMap(body); ok {
		return m, nil
	}
	if !jsval.IsComposite(body) {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		// Arrays have no named fields.
		return nil, nil
	}
	return m, nil
}

// Close closes the transport. For the default transport this cancels the
// requests in flight; calls made afterwards fail.
func (c *Client) Close() error {
	if closer, ok := c.transport.(io.Closer); ok {
		return closer.Close()
	}
	if t, ok := c.transport.(interface{ CloseIdleConnections() }); ok {
		t.CloseIdleConnections()
	}
	return nil
}
