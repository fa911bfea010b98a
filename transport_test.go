package baas

import (
	"context"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTLSServer(t *testing.T) (*httptest.Server, []byte) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"method":"` + r.Method + `"}`))
	}))
	t.Cleanup(server.Close)
	ca := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: server.Certificate().Raw})
	return server, ca
}

func TestHTTPTransportTLS(t *testing.T) {
	server, ca := newTLSServer(t)

	cases := []struct {
		name    string
		tls     *TLSOptions
		wantErr string
	}{
		{name: "trusted CA", tls: &TLSOptions{CA: ca, RejectUnauthorized: true}},
		{name: "untrusted", tls: &TLSOptions{RejectUnauthorized: true}, wantErr: "certificate"},
		{name: "verification disabled", tls: &TLSOptions{RejectUnauthorized: false}},
		{name: "bad CA", tls: &TLSOptions{CA: []byte("junk"), RejectUnauthorized: true}, wantErr: "no certificates found in CA bundle"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport := NewHTTPTransport(nil, nil)
			t.Cleanup(func() { require.NoError(t, transport.Close()) })

			raw, err := transport.Send(context.Background(), server.URL, &SendOptions{
				Method: http.MethodGet,
				Header: http.Header{},
				TLS:    tc.tls,
			})
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			defer raw.Body.Close()
			require.True(t, raw.OK)
			require.Equal(t, "OK", raw.StatusMessage)
			data, err := io.ReadAll(raw.Body)
			require.NoError(t, err)
			require.Equal(t, `{"method":"GET"}`, string(data))
		})
	}
}

func TestHTTPTransportReusesTLSClients(t *testing.T) {
	_, ca := newTLSServer(t)
	transport := NewHTTPTransport(nil, nil)
	t.Cleanup(func() { require.NoError(t, transport.Close()) })

	a, err := transport.clientFor(&TLSOptions{CA: ca, RejectUnauthorized: true})
	require.NoError(t, err)
	b, err := transport.clientFor(&TLSOptions{CA: ca, RejectUnauthorized: true})
	require.NoError(t, err)
	c, err := transport.clientFor(&TLSOptions{CA: ca})
	require.NoError(t, err)
	require.Same(t, a, b)
	require.NotSame(t, a, c)

	plain, err := transport.clientFor(nil)
	require.NoError(t, err)
	require.NotSame(t, a, plain)
}

func TestHTTPTransportCustomClient(t *testing.T) {
	server, _ := newTLSServer(t)

	// The custom client carries its own TLS setup; TLSOptions are ignored.
	transport := NewHTTPTransport(server.Client(), nil)
	t.Cleanup(func() { require.NoError(t, transport.Close()) })

	raw, err := transport.Send(context.Background(), server.URL, &SendOptions{
		Method: http.MethodPost,
		Header: http.Header{"Content-Type": {ContentTypeJSON}},
		Body:   []byte(`{}`),
		TLS:    &TLSOptions{CA: []byte("junk"), RejectUnauthorized: true},
	})
	require.NoError(t, err)
	defer raw.Body.Close()
	data, err := io.ReadAll(raw.Body)
	require.NoError(t, err)
	require.Equal(t, `{"method":"POST"}`, string(data))
}

func TestClientOverHTTPS(t *testing.T) {
	server, ca := newTLSServer(t)

	client, err := NewClient(Config{AccessID: "ID1", AccessKey: "KEY1", BaseURL: server.URL, CA: ca})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, client.Close()) })

	res, err := client.Do(context.Background(), &LogicalRequest{Method: "DELETE", Path: "/anything"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"method": "DELETE"}, res.Body)
}

func TestStatusMessage(t *testing.T) {
	require.Equal(t, "Not Found", statusMessage(&http.Response{StatusCode: 404, Status: "404 Not Found"}))
	require.Equal(t, "Custom Reason", statusMessage(&http.Response{StatusCode: 400, Status: "400 Custom Reason"}))
	require.Equal(t, "Bad Request", statusMessage(&http.Response{StatusCode: 400, Status: "400"}))
}
