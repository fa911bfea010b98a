package debugclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	baas "github.com/Angies2/baas-sdk-go"
	"github.com/Angies2/baas-sdk-go/debugclient"
)

func TestDebugClient(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0}`))
	}))
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	debugClient := debugclient.New(http.DefaultClient, zap.New(core))

	client, err := baas.NewClient(baas.Config{
		AccessID:  "ID1",
		AccessKey: "KEY1",
		BaseURL:   server.URL,
	},
		baas.CustomClient(debugClient),
		baas.WithNonceSource(func() string { return "N1" }),
		baas.WithClock(func() time.Time { return time.UnixMilli(1000) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	res, err := client.AddDeviceUsingPOST(context.Background(), baas.Params{
		"sessionToken": "secret-session",
		"addDevice":    map[string]any{"deviceName": "d1"},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"code": float64(0)}, res.Body)
	require.Equal(t, `{"deviceName":"d1"}`, gotBody)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	require.Equal(t, "client request", entries[0].Message)
	curl := entries[0].ContextMap()["curl"].(string)
	require.Contains(t, curl, "curl -X 'POST' -d '{\"deviceName\":\"d1\"}'")
	require.Contains(t, curl, "-H 'Authcode: accessId=ID1&nonce=N1&timestamp=1000&signature=<redacted>'")
	require.Contains(t, curl, "-H 'Session-Token: <redacted>'")
	require.Contains(t, curl, server.URL+"/v1.0/devices")
	require.NotContains(t, curl, "secret-session")

	require.Equal(t, "server response", entries[1].Message)
	dump := entries[1].ContextMap()["dump"].(string)
	require.True(t, strings.HasPrefix(dump, "HTTP/1.1 200 OK\r\n"), dump)
	require.True(t, strings.HasSuffix(dump, `{"code":0}`), dump)
	require.Equal(t, uint64(1), entries[1].ContextMap()["n"])
}

func TestDebugClientRedactsLogin(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Header().Set("session-token", "issued-jwt")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"data":{"loginName":"alice"}}`))
	}))
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	debugClient := debugclient.New(http.DefaultClient, zap.New(core))

	client, err := baas.NewClient(baas.Config{
		AccessID:  "ID1",
		AccessKey: "KEY1",
		BaseURL:   server.URL,
	}, baas.CustomClient(debugClient))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	res, err := client.LoginUsingPOST(context.Background(), baas.Params{
		"appToken":  "app-secret",
		"loginName": "alice",
		"password":  "hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, "issued-jwt", res.SessionToken())
	require.Equal(t, "appToken=app-secret&loginName=alice&password=hunter2", gotBody)
	require.Equal(t, map[string]any{
		"code": float64(0),
		"data": map[string]any{"loginName": "alice"},
	}, res.Body)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	curl := entries[0].ContextMap()["curl"].(string)
	require.Contains(t, curl, "loginName=alice")
	require.Contains(t, curl, "password=%3Credacted%3E")
	require.Contains(t, curl, "appToken=%3Credacted%3E")

	dump := entries[1].ContextMap()["dump"].(string)
	require.Contains(t, dump, "Session-Token: <redacted>\r\n")
	require.True(t, strings.HasSuffix(dump, `{"code":0,"data":{"loginName":"alice"}}`), dump)

	for _, entry := range entries {
		for _, field := range entry.Context {
			require.NotContains(t, field.String, "hunter2")
			require.NotContains(t, field.String, "app-secret")
			require.NotContains(t, field.String, "issued-jwt")
		}
	}
}

type failingBody struct {
	closed bool
}

func (b *failingBody) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func (b *failingBody) Close() error {
	b.closed = true
	return nil
}

type stubClient struct {
	body *failingBody
}

func (c *stubClient) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{"Session-Token": {"issued-jwt"}},
		Body:       c.body,
		Request:    req,
	}, nil
}

func (c *stubClient) CloseIdleConnections() {}

func TestDebugClientDumpError(t *testing.T) {
	body := &failingBody{}
	debugClient := debugclient.New(&stubClient{body: body}, zap.NewNop())

	req, err := http.NewRequest(http.MethodGet, "http://baas.test/v1.0/roles", nil)
	require.NoError(t, err)
	res, err := debugClient.Do(req)
	require.Nil(t, res)
	require.ErrorContains(t, err, "connection reset")
	require.True(t, body.closed)
}

func TestDebugClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	debugClient := debugclient.New(&http.Client{}, zap.New(core))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	_, err = debugClient.Do(req)
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("client request failed").Len())
}
