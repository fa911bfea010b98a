package apigen

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	baas "github.com/Angies2/baas-sdk-go"
)

const fixture = "testdata/swagger_doc.json"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func loadFixture(t *testing.T) *openapi2.T {
	t.Helper()
	doc, err := LoadDocument(context.Background(), nil, Source{File: fixture}, zap.NewNop())
	require.NoError(t, err)
	return doc
}

func TestLoadDocument(t *testing.T) {
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)

	var gotAccept string
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	t.Cleanup(good.Close)
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	t.Cleanup(bad.Close)

	ctx := context.Background()

	t.Run("online", func(t *testing.T) {
		doc, err := LoadDocument(ctx, good.Client(), Source{URL: good.URL, File: "does-not-exist.json"}, zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, "demo.heclouds.com", doc.Host)
		require.Equal(t, "application/json", gotAccept)
	})

	t.Run("fallback to file", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		doc, err := LoadDocument(ctx, bad.Client(), Source{URL: bad.URL, File: fixture}, zap.New(core))
		require.NoError(t, err)
		require.Equal(t, "/baasapi", doc.BasePath)
		require.Equal(t, 1, logs.FilterMessageSnippet("using local file").Len())
	})

	t.Run("online failure without file", func(t *testing.T) {
		_, err := LoadDocument(ctx, bad.Client(), Source{URL: bad.URL}, zap.NewNop())
		require.ErrorContains(t, err, "unexpected status")
	})

	t.Run("no source", func(t *testing.T) {
		_, err := LoadDocument(ctx, nil, Source{}, zap.NewNop())
		require.Error(t, err)
	})

	t.Run("broken file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "doc.json")
		require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o644))
		_, err := LoadDocument(ctx, nil, Source{File: file}, zap.NewNop())
		require.ErrorContains(t, err, "failed to parse swagger document")
	})
}

func TestBaseURL(t *testing.T) {
	def := Defaults{Protocol: "http", Host: "demo.heclouds.com", BasePath: "/baasapi"}
	cases := []struct {
		name     string
		host     string
		basePath string
		want     string
	}{
		{"no host", "", "/ignored", "http://demo.heclouds.com/baasapi"},
		{"host with scheme", "https://baas.example.com", "/api", "https://baas.example.com/api"},
		{"host without scheme", "baas.example.com:8443", "/api", "http://baas.example.com:8443/api"},
		{"root base path", "baas.example.com", "/", "http://baas.example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := &openapi2.T{Host: tc.host, BasePath: tc.basePath}
			require.Equal(t, tc.want, BaseURL(doc, def, zap.NewNop()))
		})
	}
}

func TestBuildModel(t *testing.T) {
	doc := loadFixture(t)
	model, err := BuildModel(doc, "baas", "http://demo.heclouds.com/baasapi")
	require.NoError(t, err)

	sessionToken := Param{Name: "sessionToken", WireName: "session-token", In: baas.InHeader, Required: true, Description: "session-token"}
	deviceID := Param{Name: "deviceId", WireName: "deviceId", In: baas.InPath, Required: true, Description: "deviceId"}
	want := &Model{
		Package: "baas",
		BaseURL: "http://demo.heclouds.com/baasapi",
		Operations: []Operation{
			{
				ID: "getDevicesListUsingGET", Method: "GET", Path: "/v1.0/devices",
				ContentType: baas.ContentTypeJSON, Summary: "List devices", Tag: "device-controller",
				Params: []Param{
					sessionToken,
					{Name: "deviceName", WireName: "deviceName", In: baas.InQuery, Description: "device name"},
					{Name: "pageNum", WireName: "pageNum", In: baas.InQuery, Description: "page number"},
				},
			},
			{
				ID: "addDeviceUsingPOST", Method: "POST", Path: "/v1.0/devices",
				ContentType: baas.ContentTypeJSON, Summary: "Add device", Tag: "device-controller",
				Params: []Param{
					{Name: "addDevice", WireName: "addDevice", In: baas.InBody, Required: true, Description: "addDevice"},
					sessionToken,
				},
			},
			{
				ID: "getDevicesByIdUsingGET", Method: "GET", Path: "/v1.0/devices/info/{deviceId}",
				ContentType: baas.ContentTypeJSON, Summary: "Get device", Tag: "device-controller",
				Params: []Param{deviceID, sessionToken},
			},
			{
				ID: "updateDevicesUsingPUT", Method: "PUT", Path: "/v1.0/devices/info/{deviceId}",
				ContentType: baas.ContentTypeJSON, Summary: "Edit device", Tag: "device-controller",
				Params: []Param{
					deviceID,
					{Name: "updateDevice", WireName: "updateDevice", In: baas.InBody, Required: true, Description: "updateDevice"},
					sessionToken,
				},
			},
			{
				ID: "loginUsingPOST", Method: "POST", Path: "/v1.0/login",
				ContentType: baas.ContentTypeForm, Summary: "User login", Tag: "login-controller",
				Params: []Param{
					{Name: "appToken", WireName: "appToken", In: baas.InForm, Required: true, Description: "appToken"},
					{Name: "loginName", WireName: "loginName", In: baas.InForm, Required: true, Description: "loginName"},
					{Name: "password", WireName: "password", In: baas.InForm, Required: true, Description: "password"},
				},
			},
		},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("BuildModel mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildModelErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  *openapi2.T
		want string
	}{
		{
			name: "missing operationId",
			doc: &openapi2.T{Paths: map[string]*openapi2.PathItem{
				"/a": {Get: &openapi2.Operation{}},
			}},
			want: "has no operationId",
		},
		{
			name: "duplicate operationId",
			doc: &openapi2.T{Paths: map[string]*openapi2.PathItem{
				"/a": {Get: &openapi2.Operation{OperationID: "x"}},
				"/b": {Get: &openapi2.Operation{OperationID: "x"}},
			}},
			want: "duplicate operationId",
		},
		{
			name: "unresolved reference",
			doc: &openapi2.T{Paths: map[string]*openapi2.PathItem{
				"/a": {Get: &openapi2.Operation{
					OperationID: "x",
					Parameters:  openapi2.Parameters{{Ref: "#/parameters/nope"}},
				}},
			}},
			want: "unresolved parameter reference",
		},
		{
			name: "unsupported location",
			doc: &openapi2.T{Paths: map[string]*openapi2.PathItem{
				"/a": {Get: &openapi2.Operation{
					OperationID: "x",
					Parameters:  openapi2.Parameters{{Name: "c", In: "cookie"}},
				}},
			}},
			want: "unsupported location",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildModel(tc.doc, "baas", "http://x")
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestParamName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"session-token", "sessionToken"},
		{"appToken", "appToken"},
		{"x_request_id", "xRequestId"},
		{"deviceId", "deviceId"},
	}
	for _, tc := range cases {
		if got := paramName(tc.in); got != tc.want {
			t.Errorf("paramName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRender(t *testing.T) {
	model, err := BuildModel(loadFixture(t), "baas", "http://demo.heclouds.com/baasapi")
	require.NoError(t, err)

	src, err := Render(model)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "client_gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	code := string(src)
	for _, want := range []string{
		"// Code generated by baasgen. DO NOT EDIT.\n",
		"package baas\n",
		`const DefaultBaseURL = "http://demo.heclouds.com/baasapi"`,
		"var OpLoginUsingPOST = &Operation{\n",
		`	ContentType: "application/x-www-form-urlencoded",`,
		`		{Name: "sessionToken", WireName: "session-token", In: InHeader, Required: true},`,
		`		{Name: "deviceName", WireName: "deviceName", In: InQuery},`,
		"// GetDevicesListUsingGET calls GET /v1.0/devices.\n// List devices\n//\n// Parameters:\n//\n",
		`//   - sessionToken (header "session-token", required)`,
		"//   - deviceName (query): device name\n",
		"func (c *Client) UpdateDevicesUsingPUT(ctx context.Context, params Params) (*Response, error) {\n\treturn c.Call(ctx, OpUpdateDevicesUsingPUT, params)\n}\n",
	} {
		require.Contains(t, code, want)
	}
	// Operations keep model order.
	require.Less(t, strings.Index(code, "\tOpGetDevicesListUsingGET,"), strings.Index(code, "\tOpLoginUsingPOST,"))
}

func TestWriteRoutesYAML(t *testing.T) {
	model, err := BuildModel(loadFixture(t), "baas", "http://demo.heclouds.com/baasapi")
	require.NoError(t, err)
	model.Operations = append(model.Operations, Operation{ID: "pingUsingGET", Method: "GET", Path: "/ping", ContentType: baas.ContentTypeJSON})

	var buf bytes.Buffer
	require.NoError(t, WriteRoutesYAML(&buf, model))

	var got map[string]map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	want := map[string]map[string]map[string]string{
		"default": {
			"pingUsingGET": {"method": "GET", "path": "/ping", "contentType": "application/json"},
		},
		"device-controller": {
			"getDevicesListUsingGET": {"method": "GET", "path": "/v1.0/devices", "contentType": "application/json"},
			"addDeviceUsingPOST":     {"method": "POST", "path": "/v1.0/devices", "contentType": "application/json"},
			"getDevicesByIdUsingGET": {"method": "GET", "path": "/v1.0/devices/info/{deviceId}", "contentType": "application/json"},
			"updateDevicesUsingPUT":  {"method": "PUT", "path": "/v1.0/devices/info/{deviceId}", "contentType": "application/json"},
		},
		"login-controller": {
			"loginUsingPOST": {"method": "POST", "path": "/v1.0/login", "contentType": "application/x-www-form-urlencoded"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
}

const testCert = `-----BEGIN CERTIFICATE-----
MIIBszCCAVmgAwIBAgIUQ2FUZXN0
-----END CERTIFICATE-----
`

func TestCopyCA(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cert.pem")
	require.NoError(t, os.WriteFile(src, []byte(testCert), 0o644))

	dst := filepath.Join(dir, "dist", "cert.pem")
	require.NoError(t, CopyCA(src, dst))
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, testCert, string(got))

	notPEM := filepath.Join(dir, "key.txt")
	require.NoError(t, os.WriteFile(notPEM, []byte("secret"), 0o644))
	require.Error(t, CopyCA(notPEM, filepath.Join(dir, "out.pem")))

	require.Error(t, CopyCA(filepath.Join(dir, "missing.pem"), dst))
}

func TestPackageName(t *testing.T) {
	require.Equal(t, "baas", PackageName(".."))
	require.Equal(t, "apigen", PackageName("."))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	caFile := filepath.Join(dir, "ca.pem")
	require.NoError(t, os.WriteFile(caFile, []byte(testCert), 0o644))

	cfg := Config{
		Source:     Source{File: fixture},
		Defaults:   Defaults{Protocol: "http", Host: "localhost", BasePath: "/baasapi"},
		Output:     filepath.Join(dir, "out", "client_gen.go"),
		Package:    "devices",
		RoutesYAML: filepath.Join(dir, "out", "routes.yaml"),
		CA:         caFile,
	}
	require.NoError(t, Generate(context.Background(), cfg, nil))

	src, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.Contains(t, string(src), "package devices\n")
	require.Contains(t, string(src), `"http://demo.heclouds.com/baasapi"`)

	_, err = os.Stat(cfg.RoutesYAML)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "out", "ca.pem"))
	require.NoError(t, err)

	// A second run leaves the file alone.
	info1, err := os.Stat(cfg.Output)
	require.NoError(t, err)
	changed, err := writeIfChanged(cfg.Output, src)
	require.NoError(t, err)
	require.False(t, changed)
	info2, err := os.Stat(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, info1.ModTime(), info2.ModTime())
}

func TestGeneratedClientUpToDate(t *testing.T) {
	doc, err := LoadDocument(context.Background(), nil, Source{File: "../api/swagger_doc.json"}, zap.NewNop())
	require.NoError(t, err)
	baseURL := BaseURL(doc, Defaults{Protocol: "http", Host: "demo.heclouds.com", BasePath: "/baasapi"}, zap.NewNop())
	require.Equal(t, baas.DefaultBaseURL, baseURL)

	model, err := BuildModel(doc, "baas", baseURL)
	require.NoError(t, err)
	require.Len(t, model.Operations, len(baas.Operations))

	src, err := Render(model)
	require.NoError(t, err)
	committed, err := os.ReadFile("../client_gen.go")
	require.NoError(t, err)
	if diff := cmp.Diff(string(committed), string(src)); diff != "" {
		t.Errorf("client_gen.go is stale, run go generate (-committed +generated):\n%s", diff)
	}
}
