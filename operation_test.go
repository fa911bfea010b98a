package baas

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	apierrors "github.com/Angies2/baas-sdk-go/errors"
)

var testOp = &Operation{
	ID:     "testOp",
	Method: "PUT",
	Path:   "/v1.0/things/{thingId}/parts/{partId}",
	Params: []Param{
		{Name: "thingId", WireName: "thingId", In: InPath, Required: true},
		{Name: "partId", WireName: "partId", In: InPath},
		{Name: "filter", WireName: "filter", In: InQuery},
		{Name: "sessionToken", WireName: "session-token", In: InHeader, Required: true},
		{Name: "thing", WireName: "thing", In: InBody, Required: true},
	},
}

func TestBuild(t *testing.T) {
	req, err := testOp.Build(Params{
		"thingId":      12,
		"partId":       "p1",
		"filter":       true,
		"sessionToken": "tok",
		"thing":        map[string]any{"a": 1},
		"unknown":      "ignored",
	})
	require.NoError(t, err)

	require.Equal(t, &LogicalRequest{
		Method:     "PUT",
		Path:       "/v1.0/things/12/parts/p1",
		PathParams: map[string]any{"thingId": 12, "partId": "p1"},
		Query:      map[string]any{"filter": true},
		Header: http.Header{
			"Accept":        {"*/*"},
			"Content-Type":  {ContentTypeJSON},
			"Session-Token": {"tok"},
		},
		Body: map[string]any{"a": 1},
		Form: map[string]any{},
	}, req)
}

func TestBuildAbsentOptionalPathParameter(t *testing.T) {
	req, err := testOp.Build(Params{
		"thingId":      "t",
		"sessionToken": "tok",
		"thing":        nil,
	})
	require.NoError(t, err)
	require.Equal(t, "/v1.0/things/t/parts/undefined", req.Path)
	require.Equal(t, map[string]any{"thingId": "t"}, req.PathParams)
	require.Nil(t, req.Body)
}

func TestBuildPathValueText(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{value: nil, want: "/v1.0/things/null/parts/undefined"},
		{value: 1.5, want: "/v1.0/things/1.5/parts/undefined"},
		{value: false, want: "/v1.0/things/false/parts/undefined"},
		{value: []any{1, 2}, want: "/v1.0/things/1,2/parts/undefined"},
	}

	for _, tc := range cases {
		req, err := testOp.Build(Params{"thingId": tc.value, "sessionToken": "tok", "thing": 1})
		require.NoError(t, err)
		require.Equal(t, tc.want, req.Path)
	}
}

func TestBuildFirstMissingWins(t *testing.T) {
	cases := []struct {
		name    string
		params  Params
		missing string
	}{
		{name: "all missing", params: Params{}, missing: "thingId"},
		{name: "header and body missing", params: Params{"thingId": 1}, missing: "sessionToken"},
		{name: "body missing", params: Params{"thingId": 1, "sessionToken": "t"}, missing: "thing"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := testOp.Build(tc.params)
			require.Nil(t, req)
			require.ErrorIs(t, err, ErrMissingParameter)
			require.Equal(t, "missing required parameter: "+tc.missing, err.Error())
			require.Equal(t, codes.InvalidArgument, apierrors.CodeOf(err))
		})
	}
}

func TestBuildQueryParameters(t *testing.T) {
	req, err := OpGetDevicesListUsingGET.Build(Params{
		"sessionToken": "tok",
		"pageNum":      2,
		QueryParametersKey: map[string]string{
			"pageNum": "3",
			"custom":  "c",
		},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"pageNum": "3", "custom": "c"}, req.Query)
}

func TestBuildForm(t *testing.T) {
	req, err := OpLoginUsingPOST.Build(Params{
		"appToken":  "A",
		"loginName": "u",
		"password":  "p",
	})
	require.NoError(t, err)
	require.Equal(t, ContentTypeForm, req.Header.Get("Content-Type"))
	require.Equal(t, map[string]any{"appToken": "A", "loginName": "u", "password": "p"}, req.Form)
	require.Nil(t, req.Body)
	require.Empty(t, req.Query)
}

func TestBuildDefaultContentType(t *testing.T) {
	op := &Operation{ID: "bare", Method: "GET", Path: "/bare"}
	req, err := op.Build(nil)
	require.NoError(t, err)
	require.Equal(t, ContentTypeJSON, req.Header.Get("Content-Type"))
	require.Equal(t, "/bare", req.Path)
}

func TestGeneratedOperations(t *testing.T) {
	require.Len(t, Operations, 64)

	ids := map[string]bool{}
	for _, op := range Operations {
		require.False(t, ids[op.ID], op.ID)
		ids[op.ID] = true
		require.Contains(t, []string{"GET", "POST", "PUT", "DELETE"}, op.Method, op.ID)
		for _, p := range op.Params {
			if p.In == InPath {
				require.Contains(t, op.Path, "{"+p.WireName+"}", op.ID)
			}
		}
	}
}

func TestBucketString(t *testing.T) {
	require.Equal(t, "path", InPath.String())
	require.Equal(t, "form", InForm.String())
}
