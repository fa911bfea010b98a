package baas

import (
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/Angies2/baas-sdk-go/errors"
	"github.com/Angies2/baas-sdk-go/internal/jsval"
)

// Content types of operations.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// QueryParametersKey is a Params key holding a map of extra query
// parameters. They are added after the declared ones and are signed.
const QueryParametersKey = "$queryParameters"

var ErrMissingParameter = errors.New("missing required parameter")

// Params are the arguments of an operation keyed by parameter name.
type Params map[string]any

// Bucket is the part of the HTTP request a parameter goes to.
type Bucket int

const (
	InPath Bucket = iota
	InQuery
	InHeader
	InBody
	InForm
)

func (b Bucket) String() string {
	switch b {
	case InPath:
		return "path"
	case InQuery:
		return "query"
	case InHeader:
		return "header"
	case InBody:
		return "body"
	case InForm:
		return "form"
	}
	return "unknown"
}

// Param declares one parameter of an operation.
type Param struct {
	// Name is the key in Params.
	Name string

	// WireName is the name on the wire: the placeholder in the path, the
	// query or form key or the header name. Unused for InBody, whose value
	// becomes the whole body.
	WireName string

	In       Bucket
	Required bool
}

// Operation describes one endpoint of the API.
type Operation struct {
	ID          string
	Method      string
	Path        string
	ContentType string

	// Params are processed in order. The first missing required parameter
	// stops processing.
	Params []Param
}

// LogicalRequest is a request before signing and encoding.
type LogicalRequest struct {
	Method string

	// Path is appended to the base URL. Placeholders are already
	// substituted.
	Path string

	// PathParams and Query are signed.
	PathParams map[string]any
	Query      map[string]any

	Header http.Header

	// Body is sent as JSON unless Form is not empty.
	Body any

	// Form fields are merged over Body and sent url-encoded.
	Form map[string]any
}

// Build maps params onto the buckets of a request.
//
// A path placeholder whose parameter is absent is replaced by the text
// "undefined". Required parameters are checked after placement, so for a
// required path parameter nothing leaves the process.
func (op *Operation) Build(params Params) (*LogicalRequest, error) {
	req := &LogicalRequest{
		Method:     op.Method,
		Path:       op.Path,
		PathParams: map[string]any{},
		Query:      map[string]any{},
		Header:     http.Header{},
		Form:       map[string]any{},
	}
	req.Header.Set("Accept", "*/*")
	contentType := op.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	req.Header.Set("Content-Type", contentType)

	for _, p := range op.Params {
		value, has := params[p.Name]
		switch p.In {
		case InPath:
			text := "undefined"
			if has {
				text = jsval.String(value)
				req.PathParams[p.WireName] = value
			}
			req.Path = strings.Replace(req.Path, "{"+p.WireName+"}", text, 1)
		case InQuery:
			if has {
				req.Query[p.WireName] = value
			}
		case InHeader:
			if has {
				req.Header.Set(p.WireName, jsval.String(value))
			}
		case InBody:
			if has {
				req.Body = value
			}
		case InForm:
			if has {
				req.Form[p.WireName] = value
			}
		}
		if p.Required && !has {
			return nil, apierrors.InvalidArgument("%w: %s", ErrMissingParameter, p.Name)
		}
	}

	if extra, ok := jsval.ToMap(params[QueryParametersKey]); ok {
		for k, v := range extra {
			req.Query[k] = v
		}
	}
	return req, nil
}
