package apigen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	baas "github.com/Angies2/baas-sdk-go"
)

const clientTemplate = `// Code generated by baasgen. DO NOT EDIT.

package {{.Package}}

import "context"

// DefaultBaseURL is the endpoint the operations below were generated for.
const DefaultBaseURL = {{printf "%q" .BaseURL}}
{{range .Operations}}
// Op{{.GoName}} is {{.Method}} {{.Path}}.
var Op{{.GoName}} = &Operation{
	ID:          {{printf "%q" .ID}},
	Method:      {{printf "%q" .Method}},
	Path:        {{printf "%q" .Path}},
	ContentType: {{printf "%q" .ContentType}},
	Params: []Param{
{{- range .Params}}
		{{paramLiteral .}},
{{- end}}
	},
}
{{end}}
// Operations lists every generated operation.
var Operations = []*Operation{
{{- range .Operations}}
	Op{{.GoName}},
{{- end}}
}
{{range .Operations}}
// {{.GoName}} calls {{.Method}} {{.Path}}.{{if .Summary}}
// {{.Summary}}{{end}}
{{- if .Params}}
//
// Parameters:
//
{{- range .Params}}
//   - {{paramDoc .}}
{{- end}}
{{- end}}
func (c *Client) {{.GoName}}(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, Op{{.GoName}}, params)
}
{{end}}`

var bucketIdents = map[baas.Bucket]string{
	baas.InPath:   "InPath",
	baas.InQuery:  "InQuery",
	baas.InHeader: "InHeader",
	baas.InBody:   "InBody",
	baas.InForm:   "InForm",
}

func paramLiteral(p Param) string {
	s := fmt.Sprintf("{Name: %q, WireName: %q, In: %s", p.Name, p.WireName, bucketIdents[p.In])
	if p.Required {
		s += ", Required: true"
	}
	return s + "}"
}

func paramDoc(p Param) string {
	var where []string
	if p.In == baas.InHeader || p.WireName != p.Name {
		where = append(where, fmt.Sprintf("%s %q", p.In, p.WireName))
	} else {
		where = append(where, p.In.String())
	}
	if p.Required {
		where = append(where, "required")
	}
	s := fmt.Sprintf("%s (%s)", p.Name, strings.Join(where, ", "))
	if p.Description != "" && p.Description != p.Name && p.Description != p.WireName {
		s += ": " + p.Description
	}
	return s
}

var clientTmpl = template.Must(template.New("client").Funcs(template.FuncMap{
	"paramLiteral": paramLiteral,
	"paramDoc":     paramDoc,
}).Parse(clientTemplate))

// Render produces the formatted Go source of the client methods.
func Render(m *Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := clientTmpl.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	src, err := imports.Process("client_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w\n%s", err, buf.String())
	}
	return src, nil
}
