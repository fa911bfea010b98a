package apigen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi2"

	baas "github.com/Angies2/baas-sdk-go"
)

// Model is everything the templates need.
type Model struct {
	Package    string
	BaseURL    string
	Operations []Operation
}

type Operation struct {
	ID          string
	Method      string
	Path        string
	ContentType string
	Summary     string
	Tag         string
	Params      []Param
}

// GoName is the exported method name of the operation.
func (o Operation) GoName() string {
	return exported(o.ID)
}

type Param struct {
	Name        string
	WireName    string
	In          baas.Bucket
	Required    bool
	Description string
}

var methodOrder = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

func pathOperations(item *openapi2.PathItem) []*openapi2.Operation {
	return []*openapi2.Operation{
		item.Get, item.Post, item.Put, item.Delete, item.Patch, item.Head, item.Options,
	}
}

var buckets = map[string]baas.Bucket{
	"path":     baas.InPath,
	"query":    baas.InQuery,
	"header":   baas.InHeader,
	"body":     baas.InBody,
	"formData": baas.InForm,
}

// BuildModel turns the document into the list of operations, ordered by
// path and then by method.
func BuildModel(doc *openapi2.T, pkg, baseURL string) (*Model, error) {
	paths := make([]string, 0, len(doc.Paths))
	for path := range doc.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	m := &Model{
		Package: pkg,
		BaseURL: baseURL,
	}
	seen := make(map[string]bool)
	for _, path := range paths {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		for i, op := range pathOperations(item) {
			if op == nil {
				continue
			}
			method := methodOrder[i]
			if op.OperationID == "" {
				return nil, fmt.Errorf("operation %s %s has no operationId", method, path)
			}
			if seen[op.OperationID] {
				return nil, fmt.Errorf("duplicate operationId %s", op.OperationID)
			}
			seen[op.OperationID] = true

			params, err := operationParams(doc, item, op)
			if err != nil {
				return nil, fmt.Errorf("operation %s: %w", op.OperationID, err)
			}
			var tag string
			if len(op.Tags) != 0 {
				tag = op.Tags[0]
			}
			m.Operations = append(m.Operations, Operation{
				ID:          op.OperationID,
				Method:      method,
				Path:        path,
				ContentType: contentType(doc, op, params),
				Summary:     firstLine(op.Summary),
				Tag:         tag,
				Params:      params,
			})
		}
	}
	return m, nil
}

// operationParams lists the operation's own parameters followed by the
// path-level ones it does not override.
func operationParams(doc *openapi2.T, item *openapi2.PathItem, op *openapi2.Operation) ([]Param, error) {
	var params []Param
	declared := make(map[string]bool)
	add := func(list openapi2.Parameters, skipDeclared bool) error {
		for _, p := range list {
			p, err := resolveParam(doc, p)
			if err != nil {
				return err
			}
			key := p.In + ":" + p.Name
			if skipDeclared && declared[key] {
				continue
			}
			declared[key] = true
			in, has := buckets[p.In]
			if !has {
				return fmt.Errorf("parameter %s: unsupported location %q", p.Name, p.In)
			}
			params = append(params, Param{
				Name:        paramName(p.Name),
				WireName:    p.Name,
				In:          in,
				Required:    p.Required,
				Description: firstLine(p.Description),
			})
		}
		return nil
	}
	if err := add(op.Parameters, false); err != nil {
		return nil, err
	}
	if err := add(item.Parameters, true); err != nil {
		return nil, err
	}
	return params, nil
}

func resolveParam(doc *openapi2.T, p *openapi2.Parameter) (*openapi2.Parameter, error) {
	if p == nil {
		return nil, fmt.Errorf("empty parameter")
	}
	if p.Ref == "" {
		return p, nil
	}
	name := strings.TrimPrefix(p.Ref, "#/parameters/")
	if name == p.Ref {
		return nil, fmt.Errorf("unsupported parameter reference %q", p.Ref)
	}
	resolved, has := doc.Parameters[name]
	if !has || resolved == nil {
		return nil, fmt.Errorf("unresolved parameter reference %q", p.Ref)
	}
	return resolved, nil
}

// contentType is the form encoding when any parameter is a form field,
// otherwise the first declared consumes entry.
func contentType(doc *openapi2.T, op *openapi2.Operation, params []Param) string {
	for _, p := range params {
		if p.In == baas.InForm {
			return baas.ContentTypeForm
		}
	}
	if len(op.Consumes) != 0 {
		return op.Consumes[0]
	}
	if len(doc.Consumes) != 0 {
		return doc.Consumes[0]
	}
	return baas.ContentTypeJSON
}

// paramName camel-cases a wire name: "session-token" becomes
// "sessionToken".
func paramName(wire string) string {
	parts := strings.FieldsFunc(wire, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '$'
	})
	if len(parts) == 0 {
		return wire
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(exported(part))
	}
	return b.String()
}

func exported(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
