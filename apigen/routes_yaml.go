package apigen

import (
	"fmt"
	"io"
	"sort"
	"text/template"
)

const yamlRoutes = `{{- range $tag := .Tags}}
{{$tag}}:
 {{- range $op := index $.ByTag $tag}}
  {{$op.ID}}:
    method: "{{$op.Method}}"
    path: "{{$op.Path}}"
    contentType: "{{$op.ContentType}}"{{end}}
{{- end}}
`

var yamlRoutesTemplate = template.Must(template.New("routes_yaml").Parse(yamlRoutes))

// DefaultTag groups operations without a tag.
const DefaultTag = "default"

// WriteRoutesYAML writes the operations grouped by their first tag, tags in
// alphabetical order.
func WriteRoutesYAML(w io.Writer, m *Model) error {
	byTag := map[string][]Operation{}
	for _, op := range m.Operations {
		tag := op.Tag
		if tag == "" {
			tag = DefaultTag
		}
		byTag[tag] = append(byTag[tag], op)
	}
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	err := yamlRoutesTemplate.Execute(w, struct {
		Tags  []string
		ByTag map[string][]Operation
	}{tags, byTag})
	if err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
