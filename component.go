package reactfy

import (
	"bytes"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/pkg/errors"
)

// DefaultFramework is the module the component imports React from.
const DefaultFramework = "react"

const componentTemplate = `import React from '{{ .Framework }}';

{{ .Imports | join "\n" }}

{{ .CSSImports | join "\n" }}

const {{ .Name }} = () => (
  <>
{{ .Body | indent 4 }}
  </>
);

export default {{ .Name }};
`

var componentTmpl = template.Must(template.New("component").Funcs(sprig.FuncMap()).Parse(componentTemplate))

type componentValues struct {
	Framework  string
	Name       string
	Imports    []string
	CSSImports []string
	Body       string
}

// Component renders the conversion result as component source text.
func (r *Result) Component(framework string) (string, error) {
	if framework == "" {
		framework = DefaultFramework
	}
	values := componentValues{
		Framework:  framework,
		Name:       r.ComponentName,
		Imports:    r.ImportStatements(),
		CSSImports: r.CSSImports,
		Body:       strings.ReplaceAll(r.JSXBody, "\r\n", "\n"),
	}
	buf := new(bytes.Buffer)
	if err := componentTmpl.Execute(buf, values); err != nil {
		return "", errors.Wrapf(err, "unable to render component %s", r.ComponentName)
	}
	return buf.String(), nil
}
