// Package reactfy converts static HTML markup into JSX component source.
package reactfy

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrEmptyInput = errors.New("empty input")

type Options struct {
	// Framework is the module React is imported from, "react" when empty.
	Framework string
	// Drop lists expressions selecting additional elements to remove, see
	// DropFilter.
	Drop []string
}

// Result of a single conversion.
type Result struct {
	ComponentName string
	Imports       []Import
	CSSImports    []string
	JSXBody       string
}

func (r *Result) ImportStatements() []string {
	statements := make([]string, 0, len(r.Imports))
	for _, imp := range r.Imports {
		statements = append(statements, imp.String())
	}
	return statements
}

// Converter turns markup into JSX. All per file state is created by Convert,
// a Converter may be reused for any number of files.
type Converter struct {
	opts Options
	log  *zap.Logger
}

func NewConverter(opts Options, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Framework == "" {
		opts.Framework = DefaultFramework
	}
	return &Converter{opts: opts, log: log.Named("convert")}
}

func (c *Converter) Convert(markup, fileName string) (*Result, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, errors.Wrap(ErrEmptyInput, fileName)
	}
	log := c.log.With(zap.String("file", fileName))

	filter, err := NewDropFilter(c.opts.Drop, log)
	if err != nil {
		return nil, err
	}
	root := new(Node)
	if err := Parse(strings.NewReader(markup), root); err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", fileName)
	}
	cssImports, err := CSSImports([]byte(markup))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to scan stylesheets in %s", fileName)
	}

	imports := ExtractImages(root, log)
	removed := StripElements(root, "head", "script")
	removed += filter.Apply(root)
	RewriteAttrs(root, log)

	body, err := RenderString(root)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to render %s", fileName)
	}
	result := &Result{
		ComponentName: ComponentName(fileName),
		Imports:       imports,
		CSSImports:    cssImports,
		JSXBody:       PostProcess(body),
	}
	log.Debug("Converted",
		zap.String("component", result.ComponentName),
		zap.Int("imports", len(imports)),
		zap.Int("stylesheets", len(cssImports)),
		zap.Int("removed", removed))
	return result, nil
}

// ConvertComponent converts markup and renders the complete component source.
func (c *Converter) ConvertComponent(markup, fileName string) (*Result, string, error) {
	result, err := c.Convert(markup, fileName)
	if err != nil {
		return nil, "", err
	}
	source, err := result.Component(c.opts.Framework)
	if err != nil {
		return nil, "", err
	}
	return result, source, nil
}
