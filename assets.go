package reactfy

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path"
	"slices"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
	"go.uber.org/zap"
)

// Import binds a generated identifier to a local asset module.
type Import struct {
	Identifier string
	Path       string
}

func (i Import) String() string {
	return fmt.Sprintf("import %s from '%s';", i.Identifier, i.Path)
}

// IsLocalSource reports whether src refers to a file next to the markup
// rather than a remote resource or an inline data URI.
func IsLocalSource(src string) bool {
	if src == "" || strings.HasPrefix(src, "http") || strings.HasPrefix(src, "//") {
		return false
	}
	u, err := url.Parse(src)
	if err != nil {
		return true
	}
	// single letter schemes are drive letters
	return len(u.Scheme) <= 1
}

// ImportPath turns a local src into a relative module path.
func ImportPath(src string) string {
	switch {
	case strings.HasPrefix(src, "./"), strings.HasPrefix(src, "../"):
		return src
	case strings.HasPrefix(src, "/"):
		return "." + src
	}
	return "./" + src
}

// Identifier builds the binding name for the image with the given index.
func Identifier(src string, index int) string {
	base := path.Base(strings.ReplaceAll(src, `\`, "/"))
	name := Sanitize(strings.TrimSuffix(base, path.Ext(base)))
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "_" + name
	}
	return fmt.Sprintf("%s%d", name, index)
}

// ExtractImages replaces the src of every local image with an expression
// referring to a generated identifier and returns the imports binding them.
// The index used for identifiers counts all images in document order. An
// image repeating an already imported source reuses its identifier.
func ExtractImages(root *Node, log *zap.Logger) []Import {
	if log == nil {
		log = zap.NewNop()
	}
	var imports []Import
	replacements := make(map[string]string)
	for idx, img := range root.Elements("img") {
		attr := img.Attrs.Find("src")
		if attr == nil || attr.Expr {
			continue
		}
		if !IsLocalSource(attr.Value) {
			log.Debug("Keeping image source", zap.String("src", attr.Value))
			continue
		}
		ident, ok := replacements[attr.Value]
		if !ok {
			ident = Identifier(attr.Value, idx)
			replacements[attr.Value] = ident
			imports = append(imports, Import{Identifier: ident, Path: ImportPath(attr.Value)})
		}
		attr.Value, attr.Expr = ident, true
	}
	return imports
}

// CSSImports scans raw markup for stylesheet links and returns a side effect
// import statement for each of them, local or remote. Links inside comments
// count as well.
func CSSImports(markup []byte) ([]string, error) {
	return scanStylesheets(markup, nil)
}

func scanStylesheets(markup []byte, imports []string) ([]string, error) {
	l := html.NewLexer(parse.NewInputBytes(markup))
	var (
		inLink    bool
		rel, href string
		hasHref   bool
	)
	for {
		tt, data := l.Next()
		switch tt {
		case html.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return imports, errors.WithStack(err)
			}
			return imports, nil
		case html.CommentToken:
			body, ok := bytes.CutPrefix(data, []byte("<!--"))
			if !ok {
				continue
			}
			body = bytes.TrimSuffix(body, []byte("-->"))
			var err error
			// the input buffer is reused by the lexer
			if imports, err = scanStylesheets(bytes.Clone(body), imports); err != nil {
				return imports, err
			}
		case html.StartTagToken:
			inLink = strings.EqualFold(string(l.Text()), "link")
			rel, href, hasHref = "", "", false
		case html.AttributeToken:
			if !inLink {
				continue
			}
			switch strings.ToLower(string(l.Text())) {
			case "rel":
				rel = unquote(l.AttrVal())
			case "href":
				href, hasHref = strings.TrimSpace(unquote(l.AttrVal())), true
			}
		case html.StartTagCloseToken, html.StartTagVoidToken:
			if inLink && hasHref && strings.EqualFold(strings.TrimSpace(rel), "stylesheet") {
				imports = append(imports, fmt.Sprintf("import '%s';", href))
			}
			inLink = false
		}
	}
}

func unquote(val []byte) string {
	s := string(val)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// StripElements removes every element with one of the given tag names.
func StripElements(root *Node, names ...string) int {
	return root.RemoveFunc(func(node *Node) bool {
		return slices.Contains(names, node.Name)
	})
}
