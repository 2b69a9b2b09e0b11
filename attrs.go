package reactfy

import (
	"strings"

	"go.uber.org/zap"
)

type attrRule struct {
	match   func(attr *Attr) bool
	rewrite func(attr *Attr, log *zap.Logger)
}

func named(name string) func(attr *Attr) bool {
	return func(attr *Attr) bool {
		return attr.Name == name
	}
}

// First matching rule wins.
var attrRules = []attrRule{
	{
		match: named("class"),
		rewrite: func(attr *Attr, _ *zap.Logger) {
			attr.Name = "className"
			attr.Value = strings.Join(strings.Fields(attr.Value), " ")
		},
	},
	{
		match: named("for"),
		rewrite: func(attr *Attr, _ *zap.Logger) {
			attr.Name = "htmlFor"
		},
	},
	{
		match: named("style"),
		rewrite: func(attr *Attr, log *zap.Logger) {
			style, dropped := ParseStyle(attr.Value)
			if len(dropped) > 0 {
				log.Debug("Skipping malformed style declarations", zap.Strings("declarations", dropped))
			}
			attr.Value = style.String()
			attr.Expr = true
		},
	},
	{
		match: func(attr *Attr) bool {
			return strings.Contains(attr.Name, "-") &&
				!strings.HasPrefix(attr.Name, "data-") &&
				!strings.HasPrefix(attr.Name, "aria-")
		},
		rewrite: func(attr *Attr, _ *zap.Logger) {
			attr.Name = Camelize(attr.Name)
		},
	},
}

// RewriteAttrs renames and re-encodes attributes of every element under root
// so they are accepted by JSX.
func RewriteAttrs(root *Node, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	root.Walk(func(node *Node) {
		if !node.IsElement() {
			return
		}
		for _, attr := range node.Attrs {
			if attr.Expr {
				continue
			}
			for _, rule := range attrRules {
				if rule.match(attr) {
					rule.rewrite(attr, log)
					break
				}
			}
		}
	})
}

type StyleDecl struct {
	Property string
	Value    string
}

// Style is an inline style object, declarations in source order.
type Style []StyleDecl

// ParseStyle splits an inline style attribute into declarations. Declarations
// without a colon or with an empty property are returned as dropped. A
// repeated property keeps its first position and its last value.
func ParseStyle(value string) (Style, []string) {
	var (
		style   Style
		dropped []string
	)
	for _, decl := range strings.Split(value, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, val, ok := strings.Cut(decl, ":")
		prop = strings.TrimSpace(prop)
		if !ok || prop == "" {
			dropped = append(dropped, decl)
			continue
		}
		style = style.set(Camelize(prop), strings.TrimSpace(val))
	}
	return style, dropped
}

func (s Style) set(prop, value string) Style {
	for idx := range s {
		if s[idx].Property == prop {
			s[idx].Value = value
			return s
		}
	}
	return append(s, StyleDecl{Property: prop, Value: value})
}

var styleValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// String encodes the style as an object literal, `{ color: 'red' }`.
func (s Style) String() string {
	pairs := make([]string, 0, len(s))
	for _, decl := range s {
		pairs = append(pairs, decl.Property+": '"+styleValueEscaper.Replace(decl.Value)+"'")
	}
	return "{ " + strings.Join(pairs, ", ") + " }"
}
