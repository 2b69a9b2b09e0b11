package reactfy

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/casbin/govaluate"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultComponentName is used when nothing usable is left of a file name.
const DefaultComponentName = "MyComponent"

var (
	nonWordPattern   = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
	separatorPattern = regexp.MustCompile(`[-_\s]+`)

	// symbols slug would otherwise spell out as words
	symbolPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s-]+`)
)

func Eval[T any](expr *govaluate.EvaluableExpression, params map[string]any) (T, error) {
	var zero T
	response, err := expr.Evaluate(params)
	if err != nil {
		return zero, errors.WithStack(err)
	}
	value, ok := response.(T)
	if !ok {
		return zero, errors.Errorf("unexpected result type %T for %q", response, expr.String())
	}
	return value, nil
}

// Camelize turns a hyphenated name into camelCase: the first segment is
// lowercased, the following ones title-cased.
func Camelize(name string) string {
	parts := strings.Split(name, "-")
	lower, title := cases.Lower(language.Und), cases.Title(language.Und)
	var b strings.Builder
	b.WriteString(lower.String(parts[0]))
	for _, part := range parts[1:] {
		b.WriteString(title.String(part))
	}
	return b.String()
}

// Sanitize collapses every run of non-word characters into a single underscore.
func Sanitize(name string) string {
	return nonWordPattern.ReplaceAllString(name, "_")
}

// ComponentName derives a component identifier from a file name.
func ComponentName(fileName string) string {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var words []string
	for _, word := range separatorPattern.Split(slug.Make(symbolPattern.ReplaceAllString(base, "")), -1) {
		if word != "" {
			words = append(words, word)
		}
	}
	if len(words) == 0 {
		return DefaultComponentName
	}
	lower, title := cases.Lower(language.Und), cases.Title(language.Und)
	var b strings.Builder
	b.WriteString(lower.String(words[0]))
	for _, word := range words[1:] {
		b.WriteString(title.String(word))
	}
	name := b.String()
	if unicode.IsDigit([]rune(name)[0]) {
		name = "_" + name
	}
	return name
}
