package reactfy

import (
	"github.com/casbin/govaluate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DropFilter removes elements matching any of a set of expressions. The
// expressions see the parameters tag, id and class and may call has(name)
// and attr(name) to inspect the rest of the attributes.
type DropFilter struct {
	log     *zap.Logger
	exprs   []*govaluate.EvaluableExpression
	current *Node
}

func NewDropFilter(exprs []string, log *zap.Logger) (*DropFilter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f := &DropFilter{log: log}
	functions := map[string]govaluate.ExpressionFunction{
		"has": func(arguments ...any) (any, error) {
			name, err := attrArgument(arguments)
			if err != nil {
				return nil, err
			}
			return f.current.Attrs.Has(name), nil
		},
		"attr": func(arguments ...any) (any, error) {
			name, err := attrArgument(arguments)
			if err != nil {
				return nil, err
			}
			value, _ := f.current.Attrs.Get(name)
			return value, nil
		},
	}
	for _, value := range exprs {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(value, functions)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid drop expression %q", value)
		}
		f.exprs = append(f.exprs, expr)
	}
	return f, nil
}

func attrArgument(arguments []any) (string, error) {
	if len(arguments) != 1 {
		return "", errors.Errorf("expected one argument, got %d", len(arguments))
	}
	name, ok := arguments[0].(string)
	if !ok {
		return "", errors.Errorf("expected attribute name, got %T", arguments[0])
	}
	return name, nil
}

// Match reports whether node is an element selected by any expression.
// Expressions failing to evaluate or producing non boolean results do not
// match.
func (f *DropFilter) Match(node *Node) bool {
	if !node.IsElement() || len(f.exprs) == 0 {
		return false
	}
	f.current = node
	defer func() { f.current = nil }()
	id, _ := node.Attrs.Get("id")
	class, _ := node.Attrs.Get("class")
	params := map[string]any{
		"tag":   node.Name,
		"id":    id,
		"class": class,
	}
	for _, expr := range f.exprs {
		matched, err := Eval[bool](expr, params)
		if err != nil {
			f.log.Debug("Drop expression failed", zap.String("expr", expr.String()), zap.String("tag", node.Name), zap.Error(err))
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// Apply removes all matching elements under root.
func (f *DropFilter) Apply(root *Node) int {
	return root.RemoveFunc(f.Match)
}
