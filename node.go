package reactfy

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

var ErrUndefinedNode = errors.New("node is undefined")

// Names of the non-element node kinds. Elements carry their tag name.
const (
	RootNode    = "::root"
	TextNode    = "::text"
	CommentNode = "::comment"
	DoctypeNode = "::doctype"
)

// Attr is a single element attribute. Expr attributes are rendered as
// `name={value}` instead of a quoted string.
type Attr struct {
	Name  string
	Value string
	Expr  bool
}

// Attrs keeps attributes in source order.
type Attrs []*Attr

func (na Attrs) Has(name string) bool {
	return na.Find(name) != nil
}

func (na Attrs) Find(name string) *Attr {
	for _, attr := range na {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}

func (na Attrs) Get(name string) (string, bool) {
	if attr := na.Find(name); attr != nil {
		return attr.Value, true
	}
	return "", false
}

// Set replaces the value of an existing attribute in place or appends a new one.
func (na *Attrs) Set(name, value string) *Attr {
	if attr := na.Find(name); attr != nil {
		attr.Value = value
		return attr
	}
	attr := &Attr{Name: name, Value: value}
	*na = append(*na, attr)
	return attr
}

type Node struct {
	Name    string
	Content string
	Attrs   Attrs
	Nodes   []*Node
}

func (node *Node) IsElement() bool {
	return !strings.HasPrefix(node.Name, "::")
}

func (node *Node) Copy(target *Node) {
	if target == nil {
		panic(ErrUndefinedNode)
	}
	target.Name = node.Name
	target.Content = node.Content
	target.Attrs = make(Attrs, len(node.Attrs))
	for idx, attr := range node.Attrs {
		clone := *attr
		target.Attrs[idx] = &clone
	}
	target.Nodes = make([]*Node, len(node.Nodes))
	for idx, current := range node.Nodes {
		target.Nodes[idx] = current.Clone()
	}
}

func (node *Node) Clone() *Node {
	copyNode := new(Node)
	node.Copy(copyNode)
	return copyNode
}

// Walk visits the subtree in document order, node itself first.
func (node *Node) Walk(fn func(*Node)) {
	fn(node)
	for _, child := range node.Nodes {
		child.Walk(fn)
	}
}

// Elements returns all elements with the given tag name in document order.
func (node *Node) Elements(name string) []*Node {
	var found []*Node
	node.Walk(func(current *Node) {
		if current.Name == name {
			found = append(found, current)
		}
	})
	return found
}

// RemoveFunc drops every descendant for which match returns true together
// with its subtree. Removed subtrees are not visited. It returns the number
// of removed nodes.
func (node *Node) RemoveFunc(match func(*Node) bool) int {
	removed := 0
	node.Nodes = slices.DeleteFunc(node.Nodes, func(child *Node) bool {
		if match(child) {
			removed++
			return true
		}
		return false
	})
	for _, child := range node.Nodes {
		removed += child.RemoveFunc(match)
	}
	return removed
}
