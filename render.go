package reactfy

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`<`, "&lt;",
	`>`, "&gt;",
)

type Renderer struct {
	Writer *bufio.Writer
}

func (r *Renderer) writeString(s string) error {
	_, err := r.Writer.WriteString(s)
	return errors.WithStack(err)
}

func (r *Renderer) WriteCharData(node *Node) (bool, error) {
	if node.Name != TextNode {
		return false, nil
	}
	return true, r.writeString(node.Content)
}

func (r *Renderer) WriteComment(node *Node) (bool, error) {
	if node.Name != CommentNode {
		return false, nil
	}
	return true, r.writeString("<!--" + node.Content + "-->")
}

func (r *Renderer) WriteDoctype(node *Node) (bool, error) {
	if node.Name != DoctypeNode {
		return false, nil
	}
	return true, r.writeString("<!DOCTYPE " + node.Content + ">")
}

func (r *Renderer) WriteAttrs(node *Node) error {
	for _, attr := range node.Attrs {
		var err error
		if attr.Expr {
			err = r.writeString(" " + attr.Name + "={" + attr.Value + "}")
		} else {
			err = r.writeString(" " + attr.Name + `="` + attrEscaper.Replace(attr.Value) + `"`)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) Write(node *Node, bodyCB func(*Node) error) error {
	if node.Name == RootNode {
		return bodyCB(node)
	}
	// Write start element
	if err := r.writeString("<" + node.Name); err != nil {
		return err
	}
	if err := r.WriteAttrs(node); err != nil {
		return err
	}
	if voidElements[node.Name] {
		return r.writeString(" />")
	}
	if err := r.writeString(">"); err != nil {
		return err
	}
	if err := bodyCB(node); err != nil {
		return err
	}
	// Write end element
	return r.writeString("</" + node.Name + ">")
}

func (r *Renderer) RenderNode(node *Node) error {
	if rendered, err := r.WriteCharData(node); err != nil || rendered {
		return err
	}
	if rendered, err := r.WriteComment(node); err != nil || rendered {
		return err
	}
	if rendered, err := r.WriteDoctype(node); err != nil || rendered {
		return err
	}
	return r.Write(node, func(node *Node) error {
		for _, child := range node.Nodes {
			if err := r.RenderNode(child); err != nil {
				return err
			}
		}
		return nil
	})
}

func Render(w io.Writer, root *Node) error {
	if root == nil {
		return errors.WithStack(ErrUndefinedNode)
	}
	renderer := &Renderer{
		Writer: bufio.NewWriter(w),
	}
	if err := renderer.RenderNode(root); err != nil {
		return err
	}
	return errors.WithStack(renderer.Writer.Flush())
}

func RenderString(root *Node) (string, error) {
	w := &bytes.Buffer{}
	if err := Render(w, root); err != nil {
		return "", err
	}
	return w.String(), nil
}

var (
	placeholderPattern = regexp.MustCompile(`src="\{(.+?)\}"`)
	commentPattern     = regexp.MustCompile(`(?s)<!--(.*?)-->`)
	doctypePattern     = regexp.MustCompile(`(?i)<!DOCTYPE[^>]*>`)
	wrapperPattern     = regexp.MustCompile(`(?i)</?(?:html|body)(?:\s[^>]*)?>`)
	hrefPattern        = regexp.MustCompile(`href="[^"]*"`)
)

// PostProcess applies the text level fixups to rendered markup. The order of
// the steps is fixed.
func PostProcess(data string) string {
	data = placeholderPattern.ReplaceAllString(data, "src={${1}}")
	data = commentPattern.ReplaceAllString(data, "{/*${1}*/}")
	data = doctypePattern.ReplaceAllString(data, "")
	data = wrapperPattern.ReplaceAllString(data, "")
	// NOTE: every link target is dropped, anchors and mailto: included
	data = hrefPattern.ReplaceAllString(data, `href="#"`)
	return strings.TrimSpace(data)
}
