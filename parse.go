package reactfy

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Elements that never have content or an end tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Elements allowed inside head, anything else implies the head has ended.
var headContent = map[string]bool{
	"base":     true,
	"link":     true,
	"meta":     true,
	"noscript": true,
	"script":   true,
	"style":    true,
	"template": true,
	"title":    true,
}

// Parse reads markup from r into root. Parsing is best effort: stray end tags
// are ignored and elements left open at the end of input are closed
// implicitly. Text is kept exactly as written, entities included.
func Parse(r io.Reader, root *Node) error {
	if root == nil {
		return errors.WithStack(ErrUndefinedNode)
	}
	root.Name = RootNode
	z := html.NewTokenizer(r)
	level := []*Node{root}
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return errors.WithStack(err)
			}
			return nil
		}
		parent := level[len(level)-1]
		switch tt {
		case html.TextToken:
			parent.Nodes = append(parent.Nodes, &Node{
				Name:    TextNode,
				Content: string(z.Raw()),
			})
		case html.CommentToken:
			parent.Nodes = append(parent.Nodes, &Node{
				Name:    CommentNode,
				Content: commentText(z),
			})
		case html.DoctypeToken:
			parent.Nodes = append(parent.Nodes, &Node{
				Name:    DoctypeNode,
				Content: z.Token().Data,
			})
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			// the head end tag is optional
			if parent.Name == "head" && !headContent[tok.Data] {
				level = level[:len(level)-1]
				parent = level[len(level)-1]
			}
			node := &Node{
				Name:  tok.Data,
				Attrs: make(Attrs, 0, len(tok.Attr)),
			}
			for _, attr := range tok.Attr {
				node.Attrs = append(node.Attrs, &Attr{Name: attr.Key, Value: attr.Val})
			}
			parent.Nodes = append(parent.Nodes, node)
			if tt == html.StartTagToken && !voidElements[node.Name] {
				level = append(level, node)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			// close the nearest open element with this name, implicitly
			// closing anything opened inside it
			for idx := len(level) - 1; idx > 0; idx-- {
				if level[idx].Name == string(name) {
					level = level[:idx]
					break
				}
			}
		}
	}
}

// commentText returns the comment body as written, without unescaping
// entities. Malformed comments fall back to the tokenizer's reading.
func commentText(z *html.Tokenizer) string {
	raw := string(z.Raw())
	if body, ok := strings.CutPrefix(raw, "<!--"); ok {
		if body, ok = strings.CutSuffix(body, "-->"); ok {
			return body
		}
	}
	return z.Token().Data
}
