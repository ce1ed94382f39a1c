package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseFragment turns markup into detached elements owned by e's document
// and returns them along with the fragment's textContent. Markup the parser
// rejects yields no children and no text.
func (e *Element) parseFragment(markup string) ([]*Element, string) {
	tag := e.Tag
	if tag == "" {
		tag = "div"
	}
	ctxNode := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctxNode)
	if err != nil {
		return nil, ""
	}

	var (
		out  []*Element
		text strings.Builder
	)
	for _, n := range nodes {
		if el := e.fromNode(n, &text); el != nil {
			out = append(out, el)
		}
	}
	return out, text.String()
}

func (e *Element) fromNode(n *html.Node, text *strings.Builder) *Element {
	switch n.Type {
	case html.TextNode:
		text.WriteString(n.Data)
		return nil
	case html.ElementNode:
	default:
		return nil
	}

	el := &Element{Tag: n.Data, doc: e.doc}
	for _, a := range n.Attr {
		switch a.Key {
		case "id":
			el.ID = a.Val
		case "class":
			for _, c := range strings.Fields(a.Val) {
				el.AddClass(c)
			}
		default:
			el.SetAttr(a.Key, a.Val)
		}
	}

	var inner, markup strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := e.fromNode(c, &inner); child != nil {
			child.parent = el
			el.children = append(el.children, child)
		}
		_ = html.Render(&markup, c)
	}
	el.Text = inner.String()
	el.HTML = markup.String()
	text.WriteString(el.Text)
	return el
}
