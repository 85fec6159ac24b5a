package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML parses a markup fragment and returns a body element holding the
// parsed nodes. Comments and doctypes are dropped.
func ParseHTML(r io.Reader) (*Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	body := NewElement("body")
	for _, hn := range nodes {
		if converted := fromHTML(hn); converted != nil {
			body.AppendChild(converted)
		}
	}
	return body, nil
}

// ParseDocument parses markup into a document that is not ready yet.
func ParseDocument(r io.Reader) (*Document, error) {
	body, err := ParseHTML(r)
	if err != nil {
		return nil, err
	}
	return &Document{Body: body}, nil
}

func fromHTML(hn *html.Node) *Node {
	switch hn.Type {
	case html.TextNode:
		return NewText(hn.Data)
	case html.ElementNode:
		n := NewElement(hn.Data)
		for _, a := range hn.Attr {
			if a.Namespace != "" {
				continue
			}
			n.SetAttr(a.Key, a.Val)
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if converted := fromHTML(c); converted != nil {
				n.AppendChild(converted)
			}
		}
		return n
	case html.DocumentNode:
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if converted := fromHTML(c); converted != nil {
				return converted
			}
		}
	}
	return nil
}

// RenderHTML writes n and its subtree as HTML.
func RenderHTML(w io.Writer, n *Node) error {
	return html.Render(w, toHTML(n))
}

// HTML returns the outer markup of n.
func (n *Node) HTML() string {
	var b strings.Builder
	if err := RenderHTML(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// InnerHTML returns the markup of n's children.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, child := range n.Children {
		if err := RenderHTML(&b, child); err != nil {
			return ""
		}
	}
	return b.String()
}

func toHTML(n *Node) *html.Node {
	if n.Type == TextNode {
		return &html.Node{Type: html.TextNode, Data: n.Data}
	}
	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if id := n.ID(); id != "" {
		hn.Attr = append(hn.Attr, html.Attribute{Key: "id", Val: id})
	}
	if len(n.classes) > 0 {
		hn.Attr = append(hn.Attr, html.Attribute{Key: "class", Val: strings.Join(n.classes, " ")})
	}
	for _, a := range n.attrs {
		if a.Key == "id" {
			continue
		}
		hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, child := range n.Children {
		hn.AppendChild(toHTML(child))
	}
	return hn
}
