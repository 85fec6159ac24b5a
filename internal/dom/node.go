// Package dom is a small element tree used as the visual structure of a menu.
// Nodes carry a tag, ordered attributes, a class list and event listeners,
// and can be converted to and from HTML.
package dom

import (
	"slices"
	"strings"
)

// NodeType distinguishes elements from text.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Attr is a single attribute. Class and id are stored like any other
// attribute except that class is kept as a list on the node.
type Attr struct {
	Key string
	Val string
}

// Node is an element or a text node.
type Node struct {
	Type     NodeType
	Tag      string
	Data     string
	Parent   *Node
	Children []*Node

	attrs     []Attr
	classes   []string
	listeners map[string][]listenerEntry
	nextID    ListenerID
}

// NewElement creates a detached element.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: strings.ToLower(tag)}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Data: text}
}

// IsElement reports whether n is an element with the given tag. An empty tag
// matches any element.
func (n *Node) IsElement(tag string) bool {
	if n == nil || n.Type != ElementNode {
		return false
	}
	return tag == "" || n.Tag == tag
}

// AppendChild attaches child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) *Node {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// RemoveChild detaches child from n. It is a no-op when child belongs to
// another parent.
func (n *Node) RemoveChild(child *Node) {
	idx := slices.Index(n.Children, child)
	if idx < 0 {
		return
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	child.Parent = nil
}

// RemoveChildren detaches every child of n.
func (n *Node) RemoveChildren() {
	for _, child := range n.Children {
		child.Parent = nil
	}
	n.Children = nil
}

// Elements returns the element children of n, optionally filtered by tag.
func (n *Node) Elements(tag string) []*Node {
	var out []*Node
	for _, child := range n.Children {
		if child.IsElement(tag) {
			out = append(out, child)
		}
	}
	return out
}

// FirstElement returns the first element child with the given tag.
func (n *Node) FirstElement(tag string) *Node {
	for _, child := range n.Children {
		if child.IsElement(tag) {
			return child
		}
	}
	return nil
}

// Siblings returns the element siblings of n that share its tag, n included.
func (n *Node) Siblings() []*Node {
	if n.Parent == nil {
		return []*Node{n}
	}
	return n.Parent.Elements(n.Tag)
}

// Attr looks up an attribute value.
func (n *Node) Attr(key string) (string, bool) {
	if key == "class" {
		if len(n.classes) == 0 {
			return "", false
		}
		return strings.Join(n.classes, " "), true
	}
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute, keeping insertion order.
func (n *Node) SetAttr(key, val string) {
	if key == "class" {
		n.classes = nil
		n.AddClass(strings.Fields(val)...)
		return
	}
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Val = val
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Val: val})
}

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(key string) {
	if key == "class" {
		n.classes = nil
		return
	}
	n.attrs = slices.DeleteFunc(n.attrs, func(a Attr) bool { return a.Key == key })
}

// Attrs returns a copy of the non-class attributes in insertion order.
func (n *Node) Attrs() []Attr {
	return slices.Clone(n.attrs)
}

// ID returns the id attribute.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// AddClass appends classes that are not present yet.
func (n *Node) AddClass(classes ...string) {
	for _, c := range classes {
		if c == "" || slices.Contains(n.classes, c) {
			continue
		}
		n.classes = append(n.classes, c)
	}
}

// RemoveClass drops classes from the list.
func (n *Node) RemoveClass(classes ...string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool {
		return slices.Contains(classes, c)
	})
}

// HasClass reports whether the class is present.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// TextContent concatenates every descendant text node. Subtrees for which
// skip returns true are ignored; skip may be nil.
func (n *Node) TextContent(skip func(*Node) bool) string {
	var b strings.Builder
	n.writeText(&b, skip)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder, skip func(*Node) bool) {
	if n.Type == TextNode {
		b.WriteString(n.Data)
		return
	}
	for _, child := range n.Children {
		if skip != nil && child.Type == ElementNode && skip(child) {
			continue
		}
		child.writeText(b, skip)
	}
}

// Find returns the first node in document order, n included, for which match
// returns true.
func (n *Node) Find(match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every matching node in document order.
func (n *Node) FindAll(match func(*Node) bool) []*Node {
	var out []*Node
	var visit func(*Node)
	visit = func(cur *Node) {
		if match(cur) {
			out = append(out, cur)
		}
		for _, child := range cur.Children {
			visit(child)
		}
	}
	visit(n)
	return out
}

// ElementByID finds a descendant element with the given id.
func (n *Node) ElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	return n.Find(func(cur *Node) bool {
		return cur.Type == ElementNode && cur.ID() == id
	})
}

// Closest walks from n towards the root and returns the first element with
// the given tag.
func (n *Node) Closest(tag string) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.IsElement(tag) {
			return cur
		}
	}
	return nil
}

// Depth counts the ancestors of n that have the given tag.
func (n *Node) Depth(tag string) int {
	depth := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.IsElement(tag) {
			depth++
		}
	}
	return depth
}
