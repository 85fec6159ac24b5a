package menu

import (
	"fmt"
	"strings"
)

// Type classifies how an item is drawn.
type Type string

const (
	TypeNormal  Type = "normal"
	TypeDivider Type = "divider"
	TypeRadio   Type = "radio"
	TypeCheck   Type = "check"
)

// Item is a node in the declarative menu tree.
type Item struct {
	// ID is optional and stays stable across redraws.
	ID string `yaml:"id,omitempty" json:"id,omitempty"`

	// Text is the display label. Required unless the item is a divider.
	Text string `yaml:"text,omitempty" json:"text,omitempty"`

	Type Type `yaml:"type,omitempty" json:"type,omitempty"`

	// Selected only means something for radio and check items. There is no
	// grouping between radio siblings; each item carries its own flag.
	Selected bool `yaml:"selected,omitempty" json:"selected,omitempty"`

	URL    string `yaml:"url,omitempty" json:"url,omitempty"`
	Target string `yaml:"target,omitempty" json:"target,omitempty"`

	// HandlerKey names an externally registered click handler.
	HandlerKey string `yaml:"handler,omitempty" json:"handler,omitempty"`

	// Partner and PartnerMethod override the menu-level partner routing.
	Partner       string `yaml:"partner,omitempty" json:"partner,omitempty"`
	PartnerMethod string `yaml:"partnerMethod,omitempty" json:"partnerMethod,omitempty"`

	Children []Item `yaml:"items,omitempty" json:"items,omitempty"`
}

// Kind returns the item type with the empty value normalised to TypeNormal.
func (i Item) Kind() Type {
	if i.Type == "" {
		return TypeNormal
	}
	return i.Type
}

// IsDivider reports whether the item is a pure separator.
func (i Item) IsDivider() bool {
	return i.Kind() == TypeDivider
}

// IsBranch reports whether the item has children.
func (i Item) IsBranch() bool {
	return len(i.Children) > 0
}

// String renders a compact description used in trace payloads and errors.
func (i Item) String() string {
	if i.IsDivider() {
		return "<divider>"
	}
	label := i.Text
	if i.ID != "" {
		label = fmt.Sprintf("%s (%s)", label, i.ID)
	}
	return label
}

// Clone returns a deep copy of items.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	for idx, item := range items {
		dup[idx] = item
		dup[idx].Children = Clone(item.Children)
	}
	return dup
}

// Walk visits every item depth-first in document order. Returning false from
// fn stops descent into that item's children.
func Walk(items []Item, fn func(path []int, item *Item) bool) {
	walk(items, nil, fn)
}

func walk(items []Item, prefix []int, fn func([]int, *Item) bool) {
	for idx := range items {
		path := append(append([]int(nil), prefix...), idx)
		if !fn(path, &items[idx]) {
			continue
		}
		walk(items[idx].Children, path, fn)
	}
}

// Texts returns the labels of all non-divider items in document order.
func Texts(items []Item) []string {
	var out []string
	Walk(items, func(_ []int, item *Item) bool {
		if !item.IsDivider() {
			out = append(out, item.Text)
		}
		return true
	})
	return out
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ".")
}
