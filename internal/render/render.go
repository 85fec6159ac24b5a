// Package render turns a menu item tree into a nested list of elements.
//
// Each sibling list becomes a ul. Items become li elements holding an anchor
// label and, for branches, a nested ul. Dividers are not drawn as elements:
// the li that follows a divider carries the divider class instead, which is
// the encoding the importer reverses.
package render

import (
	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/menu"
)

// Structural classes shared with the importer and the interaction controller.
const (
	ClassDivider  = "divider"
	ClassArrow    = "arrow"
	ClassRadio    = "radio"
	ClassCheck    = "check"
	ClassSelected = "selected"
)

// Selection glyphs.
const (
	GlyphRadioOn  = "●"
	GlyphRadioOff = "○"
	GlyphCheckOn  = "✓"
	GlyphCheckOff = "☐"
)

// Binder attaches interaction behaviour to a freshly built item.
type Binder interface {
	Bind(item *menu.Item, element, label *dom.Node, depth int)
}

// ItemContext is handed to the per-item hooks. Label is nil in OnItemBegin.
type ItemContext struct {
	Item    *menu.Item
	Element *dom.Node
	Label   *dom.Node
	Depth   int
}

// Options tunes a render call. Every field is optional.
type Options struct {
	Binder      Binder
	OnItemBegin func(ItemContext)
	OnItemEnd   func(ItemContext)
}

// Render validates items and builds the list element for them. Items are
// referenced, not copied: binders and hooks receive pointers into the slice.
// Nothing is built when validation fails.
func Render(items []menu.Item, opts Options) (*dom.Node, error) {
	if err := menu.Validate(items); err != nil {
		return nil, err
	}
	return renderList(items, 1, opts), nil
}

func renderList(items []menu.Item, depth int, opts Options) *dom.Node {
	ul := dom.NewElement("ul")
	for idx := range items {
		item := &items[idx]
		if item.IsDivider() {
			continue
		}
		li := ul.AppendChild(dom.NewElement("li"))
		if idx > 0 && items[idx-1].IsDivider() {
			li.AddClass(ClassDivider)
		}
		ctx := ItemContext{Item: item, Element: li, Depth: depth}
		if opts.OnItemBegin != nil {
			opts.OnItemBegin(ctx)
		}
		ctx.Label = renderItem(item, li, depth, opts)
		if opts.OnItemEnd != nil {
			opts.OnItemEnd(ctx)
		}
	}
	return ul
}

func renderItem(item *menu.Item, li *dom.Node, depth int, opts Options) *dom.Node {
	label := li.AppendChild(dom.NewElement("a"))
	href := item.URL
	if href == "" {
		href = menu.PlaceholderURL
	}
	label.SetAttr("href", href)
	label.AppendChild(dom.NewText(item.Text))
	if marker := selectionMarker(*item); marker != nil {
		label.AppendChild(marker)
	}
	if opts.Binder != nil {
		opts.Binder.Bind(item, li, label, depth)
	}
	if item.Target != "" {
		label.SetAttr("target", item.Target)
	}
	if item.IsBranch() {
		li.AppendChild(renderList(item.Children, depth+1, opts))
		if depth > 1 {
			label.AddClass(ClassArrow)
		}
	}
	return label
}

func selectionMarker(item menu.Item) *dom.Node {
	var class, glyph string
	switch item.Kind() {
	case menu.TypeRadio:
		class, glyph = ClassRadio, GlyphRadioOff
		if item.Selected {
			glyph = GlyphRadioOn
		}
	case menu.TypeCheck:
		class, glyph = ClassCheck, GlyphCheckOff
		if item.Selected {
			glyph = GlyphCheckOn
		}
	default:
		return nil
	}
	span := dom.NewElement("span")
	span.AddClass(class)
	if item.Selected {
		span.AddClass(ClassSelected)
	}
	span.AppendChild(dom.NewText(glyph))
	return span
}

// IsMarker reports whether n is a selection marker produced by Render.
func IsMarker(n *dom.Node) bool {
	return n.IsElement("span") && (n.HasClass(ClassRadio) || n.HasClass(ClassCheck))
}
