// Package importer rebuilds a menu item tree from rendered or hand-written
// list markup. It is the inverse of render, but a lossy one: see menu.Lossy
// for exactly what comes back.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/menu"
	"github.com/atomicstack/dockmenu/internal/render"
)

// Import reads the list under root. root may be the ul itself or an element
// whose first ul child holds the menu. A root without a list yields nil.
func Import(root *dom.Node) []menu.Item {
	if root == nil {
		return nil
	}
	list := root
	if !root.IsElement("ul") {
		list = root.FirstElement("ul")
	}
	if list == nil {
		return nil
	}
	return importList(list)
}

func importList(ul *dom.Node) []menu.Item {
	var items []menu.Item
	for _, li := range ul.Elements("li") {
		if isDividerBoundary(li) {
			items = append(items, menu.Item{Type: menu.TypeDivider})
		}
		item, ok := importItem(li)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// Hand-written legacy markup marks dividers with mui-divider.
const classLegacyDivider = "mui-divider"

func isDividerBoundary(li *dom.Node) bool {
	return li.HasClass(render.ClassDivider) || li.HasClass(classLegacyDivider)
}

func importItem(li *dom.Node) (menu.Item, bool) {
	label := li.FirstElement("a")
	if label == nil {
		return menu.Item{}, false
	}
	text := strings.TrimSpace(label.TextContent(render.IsMarker))
	if text == "" {
		return menu.Item{}, false
	}
	item := menu.Item{Text: text}
	if href, ok := label.Attr("href"); ok && href != menu.PlaceholderURL {
		item.URL = href
	}
	if target, ok := label.Attr("target"); ok {
		item.Target = target
	}
	if nested := li.FirstElement("ul"); nested != nil {
		item.Children = importList(nested)
	}
	return item, true
}

// ImportHTML parses markup and imports the element with the given id, or the
// first list in the markup when id is empty.
func ImportHTML(r io.Reader, id string) ([]menu.Item, error) {
	body, err := dom.ParseHTML(r)
	if err != nil {
		return nil, err
	}
	root := body
	if id != "" {
		root = body.ElementByID(id)
		if root == nil {
			return nil, fmt.Errorf("no element with id %q", id)
		}
	} else if list := body.Find(func(n *dom.Node) bool { return n.IsElement("ul") }); list != nil {
		root = list
	}
	return Import(root), nil
}
