package state

import (
	"strconv"
	"strings"

	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/menu"
	"github.com/atomicstack/dockmenu/internal/render"
)

// Entry is one rendered menu item as the preview sees it.
type Entry struct {
	ID      string
	Label   string
	URL     string
	Marker  string
	Divider bool
	Branch  bool
	Element *dom.Node
	Anchor  *dom.Node
}

// Submenu returns the nested list of a branch entry.
func (e Entry) Submenu() *dom.Node {
	if e.Element == nil {
		return nil
	}
	return e.Element.FirstElement("ul")
}

// EntriesFromList reads the li children of list. IDs are dotted index paths
// below prefix.
func EntriesFromList(list *dom.Node, prefix string) []Entry {
	if list == nil {
		return nil
	}
	lis := list.Elements("li")
	entries := make([]Entry, 0, len(lis))
	for i, li := range lis {
		anchor := li.FirstElement("a")
		if anchor == nil {
			continue
		}
		id := strconv.Itoa(i)
		if prefix != "" {
			id = prefix + "." + id
		}
		entry := Entry{
			ID:      id,
			Label:   strings.TrimSpace(anchor.TextContent(render.IsMarker)),
			Divider: li.HasClass(render.ClassDivider),
			Branch:  li.FirstElement("ul") != nil,
			Element: li,
			Anchor:  anchor,
		}
		if href, _ := anchor.Attr("href"); href != menu.PlaceholderURL {
			entry.URL = href
		}
		if marker := anchor.Find(render.IsMarker); marker != nil {
			entry.Marker = marker.TextContent(nil)
		}
		entries = append(entries, entry)
	}
	return entries
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
