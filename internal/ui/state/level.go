package state

import "github.com/atomicstack/dockmenu/internal/dom"

// Level encapsulates one open list of the preview: its entries, cursor,
// filter, viewport and the li currently hovered on its behalf.
type Level struct {
	ID             string
	Title          string
	Items          []Entry
	Full           []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	List           *dom.Node
	Hovered        *dom.Node
}

// NewLevel constructs a Level over the entries of list.
func NewLevel(id, title string, list *dom.Node) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		List:       list,
	}
	l.UpdateItems(EntriesFromList(list, id))
	return l
}

// IndexOf returns the index for a given entry identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the entry under the cursor.
func (l *Level) Current() (Entry, bool) {
	if l == nil || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the level entries, keeping the viewport if possible.
func (l *Level) UpdateItems(items []Entry) {
	prevOffset := l.ViewportOffset
	l.Full = CloneEntries(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
