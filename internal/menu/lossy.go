package menu

import "strings"

// PlaceholderURL is written as the href of items that have nowhere to go.
const PlaceholderURL = "#"

// Lossy returns the part of items that survives being rendered to markup and
// imported back. Markup carries only label text, url, target, nesting and the
// divider boundary marker, so the result drops:
//
//   - id, selected, handler key, partner and partner method
//   - radio/check types (everything that is not a divider becomes normal)
//   - items whose trimmed text is empty
//   - dividers that no item follows; runs of dividers collapse to one
//
// Callers building menus from markup must not depend on the dropped fields
// surviving a redraw.
func Lossy(items []Item) []Item {
	var out []Item
	pendingDivider := false
	for _, item := range items {
		if item.IsDivider() {
			pendingDivider = true
			continue
		}
		if pendingDivider {
			out = append(out, Item{Type: TypeDivider})
			pendingDivider = false
		}
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		url := item.URL
		if url == PlaceholderURL {
			url = ""
		}
		out = append(out, Item{
			Text:     text,
			URL:      url,
			Target:   item.Target,
			Children: Lossy(item.Children),
		})
	}
	return out
}
