package state

import (
	"testing"

	"github.com/atomicstack/dockmenu/internal/menu"
	"github.com/atomicstack/dockmenu/internal/render"
)

func TestEntriesFromRenderedList(t *testing.T) {
	list, err := render.Render([]menu.Item{
		{Text: "File", Children: []menu.Item{{Text: "Open", URL: "/open"}}},
		{Type: menu.TypeDivider},
		{Text: "Wrap", Type: menu.TypeCheck, Selected: true},
		{Text: "Help", URL: "/help"},
	}, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	entries := EntriesFromList(list, "")
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	file, wrap, help := entries[0], entries[1], entries[2]
	if file.ID != "0" || !file.Branch || file.URL != "" || file.Submenu() == nil {
		t.Fatalf("unexpected branch entry %#v", file)
	}
	if !wrap.Divider || wrap.Label != "Wrap" || wrap.Marker != render.GlyphCheckOn {
		t.Fatalf("unexpected check entry %#v", wrap)
	}
	if help.URL != "/help" || help.Branch || help.Divider {
		t.Fatalf("unexpected leaf entry %#v", help)
	}

	nested := EntriesFromList(file.Submenu(), file.ID)
	if len(nested) != 1 || nested[0].ID != "0.0" || nested[0].Label != "Open" {
		t.Fatalf("unexpected nested entries %#v", nested)
	}
}

func TestNewLevelOverList(t *testing.T) {
	list, err := render.Render([]menu.Item{{Text: "A"}, {Text: "B"}}, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	level := NewLevel("", "Root", list)
	if len(level.Items) != 2 || level.Cursor != 0 || level.List != list {
		t.Fatalf("unexpected level %#v", level)
	}
	if idx := level.IndexOf("1"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	nested := NewLevel("3", "File", list)
	if idx := nested.IndexOf("3.1"); idx != 1 {
		t.Fatalf("expected prefixed index 1, got %d", idx)
	}
	if idx := nested.IndexOf("1"); idx != -1 {
		t.Fatalf("expected unprefixed id to miss, got %d", idx)
	}
	if entry, ok := level.Current(); !ok || entry.Label != "A" {
		t.Fatalf("expected current entry A, got %#v", entry)
	}
	if len(NewLevel("empty", "", nil).Items) != 0 {
		t.Fatal("expected no entries without a list")
	}
}
