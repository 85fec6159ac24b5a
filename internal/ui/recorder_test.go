package ui

import (
	"reflect"
	"testing"

	"github.com/atomicstack/dockmenu/internal/menu"
)

func TestRecorderNotes(t *testing.T) {
	rec := NewRecorder()
	rec.Navigate("/open", "")
	rec.Navigate("/a", "_blank")
	rec.Load("/docs", "content", "")
	handler, ok := rec.Lookup("save")
	if !ok {
		t.Fatal("expected every key to resolve")
	}
	handler(&menu.Item{Text: "Save"}, nil)

	want := []string{
		"navigate /open",
		"navigate /a (target _blank)",
		"load /docs into content",
		"handler save(Save)",
	}
	if got := rec.Take(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected notes %v", got)
	}
	if got := rec.Take(); len(got) != 0 {
		t.Fatalf("expected notes cleared, got %v", got)
	}
	if Summary(nil) != "no action" || Summary(want[:2]) != "navigate /open; navigate /a (target _blank)" {
		t.Fatal("unexpected summary")
	}
}
