package render

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/menu"
	"github.com/atomicstack/dockmenu/internal/testutil"
)

func basicItems() []menu.Item {
	return []menu.Item{
		{Text: "File", Children: []menu.Item{
			{Text: "Open", URL: "/open"},
			{Type: menu.TypeDivider},
			{Text: "Save", URL: "/save"},
			{Text: "Recent", Children: []menu.Item{
				{Text: "a.txt", URL: "/a.txt", Target: "_blank"},
			}},
		}},
		{Text: "Wrap", Type: menu.TypeCheck, Selected: true},
		{Text: "Mode", Type: menu.TypeRadio},
	}
}

func TestRenderMatchesGolden(t *testing.T) {
	ul, err := Render(basicItems(), Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	testutil.AssertGolden(t, "render_basic.golden", ul.HTML())
}

func TestRenderMarksOnlyItemAfterDivider(t *testing.T) {
	items := []menu.Item{{Text: "A"}, {Type: menu.TypeDivider}, {Text: "B"}, {Text: "C"}}
	ul, err := Render(items, Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	lis := ul.Elements("li")
	if len(lis) != 3 {
		t.Fatalf("expected 3 li elements, got %d", len(lis))
	}
	var marked []string
	for _, li := range lis {
		if li.HasClass(ClassDivider) {
			marked = append(marked, li.FirstElement("a").TextContent(nil))
		}
	}
	if !reflect.DeepEqual(marked, []string{"B"}) {
		t.Fatalf("expected only B marked, got %v", marked)
	}
}

func TestRenderArrowOnlyBelowTopLevel(t *testing.T) {
	ul, err := Render(basicItems(), Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	arrows := ul.FindAll(func(n *dom.Node) bool { return n.IsElement("a") && n.HasClass(ClassArrow) })
	if len(arrows) != 1 || arrows[0].TextContent(nil) != "Recent" {
		t.Fatalf("expected a single arrow on Recent, got %d", len(arrows))
	}
}

func TestRenderRejectsMalformedTreeWithoutBuilding(t *testing.T) {
	var begun int
	_, err := Render([]menu.Item{{Text: "ok"}, {URL: "/missing-text"}}, Options{
		OnItemBegin: func(ItemContext) { begun++ },
	})
	if !errors.Is(err, menu.ErrMalformedItem) {
		t.Fatalf("expected ErrMalformedItem, got %v", err)
	}
	if begun != 0 {
		t.Fatalf("expected no hooks before validation passes, got %d", begun)
	}
}

type recordingBinder struct {
	items  []string
	depths []int
}

func (b *recordingBinder) Bind(item *menu.Item, element, label *dom.Node, depth int) {
	if !element.IsElement("li") || !label.IsElement("a") || label.Parent != element {
		panic("unexpected binder arguments")
	}
	b.items = append(b.items, item.Text)
	b.depths = append(b.depths, depth)
}

func TestRenderBindsEveryItemOnceAndWrapsHooks(t *testing.T) {
	items := basicItems()
	binder := &recordingBinder{}
	var hooks []string
	_, err := Render(items, Options{
		Binder: binder,
		OnItemBegin: func(ctx ItemContext) {
			if ctx.Label != nil {
				t.Fatal("expected no label before item is drawn")
			}
			hooks = append(hooks, "begin:"+ctx.Item.Text)
		},
		OnItemEnd: func(ctx ItemContext) {
			if ctx.Label == nil {
				t.Fatal("expected label after item is drawn")
			}
			hooks = append(hooks, "end:"+ctx.Item.Text)
		},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	wantItems := []string{"File", "Open", "Save", "Recent", "a.txt", "Wrap", "Mode"}
	if !reflect.DeepEqual(binder.items, wantItems) {
		t.Fatalf("expected binds %v, got %v", wantItems, binder.items)
	}
	if !reflect.DeepEqual(binder.depths, []int{1, 2, 2, 2, 3, 1, 1}) {
		t.Fatalf("unexpected depths %v", binder.depths)
	}
	wantHooks := []string{
		"begin:File",
		"begin:Open", "end:Open",
		"begin:Save", "end:Save",
		"begin:Recent", "begin:a.txt", "end:a.txt", "end:Recent",
		"end:File",
		"begin:Wrap", "end:Wrap",
		"begin:Mode", "end:Mode",
	}
	if !reflect.DeepEqual(hooks, wantHooks) {
		t.Fatalf("unexpected hook order\nwant %v\ngot  %v", wantHooks, hooks)
	}
}

func TestRenderHooksReferenceCallerItems(t *testing.T) {
	items := []menu.Item{{Text: "A"}}
	var seen *menu.Item
	if _, err := Render(items, Options{OnItemEnd: func(ctx ItemContext) { seen = ctx.Item }}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if seen != &items[0] {
		t.Fatal("expected hook to receive a pointer into the caller's slice")
	}
}

func TestIsMarker(t *testing.T) {
	ul, _ := Render([]menu.Item{{Text: "Wrap", Type: menu.TypeCheck}}, Options{})
	a := ul.FirstElement("li").FirstElement("a")
	span := a.FirstElement("span")
	if !IsMarker(span) {
		t.Fatal("expected span to be a marker")
	}
	if span.HasClass(ClassSelected) {
		t.Fatal("expected unselected marker")
	}
	if IsMarker(a) {
		t.Fatal("anchor is not a marker")
	}
}
