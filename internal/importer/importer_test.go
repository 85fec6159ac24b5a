package importer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/dockmenu/internal/menu"
	"github.com/atomicstack/dockmenu/internal/render"
	"github.com/atomicstack/dockmenu/internal/testutil"
)

func TestRoundTripEqualsLossyProjection(t *testing.T) {
	cases := map[string][]menu.Item{
		"flat": {
			{Text: "A", URL: "/a"},
			{Text: "B"},
		},
		"divider between": {
			{Text: "A"}, {Type: menu.TypeDivider}, {Text: "B"}, {Text: "C"},
		},
		"leading and trailing dividers": {
			{Type: menu.TypeDivider}, {Text: "A"}, {Type: menu.TypeDivider}, {Type: menu.TypeDivider}, {Text: "B"}, {Type: menu.TypeDivider},
		},
		"nested with lost fields": {
			{ID: "file", Text: "File", Partner: "content", Children: []menu.Item{
				{Text: "Open", URL: "/open", HandlerKey: "open"},
				{Type: menu.TypeDivider},
				{Text: "Recent", Children: []menu.Item{
					{Text: "notes.md", URL: "/notes.md", Target: "_blank", PartnerMethod: "post"},
				}},
			}},
			{Text: "Wrap", Type: menu.TypeCheck, Selected: true},
			{Text: "Dark", Type: menu.TypeRadio, Selected: true},
			{Text: "Light", Type: menu.TypeRadio},
		},
		"whitespace label dropped": {
			{Text: "A"}, {Text: "   "}, {Text: "B"},
		},
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			ul, err := render.Render(items, render.Options{})
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			got := Import(ul)
			want := menu.Lossy(items)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch\nwant %#v\ngot  %#v", want, got)
			}
		})
	}
}

func TestImportRestoresDividerBeforeMarkedItem(t *testing.T) {
	items := []menu.Item{{Text: "A"}, {Type: menu.TypeDivider}, {Text: "B"}, {Text: "C"}}
	ul, err := render.Render(items, render.Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := Import(ul)
	want := []menu.Item{{Text: "A"}, {Type: menu.TypeDivider}, {Text: "B"}, {Text: "C"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestImportHTMLReadsHandWrittenMarkup(t *testing.T) {
	markup := `
<div id="menu">
  <ul>
    <li><a href="/home">Home</a></li>
    <li>
      <a href="#">Docs</a>
      <ul>
        <li><a href="/docs/intro">  Intro </a></li>
        <li class="divider"><a href="/docs/api" target="_blank">API</a></li>
        <li><a href="#"></a></li>
        <li><span>no label</span></li>
      </ul>
    </li>
  </ul>
</div>`
	items, err := ImportHTML(strings.NewReader(markup), "menu")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	want := []menu.Item{
		{Text: "Home", URL: "/home"},
		{Text: "Docs", Children: []menu.Item{
			{Text: "Intro", URL: "/docs/intro"},
			{Type: menu.TypeDivider},
			{Text: "API", URL: "/docs/api", Target: "_blank"},
		}},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected import\nwant %#v\ngot  %#v", want, items)
	}
	if texts := menu.Texts(items); !reflect.DeepEqual(texts, []string{"Home", "Docs", "Intro", "API"}) {
		t.Fatalf("unexpected document order %v", texts)
	}
}

func TestImportHTMLWithoutIDUsesFirstList(t *testing.T) {
	items, err := ImportHTML(strings.NewReader(`<p>x</p><ul><li><a>One</a></li></ul>`), "")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(items) != 1 || items[0].Text != "One" {
		t.Fatalf("unexpected items %#v", items)
	}
}

func TestImportHTMLUnknownID(t *testing.T) {
	if _, err := ImportHTML(strings.NewReader(`<ul></ul>`), "missing"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestImportWithoutListReturnsNil(t *testing.T) {
	if items := Import(nil); items != nil {
		t.Fatalf("expected nil, got %#v", items)
	}
}

func TestImportHTMLFromPageFixture(t *testing.T) {
	page := testutil.ReadFixture(t, "site_nav.html")
	items, err := ImportHTML(strings.NewReader(page), "site-nav")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := []menu.Item{
		{Text: "Home", URL: "/"},
		{Text: "Products", Children: []menu.Item{
			{Text: "Dock", URL: "/products/dock"},
			{Type: menu.TypeDivider},
			{Text: "Legacy", URL: "/products/legacy", Target: "_blank"},
		}},
		{Type: menu.TypeDivider},
		{Text: "Contact", URL: "/contact"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected items\nwant %#v\ngot  %#v", want, items)
	}
}

func TestImportHTMLAcceptsLegacyDividerClass(t *testing.T) {
	markup := `<ul>
  <li><a href="/a">A</a></li>
  <li class="mui-divider"><a href="/b">B</a></li>
  <li class="divider"><a href="/c">C</a></li>
</ul>`
	items, err := ImportHTML(strings.NewReader(markup), "")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	want := []menu.Item{
		{Text: "A", URL: "/a"},
		{Type: menu.TypeDivider},
		{Text: "B", URL: "/b"},
		{Type: menu.TypeDivider},
		{Text: "C", URL: "/c"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected items\nwant %#v\ngot  %#v", want, items)
	}
}
