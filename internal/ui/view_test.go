package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/dockmenu/internal/dock"
	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsEntriesAndMarkup(t *testing.T) {
	h := newPreviewHarness(t, 0, 0)
	view := h.View()
	for _, want := range []string{"main", "File ›", "Docs  /docs", "Wrap ✓", "Quit", "Markup: File", `<li class="hover">`} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view\n%s", want, view)
		}
	}

	h.Send(key(tea.KeyEnter))
	view = h.View()
	if !strings.Contains(view, dividerRule) {
		t.Fatalf("expected divider rule before Save\n%s", view)
	}
	if !strings.Contains(view, "Markup: Open") || !strings.Contains(view, `href="/open"`) {
		t.Fatalf("expected Open markup\n%s", view)
	}
}

func TestViewSidePanelOnWideTerminal(t *testing.T) {
	h := newPreviewHarness(t, 120, 20)
	if !h.Model().hasSidePanel() {
		t.Fatal("expected side panel at 120 columns")
	}
	view := h.View()
	if !strings.Contains(view, "╭─ Markup: File") {
		t.Fatalf("expected bordered markup panel\n%s", view)
	}
	rows := strings.Split(view, "\n")
	if len(rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(rows))
	}

	narrow := newPreviewHarness(t, 60, 20)
	if narrow.Model().hasSidePanel() {
		t.Fatal("expected no side panel at 60 columns")
	}
}

func TestViewportScrollsLongLists(t *testing.T) {
	items := make([]menu.Item, 12)
	for i := range items {
		items[i] = menu.Item{Text: fmt.Sprintf("item-%02d", i+1)}
	}
	opts := dock.DefaultOptions()
	opts.Items = items
	m, err := dock.New(dock.Config{Options: opts, Element: dom.NewElement("div")})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	h := NewHarness(NewModel(m, nil, 120, 8, false))

	view := h.View()
	if strings.Contains(view, "item-10") {
		t.Fatalf("expected item-10 outside the initial viewport\n%s", view)
	}
	for i := 0; i < 9; i++ {
		h.Send(key(tea.KeyDown))
	}
	view = h.View()
	if !strings.Contains(view, "item-10") || strings.Contains(view, "item-01") {
		t.Fatalf("expected viewport to follow the cursor\n%s", view)
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	h := newPreviewHarness(t, 0, 0)
	if prompt := h.Model().filterPrompt(); !strings.Contains(prompt, "type to filter") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
	h.Type("do")
	if prompt := h.Model().filterPrompt(); !strings.Contains(prompt, "do") {
		t.Fatalf("expected filter text in prompt, got %q", prompt)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	if h.Model().currentLevel().Filter != "" {
		t.Fatal("expected ctrl+u to clear the filter")
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	h := newPreviewHarness(t, 0, 0)
	current := h.Model().currentLevel()
	current.SetFilter("abc", 3)

	if !h.Model().handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatal("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}
	if !h.Model().handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatal("expected right arrow to be handled")
	}
	if h.Model().handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatal("expected right arrow at the end to fall through")
	}
}
