package ui

import (
	"strings"

	"github.com/muesli/reflow/wrap"
)

const (
	markupInlineMaxLines = 6
	markupPanelMinWidth  = 40
	markupPanelFraction  = 0.55
	markupScrollStep     = 3
)

// markupData is the rendered HTML of the entry under the cursor, wrapped to
// the width it will be shown at.
type markupData struct {
	label string
	lines []string
}

// activeMarkup serialises the li under the cursor. Hover classes applied by
// the interaction controller show up here as they change.
func (m *Model) activeMarkup(width int) *markupData {
	entry, ok := m.currentLevel().Current()
	if !ok || entry.Element == nil {
		return nil
	}
	if entry.Element != m.markupTarget {
		m.markupTarget = entry.Element
		m.markupScroll = 0
	}
	if width <= 0 {
		width = 80
	}
	wrapped := wrap.String(entry.Element.HTML(), width)
	return &markupData{label: entry.Label, lines: strings.Split(wrapped, "\n")}
}

// hasSidePanel reports whether the markup is drawn next to the items rather
// than below them.
func (m *Model) hasSidePanel() bool {
	return m.markupPanelWidth() > 0
}

// markupPanelWidth returns the width of the right-hand panel, or 0 when the
// terminal is too narrow to split.
func (m *Model) markupPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * markupPanelFraction)
	if w < markupPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) menuColumnWidth() int {
	return m.width - m.markupPanelWidth()
}

func inlineMarkupLines(data *markupData) []string {
	if data == nil {
		return nil
	}
	if len(data.lines) > markupInlineMaxLines {
		return data.lines[:markupInlineMaxLines]
	}
	return data.lines
}
