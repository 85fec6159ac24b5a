package ui

import (
	"fmt"
	"strings"
	"time"

	uistate "github.com/atomicstack/dockmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	footerHint    = "↑/↓ move  enter open/click  esc back  ctrl+c quit"
	dividerRule   = "──────"
	branchArrow   = "›"
	infoLifetime  = 5 * time.Second
	bottomBarRows = 2
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.menuHeader()
	if m.hasSidePanel() {
		return m.viewSideBySide(header)
	}
	return m.viewVertical(header)
}

// viewVertical is the single column layout, markup below the entries.
func (m *Model) viewVertical(header string) string {
	lines := m.menuLines(header, m.width)
	if data := m.activeMarkup(m.width); data != nil {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Markup: " + data.label, style: styles.MarkupTitle})
		for _, line := range inlineMarkupLines(data) {
			lines = append(lines, styledLine{text: line, style: styles.MarkupBody})
		}
	}
	lines = append(lines, m.trailerLines()...)
	lines = limitHeight(lines, m.height-bottomBarRows, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines) + "\n" + m.bottomBar()
}

// viewSideBySide renders the entries on the left and the markup panel on the
// right.
func (m *Model) viewSideBySide(header string) string {
	menuW := m.menuColumnWidth()
	panelW := m.markupPanelWidth()

	contentLines := append(m.menuLines(header, menuW), m.trailerLines()...)
	panelH := max(m.height-bottomBarRows, 1)
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}
	leftRows := strings.Split(renderLines(applyWidth(contentLines, menuW)), "\n")
	for i, row := range leftRows {
		leftRows[i] = fitWidth(row, menuW)
	}

	rightStr := m.renderMarkupPanel(m.activeMarkup(panelW-2), panelW, panelH)
	top := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(leftRows, "\n"), rightStr)
	return top + "\n" + m.bottomBar()
}

func (m *Model) menuLines(header string, width int) []styledLine {
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	current := m.currentLevel()
	if current == nil {
		return lines
	}
	m.syncViewport(current)
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		return append(lines, styledLine{text: msg, style: styles.Info})
	}
	start, display := visibleEntries(current, m.maxVisibleItems())
	for i, entry := range display {
		if entry.Divider && current.Filter == "" && i > 0 {
			lines = append(lines, styledLine{text: "  " + dividerRule, style: styles.Divider})
		}
		lines = append(lines, m.buildItemLine(entry, start+i == current.Cursor, width))
	}
	return lines
}

func visibleEntries(current *level, maxItems int) (int, []uistate.Entry) {
	items := current.Items
	if maxItems <= 0 || len(items) <= maxItems {
		return 0, items
	}
	start := current.ViewportOffset
	if start+maxItems > len(items) {
		start = len(items) - maxItems
		current.ViewportOffset = start
	}
	start = max(start, 0)
	return start, items[start : start+maxItems]
}

func (m *Model) trailerLines() []styledLine {
	var lines []styledLine
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.loading && m.pendingLabel != "" {
		lines = append(lines, styledLine{text: "Clicking " + m.pendingLabel + "…", style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerHint, style: styles.Footer})
	}
	return lines
}

func (m *Model) bottomBar() string {
	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottom := applyWidth([]styledLine{status}, m.width)
	return renderLines(bottom) + "\n" + m.filterPrompt()
}

// buildItemLine constructs a single styledLine for an entry. width is the
// target column width; the cursor line is padded so its background spans
// the column.
func (m *Model) buildItemLine(entry uistate.Entry, selected bool, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + entry.Label
	if entry.Marker != "" {
		text += " " + entry.Marker
	}
	if entry.Branch {
		text += " " + branchArrow
	}
	if entry.URL != "" {
		text += "  " + entry.URL
	}
	if width > 0 {
		if pad := width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// renderMarkupPanel builds the bordered markup box with exactly height rows
// and totalWidth columns.
func (m *Model) renderMarkupPanel(data *markupData, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := max(totalWidth-2, 1)
	innerH := max(height-2, 1)

	title := "Markup"
	scrollInfo := ""
	var body []string
	if data != nil {
		if label := strings.TrimSpace(data.label); label != "" {
			title = "Markup: " + label
		}
		maxOffset := max(len(data.lines)-innerH, 0)
		m.markupScroll = min(max(m.markupScroll, 0), maxOffset)
		end := min(m.markupScroll+innerH, len(data.lines))
		body = data.lines[m.markupScroll:end]
		scrollInfo = fmt.Sprintf(" %d/%d ", end, len(data.lines))
	}

	titleSeg := " " + title + " "
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(scrollInfo))
	if dashes < 0 {
		scrollInfo = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		titleSeg = " … "
		dashes = max(totalWidth-4-len([]rune(titleSeg)), 0)
	}
	rows := make([]string, 0, height)
	rows = append(rows, styled(styles.MarkupBorder, tlc+hz)+
		styled(styles.MarkupTitle, titleSeg)+
		styled(styles.MarkupBorder, strings.Repeat(hz, dashes))+
		styled(styles.MarkupScroll, scrollInfo)+
		styled(styles.MarkupBorder, hz+trc))
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(body) {
			content = body[i]
		}
		rows = append(rows, styled(styles.MarkupBorder, vt)+
			styled(styles.MarkupBody, fitWidth(content, innerW))+
			styled(styles.MarkupBorder, vt))
	}
	rows = append(rows, styled(styles.MarkupBorder, blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

// handleMouseMsg scrolls the markup panel with the wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || !m.hasSidePanel() {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.markupScroll = max(m.markupScroll-markupScrollStep, 0)
	case tea.MouseButtonWheelDown:
		m.markupScroll += markupScrollStep
	}
	return nil
}

func (m *Model) menuHeader() string {
	segments := make([]string, 0, len(m.stack))
	for i, l := range m.stack {
		title := strings.TrimSpace(l.Title)
		if i == 0 && title == "" {
			title = defaultRootTitle
		}
		if title != "" {
			segments = append(segments, title)
		}
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarRows
	if m.menuHeader() != "" {
		used++
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if current := m.currentLevel(); current != nil && current.Filter == "" {
		for _, entry := range current.Items {
			if entry.Divider {
				used++
			}
		}
	}
	if !m.hasSidePanel() {
		if data := m.activeMarkup(m.width); data != nil {
			used += 2 + len(inlineMarkupLines(data))
		}
	}
	return max(m.height-used, 1)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func styled(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

// fitWidth pads or truncates row to exactly width visible columns. Rows may
// already carry ANSI styling.
func fitWidth(row string, width int) string {
	w := lipgloss.Width(row)
	if w > width {
		return truncate.StringWithTail(row, uint(max(width-1, 0)), "…")
	}
	return row + strings.Repeat(" ", width-w)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, styledLine{text: truncateText("…", width)})
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		runes := []rune(line.text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			out[i] = styled(line.prefixStyle, string(runes[:line.highlightFrom])) +
				styled(line.style, string(runes[line.highlightFrom:]))
			continue
		}
		out[i] = styled(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
