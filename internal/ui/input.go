package ui

import (
	"unicode"

	"github.com/atomicstack/dockmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPlaceholder = "(type to filter)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput routes filter editing keys to the open level. It reports
// whether the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		return m.editFilter(current, func() bool {
			current.SetFilter("", 0)
			return true
		}, func() { events.Filter.Cleared(current.ID) })
	case "ctrl+w":
		return m.editFilter(current, current.DeleteFilterWordBackward, func() {
			events.Filter.WordBackspace(current.ID, current.Filter)
		})
	case "ctrl+a":
		return m.moveFilterCursor(current, current.MoveFilterCursorStart, events.Filter.Cursor)
	case "ctrl+e":
		return m.moveFilterCursor(current, current.MoveFilterCursorEnd, events.Filter.Cursor)
	case "alt+b":
		return m.moveFilterCursor(current, current.MoveFilterCursorWordBackward, events.Filter.CursorWord)
	case "alt+f":
		return m.moveFilterCursor(current, current.MoveFilterCursorWordForward, events.Filter.CursorWord)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editFilter(current, current.DeleteFilterRuneBackward, func() {
			events.Filter.Backspace(current.ID, current.Filter)
		})
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(current, string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(current, " ")
	case tea.KeyLeft:
		return m.moveFilterCursor(current, current.MoveFilterCursorRuneBackward, events.Filter.Cursor)
	case tea.KeyRight:
		return m.moveFilterCursor(current, current.MoveFilterCursorRuneForward, events.Filter.Cursor)
	}
	return false
}

func (m *Model) appendToFilter(current *level, text string) bool {
	return m.editFilter(current, func() bool { return current.InsertFilterText(text) }, func() {
		events.Filter.Append(current.ID, current.Filter)
	})
}

// editFilter applies a filter text change, then resets messages and the
// viewport the same way for every edit.
func (m *Model) editFilter(current *level, edit func() bool, trace func()) bool {
	before := current.FilterCursorPos()
	if !edit() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
	m.errMsg = ""
	trace()
	m.syncViewport(current)
	return true
}

func (m *Model) moveFilterCursor(current *level, move func() bool, trace func(string, int)) bool {
	before := current.FilterCursorPos()
	if !move() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	trace(current.ID, current.FilterCursor)
	return true
}

// filterPrompt renders the filter line with the blinking caret, or the
// placeholder while the filter is empty.
func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return ">"
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	m.filterCursor.TextStyle = lipgloss.Style{}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if current.Filter == "" {
		runes := []rune(filterPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		return prompt + m.renderFilterCursor(string(runes[0])) + styled(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	caret, after := " ", ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = styled(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + styled(styles.Filter, string(runes[:pos])) + m.renderFilterCursor(caret) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
