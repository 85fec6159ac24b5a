package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/logging/events"
	"github.com/atomicstack/dockmenu/internal/ui/command"
	uistate "github.com/atomicstack/dockmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoLabel = errors.New("entry has no label to click")

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		return tea.Quit
	}
	m.unhover(current)
	m.stack = m.stack[:len(m.stack)-1]
	parent := m.currentLevel()
	if idx := parent.IndexOf(current.ID); idx >= 0 {
		parent.Cursor = idx
	}
	m.syncViewport(parent)
	events.UI.MenuBack(current.ID)
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

// handleEnterKey opens the submenu of a branch entry and clicks the label of
// any other entry.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	entry, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.ID, entry.ID, entry.Label, current.Filter)
	if current.Filter != "" {
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		if idx := current.IndexOf(entry.ID); idx >= 0 {
			current.Cursor = idx
		}
		m.syncViewport(current)
	}
	if entry.Branch {
		m.openSubmenu(current, entry)
		return nil
	}
	m.loading = true
	m.pendingID = entry.ID
	m.pendingLabel = entry.Label
	m.errMsg = ""
	m.forceClearInfo()
	return m.clickCmd(entry)
}

func (m *Model) openSubmenu(parent *level, entry uistate.Entry) {
	child := uistate.NewLevel(entry.ID, entry.Label, entry.Submenu())
	m.stack = append(m.stack, child)
	m.syncViewport(child)
	events.UI.MenuOpen(child.ID, child.Title, len(child.Items))
	m.errMsg = ""
	if len(child.Items) == 0 {
		m.setInfo("No entries found.")
	} else {
		m.forceClearInfo()
	}
}

// clickCmd dispatches a click at the entry's label on the update loop, so
// menu listeners never run beside hover dispatch. The command only carries
// the summary of what the recorder saw back as a result.
func (m *Model) clickCmd(entry uistate.Entry) tea.Cmd {
	var (
		info string
		err  error
	)
	if entry.Anchor == nil {
		err = errNoLabel
	} else {
		m.doc.Click(entry.Anchor)
		info = Summary(m.recorder.Take())
	}
	return m.bus.Execute(command.Request{
		ID:    entry.ID,
		Label: entry.Label,
		Run: func() (string, error) {
			return info, err
		},
	})
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok || result.ID != m.pendingID {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	info := fmt.Sprintf("%s: %s", result.Label, result.Info)
	m.setInfo(info)
	events.Action.Success(info)
	return nil
}

// hover moves the simulated pointer of l onto the li under its cursor,
// dispatching mouseleave on the previous li and mouseenter on the new one.
func (m *Model) hover(l *level) {
	if l == nil {
		return
	}
	var next *dom.Node
	if entry, ok := l.Current(); ok {
		next = entry.Element
	}
	if l.Hovered == next {
		return
	}
	if l.Hovered != nil {
		m.doc.Dispatch(l.Hovered, dom.EventMouseLeave)
	}
	if next != nil {
		m.doc.Dispatch(next, dom.EventMouseEnter)
	}
	l.Hovered = next
}

func (m *Model) unhover(l *level) {
	if l == nil || l.Hovered == nil {
		return
	}
	m.doc.Dispatch(l.Hovered, dom.EventMouseLeave)
	l.Hovered = nil
}

func (m *Model) moveCursor(move func(*level) bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if move(current) {
		events.UI.MenuCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	page := m.maxVisibleItems()
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursor((*level).MoveCursorUp)
	case "down":
		m.moveCursor((*level).MoveCursorDown)
	case "pgup":
		m.moveCursor(func(l *level) bool { return l.MoveCursorPageUp(page) })
	case "pgdown":
		m.moveCursor(func(l *level) bool { return l.MoveCursorPageDown(page) })
	case "home":
		m.moveCursor((*level).MoveCursorHome)
	case "end":
		m.moveCursor((*level).MoveCursorEnd)
	}
	return nil
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
