package ui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/dockmenu/internal/backend"
	"github.com/atomicstack/dockmenu/internal/dock"
	"github.com/atomicstack/dockmenu/internal/logging/events"
)

// ReloadFunc rebuilds the previewed menu after its source changed. The new
// menu must report to the same Recorder.
type ReloadFunc func() (*dock.Menu, error)

// WatchSource rebuilds the preview through reload every time ch reports a
// change. Call before the program starts.
func (m *Model) WatchSource(ch <-chan backend.Event, reload ReloadFunc) {
	m.source = ch
	m.reload = reload
}

func waitForSourceEvent(ch <-chan backend.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return sourceDoneMsg{}
		}
		return sourceEventMsg{event: evt}
	}
}

type sourceEventMsg struct {
	event backend.Event
}

type sourceDoneMsg struct{}

func (m *Model) handleSourceEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(sourceEventMsg)
	if !ok {
		return nil
	}
	m.applySourceEvent(eventMsg.event)
	return waitForSourceEvent(m.source)
}

func (m *Model) handleSourceDoneMsg(tea.Msg) tea.Cmd {
	m.source = nil
	return nil
}

func (m *Model) applySourceEvent(evt backend.Event) {
	events.UI.SourceChanged(evt.Path, evt.Err)
	if evt.Err != nil {
		m.errMsg = fmt.Sprintf("%s: %v", filepath.Base(evt.Path), evt.Err)
		return
	}
	if m.reload == nil {
		return
	}
	next, err := m.reload()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.recorder.Take()
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.attach(next)
	m.setInfo("Reloaded " + filepath.Base(evt.Path))
}
