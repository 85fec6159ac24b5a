package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/dockmenu/internal/backend"
	"github.com/atomicstack/dockmenu/internal/dock"
	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/theme"
	"github.com/atomicstack/dockmenu/internal/ui/command"
	uistate "github.com/atomicstack/dockmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "menu"
	rootLevelID         = ""
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the menu preview.
type Model struct {
	stack             []*level
	menu              *dock.Menu
	doc               *dom.Document
	recorder          *Recorder
	loading           bool
	pendingID         string
	pendingLabel      string
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	markupScroll      int
	markupTarget      *dom.Node
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	bus       *command.Bus
	rootTitle string

	source <-chan backend.Event
	reload ReloadFunc
}

// NewModel builds the preview over a drawn menu. rec must be the navigator,
// loader and handler registry the menu was created with so clicks can be
// reported.
func NewModel(m *dock.Menu, rec *Recorder, width, height int, showFooter bool) *Model {
	if rec == nil {
		rec = NewRecorder()
	}
	model := &Model{
		recorder:   rec,
		bus:        command.New(),
		showFooter: showFooter,
	}
	if width > 0 {
		model.width = width
		model.fixedWidth = true
	}
	if height > 0 {
		model.height = height
		model.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	model.filterCursor = c
	model.attach(m)
	model.registerHandlers()
	return model
}

// attach makes dm the previewed menu and opens its root list as the only
// level.
func (m *Model) attach(dm *dock.Menu) {
	m.menu = dm
	m.rootTitle = defaultRootTitle
	m.markupTarget = nil
	m.markupScroll = 0
	m.errMsg = ""
	m.doc = nil
	var list *dom.Node
	if dm != nil {
		m.doc = dm.Document()
		list = dm.List()
		if id := strings.TrimSpace(dm.ID()); id != "" {
			m.rootTitle = id
		}
		if list == nil {
			m.errMsg = "menu is not drawn (" + dm.State().String() + ")"
		}
	} else {
		m.errMsg = "no menu loaded"
	}
	if m.doc == nil {
		m.doc = dom.NewDocument()
	}
	root := uistate.NewLevel(rootLevelID, m.rootTitle, list)
	m.stack = []*level{root}
	m.syncViewport(root)
	m.hover(root)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	focus := m.filterCursor.Focus()
	if m.source == nil {
		return focus
	}
	return tea.Batch(focus, waitForSourceEvent(m.source))
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(sourceEventMsg{}):    m.handleSourceEventMsg,
		reflect.TypeOf(sourceDoneMsg{}):     m.handleSourceDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate keeps the simulated pointer on the cursor entry of the open
// level, then flushes any pending cursor blink.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.hover(m.currentLevel())
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
