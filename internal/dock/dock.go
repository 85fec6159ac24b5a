// Package dock ties the menu pieces together: it owns the item tree, decides
// when drawing may happen, renders into the container, hands the result to
// the interaction controller and publishes lifecycle notifications.
//
// Lifecycle:
//   - Data-driven menus go Uninitialized -> Drawing -> Drawn, immediately when
//     the container resolves, otherwise once the document becomes ready.
//   - Markup-driven menus (FromHTML) wait for the document, import the
//     container's existing list, then redraw into the same container:
//     Uninitialized -> Importing -> Drawing -> Drawn.
//   - A redraw replaces the container's children; it never patches them.
//   - A container that cannot be found once the document is ready leaves the
//     menu where it is. That is traced, not returned as an error.
package dock

import (
	"github.com/google/uuid"

	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/importer"
	"github.com/atomicstack/dockmenu/internal/interaction"
	"github.com/atomicstack/dockmenu/internal/logging"
	"github.com/atomicstack/dockmenu/internal/logging/events"
	"github.com/atomicstack/dockmenu/internal/menu"
	"github.com/atomicstack/dockmenu/internal/metric"
	"github.com/atomicstack/dockmenu/internal/observer"
	"github.com/atomicstack/dockmenu/internal/render"
)

// Notification names.
const (
	EventDrawBegin     = "drawBegin"
	EventDrawEnd       = "drawEnd"
	EventItemDrawBegin = "itemDrawBegin"
	EventItemDrawEnd   = "itemDrawEnd"
	EventItemClicked   = "itemClicked"
	EventItemFocused   = "itemFocused"
	EventItemBlurred   = "itemBlurred"
)

// Container classes.
const (
	ClassToolbar      = "toolbar"
	ClassWithDividers = "with-dividers"
	orientationPrefix = "orientation-"
)

// Draw metric sources.
const (
	SourceDefinition = "definition"
	SourceMarkup     = "markup"
)

// State is the lifecycle position of a menu.
type State int

const (
	StateUninitialized State = iota
	StateImporting
	StateDrawing
	StateDrawn
)

func (s State) String() string {
	switch s {
	case StateImporting:
		return "importing"
	case StateDrawing:
		return "drawing"
	case StateDrawn:
		return "drawn"
	default:
		return "uninitialized"
	}
}

// Notification is the payload of every menu notification. Fields that do not
// apply to a notification are left zero. Item is a copy: changing it does not
// touch the menu's tree. Path is the item's index path in that tree.
type Notification struct {
	Menu    *Menu
	Item    *menu.Item
	Path    []int
	Element *dom.Node
	Label   *dom.Node
	Event   *dom.Event
	Depth   int
}

// Registry maps menu ids to instances.
type Registry interface {
	Register(id string, m *Menu)
	Resolve(id string) (*Menu, bool)
}

// Listener registers fn for a notification before the first draw.
type Listener struct {
	Event string
	Fn    observer.Handler[Notification]
}

// Config wires a Menu. Only Options is required; Element overrides the
// Options.Container reference when set.
type Config struct {
	Options

	Element   *dom.Node
	Document  *dom.Document
	Registry  Registry
	Handlers  interaction.HandlerRegistry
	Loader    interaction.ContentLoader
	Metrics   *metric.Set
	Listeners []Listener
}

// Menu is a drawn (or drawable) menu instance.
type Menu struct {
	id        string
	opts      Options
	element   *dom.Node
	doc       *dom.Document
	metrics   *metric.Set
	items     []menu.Item
	state     State
	list      *dom.Node
	container *dom.Node
	deferred  bool

	ctrl    *interaction.Controller
	emitter observer.Emitter[Notification]
}

// New creates a menu, registers it, and starts drawing or importing as the
// options request. A draw error is returned together with the menu, which
// stays usable.
func New(cfg Config) (*Menu, error) {
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}
	opts := cfg.Options
	if opts.ID == "" {
		opts.ID = "dockmenu-" + uuid.NewString()
	}
	if opts.Orientation == "" {
		opts.Orientation = OrientationLeft
	}
	doc := cfg.Document
	if doc == nil {
		doc = dom.NewDocument()
		doc.SetReady()
	}
	m := &Menu{
		id:      opts.ID,
		opts:    opts,
		element: cfg.Element,
		doc:     doc,
		metrics: cfg.Metrics,
		items:   menu.Clone(opts.Items),
	}
	ctrlCfg := interaction.Config{
		Defaults: interaction.Defaults{Partner: opts.Partner, PartnerMethod: opts.PartnerMethod},
		Handlers: cfg.Handlers,
		Loader:   cfg.Loader,
		Notifier: m,
	}
	if cfg.Metrics != nil && cfg.Metrics.Clicks != nil {
		ctrlCfg.Clicks = cfg.Metrics.Clicks
	}
	m.ctrl = interaction.New(ctrlCfg)
	for _, l := range cfg.Listeners {
		m.emitter.On(l.Event, l.Fn)
	}
	if cfg.Registry != nil {
		cfg.Registry.Register(m.id, m)
	}

	switch {
	case opts.FromHTML:
		m.deferred = true
		events.Menu.Deferred(m.id, "import")
		doc.OnReady(func() {
			if err := m.ImportFromMarkup(); err != nil {
				logging.Error(err)
			}
		})
	case opts.DrawOnInit:
		if err := m.Draw(); err != nil {
			return m, err
		}
	}
	return m, nil
}

// ID returns the menu id.
func (m *Menu) ID() string { return m.id }

// State returns the lifecycle state.
func (m *Menu) State() State { return m.state }

// Options returns the options the menu was created with, id filled in.
func (m *Menu) Options() Options { return m.opts }

// Items returns a copy of the current item tree.
func (m *Menu) Items() []menu.Item { return menu.Clone(m.items) }

// List returns the drawn list element, or nil before the first draw.
func (m *Menu) List() *dom.Node { return m.list }

// Container returns the element the menu is drawn into.
func (m *Menu) Container() *dom.Node { return m.container }

// Document returns the document the menu resolves its container in.
func (m *Menu) Document() *dom.Document { return m.doc }

// Decision reports the click route bound by the last draw to the item at
// path, as given by Notification.Path or an index path into Items().
func (m *Menu) Decision(path ...int) (interaction.Decision, bool) {
	item := itemAt(m.items, path)
	if item == nil {
		return interaction.Decision{}, false
	}
	return m.ctrl.Decision(item)
}

func itemAt(items []menu.Item, path []int) *menu.Item {
	if len(path) == 0 {
		return nil
	}
	var item *menu.Item
	for _, idx := range path {
		if idx < 0 || idx >= len(items) {
			return nil
		}
		item = &items[idx]
		items = item.Children
	}
	return item
}

// pathOf finds the index path of an item pointer into the menu's own tree.
func (m *Menu) pathOf(item *menu.Item) []int {
	var found []int
	menu.Walk(m.items, func(path []int, candidate *menu.Item) bool {
		if found != nil {
			return false
		}
		if candidate == item {
			found = path
			return false
		}
		return true
	})
	return found
}

// snapshot copies item so listeners cannot rewrite the tree.
func snapshot(item *menu.Item) *menu.Item {
	if item == nil {
		return nil
	}
	dup := *item
	dup.Children = menu.Clone(item.Children)
	return &dup
}

// On registers a notification listener.
func (m *Menu) On(event string, fn observer.Handler[Notification]) observer.ListenerID {
	return m.emitter.On(event, fn)
}

// Off removes a notification listener.
func (m *Menu) Off(event string, id observer.ListenerID) {
	m.emitter.Off(event, id)
}

// Draw renders the items into the container. When the container cannot be
// resolved before the document is ready the draw is deferred, once.
func (m *Menu) Draw() error {
	container := m.resolveContainer()
	if container != nil {
		return m.drawInto(container)
	}
	if m.doc.Ready() {
		events.Menu.MissingContainer(m.id, m.opts.Container)
		return nil
	}
	if m.deferred {
		return nil
	}
	m.deferred = true
	events.Menu.Deferred(m.id, "container")
	m.doc.OnReady(func() {
		target := m.resolveContainer()
		if target == nil {
			events.Menu.MissingContainer(m.id, m.opts.Container)
			return
		}
		if err := m.drawInto(target); err != nil {
			logging.Error(err)
		}
	})
	return nil
}

// ImportFromMarkup replaces the items with the list found in the container
// and redraws. A missing container leaves the menu untouched.
func (m *Menu) ImportFromMarkup() error {
	container := m.resolveContainer()
	if container == nil {
		events.Menu.MissingContainer(m.id, m.opts.Container)
		return nil
	}
	m.setState(StateImporting)
	m.items = importer.Import(container)
	events.Menu.Imported(m.id, len(m.items))
	return m.drawInto(container)
}

func (m *Menu) resolveContainer() *dom.Node {
	if m.element != nil {
		return m.element
	}
	return m.doc.ElementByID(m.opts.Container)
}

func (m *Menu) drawInto(container *dom.Node) error {
	if err := menu.Validate(m.items); err != nil {
		events.Menu.Error(m.id, err)
		return err
	}
	prev := m.state
	m.setState(StateDrawing)
	m.emitter.Fire(EventDrawBegin, Notification{Menu: m})

	m.ctrl.Reset()
	list, err := render.Render(m.items, render.Options{
		Binder:      m.ctrl,
		OnItemBegin: m.itemHook(EventItemDrawBegin),
		OnItemEnd:   m.itemHook(EventItemDrawEnd),
	})
	if err != nil {
		m.setState(prev)
		events.Menu.Error(m.id, err)
		return err
	}

	m.decorate(container)
	container.RemoveChildren()
	container.AppendChild(list)
	m.container = container
	m.list = list
	m.setState(StateDrawn)
	if m.metrics != nil && m.metrics.Draws != nil {
		m.metrics.Draws.Increment(m.source())
	}
	events.Menu.Drawn(m.id, len(list.Elements("li")))
	m.emitter.Fire(EventDrawEnd, Notification{Menu: m, Element: list})
	return nil
}

func (m *Menu) decorate(container *dom.Node) {
	container.AddClass(ClassToolbar)
	if m.opts.CSSClass != "" {
		container.AddClass(m.opts.CSSClass)
	}
	if m.opts.Divider {
		container.AddClass(ClassWithDividers)
	} else {
		container.RemoveClass(ClassWithDividers)
	}
	container.RemoveClass(orientationPrefix+string(OrientationLeft), orientationPrefix+string(OrientationRight))
	container.AddClass(orientationPrefix + string(m.opts.Orientation))
}

// source labels draw metrics by where the items came from.
func (m *Menu) source() string {
	if m.opts.FromHTML {
		return SourceMarkup
	}
	return SourceDefinition
}

func (m *Menu) itemHook(event string) func(render.ItemContext) {
	return func(ctx render.ItemContext) {
		m.emitter.Fire(event, Notification{
			Menu:    m,
			Item:    snapshot(ctx.Item),
			Path:    m.pathOf(ctx.Item),
			Element: ctx.Element,
			Label:   ctx.Label,
			Depth:   ctx.Depth,
		})
	}
}

func (m *Menu) setState(next State) {
	if m.state == next {
		return
	}
	events.Menu.State(m.id, m.state.String(), next.String())
	m.state = next
}

func (m *Menu) notify(event string, item *menu.Item, evt *dom.Event) {
	n := Notification{Menu: m, Item: snapshot(item), Path: m.pathOf(item), Event: evt}
	if evt != nil && evt.CurrentTarget != nil {
		n.Label = evt.CurrentTarget
		n.Element = evt.CurrentTarget.Parent
	}
	m.emitter.Fire(event, n)
}

// ItemClicked implements interaction.Notifier.
func (m *Menu) ItemClicked(item *menu.Item, evt *dom.Event) {
	m.notify(EventItemClicked, item, evt)
}

// ItemFocused implements interaction.Notifier.
func (m *Menu) ItemFocused(item *menu.Item, evt *dom.Event) {
	m.notify(EventItemFocused, item, evt)
}

// ItemBlurred implements interaction.Notifier.
func (m *Menu) ItemBlurred(item *menu.Item, evt *dom.Event) {
	m.notify(EventItemBlurred, item, evt)
}
