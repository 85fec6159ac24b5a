// Package interaction owns the per-list hover state of a drawn menu and
// routes label clicks to a registered handler, a partner content load, or the
// anchor's own navigation.
package interaction

import (
	"github.com/atomicstack/dockmenu/internal/dom"
	"github.com/atomicstack/dockmenu/internal/logging/events"
	"github.com/atomicstack/dockmenu/internal/menu"
	"github.com/atomicstack/dockmenu/internal/metric"
)

// ClassHover marks the hovered li of a list.
const ClassHover = "hover"

// Handler is an externally registered click callback.
type Handler func(item *menu.Item, evt *dom.Event)

// HandlerRegistry looks up handlers by key at click time.
type HandlerRegistry interface {
	Lookup(key string) (Handler, bool)
}

// HandlerMap is a HandlerRegistry backed by a map.
type HandlerMap map[string]Handler

func (m HandlerMap) Lookup(key string) (Handler, bool) {
	h, ok := m[key]
	return h, ok
}

// ContentLoader performs a partner content load.
type ContentLoader interface {
	Load(url, target, method string)
}

// LoaderFunc adapts a function to ContentLoader.
type LoaderFunc func(url, target, method string)

func (f LoaderFunc) Load(url, target, method string) { f(url, target, method) }

// Notifier receives item notifications after the controller has acted.
type Notifier interface {
	ItemClicked(item *menu.Item, evt *dom.Event)
	ItemFocused(item *menu.Item, evt *dom.Event)
	ItemBlurred(item *menu.Item, evt *dom.Event)
}

// Config wires a Controller. Every field is optional.
type Config struct {
	Defaults Defaults
	Handlers HandlerRegistry
	Loader   ContentLoader
	Notifier Notifier
	Clicks   metric.IncrementalCounter
}

// Controller binds hover and click behaviour to rendered items. It satisfies
// render.Binder.
type Controller struct {
	cfg       Config
	decisions map[*menu.Item]Decision
}

// New creates a controller.
func New(cfg Config) *Controller {
	return &Controller{cfg: cfg, decisions: make(map[*menu.Item]Decision)}
}

// Decision returns the route bound to item during the last render.
func (c *Controller) Decision(item *menu.Item) (Decision, bool) {
	d, ok := c.decisions[item]
	return d, ok
}

// Reset forgets the decisions of a previous render.
func (c *Controller) Reset() {
	c.decisions = make(map[*menu.Item]Decision)
}

// Bind attaches hover listeners to element and click, focus and blur
// listeners to label. The click route is resolved here, once per render.
func (c *Controller) Bind(item *menu.Item, element, label *dom.Node, depth int) {
	c.bindHover(item, element, label, depth)

	decision := Resolve(*item, c.cfg.Defaults)
	c.decisions[item] = decision
	label.On(dom.EventClick, func(evt *dom.Event) {
		c.dispatch(item, decision, evt)
	})
	label.On(dom.EventFocus, func(evt *dom.Event) {
		if c.cfg.Notifier != nil {
			c.cfg.Notifier.ItemFocused(item, evt)
		}
	})
	label.On(dom.EventBlur, func(evt *dom.Event) {
		if c.cfg.Notifier != nil {
			c.cfg.Notifier.ItemBlurred(item, evt)
		}
	})
}

func (c *Controller) bindHover(item *menu.Item, element, label *dom.Node, depth int) {
	// Events bubbling up from a nested list belong to that list's own items.
	owns := func(evt *dom.Event) bool {
		return evt.Target.Closest("li") == element
	}
	element.On(dom.EventMouseEnter, func(evt *dom.Event) {
		if !owns(evt) {
			return
		}
		for _, sibling := range element.Siblings() {
			sibling.RemoveClass(ClassHover)
		}
		element.AddClass(ClassHover)
		events.Hover.Enter(item.Text, depth)
	})
	element.On(dom.EventMouseLeave, func(evt *dom.Event) {
		if !owns(evt) {
			return
		}
		element.RemoveClass(ClassHover)
		events.Hover.Leave(item.Text, depth)
	})
	label.On(dom.EventMouseLeave, func(evt *dom.Event) {
		evt.StopPropagation()
	})
}

func (c *Controller) dispatch(item *menu.Item, decision Decision, evt *dom.Event) {
	events.Click.Route(item.Text, decision.Route.String(), decision.URL)
	switch decision.Route {
	case RouteHandler:
		evt.PreventDefault()
		var handler Handler
		ok := false
		if c.cfg.Handlers != nil {
			handler, ok = c.cfg.Handlers.Lookup(decision.HandlerKey)
		}
		if !ok || handler == nil {
			events.Click.UnknownHandler(item.Text, decision.HandlerKey)
			break
		}
		dup := *item
		dup.Children = menu.Clone(item.Children)
		handler(&dup, evt)
	case RoutePartner:
		evt.PreventDefault()
		events.Click.Partner(decision.URL, decision.Target, decision.Method)
		if c.cfg.Loader != nil {
			c.cfg.Loader.Load(decision.URL, decision.Target, decision.Method)
		}
	case RouteNavigate:
		// The anchor's default action navigates unless a listener prevents it.
	default:
		evt.PreventDefault()
	}
	if c.cfg.Clicks != nil {
		c.cfg.Clicks.Increment(decision.Route.String())
	}
	if c.cfg.Notifier != nil {
		c.cfg.Notifier.ItemClicked(item, evt)
	}
}
