package dom

// Navigator performs the default action of an anchor click.
type Navigator interface {
	Navigate(url, target string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url, target string)

func (f NavigatorFunc) Navigate(url, target string) { f(url, target) }

// Document owns a body element and a readiness signal.
type Document struct {
	Body      *Node
	Navigator Navigator

	ready   bool
	pending []func()
}

// NewDocument creates a document with an empty body that is not ready yet.
func NewDocument() *Document {
	return &Document{Body: NewElement("body")}
}

// Ready reports whether SetReady has been called.
func (d *Document) Ready() bool {
	return d.ready
}

// OnReady runs fn once the document is ready; immediately if it already is.
// Callbacks run in registration order and are never re-armed.
func (d *Document) OnReady(fn func()) {
	if d.ready {
		fn()
		return
	}
	d.pending = append(d.pending, fn)
}

// SetReady marks the document ready and flushes pending callbacks. Later
// calls are no-ops.
func (d *Document) SetReady() {
	if d.ready {
		return
	}
	d.ready = true
	pending := d.pending
	d.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// ElementByID finds an element anywhere in the body.
func (d *Document) ElementByID(id string) *Node {
	return d.Body.ElementByID(id)
}

// Dispatch fires a non-click event at target.
func (d *Document) Dispatch(target *Node, eventType string) *Event {
	evt := NewEvent(eventType)
	Dispatch(target, evt)
	return evt
}

// Click dispatches a click at target and, unless a listener prevented it,
// navigates to the href of the nearest enclosing anchor. It reports whether
// navigation happened.
func (d *Document) Click(target *Node) bool {
	evt := NewEvent(EventClick)
	if !Dispatch(target, evt) {
		return false
	}
	anchor := target.Closest("a")
	if anchor == nil {
		return false
	}
	href, ok := anchor.Attr("href")
	if !ok || href == "" || href == "#" {
		return false
	}
	if d.Navigator == nil {
		return false
	}
	linkTarget, _ := anchor.Attr("target")
	d.Navigator.Navigate(href, linkTarget)
	return true
}
