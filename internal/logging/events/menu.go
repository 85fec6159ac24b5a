package events

import "github.com/atomicstack/dockmenu/internal/logging"

type MenuTracer struct{}

type ClickTracer struct{}

type HoverTracer struct{}

var (
	Menu  = MenuTracer{}
	Click = ClickTracer{}
	Hover = HoverTracer{}
)

func (MenuTracer) State(menuID, from, to string) {
	logging.Trace("menu.state", map[string]interface{}{"menu": menuID, "from": from, "to": to})
}

func (MenuTracer) Deferred(menuID, reason string) {
	logging.Trace("menu.deferred", map[string]interface{}{"menu": menuID, "reason": reason})
}

func (MenuTracer) MissingContainer(menuID, ref string) {
	logging.Trace("menu.missing-container", map[string]interface{}{"menu": menuID, "ref": ref})
}

func (MenuTracer) Drawn(menuID string, items int) {
	logging.Trace("menu.drawn", map[string]interface{}{"menu": menuID, "items": items})
}

func (MenuTracer) Imported(menuID string, items int) {
	logging.Trace("menu.imported", map[string]interface{}{"menu": menuID, "items": items})
}

func (MenuTracer) Error(menuID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.error", map[string]interface{}{"menu": menuID, "error": err.Error()})
}

func (ClickTracer) Route(text, route, url string) {
	logging.Trace("click.route", map[string]interface{}{"item": text, "route": route, "url": url})
}

func (ClickTracer) UnknownHandler(text, key string) {
	logging.Trace("click.unknown-handler", map[string]interface{}{"item": text, "handler": key})
}

func (ClickTracer) Partner(url, target, method string) {
	logging.Trace("click.partner", map[string]interface{}{"url": url, "target": target, "method": method})
}

func (HoverTracer) Enter(text string, depth int) {
	logging.Trace("hover.enter", map[string]interface{}{"item": text, "depth": depth})
}

func (HoverTracer) Leave(text string, depth int) {
	logging.Trace("hover.leave", map[string]interface{}{"item": text, "depth": depth})
}
