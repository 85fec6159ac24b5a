package interaction

import (
	"strings"

	"github.com/atomicstack/dockmenu/internal/menu"
)

// Route is the single click behaviour bound to an item.
type Route int

const (
	RouteNone Route = iota
	RouteHandler
	RoutePartner
	RouteNavigate
)

func (r Route) String() string {
	switch r {
	case RouteHandler:
		return "handler"
	case RoutePartner:
		return "partner"
	case RouteNavigate:
		return "navigate"
	default:
		return "none"
	}
}

// Defaults are the menu-level partner settings items fall back to.
type Defaults struct {
	Partner       string
	PartnerMethod string
}

// Decision is the resolved click behaviour for one item.
type Decision struct {
	Route      Route
	URL        string
	Target     string
	Method     string
	HandlerKey string
}

// Resolve picks the click behaviour for item. Precedence: registered handler,
// then partner content load, then plain navigation, then nothing.
func Resolve(item menu.Item, defaults Defaults) Decision {
	if key := strings.TrimSpace(item.HandlerKey); key != "" {
		return Decision{Route: RouteHandler, URL: item.URL, HandlerKey: key}
	}
	partner := item.Partner
	if partner == "" {
		partner = defaults.Partner
	}
	if partner != "" && item.URL != "" {
		method := item.PartnerMethod
		if method == "" {
			method = defaults.PartnerMethod
		}
		return Decision{Route: RoutePartner, URL: item.URL, Target: partner, Method: method}
	}
	if item.URL != "" {
		return Decision{Route: RouteNavigate, URL: item.URL, Target: item.Target}
	}
	return Decision{Route: RouteNone}
}
