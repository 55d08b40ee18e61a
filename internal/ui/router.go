package ui

import (
	"github.com/atomicstack/chainpanel/internal/logging/events"
	"github.com/atomicstack/chainpanel/internal/panel"
)

const defaultRoute = panel.RouteAccounts

// router tracks the active page. Pages themselves are rendered elsewhere;
// the panel only needs the route to highlight and the target a search
// resolved to.
type router struct {
	active panel.Route
	target string
}

func newRouter() *router {
	return &router{active: defaultRoute}
}

func (r *router) Navigate(route panel.Route) {
	r.active = route
	r.target = ""
}

func (r *router) Active() panel.Route {
	return r.active
}

// show navigates to a route requested by the store.
func (r *router) show(route, target string) bool {
	parsed, ok := panel.ParseRoute(route)
	if !ok {
		return false
	}
	events.Nav.Remote(route, target)
	r.active = parsed
	r.target = target
	return true
}

func (r *router) location() []string {
	if r.target == "" {
		return []string{string(r.active)}
	}
	return []string{string(r.active), r.target}
}
