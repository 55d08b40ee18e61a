package events

import "github.com/atomicstack/chainpanel/internal/logging"

type PanelTracer struct{}

type NavTracer struct{}

type SearchTracer struct{}

var (
	Panel  = PanelTracer{}
	Nav    = NavTracer{}
	Search = SearchTracer{}
)

func (PanelTracer) Emit(kind, command string) {
	logging.Trace("panel.emit", map[string]interface{}{"kind": kind, "command": command})
}

func (PanelTracer) Focus(control string) {
	logging.Trace("panel.focus", map[string]interface{}{"control": control})
}

func (NavTracer) Navigate(route string) {
	logging.Trace("nav.navigate", map[string]interface{}{"route": route})
}

func (NavTracer) Remote(route, target string) {
	logging.Trace("nav.remote", map[string]interface{}{"route": route, "target": target})
}

func (SearchTracer) Change(text string) {
	logging.Trace("search.change", map[string]interface{}{"text": text})
}

func (SearchTracer) Submit(query string) {
	logging.Trace("search.submit", map[string]interface{}{"query": query})
}

func (SearchTracer) Debug() {
	logging.Trace("search.debug", nil)
}
