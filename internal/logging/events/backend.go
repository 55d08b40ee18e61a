package events

import "github.com/atomicstack/chainpanel/internal/logging"

type BackendTracer struct{}

type SettingsTracer struct{}

type NodeTracer struct{}

var (
	Backend  = BackendTracer{}
	Settings = SettingsTracer{}
	Node     = NodeTracer{}
)

func (BackendTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (SettingsTracer) Reload(path string, blocktime float64, networkID string) {
	logging.Trace("settings.reload", map[string]interface{}{"path": path, "blocktime": blocktime, "networkId": networkID})
}

func (SettingsTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("settings.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (NodeTracer) Block(number uint64, forced bool) {
	logging.Trace("node.block", map[string]interface{}{"number": number, "forced": forced})
}

func (NodeTracer) Revert(depth int, block uint64) {
	logging.Trace("node.revert", map[string]interface{}{"depth": depth, "block": block})
}
