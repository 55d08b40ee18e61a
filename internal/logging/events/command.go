package events

import "github.com/atomicstack/chainpanel/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(id, command string, depth int) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "command": command, "depth": depth})
}

func (CommandTracer) Skip(id, command string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "command": command})
}

func (CommandTracer) Result(id, command string, err error) {
	payload := map[string]interface{}{"id": id, "command": command}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
