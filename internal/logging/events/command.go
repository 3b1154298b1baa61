package events

import "github.com/atomicstack/loandesk/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

// Every command entry carries the request id, its label and a per-run ref
// so queue and result lines can be matched up.

func (CommandTracer) trace(event, ref, id, label string, extra map[string]interface{}) {
	payload := map[string]interface{}{"ref": ref, "id": id, "label": label}
	for k, v := range extra {
		payload[k] = v
	}
	logging.Trace(event, payload)
}

func (c CommandTracer) Queue(ref, id, label string) { c.trace("command.queue", ref, id, label, nil) }

// Busy records a request dropped because an identical one is still running.
func (c CommandTracer) Busy(ref, id, label string) { c.trace("command.busy", ref, id, label, nil) }

func (c CommandTracer) Skip(ref, id, label string) { c.trace("command.skip", ref, id, label, nil) }
func (c CommandTracer) NoOp(ref, id, label string) { c.trace("command.noop", ref, id, label, nil) }

func (c CommandTracer) Result(ref, id, label, msgType string) {
	c.trace("command.result", ref, id, label, map[string]interface{}{"msg": msgType})
}
