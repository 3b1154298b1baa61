package events

import "github.com/atomicstack/loandesk/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Headless records a subcommand that prints instead of opening the dashboard.
func (AppTracer) Headless(command string, args []string) {
	logging.Trace("app.headless", map[string]interface{}{"command": command, "args": args})
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
