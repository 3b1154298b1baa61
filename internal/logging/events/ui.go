package events

import "github.com/atomicstack/loandesk/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Action = ActionTracer{}
)

// Enter records enter on a row: a section on the sidebar or a record on a
// list.
func (UITracer) Enter(levelID, itemID, filter string) {
	logging.Trace("nav.enter", map[string]interface{}{
		"level":  levelID,
		"item":   itemID,
		"filter": filter,
	})
}

func (UITracer) Cursor(levelID string, cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"level": levelID, "cursor": cursor})
}

// SectionSelect records a section switch. fallback is set when section was
// not registered and the default was shown instead.
func (UITracer) SectionSelect(section, fallback string) {
	payload := map[string]interface{}{"section": section}
	if fallback != "" {
		payload["fallback"] = fallback
	}
	logging.Trace("section.select", payload)
}

func (UITracer) Detail(section, recordID string) {
	logging.Trace("record.detail", map[string]interface{}{"section": section, "record": recordID})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
