package events

import "github.com/atomicstack/loandesk/internal/logging"

type DialogTracer struct{}

type ClipboardTracer struct{}

type DatasetTracer struct{}

type dialogReason string

const (
	DialogReasonEscape dialogReason = "escape"
	DialogReasonReload dialogReason = "reload"
)

var (
	Dialog    = DialogTracer{}
	Clipboard = ClipboardTracer{}
	Dataset   = DatasetTracer{}
)

func (DialogTracer) Open(section, kind, target string) {
	logging.Trace("dialog.open", map[string]interface{}{"section": section, "kind": kind, "target": target})
}

func (DialogTracer) Cancel(section, kind string, reason dialogReason) {
	logging.Trace("dialog.cancel", map[string]interface{}{"section": section, "kind": kind, "reason": string(reason)})
}

// Submit records a confirmed draft. The values are logged and then dropped.
func (DialogTracer) Submit(draftID, section, kind, target string, values map[string]string) {
	logging.Trace("dialog.submit", map[string]interface{}{
		"draft":   draftID,
		"section": section,
		"kind":    kind,
		"target":  target,
		"values":  values,
	})
}

func (ClipboardTracer) Copy(section string, count int) {
	logging.Trace("clipboard.copy", map[string]interface{}{"section": section, "count": count})
}

func (DatasetTracer) Reload(path string, version uint64) {
	logging.Trace("dataset.reload", map[string]interface{}{"path": path, "version": version})
}

func (DatasetTracer) Recovered(path string) {
	logging.Trace("dataset.recovered", map[string]interface{}{"path": path})
}

func (DatasetTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("dataset.error", map[string]interface{}{"path": path, "error": err.Error()})
}
