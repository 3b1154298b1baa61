package state

// DialogState is the open or closed state of a section's dialog.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
)

func (s DialogState) String() string {
	if s == DialogOpen {
		return "open"
	}
	return "closed"
}

// Dialog tracks which dialog, if any, is showing. Closing a dialog has no
// effect on section data.
type Dialog struct {
	State   DialogState
	Section string
	Kind    string
}

// Open moves a closed dialog to open. It reports false if one is already open.
func (d *Dialog) Open(section, kind string) bool {
	if d.State == DialogOpen {
		return false
	}
	d.State = DialogOpen
	d.Section = section
	d.Kind = kind
	return true
}

// Close returns the dialog to closed, whether it was cancelled or confirmed.
func (d *Dialog) Close() bool {
	if d.State == DialogClosed {
		return false
	}
	*d = Dialog{}
	return true
}

func (d Dialog) IsOpen() bool { return d.State == DialogOpen }
