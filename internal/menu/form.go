package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/atomicstack/loandesk/internal/listing"
	"github.com/atomicstack/loandesk/internal/logging/events"
)

var newDraftID = uuid.NewString

// FieldView is a render-ready dialog field.
type FieldView struct {
	Label   string
	Input   string
	Choice  bool
	Focused bool
}

// DraftForm collects the values of an add or edit dialog. Submitting it
// closes the dialog without changing any records.
type DraftForm struct {
	ctx    Context
	kind   string
	spec   listing.DialogSpec
	inputs []textinput.Model
	choice []int
	focus  int
}

func NewDraftForm(prompt DraftPrompt) *DraftForm {
	f := &DraftForm{
		ctx:    prompt.Context,
		kind:   prompt.Kind,
		spec:   prompt.Spec,
		inputs: make([]textinput.Model, len(prompt.Spec.Fields)),
		choice: make([]int, len(prompt.Spec.Fields)),
	}
	for i, field := range prompt.Spec.Fields {
		f.choice[i] = -1
		if len(field.Options) > 0 {
			f.choice[i] = 0
			for j, opt := range field.Options {
				if opt == field.Value {
					f.choice[i] = j
				}
			}
			continue
		}
		ti := textinput.New()
		ti.Placeholder = field.Placeholder
		ti.CharLimit = 128
		ti.Prompt = ""
		ti.SetValue(field.Value)
		f.inputs[i] = ti
	}
	f.focusField(0)
	return f
}

func (f *DraftForm) Context() Context { return f.ctx }
func (f *DraftForm) Kind() string     { return f.kind }
func (f *DraftForm) Title() string    { return f.spec.Title }
func (f *DraftForm) Target() string   { return f.spec.Target }
func (f *DraftForm) Focused() int     { return f.focus }
func (f *DraftForm) SubmitLabel() string {
	if f.spec.Submit != "" {
		return f.spec.Submit
	}
	return "Submit"
}

func (f *DraftForm) Help() string {
	return fmt.Sprintf("Tab/↑↓ move · ←→ choose · Enter on last field or Ctrl+S to %s · Esc to cancel.", strings.ToLower(f.SubmitLabel()))
}

func (f *DraftForm) isChoice(i int) bool {
	return i >= 0 && i < len(f.choice) && f.choice[i] >= 0
}

// Values returns the current value of every field keyed by field key.
func (f *DraftForm) Values() map[string]string {
	values := make(map[string]string, len(f.spec.Fields))
	for i, field := range f.spec.Fields {
		if f.isChoice(i) {
			values[field.Key] = field.Options[f.choice[i]]
			continue
		}
		values[field.Key] = strings.TrimSpace(f.inputs[i].Value())
	}
	return values
}

func (f *DraftForm) Fields() []FieldView {
	views := make([]FieldView, 0, len(f.spec.Fields))
	for i, field := range f.spec.Fields {
		view := FieldView{Label: field.Label, Focused: i == f.focus}
		if f.isChoice(i) {
			view.Choice = true
			view.Input = fmt.Sprintf("‹ %s ›", field.Options[f.choice[i]])
		} else {
			view.Input = f.inputs[i].View()
		}
		views = append(views, view)
	}
	return views
}

func (f *DraftForm) focusField(i int) tea.Cmd {
	if len(f.spec.Fields) == 0 {
		f.focus = 0
		return nil
	}
	n := len(f.spec.Fields)
	i = ((i % n) + n) % n
	if !f.isChoice(f.focus) && f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = i
	if f.isChoice(i) {
		return nil
	}
	return f.inputs[i].Focus()
}

func (f *DraftForm) cycleChoice(delta int) {
	if !f.isChoice(f.focus) {
		return
	}
	n := len(f.spec.Fields[f.focus].Options)
	f.choice[f.focus] = ((f.choice[f.focus]+delta)%n + n) % n
}

func (f *DraftForm) submit() tea.Cmd {
	id := newDraftID()
	values := f.Values()
	events.Dialog.Submit(id, f.ctx.Section, f.kind, f.spec.Target, values)
	return SubmitDraftCommand(f.ctx, f.spec, id)
}

// Update applies msg and reports whether the form was submitted or
// cancelled.
func (f *DraftForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, false
	}
	switch m.String() {
	case "esc":
		events.Dialog.Cancel(f.ctx.Section, f.kind, events.DialogReasonEscape)
		return nil, false, true
	case "ctrl+s":
		return f.submit(), true, false
	case "enter":
		if f.focus >= len(f.spec.Fields)-1 {
			return f.submit(), true, false
		}
		return f.focusField(f.focus + 1), false, false
	case "tab", "down":
		return f.focusField(f.focus + 1), false, false
	case "shift+tab", "up":
		return f.focusField(f.focus - 1), false, false
	case "left":
		if f.isChoice(f.focus) {
			f.cycleChoice(-1)
			return nil, false, false
		}
	case "right", " ":
		if f.isChoice(f.focus) {
			f.cycleChoice(1)
			return nil, false, false
		}
	case "ctrl+u":
		if !f.isChoice(f.focus) && f.focus < len(f.inputs) {
			f.inputs[f.focus].SetValue("")
			f.inputs[f.focus].CursorStart()
			return nil, false, false
		}
	}
	if f.isChoice(f.focus) || f.focus >= len(f.inputs) {
		return nil, false, false
	}
	updated, cmd := f.inputs[f.focus].Update(msg)
	f.inputs[f.focus] = updated
	return cmd, false, false
}

// SubmitDraftCommand reports a confirmed dialog. The draft is discarded.
func SubmitDraftCommand(ctx Context, spec listing.DialogSpec, draftID string) tea.Cmd {
	return func() tea.Msg {
		short := draftID
		if len(short) > 8 {
			short = short[:8]
		}
		subject := spec.Title
		if spec.Target != "" {
			subject = fmt.Sprintf("%s %s", spec.Title, spec.Target)
		}
		return ActionResult{Info: fmt.Sprintf("%s: draft %s recorded, no changes applied", subject, short)}
	}
}
