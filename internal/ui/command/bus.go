package command

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/atomicstack/loandesk/internal/logging/events"
	"github.com/atomicstack/loandesk/internal/menu"
)

// Request encapsulates an action invocation. Item carries the record the
// action targets; marked records are joined by newlines in Item.ID.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

// Bus runs dialog, clipboard and other section actions. At most one request
// per ID runs at a time, and every request ends in a message so the caller
// can leave its loading state.
type Bus struct {
	mu       sync.Mutex
	inflight map[string]struct{}
	newRef   func() string
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{inflight: make(map[string]struct{}), newRef: uuid.NewString}
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace
// logs. A request whose ID is still running resolves to an error result.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	ref := b.newRef()
	if !b.claim(req.ID) {
		events.Command.Busy(ref, req.ID, req.Label)
		return func() tea.Msg {
			return menu.ActionResult{Err: fmt.Errorf("%s is already running", req.Label)}
		}
	}
	events.Command.Queue(ref, req.ID, req.Label)
	return func() tea.Msg {
		defer b.release(req.ID)
		if req.Handler == nil {
			events.Command.Skip(ref, req.ID, req.Label)
			return menu.ActionResult{}
		}
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(ref, req.ID, req.Label)
			return menu.ActionResult{}
		}
		msg := cmd()
		events.Command.Result(ref, req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Running reports whether a request with id has been queued and not yet
// finished.
func (b *Bus) Running(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.inflight[id]
	return ok
}

func (b *Bus) claim(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.inflight[id]; busy {
		return false
	}
	b.inflight[id] = struct{}{}
	return true
}

func (b *Bus) release(id string) {
	b.mu.Lock()
	delete(b.inflight, id)
	b.mu.Unlock()
}
