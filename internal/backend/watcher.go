package backend

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/loandesk/internal/domain"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindDataset Kind = iota
)

// Event conveys a reloaded dataset or the error that prevented loading it.
// Recovered events carry no data: the file is readable again but has not
// changed since the last load.
type Event struct {
	Kind      Kind
	Path      string
	Data      domain.Dataset
	Err       error
	Recovered bool
}

// Loader reads a dataset file.
type Loader func(path string) (domain.Dataset, error)

var statFn = os.Stat

// Watcher polls a dataset file at a fixed interval and publishes an event
// each time its modification time or size changes and then holds still for
// one interval.
type Watcher struct {
	path     string
	interval time.Duration
	load     Loader

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	settle  settler
	lastErr string
}

// NewWatcher creates a watcher for path. The file's current state is taken
// as the baseline, so only later changes produce events.
func NewWatcher(path string, interval time.Duration, load Loader) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	if info, err := statFn(path); err == nil {
		w.settle.current = stampOf(info)
	}

	w.startDatasetPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Stop cancels the watcher. The poller exits after its current check
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startDatasetPoller() {
	w.wg.Add(1)
	go w.poll(KindDataset, w.check)
}

// check reports whether there is something to publish: a freshly loaded
// dataset, a load or stat error, or the clearing of an earlier stat error.
// A stat error is reported once until it clears.
func (w *Watcher) check() (Event, bool) {
	info, err := statFn(w.path)
	if err != nil {
		if err.Error() == w.lastErr {
			return Event{}, false
		}
		w.lastErr = err.Error()
		return Event{Err: fmt.Errorf("stat dataset: %w", err)}, true
	}
	recovered := w.lastErr != ""
	w.lastErr = ""
	if !w.settle.observe(stampOf(info)) {
		return Event{Recovered: true}, recovered
	}
	ds, err := w.load(w.path)
	if err != nil {
		return Event{Err: err}, true
	}
	return Event{Data: ds}, true
}

func (w *Watcher) poll(kind Kind, fetch func() (Event, bool)) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			evt, changed := fetch()
			if !changed {
				continue
			}
			evt.Kind = kind
			evt.Path = w.path
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}
