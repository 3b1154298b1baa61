package backend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/loandesk/internal/domain"
)

func fakeLoader(path string) (domain.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Dataset{}, err
	}
	return domain.Dataset{Company: string(raw)}, nil
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed")
		}
		return evt
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return Event{}
}

func TestWatcherEmitsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := NewWatcher(path, 10*time.Millisecond, fakeLoader)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(path, []byte("second!"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	future := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	evt := nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected error: %v", evt.Err)
	}
	if evt.Kind != KindDataset || evt.Path != path || evt.Data.Company != "second!" {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestWatcherReportsLoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	boom := errors.New("bad yaml")
	w := NewWatcher(path, 10*time.Millisecond, func(string) (domain.Dataset, error) {
		return domain.Dataset{}, boom
	})
	defer func() {
		w.Stop()
		w.Wait()
	}()

	future := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	evt := nextEvent(t, w)
	if !errors.Is(evt.Err, boom) {
		t.Fatalf("expected load error, got %v", evt.Err)
	}
}

func TestWatcherReportsMissingFileOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := NewWatcher(path, 10*time.Millisecond, fakeLoader)
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	evt := nextEvent(t, w)
	if evt.Err == nil {
		t.Fatalf("expected stat error")
	}
	select {
	case evt := <-w.Events():
		t.Fatalf("expected a single error event, got %+v", evt)
	case <-time.After(600 * time.Millisecond):
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected closed channel after Wait")
	}
}

func TestWatcherClearsStatErrorWhenFileReturnsUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	orig := statFn
	t.Cleanup(func() { statFn = orig })
	denied := errors.New("permission denied")
	statFn = func(string) (os.FileInfo, error) { return nil, denied }

	w := &Watcher{path: path, load: fakeLoader}
	w.settle.current = stampOf(info)

	evt, publish := w.check()
	if !publish || !errors.Is(evt.Err, denied) {
		t.Fatalf("expected stat error, got %+v (publish=%v)", evt, publish)
	}
	if _, publish := w.check(); publish {
		t.Fatalf("repeated stat error should not be published again")
	}

	statFn = os.Stat
	evt, publish = w.check()
	if !publish || !evt.Recovered || evt.Err != nil || evt.Data.Company != "" {
		t.Fatalf("expected a recovery event, got %+v (publish=%v)", evt, publish)
	}
	if _, publish := w.check(); publish {
		t.Fatalf("recovery should be published once")
	}
}

func TestSettlerWaitsForStableFile(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	s := settler{current: stamp{modTime: base, size: 10}}

	if s.observe(stamp{modTime: base, size: 10}) {
		t.Fatalf("unchanged file reported as changed")
	}
	writing := stamp{modTime: base.Add(time.Second), size: 4}
	if s.observe(writing) {
		t.Fatalf("first sighting of a change should wait")
	}
	done := stamp{modTime: base.Add(2 * time.Second), size: 12}
	if s.observe(done) {
		t.Fatalf("a file still changing should wait")
	}
	if !s.observe(done) {
		t.Fatalf("expected settled change to be reported")
	}
	if s.observe(done) {
		t.Fatalf("a loaded change should not be reported twice")
	}
}

func TestSettlerDropsRevertedChange(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	s := settler{current: stamp{modTime: base, size: 10}}
	s.observe(stamp{modTime: base.Add(time.Second), size: 3})
	if s.observe(stamp{modTime: base, size: 10}) || s.pending != nil {
		t.Fatalf("expected pending change dropped")
	}
}
