package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "loandesk.log"

// sink is the shared log file. Errors always reach it; trace entries only
// while tracing is on.
type sink struct {
	mu    sync.Mutex
	path  string
	trace bool
}

var shared = &sink{path: defaultLogFile}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// write opens the log for appending and hands it to fn. Failures go to
// stderr prefixed with what.
func (s *sink) write(what string, fn func(io.Writer) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
		return
	}
	defer f.Close()
	if err := fn(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
	}
}

// Error appends err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	shared.write("logging", func(w io.Writer) error {
		return log.New(w, "", log.LstdFlags).Output(2, err.Error())
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	shared.mu.Lock()
	shared.trace = enabled
	shared.mu.Unlock()
}

// Trace appends a JSON line to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload}
	shared.write("trace logging", func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	path = strings.TrimSpace(path)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = ""
		}
	}
	if path == "" {
		path = defaultLogFile
	}
	shared.mu.Lock()
	shared.path = path
	shared.mu.Unlock()
}

// Path returns the active log destination.
func Path() string {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	return shared.path
}

func TraceEnabled() bool {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	return shared.trace
}
