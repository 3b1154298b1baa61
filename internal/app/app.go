package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/backend"
	"github.com/atomicstack/loandesk/internal/data/seed"
	"github.com/atomicstack/loandesk/internal/logging/events"
	"github.com/atomicstack/loandesk/internal/ui"
)

// DefaultWatchInterval is how often the dataset file is polled with --watch.
const DefaultWatchInterval = 1500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Section       string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	DataPath      string
	Watch         bool
	WatchInterval time.Duration
}

var (
	loadDataset = seed.LoadFile
	runProgram  = func(m tea.Model) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}
)

// Run loads the dataset and executes the Bubble Tea program.
func Run(cfg Config) error {
	ds, err := loadDataset(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	var watcher *backend.Watcher
	if cfg.Watch && cfg.DataPath != "" {
		interval := cfg.WatchInterval
		if interval <= 0 {
			interval = DefaultWatchInterval
		}
		watcher = backend.NewWatcher(cfg.DataPath, interval, backend.Loader(seed.LoadFile))
		defer watcher.Stop()
	}
	model := ui.NewModel(ds, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Watcher:    watcher,
		Section:    cfg.Section,
	})
	err = runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Exit(err)
	return err
}
