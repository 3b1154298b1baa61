package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/data/seed"
	"github.com/atomicstack/loandesk/internal/domain"
	"github.com/atomicstack/loandesk/internal/ui"
)

func stubProgram(t *testing.T, fn func(tea.Model) error) {
	t.Helper()
	orig := runProgram
	runProgram = fn
	t.Cleanup(func() { runProgram = orig })
}

func TestRunStartsOnRequestedSection(t *testing.T) {
	var got string
	stubProgram(t, func(m tea.Model) error {
		got = m.(*ui.Model).ActiveSection()
		return nil
	})
	if err := Run(Config{Section: "savings"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "savings" {
		t.Fatalf("expected savings, got %q", got)
	}
}

func TestRunWrapsDatasetErrors(t *testing.T) {
	orig := loadDataset
	loadDataset = func(string) (domain.Dataset, error) { return domain.Dataset{}, errors.New("boom") }
	t.Cleanup(func() { loadDataset = orig })
	stubProgram(t, func(tea.Model) error {
		t.Fatalf("program should not start")
		return nil
	})
	err := Run(Config{DataPath: "missing.yaml"})
	if err == nil || !strings.Contains(err.Error(), "load dataset: boom") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRunTreatsKilledProgramAsClean(t *testing.T) {
	stubProgram(t, func(tea.Model) error { return tea.ErrProgramKilled })
	if err := Run(Config{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestRunWatchesDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, seed.Raw(), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	stubProgram(t, func(tea.Model) error { return nil })
	if err := Run(Config{DataPath: path, Watch: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
