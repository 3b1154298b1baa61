package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
	if got := Testdata(t, "borrowers.yaml"); got != filepath.Join(root, "testdata", "borrowers.yaml") {
		t.Fatalf("unexpected testdata path %s", got)
	}
}
