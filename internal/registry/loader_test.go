package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func makeBundle(t *testing.T, root, direction string, withModel bool) {
	t.Helper()
	dir := filepath.Join(root, direction)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, TokenizerFile), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write tokenizer: %v", err)
	}
	if withModel {
		if err := os.WriteFile(filepath.Join(dir, ModelFile), []byte("MTQ1"), 0o644); err != nil {
			t.Fatalf("write model: %v", err)
		}
	}
}

func TestLoadDir(t *testing.T) {
	root := t.TempDir()
	makeBundle(t, root, "en-hi", true)
	makeBundle(t, root, "hi-en", true)
	makeBundle(t, root, "en-fr", false) // incomplete: no artifact
	makeBundle(t, root, "notadirection", true)
	// stray file at top level is ignored
	if err := os.WriteFile(filepath.Join(root, "README.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	specs, err := LoadDir(root)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 bundles, got %d: %+v", len(specs), specs)
	}
	seen := map[string]bool{}
	for _, s := range specs {
		seen[s.Direction.String()] = true
		if s.TokenizerPath == "" || s.ModelPath == "" {
			t.Fatalf("incomplete spec: %+v", s)
		}
	}
	if !seen["en-hi"] || !seen["hi-en"] {
		t.Fatalf("missing directions: %v", seen)
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
