package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg.yaml", "addr: \":9090\"\nmodels_dir: /opt/models\ndefault_max_length: 128\nwarmup:\n  - en-hi\n  - hi-en\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.ModelsDir != "/opt/models" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.DefaultMaxLength != 128 {
		t.Fatalf("default_max_length=%d", cfg.DefaultMaxLength)
	}
	if len(cfg.Warmup) != 2 || cfg.Warmup[0] != "en-hi" {
		t.Fatalf("warmup=%v", cfg.Warmup)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg.json", `{"addr":":8081","load_timeout_sec":20,"queue_timeout_sec":5}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LoadTimeout() != 20*time.Second {
		t.Fatalf("load timeout=%v", cfg.LoadTimeout())
	}
	if cfg.QueueTimeout() != 5*time.Second {
		t.Fatalf("queue timeout=%v", cfg.QueueTimeout())
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg.toml", "addr = \":7070\"\nmax_queue_depth = 8\ncors_enabled = true\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.MaxQueueDepth != 8 || !cfg.CORSEnabled {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	dir := t.TempDir()
	p := writeFile(t, dir, "cfg.ini", "addr=:1")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
	p2 := writeFile(t, dir, "bad.json", "{not json")
	if _, err := Load(p2); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}
