package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg")
	content := []byte("FB_START_PATH=/tmp/start\nFB_SHOW_HIDDEN=true\nFB_RECENT_LIMIT=9\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.StartPath != "/tmp/start" || !cfg.ShowHidden || cfg.RecentLimit != 9 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FB_START_PATH", "/env/start")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.StartPath != "/env/start" {
		t.Fatalf("expected start path from env, got %q", cfg.StartPath)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg")
	if err := os.WriteFile(path, []byte("FB_RECENT_LIMIT=3\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("FB_RECENT_LIMIT", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RecentLimit != 7 {
		t.Fatalf("expected env override, got %d", cfg.RecentLimit)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RecentLimit != defaultRecentLimit || cfg.ShowHidden {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.StartPath == "" {
		t.Fatalf("expected working directory fallback for start path")
	}
}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg")
	cfg := Config{StartPath: "/tmp/start", ShowHidden: true, RecentLimit: 9}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	expected := "FB_START_PATH=/tmp/start\nFB_SHOW_HIDDEN=true\nFB_RECENT_LIMIT=9\n"
	if string(data) != expected {
		t.Fatalf("file content = %q, want %q", string(data), expected)
	}
}
