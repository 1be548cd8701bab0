package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the user-tunable browsing settings. Values come from the rc
// file first, with environment variables taking precedence.
type Config struct {
	StartPath   string // directory opened on startup
	ShowHidden  bool   // include dot-prefixed entries
	RecentLimit int    // capacity of the recent-files panel
	Path        string // where the config was loaded from / saves to
}

const defaultRecentLimit = 5

// DefaultPath returns the rc file location, ~/.fbrc, falling back to the
// working directory when no home is known.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.fbrc"
	}
	return filepath.Join(home, ".fbrc")
}

// Load reads the rc file at path (KEY=VALUE lines, # comments) and applies
// environment overrides. A missing file is not an error; the environment and
// defaults still apply.
func Load(path string) (Config, error) {
	cfg := Config{RecentLimit: defaultRecentLimit, Path: path}

	data, err := os.ReadFile(path)
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			cfg.apply(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	for _, key := range []string{"FB_START_PATH", "FB_SHOW_HIDDEN", "FB_RECENT_LIMIT"} {
		if v, ok := os.LookupEnv(key); ok {
			cfg.apply(key, v)
		}
	}

	if cfg.StartPath == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.StartPath = wd
		} else {
			cfg.StartPath = "."
		}
	}
	return cfg, nil
}

func (c *Config) apply(key, val string) {
	switch key {
	case "FB_START_PATH":
		c.StartPath = val
	case "FB_SHOW_HIDDEN":
		if b, err := strconv.ParseBool(val); err == nil {
			c.ShowHidden = b
		}
	case "FB_RECENT_LIMIT":
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			c.RecentLimit = n
		}
	}
}

// Save writes the config as KEY=VALUE lines.
func Save(path string, cfg Config) error {
	var b strings.Builder
	fmt.Fprintf(&b, "FB_START_PATH=%s\n", cfg.StartPath)
	fmt.Fprintf(&b, "FB_SHOW_HIDDEN=%t\n", cfg.ShowHidden)
	fmt.Fprintf(&b, "FB_RECENT_LIMIT=%d\n", cfg.RecentLimit)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
