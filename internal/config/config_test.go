package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
host: http://example.test:9000
biome: desert
cache_limit: 512
timeout: 5s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Host != "http://example.test:9000" {
		t.Errorf("host = %q", cfg.Host)
	}
	if cfg.Biome != "desert" {
		t.Errorf("biome = %q", cfg.Biome)
	}
	if cfg.CacheLimit != 512 {
		t.Errorf("cache limit = %d", cfg.CacheLimit)
	}
	if cfg.Timeout.Std() != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	// Unset fields keep their defaults.
	if cfg.BufferLimit != 1024 {
		t.Errorf("buffer limit = %d, want default 1024", cfg.BufferLimit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMergeRespectsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Biome = "desert" // set via flag
	cfg.Seed = 7

	fromFile := DefaultConfig()
	fromFile.Biome = "grass"
	fromFile.Seed = 99
	fromFile.CacheLimit = 256

	Merge(cfg, fromFile, map[string]bool{"biome": true})

	if cfg.Biome != "desert" {
		t.Errorf("explicit flag overridden: biome = %q", cfg.Biome)
	}
	if cfg.Seed != 99 {
		t.Errorf("file value not applied: seed = %d", cfg.Seed)
	}
	if cfg.CacheLimit != 256 {
		t.Errorf("file value not applied: cache limit = %d", cfg.CacheLimit)
	}
}
