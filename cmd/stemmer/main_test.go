package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oarkflow/stemmer/snowball"
)

func setFlag(t *testing.T, name, value string) {
	t.Helper()
	if err := flag.Set(name, value); err != nil {
		t.Fatal(err)
	}
}

func TestBuildConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"default_language": "german", "cache_size": 50, "workers": 3, "snapshot_interval": "1m30s", "cache_file": "file.cache"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	setFlag(t, "config", path)
	setFlag(t, "cache", "7")

	cfg, err := buildConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLanguage != snowball.German {
		t.Errorf("language = %q, the file should win over an unset flag", cfg.DefaultLanguage)
	}
	if cfg.CacheSize != 7 {
		t.Errorf("cache size = %d, a set flag should win over the file", cfg.CacheSize)
	}
	if cfg.Workers != 3 || cfg.CacheFile != "file.cache" {
		t.Errorf("workers %d, cache file %q", cfg.Workers, cfg.CacheFile)
	}
	if cfg.SnapshotInterval != 90*time.Second {
		t.Errorf("snapshot interval = %s", cfg.SnapshotInterval)
	}

	setFlag(t, "lang", "fr")
	setFlag(t, "cache", "0")
	setFlag(t, "snapshot", "5s")
	cfg, err = buildConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLanguage != snowball.French || cfg.CacheSize != 0 || cfg.SnapshotInterval != 5*time.Second {
		t.Errorf("explicit flags lost: %+v", cfg)
	}

	setFlag(t, "lang", "klingon")
	if _, err := buildConfig(); err == nil {
		t.Error("an unknown -lang should be rejected")
	}
}
