package stemmer

import (
	"testing"
	"time"

	"github.com/oarkflow/json"

	"github.com/oarkflow/stemmer/snowball"
)

func TestMergeConfigs(t *testing.T) {
	merged := MergeConfigs(DefaultConfig("docs"), nil, &Config{
		CacheSize:       5,
		DefaultLanguage: snowball.German,
	})
	if merged.Key != "docs" {
		t.Errorf("Key = %q", merged.Key)
	}
	if merged.CacheSize != 5 {
		t.Errorf("CacheSize = %d", merged.CacheSize)
	}
	if merged.DefaultLanguage != snowball.German {
		t.Errorf("DefaultLanguage = %q", merged.DefaultLanguage)
	}
	if !merged.TrimPunctuation || merged.BatchSize != DefaultBatchSize {
		t.Errorf("defaults lost: %+v", merged)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("k")
	if cfg.DefaultLanguage != snowball.English || cfg.CacheSize != DefaultCacheSize || cfg.Workers <= 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestMergeConfigsCachePaths(t *testing.T) {
	merged := MergeConfigs(DefaultConfig("docs"), &Config{
		CacheFile:        "stems.cache",
		DiskCachePath:    "stems",
		SnapshotInterval: time.Minute,
	})
	if merged.CacheFile != "stems.cache" || merged.DiskCachePath != "stems" || merged.SnapshotInterval != time.Minute {
		t.Errorf("cache settings lost: %+v", merged)
	}
}

func TestConfigSnapshotIntervalJSON(t *testing.T) {
	testCases := []struct {
		data    string
		want    time.Duration
		wantErr bool
	}{
		{`{"snapshot_interval": "30s", "cache_size": 5}`, 30 * time.Second, false},
		{`{"snapshot_interval": 2000000000}`, 2 * time.Second, false},
		{`{"cache_size": 5}`, 0, false},
		{`{"snapshot_interval": "soon"}`, 0, true},
		{`{"snapshot_interval": true}`, 0, true},
	}
	for _, tc := range testCases {
		var cfg Config
		err := json.Unmarshal([]byte(tc.data), &cfg)
		if (err != nil) != tc.wantErr {
			t.Errorf("Unmarshal(%s) error = %v", tc.data, err)
			continue
		}
		if err == nil && cfg.SnapshotInterval != tc.want {
			t.Errorf("Unmarshal(%s) interval = %s, want %s", tc.data, cfg.SnapshotInterval, tc.want)
		}
	}

	var cfg Config
	if err := json.Unmarshal([]byte(`{"snapshot_interval": "1m", "cache_size": 5, "default_language": "de"}`), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.CacheSize != 5 || cfg.DefaultLanguage != "de" {
		t.Errorf("other fields lost: %+v", cfg)
	}
}
