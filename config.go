package stemmer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/oarkflow/json"

	"github.com/oarkflow/stemmer/snowball"
)

const (
	DefaultCacheSize = 10000
	DefaultBatchSize = 1000
)

type Config struct {
	Key                 string            `json:"key"`
	DefaultLanguage     snowball.Language `json:"default_language"`
	CacheSize           int               `json:"cache_size"`
	CacheFile           string            `json:"cache_file"`
	SnapshotInterval    time.Duration     `json:"snapshot_interval"`
	DiskCachePath       string            `json:"disk_cache_path"`
	TrimPunctuation     bool              `json:"trim_punctuation"`
	GermanTransliterate bool              `json:"german_transliterate"`
	Workers             int               `json:"workers"`
	BatchSize           int               `json:"batch_size"`
}

// UnmarshalJSON reads snapshot_interval either as a duration string
// such as "30s" or as a count of nanoseconds.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		SnapshotInterval any `json:"snapshot_interval"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch v := aux.SnapshotInterval.(type) {
	case nil:
	case float64:
		c.SnapshotInterval = time.Duration(v)
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("snapshot_interval: %w", err)
		}
		c.SnapshotInterval = d
	default:
		return fmt.Errorf("snapshot_interval: unexpected %T", v)
	}
	return nil
}

// DefaultConfig returns the configuration GetEngine uses for keys
// it has not seen before.
func DefaultConfig(key string) *Config {
	return &Config{
		Key:             key,
		DefaultLanguage: snowball.English,
		CacheSize:       DefaultCacheSize,
		TrimPunctuation: true,
		Workers:         runtime.NumCPU(),
		BatchSize:       DefaultBatchSize,
	}
}

// MergeConfigs merges multiple Config structs into one.  Later
// configs win for every field they set.
func MergeConfigs(configs ...*Config) *Config {
	mergedConfig := &Config{}

	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if cfg.Key != "" {
			mergedConfig.Key = cfg.Key
		}
		if cfg.DefaultLanguage != "" {
			mergedConfig.DefaultLanguage = cfg.DefaultLanguage
		}
		if cfg.CacheSize != 0 {
			mergedConfig.CacheSize = cfg.CacheSize
		}
		if cfg.CacheFile != "" {
			mergedConfig.CacheFile = cfg.CacheFile
		}
		if cfg.SnapshotInterval != 0 {
			mergedConfig.SnapshotInterval = cfg.SnapshotInterval
		}
		if cfg.DiskCachePath != "" {
			mergedConfig.DiskCachePath = cfg.DiskCachePath
		}
		if cfg.TrimPunctuation {
			mergedConfig.TrimPunctuation = cfg.TrimPunctuation
		}
		if cfg.GermanTransliterate {
			mergedConfig.GermanTransliterate = cfg.GermanTransliterate
		}
		if cfg.Workers != 0 {
			mergedConfig.Workers = cfg.Workers
		}
		if cfg.BatchSize != 0 {
			mergedConfig.BatchSize = cfg.BatchSize
		}
	}

	return mergedConfig
}
