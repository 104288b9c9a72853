// Package stemmer is a configurable front end over the Snowball
// stemmers: it trims tokens, caches stems and stems large batches
// on a worker pool.
package stemmer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/oarkflow/gopool"
	"github.com/oarkflow/gopool/spinlock"
	"github.com/oarkflow/log"
	"github.com/oarkflow/xid"
	"github.com/oarkflow/xsync"

	"github.com/oarkflow/stemmer/snowball"
	"github.com/oarkflow/stemmer/snowball/snowballword"
)

type Engine struct {
	key             string
	defaultLanguage snowball.Language
	stemmers        xsync.IMap[snowball.Language, snowball.Stemmer]
	options         snowball.Options
	cache           *Cache
	trim            bool
	workers         int
	batchSize       int
	cfg             *Config
	janitor         *janitor
	disk            *diskStore
}

func New(cfg ...*Config) (*Engine, error) {
	c := &Config{}
	if len(cfg) > 0 && cfg[0] != nil {
		c = cfg[0]
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = snowball.English
	}
	lang, err := snowball.Parse(string(c.DefaultLanguage))
	if err != nil {
		return nil, err
	}
	c.DefaultLanguage = lang
	if c.Key == "" {
		c.Key = xid.New().String()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.CacheSize < 0 {
		return nil, fmt.Errorf("invalid cache size %d", c.CacheSize)
	}
	e := &Engine{
		key:             c.Key,
		defaultLanguage: c.DefaultLanguage,
		stemmers:        xsync.NewMap[snowball.Language, snowball.Stemmer](),
		options:         snowball.Options{GermanTransliterate: c.GermanTransliterate},
		trim:            c.TrimPunctuation,
		workers:         c.Workers,
		batchSize:       c.BatchSize,
		cfg:             c,
	}
	if c.CacheSize > 0 {
		e.cache = NewCache(c.CacheSize)
		// The disk store is the only step that can fail, so it opens
		// before the janitor goroutine starts.
		if c.DiskCachePath != "" {
			disk, err := openDiskStore(c.DiskCachePath)
			if err != nil {
				return nil, err
			}
			e.disk = disk
			e.cache.SetEvictionHandler(e.spill)
		}
		if c.CacheFile != "" {
			if err := e.cache.Load(c.CacheFile); err != nil {
				log.Error().Err(err).Str("file", c.CacheFile).Msg("Unable to load stem cache")
			}
			if c.SnapshotInterval > 0 {
				e.janitor = newJanitor(e.cache, c.CacheFile, c.SnapshotInterval)
				go e.janitor.Run()
			}
		}
	}
	return e, nil
}

func (e *Engine) Key() string {
	return e.key
}

func (e *Engine) Language() snowball.Language {
	return e.defaultLanguage
}

func (e *Engine) language(lang ...snowball.Language) snowball.Language {
	if len(lang) > 0 && lang[0] != "" {
		return lang[0]
	}
	return e.defaultLanguage
}

func (e *Engine) stemmer(lang snowball.Language) snowball.Stemmer {
	if s, ok := e.stemmers.Get(lang); ok {
		return s
	}
	s := snowball.New(lang, e.options)
	e.stemmers.Set(lang, s)
	return s
}

// Stem a single token in the given language, or the engine's
// default language.
func (e *Engine) Stem(word string, lang ...snowball.Language) string {
	language := e.language(lang...)
	if e.trim {
		word = snowballword.TrimBoundaryPunctuation(word)
	}
	if word == "" {
		return word
	}
	if e.cache != nil {
		if stem, ok := e.cache.Get(language, word); ok {
			return stem
		}
	}
	if e.disk != nil {
		if stem, ok := e.disk.Get(language, word); ok {
			e.cache.Set(language, word, stem)
			return stem
		}
	}
	stem := e.stemmer(language).Stem(word)
	if e.cache != nil {
		e.cache.Set(language, word, stem)
	}
	return stem
}

// spill moves a stem evicted from memory to the disk store.
func (e *Engine) spill(lang snowball.Language, word, stem string) {
	if err := e.disk.Set(lang, word, stem); err != nil {
		log.Error().Err(err).Str("word", word).Msg("Unable to spill stem to disk")
	}
}

// StemBatch stems every word, keeping the input order.  Inputs
// larger than one batch are split across the worker pool.
func (e *Engine) StemBatch(words []string, lang ...snowball.Language) []string {
	language := e.language(lang...)
	stems := make([]string, len(words))
	if len(words) <= e.batchSize || e.workers == 1 {
		for i, word := range words {
			stems[i] = e.Stem(word, language)
		}
		return stems
	}
	start := time.Now()
	pool := gopool.NewGoPool(e.workers,
		gopool.WithTaskQueueSize(e.batchSize),
		gopool.WithLock(new(spinlock.SpinLock)),
		gopool.WithErrorCallback(func(err error) {
			log.Error().Err(err).Str("language", string(language)).Msg("Unable to stem batch")
		}),
	)
	defer pool.Release()
	for from := 0; from < len(words); from += e.batchSize {
		to := min(from+e.batchSize, len(words))
		pool.AddTask(func() (interface{}, error) {
			for i := from; i < to; i++ {
				stems[i] = e.Stem(words[i], language)
			}
			return nil, nil
		})
	}
	pool.Wait()
	log.Info().Str("latency", fmt.Sprintf("%s", time.Since(start))).Int("total_words", len(words)).Str("language", string(language)).Msg("Stemmed words...")
	return stems
}

func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

func (e *Engine) Metadata() map[string]any {
	cfg := map[string]any{
		"key":                  e.key,
		"language":             e.defaultLanguage,
		"trim_punctuation":     e.trim,
		"german_transliterate": e.options.GermanTransliterate,
		"workers":              e.workers,
		"batch_size":           e.batchSize,
		"cache_size":           e.cfg.CacheSize,
		"cache_file":           e.cfg.CacheFile,
	}
	if e.cache != nil {
		hits, misses := e.cache.Stats()
		cfg["cached"] = e.cache.Len()
		cfg["cache_hits"] = hits
		cfg["cache_misses"] = misses
	}
	if e.disk != nil {
		cfg["disk_cached"] = e.disk.Len()
	}
	return cfg
}

// Close stops periodic snapshots and saves the cache when a cache
// file is configured.
func (e *Engine) Close() error {
	if e.janitor != nil {
		e.janitor.Stop()
	}
	if e.disk != nil {
		if err := e.disk.Close(); err != nil {
			return err
		}
		e.disk = nil
	}
	if e.cache == nil || e.cfg.CacheFile == "" {
		return nil
	}
	return e.cache.Save(e.cfg.CacheFile)
}
