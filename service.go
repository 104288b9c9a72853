package stemmer

import (
	"slices"
	"sync"

	"github.com/oarkflow/log"
	"github.com/oarkflow/xsync"
)

var (
	engines xsync.IMap[string, *Engine]
	mu      sync.Mutex
)

func init() {
	engines = xsync.NewMap[string, *Engine]()
}

func GetConfig(key string) *Config {
	return DefaultConfig(key)
}

// GetEngine returns the engine registered under key, creating one
// with the default configuration on first use.
func GetEngine(key string) (*Engine, error) {
	return GetOrSetEngine(key, GetConfig(key))
}

func GetOrSetEngine(key string, config *Config) (*Engine, error) {
	mu.Lock()
	defer mu.Unlock()
	if eng, ok := engines.Get(key); ok {
		return eng, nil
	}
	if config == nil {
		config = GetConfig(key)
	}
	config.Key = key
	eng, err := New(config)
	if err != nil {
		return nil, err
	}
	engines.Set(key, eng)
	return eng, nil
}

// SetEngine registers engine under key, closing the engine it
// replaces.
func SetEngine(key string, engine *Engine) {
	mu.Lock()
	old, ok := engines.Get(key)
	engines.Set(key, engine)
	mu.Unlock()
	if ok && old != engine {
		closeEngine(key, old)
	}
}

// DeleteEngine unregisters and closes the engine under key.
func DeleteEngine(key string) {
	mu.Lock()
	old, ok := engines.Get(key)
	engines.Del(key)
	mu.Unlock()
	if ok {
		closeEngine(key, old)
	}
}

func closeEngine(key string, engine *Engine) {
	if err := engine.Close(); err != nil {
		log.Error().Err(err).Str("engine", key).Msg("Unable to close stemming engine")
	}
}

func AvailableEngines() []string {
	var keys []string
	engines.ForEach(func(key string, _ *Engine) bool {
		keys = append(keys, key)
		return true
	})
	slices.Sort(keys)
	return keys
}
