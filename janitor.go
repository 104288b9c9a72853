package stemmer

import (
	"sync"
	"time"

	"github.com/oarkflow/log"
)

// janitor saves the stem cache at a fixed interval until stopped.
type janitor struct {
	cache     *Cache
	path      string
	frequency time.Duration
	stopChan  chan struct{}
	done      chan struct{}
	once      sync.Once
}

func newJanitor(cache *Cache, path string, frequency time.Duration) *janitor {
	return &janitor{
		cache:     cache,
		path:      path,
		frequency: frequency,
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Run saves the cache on every tick until Stop is called.
func (j *janitor) Run() {
	defer close(j.done)
	ticker := time.NewTicker(j.frequency)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			j.save()
		case <-j.stopChan:
			return
		}
	}
}

func (j *janitor) save() {
	if err := j.cache.Save(j.path); err != nil {
		log.Error().Err(err).Str("file", j.path).Msg("Unable to save stem cache")
		return
	}
	log.Info().Str("file", j.path).Int("cached", j.cache.Len()).Msg("Saved stem cache...")
}

// Stop ends Run and waits for it to return.  It is safe to call
// more than once.
func (j *janitor) Stop() {
	j.once.Do(func() {
		close(j.stopChan)
	})
	<-j.done
}
