package stemmer

import (
	"container/list"
	"os"
	"sync"

	"github.com/oarkflow/msgpack"
	"github.com/oarkflow/xsync"

	"github.com/oarkflow/stemmer/snowball"
)

type cacheKey struct {
	Language snowball.Language
	Word     string
}

type cacheEntry struct {
	Language snowball.Language `msgpack:"l"`
	Word     string            `msgpack:"w"`
	Stem     string            `msgpack:"s"`
}

// Cache is an LRU of stemmed words, keyed by language and word.
type Cache struct {
	capacity int
	data     xsync.IMap[cacheKey, *list.Element]
	list     *list.List
	m        sync.Mutex
	hits     *xsync.Counter
	misses   *xsync.Counter
	onEvict  func(lang snowball.Language, word, stem string)
}

// NewCache creates a cache holding at most capacity stems.
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		data:     xsync.NewMap[cacheKey, *list.Element](),
		list:     list.New(),
		hits:     xsync.NewCounter(),
		misses:   xsync.NewCounter(),
	}
}

// Get retrieves a stem and marks it as recently used.
func (c *Cache) Get(lang snowball.Language, word string) (string, bool) {
	c.m.Lock()
	defer c.m.Unlock()

	if elem, found := c.data.Get(cacheKey{lang, word}); found {
		c.list.MoveToFront(elem)
		c.hits.Inc()
		return elem.Value.(*cacheEntry).Stem, true
	}
	c.misses.Inc()
	return "", false
}

// SetEvictionHandler registers a function called with every stem
// pushed out of the cache.
func (c *Cache) SetEvictionHandler(handler func(lang snowball.Language, word, stem string)) {
	c.m.Lock()
	defer c.m.Unlock()
	c.onEvict = handler
}

// Set stores a stem, evicting the least recently used one when
// the cache is full.
func (c *Cache) Set(lang snowball.Language, word, stem string) {
	evicted, handler := c.set(lang, word, stem)
	if evicted != nil && handler != nil {
		handler(evicted.Language, evicted.Word, evicted.Stem)
	}
}

func (c *Cache) set(lang snowball.Language, word, stem string) (*cacheEntry, func(snowball.Language, string, string)) {
	c.m.Lock()
	defer c.m.Unlock()

	key := cacheKey{lang, word}
	if elem, found := c.data.Get(key); found {
		c.list.MoveToFront(elem)
		elem.Value.(*cacheEntry).Stem = stem
		return nil, nil
	}
	var evicted *cacheEntry
	if c.list.Len() >= c.capacity {
		if oldest := c.list.Back(); oldest != nil {
			c.list.Remove(oldest)
			evicted = oldest.Value.(*cacheEntry)
			c.data.Del(cacheKey{evicted.Language, evicted.Word})
		}
	}
	elem := c.list.PushFront(&cacheEntry{Language: lang, Word: word, Stem: stem})
	c.data.Set(key, elem)
	return evicted, c.onEvict
}

// Len returns the number of cached stems.
func (c *Cache) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list.Len()
}

// Clear removes every stem and resets the counters.
func (c *Cache) Clear() {
	c.m.Lock()
	defer c.m.Unlock()
	c.data = xsync.NewMap[cacheKey, *list.Element]()
	c.list.Init()
	c.hits = xsync.NewCounter()
	c.misses = xsync.NewCounter()
}

// Stats returns the hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	c.m.Lock()
	defer c.m.Unlock()
	return c.hits.Value(), c.misses.Value()
}

// Save writes the cache to path as gzipped msgpack, most recently
// used first.
func (c *Cache) Save(path string) error {
	c.m.Lock()
	entries := make([]cacheEntry, 0, c.list.Len())
	for e := c.list.Front(); e != nil; e = e.Next() {
		entries = append(entries, *e.Value.(*cacheEntry))
	}
	c.m.Unlock()

	data, err := msgpack.Marshal(entries)
	if err != nil {
		return err
	}
	data, err = compress(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads stems written by Save.  A missing file is not an
// error.
func (c *Cache) Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	data, err = decompress(data)
	if err != nil {
		return err
	}
	var entries []cacheEntry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		c.Set(entries[i].Language, entries[i].Word, entries[i].Stem)
	}
	return nil
}
