package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Cache memoizes suggestion lists per normalized query. Entries are evicted
// least recently used first once maxEntries is reached.
type Cache struct {
	entries     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	misses      int64
	maxEntries  int
	mu          sync.Mutex
}

// NewCache creates a cache holding at most maxEntries queries.
// A non-positive size disables caching.
func NewCache(maxEntries int) *Cache {
	return &Cache{
		entries:    patricia.NewTrie(),
		accessTime: make(map[string]int64, max(maxEntries, 0)),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached list for query.
func (c *Cache) Get(query string) ([]string, bool) {
	if c == nil || c.maxEntries <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.entries.Get(patricia.Prefix(query))
	if item == nil {
		c.misses++
		return nil, false
	}
	c.hits++
	c.markAccessed(query)
	return append([]string(nil), item.([]string)...), true
}

// Put stores a copy of list under query.
func (c *Cache) Put(query string, list []string) {
	if c == nil || c.maxEntries <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.accessTime[query]; !exists && len(c.accessTime) >= c.maxEntries {
		c.evictLRU()
	}
	c.entries.Set(patricia.Prefix(query), append([]string(nil), list...))
	c.markAccessed(query)
}

// Reset drops every entry. Adding a word can change the answer for any query.
func (c *Cache) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.accessTime)
	c.entries = patricia.NewTrie()
	c.accessTime = make(map[string]int64, max(c.maxEntries, 0))
	if n > 0 {
		log.Debugf("Dropped %d cached suggestion lists", n)
	}
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.accessTime)
}

// Queries returns the cached queries starting with prefix.
func (c *Cache) Queries(prefix string) []string {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []string
	err := c.entries.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting cache subtree: %v", err)
	}
	return out
}

func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cacheEntries": len(c.accessTime),
		"maxEntries":   c.maxEntries,
		"cacheHits":    int(c.hits),
		"cacheMisses":  int(c.misses),
	}
}

func (c *Cache) markAccessed(query string) {
	c.accessCount++
	c.accessTime[query] = c.accessCount
}

func (c *Cache) evictLRU() {
	var oldest string
	var oldestTime int64 = math.MaxInt64

	for q, at := range c.accessTime {
		if at < oldestTime {
			oldestTime = at
			oldest = q
		}
	}
	if oldestTime == math.MaxInt64 {
		return
	}
	c.entries.Delete(patricia.Prefix(oldest))
	delete(c.accessTime, oldest)
	log.Debugf("Evicted '%s' from suggestion cache", oldest)
}
