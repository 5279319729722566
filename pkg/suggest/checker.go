package suggest

import (
	"sync"

	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
)

// Checker serializes access to one trie and memoizes suggestion lists.
// Lookups share a read lock; AddWord takes the write lock because insertion
// moves the trie's shared pointer.
type Checker struct {
	trie   *trie.Trie
	engine *Engine
	cache  *Cache
	mu     sync.RWMutex
}

// NewChecker wraps t. cacheSize <= 0 disables the suggestion cache.
func NewChecker(t *trie.Trie, cacheSize int) *Checker {
	if t == nil {
		t = trie.New()
	}
	return &Checker{
		trie:   t,
		engine: NewEngine(t),
		cache:  NewCache(cacheSize),
	}
}

func (c *Checker) Check(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.FindWord(word)
}

func (c *Checker) Suggest(word string) []string {
	query := trie.Normalize(word)
	if query != "" {
		if cached, ok := c.cache.Get(query); ok {
			log.Debugf("Cache hit for '%s'", query)
			return cached
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	list := c.engine.WordSuggestions(query)
	if query != "" {
		c.cache.Put(query, list)
	}
	return list
}

// Suggestions returns the strategy-tagged hits for word without caching.
func (c *Checker) Suggestions(word string) []Suggestion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.Suggestions(word)
}

func (c *Checker) AddWord(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := c.trie.WordCount()
	c.trie.Add(word)
	if c.trie.WordCount() == before {
		return false
	}
	// cached lists may now be missing the new word
	c.cache.Reset()
	log.Debugf("Added word '%s'", trie.Normalize(word))
	return true
}

func (c *Checker) Stats() map[string]int {
	c.mu.RLock()
	stats := map[string]int{
		"totalWords": c.trie.WordCount(),
		"totalNodes": c.trie.NodeCount(),
	}
	c.mu.RUnlock()

	for k, v := range c.cache.Stats() {
		stats[k] = v
	}
	return stats
}
