package ntru

import "sync"

// Key is an NTRU key triple. F and G are small, H is centered mod q. All
// three have n coefficients.
type Key struct {
	F []int64
	G []int64
	H []int64
}

// Clone returns a deep copy of k.
func (k Key) Clone() Key {
	return Key{
		F: append([]int64(nil), k.F...),
		G: append([]int64(nil), k.G...),
		H: append([]int64(nil), k.H...),
	}
}

// KeyCache memoizes keys by the exact content of their seed. Entries are
// never evicted.
type KeyCache interface {
	Get(seed string) (Key, bool)
	Put(seed string, k Key)
	Len() int
}

// MapCache is a plain map. It is not safe for concurrent use.
type MapCache struct {
	m map[string]Key
}

// NewMapCache returns an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{m: make(map[string]Key)}
}

func (c *MapCache) Get(seed string) (Key, bool) {
	k, ok := c.m[seed]
	return k, ok
}

func (c *MapCache) Put(seed string, k Key) { c.m[seed] = k }

func (c *MapCache) Len() int { return len(c.m) }

// SyncCache serializes access to an inner KeyCache.
type SyncCache struct {
	mu    sync.RWMutex
	inner KeyCache
}

// NewSyncCache wraps inner; a nil inner gets a fresh MapCache.
func NewSyncCache(inner KeyCache) *SyncCache {
	if inner == nil {
		inner = NewMapCache()
	}
	return &SyncCache{inner: inner}
}

func (c *SyncCache) Get(seed string) (Key, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Get(seed)
}

func (c *SyncCache) Put(seed string, k Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Put(seed, k)
}

func (c *SyncCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Len()
}
