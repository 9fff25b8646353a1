package time

import (
	"sync"
	"time"
)

// DefaultCacheLimit is the number of rendered dates kept before the cache is cleared
const DefaultCacheLimit = 100

type (
	cacheKey struct {
		seconds int64
		nanos   int
		layout  string
	}

	// Cache memoizes rendered dates. Once it holds more than limit entries the
	// whole map is dropped, this is a growth guard, not an LRU.
	Cache struct {
		mux      sync.Mutex
		limit    int
		location *time.Location
		values   map[cacheKey]string
		observer Observer
	}

	// Observer receives cache events
	Observer interface {
		DateCacheHit()
		DateCacheMiss()
		DateCacheReset(size int)
	}

	// CacheOption represents cache option
	CacheOption func(c *Cache)

	nopObserver struct{}
)

func (nopObserver) DateCacheHit()      {}
func (nopObserver) DateCacheMiss()     {}
func (nopObserver) DateCacheReset(int) {}

// WithCacheLimit sets cache limit
func WithCacheLimit(limit int) CacheOption {
	return func(c *Cache) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithLocation sets location dates are rendered in
func WithLocation(location *time.Location) CacheOption {
	return func(c *Cache) {
		if location != nil {
			c.location = location
		}
	}
}

// WithObserver sets cache observer
func WithObserver(observer Observer) CacheOption {
	return func(c *Cache) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// Format returns t rendered with layout, cached by instant and layout
func (c *Cache) Format(t time.Time, layout string) string {
	key := cacheKey{seconds: t.Unix(), nanos: t.Nanosecond(), layout: layout}
	c.mux.Lock()
	defer c.mux.Unlock()
	if text, ok := c.values[key]; ok {
		c.observer.DateCacheHit()
		return text
	}
	c.observer.DateCacheMiss()
	text := t.In(c.location).Format(layout)
	c.values[key] = text
	if size := len(c.values); size > c.limit {
		c.values = make(map[cacheKey]string, c.limit)
		c.observer.DateCacheReset(size)
	}
	return text
}

// Len returns number of cached entries
func (c *Cache) Len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return len(c.values)
}

// Reset drops all cached entries
func (c *Cache) Reset() {
	c.mux.Lock()
	c.values = make(map[cacheKey]string, c.limit)
	c.mux.Unlock()
}

// Location returns rendering location
func (c *Cache) Location() *time.Location {
	return c.location
}

// NewCache creates a date cache
func NewCache(opts ...CacheOption) *Cache {
	ret := &Cache{limit: DefaultCacheLimit, location: time.UTC, observer: nopObserver{}}
	for _, opt := range opts {
		opt(ret)
	}
	ret.values = make(map[cacheKey]string, ret.limit)
	return ret
}
