package stringify

import (
	"log/slog"
	"reflect"
	"sync"
)

type (
	converterEntry struct {
		strategy  Strategy
		converter Converter
		render    renderer
	}

	// converterCache maps type to its converter, entries live until Reset
	converterCache struct {
		mux     sync.Mutex
		entries map[reflect.Type]*converterEntry
	}
)

func newConverterCache() *converterCache {
	return &converterCache{entries: make(map[reflect.Type]*converterEntry)}
}

func (c *converterCache) get(t reflect.Type) (*converterEntry, bool) {
	c.mux.Lock()
	defer c.mux.Unlock()
	entry, ok := c.entries[t]
	return entry, ok
}

// put stores entry unless t has been cached in the meantime, it returns the cached entry and whether entry was stored
func (c *converterCache) put(t reflect.Type, entry *converterEntry) (*converterEntry, bool) {
	c.mux.Lock()
	defer c.mux.Unlock()
	if existing, ok := c.entries[t]; ok {
		return existing, false
	}
	c.entries[t] = entry
	return entry, true
}

func (c *converterCache) len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return len(c.entries)
}

func (c *converterCache) reset() {
	c.mux.Lock()
	c.entries = make(map[reflect.Type]*converterEntry)
	c.mux.Unlock()
}

// entry returns cached entry for t, classification runs outside the cache lock and the first stored entry wins
func (s *Stringifier) entry(t reflect.Type) *converterEntry {
	if entry, ok := s.converters.get(t); ok {
		s.metrics.ConverterCacheHit()
		return entry
	}
	strategy, render := s.build(t)
	entry, stored := s.converters.put(t, &converterEntry{strategy: strategy, converter: render.converter(), render: render})
	if !stored {
		s.metrics.ConverterCacheHit()
		return entry
	}
	s.metrics.ConverterCacheMiss(entry.strategy.String())
	s.logger.Debug("classified type", slog.String("type", t.String()), slog.String("strategy", entry.strategy.String()))
	return entry
}

func (s *Stringifier) rendererOf(t reflect.Type) renderer {
	if t == nil {
		return lift(nullConverter)
	}
	return s.entry(t).render
}

// Converter returns cached converter for t, classifying t on the first request
func (s *Stringifier) Converter(t reflect.Type) Converter {
	if t == nil {
		return nullConverter
	}
	return s.entry(t).converter
}

// Classify returns cached strategy for t
func (s *Stringifier) Classify(t reflect.Type) Strategy {
	if t == nil {
		return Fallback
	}
	return s.entry(t).strategy
}

// CachedTypes returns number of types in the converter cache
func (s *Stringifier) CachedTypes() int {
	return s.converters.len()
}

// Reset drops cached converters and dates
func (s *Stringifier) Reset() {
	s.converters.reset()
	s.dates.Reset()
}
