// Package metrics defines instrumentation hooks for converter and date caches,
// so that callers can plug in a metrics backend without coupling the core to it.
package metrics

// Metrics receives cache events
type Metrics interface {
	// ConverterCacheHit is called when a converter is served from the cache.
	ConverterCacheHit()
	// ConverterCacheMiss is called when a type is classified, strategy is the resolved strategy name.
	ConverterCacheMiss(strategy string)
	// DateCacheHit is called when a rendered date is served from the date cache.
	DateCacheHit()
	// DateCacheMiss is called when a date is rendered.
	DateCacheMiss()
	// DateCacheReset is called when the date cache is cleared, size is the size that triggered the reset.
	DateCacheReset(size int)
}

type nop struct{}

func (nop) ConverterCacheHit()        {}
func (nop) ConverterCacheMiss(string) {}
func (nop) DateCacheHit()             {}
func (nop) DateCacheMiss()            {}
func (nop) DateCacheReset(int)        {}

// Nop returns no-op Metrics
func Nop() Metrics { return nop{} }
