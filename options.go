package stringify

import (
	"log/slog"
	"time"

	ftime "github.com/viant/stringify/format/time"
	"github.com/viant/stringify/metrics"
)

// Option stringifier option
type Option func(s *Stringifier)

// Options represents stringifier options
type Options []Option

// Apply applies options
func (o Options) Apply(s *Stringifier) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		if opt != nil {
			opt(s)
		}
	}
}

// WithItemSeparator sets composite item separator
func WithItemSeparator(separator string) Option {
	return func(s *Stringifier) {
		s.itemSeparator = separator
	}
}

// WithKeyValueSeparator sets map key/value separator
func WithKeyValueSeparator(separator string) Option {
	return func(s *Stringifier) {
		s.keyValueSeparator = separator
	}
}

// WithSafeText sets plain text rule
func WithSafeText(fn func(text string) string) Option {
	return func(s *Stringifier) {
		if fn != nil {
			s.safeText = fn
		}
	}
}

// WithResolver sets struct converter resolver, nil disables struct resolution
func WithResolver(resolver Resolver) Option {
	return func(s *Stringifier) {
		s.resolver = resolver
	}
}

// WithDateLayout sets Go time layout
func WithDateLayout(layout string) Option {
	return func(s *Stringifier) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

// WithDateFormat sets ISO style date format (i.e. YYYY-MM-DD)
func WithDateFormat(dateFormat string) Option {
	return func(s *Stringifier) {
		if dateFormat != "" {
			s.dateLayout = ftime.Layout("", dateFormat)
		}
	}
}

// WithLocation sets location dates are rendered in
func WithLocation(location *time.Location) Option {
	return func(s *Stringifier) {
		if location != nil {
			s.location = location
		}
	}
}

// WithDateCacheLimit sets number of cached dates that triggers date cache reset
func WithDateCacheLimit(limit int) Option {
	return func(s *Stringifier) {
		if limit > 0 {
			s.dateCacheLimit = limit
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stringifier) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets metrics
func WithMetrics(m metrics.Metrics) Option {
	return func(s *Stringifier) {
		if m != nil {
			s.metrics = m
		}
	}
}
