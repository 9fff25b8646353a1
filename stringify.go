package stringify

import (
	"io"
	"log/slog"
	"reflect"
	"time"

	"github.com/viant/stringify/format/text"
	ftime "github.com/viant/stringify/format/time"
	"github.com/viant/stringify/metrics"
)

const (
	// DefaultItemSeparator joins composite items
	DefaultItemSeparator = ","
	// DefaultKeyValueSeparator joins map key and value
	DefaultKeyValueSeparator = ":"
)

// Stringifier renders values as text using converters cached per type
type Stringifier struct {
	itemSeparator     string
	keyValueSeparator string
	safeText          func(text string) string
	resolver          Resolver
	dateLayout        string
	location          *time.Location
	dateCacheLimit    int
	logger            *slog.Logger
	metrics           metrics.Metrics
	converters        *converterCache
	dates             *ftime.Cache
}

// String renders value with converter of its runtime type, false result represents null
func (s *Stringifier) String(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}
	return s.rendererOf(reflect.TypeOf(value))(value, nil)
}

// Text renders value, null renders as empty text
func (s *Stringifier) Text(value interface{}) string {
	result, _ := s.String(value)
	return result
}

// ItemSeparator returns item separator
func (s *Stringifier) ItemSeparator() string {
	return s.itemSeparator
}

// KeyValueSeparator returns key/value separator
func (s *Stringifier) KeyValueSeparator() string {
	return s.keyValueSeparator
}

// FormatTime renders ts through the date cache, empty layout uses the configured one
func (s *Stringifier) FormatTime(ts time.Time, layout string) string {
	if layout == "" {
		layout = s.dateLayout
	}
	return s.dates.Format(ts, layout)
}

// CachedDates returns number of entries in the date cache
func (s *Stringifier) CachedDates() int {
	return s.dates.Len()
}

type dateObserver struct {
	metrics.Metrics
	logger *slog.Logger
}

func (o *dateObserver) DateCacheReset(size int) {
	o.Metrics.DateCacheReset(size)
	o.logger.Debug("date cache reset", slog.Int("size", size))
}

// New creates a Stringifier
func New(opts ...Option) *Stringifier {
	ret := &Stringifier{
		itemSeparator:     DefaultItemSeparator,
		keyValueSeparator: DefaultKeyValueSeparator,
		safeText:          text.SafeText,
		resolver:          StructResolver{},
		dateLayout:        ftime.DefaultLayout,
		location:          time.UTC,
		dateCacheLimit:    ftime.DefaultCacheLimit,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:           metrics.Nop(),
		converters:        newConverterCache(),
	}
	Options(opts).Apply(ret)
	ret.dates = ftime.NewCache(
		ftime.WithCacheLimit(ret.dateCacheLimit),
		ftime.WithLocation(ret.location),
		ftime.WithObserver(&dateObserver{Metrics: ret.metrics, logger: ret.logger}),
	)
	return ret
}

var defaultStringifier = New()

// Default returns package level Stringifier
func Default() *Stringifier {
	return defaultStringifier
}

// String renders value with the default Stringifier
func String(value interface{}) (string, bool) {
	return defaultStringifier.String(value)
}

// AsText renders value with the default Stringifier, null renders as empty text
func AsText(value interface{}) string {
	return defaultStringifier.Text(value)
}
