package stringify

import (
	"github.com/jmgilman/go/errors"
	ftime "github.com/viant/stringify/format/time"
	"gopkg.in/yaml.v3"
)

// Config represents declarative stringifier settings
type Config struct {
	ItemSeparator     string `yaml:"itemSeparator,omitempty"`
	KeyValueSeparator string `yaml:"keyValueSeparator,omitempty"`
	DateLayout        string `yaml:"dateLayout,omitempty"`
	DateFormat        string `yaml:"dateFormat,omitempty"`
	Location          string `yaml:"location,omitempty"`
	DateCacheLimit    int    `yaml:"dateCacheLimit,omitempty"`
}

// LoadConfig decodes YAML config
func LoadConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode stringify config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks config consistency
func (c *Config) Validate() error {
	if c.DateCacheLimit < 0 {
		return errors.Newf(errors.CodeInvalidConfig, "invalid dateCacheLimit: %d", c.DateCacheLimit)
	}
	if c.ItemSeparator != "" && c.ItemSeparator == c.KeyValueSeparator {
		return errors.Newf(errors.CodeInvalidConfig, "itemSeparator and keyValueSeparator must differ: %q", c.ItemSeparator)
	}
	if c.DateLayout != "" && c.DateFormat != "" {
		return errors.New(errors.CodeInvalidConfig, "dateLayout and dateFormat are mutually exclusive")
	}
	if _, err := ftime.Location(c.Location); err != nil {
		return errors.Wrapf(err, errors.CodeInvalidConfig, "invalid location: %v", c.Location)
	}
	return nil
}

// Options returns stringifier options for config
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	location, _ := ftime.Location(c.Location)
	var result []Option
	if c.ItemSeparator != "" {
		result = append(result, WithItemSeparator(c.ItemSeparator))
	}
	if c.KeyValueSeparator != "" {
		result = append(result, WithKeyValueSeparator(c.KeyValueSeparator))
	}
	result = append(result,
		WithDateLayout(c.DateLayout),
		WithDateFormat(c.DateFormat),
		WithLocation(location),
		WithDateCacheLimit(c.DateCacheLimit),
	)
	return result, nil
}

// NewWithConfig creates a Stringifier from config, opts are applied after config options
func NewWithConfig(cfg *Config, opts ...Option) (*Stringifier, error) {
	if cfg == nil {
		return New(opts...), nil
	}
	cfgOptions, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(cfgOptions, opts...)...), nil
}
