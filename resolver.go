package stringify

import (
	"reflect"
	"time"
)

type (
	// Resolver supplies converters for struct types, nil means not supported.
	// Resolve runs outside the converter cache lock, lookup may be used for other types
	// during Resolve. A converter for a self-referential type should resolve it lazily.
	Resolver interface {
		Resolve(t reflect.Type, lookup Lookup) Converter
	}

	// Lookup exposes shared converters and rendering settings to resolvers
	Lookup interface {
		Converter(t reflect.Type) Converter
		ItemSeparator() string
		KeyValueSeparator() string
		FormatTime(ts time.Time, layout string) string
	}

	// ResolverFunc adapts function to Resolver
	ResolverFunc func(t reflect.Type, lookup Lookup) Converter

	// Resolvers tries resolvers in order
	Resolvers []Resolver

	// pathResolver is implemented by resolvers whose nested values share the caller's rendering path
	pathResolver interface {
		resolveRenderer(t reflect.Type, lookup Lookup) renderer
	}
)

// Resolve calls fn
func (fn ResolverFunc) Resolve(t reflect.Type, lookup Lookup) Converter {
	return fn(t, lookup)
}

// Resolve returns the first supplied converter
func (r Resolvers) Resolve(t reflect.Type, lookup Lookup) Converter {
	for _, resolver := range r {
		if resolver == nil {
			continue
		}
		if converter := resolver.Resolve(t, lookup); converter != nil {
			return converter
		}
	}
	return nil
}

func (r Resolvers) resolveRenderer(t reflect.Type, lookup Lookup) renderer {
	for _, resolver := range r {
		if resolver == nil {
			continue
		}
		if render := resolveRenderer(resolver, t, lookup); render != nil {
			return render
		}
	}
	return nil
}

func resolveRenderer(resolver Resolver, t reflect.Type, lookup Lookup) renderer {
	if candidate, ok := resolver.(pathResolver); ok {
		return candidate.resolveRenderer(t, lookup)
	}
	if converter := resolver.Resolve(t, lookup); converter != nil {
		return lift(converter)
	}
	return nil
}
