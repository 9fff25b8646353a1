package stringify

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-openapi/strfmt"
	"github.com/viant/stringify/conv"
)

// Converter renders value as text, false result represents null.
// A converter applied to a value of an unexpected type renders its builtin representation.
type Converter func(value interface{}) (string, bool)

func nullConverter(interface{}) (string, bool) {
	return "", false
}

func (s *Stringifier) textConverter(value interface{}) (string, bool) {
	switch actual := value.(type) {
	case string:
		return s.safeText(actual), true
	case nil:
		return "", false
	}
	if rValue := reflect.ValueOf(value); rValue.Kind() == reflect.String {
		return s.safeText(rValue.String()), true
	}
	return conv.Text(value)
}

func (s *Stringifier) dateConverter(t reflect.Type) Converter {
	layout := s.dateLayout
	if ensureDateType(t) == strfmtDateType {
		layout = strfmt.RFC3339FullDate
	}
	return func(value interface{}) (string, bool) {
		ts, ok := asTime(value)
		if !ok {
			return conv.Text(value)
		}
		return s.dates.Format(ts, layout), true
	}
}

func (s *Stringifier) pointerConverter(t reflect.Type) renderer {
	elemRenderer := sync.OnceValue(func() renderer {
		return s.rendererOf(t.Elem())
	})
	return func(value interface{}, path *renderPath) (string, bool) {
		rValue := reflect.ValueOf(value)
		if conv.IsNil(rValue) {
			return "", false
		}
		if rValue.Kind() != reflect.Ptr || rValue.Type() != t {
			return conv.Text(value)
		}
		return path.visit(rValue, func(path *renderPath) (string, bool) {
			return elemRenderer()(rValue.Elem().Interface(), path)
		})
	}
}

func bytesConverter(value interface{}) (string, bool) {
	switch actual := value.(type) {
	case []byte:
		if actual == nil {
			return "", false
		}
		return string(actual), true
	case nil:
		return "", false
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Slice && rValue.Type().Elem().Kind() == reflect.Uint8 {
		if rValue.IsNil() {
			return "", false
		}
		return string(rValue.Bytes()), true
	}
	return conv.Text(value)
}

func (s *Stringifier) stringArrayConverter(value interface{}, path *renderPath) (string, bool) {
	if actual, ok := value.([]string); ok {
		if actual == nil {
			return "", false
		}
		var sb strings.Builder
		for i, item := range actual {
			if i > 0 {
				sb.WriteString(s.itemSeparator)
			}
			sb.WriteString(s.safeText(item))
		}
		return sb.String(), true
	}
	rValue := reflect.ValueOf(value)
	if conv.IsNil(rValue) {
		return "", false
	}
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		if rValue.Type().Elem().Kind() != reflect.String {
			return s.arrayConverter(value, path)
		}
	default:
		return conv.Text(value)
	}
	var sb strings.Builder
	for i := 0; i < rValue.Len(); i++ {
		if i > 0 {
			sb.WriteString(s.itemSeparator)
		}
		sb.WriteString(s.safeText(rValue.Index(i).String()))
	}
	return sb.String(), true
}
