package stringify

import (
	"reflect"
	"strings"

	"github.com/viant/stringify/conv"
	"github.com/viant/stringify/visitor"
)

func (s *Stringifier) arrayConverter(value interface{}, path *renderPath) (string, bool) {
	if isNull(value) {
		return "", false
	}
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return conv.Text(value)
	}
	return path.visit(reflect.ValueOf(value), func(path *renderPath) (string, bool) {
		return s.joinItems(visit, path), true
	})
}

func (s *Stringifier) sequenceConverter(value interface{}, path *renderPath) (string, bool) {
	if isNull(value) {
		return "", false
	}
	visit, err := visitor.SeqVisitorOf(value)
	if err != nil {
		return conv.Text(value)
	}
	return s.joinItems(visit, path), true
}

// dynamicConverter renders value with the converter of its runtime type
func (s *Stringifier) dynamicConverter(value interface{}, path *renderPath) (string, bool) {
	if value == nil {
		return "", false
	}
	return s.rendererOf(reflect.TypeOf(value))(value, path)
}

// joinItems renders items with a converter resolved from the first non-null item's runtime type,
// the same converter is used for all remaining items regardless of their type.
// Items are joined by position, a null item leaves an empty slot.
func (s *Stringifier) joinItems(visit visitor.Visitor[int, any], path *renderPath) string {
	var sb strings.Builder
	var itemRenderer renderer
	_ = visit(func(index int, item any) (bool, error) {
		if index > 0 {
			sb.WriteString(s.itemSeparator)
		}
		if itemRenderer == nil {
			if isNull(item) {
				return true, nil
			}
			itemRenderer = s.rendererOf(reflect.TypeOf(item))
		}
		text, _ := itemRenderer(item, path)
		sb.WriteString(text)
		return true, nil
	})
	return sb.String()
}

// mapConverter renders entries as key<kv separator>value. Key and value converters are
// built from the first non-null key and value types without going through the converter cache.
func (s *Stringifier) mapConverter(value interface{}, path *renderPath) (string, bool) {
	if isNull(value) {
		return "", false
	}
	var visit visitor.Visitor[any, any]
	var err error
	if reflect.TypeOf(value).Kind() == reflect.Map {
		visit, err = visitor.AnyMapVisitorOf(value)
	} else {
		visit, err = visitor.Seq2VisitorOf(value)
	}
	if err != nil {
		return conv.Text(value)
	}
	return path.visit(reflect.ValueOf(value), func(path *renderPath) (string, bool) {
		return s.joinEntries(visit, path), true
	})
}

func (s *Stringifier) joinEntries(visit visitor.Visitor[any, any], path *renderPath) string {
	var sb strings.Builder
	var keyRenderer, valueRenderer renderer
	count := 0
	_ = visit(func(key any, item any) (bool, error) {
		if count > 0 {
			sb.WriteString(s.itemSeparator)
		}
		count++
		if !isNull(key) {
			if keyRenderer == nil {
				_, keyRenderer = s.build(reflect.TypeOf(key))
			}
			keyText, _ := keyRenderer(key, path)
			sb.WriteString(keyText)
		}
		sb.WriteString(s.keyValueSeparator)
		if !isNull(item) {
			if valueRenderer == nil {
				_, valueRenderer = s.build(reflect.TypeOf(item))
			}
			valueText, _ := valueRenderer(item, path)
			sb.WriteString(valueText)
		}
		return true, nil
	})
	return sb.String()
}
