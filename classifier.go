package stringify

import (
	"reflect"

	"github.com/viant/stringify/conv"
	"github.com/viant/stringify/visitor"
)

// build classifies t and creates its converter, the first matching rule wins:
// text, date, nullable date, scalar, own text representation, slice/array, map-like, sequence, struct via resolver, pointer, fallback.
// Struct types are offered to the resolver before their own text representation is used.
// build never locks the converter cache, element converters are resolved when a converter runs.
func (s *Stringifier) build(t reflect.Type) (Strategy, renderer) {
	if t == nil {
		return Fallback, lift(nullConverter)
	}
	ownText := hasOwnText(t)
	switch {
	case t.Kind() == reflect.String:
		return Text, lift(s.textConverter)
	case isDateType(t):
		return Date, lift(s.dateConverter(t))
	case isNullableDateType(t):
		return NullableDate, lift(s.dateConverter(t))
	case isScalarType(t):
		return Scalar, lift(conv.Text)
	case ownText && t.Kind() != reflect.Struct:
		return Fallback, lift(conv.Text)
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		elemKind := t.Elem().Kind()
		if t.Kind() == reflect.Slice && elemKind == reflect.Uint8 {
			return ByteArray, lift(bytesConverter)
		}
		if elemKind == reflect.String {
			return StringArray, s.stringArrayConverter
		}
		return GenericArray, s.arrayConverter
	case reflect.Map:
		return Map, s.mapConverter
	case reflect.Interface:
		return Fallback, s.dynamicConverter
	}

	if !ownText {
		switch visitor.SeqArity(t) {
		case 2:
			return Map, s.mapConverter
		case 1:
			return Sequence, s.sequenceConverter
		}
	}

	if t.Kind() == reflect.Struct && s.resolver != nil {
		if render := resolveRenderer(s.resolver, t, s); render != nil {
			return Custom, render
		}
	}
	if ownText {
		return Fallback, lift(conv.Text)
	}
	if t.Kind() == reflect.Ptr {
		return Pointer, s.pointerConverter(t)
	}
	return Fallback, lift(conv.Text)
}
