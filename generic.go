package stringify

import "reflect"

// ConverterOf returns converter resolved for static type T.
// For interface T the returned converter dispatches on the runtime type.
func ConverterOf[T any](s *Stringifier) func(value T) (string, bool) {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return func(value T) (string, bool) {
			return s.String(value)
		}
	}
	converter := s.Converter(t)
	return func(value T) (string, bool) {
		return converter(value)
	}
}

// StringOf renders value using converter of static type T
func StringOf[T any](s *Stringifier, value T) (string, bool) {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return s.String(value)
	}
	return s.Converter(t)(value)
}
