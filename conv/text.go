package conv

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// Text returns the default textual representation of value.
// The second result is false when value is nil or a nil reference.
func Text(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}
	switch actual := value.(type) {
	case string:
		return actual, true
	case []byte:
		if actual == nil {
			return "", false
		}
		return string(actual), true
	case int:
		return strconv.Itoa(actual), true
	case bool:
		return strconv.FormatBool(actual), true
	}
	srcValue := reflect.ValueOf(value)
	if IsNil(srcValue) {
		return "", false
	}
	switch actual := value.(type) {
	case fmt.Stringer:
		return actual.String(), true
	case error:
		return actual.Error(), true
	case encoding.TextMarshaler:
		if data, err := actual.MarshalText(); err == nil {
			return string(data), true
		}
	}
	return kindText(srcValue), true
}

func kindText(srcValue reflect.Value) string {
	switch srcValue.Kind() {
	case reflect.String:
		return srcValue.String()
	case reflect.Bool:
		return strconv.FormatBool(srcValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(srcValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(srcValue.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(srcValue.Complex(), 'f', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(srcValue.Complex(), 'f', -1, 128)
	case reflect.Ptr:
		return fmt.Sprint(srcValue.Elem().Interface())
	}
	return fmt.Sprint(srcValue.Interface())
}

// IsNil returns true for an invalid value or a nil reference of a nillable kind
func IsNil(value reflect.Value) bool {
	if !value.IsValid() {
		return true
	}
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return value.IsNil()
	}
	return false
}
