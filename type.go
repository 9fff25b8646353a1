package stringify

import (
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/viant/stringify/conv"
)

var timeType = reflect.TypeOf(time.Time{})

var strfmtDateType = reflect.TypeOf(strfmt.Date{})

// isDateType returns true for time.Time and struct types defined on it (i.e. strfmt.DateTime)
func isDateType(candidate reflect.Type) bool {
	if candidate == timeType {
		return true
	}
	return candidate.Kind() == reflect.Struct && candidate.ConvertibleTo(timeType)
}

func isNullableDateType(candidate reflect.Type) bool {
	return candidate.Kind() == reflect.Ptr && isDateType(candidate.Elem())
}

func isScalarType(candidate reflect.Type) bool {
	switch candidate.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func ensureDateType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// asTime extracts time from date or pointer to date value
func asTime(value interface{}) (time.Time, bool) {
	switch actual := value.(type) {
	case time.Time:
		return actual, true
	case *time.Time:
		if actual == nil {
			return time.Time{}, false
		}
		return *actual, true
	case strfmt.DateTime:
		return time.Time(actual), true
	case *strfmt.DateTime:
		if actual == nil {
			return time.Time{}, false
		}
		return time.Time(*actual), true
	case strfmt.Date:
		return time.Time(actual), true
	}
	rValue := reflect.ValueOf(value)
	if conv.IsNil(rValue) {
		return time.Time{}, false
	}
	if rValue.Kind() == reflect.Ptr {
		rValue = rValue.Elem()
	}
	if !isDateType(rValue.Type()) {
		return time.Time{}, false
	}
	return rValue.Convert(timeType).Interface().(time.Time), true
}

func isNull(value interface{}) bool {
	return value == nil || conv.IsNil(reflect.ValueOf(value))
}
