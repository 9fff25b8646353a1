package visitor

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

var structCache = NewTypeCache[[]*xunsafe.Field]()

// StructFields returns exported fields of struct type, in declaration order
func StructFields(structType reflect.Type) []*xunsafe.Field {
	return structCache.GetOrCreate(structType, func(t reflect.Type) []*xunsafe.Field {
		var result []*xunsafe.Field
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			result = append(result, xunsafe.NewField(field))
		}
		return result
	})
}

// ExportedFields returns exported struct fields aligned with StructFields positions
func ExportedFields(structType reflect.Type) []reflect.StructField {
	var result []reflect.StructField
	for i := 0; i < structType.NumField(); i++ {
		if field := structType.Field(i); field.IsExported() {
			result = append(result, field)
		}
	}
	return result
}

// StructVisitorOf creates a visitor over exported struct fields, key is the field position.
func StructVisitorOf(value interface{}) (Visitor[int, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if structType = valueType.Elem(); structType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected struct, got nil %T", value)
		}
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	fields := StructFields(structType)
	ptr := xunsafe.AsPointer(value)
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i, field := range fields {
			continueVisit, err := f(i, field.Value(ptr))
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}
