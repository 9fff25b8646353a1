package visitor

import (
	"fmt"
	"reflect"
)

// AnySliceVisitorOf creates a visitor over slice or array elements in index order.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []int64:
		return AnyTypedSliceVisitorOf[int64](actual), nil
	case []uint64:
		return AnyTypedSliceVisitorOf[uint64](actual), nil
	case []bool:
		return AnyTypedSliceVisitorOf[bool](actual), nil
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), nil
	case []float32:
		return AnyTypedSliceVisitorOf[float32](actual), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedSliceVisitorOf returns visitor
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnySliceVisitor visits slices and arrays of any type.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over elements via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
