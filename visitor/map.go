package visitor

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// AnyMapVisitorOf creates a visitor over map entries in ascending key order.
// Numeric keys compare numerically, strings and bools by value, other keys by their fmt text.
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return AnyTypedMapVisitorOf[string, interface{}](actual), nil
	case map[string]string:
		return AnyTypedMapVisitorOf[string, string](actual), nil
	case map[string]int:
		return AnyTypedMapVisitorOf[string, int](actual), nil
	case map[int]string:
		return AnyTypedMapVisitorOf[int, string](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedMapVisitorOf returns visitor for ordered key map
func AnyTypedMapVisitorOf[K cmp.Ordered, V any](aMap map[K]V) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		type entry struct {
			key   K
			value V
		}
		entries := make([]entry, 0, len(aMap))
		for k, v := range aMap {
			entries = append(entries, entry{key: k, value: v})
		}
		slices.SortStableFunc(entries, func(a, b entry) int {
			return cmp.Compare(a.key, b.key)
		})
		for _, e := range entries {
			continueVisit, err := f(e.key, e.value)
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

// AnyMapVisitor visits any map via reflection
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map in key order and calls f for each entry.
// Entries are read in a single pass, keys that never compare equal (NaN) keep their values.
func (v *AnyMapVisitor) Visit(f func(key any, element any) (bool, error)) error {
	type entry struct {
		key   reflect.Value
		value reflect.Value
	}
	entries := make([]entry, 0, v.data.Len())
	iter := v.data.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: iter.Key(), value: iter.Value()})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return compareKeys(a.key, b.key)
	})
	for _, e := range entries {
		continueVisit, err := f(e.key.Interface(), e.value.Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// SortKeys sorts map keys in place
func SortKeys(keys []reflect.Value) {
	slices.SortStableFunc(keys, compareKeys)
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(boolOrder(a.IsValid()), boolOrder(b.IsValid()))
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Bool:
			return cmp.Compare(boolOrder(a.Bool()), boolOrder(b.Bool()))
		}
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

func boolOrder(b bool) int {
	if b {
		return 1
	}
	return 0
}
