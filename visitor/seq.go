package visitor

import (
	"fmt"
	"reflect"
)

// SeqMethod is the method name exposing range-over-func iteration on containers
const SeqMethod = "All"

// SeqArity returns 1 for iter.Seq shaped types, 2 for iter.Seq2 shaped types and 0 otherwise.
// A type is also seq shaped when it exposes All() returning one of the iterator shapes.
func SeqArity(t reflect.Type) int {
	if t == nil {
		return 0
	}
	if arity := funcSeqArity(t); arity > 0 {
		return arity
	}
	if method, ok := t.MethodByName(SeqMethod); ok {
		mType := method.Type
		if mType.NumIn() == 1 && mType.NumOut() == 1 {
			return funcSeqArity(mType.Out(0))
		}
	}
	return 0
}

func funcSeqArity(t reflect.Type) int {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return 0
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return 0
	}
	switch yield.NumIn() {
	case 1, 2:
		return yield.NumIn()
	}
	return 0
}

func seqFunc(value reflect.Value) reflect.Value {
	if funcSeqArity(value.Type()) > 0 {
		return value
	}
	return value.MethodByName(SeqMethod).Call(nil)[0]
}

// SeqVisitorOf creates a visitor over iter.Seq shaped value, key is a yield position
func SeqVisitorOf(value interface{}) (Visitor[int, any], error) {
	val := reflect.ValueOf(value)
	if !val.IsValid() || SeqArity(val.Type()) != 1 {
		return nil, fmt.Errorf("expected sequence, got %T", value)
	}
	return func(f func(key int, element any) (bool, error)) error {
		var err error
		i := 0
		for item := range seqFunc(val).Seq() {
			var continueVisit bool
			if continueVisit, err = f(i, item.Interface()); err != nil || !continueVisit {
				break
			}
			i++
		}
		return err
	}, nil
}

// Seq2VisitorOf creates a visitor over iter.Seq2 shaped value preserving yield order
func Seq2VisitorOf(value interface{}) (Visitor[any, any], error) {
	val := reflect.ValueOf(value)
	if !val.IsValid() || SeqArity(val.Type()) != 2 {
		return nil, fmt.Errorf("expected key/value sequence, got %T", value)
	}
	return func(f func(key any, element any) (bool, error)) error {
		var err error
		for k, v := range seqFunc(val).Seq2() {
			var continueVisit bool
			if continueVisit, err = f(k.Interface(), v.Interface()); err != nil || !continueVisit {
				break
			}
		}
		return err
	}, nil
}
