package stringify

import "reflect"

type (
	// renderer renders value as part of a single rendering path
	renderer func(value interface{}, path *renderPath) (string, bool)

	// reference identifies a pointer, map or slice being rendered
	reference struct {
		ptr    uintptr
		length int
		rType  reflect.Type
	}

	// renderPath holds references currently being rendered, a reference met again on the path renders as null
	renderPath struct {
		references []reference
	}

	rendererSource interface {
		rendererOf(t reflect.Type) renderer
	}
)

func referenceOf(value reflect.Value) (reference, bool) {
	switch value.Kind() {
	case reflect.Ptr, reflect.Map:
		if value.IsNil() {
			return reference{}, false
		}
		return reference{ptr: value.Pointer(), rType: value.Type()}, true
	case reflect.Slice:
		if value.IsNil() || value.Len() == 0 {
			return reference{}, false
		}
		return reference{ptr: value.Pointer(), length: value.Len(), rType: value.Type()}, true
	}
	return reference{}, false
}

func (p *renderPath) contains(ref reference) bool {
	if p == nil {
		return false
	}
	for _, candidate := range p.references {
		if candidate == ref {
			return true
		}
	}
	return false
}

// visit calls render with value's reference on the path, a cyclic reference renders as null
func (p *renderPath) visit(value reflect.Value, render func(path *renderPath) (string, bool)) (string, bool) {
	ref, ok := referenceOf(value)
	if !ok {
		return render(p)
	}
	if p.contains(ref) {
		return "", false
	}
	if p == nil {
		p = &renderPath{}
	}
	p.references = append(p.references, ref)
	defer func() { p.references = p.references[:len(p.references)-1] }()
	return render(p)
}

func (r renderer) converter() Converter {
	return func(value interface{}) (string, bool) {
		return r(value, nil)
	}
}

func lift(converter Converter) renderer {
	return func(value interface{}, _ *renderPath) (string, bool) {
		return converter(value)
	}
}

// lookupRenderer returns renderer sharing the caller's path when lookup supports it
func lookupRenderer(lookup Lookup, t reflect.Type) renderer {
	if source, ok := lookup.(rendererSource); ok {
		return source.rendererOf(t)
	}
	return lift(lookup.Converter(t))
}
