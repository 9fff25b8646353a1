package stringify

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/viant/stringify/conv"
	ftime "github.com/viant/stringify/format/time"
	"github.com/viant/stringify/visitor"
	"github.com/viant/tagly/format"
)

var (
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	errorType         = reflect.TypeOf((*error)(nil)).Elem()
)

type (
	// StructResolver renders exported struct fields as {Name:value,Other:value}.
	// Field names, case format, ignore, omitempty, inline and date layout follow the `format` tag.
	// Types with their own textual representation (Stringer, TextMarshaler, error) are not resolved.
	StructResolver struct{}

	structField struct {
		name      string
		ignore    bool
		omitEmpty bool
		inline    *structPlan
		render    renderer
	}

	structPlan struct {
		rType  reflect.Type
		fields []*structField
		lookup Lookup
	}
)

// Resolve returns struct converter
func (r StructResolver) Resolve(t reflect.Type, lookup Lookup) Converter {
	if render := r.resolveRenderer(t, lookup); render != nil {
		return render.converter()
	}
	return nil
}

func (r StructResolver) resolveRenderer(t reflect.Type, lookup Lookup) renderer {
	if t.Kind() != reflect.Struct || hasOwnText(t) {
		return nil
	}
	if len(visitor.ExportedFields(t)) == 0 {
		return nil
	}
	plan := newStructPlan(t, lookup)
	return func(value interface{}, path *renderPath) (string, bool) {
		if isNull(value) {
			return "", false
		}
		if !plan.accepts(value) {
			return conv.Text(value)
		}
		sb := &strings.Builder{}
		sb.WriteByte('{')
		plan.writeFields(sb, value, 0, path)
		sb.WriteByte('}')
		return sb.String(), true
	}
}

func hasOwnText(t reflect.Type) bool {
	return t.Implements(stringerType) || t.Implements(textMarshalerType) || t.Implements(errorType)
}

func newStructPlan(t reflect.Type, lookup Lookup) *structPlan {
	plan := &structPlan{rType: t, lookup: lookup}
	for _, field := range visitor.ExportedFields(t) {
		plan.fields = append(plan.fields, plan.newField(field))
	}
	return plan
}

func (p *structPlan) newField(field reflect.StructField) *structField {
	tag, _ := format.Parse(field.Tag)
	if tag == nil {
		tag = &format.Tag{}
	}
	result := &structField{name: field.Name, ignore: tag.Ignore, omitEmpty: tag.Omitempty}
	if tag.Name != "" || tag.CaseFormat != "" {
		if tag.Name == "" {
			tag.Name = field.Name
		}
		result.name = tag.CaseFormatName("")
	}
	fieldType := field.Type
	if (field.Anonymous || tag.Inline) && fieldType.Kind() == reflect.Struct && !isDateType(fieldType) && !hasOwnText(fieldType) {
		result.inline = newStructPlan(fieldType, p.lookup)
		return result
	}
	if (tag.TimeLayout != "" || tag.DateFormat != "") && (isDateType(fieldType) || isNullableDateType(fieldType)) {
		layout := ftime.Layout(tag.TimeLayout, tag.DateFormat)
		result.render = func(value interface{}, _ *renderPath) (string, bool) {
			ts, ok := asTime(value)
			if !ok {
				return conv.Text(value)
			}
			return p.lookup.FormatTime(ts, layout), true
		}
		return result
	}
	if fieldType.Kind() == reflect.Interface {
		result.render = func(value interface{}, path *renderPath) (string, bool) {
			if value == nil {
				return "", false
			}
			return lookupRenderer(p.lookup, reflect.TypeOf(value))(value, path)
		}
		return result
	}
	fieldRenderer := sync.OnceValue(func() renderer {
		return lookupRenderer(p.lookup, fieldType)
	})
	result.render = func(value interface{}, path *renderPath) (string, bool) {
		return fieldRenderer()(value, path)
	}
	return result
}

func (p *structPlan) accepts(value interface{}) bool {
	t := reflect.TypeOf(value)
	return t == p.rType || (t.Kind() == reflect.Ptr && t.Elem() == p.rType)
}

// writeFields writes field entries, returns number of written entries
func (p *structPlan) writeFields(sb *strings.Builder, value interface{}, written int, path *renderPath) int {
	visit, err := visitor.StructVisitorOf(value)
	if err != nil {
		return written
	}
	_ = visit(func(index int, fieldValue interface{}) (bool, error) {
		field := p.fields[index]
		if field.ignore {
			return true, nil
		}
		if field.omitEmpty && isEmpty(fieldValue) {
			return true, nil
		}
		if field.inline != nil {
			written = field.inline.writeFields(sb, fieldValue, written, path)
			return true, nil
		}
		if written > 0 {
			sb.WriteString(p.lookup.ItemSeparator())
		}
		written++
		sb.WriteString(field.name)
		sb.WriteString(p.lookup.KeyValueSeparator())
		if text, ok := field.render(fieldValue, path); ok {
			sb.WriteString(text)
		}
		return true, nil
	})
	return written
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}
