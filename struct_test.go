package stringify

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type Audit struct {
	CreatedBy string
	Version   int
}

type account struct {
	Audit
	UserName  string    `format:"caseFormat=lowerUnderscore"`
	CreatedAt time.Time `format:"dateFormat=YYYY-MM-DD"`
	Secret    string    `format:"ignore=true"`
	Note      string    `format:"omitempty=true"`
	Balance   *float64  `format:"name=amount"`
	Labels    []string
	Attrs     interface{}
	hidden    string
}

type node struct {
	Name string
	Next *node
}

type named struct {
	Name string
}

func (n named) String() string {
	return "named:" + n.Name
}

type opaque struct {
	value int
}

func TestStructResolver(t *testing.T) {
	balance := 12.5
	ts := time.Date(2026, 2, 24, 10, 11, 12, 0, time.UTC)

	var testCases = []struct {
		description string
		value       interface{}
		expect      string
	}{
		{
			description: "format tags",
			value: account{
				Audit:     Audit{CreatedBy: "sys", Version: 2},
				UserName:  "alice",
				CreatedAt: ts,
				Secret:    "hidden",
				Balance:   &balance,
				Labels:    []string{"a", "b"},
				Attrs:     map[string]int{"k": 1},
				hidden:    "x",
			},
			expect: "{CreatedBy:sys,Version:2,user_name:alice,CreatedAt:2026-02-24,amount:12.5,Labels:a,b,Attrs:k:1}",
		},
		{
			description: "omitempty set, null pointer and interface",
			value:       account{UserName: "bob", CreatedAt: ts, Note: "n"},
			expect:      "{CreatedBy:,Version:0,user_name:bob,CreatedAt:2026-02-24,Note:n,amount:,Labels:,Attrs:}",
		},
		{
			description: "recursive type",
			value:       node{Name: "a", Next: &node{Name: "b"}},
			expect:      "{Name:a,Next:{Name:b,Next:}}",
		},
		{
			description: "stringer struct",
			value:       named{Name: "x"},
			expect:      "named:x",
		},
		{
			description: "no exported fields",
			value:       opaque{value: 3},
			expect:      "{3}",
		},
	}

	for _, testCase := range testCases {
		s := New()
		actual, ok := s.String(testCase.value)
		assert.True(t, ok, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestStructResolver_Resolve(t *testing.T) {
	s := New()
	resolver := StructResolver{}
	assert.Nil(t, resolver.Resolve(reflect.TypeOf(1), s))
	assert.Nil(t, resolver.Resolve(reflect.TypeOf(named{}), s))
	assert.Nil(t, resolver.Resolve(reflect.TypeOf(opaque{}), s))

	converter := resolver.Resolve(reflect.TypeOf(node{}), s)
	if !assert.NotNil(t, converter) {
		return
	}
	actual, ok := converter(&node{Name: "p"})
	assert.True(t, ok)
	assert.EqualValues(t, "{Name:p,Next:}", actual)
	actual, ok = converter(7)
	assert.True(t, ok)
	assert.EqualValues(t, "7", actual)
	_, ok = converter(nil)
	assert.False(t, ok)
}

func TestStringifier_CustomResolver(t *testing.T) {
	pointType := reflect.TypeOf(point{})
	s := New(WithResolver(Resolvers{
		nil,
		ResolverFunc(func(t reflect.Type, lookup Lookup) Converter {
			if t != pointType {
				return nil
			}
			return func(value interface{}) (string, bool) {
				p := value.(point)
				return lookup.Converter(reflect.TypeOf(p.X))(p.X)
			}
		}),
		StructResolver{},
	}))
	actual, _ := s.String([]point{{X: 1}, {X: 2}})
	assert.EqualValues(t, "1,2", actual)
	actual, _ = s.String(node{Name: "n"})
	assert.EqualValues(t, "{Name:n,Next:}", actual)
	assert.EqualValues(t, Custom, s.Classify(pointType))

	s = New(WithResolver(nil))
	actual, _ = s.String(point{X: 1, Y: 2})
	assert.EqualValues(t, "{1 2}", actual)
	assert.EqualValues(t, Fallback, s.Classify(pointType))
}

func TestStringifier_ResolverOverridesOwnText(t *testing.T) {
	namedType := reflect.TypeOf(named{})
	s := New(WithResolver(Resolvers{
		ResolverFunc(func(t reflect.Type, lookup Lookup) Converter {
			if t != namedType {
				return nil
			}
			return func(value interface{}) (string, bool) {
				return "custom:" + value.(named).Name, true
			}
		}),
		StructResolver{},
	}))
	actual, ok := s.String(named{Name: "x"})
	assert.True(t, ok)
	assert.EqualValues(t, "custom:x", actual)
	assert.EqualValues(t, Custom, s.Classify(namedType))

	s = New()
	actual, _ = s.String(named{Name: "x"})
	assert.EqualValues(t, "named:x", actual)
	assert.EqualValues(t, Fallback, s.Classify(namedType))
}

func TestStringifier_ResolverUsesLookup(t *testing.T) {
	pointType := reflect.TypeOf(point{})
	s := New(WithResolver(ResolverFunc(func(t reflect.Type, lookup Lookup) Converter {
		if t != pointType {
			return nil
		}
		coordinate := lookup.Converter(reflect.TypeOf(0))
		return func(value interface{}) (string, bool) {
			p := value.(point)
			x, _ := coordinate(p.X)
			y, _ := coordinate(p.Y)
			return x + "/" + y, true
		}
	})))
	actual, _ := s.String(point{X: 1, Y: 2})
	assert.EqualValues(t, "1/2", actual)
	assert.EqualValues(t, 2, s.CachedTypes())
}

func TestStructResolver_Cycles(t *testing.T) {
	self := &node{Name: "a"}
	self.Next = self
	first := &node{Name: "a"}
	second := &node{Name: "b", Next: first}
	first.Next = second
	leaf := &node{Name: "x"}

	var testCases = []struct {
		description string
		value       interface{}
		expect      string
	}{
		{description: "self reference", value: self, expect: "{Name:a,Next:}"},
		{description: "two node cycle", value: first, expect: "{Name:a,Next:{Name:b,Next:}}"},
		{description: "struct value with self reference", value: *self, expect: "{Name:a,Next:{Name:a,Next:}}"},
		{description: "shared pointer", value: []*node{leaf, leaf}, expect: "{Name:x,Next:},{Name:x,Next:}"},
	}
	for _, testCase := range testCases {
		actual, ok := New().String(testCase.value)
		assert.True(t, ok, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
