package stringify

import (
	"testing"
	"time"
)

// Benchmark scalar rendering served from the converter cache.
func BenchmarkStringifier_Scalar(b *testing.B) {
	s := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.String(i)
	}
}

// Benchmark slice rendering with first element converter reuse.
func BenchmarkStringifier_Slice(b *testing.B) {
	s := New()
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.String(values)
	}
}

// Benchmark map rendering, key and value converters are rebuilt per call.
func BenchmarkStringifier_Map(b *testing.B) {
	s := New()
	values := map[string]int{"a": 1, "b": 2, "c": 3}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.String(values)
	}
}

// Benchmark date rendering served from the date cache.
func BenchmarkStringifier_Date(b *testing.B) {
	s := New()
	ts := time.Date(2024, 3, 1, 10, 11, 12, 0, time.UTC)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.String(ts)
	}
}

// Benchmark struct rendering with the default resolver.
func BenchmarkStringifier_Struct(b *testing.B) {
	type Foo struct {
		ID   int
		Name string
		Tags []string
	}
	s := New()
	foo := &Foo{ID: 1, Name: "foo", Tags: []string{"a", "b"}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.String(foo)
	}
}

// Benchmark typed rendering skipping the runtime type lookup.
func BenchmarkStringOf(b *testing.B) {
	s := New()
	convert := ConverterOf[[]string](s)
	values := []string{"a", "b", "c"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = convert(values)
	}
}
