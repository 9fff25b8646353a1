package stringify

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingMetrics struct {
	mux        sync.Mutex
	hits       int
	misses     map[string]int
	dateHits   int
	dateMisses int
	resets     []int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{misses: map[string]int{}}
}

func (m *recordingMetrics) ConverterCacheHit() {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.hits++
}

func (m *recordingMetrics) ConverterCacheMiss(strategy string) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.misses[strategy]++
}

func (m *recordingMetrics) DateCacheHit() {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.dateHits++
}

func (m *recordingMetrics) DateCacheMiss() {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.dateMisses++
}

func (m *recordingMetrics) DateCacheReset(size int) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.resets = append(m.resets, size)
}

func TestConverterCache_ClassifiesOnce(t *testing.T) {
	m := newRecordingMetrics()
	s := New(WithMetrics(m))
	for i := 0; i < 3; i++ {
		_, _ = s.String(i)
	}
	assert.EqualValues(t, map[string]int{"Scalar": 1}, m.misses)
	assert.EqualValues(t, 2, m.hits)

	_, _ = s.String([]int{1, 2, 3})
	assert.EqualValues(t, 1, m.misses["GenericArray"])
	assert.EqualValues(t, 1, m.misses["Scalar"])
	assert.EqualValues(t, 3, m.hits)
}

func TestConverterCache_SameConverterConcurrently(t *testing.T) {
	m := newRecordingMetrics()
	s := New(WithMetrics(m))
	rType := reflect.TypeOf(map[string][]int{})
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.EqualValues(t, Map, s.Classify(rType))
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, m.misses["Map"])
	assert.EqualValues(t, 31, m.hits)
	assert.EqualValues(t, 1, s.CachedTypes())
}

func TestDateCache_Metrics(t *testing.T) {
	m := newRecordingMetrics()
	s := New(WithMetrics(m), WithDateCacheLimit(2))
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	_, _ = s.String(ts)
	_, _ = s.String(ts)
	_, _ = s.String(ts.Add(time.Hour))
	_, _ = s.String(ts.Add(2 * time.Hour))
	assert.EqualValues(t, 1, m.dateHits)
	assert.EqualValues(t, 3, m.dateMisses)
	assert.EqualValues(t, []int{3}, m.resets)
}

func TestStrategy_String(t *testing.T) {
	assert.EqualValues(t, "GenericArray", GenericArray.String())
	assert.EqualValues(t, "Unknown", Strategy(99).String())
	assert.True(t, Map.IsComposite())
	assert.False(t, Date.IsComposite())
}
