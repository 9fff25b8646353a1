package stringify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringOf(t *testing.T) {
	s := New()
	actual, ok := StringOf(s, 5)
	assert.True(t, ok)
	assert.EqualValues(t, "5", actual)

	actual, ok = StringOf(s, []string{"a", "b"})
	assert.True(t, ok)
	assert.EqualValues(t, "a,b", actual)

	var nilPtr *int
	_, ok = StringOf(s, nilPtr)
	assert.False(t, ok)

	var nilErr error
	_, ok = StringOf(s, nilErr)
	assert.False(t, ok)

	actual, ok = StringOf[error](s, errors.New("boom"))
	assert.True(t, ok)
	assert.EqualValues(t, "boom", actual)

	actual, ok = StringOf[any](s, map[string]int{"a": 1})
	assert.True(t, ok)
	assert.EqualValues(t, "a:1", actual)
}

func TestConverterOf(t *testing.T) {
	s := New()
	ints := ConverterOf[[]int](s)
	actual, ok := ints([]int{1, 2})
	assert.True(t, ok)
	assert.EqualValues(t, "1,2", actual)
	assert.EqualValues(t, 2, s.CachedTypes())

	dates := ConverterOf[*time.Time](s)
	_, ok = dates(nil)
	assert.False(t, ok)

	anyConverter := ConverterOf[interface{}](s)
	actual, ok = anyConverter(point{X: 1})
	assert.True(t, ok)
	assert.EqualValues(t, "{X:1,Y:0}", actual)
}
