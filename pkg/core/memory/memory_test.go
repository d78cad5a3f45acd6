package memory

import (
	"testing"

	"bytedata/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// view mirrors core.Sequence; core imports this package, so it cannot be used here.
type view interface {
	Kind() string
	Len() int
	At(i int) common.Value
	Sort()
	Sorted() bool
	Values() []common.Value
}

func views(values []common.Value) []view {
	return []view{
		NewArray(values),
		NewList(values),
		NewTree(4, values),
	}
}

func TestViewsKeepLoadOrderUntilSorted(t *testing.T) {
	input := []common.Value{5, -3, 0, 127, -128, 5}

	for _, v := range views(input) {
		t.Run(v.Kind(), func(t *testing.T) {
			require.Equal(t, len(input), v.Len())
			assert.False(t, v.Sorted())
			assert.Equal(t, input, v.Values())
			for i, want := range input {
				assert.Equal(t, want, v.At(i))
			}

			v.Sort()

			assert.True(t, v.Sorted())
			assert.Equal(t, []common.Value{-128, -3, 0, 5, 5, 127}, v.Values())
			assert.Equal(t, common.Value(-3), v.At(1))
			assert.Equal(t, common.Value(127), v.At(5))
		})
	}
}

func TestViewsCopyInput(t *testing.T) {
	input := []common.Value{3, 2, 1}
	for _, v := range views(input) {
		v.Sort()
	}
	assert.Equal(t, []common.Value{3, 2, 1}, input)
}

func TestViewsEmpty(t *testing.T) {
	for _, v := range views(nil) {
		t.Run(v.Kind(), func(t *testing.T) {
			assert.Equal(t, 0, v.Len())
			v.Sort()
			assert.Empty(t, v.Values())
		})
	}
}

func TestListAppendClearsSorted(t *testing.T) {
	l := NewList([]common.Value{2, 1})
	l.Sort()
	require.True(t, l.Sorted())

	l.Append(0)
	assert.False(t, l.Sorted())
	assert.Equal(t, []common.Value{1, 2, 0}, l.Values())
}

func TestTreeKeepsDuplicates(t *testing.T) {
	tr := NewTree(2, []common.Value{7, 7, 7, -1})
	assert.Equal(t, 4, tr.Len())

	tr.Sort()
	assert.Equal(t, []common.Value{-1, 7, 7, 7}, tr.Values())

	// inserts after sort land in value order
	tr.Put(0)
	assert.Equal(t, []common.Value{-1, 0, 7, 7, 7}, tr.Values())
	assert.Equal(t, common.Value(0), tr.At(1))
}

func TestTreeIteratorStops(t *testing.T) {
	tr := NewTree(2, []common.Value{1, 2, 3, 4})
	var seen []Item
	tr.Iterator(func(item Item) bool {
		seen = append(seen, item)
		return len(seen) < 2
	})
	assert.Equal(t, []Item{{Val: 1, Seq: 0}, {Val: 2, Seq: 1}}, seen)
}
