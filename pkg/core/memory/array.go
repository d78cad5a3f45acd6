package memory

import (
	"bytedata/pkg/common"
	"slices"
)

// Array is a contiguous buffer sized once at construction.
type Array struct {
	data   []common.Value
	sorted bool
}

func NewArray(values []common.Value) *Array {
	data := make([]common.Value, len(values))
	copy(data, values)
	return &Array{data: data}
}

func (a *Array) Kind() string { return "array" }

func (a *Array) Len() int { return len(a.data) }

func (a *Array) At(i int) common.Value { return a.data[i] }

func (a *Array) Sort() {
	slices.Sort(a.data)
	a.sorted = true
}

func (a *Array) Sorted() bool { return a.sorted }

func (a *Array) Values() []common.Value {
	return slices.Clone(a.data)
}
