package memory

import (
	"bytedata/pkg/common"
	"cmp"
	"slices"
)

// List is a growable sequence of boxed values.
type List struct {
	items  []*common.Value
	sorted bool
}

func NewList(values []common.Value) *List {
	l := &List{}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func (l *List) Append(v common.Value) {
	boxed := v
	l.items = append(l.items, &boxed)
	l.sorted = false
}

func (l *List) Kind() string { return "list" }

func (l *List) Len() int { return len(l.items) }

func (l *List) At(i int) common.Value { return *l.items[i] }

func (l *List) Sort() {
	slices.SortFunc(l.items, func(a, b *common.Value) int {
		return cmp.Compare(*a, *b)
	})
	l.sorted = true
}

func (l *List) Sorted() bool { return l.sorted }

func (l *List) Values() []common.Value {
	out := make([]common.Value, len(l.items))
	for i, p := range l.items {
		out[i] = *p
	}
	return out
}
