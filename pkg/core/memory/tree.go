package memory

import (
	"bytedata/pkg/common"

	"github.com/google/btree"
)

// Item is a tree entry. Seq keeps duplicates apart and preserves load order.
type Item struct {
	Val common.Value
	Seq int
}

// loadItem orders by load position only.
type loadItem Item

func (i loadItem) Less(than btree.Item) bool {
	return i.Seq < than.(loadItem).Seq
}

// valueItem orders by value, then load position.
type valueItem Item

func (i valueItem) Less(than btree.Item) bool {
	o := than.(valueItem)
	if i.Val != o.Val {
		return i.Val < o.Val
	}
	return i.Seq < o.Seq
}

// Tree keeps the record set in a B-tree. Before Sort it ascends in load order,
// after Sort in value order.
type Tree struct {
	tree   *btree.BTree
	degree int
	next   int
	sorted bool
	snap   []common.Value // rebuilt lazily after mutation
}

func NewTree(degree int, values []common.Value) *Tree {
	t := &Tree{
		tree:   btree.New(degree),
		degree: degree,
	}
	for _, v := range values {
		t.Put(v)
	}
	return t
}

func (t *Tree) Put(v common.Value) {
	item := Item{Val: v, Seq: t.next}
	t.next++
	if t.sorted {
		t.tree.ReplaceOrInsert(valueItem(item))
	} else {
		t.tree.ReplaceOrInsert(loadItem(item))
	}
	t.snap = nil
}

func (t *Tree) Kind() string { return "btree" }

func (t *Tree) Len() int { return t.tree.Len() }

func (t *Tree) At(i int) common.Value {
	if t.snap == nil {
		t.snap = t.Values()
	}
	return t.snap[i]
}

// Sort rebuilds the tree keyed by value.
func (t *Tree) Sort() {
	if t.sorted {
		return
	}
	rebuilt := btree.New(t.degree)
	t.tree.Ascend(func(i btree.Item) bool {
		rebuilt.ReplaceOrInsert(valueItem(i.(loadItem)))
		return true
	})
	t.tree = rebuilt
	t.sorted = true
	t.snap = nil
}

func (t *Tree) Sorted() bool { return t.sorted }

func (t *Tree) Iterator(fn func(item Item) bool) {
	t.tree.Ascend(func(i btree.Item) bool {
		switch it := i.(type) {
		case loadItem:
			return fn(Item(it))
		case valueItem:
			return fn(Item(it))
		}
		return false
	})
}

func (t *Tree) Values() []common.Value {
	out := make([]common.Value, 0, t.tree.Len())
	t.Iterator(func(item Item) bool {
		out = append(out, item.Val)
		return true
	})
	return out
}
