package countdir

import (
	"github.com/google/btree"

	"github.com/kmerkv/kmerkv/model"
)

var _ Countdir = (*BTree)(nil)

const defaultDegree = 32

// item implement the btree.Item interface
type item struct {
	key   model.Key
	count model.Value
}

func (i *item) Less(than btree.Item) bool {
	return i.key < than.(*item).key
}

// BTree implement the Countdir
type BTree struct {
	tree *btree.BTree
}

func NewBTree(degree int) *BTree {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &BTree{tree: btree.New(degree)}
}

func (bt *BTree) Add(key model.Key, delta model.Value) {
	if got := bt.tree.Get(&item{key: key}); got != nil {
		got.(*item).count += delta
		return
	}
	bt.tree.ReplaceOrInsert(&item{key: key, count: delta})
}

func (bt *BTree) Get(key model.Key) (model.Value, bool) {
	got := bt.tree.Get(&item{key: key})
	if got == nil {
		return 0, false
	}
	return got.(*item).count, true
}

func (bt *BTree) Len() int {
	return bt.tree.Len()
}

func (bt *BTree) Ascend(fn func(key model.Key, count model.Value) bool) {
	bt.tree.Ascend(func(it btree.Item) bool {
		i := it.(*item)
		return fn(i.key, i.count)
	})
}
