package countdir

import "github.com/kmerkv/kmerkv/model"

// Countdir accumulates per-key totals while merging a group.
// you can use some other data structure once you implement this interface
type Countdir interface {
	Add(key model.Key, delta model.Value)
	Get(key model.Key) (model.Value, bool)
	Len() int

	// Ascend visits every key in increasing order until fn returns false.
	Ascend(fn func(key model.Key, count model.Value) bool)
}
