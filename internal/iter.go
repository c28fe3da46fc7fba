// Package internal holds helpers shared by the jc62 packages.
package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SortedUnion merges key/value sequences. A key in a later sequence replaces
// the same key from an earlier one. Keys are yielded in ascending order.
func SortedUnion[K cmp.Ordered, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		union := map[K]V{}
		for _, seq := range seqs {
			maps.Insert(union, seq)
		}

		for _, key := range slices.Sorted(maps.Keys(union)) {
			if !yield(key, union[key]) {
				return
			}
		}
	}
}
